package guest_flow

import (
	"github.com/m04kA/SMC-CarwashService/internal/domain"
	"github.com/m04kA/SMC-CarwashService/internal/flow"
)

// IdentifyRequest свободный ввод ключа клиента
type IdentifyRequest struct {
	Generation uint64 `json:"generation"`
	Key        string `json:"key"`
	Remember   bool   `json:"remember"`
}

// ChooseRequest выбор кандидата
type ChooseRequest struct {
	Generation uint64 `json:"generation"`
	Index      int    `json:"index"`
}

// RegisterRequest форма регистрации
type RegisterRequest struct {
	Generation   uint64 `json:"generation"`
	CustomerName string `json:"customerName"`
	DriverName   string `json:"driverName"`
	CarNum       string `json:"carNum"`
	CarType      string `json:"carType"`
	Phone        string `json:"phone"`
}

// ServiceRequest выставление слота услуги. Пустое value убирает слот.
type ServiceRequest struct {
	Generation uint64 `json:"generation"`
	Slot       int    `json:"slot"`
	Value      string `json:"value"`
}

// ScheduleRequest выбор филиала, даты, времени и комментария.
// Заполненные поля применяются по очереди, пустые не трогаются.
type ScheduleRequest struct {
	Generation uint64  `json:"generation"`
	BranchID   *int64  `json:"branchId,omitempty"`
	Date       *string `json:"date,omitempty"` // "2026-08-31"
	Time       *string `json:"time,omitempty"` // "10:15"
	Comments   *string `json:"comments,omitempty"`
}

// StepRequest запрос без параметров, только с поколением
type StepRequest struct {
	Generation uint64 `json:"generation"`
}

// RecordModel HTTP модель записи клиента
type RecordModel struct {
	CarNum       string `json:"carNum"`
	Phone        string `json:"phone"`
	DriverName   string `json:"driverName"`
	CustomerName string `json:"customerName"`
	CarType      string `json:"carType"`
}

// WorkModel HTTP модель услуги
type WorkModel struct {
	ID      int64  `json:"id"`
	GroupID int64  `json:"groupId"`
	Name    string `json:"name"`
	CarType string `json:"carType"`
}

// BranchModel HTTP модель филиала
type BranchModel struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StateResponse снапшот состояния флоу для клиента
type StateResponse struct {
	SessionID  string `json:"sessionId"`
	Generation uint64 `json:"generation"`
	Mode       string `json:"mode"`
	Step       int    `json:"step,omitempty"`
	Degraded   bool   `json:"degraded,omitempty"`
	Welcome    bool   `json:"welcome,omitempty"`

	Record     *RecordModel  `json:"record,omitempty"`
	Candidates []RecordModel `json:"candidates,omitempty"`
	ChooseKind string        `json:"chooseKind,omitempty"`

	RegisterSource string       `json:"registerSource,omitempty"`
	Prefill        *RecordModel `json:"prefill,omitempty"`
	NotFoundMsg    string       `json:"notFoundMsg,omitempty"`

	Works    []WorkModel `json:"works,omitempty"`
	Services []string    `json:"services,omitempty"`

	Branches   []BranchModel `json:"branches,omitempty"`
	BranchID   int64         `json:"branchId,omitempty"`
	BranchName string        `json:"branchName,omitempty"`
	Date       string        `json:"date,omitempty"`
	Time       string        `json:"time,omitempty"`
	Slots      []string      `json:"slots,omitempty"`

	Comments string  `json:"comments,omitempty"`
	OrderID  *string `json:"orderId,omitempty"`
}

// fromState собирает снапшот. Welcome одноразовый: читается со сбросом.
func fromState(sessionID string, st *flow.State) StateResponse {
	resp := StateResponse{
		SessionID:  sessionID,
		Generation: st.Generation,
		Mode:       string(st.Mode),
		Step:       st.Step,
		Degraded:   st.Degraded,
		Welcome:    st.TakeWelcome(),
		ChooseKind: st.ChooseKind,
		Services:   st.Services,
		BranchID:   st.BranchID,
		BranchName: st.BranchName,
		Comments:   st.Comments,
		OrderID:    st.OrderID,
	}

	if st.Record != nil {
		resp.Record = fromRecord(*st.Record)
	}
	for _, c := range st.Candidates {
		resp.Candidates = append(resp.Candidates, *fromRecord(c))
	}

	if st.Mode == flow.ModeRegister {
		resp.RegisterSource = string(st.RegisterSource)
		resp.Prefill = fromRecord(st.Prefill)
		resp.NotFoundMsg = st.NotFoundMsg
	}

	for _, w := range st.Works {
		resp.Works = append(resp.Works, WorkModel{
			ID:      w.ID,
			GroupID: w.GroupID,
			Name:    w.Name,
			CarType: w.CarType,
		})
	}
	for _, b := range st.Branches {
		resp.Branches = append(resp.Branches, BranchModel{ID: b.ID, Name: b.Name})
	}

	if !st.Date.IsZero() {
		resp.Date = st.Date.Format(domain.DateFormat)
	}
	if !st.Time.IsZero() {
		resp.Time = st.Time.String()
	}
	for _, s := range st.Slots {
		resp.Slots = append(resp.Slots, s.String())
	}

	return resp
}

func fromRecord(r domain.CustomerRecord) *RecordModel {
	return &RecordModel{
		CarNum:       r.CarNum,
		Phone:        r.Phone,
		DriverName:   r.DriverName,
		CustomerName: r.CustomerName,
		CarType:      r.CarType,
	}
}
