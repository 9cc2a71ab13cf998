package check_car_phone

import "github.com/m04kA/SMC-CarwashService/internal/domain"

// RecordResponse HTTP модель записи клиента
type RecordResponse struct {
	CarNum       string `json:"carNum"`
	Phone        string `json:"phone"`
	DriverName   string `json:"driverName"`
	CustomerName string `json:"customerName"`
	CarType      string `json:"carType"`
}

// FromDomainRecords конвертирует доменные записи в HTTP модель
func FromDomainRecords(records []domain.CustomerRecord) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, RecordResponse{
			CarNum:       r.CarNum,
			Phone:        r.Phone,
			DriverName:   r.DriverName,
			CustomerName: r.CustomerName,
			CarType:      r.CarType,
		})
	}
	return out
}
