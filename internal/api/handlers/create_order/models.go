package create_order

import (
	"time"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
	"github.com/m04kA/SMC-CarwashService/pkg/types"
)

// CreateOrderRequest HTTP модель заказа
type CreateOrderRequest struct {
	CarNum       string   `json:"carNum"`
	Phone        string   `json:"phone"`
	DriverName   string   `json:"driverName"`
	CustomerName string   `json:"customerName"`
	CarType      string   `json:"carType"`
	Services     []string `json:"services"`
	BranchID     int64    `json:"branchId"`
	BranchName   string   `json:"branchName"`
	Date         string   `json:"date"` // "2026-08-31"
	Time         string   `json:"time"` // "10:15"
	Comments     string   `json:"comments,omitempty"`
}

// OrderResponse результат создания заказа. orderId null - заказ создан,
// но номер прочитать не удалось.
type OrderResponse struct {
	Ok      bool    `json:"ok"`
	OrderID *string `json:"orderId"`
}

// ToDomainRequest конвертирует HTTP запрос в доменную модель
func (r *CreateOrderRequest) ToDomainRequest() (*domain.OrderRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &domain.OrderRequest{
		Record: domain.CustomerRecord{
			CarNum:       r.CarNum,
			Phone:        r.Phone,
			DriverName:   r.DriverName,
			CustomerName: r.CustomerName,
			CarType:      r.CarType,
		},
		Services:   r.Services,
		BranchID:   r.BranchID,
		BranchName: r.BranchName,
		Date:       date,
		Time:       slot,
		Comments:   r.Comments,
	}, nil
}
