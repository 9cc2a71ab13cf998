package register_client

import "github.com/m04kA/SMC-CarwashService/internal/domain"

// Request модель запроса регистрации нового клиента.
// Обязательны имя клиента, имя водителя, номер машины и тип машины;
// телефон опционален. Номер и телефон - только цифры, как при
// классификации ключа на входе.
type Request struct {
	CustomerName string `validate:"required"`
	DriverName   string `validate:"required"`
	CarNum       string `validate:"required,number,min=6,max=8"`
	CarType      string `validate:"required"`
	Phone        string `validate:"omitempty,startswith=0,number,min=9,max=10"`
}

// Response созданная запись клиента
type Response struct {
	Record domain.CustomerRecord
}
