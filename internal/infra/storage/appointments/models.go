package appointments

import "time"

// Appointment параметры канонической записи для dbo.InsertAppointments
type Appointment struct {
	BranchID    int64
	Name        string
	Date        time.Time // только дата
	TimeHMS     string    // "HH:MM:SS", процедура кастует в time
	CarNum      string
	CarType     string
	DriverName  string
	DriverPhone string
	GenCustName string
	CustomerID  *int64
	InternalID  *int64
	Comments    string
}

// MirrorRow денормализованная строка InfoForAppointments.
// Ключ строки - (CustomerID, InternalID, CarNum, PhoneN).
type MirrorRow struct {
	CustomerID   int64
	InternalID   int64
	CarNum       string
	Phone        string
	CarType      string
	SetDate      time.Time
	AttachedNum  *string
	DriverName   string
	CustomerName string
}
