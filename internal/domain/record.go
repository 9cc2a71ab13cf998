package domain

import "time"

// CustomerRecord is the one canonical shape for a customer/vehicle pair.
// Repositories normalize the legacy mixed-case database columns
// (CostomerName, TypeOfCar, PhoneN) into this struct; raw shapes never
// leave the storage layer.
type CustomerRecord struct {
	CarNum       string
	Phone        string
	DriverName   string
	CustomerName string
	CarType      string
}

// IsEmpty returns true when the record carries no plate,
// which makes it unusable for booking.
func (r CustomerRecord) IsEmpty() bool {
	return r.CarNum == ""
}

// CarKey is the disambiguation key for results of a phone lookup:
// the same phone may own several vehicles.
func (r CustomerRecord) CarKey() string {
	return r.CarNum + "|" + r.CarType
}

// CarPhoneKey is the disambiguation key for results of a plate lookup:
// the same vehicle may have history under several phones.
func (r CustomerRecord) CarPhoneKey() string {
	return r.CarNum + "|" + r.CarType + "|" + r.Phone
}

// WorkItem is a service applicable to a vehicle type.
type WorkItem struct {
	ID      int64
	GroupID int64
	Name    string
	CarType string
}

// Branch is a wash location.
type Branch struct {
	ID   int64
	Name string
}

// UpcomingAppointment is the result of the "does this plate already have
// a future appointment" check.
type UpcomingAppointment struct {
	HasBooking bool
	NextDate   *time.Time
}
