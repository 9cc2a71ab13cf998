package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Service selection limits
const (
	MaxServiceSlots = 5
)

// Defaults the legacy database expects on rows created outside the
// back-office (walk-in customers have no real customer/internal id).
const (
	DefaultCustomerID = 999999
	DefaultInternalID = 1
)

// UnspecifiedCarType is stored when a registration comes in without a
// vehicle type. The literal is what the legacy UI writes ("not specified").
const UnspecifiedCarType = "לא צויין"

// Order naming. The appointment row name and the comment prefix are
// consumed by the existing back-office screens, so the literals are fixed.
const (
	OrderIDPrefix        = "CC-"
	AppointmentNameBase  = "קביעת שטיפה"
	ServicesCommentLabel = "שירותים:"
)
