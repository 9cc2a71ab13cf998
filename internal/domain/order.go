package domain

import (
	"time"

	"github.com/m04kA/SMC-CarwashService/pkg/types"
)

// OrderRequest is a fully assembled booking: a resolved customer record
// plus the selections of the flow. It is only constructible from a
// resolved CustomerRecord, never from a bare free-text key.
type OrderRequest struct {
	Record     CustomerRecord
	Services   []string
	BranchID   int64
	BranchName string
	Date       time.Time        // calendar date, time part ignored
	Time       types.TimeString // quarter-hour aligned
	Comments   string
}

// OrderResult is what a successful booking returns. OrderID is nil when
// the canonical insert succeeded but the id could not be read back:
// "booked but id unknown", not a failure.
type OrderResult struct {
	OrderID *string
}
