package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CarwashService/pkg/types"
)

// Window is the daily booking window with its time grid.
// Times are valid when aligned to StepMinutes and inside
// [StartHour:00, EndHour:00) of a service day.
type Window struct {
	StartHour   int
	EndHour     int
	StepMinutes int
}

// DefaultWindow matches the wash working hours.
var DefaultWindow = Window{StartHour: 7, EndHour: 17, StepMinutes: 15}

// Start returns the first slot of a service day.
func (w Window) Start() types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:00", w.StartHour))
}

// End returns the exclusive end of the window.
func (w Window) End() types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:00", w.EndHour))
}

// RoundUp rounds an instant up to the next grid boundary.
// An instant already on the grid is returned unchanged
// (seconds and below dropped).
func (w Window) RoundUp(t time.Time) time.Time {
	t = t.Truncate(time.Minute)
	rem := t.Minute() % w.StepMinutes
	if rem != 0 {
		t = t.Add(time.Duration(w.StepMinutes-rem) * time.Minute)
	}
	return t
}

// Normalize derives the default booking date and time from the current
// instant: round up to the grid, clamp to the window start if the day has
// not begun, or advance to the next day's window start if the rounded
// time is at or past the window end.
func (w Window) Normalize(now time.Time) (time.Time, types.TimeString) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	rounded := w.RoundUp(now)

	start := day.Add(time.Duration(w.StartHour) * time.Hour)
	end := day.Add(time.Duration(w.EndHour) * time.Hour)

	switch {
	case rounded.Before(start):
		return day, w.Start()
	case !rounded.Before(end):
		return day.AddDate(0, 0, 1), w.Start()
	default:
		return day, types.NewTimeString(rounded)
	}
}

// Contains reports whether t is a selectable slot: grid-aligned and
// inside the window.
func (w Window) Contains(t types.TimeString) bool {
	minutes, err := t.Minutes()
	if err != nil {
		return false
	}
	if minutes%w.StepMinutes != 0 {
		return false
	}
	return minutes >= w.StartHour*60 && minutes < w.EndHour*60
}

// Grid returns the selectable slots for a date. For today, slots before
// the current rounded boundary are excluded; for past dates the grid is
// empty; future dates get the full window.
func (w Window) Grid(date time.Time, now time.Time) []types.TimeString {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return []types.TimeString{}
	}

	floor := w.StartHour * 60
	if day.Equal(today) {
		rounded := w.RoundUp(now)
		if m := rounded.Hour()*60 + rounded.Minute(); m > floor {
			floor = m
		}
	}

	slots := make([]types.TimeString, 0)
	for m := floor; m < w.EndHour*60; m += w.StepMinutes {
		slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)))
	}
	return slots
}
