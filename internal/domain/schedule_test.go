package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarwashService/pkg/types"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestWindow_RoundUp(t *testing.T) {
	w := DefaultWindow

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"on grid unchanged", date(2026, 3, 10, 10, 15), date(2026, 3, 10, 10, 15)},
		{"rounds up to next slot", date(2026, 3, 10, 10, 7), date(2026, 3, 10, 10, 15)},
		{"one minute past slot", date(2026, 3, 10, 10, 16), date(2026, 3, 10, 10, 30)},
		{"hour boundary", date(2026, 3, 10, 10, 46), date(2026, 3, 10, 11, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.RoundUp(tt.in))
		})
	}
}

func TestWindow_Normalize(t *testing.T) {
	w := DefaultWindow

	tests := []struct {
		name     string
		now      time.Time
		wantDate time.Time
		wantTime types.TimeString
	}{
		{
			name:     "midday rounds up",
			now:      date(2026, 3, 10, 10, 7),
			wantDate: date(2026, 3, 10, 0, 0),
			wantTime: "10:15",
		},
		{
			name:     "before opening clamps to start",
			now:      date(2026, 3, 10, 6, 30),
			wantDate: date(2026, 3, 10, 0, 0),
			wantTime: "07:00",
		},
		{
			name:     "late afternoon rolls to next day",
			now:      date(2026, 3, 10, 16, 50),
			wantDate: date(2026, 3, 11, 0, 0),
			wantTime: "07:00",
		},
		{
			name:     "exactly at close rolls to next day",
			now:      date(2026, 3, 10, 17, 0),
			wantDate: date(2026, 3, 11, 0, 0),
			wantTime: "07:00",
		},
		{
			name:     "last slot of the day stays",
			now:      date(2026, 3, 10, 16, 45),
			wantDate: date(2026, 3, 10, 0, 0),
			wantTime: "16:45",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotDate, gotTime := w.Normalize(tt.now)
			assert.Equal(t, tt.wantDate, gotDate)
			assert.Equal(t, tt.wantTime, gotTime)
		})
	}
}

func TestWindow_Contains(t *testing.T) {
	w := DefaultWindow

	assert.True(t, w.Contains("07:00"))
	assert.True(t, w.Contains("16:45"))
	assert.True(t, w.Contains("10:15"))

	assert.False(t, w.Contains("17:00"), "close boundary is exclusive")
	assert.False(t, w.Contains("06:45"), "before opening")
	assert.False(t, w.Contains("10:07"), "off grid")
	assert.False(t, w.Contains(""), "empty")
	assert.False(t, w.Contains("junk"))
}

func TestWindow_Grid(t *testing.T) {
	w := DefaultWindow
	now := date(2026, 3, 10, 10, 7)

	t.Run("past date is empty", func(t *testing.T) {
		assert.Empty(t, w.Grid(date(2026, 3, 9, 0, 0), now))
	})

	t.Run("today starts at rounded now", func(t *testing.T) {
		slots := w.Grid(date(2026, 3, 10, 0, 0), now)
		require.NotEmpty(t, slots)
		assert.Equal(t, types.TimeString("10:15"), slots[0])
		assert.Equal(t, types.TimeString("16:45"), slots[len(slots)-1])
	})

	t.Run("future date gets the full window", func(t *testing.T) {
		slots := w.Grid(date(2026, 3, 11, 0, 0), now)
		require.NotEmpty(t, slots)
		assert.Equal(t, types.TimeString("07:00"), slots[0])
		assert.Equal(t, types.TimeString("16:45"), slots[len(slots)-1])
		assert.Len(t, slots, 40)
	})
}
