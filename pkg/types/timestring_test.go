package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ts, err := NewTimeStringFromString("10:15")
		require.NoError(t, err)
		assert.Equal(t, "10:15", ts.String())
	})

	t.Run("normalizes single digit hour", func(t *testing.T) {
		ts, err := NewTimeStringFromString("7:05")
		require.NoError(t, err)
		assert.Equal(t, "07:05", ts.String())
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, in := range []string{"", "25:00", "10:60", "junk", "10:15:00"} {
			_, err := NewTimeStringFromString(in)
			assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", in)
		}
	})
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 10, 9, 5, 33, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("10:15").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 615, m)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:15").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:45"), got)

	got, err = TimeString("23:50").AddMinutes(20)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:10"), got, "wraps over midnight")

	got, err = TimeString("00:10").AddMinutes(-20)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:50"), got, "wraps backwards")
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_HMS(t *testing.T) {
	assert.Equal(t, "10:15:00", TimeString("10:15").HMS())
}
