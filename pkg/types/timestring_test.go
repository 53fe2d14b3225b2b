package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, invalid := range []string{"9:30:00", "25:00", "09:60", "morning", ""} {
		_, err := NewTimeStringFromString(invalid)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", invalid)
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 6, 10, 14, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("14:05"), ts)
}

func TestTimeStringComparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("13:00"))
	assert.False(t, TimeString("13:00").IsBefore("09:00"))
	assert.True(t, TimeString("17:00").IsAfter("13:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts, err := TimeString("09:30").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:00"), ts)

	_, err = TimeString("bogus").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringIsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("09:00").IsZero())
}
