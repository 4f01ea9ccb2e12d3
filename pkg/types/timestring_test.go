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

	for _, invalid := range []string{"9:30", "09-30", "24:00", "12:60", "099:30", "ab:cd", ""} {
		_, err := NewTimeStringFromString(invalid)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", invalid)
	}
}

func TestNewTimeString_TruncatesSeconds(t *testing.T) {
	moment := time.Date(2026, 9, 15, 14, 5, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("10:45")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 645, minutes)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("23:00")

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:30"), next)

	// 24:00 допустимо как эксклюзивная граница конца дня
	end, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), end)

	_, err = ts.AddMinutes(90)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = TimeString("00:30").AddMinutes(-60)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:30").IsBefore("13:00"))
	assert.False(t, TimeString("13:00").IsBefore("09:30"))
	assert.True(t, TimeString("13:00").IsAfter("09:30"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(645)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:45"), ts)

	// Нормализация по модулю суток не выполняется
	overflow, err := NewTimeStringFromMinutes(25*60 + 30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("25:30"), overflow)

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30"))
	assert.Equal(t, TimeString("10:30"), ts)

	// postgres time колонки приходят с секундами
	require.NoError(t, ts.Scan("15:04:05"))
	assert.Equal(t, TimeString("15:04"), ts)

	require.NoError(t, ts.Scan([]byte("08:00")))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 12, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("12:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	value, err := TimeString("10:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30", value)

	_, err = TimeString("25:00").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
