package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/internal/schedule"
)

func openResolution() schedule.DayResolution {
	return schedule.DayResolution{
		IsOpen:              true,
		OpenTime:            "09:00",
		CloseTime:           "18:00",
		MaxCapacity:         10,
		SlotDurationMinutes: 30,
		Source:              schedule.SourceWeekly,
	}
}

// понедельник
var monday = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func TestGenerate_FullDayWithLunchBreak(t *testing.T) {
	breaks := []domain.BreakWindow{
		{
			Label:     "lunch",
			StartTime: "12:00",
			EndTime:   "13:00",
			Weekdays:  []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		},
	}

	result, err := Generate(monday, openResolution(), breaks)
	require.NoError(t, err)

	// 9:00-18:00 по 30 минут = 18 слотов, минус два в обеденный перерыв
	assert.Len(t, result, 16)

	assert.Equal(t, "09:00", result[0].StartTime.String())
	assert.Equal(t, "09:30", result[0].EndTime.String())
	assert.Equal(t, 10, result[0].Capacity)
	assert.Equal(t, 10, result[0].Remaining)
	assert.True(t, result[0].Available)

	// слоты 12:00 и 12:30 выпали, после 11:30 сразу идет 13:00
	for _, slot := range result {
		assert.NotEqual(t, "12:00", slot.StartTime.String())
		assert.NotEqual(t, "12:30", slot.StartTime.String())
	}

	last := result[len(result)-1]
	assert.Equal(t, "17:30", last.StartTime.String())
	assert.Equal(t, "18:00", last.EndTime.String())
}

func TestGenerate_BreakOnOtherWeekdayIgnored(t *testing.T) {
	breaks := []domain.BreakWindow{
		{Label: "cleaning", StartTime: "12:00", EndTime: "13:00", Weekdays: []time.Weekday{time.Saturday}},
	}

	result, err := Generate(monday, openResolution(), breaks)
	require.NoError(t, err)
	assert.Len(t, result, 18)
}

func TestGenerate_TouchingBreakBoundaryKept(t *testing.T) {
	// перерыв 12:00-12:30: слот 11:30-12:00 касается границы и не выпадает
	breaks := []domain.BreakWindow{
		{Label: "break", StartTime: "12:00", EndTime: "12:30", Weekdays: []time.Weekday{time.Monday}},
	}

	result, err := Generate(monday, openResolution(), breaks)
	require.NoError(t, err)

	_, found := Find(result, "11:30")
	assert.True(t, found)
	_, found = Find(result, "12:00")
	assert.False(t, found)
	_, found = Find(result, "12:30")
	assert.True(t, found)
}

func TestGenerate_NoPartialTrailingSlot(t *testing.T) {
	resolution := openResolution()
	resolution.CloseTime = "17:45"

	result, err := Generate(monday, resolution, nil)
	require.NoError(t, err)

	// последний полный слот 17:00-17:30, хвост 17:30-18:00 не помещается
	last := result[len(result)-1]
	assert.Equal(t, "17:00", last.StartTime.String())
	assert.Equal(t, "17:30", last.EndTime.String())
}

func TestGenerate_ClosedDayYieldsEmptySet(t *testing.T) {
	resolution := schedule.DayResolution{ClosedReason: "Regular day off"}

	result, err := Generate(monday, resolution, nil)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestGenerate_Deterministic(t *testing.T) {
	breaks := []domain.BreakWindow{
		{Label: "lunch", StartTime: "12:00", EndTime: "13:00", Weekdays: []time.Weekday{time.Monday}},
	}

	first, err := Generate(monday, openResolution(), breaks)
	require.NoError(t, err)
	second, err := Generate(monday, openResolution(), breaks)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_InvalidOpenTime(t *testing.T) {
	resolution := openResolution()
	resolution.OpenTime = "9:00"

	_, err := Generate(monday, resolution, nil)
	assert.Error(t, err)
}

func TestGenerate_LateCloseDoesNotCrossMidnight(t *testing.T) {
	resolution := schedule.DayResolution{
		IsOpen:              true,
		OpenTime:            "22:00",
		CloseTime:           "23:59",
		MaxCapacity:         2,
		SlotDurationMinutes: 45,
	}

	result, err := Generate(monday, resolution, nil)
	require.NoError(t, err)

	// 22:00-22:45, 22:45-23:30; следующий слот пересек бы полночь
	require.Len(t, result, 2)
	assert.Equal(t, "23:30", result[1].EndTime.String())
}
