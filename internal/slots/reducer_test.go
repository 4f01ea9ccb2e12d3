package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookora/venue-booking-service/internal/domain"
)

func generated() []domain.TimeSlot {
	return []domain.TimeSlot{
		{StartTime: "10:00", EndTime: "10:30", Capacity: 4, Remaining: 4, Available: true},
		{StartTime: "10:30", EndTime: "11:00", Capacity: 4, Remaining: 4, Available: true},
		{StartTime: "11:00", EndTime: "11:30", Capacity: 4, Remaining: 4, Available: true},
	}
}

func TestReduce_SubtractsOccupiedByExactStartTime(t *testing.T) {
	existing := []domain.ExistingBooking{
		{StartTime: "10:00", Occupied: 1},
		{StartTime: "10:00", Occupied: 2},
		{StartTime: "11:00", Occupied: 4},
	}

	result := Reduce(generated(), existing)
	require.Len(t, result, 3)

	assert.Equal(t, 1, result[0].Remaining)
	assert.True(t, result[0].Available)

	assert.Equal(t, 4, result[1].Remaining)
	assert.True(t, result[1].Available)

	assert.Equal(t, 0, result[2].Remaining)
	assert.False(t, result[2].Available)
}

func TestReduce_EmptyLedgerKeepsFullCapacity(t *testing.T) {
	result := Reduce(generated(), nil)

	for _, slot := range result {
		assert.Equal(t, slot.Capacity, slot.Remaining)
		assert.True(t, slot.Available)
	}
}

func TestReduce_LedgerEntryWithoutMatchingSlotIgnored(t *testing.T) {
	existing := []domain.ExistingBooking{
		{StartTime: "09:00", Occupied: 3},
	}

	result := Reduce(generated(), existing)
	for _, slot := range result {
		assert.Equal(t, slot.Capacity, slot.Remaining)
	}
}

func TestAvailableView_FiltersFullSlots(t *testing.T) {
	existing := []domain.ExistingBooking{
		{StartTime: "10:30", Occupied: 4},
	}

	available := AvailableView(Reduce(generated(), existing))
	require.Len(t, available, 2)
	assert.Equal(t, "10:00", available[0].StartTime.String())
	assert.Equal(t, "11:00", available[1].StartTime.String())
}

func TestFind(t *testing.T) {
	slots := generated()

	slot, found := Find(slots, "10:30")
	assert.True(t, found)
	assert.Equal(t, "11:00", slot.EndTime.String())

	_, found = Find(slots, "12:00")
	assert.False(t, found)
}
