package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
	"github.com/lepikeman/qrenoo-booking/pkg/types"
)

func TestGenerateSlots_InclusiveUpperBound(t *testing.T) {
	slots, err := generateSlots("09:00", "10:00", 30)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, slots)
}

func TestGenerateSlots_FullDay(t *testing.T) {
	slots, err := generateSlots("09:00", "18:00", 60)
	require.NoError(t, err)
	require.Len(t, slots, 10)
	assert.EqualValues(t, "09:00", slots[0])
	assert.EqualValues(t, "18:00", slots[9])

	// Сетка строго возрастает с шагом ровно в интервал
	for i := 1; i < len(slots); i++ {
		prev, err := slots[i-1].AddMinutes(60)
		require.NoError(t, err)
		assert.Equal(t, prev, slots[i])
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	first, err := generateSlots("08:30", "12:30", 30)
	require.NoError(t, err)
	second, err := generateSlots("08:30", "12:30", 30)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateSlots_ClosedDay(t *testing.T) {
	slots, err := generateSlots("", "", 0)
	require.NoError(t, err)
	assert.Empty(t, slots)

	slots, err = generateSlots("09:00", "", 30)
	require.NoError(t, err)
	assert.Empty(t, slots)

	slots, err = generateSlots("09:00", "18:00", 0)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_ClosingBeforeOpening(t *testing.T) {
	slots, err := generateSlots("18:00", "09:00", 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_SingleSlot(t *testing.T) {
	slots, err := generateSlots("09:00", "09:00", 30)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00"}, slots)
}

func TestFilterAvailable(t *testing.T) {
	slots := []types.TimeString{"09:00", "09:30", "10:00", "10:30"}

	appointments := []*domain.Appointment{
		{StartTime: "09:30", Confirmed: true},
		// Неподтверждённая запись тоже блокирует слот
		{StartTime: "10:00", Confirmed: false},
	}

	available := filterAvailable(slots, appointments)
	assert.Equal(t, []types.TimeString{"09:00", "10:30"}, available)
}

func TestFilterAvailable_NoBookings(t *testing.T) {
	slots := []types.TimeString{"09:00", "09:30"}
	assert.Equal(t, slots, filterAvailable(slots, nil))
}
