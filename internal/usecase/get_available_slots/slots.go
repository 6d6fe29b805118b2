package get_available_slots

import (
	"time"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
	"github.com/lepikeman/qrenoo-booking/pkg/types"
)

// generateSlots генерирует все слоты дня от opening до closing включительно
// с фиксированным шагом interval минут.
// Верхняя граница входит в сетку: 09:00-10:00 с шагом 30 даёт 09:00, 09:30, 10:00.
// Пустое время открытия/закрытия или нулевой шаг означают закрытый день
func generateSlots(opening, closing types.TimeString, interval int) ([]types.TimeString, error) {
	if opening.IsZero() || closing.IsZero() || interval <= 0 {
		return []types.TimeString{}, nil
	}
	if closing.IsBefore(opening) {
		return []types.TimeString{}, nil
	}

	slots := make([]types.TimeString, 0)
	current := opening

	for !current.IsAfter(closing) {
		slots = append(slots, current)

		next, err := current.AddMinutes(interval)
		if err != nil {
			// Сетка упёрлась в полночь
			break
		}
		current = next
	}

	return slots, nil
}

// filterAvailable убирает из сетки слоты, занятые существующими записями.
// Неподтверждённая запись тоже блокирует слот - иначе два клиента могли бы
// одновременно удерживать один и тот же создаваемый слот
func filterAvailable(slots []types.TimeString, appointments []*domain.Appointment) []types.TimeString {
	if len(appointments) == 0 {
		return slots
	}

	taken := make(map[types.TimeString]struct{}, len(appointments))
	for _, appt := range appointments {
		taken[appt.StartTime] = struct{}{}
	}

	available := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}

	return available
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
