package create_reservation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
	"github.com/lepikeman/qrenoo-booking/pkg/types"
)

// Базовый шаблон local@domain.tld
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateRequest валидирует входные данные запроса.
// Телефон нормализуется на месте: из req.ClientPhone убираются все
// нецифровые символы до проверки длины
func validateRequest(req *Request) error {
	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(req.ClientName) > domain.MaxClientName {
		return fmt.Errorf("%w: clientName is too long", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.ClientPhone != nil && *req.ClientPhone != "" {
		normalized := normalizePhone(*req.ClientPhone)
		if len(normalized) != domain.PhoneDigits {
			return fmt.Errorf("%w: clientPhone must contain exactly %d digits", ErrInvalidInput, domain.PhoneDigits)
		}
		req.ClientPhone = &normalized
	}

	if req.ClientEmail != nil && *req.ClientEmail != "" {
		if !emailPattern.MatchString(*req.ClientEmail) {
			return fmt.Errorf("%w: invalid clientEmail format", ErrInvalidInput)
		}
	}

	if req.Message != nil && len(*req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message is too long", ErrInvalidInput)
	}

	return nil
}

// normalizePhone убирает из номера всё, кроме цифр
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// validateSlotInGrid проверяет, что время начала попадает в сетку слотов дня:
// не раньше открытия, не позже закрытия (включительно) и кратно интервалу
func validateSlotInGrid(startTime types.TimeString, day domain.DaySchedule) error {
	if startTime.IsBefore(day.Opening) || startTime.IsAfter(day.Closing) {
		return fmt.Errorf("%w: %s is outside working hours %s-%s",
			ErrInvalidTimeSlot, startTime, day.Opening, day.Closing)
	}

	startMin, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	openMin, err := day.Opening.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	if day.IntervalMinutes <= 0 || (startMin-openMin)%day.IntervalMinutes != 0 {
		return fmt.Errorf("%w: %s is not aligned to the %d-minute grid",
			ErrInvalidTimeSlot, startTime, day.IntervalMinutes)
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
