package get_available_slots

import (
	"time"

	"github.com/lepikeman/qrenoo-booking/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProfessionalID int64     // ID профессионала
	Date           time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ProfessionalID  int64              // ID профессионала
	Date            time.Time          // Дата, на которую запрашивались слоты
	IntervalMinutes int                // Шаг сетки слотов (0, если день закрыт)
	Slots           []types.TimeString // Свободные слоты в порядке возрастания
}
