package confirm_reservation

import (
	"time"

	"github.com/lepikeman/qrenoo-booking/pkg/types"
)

// Request модель запроса на подтверждение записи
type Request struct {
	AppointmentID int64  // ID записи
	Code          string // Шестизначный код из письма
}

// Response модель ответа с подтверждённой записью
type Response struct {
	ID             int64            // ID записи
	ProfessionalID int64            // ID профессионала
	Date           time.Time        // Дата записи
	StartTime      types.TimeString // Время начала
	ClientName     string           // Имя клиента
	Confirmed      bool             // Всегда true после успешного подтверждения
	UpdatedAt      time.Time        // Время подтверждения
}
