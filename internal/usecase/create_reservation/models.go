package create_reservation

import (
	"time"

	"github.com/lepikeman/qrenoo-booking/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ProfessionalID int64            // ID профессионала
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время начала слота (например, "10:00")
	ClientName     string           // Имя клиента
	ClientEmail    *string          // Email клиента (опционально)
	ClientPhone    *string          // Телефон клиента (опционально, 10 цифр после нормализации)
	Message        *string          // Сообщение клиента (опционально)

	// PreValidated помечает запись, созданную профессионалом из своего
	// кабинета: код подтверждения не генерируется, письмо не отправляется,
	// запись сразу подтверждена
	PreValidated bool
}

// Response модель ответа с созданной записью
type Response struct {
	ID             int64            // ID созданной записи
	ProfessionalID int64            // ID профессионала
	Date           time.Time        // Дата записи
	StartTime      types.TimeString // Время начала
	ClientName     string           // Имя клиента
	ClientEmail    *string          // Email клиента
	ClientPhone    *string          // Телефон клиента (нормализованный)
	Message        *string          // Сообщение клиента
	Confirmed      bool             // Статус подтверждения
	CreatedAt      time.Time        // Время создания
}
