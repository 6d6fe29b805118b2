package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotTaken возвращается при нарушении уникальности слота
	// (professional_id, date, start_time) - слот уже занят
	ErrSlotTaken = errors.New("appointment.repository: slot already taken")

	// ErrAlreadyConfirmed возвращается, когда запись уже подтверждена
	ErrAlreadyConfirmed = errors.New("appointment.repository: appointment already confirmed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
