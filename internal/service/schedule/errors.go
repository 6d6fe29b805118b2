package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда у профессионала нет расписания
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidInterval возвращается при недопустимом интервале слотов
	ErrInvalidInterval = errors.New("invalid slot interval")

	// ErrInvalidTimeRange возвращается, когда закрытие не позже открытия
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
