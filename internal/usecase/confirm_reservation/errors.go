package confirm_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_reservation: invalid input data")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("confirm_reservation: appointment not found")

	// ErrInvalidCode возвращается, когда код не совпадает с сохранённым
	ErrInvalidCode = errors.New("confirm_reservation: invalid confirmation code")

	// ErrCodeExpired возвращается, когда срок действия кода истёк
	ErrCodeExpired = errors.New("confirm_reservation: confirmation code expired")

	// ErrAlreadyConfirmed возвращается при повторном подтверждении записи
	ErrAlreadyConfirmed = errors.New("confirm_reservation: appointment already confirmed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_reservation: internal error")
)
