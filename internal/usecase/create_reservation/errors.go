package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (отсутствует обязательное поле, неверный формат телефона или email)
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrProfessionalClosed возвращается, когда профессионал закрыт в указанную дату
	ErrProfessionalClosed = errors.New("create_reservation: professional is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время не попадает в сетку слотов
	// (не кратно интервалу или вне рабочих часов)
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
