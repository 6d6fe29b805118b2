package confirm_reservation

import (
	"context"

	confirmReservation "github.com/lepikeman/qrenoo-booking/internal/usecase/confirm_reservation"
)

type ConfirmReservationUseCase interface {
	Execute(ctx context.Context, req *confirmReservation.Request) (*confirmReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
