package cancel_reservation

import (
	"context"
)

type ReservationsService interface {
	Cancel(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
