package domain

import (
	"time"

	"github.com/lepikeman/qrenoo-booking/pkg/types"
)

// Appointment represents one booked slot in a professional's calendar.
// A public booking starts unconfirmed and holds a one-time confirmation code;
// a staff-created appointment is confirmed from the start and never has one.
type Appointment struct {
	ID             int64
	ProfessionalID int64

	// Date is the professional-local calendar day, time part zeroed.
	Date      time.Time
	StartTime types.TimeString

	ClientName  string
	ClientEmail *string
	ClientPhone *string
	Message     *string

	ConfirmationCode *string
	Confirmed        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true while the appointment awaits its confirmation code.
func (a *Appointment) IsPending() bool {
	return !a.Confirmed
}

// CodeExpired reports whether the confirmation window has closed.
func (a *Appointment) CodeExpired(now time.Time, validity time.Duration) bool {
	return now.Sub(a.CreatedAt) > validity
}

// HasEmail reports whether the client left an email address.
func (a *Appointment) HasEmail() bool {
	return a.ClientEmail != nil && *a.ClientEmail != ""
}
