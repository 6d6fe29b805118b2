package domain

import "time"

// Confirmation code rules for the public booking flow.
const (
	ConfirmationCodeLength = 6
	ConfirmationCodeMin    = 100000
	ConfirmationCodeMax    = 999999

	// CodeValidity is how long a pending appointment can be confirmed.
	CodeValidity = 15 * time.Minute
)

// Client contact validation.
const (
	PhoneDigits      = 10
	MaxClientName    = 120
	MaxMessageLength = 500
)

// Schedule validation.
var AllowedIntervalMinutes = []int{30, 60}

// Time format constants.
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// IsAllowedInterval reports whether m is a configurable slot interval.
func IsAllowedInterval(m int) bool {
	for _, allowed := range AllowedIntervalMinutes {
		if m == allowed {
			return true
		}
	}
	return false
}
