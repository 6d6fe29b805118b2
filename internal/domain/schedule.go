package domain

import (
	"time"

	"github.com/lepikeman/qrenoo-booking/pkg/types"
)

// DaySchedule is the resolved working window for one calendar day.
type DaySchedule struct {
	IsOpen          bool
	Opening         types.TimeString
	Closing         types.TimeString
	IntervalMinutes int
}

// ScheduleRule is one stored schedule row. Weekday nil marks the
// professional-wide default; a non-nil Weekday overrides the default for
// that day of the week (IsOpen=false means closed that day).
type ScheduleRule struct {
	ID              int64
	ProfessionalID  int64
	Weekday         *time.Weekday
	IsOpen          bool
	Opening         types.TimeString
	Closing         types.TimeString
	IntervalMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsDefault returns true for the professional-wide default row.
func (r *ScheduleRule) IsDefault() bool {
	return r.Weekday == nil
}

// OpeningSchedule is an immutable snapshot of a professional's configuration,
// assembled once per request and passed by value into the slot math.
type OpeningSchedule struct {
	ProfessionalID int64
	Default        *DaySchedule
	Overrides      map[time.Weekday]DaySchedule
}

// BuildOpeningSchedule assembles a snapshot from stored rules.
func BuildOpeningSchedule(professionalID int64, rules []*ScheduleRule) OpeningSchedule {
	sched := OpeningSchedule{
		ProfessionalID: professionalID,
		Overrides:      make(map[time.Weekday]DaySchedule, len(rules)),
	}

	for _, rule := range rules {
		day := DaySchedule{
			IsOpen:          rule.IsOpen,
			Opening:         rule.Opening,
			Closing:         rule.Closing,
			IntervalMinutes: rule.IntervalMinutes,
		}
		if rule.IsDefault() {
			d := day
			sched.Default = &d
			continue
		}
		sched.Overrides[*rule.Weekday] = day
	}

	return sched
}

// ForDate resolves the working window for the given date.
// An override row wins over the default; an absent override falls back to the
// default; no rows at all means closed.
func (s OpeningSchedule) ForDate(date time.Time) DaySchedule {
	if day, ok := s.Overrides[date.Weekday()]; ok {
		return day
	}
	if s.Default != nil {
		return *s.Default
	}
	return DaySchedule{IsOpen: false}
}
