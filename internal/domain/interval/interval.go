// Package interval holds the pure due-state core: next-due computation,
// remaining-until-due computation, and the overdue/upcoming classifier.
// Nothing here touches storage or the wall clock; callers pass the current
// vehicle readings and the evaluation instant explicitly.
package interval

import (
	"math"
	"time"

	"fleetcare/internal/domain/constant"
	"fleetcare/internal/domain/entity"
)

// NextDue carries the per-dimension next-due values of a schedule. A field
// is nil when its dimension is not fully configured.
type NextDue struct {
	Date    *time.Time
	Mileage *float64
	Hours   *float64
}

// Remaining carries the per-dimension amounts left until due, evaluated
// against live vehicle readings. Negative values mean the dimension has
// already passed.
type Remaining struct {
	Days     *int
	Distance *float64
	Hours    *float64
	Overdue  bool
}

// ComputeNextDue derives the next-due values of a schedule. It depends only
// on the schedule's interval and last-completed fields, never on vehicle
// state. Each dimension is computed independently and only when both its
// interval and its last-completed value are present.
func ComputeNextDue(s *entity.MaintenanceSchedule) NextDue {
	var next NextDue
	if s.IntervalMonths != nil && s.LastCompletedDate != nil {
		d := addMonths(*s.LastCompletedDate, *s.IntervalMonths)
		next.Date = &d
	}
	if s.IntervalKilometers != nil && s.LastCompletedMileage != nil {
		m := *s.LastCompletedMileage + *s.IntervalKilometers
		next.Mileage = &m
	}
	if s.IntervalHours != nil && s.LastCompletedHours != nil {
		h := *s.LastCompletedHours + *s.IntervalHours
		next.Hours = &h
	}
	return next
}

// addMonths performs calendar-month arithmetic: the day-of-month is
// preserved, clamped to the length of the target month. This differs from
// time.Time.AddDate, which normalizes Jan 31 + 1 month into March.
func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	first := time.Date(year, month+time.Month(months), 1, hour, min, sec, t.Nanosecond(), t.Location())
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ComputeRemaining evaluates the stored next-due values of a schedule
// against the vehicle's current readings at the given instant. Days are
// rounded up, so a due date 36 hours away reports 2 days remaining, one
// 12 hours past reports 0, and one 36 hours past reports -1.
func ComputeRemaining(s *entity.MaintenanceSchedule, currentMileage float64, currentHours *float64, now time.Time) Remaining {
	var rem Remaining
	if s.NextDueDate != nil {
		days := int(math.Ceil(s.NextDueDate.Sub(now).Hours() / 24))
		rem.Days = &days
	}
	if s.NextDueMileage != nil {
		dist := *s.NextDueMileage - currentMileage
		rem.Distance = &dist
	}
	if s.NextDueHours != nil && currentHours != nil {
		hrs := *s.NextDueHours - *currentHours
		rem.Hours = &hrs
	}
	rem.Overdue = IsOverdue(s, currentMileage, currentHours, now)
	return rem
}

// dimensionsPassed reports, per dimension, whether it is configured on the
// schedule (evaluable against the readings) and whether it has strictly
// passed its next-due value.
func dimensionsPassed(s *entity.MaintenanceSchedule, currentMileage float64, currentHours *float64, now time.Time) (configured, passed []constant.ReminderType) {
	if s.NextDueDate != nil {
		configured = append(configured, constant.ReminderTypeTime)
		if now.After(*s.NextDueDate) {
			passed = append(passed, constant.ReminderTypeTime)
		}
	}
	if s.NextDueMileage != nil {
		configured = append(configured, constant.ReminderTypeMileage)
		if currentMileage > *s.NextDueMileage {
			passed = append(passed, constant.ReminderTypeMileage)
		}
	}
	if s.NextDueHours != nil && currentHours != nil {
		configured = append(configured, constant.ReminderTypeHours)
		if *currentHours > *s.NextDueHours {
			passed = append(passed, constant.ReminderTypeHours)
		}
	}
	return configured, passed
}

// IsOverdue applies the schedule's combination policy. Under PolicyAny the
// schedule is overdue as soon as any configured dimension has passed. Under
// PolicyAll every configured dimension must have passed, and at least one
// dimension must be configured at all, so a schedule with no configured
// dimensions is never vacuously overdue.
func IsOverdue(s *entity.MaintenanceSchedule, currentMileage float64, currentHours *float64, now time.Time) bool {
	configured, passed := dimensionsPassed(s, currentMileage, currentHours, now)
	if len(configured) == 0 {
		return false
	}
	if s.CombinationPolicy == constant.PolicyAll {
		return len(passed) == len(configured)
	}
	return len(passed) > 0
}

// dimensionsApproaching reports the dimensions whose remaining amount is
// positive and at or below the schedule's reminder lead (inclusive).
func dimensionsApproaching(s *entity.MaintenanceSchedule, currentMileage float64, currentHours *float64, now time.Time) []constant.ReminderType {
	var approaching []constant.ReminderType
	if s.NextDueDate != nil {
		days := int(math.Ceil(s.NextDueDate.Sub(now).Hours() / 24))
		if days > 0 && days <= s.LeadDays() {
			approaching = append(approaching, constant.ReminderTypeTime)
		}
	}
	if s.NextDueMileage != nil {
		dist := *s.NextDueMileage - currentMileage
		if dist > 0 && dist <= s.LeadKilometers() {
			approaching = append(approaching, constant.ReminderTypeMileage)
		}
	}
	if s.NextDueHours != nil && currentHours != nil {
		hrs := *s.NextDueHours - *currentHours
		if hrs > 0 && hrs <= s.LeadHours() {
			approaching = append(approaching, constant.ReminderTypeHours)
		}
	}
	return approaching
}

// IsUpcoming reports whether the schedule is not overdue and at least one
// dimension has crossed its reminder lead. Lead evaluation is always any-of,
// regardless of the overdue combination policy.
func IsUpcoming(s *entity.MaintenanceSchedule, currentMileage float64, currentHours *float64, now time.Time) bool {
	if IsOverdue(s, currentMileage, currentHours, now) {
		return false
	}
	return len(dimensionsApproaching(s, currentMileage, currentHours, now)) > 0
}

// Status classifies the schedule with fixed precedence: Overdue wins over
// DueSoon, OK otherwise. Recomputed fresh on every call.
func Status(s *entity.MaintenanceSchedule, currentMileage float64, currentHours *float64, now time.Time) constant.DueStatus {
	if IsOverdue(s, currentMileage, currentHours, now) {
		return constant.StatusOverdue
	}
	if IsUpcoming(s, currentMileage, currentHours, now) {
		return constant.StatusDueSoon
	}
	return constant.StatusOK
}

// Classify picks the reminder type for a schedule that is overdue or
// upcoming. Exactly one triggered dimension yields that dimension's type;
// several simultaneously triggering dimensions yield compound. The
// dimensions are never compared across units.
func Classify(s *entity.MaintenanceSchedule, currentMileage float64, currentHours *float64, now time.Time) constant.ReminderType {
	var triggered []constant.ReminderType
	if IsOverdue(s, currentMileage, currentHours, now) {
		_, triggered = dimensionsPassed(s, currentMileage, currentHours, now)
	} else {
		triggered = dimensionsApproaching(s, currentMileage, currentHours, now)
	}
	if len(triggered) == 1 {
		return triggered[0]
	}
	return constant.ReminderTypeCompound
}

// TriggeredDimensions exposes the decision table behind Classify so message
// formatting can list each triggered dimension separately.
func TriggeredDimensions(s *entity.MaintenanceSchedule, currentMileage float64, currentHours *float64, now time.Time) []constant.ReminderType {
	if IsOverdue(s, currentMileage, currentHours, now) {
		_, passed := dimensionsPassed(s, currentMileage, currentHours, now)
		return passed
	}
	return dimensionsApproaching(s, currentMileage, currentHours, now)
}
