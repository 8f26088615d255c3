package interval

import (
	"testing"
	"time"

	"fleetcare/internal/domain/constant"
	"fleetcare/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeNextDueAllDimensions(t *testing.T) {
	s := &entity.MaintenanceSchedule{
		IntervalMonths:       intPtr(6),
		IntervalKilometers:   floatPtr(10000),
		IntervalHours:        floatPtr(250),
		LastCompletedDate:    timePtr(date(2026, time.January, 15)),
		LastCompletedMileage: floatPtr(50000),
		LastCompletedHours:   floatPtr(1200),
	}

	next := ComputeNextDue(s)
	require.NotNil(t, next.Date)
	assert.Equal(t, date(2026, time.July, 15), *next.Date)
	require.NotNil(t, next.Mileage)
	assert.Equal(t, 60000.0, *next.Mileage)
	require.NotNil(t, next.Hours)
	assert.Equal(t, 1450.0, *next.Hours)
}

func TestComputeNextDueRequiresBothIntervalAndBaseline(t *testing.T) {
	s := &entity.MaintenanceSchedule{
		IntervalMonths:     intPtr(6),
		IntervalKilometers: floatPtr(10000),
		// Mileage baseline present, time baseline missing.
		LastCompletedMileage: floatPtr(50000),
	}

	next := ComputeNextDue(s)
	assert.Nil(t, next.Date)
	require.NotNil(t, next.Mileage)
	assert.Equal(t, 60000.0, *next.Mileage)
	assert.Nil(t, next.Hours)
}

func TestComputeNextDueIsPure(t *testing.T) {
	s := &entity.MaintenanceSchedule{
		IntervalMonths:    intPtr(3),
		LastCompletedDate: timePtr(date(2026, time.March, 10)),
	}

	first := ComputeNextDue(s)
	second := ComputeNextDue(s)
	assert.Equal(t, *first.Date, *second.Date)
	// Input schedule is untouched.
	assert.Equal(t, date(2026, time.March, 10), *s.LastCompletedDate)
	assert.Nil(t, s.NextDueDate)
}

func TestAddMonthsClampsToMonthEnd(t *testing.T) {
	cases := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"jan 31 plus one month", date(2026, time.January, 31), 1, date(2026, time.February, 28)},
		{"jan 31 plus one month leap year", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"aug 31 plus one month", date(2026, time.August, 31), 1, date(2026, time.September, 30)},
		{"mid month unaffected", date(2026, time.April, 15), 2, date(2026, time.June, 15)},
		{"year rollover", date(2026, time.November, 30), 3, date(2027, time.February, 28)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, addMonths(tc.start, tc.months))
		})
	}
}

func TestComputeRemainingRoundsDaysUp(t *testing.T) {
	due := time.Date(2026, time.June, 10, 12, 0, 0, 0, time.UTC)
	s := &entity.MaintenanceSchedule{NextDueDate: &due}

	// 36 hours before the due instant: 2 days remaining, not 1.
	now := due.Add(-36 * time.Hour)
	rem := ComputeRemaining(s, 0, nil, now)
	require.NotNil(t, rem.Days)
	assert.Equal(t, 2, *rem.Days)

	// 12 hours past rounds up to 0, not down to -1.
	now = due.Add(12 * time.Hour)
	rem = ComputeRemaining(s, 0, nil, now)
	require.NotNil(t, rem.Days)
	assert.Equal(t, 0, *rem.Days)

	// 36 hours past: -1 day.
	now = due.Add(36 * time.Hour)
	rem = ComputeRemaining(s, 0, nil, now)
	require.NotNil(t, rem.Days)
	assert.Equal(t, -1, *rem.Days)
}

func TestComputeRemainingHoursDimension(t *testing.T) {
	s := &entity.MaintenanceSchedule{NextDueHours: floatPtr(1450)}

	rem := ComputeRemaining(s, 0, floatPtr(1300), time.Now())
	require.NotNil(t, rem.Hours)
	assert.Equal(t, 150.0, *rem.Hours)

	// No current reading means the dimension cannot be evaluated.
	rem = ComputeRemaining(s, 0, nil, time.Now())
	assert.Nil(t, rem.Hours)
	assert.False(t, rem.Overdue)
}

func TestIsOverdueStrictBoundary(t *testing.T) {
	s := &entity.MaintenanceSchedule{
		CombinationPolicy: constant.PolicyAny,
		NextDueMileage:    floatPtr(60000),
	}

	assert.False(t, IsOverdue(s, 60000, nil, time.Now()), "exactly at the threshold is not overdue")
	assert.True(t, IsOverdue(s, 60000.1, nil, time.Now()))
}

func TestIsOverdueCombinationPolicies(t *testing.T) {
	due := date(2026, time.May, 1)
	s := &entity.MaintenanceSchedule{
		NextDueDate:    &due,
		NextDueMileage: floatPtr(60000),
	}
	now := date(2026, time.May, 2) // time dimension passed

	s.CombinationPolicy = constant.PolicyAny
	assert.True(t, IsOverdue(s, 59000, nil, now), "any: one passed dimension suffices")

	s.CombinationPolicy = constant.PolicyAll
	assert.False(t, IsOverdue(s, 59000, nil, now), "all: mileage has not passed")
	assert.True(t, IsOverdue(s, 60001, nil, now), "all: both passed")
}

func TestIsOverdueIgnoresUnreadableHours(t *testing.T) {
	// Hours dimension is configured on the schedule but the vehicle reports
	// no hour meter, so only time and mileage participate.
	due := date(2026, time.May, 1)
	s := &entity.MaintenanceSchedule{
		CombinationPolicy: constant.PolicyAll,
		NextDueDate:       &due,
		NextDueMileage:    floatPtr(60000),
		NextDueHours:      floatPtr(1450),
	}
	now := date(2026, time.May, 2)

	assert.True(t, IsOverdue(s, 60001, nil, now))
}

func TestIsOverdueNoConfiguredDimensions(t *testing.T) {
	s := &entity.MaintenanceSchedule{CombinationPolicy: constant.PolicyAll}
	assert.False(t, IsOverdue(s, 99999, floatPtr(99999), time.Now()))
	assert.Equal(t, constant.StatusOK, Status(s, 99999, floatPtr(99999), time.Now()))
}

func TestIsUpcomingInclusiveBoundary(t *testing.T) {
	s := &entity.MaintenanceSchedule{
		CombinationPolicy: constant.PolicyAny,
		NextDueMileage:    floatPtr(60000),
		ReminderKmBefore:  floatPtr(1000),
	}

	assert.False(t, IsUpcoming(s, 58999, nil, time.Now()), "1001 km remaining is outside the lead")
	assert.True(t, IsUpcoming(s, 59000, nil, time.Now()), "exactly 1000 km remaining is inside")
	assert.True(t, IsUpcoming(s, 59999, nil, time.Now()))
	assert.False(t, IsUpcoming(s, 60000, nil, time.Now()), "zero remaining is not upcoming")
}

func TestIsUpcomingLeadIsAnyOfUnderPolicyAll(t *testing.T) {
	due := date(2026, time.December, 1)
	s := &entity.MaintenanceSchedule{
		CombinationPolicy: constant.PolicyAll,
		NextDueDate:       &due,
		NextDueMileage:    floatPtr(60000),
	}
	// Time is months away, mileage is inside its lead: still upcoming.
	now := date(2026, time.May, 1)
	assert.True(t, IsUpcoming(s, 59500, nil, now))
}

func TestStatusPrecedence(t *testing.T) {
	due := date(2026, time.May, 1)
	s := &entity.MaintenanceSchedule{
		CombinationPolicy: constant.PolicyAny,
		NextDueDate:       &due,
		NextDueMileage:    floatPtr(60000),
	}

	// Time passed, mileage inside its lead: overdue wins.
	now := date(2026, time.May, 2)
	assert.Equal(t, constant.StatusOverdue, Status(s, 59500, nil, now))

	// Nothing passed, mileage inside its lead.
	now = date(2026, time.April, 1)
	assert.Equal(t, constant.StatusDueSoon, Status(s, 59500, nil, now))

	// Nothing triggered: the due date is outside the default 30-day lead
	// and the mileage is outside its lead too.
	now = date(2026, time.February, 1)
	assert.Equal(t, constant.StatusOK, Status(s, 50000, nil, now))
}

func TestClassifySingleAndCompound(t *testing.T) {
	due := date(2026, time.May, 1)
	s := &entity.MaintenanceSchedule{
		CombinationPolicy: constant.PolicyAny,
		NextDueDate:       &due,
		NextDueMileage:    floatPtr(60000),
	}

	now := date(2026, time.May, 2)
	assert.Equal(t, constant.ReminderTypeTime, Classify(s, 59000, nil, now), "only the time dimension passed")
	assert.Equal(t, constant.ReminderTypeCompound, Classify(s, 60001, nil, now), "both dimensions passed")

	// Upcoming with only the mileage lead crossed.
	now = date(2026, time.March, 1)
	assert.Equal(t, constant.ReminderTypeMileage, Classify(s, 59500, nil, now))
}

func TestTriggeredDimensionsListsEachTrigger(t *testing.T) {
	due := date(2026, time.May, 1)
	s := &entity.MaintenanceSchedule{
		CombinationPolicy: constant.PolicyAny,
		NextDueDate:       &due,
		NextDueMileage:    floatPtr(60000),
		NextDueHours:      floatPtr(1450),
	}

	now := date(2026, time.April, 20)
	dims := TriggeredDimensions(s, 59500, floatPtr(1430), now)
	assert.ElementsMatch(t, []constant.ReminderType{
		constant.ReminderTypeTime,
		constant.ReminderTypeMileage,
		constant.ReminderTypeHours,
	}, dims)
}
