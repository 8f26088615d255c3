package service

import (
	"context"
	"testing"

	"fleetcare/internal/domain/constant"
	"fleetcare/internal/domain/entity"
	appErrors "fleetcare/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedOverdueSchedule creates an active schedule whose mileage dimension has
// already passed for the seeded vehicle.
func seedOverdueSchedule(t *testing.T, env *testEnv, vehicleID uint) *entity.MaintenanceSchedule {
	t.Helper()
	s := &entity.MaintenanceSchedule{
		VehicleID:         vehicleID,
		TaskName:          "Oil Change",
		CombinationPolicy: constant.PolicyAny,
		NextDueMileage:    floatPtr(60000),
		Active:            true,
	}
	require.NoError(t, env.db.Create(s).Error)
	return s
}

func TestScanCreatesReminderForOverdueSchedule(t *testing.T) {
	env := newTestEnv(t)
	svc := env.reminderService()
	vehicle := env.seedVehicle(t, "owner-1", 61000, nil)
	schedule := seedOverdueSchedule(t, env, vehicle.ID)

	created, err := svc.ScanAndCreateReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	reminders, err := svc.ListByUser(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, schedule.ID, reminders[0].ScheduleID)
	assert.Equal(t, constant.ReminderPending, reminders[0].Status)
	assert.Equal(t, constant.ReminderTypeMileage, reminders[0].Type)
	assert.Equal(t, "Oil Change is overdue", reminders[0].Message)
}

func TestScanIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	svc := env.reminderService()
	vehicle := env.seedVehicle(t, "owner-1", 61000, nil)
	seedOverdueSchedule(t, env, vehicle.ID)

	created, err := svc.ScanAndCreateReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	// Second scan finds the outstanding reminder and creates nothing.
	created, err = svc.ScanAndCreateReminders(context.Background())
	require.NoError(t, err)
	assert.Zero(t, created)

	reminders, err := svc.ListByUser(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Len(t, reminders, 1)
}

func TestScanFiresAgainAfterDismissal(t *testing.T) {
	env := newTestEnv(t)
	svc := env.reminderService()
	vehicle := env.seedVehicle(t, "owner-1", 61000, nil)
	seedOverdueSchedule(t, env, vehicle.ID)

	_, err := svc.ScanAndCreateReminders(context.Background())
	require.NoError(t, err)
	reminders, err := svc.ListByUser(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, reminders, 1)

	_, err = svc.Dismiss(context.Background(), reminders[0].ID, "owner-1")
	require.NoError(t, err)

	// The schedule is still overdue, so the next scan fires a new reminder.
	created, err := svc.ScanAndCreateReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestScanSkipsInactiveAndOkSchedules(t *testing.T) {
	env := newTestEnv(t)
	svc := env.reminderService()
	vehicle := env.seedVehicle(t, "owner-1", 61000, nil)

	inactive := seedOverdueSchedule(t, env, vehicle.ID)
	require.NoError(t, env.db.Model(inactive).Update("active", false).Error)

	ok := &entity.MaintenanceSchedule{
		VehicleID:         vehicle.ID,
		TaskName:          "Coolant Flush",
		CombinationPolicy: constant.PolicyAny,
		NextDueMileage:    floatPtr(90000),
		Active:            true,
	}
	require.NoError(t, env.db.Create(ok).Error)

	created, err := svc.ScanAndCreateReminders(context.Background())
	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestScanUpcomingMessageListsDimensions(t *testing.T) {
	env := newTestEnv(t)
	svc := env.reminderService()
	vehicle := env.seedVehicle(t, "owner-1", 59500, nil)

	s := &entity.MaintenanceSchedule{
		VehicleID:         vehicle.ID,
		TaskName:          "Oil Change",
		CombinationPolicy: constant.PolicyAny,
		NextDueMileage:    floatPtr(60000),
		Active:            true,
	}
	require.NoError(t, env.db.Create(s).Error)

	created, err := svc.ScanAndCreateReminders(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, created)

	reminders, err := svc.ListByUser(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, constant.ReminderTypeMileage, reminders[0].Type)
	assert.Equal(t, "Oil Change due in 500 km", reminders[0].Message)
}

func TestReminderTransitions(t *testing.T) {
	env := newTestEnv(t)
	svc := env.reminderService()

	reminder := &entity.Reminder{
		ScheduleID:    1,
		UserID:        "owner-1",
		Status:        constant.ReminderPending,
		Type:          constant.ReminderTypeTime,
		ScheduledDate: env.clock.Now(),
	}
	require.NoError(t, env.db.Create(reminder).Error)

	// Pending -> sent -> dismissed is a legal path.
	require.NoError(t, svc.MarkSent(context.Background(), reminder.ID))
	resp, err := svc.Dismiss(context.Background(), reminder.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, constant.ReminderDismissed, resp.Status)
	assert.NotNil(t, resp.DismissedAt)

	// Terminal states reject further transitions.
	_, err = svc.Complete(context.Background(), reminder.ID, "owner-1")
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	// Another user's reminder does not exist.
	_, err = svc.Dismiss(context.Background(), reminder.ID, "owner-2")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestMarkSentRequiresPending(t *testing.T) {
	env := newTestEnv(t)
	svc := env.reminderService()

	reminder := &entity.Reminder{
		ScheduleID:    1,
		UserID:        "owner-1",
		Status:        constant.ReminderSent,
		Type:          constant.ReminderTypeTime,
		ScheduledDate: env.clock.Now(),
	}
	require.NoError(t, env.db.Create(reminder).Error)

	err := svc.MarkSent(context.Background(), reminder.ID)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestPruneOldKeepsActiveReminders(t *testing.T) {
	env := newTestEnv(t)
	svc := env.reminderService()
	old := env.clock.Now().AddDate(0, 0, -120)

	mk := func(status constant.ReminderStatus) *entity.Reminder {
		r := &entity.Reminder{
			ScheduleID:    1,
			UserID:        "owner-1",
			Status:        status,
			Type:          constant.ReminderTypeTime,
			ScheduledDate: old,
			CreatedAt:     old,
		}
		require.NoError(t, env.db.Create(r).Error)
		return r
	}
	mk(constant.ReminderDismissed)
	mk(constant.ReminderCompleted)
	oldPending := mk(constant.ReminderPending)
	recent := &entity.Reminder{
		ScheduleID:    2,
		UserID:        "owner-1",
		Status:        constant.ReminderDismissed,
		Type:          constant.ReminderTypeTime,
		ScheduledDate: env.clock.Now(),
	}
	require.NoError(t, env.db.Create(recent).Error)

	deleted, err := svc.PruneOld(context.Background(), DefaultReminderRetentionDays)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	var remaining []entity.Reminder
	require.NoError(t, env.db.Find(&remaining).Error)
	ids := make([]uint, 0, len(remaining))
	for _, r := range remaining {
		ids = append(ids, r.ID)
	}
	assert.ElementsMatch(t, []uint{oldPending.ID, recent.ID}, ids)
}
