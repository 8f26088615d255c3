package service

import (
	"context"
	"testing"
	"time"

	"fleetcare/internal/application/dto"
	"fleetcare/internal/domain/constant"
	"fleetcare/internal/domain/entity"
	appErrors "fleetcare/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleCreateComputesNextDue(t *testing.T) {
	env := newTestEnv(t)
	svc := env.scheduleService()
	vehicle := env.seedVehicle(t, "owner-1", 50000, nil)

	last := env.clock.Now().AddDate(0, -1, 0)
	resp, err := svc.Create(context.Background(), "owner-1", dto.CreateScheduleRequest{
		VehicleID:            vehicle.ID,
		TaskName:             strPtr("Oil Change"),
		IntervalMonths:       intPtr(6),
		IntervalKilometers:   floatPtr(10000),
		LastCompletedDate:    &last,
		LastCompletedMileage: floatPtr(48000),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.NextDueDate)
	require.NotNil(t, resp.NextDueMileage)
	assert.Equal(t, 58000.0, *resp.NextDueMileage)
	assert.Equal(t, constant.PolicyAll, resp.CombinationPolicy, "policy defaults to all")
	assert.True(t, resp.Active)
	assert.Equal(t, constant.StatusOK, resp.Status)
}

func TestScheduleCreateFromTemplateRequestWins(t *testing.T) {
	env := newTestEnv(t)
	svc := env.scheduleService()
	vehicle := env.seedVehicle(t, "owner-1", 10000, nil)

	template := &entity.MaintenanceTemplate{
		TaskName:           "Oil Change",
		Category:           "engine",
		IntervalMonths:     intPtr(6),
		IntervalKilometers: floatPtr(10000),
		CombinationPolicy:  constant.PolicyAny,
	}
	require.NoError(t, env.db.Create(template).Error)

	resp, err := svc.Create(context.Background(), "owner-1", dto.CreateScheduleRequest{
		VehicleID:          vehicle.ID,
		TemplateID:         &template.ID,
		IntervalKilometers: floatPtr(15000), // override
	})
	require.NoError(t, err)

	assert.Equal(t, "Oil Change", resp.TaskName)
	assert.Equal(t, "engine", resp.Category)
	require.NotNil(t, resp.IntervalMonths)
	assert.Equal(t, 6, *resp.IntervalMonths)
	require.NotNil(t, resp.IntervalKilometers)
	assert.Equal(t, 15000.0, *resp.IntervalKilometers)
	assert.Equal(t, constant.PolicyAny, resp.CombinationPolicy)
}

func TestScheduleCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := env.scheduleService()
	vehicle := env.seedVehicle(t, "owner-1", 0, nil)

	_, err := svc.Create(context.Background(), "owner-1", dto.CreateScheduleRequest{
		VehicleID: vehicle.ID,
	})
	assert.ErrorIs(t, err, appErrors.ErrValidation, "task name required")

	missing := uint(999)
	_, err = svc.Create(context.Background(), "owner-1", dto.CreateScheduleRequest{
		VehicleID:  vehicle.ID,
		TaskName:   strPtr("Brakes"),
		TemplateID: &missing,
	})
	assert.ErrorIs(t, err, appErrors.ErrValidation, "unknown template")

	bad := constant.CombinationPolicy("sometimes")
	_, err = svc.Create(context.Background(), "owner-1", dto.CreateScheduleRequest{
		VehicleID:         vehicle.ID,
		TaskName:          strPtr("Brakes"),
		CombinationPolicy: &bad,
	})
	assert.ErrorIs(t, err, appErrors.ErrValidation, "unknown policy")
}

func TestScheduleCreateAcceptsZeroDimensions(t *testing.T) {
	env := newTestEnv(t)
	svc := env.scheduleService()
	vehicle := env.seedVehicle(t, "owner-1", 0, nil)

	resp, err := svc.Create(context.Background(), "owner-1", dto.CreateScheduleRequest{
		VehicleID: vehicle.ID,
		TaskName:  strPtr("Visual Inspection"),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.NextDueDate)
	assert.Nil(t, resp.NextDueMileage)
	assert.Equal(t, constant.StatusOK, resp.Status)
}

func TestScheduleOwnershipIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := env.scheduleService()
	vehicle := env.seedVehicle(t, "owner-1", 0, nil)

	resp, err := svc.Create(context.Background(), "owner-1", dto.CreateScheduleRequest{
		VehicleID: vehicle.ID,
		TaskName:  strPtr("Oil Change"),
	})
	require.NoError(t, err)

	// Another user sees neither the schedule nor a hint it exists.
	_, err = svc.Get(context.Background(), resp.ID, "owner-2")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	_, err = svc.Update(context.Background(), resp.ID, "owner-2", dto.UpdateScheduleRequest{TaskName: strPtr("x")})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	err = svc.Delete(context.Background(), resp.ID, "owner-2")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestScheduleCompleteResetsDueState(t *testing.T) {
	env := newTestEnv(t)
	svc := env.scheduleService()
	vehicle := env.seedVehicle(t, "owner-1", 60500, nil)

	now := env.clock.Now()
	last := now.AddDate(0, -7, 0)
	anyPolicy := constant.PolicyAny
	resp, err := svc.Create(context.Background(), "owner-1", dto.CreateScheduleRequest{
		VehicleID:            vehicle.ID,
		TaskName:             strPtr("Oil Change"),
		CombinationPolicy:    &anyPolicy,
		IntervalMonths:       intPtr(6),
		IntervalKilometers:   floatPtr(10000),
		LastCompletedDate:    &last,
		LastCompletedMileage: floatPtr(50000),
	})
	require.NoError(t, err)
	assert.Equal(t, constant.StatusOverdue, resp.Status, "seven months and 10500 km since completion")

	completed := env.clock.Now()
	resp, err = svc.Complete(context.Background(), resp.ID, "owner-1", dto.CompleteScheduleRequest{
		CompletedDate: &completed,
		Mileage:       floatPtr(60500),
	})
	require.NoError(t, err)
	assert.Equal(t, constant.StatusOK, resp.Status, "completion resets the due-state")
	require.NotNil(t, resp.NextDueMileage)
	assert.Equal(t, 70500.0, *resp.NextDueMileage)
	require.NotNil(t, resp.NextDueDate)
	assert.True(t, resp.NextDueDate.After(completed))
}

func TestScheduleCompleteResolvesOutstandingReminder(t *testing.T) {
	env := newTestEnv(t)
	svc := env.scheduleService()
	vehicle := env.seedVehicle(t, "owner-1", 61000, nil)
	schedule := seedOverdueSchedule(t, env, vehicle.ID)
	reminder := seedReminder(t, env, schedule.ID, "owner-1")

	_, err := svc.Complete(context.Background(), schedule.ID, "owner-1", dto.CompleteScheduleRequest{
		Mileage: floatPtr(61000),
	})
	require.NoError(t, err)

	var got entity.Reminder
	require.NoError(t, env.db.First(&got, reminder.ID).Error)
	assert.Equal(t, constant.ReminderCompleted, got.Status)
}

func TestScheduleLinkServiceRecord(t *testing.T) {
	env := newTestEnv(t)
	svc := env.scheduleService()
	vehicle := env.seedVehicle(t, "owner-1", 61000, nil)
	other := env.seedVehicle(t, "owner-1", 0, nil)

	last := env.clock.Now().AddDate(0, -7, 0)
	resp, err := svc.Create(context.Background(), "owner-1", dto.CreateScheduleRequest{
		VehicleID:            vehicle.ID,
		TaskName:             strPtr("Oil Change"),
		IntervalKilometers:   floatPtr(10000),
		LastCompletedMileage: floatPtr(50000),
		LastCompletedDate:    &last,
	})
	require.NoError(t, err)

	record := &entity.ServiceRecord{
		VehicleID:   vehicle.ID,
		PerformedAt: env.clock.Now(),
		Mileage:     60800,
		Description: "Oil and filter",
	}
	require.NoError(t, env.db.Create(record).Error)

	linked, err := svc.LinkServiceRecord(context.Background(), resp.ID, "owner-1", record.ID)
	require.NoError(t, err)
	require.NotNil(t, linked.NextDueMileage)
	assert.Equal(t, 70800.0, *linked.NextDueMileage)
	require.NotNil(t, linked.LastCompletedDate)
	assert.WithinDuration(t, record.PerformedAt, *linked.LastCompletedDate, time.Second)

	// A record belonging to a different vehicle cannot be linked.
	foreign := &entity.ServiceRecord{VehicleID: other.ID, PerformedAt: env.clock.Now(), Mileage: 10}
	require.NoError(t, env.db.Create(foreign).Error)
	_, err = svc.LinkServiceRecord(context.Background(), resp.ID, "owner-1", foreign.ID)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestScheduleDeleteCascadesReminders(t *testing.T) {
	env := newTestEnv(t)
	svc := env.scheduleService()
	vehicle := env.seedVehicle(t, "owner-1", 0, nil)

	resp, err := svc.Create(context.Background(), "owner-1", dto.CreateScheduleRequest{
		VehicleID: vehicle.ID,
		TaskName:  strPtr("Oil Change"),
	})
	require.NoError(t, err)

	reminder := &entity.Reminder{
		ScheduleID:    resp.ID,
		UserID:        "owner-1",
		Status:        constant.ReminderPending,
		Type:          constant.ReminderTypeTime,
		ScheduledDate: env.clock.Now(),
	}
	require.NoError(t, env.db.Create(reminder).Error)

	require.NoError(t, svc.Delete(context.Background(), resp.ID, "owner-1"))

	var count int64
	require.NoError(t, env.db.Model(&entity.Reminder{}).Where("schedule_id = ?", resp.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestScheduleListOverdueAndUpcomingSorted(t *testing.T) {
	env := newTestEnv(t)
	svc := env.scheduleService()
	vehicle := env.seedVehicle(t, "owner-1", 0, nil)

	now := env.clock.Now()
	mkResp := func(name string, last time.Time) *dto.ScheduleResponse {
		resp, err := svc.Create(context.Background(), "owner-1", dto.CreateScheduleRequest{
			VehicleID:         vehicle.ID,
			TaskName:          strPtr(name),
			IntervalMonths:    intPtr(6),
			LastCompletedDate: &last,
		})
		require.NoError(t, err)
		return resp
	}
	older := mkResp("Very Overdue", now.AddDate(0, -12, 0)) // due six months ago
	newer := mkResp("Barely Overdue", now.AddDate(0, -7, 0))
	mkResp("Due Soon", now.AddDate(0, -6, 15)) // due in about 15 days
	mkResp("Fresh", now.AddDate(0, -1, 0))     // not due for five months

	overdue, err := svc.ListOverdue(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, overdue, 2)
	assert.Equal(t, older.ID, overdue[0].ID, "sorted by next-due date ascending")
	assert.Equal(t, newer.ID, overdue[1].ID)

	upcoming, err := svc.ListUpcoming(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Due Soon", upcoming[0].TaskName)
}

func TestScheduleRecalculateForVehicle(t *testing.T) {
	env := newTestEnv(t)
	svc := env.scheduleService()
	vehicle := env.seedVehicle(t, "owner-1", 50000, nil)

	last := env.clock.Now().AddDate(0, -1, 0)
	resp, err := svc.Create(context.Background(), "owner-1", dto.CreateScheduleRequest{
		VehicleID:            vehicle.ID,
		TaskName:             strPtr("Oil Change"),
		IntervalKilometers:   floatPtr(10000),
		LastCompletedMileage: floatPtr(48000),
		LastCompletedDate:    &last,
	})
	require.NoError(t, err)

	// Telemetry moves the odometer past the threshold.
	require.NoError(t, env.vehicleRepo.UpdateReadings(context.Background(), vehicle.ID, 58500, nil))
	require.NoError(t, svc.RecalculateForVehicle(context.Background(), vehicle.ID))

	got, err := svc.Get(context.Background(), resp.ID, "owner-1")
	require.NoError(t, err)
	require.NotNil(t, got.DistanceRemaining)
	assert.Equal(t, -500.0, *got.DistanceRemaining)
	assert.Equal(t, constant.StatusOverdue, got.Status)
}
