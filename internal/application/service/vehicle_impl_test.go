package service

import (
	"context"
	"testing"

	"fleetcare/internal/application/dto"
	"fleetcare/internal/domain/constant"
	"fleetcare/internal/domain/entity"
	appErrors "fleetcare/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) vehicleService() VehicleService {
	return NewVehicleService(e.vehicleRepo, e.recordRepo, e.scheduleRepo, e.reminderRepo, e.scheduleService(), e.clock, testLogger{})
}

func TestVehicleCreateAndList(t *testing.T) {
	env := newTestEnv(t)
	svc := env.vehicleService()

	resp, err := svc.Create(context.Background(), "owner-1", dto.CreateVehicleRequest{
		Name:           "Truck 7",
		CurrentMileage: 120000,
		CurrentHours:   floatPtr(4200),
	})
	require.NoError(t, err)
	assert.Equal(t, "Truck 7", resp.Name)

	_, err = svc.Create(context.Background(), "owner-1", dto.CreateVehicleRequest{CurrentMileage: 1})
	assert.ErrorIs(t, err, appErrors.ErrValidation, "name required")

	list, err := svc.List(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// Other owners see nothing.
	list, err = svc.List(context.Background(), "owner-2")
	require.NoError(t, err)
	assert.Empty(t, list)
	_, err = svc.Get(context.Background(), resp.ID, "owner-2")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestVehicleUpdateReadingsRecalculatesSchedules(t *testing.T) {
	env := newTestEnv(t)
	svc := env.vehicleService()
	vehicle := env.seedVehicle(t, "owner-1", 50000, nil)

	schedule := &entity.MaintenanceSchedule{
		VehicleID:            vehicle.ID,
		TaskName:             "Oil Change",
		CombinationPolicy:    constant.PolicyAny,
		IntervalKilometers:   floatPtr(10000),
		LastCompletedMileage: floatPtr(48000),
		NextDueMileage:       floatPtr(58000),
		Active:               true,
	}
	require.NoError(t, env.db.Create(schedule).Error)

	_, err := svc.Update(context.Background(), vehicle.ID, "owner-1", dto.UpdateVehicleRequest{
		CurrentMileage: floatPtr(58500),
	})
	require.NoError(t, err)

	got, err := env.scheduleService().Get(context.Background(), schedule.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, constant.StatusOverdue, got.Status)
}

func TestVehicleDeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	svc := env.vehicleService()
	vehicle := env.seedVehicle(t, "owner-1", 61000, nil)
	schedule := seedOverdueSchedule(t, env, vehicle.ID)
	seedReminder(t, env, schedule.ID, "owner-1")

	require.NoError(t, svc.Delete(context.Background(), vehicle.ID, "owner-1"))

	var schedules, reminders int64
	require.NoError(t, env.db.Model(&entity.MaintenanceSchedule{}).Where("vehicle_id = ?", vehicle.ID).Count(&schedules).Error)
	require.NoError(t, env.db.Model(&entity.Reminder{}).Where("schedule_id = ?", schedule.ID).Count(&reminders).Error)
	assert.Zero(t, schedules)
	assert.Zero(t, reminders)
}

func TestAddServiceRecordAdvancesReadings(t *testing.T) {
	env := newTestEnv(t)
	svc := env.vehicleService()
	vehicle := env.seedVehicle(t, "owner-1", 50000, nil)

	record, err := svc.AddServiceRecord(context.Background(), vehicle.ID, "owner-1", dto.CreateServiceRecordRequest{
		Mileage:     51000,
		Description: "Oil and filter",
	})
	require.NoError(t, err)
	assert.Equal(t, vehicle.ID, record.VehicleID)

	got, err := svc.Get(context.Background(), vehicle.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 51000.0, got.CurrentMileage, "fresher odometer reading is adopted")

	// A historical record with an older reading leaves the odometer alone.
	_, err = svc.AddServiceRecord(context.Background(), vehicle.ID, "owner-1", dto.CreateServiceRecordRequest{
		Mileage: 40000,
	})
	require.NoError(t, err)
	got, err = svc.Get(context.Background(), vehicle.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 51000.0, got.CurrentMileage)

	records, err := svc.ListServiceRecords(context.Background(), vehicle.ID, "owner-1")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
