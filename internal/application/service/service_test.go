package service

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fleetcare/internal/domain/constant"
	"fleetcare/internal/domain/entity"
	"fleetcare/internal/domain/repository"
	"fleetcare/internal/infrastructure/database/sqlite"

	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// testLogger discards everything; tests assert on behavior, not log output.
type testLogger struct{}

func (testLogger) Error(msg string, err error) {}
func (testLogger) Warn(msg string)             {}
func (testLogger) Info(msg string)             {}
func (testLogger) Debug(msg string)            {}

// testEnv bundles an isolated in-memory database, its repositories and a
// fake clock for one test.
type testEnv struct {
	db               *gorm.DB
	clock            *clockz.FakeClock
	vehicleRepo      repository.VehicleRepository
	recordRepo       repository.ServiceRecordRepository
	templateRepo     repository.TemplateRepository
	scheduleRepo     repository.ScheduleRepository
	reminderRepo     repository.ReminderRepository
	notificationRepo repository.NotificationRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// Shared-cache in-memory DSN so the connection pool sees one database.
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Vehicle{},
		&entity.ServiceRecord{},
		&entity.MaintenanceTemplate{},
		&entity.MaintenanceSchedule{},
		&entity.Reminder{},
		&entity.Notification{},
	))

	return &testEnv{
		db:               db,
		clock:            clockz.NewFakeClock(),
		vehicleRepo:      sqlite.NewVehicleRepository(db),
		recordRepo:       sqlite.NewServiceRecordRepository(db),
		templateRepo:     sqlite.NewTemplateRepository(db),
		scheduleRepo:     sqlite.NewScheduleRepository(db),
		reminderRepo:     sqlite.NewReminderRepository(db),
		notificationRepo: sqlite.NewNotificationRepository(db),
	}
}

func (e *testEnv) scheduleService() ScheduleService {
	return NewScheduleService(e.scheduleRepo, e.vehicleRepo, e.templateRepo, e.recordRepo, e.reminderRepo, e.clock, testLogger{})
}

func (e *testEnv) reminderService() ReminderService {
	return NewReminderService(e.reminderRepo, e.scheduleRepo, e.vehicleRepo, e.clock, testLogger{})
}

func (e *testEnv) notificationService(providers map[constant.Channel]ChannelProvider) NotificationService {
	return NewNotificationService(e.notificationRepo, e.reminderRepo, e.scheduleRepo, e.vehicleRepo, providers, e.clock, testLogger{})
}

// seedVehicle inserts a vehicle owned by the given user.
func (e *testEnv) seedVehicle(t *testing.T, ownerID string, mileage float64, hours *float64) *entity.Vehicle {
	t.Helper()
	v := &entity.Vehicle{
		OwnerID:        ownerID,
		Name:           "Test Vehicle",
		CurrentMileage: mileage,
		CurrentHours:   hours,
	}
	require.NoError(t, e.db.Create(v).Error)
	return v
}

func intPtr(v int) *int              { return &v }
func floatPtr(v float64) *float64    { return &v }
func strPtr(v string) *string        { return &v }
func timePtr(v time.Time) *time.Time { return &v }
