package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"fleetcare/internal/application/service"
	"fleetcare/internal/domain/repository"
	"fleetcare/internal/pkg/logger"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
)

// telemetryTopic receives per-vehicle odometer/engine-hour readings.
const telemetryTopic = "fleet/telemetry/#"

const (
	connectTimeout = 10 * time.Second
	handlerTimeout = 30 * time.Second
)

// telemetryPayload is the wire format published by vehicle trackers.
type telemetryPayload struct {
	VehicleID   uint     `json:"vehicle_id"`
	MileageKm   float64  `json:"mileage_km"`
	EngineHours *float64 `json:"engine_hours,omitempty"`
}

// TelemetrySubscriber ingests tracker readings over MQTT and keeps vehicle
// readings and schedule due-state current between daily ticks.
type TelemetrySubscriber struct {
	client          pahomqtt.Client
	vehicleRepo     repository.VehicleRepository
	scheduleService service.ScheduleService
	log             logger.Logger
}

// NewTelemetrySubscriber connects to the broker named by FLEETCARE_MQTT_URL.
// An error is returned when the variable is unset so callers can run without
// telemetry ingest.
func NewTelemetrySubscriber(
	vehicleRepo repository.VehicleRepository,
	scheduleService service.ScheduleService,
	log logger.Logger,
) (*TelemetrySubscriber, error) {
	brokerURL := os.Getenv("FLEETCARE_MQTT_URL")
	if brokerURL == "" {
		return nil, fmt.Errorf("FLEETCARE_MQTT_URL environment variable must be set")
	}

	opts := pahomqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID("fleetcare-telemetry").
		SetAutoReconnect(true).
		SetConnectTimeout(connectTimeout)
	opts.OnConnectionLost = func(_ pahomqtt.Client, err error) {
		log.Warn(fmt.Sprintf("MQTT connection lost: %v", err))
	}

	client := pahomqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	log.Info(fmt.Sprintf("Connected to MQTT broker at %s", brokerURL))

	return &TelemetrySubscriber{
		client:          client,
		vehicleRepo:     vehicleRepo,
		scheduleService: scheduleService,
		log:             log,
	}, nil
}

// Start subscribes to the telemetry topic.
func (s *TelemetrySubscriber) Start() error {
	token := s.client.Subscribe(telemetryTopic, 1, s.handleMessage)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", telemetryTopic, token.Error())
	}
	s.log.Info(fmt.Sprintf("Subscribed to %s", telemetryTopic))
	return nil
}

// handleMessage applies one tracker reading: persist the readings, then
// re-derive due-state for the vehicle's schedules. Bad payloads are logged
// and dropped.
func (s *TelemetrySubscriber) handleMessage(_ pahomqtt.Client, msg pahomqtt.Message) {
	var payload telemetryPayload
	if err := json.Unmarshal(msg.Payload(), &payload); err != nil {
		s.log.Error(fmt.Sprintf("🔴 ERROR: Malformed telemetry payload on %s", msg.Topic()), err)
		return
	}
	if payload.VehicleID == 0 {
		s.log.Warn(fmt.Sprintf("Telemetry payload on %s has no vehicle_id, dropping", msg.Topic()))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	if err := s.vehicleRepo.UpdateReadings(ctx, payload.VehicleID, payload.MileageKm, payload.EngineHours); err != nil {
		s.log.Error(fmt.Sprintf("🔴 ERROR: Failed to update readings for vehicle %d", payload.VehicleID), err)
		return
	}
	if err := s.scheduleService.RecalculateForVehicle(ctx, payload.VehicleID); err != nil {
		s.log.Error(fmt.Sprintf("🔴 ERROR: Failed to recalculate schedules for vehicle %d", payload.VehicleID), err)
		return
	}
	s.log.Debug(fmt.Sprintf("Applied telemetry for vehicle %d: %.1f km", payload.VehicleID, payload.MileageKm))
}

// Stop disconnects from the broker, allowing in-flight work to finish.
func (s *TelemetrySubscriber) Stop() {
	s.client.Disconnect(uint(handlerTimeout.Milliseconds()))
	s.log.Info("Disconnected from MQTT broker")
}
