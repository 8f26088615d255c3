package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	// Application Layer
	appService "fleetcare/internal/application/service"

	// Infrastructure Layer
	"fleetcare/internal/domain/constant"
	"fleetcare/internal/infrastructure/database/sqlite"
	lineClient "fleetcare/internal/infrastructure/line"
	"fleetcare/internal/infrastructure/mqtt"
	"fleetcare/internal/infrastructure/scheduler"

	// Interfaces Layer
	"fleetcare/internal/interfaces/api/handler"
	"fleetcare/internal/interfaces/api/router"

	// Packages
	appLogger "fleetcare/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
)

func gracefulShutdown(
	apiServer *http.Server,
	loopService appService.MaintenanceLoopService,
	cronScheduler *scheduler.Scheduler,
	telemetry *mqtt.TelemetrySubscriber,
	done chan bool,
) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Println("Shutting down gracefully, press Ctrl+C again to force")

	log.Println("Stopping maintenance loop...")
	loopService.Stop()
	cronScheduler.Stop()
	log.Println("Maintenance loop stopped.")

	if telemetry != nil {
		log.Println("Disconnecting telemetry subscriber...")
		telemetry.Stop()
	}

	// Close database connection
	log.Println("Closing database connection...")
	if err := sqlite.CloseDB(); err != nil {
		log.Printf("Error closing database: %v", err)
	} else {
		log.Println("Database connection closed.")
	}

	// Shutdown HTTP server
	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

func main() {
	// --- Initialization ---
	appLog := appLogger.New()
	appLog.Info("Logger initialized.")

	// Load Environment Variables (using autoload)
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080" // Default port
		appLog.Warn("PORT environment variable not set, defaulting to 8080")
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		appLog.Error("Invalid PORT environment variable", err)
		os.Exit(1)
	}
	// Other env vars (DB URL, LINE secrets, MQTT URL) are loaded by their modules

	// --- Infrastructure ---
	db := sqlite.NewDB()
	vehicleRepo := sqlite.NewVehicleRepository(db)
	recordRepo := sqlite.NewServiceRecordRepository(db)
	templateRepo := sqlite.NewTemplateRepository(db)
	scheduleRepo := sqlite.NewScheduleRepository(db)
	reminderRepo := sqlite.NewReminderRepository(db)
	notificationRepo := sqlite.NewNotificationRepository(db)
	appLog.Info("Database and repositories initialized.")

	cronScheduler := scheduler.NewScheduler(appLog)

	// Channel providers are optional; the push channel only exists when LINE
	// credentials are configured.
	providers := map[constant.Channel]appService.ChannelProvider{}
	if line, err := lineClient.NewClient(appLog); err != nil {
		appLog.Warn(fmt.Sprintf("Push channel disabled: %v", err))
	} else {
		providers[constant.ChannelPush] = line
	}

	// --- Application Services ---
	scheduleSvc := appService.NewScheduleService(scheduleRepo, vehicleRepo, templateRepo, recordRepo, reminderRepo, nil, appLog)
	templateSvc := appService.NewTemplateService(templateRepo, appLog)
	vehicleSvc := appService.NewVehicleService(vehicleRepo, recordRepo, scheduleRepo, reminderRepo, scheduleSvc, nil, appLog)
	reminderSvc := appService.NewReminderService(reminderRepo, scheduleRepo, vehicleRepo, nil, appLog)
	notificationSvc := appService.NewNotificationService(notificationRepo, reminderRepo, scheduleRepo, vehicleRepo, providers, nil, appLog)
	loopSvc := appService.NewMaintenanceLoopService(cronScheduler, reminderSvc, notificationSvc, appLog)
	appLog.Info("Application services initialized.")

	// --- Maintenance Loop ---
	if err := loopSvc.Start(); err != nil {
		appLog.Error("Failed to start maintenance loop", err)
		os.Exit(1)
	}

	// --- Telemetry Ingest ---
	var telemetry *mqtt.TelemetrySubscriber
	if sub, err := mqtt.NewTelemetrySubscriber(vehicleRepo, scheduleSvc, appLog); err != nil {
		appLog.Warn(fmt.Sprintf("Telemetry ingest disabled: %v", err))
	} else if err := sub.Start(); err != nil {
		appLog.Error("Failed to subscribe to telemetry topic", err)
		sub.Stop()
	} else {
		telemetry = sub
	}

	// --- API Handlers ---
	vehicleHandler := handler.NewVehicleHandler(vehicleSvc, appLog)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc, appLog)
	templateHandler := handler.NewTemplateHandler(templateSvc, appLog)
	reminderHandler := handler.NewReminderHandler(reminderSvc, appLog)
	notificationHandler := handler.NewNotificationHandler(notificationSvc, appLog)
	appLog.Info("API handlers initialized.")

	// --- Router ---
	routerCfg := &router.Config{
		VehicleHandler:      vehicleHandler,
		ScheduleHandler:     scheduleHandler,
		TemplateHandler:     templateHandler,
		ReminderHandler:     reminderHandler,
		NotificationHandler: notificationHandler,
		Logger:              appLog,
	}
	echoRouter := router.NewRouter(routerCfg)

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// --- Start Server & Shutdown Handling ---
	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, loopSvc, cronScheduler, telemetry, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		appLog.Error("HTTP server ListenAndServe error", err)
		panic(fmt.Sprintf("http server error: %s", err))
	}

	// Wait for graceful shutdown signal
	<-done
	appLog.Info("Graceful shutdown complete.")
}
