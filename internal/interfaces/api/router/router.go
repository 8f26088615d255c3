package router

import (
	"fmt"
	"net/http"

	"fleetcare/internal/interfaces/api/handler"
	appMiddleware "fleetcare/internal/interfaces/api/middleware"
	"fleetcare/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Config holds the dependencies for the router.
type Config struct {
	VehicleHandler      *handler.VehicleHandler
	ScheduleHandler     *handler.ScheduleHandler
	TemplateHandler     *handler.TemplateHandler
	ReminderHandler     *handler.ReminderHandler
	NotificationHandler *handler.NotificationHandler
	Logger              logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()

	// Middleware
	e.Use(middleware.RequestID())
	// Use custom logger that integrates with our logger interface
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogHost:      true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s, req_id=%s",
				v.Method, v.URI, v.Status, v.Latency, v.RequestID,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Routes
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	api := e.Group("/api", appMiddleware.JWTAuth(cfg.Logger))

	api.POST("/vehicles", cfg.VehicleHandler.Create)
	api.GET("/vehicles", cfg.VehicleHandler.List)
	api.GET("/vehicles/:id", cfg.VehicleHandler.Get)
	api.PATCH("/vehicles/:id", cfg.VehicleHandler.Update)
	api.DELETE("/vehicles/:id", cfg.VehicleHandler.Delete)
	api.POST("/vehicles/:id/service-records", cfg.VehicleHandler.AddServiceRecord)
	api.GET("/vehicles/:id/service-records", cfg.VehicleHandler.ListServiceRecords)
	api.GET("/vehicles/:id/schedules", cfg.ScheduleHandler.ListByVehicle)

	api.POST("/schedules", cfg.ScheduleHandler.Create)
	// Static segments must be registered before /schedules/:id.
	api.GET("/schedules/overdue", cfg.ScheduleHandler.ListOverdue)
	api.GET("/schedules/upcoming", cfg.ScheduleHandler.ListUpcoming)
	api.GET("/schedules/:id", cfg.ScheduleHandler.Get)
	api.PATCH("/schedules/:id", cfg.ScheduleHandler.Update)
	api.DELETE("/schedules/:id", cfg.ScheduleHandler.Delete)
	api.POST("/schedules/:id/complete", cfg.ScheduleHandler.Complete)
	api.POST("/schedules/:id/link-service-record/:recordID", cfg.ScheduleHandler.LinkServiceRecord)

	api.GET("/templates", cfg.TemplateHandler.List)
	api.POST("/templates", cfg.TemplateHandler.Create)
	api.PATCH("/templates/:id", cfg.TemplateHandler.Update)
	api.DELETE("/templates/:id", cfg.TemplateHandler.Delete)

	api.GET("/reminders", cfg.ReminderHandler.List)
	api.POST("/reminders/:id/dismiss", cfg.ReminderHandler.Dismiss)
	api.POST("/reminders/:id/complete", cfg.ReminderHandler.Complete)

	api.GET("/notifications", cfg.NotificationHandler.List)
	api.POST("/notifications", cfg.NotificationHandler.Create)
	api.POST("/notifications/read-all", cfg.NotificationHandler.MarkAllRead)
	api.POST("/notifications/:id/read", cfg.NotificationHandler.MarkRead)

	cfg.Logger.Info("Router initialized with routes.")
	return e
}
