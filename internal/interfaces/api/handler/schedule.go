package handler

import (
	"net/http"

	"fleetcare/internal/application/dto"
	"fleetcare/internal/application/service"
	"fleetcare/internal/interfaces/api/middleware"
	"fleetcare/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ScheduleHandler exposes maintenance-schedule endpoints.
type ScheduleHandler struct {
	scheduleService service.ScheduleService
	log             logger.Logger
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService service.ScheduleService, log logger.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		log:             log,
	}
}

// Create handles POST /api/schedules.
func (h *ScheduleHandler) Create(c echo.Context) error {
	var req dto.CreateScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := h.scheduleService.Create(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// Get handles GET /api/schedules/:id.
func (h *ScheduleHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.scheduleService.Get(c.Request().Context(), id, middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListByVehicle handles GET /api/vehicles/:id/schedules.
func (h *ScheduleHandler) ListByVehicle(c echo.Context) error {
	vehicleID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.scheduleService.ListByVehicle(c.Request().Context(), vehicleID, middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Update handles PATCH /api/schedules/:id.
func (h *ScheduleHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := h.scheduleService.Update(c.Request().Context(), id, middleware.UserID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Complete handles POST /api/schedules/:id/complete.
func (h *ScheduleHandler) Complete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.CompleteScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := h.scheduleService.Complete(c.Request().Context(), id, middleware.UserID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// LinkServiceRecord handles POST /api/schedules/:id/link-service-record/:recordID.
func (h *ScheduleHandler) LinkServiceRecord(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	recordID, err := parseIDParam(c, "recordID")
	if err != nil {
		return err
	}

	resp, err := h.scheduleService.LinkServiceRecord(c.Request().Context(), id, middleware.UserID(c), recordID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/schedules/:id.
func (h *ScheduleHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.scheduleService.Delete(c.Request().Context(), id, middleware.UserID(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListOverdue handles GET /api/schedules/overdue.
func (h *ScheduleHandler) ListOverdue(c echo.Context) error {
	resp, err := h.scheduleService.ListOverdue(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListUpcoming handles GET /api/schedules/upcoming.
func (h *ScheduleHandler) ListUpcoming(c echo.Context) error {
	resp, err := h.scheduleService.ListUpcoming(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}
