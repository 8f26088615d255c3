package handler

import (
	"net/http"

	"fleetcare/internal/application/service"
	"fleetcare/internal/interfaces/api/middleware"
	"fleetcare/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ReminderHandler exposes reminder endpoints.
type ReminderHandler struct {
	reminderService service.ReminderService
	log             logger.Logger
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService service.ReminderService, log logger.Logger) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
		log:             log,
	}
}

// List handles GET /api/reminders.
func (h *ReminderHandler) List(c echo.Context) error {
	resp, err := h.reminderService.ListByUser(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Dismiss handles POST /api/reminders/:id/dismiss.
func (h *ReminderHandler) Dismiss(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.reminderService.Dismiss(c.Request().Context(), id, middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Complete handles POST /api/reminders/:id/complete.
func (h *ReminderHandler) Complete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.reminderService.Complete(c.Request().Context(), id, middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}
