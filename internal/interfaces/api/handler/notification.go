package handler

import (
	"net/http"

	"fleetcare/internal/application/dto"
	"fleetcare/internal/application/service"
	"fleetcare/internal/interfaces/api/middleware"
	"fleetcare/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// NotificationHandler exposes notification endpoints.
type NotificationHandler struct {
	notificationService service.NotificationService
	log                 logger.Logger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService service.NotificationService, log logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		log:                 log,
	}
}

// Create handles POST /api/notifications. The notification is always
// addressed to the acting user.
func (h *NotificationHandler) Create(c echo.Context) error {
	var req dto.CreateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	req.UserID = middleware.UserID(c)

	resp, err := h.notificationService.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(c echo.Context) error {
	resp, err := h.notificationService.ListByUser(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// MarkRead handles POST /api/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.notificationService.MarkRead(c.Request().Context(), id, middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// MarkAllRead handles POST /api/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.notificationService.MarkAllRead(c.Request().Context(), middleware.UserID(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
