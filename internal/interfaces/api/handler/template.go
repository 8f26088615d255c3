package handler

import (
	"net/http"

	"fleetcare/internal/application/dto"
	"fleetcare/internal/application/service"
	"fleetcare/internal/interfaces/api/middleware"
	"fleetcare/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// TemplateHandler exposes maintenance-template endpoints.
type TemplateHandler struct {
	templateService service.TemplateService
	log             logger.Logger
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService service.TemplateService, log logger.Logger) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
		log:             log,
	}
}

// List handles GET /api/templates.
func (h *TemplateHandler) List(c echo.Context) error {
	resp, err := h.templateService.ListAvailable(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/templates.
func (h *TemplateHandler) Create(c echo.Context) error {
	var req dto.CreateTemplateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := h.templateService.Create(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// Update handles PATCH /api/templates/:id.
func (h *TemplateHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateTemplateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := h.templateService.Update(c.Request().Context(), id, middleware.UserID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/templates/:id.
func (h *TemplateHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.templateService.Delete(c.Request().Context(), id, middleware.UserID(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
