package handler

import (
	"net/http"

	"fleetcare/internal/application/dto"
	"fleetcare/internal/application/service"
	"fleetcare/internal/interfaces/api/middleware"
	"fleetcare/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// VehicleHandler exposes vehicle directory endpoints.
type VehicleHandler struct {
	vehicleService service.VehicleService
	log            logger.Logger
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(vehicleService service.VehicleService, log logger.Logger) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		log:            log,
	}
}

// Create handles POST /api/vehicles.
func (h *VehicleHandler) Create(c echo.Context) error {
	var req dto.CreateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := h.vehicleService.Create(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// Get handles GET /api/vehicles/:id.
func (h *VehicleHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.vehicleService.Get(c.Request().Context(), id, middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// List handles GET /api/vehicles.
func (h *VehicleHandler) List(c echo.Context) error {
	resp, err := h.vehicleService.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Update handles PATCH /api/vehicles/:id.
func (h *VehicleHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := h.vehicleService.Update(c.Request().Context(), id, middleware.UserID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/vehicles/:id.
func (h *VehicleHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.vehicleService.Delete(c.Request().Context(), id, middleware.UserID(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddServiceRecord handles POST /api/vehicles/:id/service-records.
func (h *VehicleHandler) AddServiceRecord(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateServiceRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := h.vehicleService.AddServiceRecord(c.Request().Context(), id, middleware.UserID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// ListServiceRecords handles GET /api/vehicles/:id/service-records.
func (h *VehicleHandler) ListServiceRecords(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.vehicleService.ListServiceRecords(c.Request().Context(), id, middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}
