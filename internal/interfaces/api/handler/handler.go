package handler

import (
	"errors"
	"net/http"
	"strconv"

	appErrors "fleetcare/internal/pkg/errors"
	"fleetcare/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// errorResponse is the JSON error envelope every endpoint returns.
type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps service-layer sentinel errors to HTTP status codes.
func respondError(c echo.Context, log logger.Logger, err error) error {
	switch {
	case errors.Is(err, appErrors.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, appErrors.ErrValidation):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		log.Error("Unhandled service error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// parseIDParam parses a numeric path parameter.
func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
