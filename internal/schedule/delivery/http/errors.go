package http

import (
	"errors"
	"net/http"

	"daily-planner/internal/schedule"
	pkgErrors "daily-planner/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid payload")
	case errors.Is(err, schedule.ErrScheduleNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "schedule not found")
	case errors.Is(err, schedule.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
