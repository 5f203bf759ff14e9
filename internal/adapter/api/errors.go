package api

import (
	"context"
	"errors"
	"fmt"
	"github.com/burenotti/go_fitness_tracker/internal/domain/workout"
	"github.com/labstack/echo/v4"
	"net/http"
)

type JsonErrorModel struct {
	Message string `json:"message"`
}

func JsonError(c echo.Context, status int, content any) error {
	data := &JsonErrorModel{Message: fmt.Sprintf("%v", content)}
	return c.JSON(status, data)
}

// errorStatus maps calculation errors to the response status.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, workout.ErrUnknownWorkoutType),
		errors.Is(err, workout.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
