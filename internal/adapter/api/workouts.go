package api

import (
	"github.com/burenotti/go_fitness_tracker/internal/app/tracker"
	"github.com/burenotti/go_fitness_tracker/internal/domain/report"
	"github.com/burenotti/go_fitness_tracker/internal/domain/workout"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"net/http"
)

func (s *Server) MountWorkouts() {
	s.handler.GET("/workouts/types", s.ListWorkoutTypes)
	s.handler.POST("/workouts/report", s.CreateReport)
	s.handler.POST("/workouts/reports", s.CreateReports)
	if s.totals != nil {
		s.handler.GET("/workouts/totals", s.ListTotals)
	}
}

type WorkoutType struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

type ListWorkoutTypesResponse struct {
	Types []WorkoutType `json:"types"`
}

func describeWorkout(code workout.Code) (WorkoutType, error) {
	name, err := workout.Name(code)
	if err != nil {
		return WorkoutType{}, err
	}
	fields, err := workout.Fields(code)
	if err != nil {
		return WorkoutType{}, err
	}
	return WorkoutType{
		Code:   string(code),
		Name:   name,
		Fields: fields,
	}, nil
}

func (s *Server) ListWorkoutTypes(c echo.Context) error {
	codes := workout.Codes()
	types := make([]WorkoutType, 0, len(codes))
	for _, code := range codes {
		t, err := describeWorkout(code)
		if err != nil {
			return JsonError(c, http.StatusInternalServerError, err)
		}
		types = append(types, t)
	}

	return c.JSON(http.StatusOK, ListWorkoutTypesResponse{Types: types})
}

type CreateReportRequest struct {
	Code string    `json:"code" validate:"required"`
	Data []float64 `json:"data" validate:"required"`
}

type Report struct {
	report.Report
	Message string `json:"message"`
}

func toResponse(r report.Report, _ int) Report {
	return Report{
		Report:  r,
		Message: r.Message(),
	}
}

func (s *Server) CreateReport(c echo.Context) error {
	var req CreateReportRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}
	ctx := c.Request().Context()

	r, err := s.tracker.Report(ctx, tracker.Package{Code: req.Code, Data: req.Data})
	if err != nil {
		return JsonError(c, errorStatus(err), err)
	}

	return c.JSON(http.StatusOK, toResponse(r, 0))
}

type CreateReportsRequest struct {
	Packages []tracker.Package `json:"packages" validate:"required,min=1,dive"`
}

type CreateReportsResponse struct {
	Reports []Report `json:"reports"`
}

func (s *Server) CreateReports(c echo.Context) error {
	var req CreateReportsRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}
	ctx := c.Request().Context()

	lst, err := s.tracker.ReportAll(ctx, req.Packages)
	if err != nil {
		return JsonError(c, errorStatus(err), err)
	}

	return c.JSON(http.StatusOK, CreateReportsResponse{
		Reports: lo.Map(lst, toResponse),
	})
}

type Total struct {
	TrainingType string  `json:"training_type"`
	Workouts     int     `json:"workouts"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Calories     float64 `json:"calories"`
}

type ListTotalsResponse struct {
	Totals []Total `json:"totals"`
}

func (s *Server) ListTotals(c echo.Context) error {
	return c.JSON(http.StatusOK, ListTotalsResponse{
		Totals: lo.Map(s.totals.Snapshot(), func(t tracker.Total, _ int) Total {
			return Total{
				TrainingType: t.TrainingType,
				Workouts:     t.Workouts,
				Duration:     t.Duration,
				Distance:     t.Distance,
				Calories:     t.Calories,
			}
		}),
	})
}
