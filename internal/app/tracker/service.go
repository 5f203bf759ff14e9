package tracker

import (
	"context"
	"fmt"
	"github.com/burenotti/go_fitness_tracker/internal/domain"
	"github.com/burenotti/go_fitness_tracker/internal/domain/report"
	"github.com/burenotti/go_fitness_tracker/internal/domain/workout"
	"log/slog"
)

// Package is a raw reading received from the sensors.
type Package struct {
	Code string    `yaml:"code" json:"code" validate:"required"`
	Data []float64 `yaml:"data" json:"data" validate:"required"`
}

type MessageBus interface {
	PublishEvents(events ...domain.Event) error
}

type Service struct {
	logger *slog.Logger
	msgBus MessageBus
}

func New(logger *slog.Logger, msgBus MessageBus) *Service {
	return &Service{
		logger: logger,
		msgBus: msgBus,
	}
}

func (s *Service) Report(ctx context.Context, pkg Package) (report.Report, error) {
	if err := ctx.Err(); err != nil {
		return report.Report{}, err
	}

	w, err := workout.Build(pkg.Code, pkg.Data)
	if err != nil {
		return report.Report{}, err
	}

	r := report.New(w)
	s.logger.DebugContext(ctx, "workout computed",
		"code", w.Code(),
		"type", r.TrainingType,
		"distance", r.Distance,
		"speed", r.Speed,
		"calories", r.Calories,
	)

	if s.msgBus != nil {
		if err := s.msgBus.PublishEvents(NewReportedEvent(w.Code(), r)); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish events", "error", err)
		}
	}

	return r, nil
}

// ReportAll computes reports in input order and stops at the first package
// that cannot be processed.
func (s *Service) ReportAll(ctx context.Context, pkgs []Package) ([]report.Report, error) {
	reports := make([]report.Report, 0, len(pkgs))
	for i, pkg := range pkgs {
		r, err := s.Report(ctx, pkg)
		if err != nil {
			return reports, fmt.Errorf("package #%d (%s): %w", i, pkg.Code, err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}
