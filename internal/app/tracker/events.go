package tracker

import (
	"github.com/burenotti/go_fitness_tracker/internal/domain/report"
	"github.com/burenotti/go_fitness_tracker/internal/domain/workout"
	"time"
)

const EventReported = "workout.reported"

type ReportedEvent struct {
	At     time.Time
	Code   workout.Code
	Report report.Report
}

func NewReportedEvent(code workout.Code, r report.Report) *ReportedEvent {
	return &ReportedEvent{
		At:     time.Now().UTC(),
		Code:   code,
		Report: r,
	}
}

func (e *ReportedEvent) Type() string {
	return EventReported
}

func (e *ReportedEvent) PublishedAt() time.Time {
	return e.At
}
