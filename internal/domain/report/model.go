package report

import (
	"fmt"
	"github.com/burenotti/go_fitness_tracker/internal/domain/workout"
)

const messageTemplate = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// Report is the computed summary of a single workout.
type Report struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

func New(w workout.Workout) Report {
	return Report{
		TrainingType: w.Type(),
		Duration:     w.DurationHours(),
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     w.Calories(),
	}
}

func (r Report) Message() string {
	return fmt.Sprintf(messageTemplate, r.TrainingType, r.Duration, r.Distance, r.Speed, r.Calories)
}

func (r Report) String() string {
	return r.Message()
}
