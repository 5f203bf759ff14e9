package tracker

import (
	"fmt"
	"github.com/burenotti/go_fitness_tracker/internal/domain"
	"github.com/samber/lo"
	"sort"
	"sync"
)

// Total sums the reports of one training type.
type Total struct {
	TrainingType string
	Workouts     int
	Duration     float64
	Distance     float64
	Calories     float64
}

// Totals accumulates reported workouts per training type.
type Totals struct {
	mu     sync.Mutex
	totals map[string]*Total
}

func NewTotals() *Totals {
	return &Totals{totals: make(map[string]*Total)}
}

func (t *Totals) EventTypes() []string {
	return []string{EventReported}
}

func (t *Totals) Handle(event domain.Event) error {
	e, ok := event.(*ReportedEvent)
	if !ok {
		return fmt.Errorf("unexpected event %T", event)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	name := e.Report.TrainingType
	total, ok := t.totals[name]
	if !ok {
		total = &Total{TrainingType: name}
		t.totals[name] = total
	}
	total.Workouts++
	total.Duration += e.Report.Duration
	total.Distance += e.Report.Distance
	total.Calories += e.Report.Calories
	return nil
}

// Snapshot returns the totals sorted by training type. Handlers run
// asynchronously, so call it after the bus is closed for final numbers.
func (t *Totals) Snapshot() []Total {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := lo.MapToSlice(t.totals, func(_ string, total *Total) Total {
		return *total
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].TrainingType < out[j].TrainingType
	})
	return out
}
