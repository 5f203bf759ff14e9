package workout_test

import (
	"math"
	"testing"

	"github.com/burenotti/go_fitness_tracker/internal/domain/workout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunning(t *testing.T) {
	r, err := workout.NewRunning(15000, 1, 75)
	require.NoError(t, err)

	assert.Equal(t, workout.CodeRunning, r.Code())
	assert.Equal(t, "Running", r.Type())
	assert.Equal(t, 1.0, r.DurationHours())
	assert.Equal(t, 9.75, r.Distance())
	assert.Equal(t, 9.75, r.MeanSpeed())
	assert.Equal(t, 797.805, r.Calories())
}

func TestSportsWalking(t *testing.T) {
	w, err := workout.NewSportsWalking(9000, 1, 75, 180)
	require.NoError(t, err)

	assert.Equal(t, workout.CodeWalking, w.Code())
	assert.Equal(t, "SportsWalking", w.Type())
	assert.Equal(t, 5.85, w.Distance())
	assert.Equal(t, 5.85, w.MeanSpeed())
	assert.Equal(t, 349.2517475250001, w.Calories())
}

func TestSwimming(t *testing.T) {
	s, err := workout.NewSwimming(720, 1, 80, 25, 40)
	require.NoError(t, err)

	assert.Equal(t, workout.CodeSwimming, s.Code())
	assert.Equal(t, "Swimming", s.Type())
	assert.Equal(t, 0.9935999999999999, s.Distance())
	assert.Equal(t, 1.0, s.MeanSpeed())
	assert.Equal(t, 336.0, s.Calories())
}

func TestSwimmingSpeedIgnoresStrokes(t *testing.T) {
	few, err := workout.NewSwimming(10, 2, 80, 50, 20)
	require.NoError(t, err)
	many, err := workout.NewSwimming(5000, 2, 80, 50, 20)
	require.NoError(t, err)

	assert.Equal(t, few.MeanSpeed(), many.MeanSpeed())
	assert.Equal(t, 0.5, few.MeanSpeed())
	assert.NotEqual(t, few.Distance(), many.Distance())
}

func TestCaloriesFormulas(t *testing.T) {
	const (
		action   = 5432
		duration = 1.75
		weight   = 92.0
		height   = 172.0
	)
	speed := float64(action) * workout.LenStep / workout.MInKm / duration

	t.Run("running", func(t *testing.T) {
		r, err := workout.NewRunning(action, duration, weight)
		require.NoError(t, err)
		expected := (18*speed + 1.79) * weight / 1000 * (duration * 60)
		assert.InDelta(t, expected, r.Calories(), 1e-9)
	})

	t.Run("walking", func(t *testing.T) {
		w, err := workout.NewSportsWalking(action, duration, weight, height)
		require.NoError(t, err)
		kmh := speed * 0.278
		expected := (0.035*weight + kmh*kmh/(height/100)*0.029*weight) * (duration * 60)
		assert.InDelta(t, expected, w.Calories(), 1e-9)
	})

	t.Run("swimming", func(t *testing.T) {
		s, err := workout.NewSwimming(action, duration, weight, 33, 17)
		require.NoError(t, err)
		poolSpeed := 33.0 * 17 / 1000 / duration
		expected := (poolSpeed + 1.1) * 2 * weight * duration
		assert.InDelta(t, expected, s.Calories(), 1e-9)
	})
}

func TestFormulasAreIdempotent(t *testing.T) {
	workouts := []workout.Workout{
		mustBuild(t, "RUN", 15000, 1, 75),
		mustBuild(t, "WLK", 9000, 1, 75, 180),
		mustBuild(t, "SWM", 720, 1, 80, 25, 40),
	}

	for _, w := range workouts {
		t.Run(w.Type(), func(t *testing.T) {
			assert.Equal(t, w.Distance(), w.Distance())
			assert.Equal(t, w.MeanSpeed(), w.MeanSpeed())
			assert.Equal(t, w.Calories(), w.Calories())
		})
	}
}

func TestConstructorValidation(t *testing.T) {
	tests := []struct {
		name  string
		build func() (workout.Workout, error)
		field string
	}{
		{
			name:  "running zero duration",
			build: func() (workout.Workout, error) { return workout.NewRunning(1000, 0, 75) },
			field: "Duration",
		},
		{
			name:  "running negative duration",
			build: func() (workout.Workout, error) { return workout.NewRunning(1000, -1, 75) },
			field: "Duration",
		},
		{
			name:  "running zero weight",
			build: func() (workout.Workout, error) { return workout.NewRunning(1000, 1, 0) },
			field: "Weight",
		},
		{
			name:  "running negative action",
			build: func() (workout.Workout, error) { return workout.NewRunning(-5, 1, 75) },
			field: "Action",
		},
		{
			name:  "walking zero height",
			build: func() (workout.Workout, error) { return workout.NewSportsWalking(1000, 1, 75, 0) },
			field: "Height",
		},
		{
			name:  "swimming zero pool length",
			build: func() (workout.Workout, error) { return workout.NewSwimming(100, 1, 75, 0, 10) },
			field: "LengthPool",
		},
		{
			name:  "running infinite duration",
			build: func() (workout.Workout, error) { return workout.NewRunning(1000, math.Inf(1), 75) },
			field: "Duration",
		},
		{
			name:  "running NaN duration",
			build: func() (workout.Workout, error) { return workout.NewRunning(1000, math.NaN(), 75) },
			field: "Duration",
		},
		{
			name:  "running infinite weight",
			build: func() (workout.Workout, error) { return workout.NewRunning(1000, 1, math.Inf(1)) },
			field: "Weight",
		},
		{
			name:  "walking infinite height",
			build: func() (workout.Workout, error) { return workout.NewSportsWalking(1000, 1, 75, math.Inf(1)) },
			field: "Height",
		},
		{
			name:  "swimming infinite pool length",
			build: func() (workout.Workout, error) { return workout.NewSwimming(100, 1, 75, math.Inf(1), 10) },
			field: "LengthPool",
		},
		{
			name:  "running speed overflows",
			build: func() (workout.Workout, error) { return workout.NewRunning(15000, math.SmallestNonzeroFloat64, 75) },
			field: "mean speed",
		},
		{
			name:  "swimming calories overflow",
			build: func() (workout.Workout, error) { return workout.NewSwimming(100, 1, math.MaxFloat64, 25, 10) },
			field: "calories",
		},
		{
			name:  "swimming negative laps",
			build: func() (workout.Workout, error) { return workout.NewSwimming(100, 1, 75, 25, -1) },
			field: "CountPool",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := tt.build()
			require.ErrorIs(t, err, workout.ErrInvalidArgument)
			assert.Contains(t, err.Error(), tt.field)
			assert.Nil(t, w)
		})
	}
}

func TestZeroActionIsAllowed(t *testing.T) {
	r, err := workout.NewRunning(0, 0.5, 60)
	require.NoError(t, err)
	assert.Zero(t, r.Distance())
	assert.Zero(t, r.MeanSpeed())
}

func mustBuild(t *testing.T, code string, data ...float64) workout.Workout {
	t.Helper()
	w, err := workout.Build(code, data)
	require.NoError(t, err)
	return w
}
