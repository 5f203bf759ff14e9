package workout

import (
	"fmt"
	"math"
)

type constructor struct {
	name   string
	fields []string
	build  func(data []float64) (Workout, error)
}

var registry = map[Code]constructor{
	CodeSwimming: {
		name:   TypeSwimming,
		fields: []string{"action", "duration", "weight", "length_pool", "count_pool"},
		build: func(data []float64) (Workout, error) {
			action, err := count("action", data[0])
			if err != nil {
				return nil, err
			}
			laps, err := count("count_pool", data[4])
			if err != nil {
				return nil, err
			}
			return NewSwimming(action, data[1], data[2], data[3], laps)
		},
	},
	CodeRunning: {
		name:   TypeRunning,
		fields: []string{"action", "duration", "weight"},
		build: func(data []float64) (Workout, error) {
			action, err := count("action", data[0])
			if err != nil {
				return nil, err
			}
			return NewRunning(action, data[1], data[2])
		},
	},
	CodeWalking: {
		name:   TypeSportsWalking,
		fields: []string{"action", "duration", "weight", "height"},
		build: func(data []float64) (Workout, error) {
			action, err := count("action", data[0])
			if err != nil {
				return nil, err
			}
			return NewSportsWalking(action, data[1], data[2], data[3])
		},
	},
}

// Codes lists the supported workout codes in dispatch order.
func Codes() []Code {
	return []Code{CodeSwimming, CodeRunning, CodeWalking}
}

// Name returns the training type built for code.
func Name(code Code) (string, error) {
	c, ok := registry[code]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}
	return c.name, nil
}

// Fields returns the positional argument names expected for code.
func Fields(code Code) ([]string, error) {
	c, ok := registry[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}
	return append([]string(nil), c.fields...), nil
}

// Build creates the workout selected by code from readings bound positionally.
func Build(code string, data []float64) (Workout, error) {
	c, ok := registry[Code(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}

	if len(data) != len(c.fields) {
		return nil, fmt.Errorf(
			"%w: %s expects %d values (%v), got %d",
			ErrArityMismatch, code, len(c.fields), c.fields, len(data),
		)
	}

	w, err := c.build(data)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func count(name string, v float64) (int, error) {
	if v < 0 || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s must be a whole non-negative number, got %v", ErrInvalidArgument, name, v)
	}
	if v >= math.MaxInt {
		return 0, fmt.Errorf("%w: %s is too large, got %v", ErrInvalidArgument, name, v)
	}
	return int(v), nil
}
