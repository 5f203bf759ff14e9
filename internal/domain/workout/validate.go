package workout

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"math"
	"strings"
)

var validate = newValidator()

func newValidator() func(w Workout) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("finite", isFinite); err != nil {
		panic(err)
	}

	return func(w Workout) error {
		if err := v.Struct(w); err != nil {
			var errs validator.ValidationErrors
			if !errors.As(err, &errs) {
				return fmt.Errorf("%w: %s", ErrInvalidArgument, err)
			}

			msgs := make([]string, 0, len(errs))
			for _, e := range errs {
				msgs = append(msgs, fieldMessage(e))
			}
			return fmt.Errorf("%w: %s: %s", ErrInvalidArgument, w.Type(), strings.Join(msgs, ", "))
		}

		return checkDerived(w)
	}
}

func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// checkDerived rejects readings that are finite on their own but overflow
// the formulas, e.g. a duration so small the speed becomes infinite.
func checkDerived(w Workout) error {
	derived := []struct {
		name  string
		value float64
	}{
		{name: "distance", value: w.Distance()},
		{name: "mean speed", value: w.MeanSpeed()},
		{name: "calories", value: w.Calories()},
	}
	for _, d := range derived {
		if math.IsInf(d.value, 0) || math.IsNaN(d.value) {
			return fmt.Errorf("%w: %s: %s is not a finite number", ErrInvalidArgument, w.Type(), d.name)
		}
	}
	return nil
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "finite":
		return fmt.Sprintf("%s must be a finite number, got %v", e.Field(), e.Value())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s, got %v", e.Field(), e.Param(), e.Value())
	case "gte":
		return fmt.Sprintf("%s must not be less than %s, got %v", e.Field(), e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s failed on %q", e.Field(), e.Tag())
	}
}
