package workout

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownWorkoutType = errors.New("no such workout type")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrArityMismatch      = fmt.Errorf("%w: invalid argument count", ErrInvalidArgument)
)

type Code string

const (
	CodeSwimming Code = "SWM"
	CodeRunning  Code = "RUN"
	CodeWalking  Code = "WLK"
)

const (
	TypeRunning       = "Running"
	TypeSportsWalking = "SportsWalking"
	TypeSwimming      = "Swimming"
)

const (
	MInKm     = 1000
	MinInH    = 60
	CmInM     = 100
	KmhInMsec = 0.278

	LenStep         = 0.65
	SwimmingLenStep = 1.38

	RunningCaloriesMeanSpeedMultiplier = 18
	RunningCaloriesMeanSpeedShift      = 1.79

	WalkingCaloriesWeightMultiplier = 0.035
	WalkingSpeedHeightMultiplier    = 0.029

	SwimmingCaloriesMeanSpeedShift   = 1.1
	SwimmingCaloriesWeightMultiplier = 2
)

// Workout is one completed training. The set of implementations is closed:
// only Running, SportsWalking and Swimming satisfy it.
type Workout interface {
	Code() Code
	Type() string
	DurationHours() float64
	Distance() float64
	MeanSpeed() float64
	Calories() float64

	sealed()
}

// training holds the readings shared by every workout. It has no calorie
// formula of its own and is never a Workout by itself.
type training struct {
	Action   int     `validate:"gte=0"`
	Duration float64 `validate:"finite,gt=0"`
	Weight   float64 `validate:"finite,gt=0"`

	lenStep float64
}

func (t training) DurationHours() float64 {
	return t.Duration
}

// Distance returns the covered distance in km.
func (t training) Distance() float64 {
	return float64(t.Action) * t.lenStep / MInKm
}

// MeanSpeed returns the average speed in km/h.
func (t training) MeanSpeed() float64 {
	return t.Distance() / t.Duration
}

func (training) sealed() {}

type Running struct {
	training
}

func NewRunning(action int, duration, weight float64) (*Running, error) {
	r := &Running{
		training: training{
			Action:   action,
			Duration: duration,
			Weight:   weight,
			lenStep:  LenStep,
		},
	}
	if err := validate(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (*Running) Code() Code {
	return CodeRunning
}

func (*Running) Type() string {
	return TypeRunning
}

func (r *Running) Calories() float64 {
	return (RunningCaloriesMeanSpeedMultiplier*r.MeanSpeed() +
		RunningCaloriesMeanSpeedShift) *
		r.Weight / MInKm *
		(r.Duration * MinInH)
}

type SportsWalking struct {
	training
	Height float64 `validate:"finite,gt=0"`
}

func NewSportsWalking(action int, duration, weight, height float64) (*SportsWalking, error) {
	w := &SportsWalking{
		training: training{
			Action:   action,
			Duration: duration,
			Weight:   weight,
			lenStep:  LenStep,
		},
		Height: height,
	}
	if err := validate(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (*SportsWalking) Code() Code {
	return CodeWalking
}

func (*SportsWalking) Type() string {
	return TypeSportsWalking
}

func (w *SportsWalking) Calories() float64 {
	speed := w.MeanSpeed() * KmhInMsec
	return (WalkingCaloriesWeightMultiplier*w.Weight +
		speed*speed/(w.Height/CmInM)*WalkingSpeedHeightMultiplier*w.Weight) *
		(w.Duration * MinInH)
}

type Swimming struct {
	training
	LengthPool float64 `validate:"finite,gt=0"`
	CountPool  int     `validate:"gte=0"`
}

func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) (*Swimming, error) {
	s := &Swimming{
		training: training{
			Action:   action,
			Duration: duration,
			Weight:   weight,
			lenStep:  SwimmingLenStep,
		},
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
	if err := validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (*Swimming) Code() Code {
	return CodeSwimming
}

func (*Swimming) Type() string {
	return TypeSwimming
}

// MeanSpeed is derived from the pool geometry, strokes are not counted.
func (s *Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / MInKm / s.Duration
}

func (s *Swimming) Calories() float64 {
	return (s.MeanSpeed() + SwimmingCaloriesMeanSpeedShift) *
		SwimmingCaloriesWeightMultiplier *
		s.Weight * s.Duration
}
