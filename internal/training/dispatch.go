package training

import (
	"fmt"
	"math"
)

// Kind identifies a workout type.
type Kind int

const (
	KindSwimming Kind = iota + 1
	KindRunning
	KindSportsWalking
)

// Workout codes as sent by the sensor block.
const (
	CodeSwimming      = "SWM"
	CodeRunning       = "RUN"
	CodeSportsWalking = "WLK"
)

var kindsByCode = map[string]Kind{
	CodeSwimming:      KindSwimming,
	CodeRunning:       KindRunning,
	CodeSportsWalking: KindSportsWalking,
}

// ParseKind maps a workout code to its Kind. Codes are matched exactly.
func ParseKind(code string) (Kind, error) {
	k, ok := kindsByCode[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}
	return k, nil
}

// Arity returns the number of positional values the kind is built from.
func (k Kind) Arity() int {
	switch k {
	case KindSwimming:
		return 5
	case KindRunning:
		return 3
	case KindSportsWalking:
		return 4
	}
	return 0
}

func (k Kind) String() string {
	switch k {
	case KindSwimming:
		return CodeSwimming
	case KindRunning:
		return CodeRunning
	case KindSportsWalking:
		return CodeSportsWalking
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ReadPackage builds a workout from a sensor package: a workout code and its
// positional readings. The order is
//
//	RUN: action, duration, weight
//	WLK: action, duration, weight, height
//	SWM: action, duration, weight, pool length, pool laps
//
// Counts (action, pool laps) must be integral. Nothing is defaulted.
func ReadPackage(code string, data []float64) (Workout, error) {
	kind, err := ParseKind(code)
	if err != nil {
		return nil, err
	}
	if len(data) != kind.Arity() {
		return nil, fmt.Errorf("%w: %s takes %d values, got %d",
			ErrMalformedArguments, kind, kind.Arity(), len(data))
	}

	action, err := integral(data[0], "action")
	if err != nil {
		return nil, err
	}
	duration, weight := data[1], data[2]

	switch kind {
	case KindRunning:
		return NewRunning(action, duration, weight), nil
	case KindSportsWalking:
		return NewSportsWalking(action, duration, weight, data[3]), nil
	case KindSwimming:
		laps, err := integral(data[4], "pool laps")
		if err != nil {
			return nil, err
		}
		return NewSwimming(action, duration, weight, data[3], laps), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
}

// integral converts a reading that must be a whole count.
func integral(v float64, field string) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %v", ErrMalformedArguments, field, v)
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%w: %s out of range: %v", ErrMalformedArguments, field, v)
	}
	return int(v), nil
}
