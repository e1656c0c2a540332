package training

import "errors"

var (
	// ErrUnknownWorkoutType is returned for a workout code with no matching kind.
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrMalformedArguments is returned when the positional data does not fit the kind.
	ErrMalformedArguments = errors.New("malformed workout arguments")
	// ErrZeroDuration is returned when speed is derived from a zero-length workout.
	ErrZeroDuration = errors.New("workout duration is zero")
	// ErrZeroHeight is returned when walking calories are computed for a zero height.
	ErrZeroHeight = errors.New("walker height is zero")
)
