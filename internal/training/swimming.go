package training

const (
	swimmingSpeedShift       = 1.1
	swimmingWeightMultiplier = 2
)

// Swimming is a pool swim measured in strokes and laps.
type Swimming struct {
	record
	PoolLengthM float64
	PoolLaps    int
}

// NewSwimming creates a swimming workout.
func NewSwimming(action int, durationHours, weightKg, poolLengthM float64, poolLaps int) *Swimming {
	return &Swimming{
		record:      newRecord(action, durationHours, weightKg, StrokeLength),
		PoolLengthM: poolLengthM,
		PoolLaps:    poolLaps,
	}
}

func (s *Swimming) Name() string { return "Swimming" }

// MeanSpeed is derived from pool length and laps, not from strokes.
func (s *Swimming) MeanSpeed() (float64, error) {
	if s.DurationHours == 0 {
		return 0, ErrZeroDuration
	}
	return s.PoolLengthM * float64(s.PoolLaps) / MetersInKm / s.DurationHours, nil
}

// SpentCalories = (speed + 1.1) * 2 * weight.
func (s *Swimming) SpentCalories() (float64, error) {
	speed, err := s.MeanSpeed()
	if err != nil {
		return 0, err
	}
	return (speed + swimmingSpeedShift) * swimmingWeightMultiplier * s.WeightKg, nil
}
