package training

import "math"

const (
	walkingWeightMultiplier = 0.035
	walkingSpeedMultiplier  = 0.029
)

// SportsWalking is a race walk measured in steps.
type SportsWalking struct {
	record
	HeightCm float64
}

// NewSportsWalking creates a sports walking workout.
func NewSportsWalking(action int, durationHours, weightKg, heightCm float64) *SportsWalking {
	return &SportsWalking{
		record:   newRecord(action, durationHours, weightKg, StepLength),
		HeightCm: heightCm,
	}
}

func (w *SportsWalking) Name() string { return "SportsWalking" }

// SpentCalories = (0.035 * weight + floordiv(speed², height) * 0.029 * weight) * minutes.
//
// The speed term is floor-divided by height, so for realistic inputs it
// contributes nothing. Keep it that way: published figures depend on it.
func (w *SportsWalking) SpentCalories() (float64, error) {
	speed, err := w.MeanSpeed()
	if err != nil {
		return 0, err
	}
	if w.HeightCm == 0 {
		return 0, ErrZeroHeight
	}
	ratio := floorDiv(speed*speed, w.HeightCm)
	return (walkingWeightMultiplier*w.WeightKg +
		ratio*walkingSpeedMultiplier*w.WeightKg) * w.durationMinutes(), nil
}

// floorDiv is floating-point floor division: the quotient is taken from
// x - fmod(x, y), corrected toward negative infinity, then rounded to the
// nearest integral value. This differs from math.Floor(x/y) when x/y rounds
// up across an integer boundary. y must be non-zero.
func floorDiv(x, y float64) float64 {
	mod := math.Mod(x, y)
	div := (x - mod) / y
	if mod != 0 && (y < 0) != (mod < 0) {
		div -= 1.0
	}
	if div == 0 {
		return math.Copysign(0, x/y)
	}
	q := math.Floor(div)
	if div-q > 0.5 {
		q += 1.0
	}
	return q
}
