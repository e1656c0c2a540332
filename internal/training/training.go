// Package training computes distance, speed and calorie metrics for the
// supported workout kinds and renders them as summary messages.
package training

const (
	// MetersInKm converts step and pool lengths into kilometers.
	MetersInKm = 1000
	// MinutesInHour converts workout duration into minutes for calorie formulas.
	MinutesInHour = 60

	// StepLength is the stride in meters for running and walking.
	StepLength = 0.65
	// StrokeLength is the distance in meters covered by one swimming stroke.
	StrokeLength = 1.38
)

// Workout is a single workout reading with derived metrics.
// Implemented by Running, SportsWalking and Swimming.
type Workout interface {
	// Name is the workout type shown in summaries.
	Name() string
	// Duration returns the workout duration in hours.
	Duration() float64
	// Distance returns the covered distance in km.
	Distance() float64
	// MeanSpeed returns the average speed in km/h.
	MeanSpeed() (float64, error)
	// SpentCalories returns the energy spent in kcal.
	SpentCalories() (float64, error)
}

// record holds the readings every workout kind shares.
type record struct {
	Action        int     // steps or strokes
	DurationHours float64 // hours
	WeightKg      float64

	stepLength float64
}

func newRecord(action int, durationHours, weightKg, stepLength float64) record {
	return record{
		Action:        action,
		DurationHours: durationHours,
		WeightKg:      weightKg,
		stepLength:    stepLength,
	}
}

func (r record) Duration() float64 {
	return r.DurationHours
}

func (r record) Distance() float64 {
	return float64(r.Action) * r.stepLength / MetersInKm
}

func (r record) MeanSpeed() (float64, error) {
	if r.DurationHours == 0 {
		return 0, ErrZeroDuration
	}
	return r.Distance() / r.DurationHours, nil
}

// durationMinutes is the duration term shared by the running and walking formulas.
func (r record) durationMinutes() float64 {
	return r.DurationHours * MinutesInHour
}
