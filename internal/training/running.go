package training

const (
	runningSpeedMultiplier = 18
	runningSpeedShift      = 20
)

// Running is a run measured in steps.
type Running struct {
	record
}

// NewRunning creates a running workout.
func NewRunning(action int, durationHours, weightKg float64) *Running {
	return &Running{record: newRecord(action, durationHours, weightKg, StepLength)}
}

func (r *Running) Name() string { return "Running" }

// SpentCalories = (18 * speed - 20) * weight / 1000 * minutes.
func (r *Running) SpentCalories() (float64, error) {
	speed, err := r.MeanSpeed()
	if err != nil {
		return 0, err
	}
	return (runningSpeedMultiplier*speed - runningSpeedShift) *
		r.WeightKg / MetersInKm * r.durationMinutes(), nil
}
