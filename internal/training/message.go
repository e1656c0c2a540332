package training

import (
	"fmt"
	"strings"
)

// Supported summary locales.
const (
	LocaleRU = "ru"
	LocaleEN = "en"
)

// InfoMessage is the summary of a finished workout.
type InfoMessage struct {
	TrainingType string
	Duration     float64 // h
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

type labels struct {
	trainingType, duration, distance, speed, calories string
	hours, km, kmh                                    string
}

var localeLabels = map[string]labels{
	LocaleRU: {
		trainingType: "Тип тренировки",
		duration:     "Длительность",
		distance:     "Дистанция",
		speed:        "Ср. скорость",
		calories:     "Потрачено ккал",
		hours:        "ч.",
		km:           "км",
		kmh:          "км/ч",
	},
	LocaleEN: {
		trainingType: "Training type",
		duration:     "Duration",
		distance:     "Distance",
		speed:        "Avg. speed",
		calories:     "Calories burned",
		hours:        "h",
		km:           "km",
		kmh:          "km/h",
	},
}

// IsSupportedLocale reports whether summaries can be rendered in locale.
func IsSupportedLocale(locale string) bool {
	_, ok := localeLabels[strings.ToLower(strings.TrimSpace(locale))]
	return ok
}

// ShowTrainingInfo computes the metrics of w into a summary.
func ShowTrainingInfo(w Workout) (InfoMessage, error) {
	speed, err := w.MeanSpeed()
	if err != nil {
		return InfoMessage{}, fmt.Errorf("computing %s speed: %w", w.Name(), err)
	}
	calories, err := w.SpentCalories()
	if err != nil {
		return InfoMessage{}, fmt.Errorf("computing %s calories: %w", w.Name(), err)
	}
	return InfoMessage{
		TrainingType: w.Name(),
		Duration:     w.Duration(),
		Distance:     w.Distance(),
		Speed:        speed,
		Calories:     calories,
	}, nil
}

// Message renders the summary with Russian labels.
func (m InfoMessage) Message() string {
	return m.Localized(LocaleRU)
}

// Localized renders the summary with the labels of locale, falling back to
// Russian for unsupported locales. Numbers always carry three decimals.
func (m InfoMessage) Localized(locale string) string {
	l, ok := localeLabels[strings.ToLower(strings.TrimSpace(locale))]
	if !ok {
		l = localeLabels[LocaleRU]
	}
	return fmt.Sprintf("%s: %s; %s: %.3f %s; %s: %.3f %s; %s: %.3f %s; %s: %.3f.",
		l.trainingType, m.TrainingType,
		l.duration, m.Duration, l.hours,
		l.distance, m.Distance, l.km,
		l.speed, m.Speed, l.kmh,
		l.calories, m.Calories,
	)
}

func (m InfoMessage) String() string {
	return m.Message()
}
