package models

// Package is one raw sensor reading: a workout code and its positional values.
type Package struct {
	Type string    `yaml:"type" json:"type"`
	Data []float64 `yaml:"data" json:"data"`
}

// DemoPackages is the reading set processed when no other input is given.
func DemoPackages() []Package {
	return []Package{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}
