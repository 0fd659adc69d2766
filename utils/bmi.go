package utils

import "errors"

var ErrImplausibleBody = errors.New("height/weight outside plausible range")

// BMIResult is what the profile card renders next to the latest weight.
type BMIResult struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

// ComputeBMI derives body mass index from the profile's height_cm and the
// most recent weight record (kg). Inputs the tracker would never store for a
// real person are rejected rather than producing a nonsense card.
func ComputeBMI(heightCm, weightKg float64) (*BMIResult, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return nil, ErrImplausibleBody
	}
	if heightCm < 80 || heightCm > 260 || weightKg < 20 || weightKg > 350 {
		return nil, ErrImplausibleBody
	}

	m := heightCm / 100.0
	value := weightKg / (m * m)
	return &BMIResult{Value: value, Category: bmiCategory(value)}, nil
}

// WHO adult classification.
func bmiCategory(value float64) string {
	switch {
	case value < 18.5:
		return "Underweight"
	case value < 25.0:
		return "Normal weight"
	case value < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}
