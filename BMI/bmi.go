package BMI

import (
	"errors"
	"math"
)

// Verdict is the health classification derived from a BMI value.
type Verdict string

const (
	Underweight Verdict = "Underweight"
	Normal      Verdict = "Normal"
	Overweight  Verdict = "Overweight"
	Obese       Verdict = "Obese"
)

var ErrInvalidInput = errors.New("height and weight must be positive numbers")

// Calculate returns weight/height² rounded to two decimals and its verdict.
// Height is in meters, weight in kilograms. The verdict is classified from
// the rounded value so it always matches the number shown to the caller.
func Calculate(height, weight float64) (float64, Verdict, error) {
	if height <= 0 || weight <= 0 || math.IsNaN(height) || math.IsNaN(weight) ||
		math.IsInf(height, 0) || math.IsInf(weight, 0) {
		return 0, "", ErrInvalidInput
	}

	bmi := math.Round(weight/(height*height)*100) / 100

	switch {
	case bmi < 18.5:
		return bmi, Underweight, nil
	case bmi < 25:
		return bmi, Normal, nil
	case bmi < 30:
		return bmi, Overweight, nil
	default:
		return bmi, Obese, nil
	}
}
