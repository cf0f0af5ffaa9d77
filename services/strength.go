package services

import (
	"errors"
	"math"
)

// ErrNonPositiveBodyweight rejects relative-strength requests that would
// divide by zero or produce a meaningless negative ratio.
var ErrNonPositiveBodyweight = errors.New("bodyweight must be > 0")

// RelativeStrength returns one-rep-max divided by bodyweight, rounded to
// three decimal places.
func RelativeStrength(oneRMKg, bodyweightKg float64) (float64, error) {
	if bodyweightKg <= 0 {
		return 0, ErrNonPositiveBodyweight
	}
	return round3(oneRMKg / bodyweightKg), nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
