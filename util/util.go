package util

import "math"

// Clamp01 limits value to the range [0, 1].
func Clamp01(value float64) float64 {
	return math.Max(0, math.Min(1, value))
}

// Lerp interpolates between from and to without clamping t, so easing curves
// that overshoot [0, 1] carry their overshoot into the result.
func Lerp(from float64, to float64, t float64) float64 {
	return from + (to-from)*t
}
