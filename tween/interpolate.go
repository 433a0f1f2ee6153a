package tween

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/util"
)

// Lerp interpolates between two values without clamping t.
func Lerp(from float64, to float64, t float64) float64 {
	return util.Lerp(from, to, t)
}

// LerpColor interpolates between two colours in RGB without clamping t, so
// overshooting easings push past the end colour. Clamp before output.
func LerpColor(from colorful.Color, to colorful.Color, t float64) colorful.Color {
	return from.BlendRgb(to, t)
}

// LerpHcl interpolates between two colours along the hue circle. The result
// is always brought back into the RGB gamut.
func LerpHcl(from colorful.Color, to colorful.Color, t float64) colorful.Color {
	return from.BlendHcl(to, t).Clamped()
}
