package tween

import (
	"math"

	"github.com/fogleman/ease"
)

// An EasingFunc shapes progress in [0, 1]. The result may leave [0, 1]; back
// and elastic curves overshoot on purpose.
type EasingFunc func(t float64) float64

// Linear is the default easing.
var Linear EasingFunc = ease.Linear

// Easings maps curve names, as used in show files, to easing functions.
var Easings = map[string]EasingFunc{
	"Linear":        ease.Linear,
	"Back.In":       ease.InBack,
	"Back.Out":      ease.OutBack,
	"Back.InOut":    ease.InOutBack,
	"Bounce.In":     ease.InBounce,
	"Bounce.Out":    ease.OutBounce,
	"Bounce.InOut":  ease.InOutBounce,
	"Circ.In":       ease.InCirc,
	"Circ.Out":      ease.OutCirc,
	"Circ.InOut":    ease.InOutCirc,
	"Cubic.In":      ease.InCubic,
	"Cubic.Out":     ease.OutCubic,
	"Cubic.InOut":   ease.InOutCubic,
	"Elastic.In":    ease.InElastic,
	"Elastic.Out":   ease.OutElastic,
	"Elastic.InOut": ease.InOutElastic,
	"Expo.In":       ease.InExpo,
	"Expo.Out":      ease.OutExpo,
	"Expo.InOut":    ease.InOutExpo,
	"Quad.In":       ease.InQuad,
	"Quad.Out":      ease.OutQuad,
	"Quad.InOut":    ease.InOutQuad,
	"Quart.In":      ease.InQuart,
	"Quart.Out":     ease.OutQuart,
	"Quart.InOut":   ease.InOutQuart,
	"Quint.In":      ease.InQuint,
	"Quint.Out":     ease.OutQuint,
	"Quint.InOut":   ease.InOutQuint,
	"Sine.In":       ease.InSine,
	"Sine.Out":      ease.OutSine,
	"Sine.InOut":    ease.InOutSine,
	"Parabola":      Parabola,
	"PingPong":      PingPong,
	"PingPong.Sine": PingPongSine,
}

// Easing looks up a curve by name. Unknown names return Linear and false;
// the empty name is Linear.
func Easing(name string) (EasingFunc, bool) {
	if name == "" {
		return Linear, true
	}
	fn, ok := Easings[name]
	if !ok {
		return Linear, false
	}
	return fn, true
}

// Parabola rises from 0 to 1 at the midpoint and falls back to 0.
func Parabola(x float64) float64 {
	r := 2*x - 1
	return 1 - r*r
}

// PingPong rises linearly to 1 at the midpoint and falls back to 0.
func PingPong(x float64) float64 {
	return 1 - math.Abs(2*x-1)
}

// PingPongSine runs one full sine period, starting and ending at 0.5.
func PingPongSine(x float64) float64 {
	return (math.Sin(x*2*math.Pi) + 1) * 0.5
}

// Combine chains easing functions, feeding each result into the next.
func Combine(fns ...EasingFunc) EasingFunc {
	return func(t float64) float64 {
		for _, fn := range fns {
			t = fn(t)
		}
		return t
	}
}
