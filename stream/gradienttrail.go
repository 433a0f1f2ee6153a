package stream

import (
	"math"
)

// A Trail cycles a gradient along a range of pixels. It is the target of a
// tween.Timed animation: progress 0 to 1 scrolls the gradient Cycles times
// along the range.
type Trail struct {
	frame     *Frame
	start     int
	end       int
	gradient  GradientTable
	cycles    float64
	chroma    float64
	luminance float64
}

// NewTrail creates an instance of a Trail over pixels [start, end) of frame.
func NewTrail(frame *Frame, start, end int, gradient GradientTable, cycles, chroma, luminance float64) *Trail {
	g := new(Trail)
	g.frame = frame
	g.start = start
	g.end = end
	g.gradient = gradient
	if len(g.gradient) == 0 {
		g.gradient = DefaultGradient
	}
	g.cycles = cycles
	g.chroma = chroma
	g.luminance = luminance

	return g
}

// IsValid reports whether the trail is attached to a frame that still holds
// its range.
func (g *Trail) IsValid() bool {
	return g.frame != nil && g.start >= 0 && g.start <= g.end && g.end <= g.frame.Len()
}

// Refresh paints the gradient, scrolled by t*cycles lengths of the range.
func (g *Trail) Refresh(t float64) {
	if !g.IsValid() {
		return
	}

	trailLength := float64(g.end - g.start)
	offset := t * g.cycles * trailLength
	for i := g.start; i < g.end; i++ {
		pos := math.Mod(float64(i-g.start)-offset, trailLength) / trailLength
		g.frame.Pixels[i] = g.gradient.GetColor(pos, g.chroma, g.luminance).Clamped()
	}
}

// Detach releases the frame.
func (g *Trail) Detach() {
	g.frame = nil
}
