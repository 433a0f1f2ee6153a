package stream

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// A Twinkle lights a random set of particles in a range of pixels. Progress t
// blends each particle from the colour under it towards the sparkle colour,
// so a PingPong easing twinkles them on and off again.
type Twinkle struct {
	frame     *Frame
	particles map[int]colorful.Color
	colour    colorful.Color
}

// NewTwinkle creates an instance of a Twinkle choosing numParticles pixels in
// [start, end) with rng.
func NewTwinkle(frame *Frame, start, end, numParticles int, colour colorful.Color, rng *rand.Rand) *Twinkle {
	t := new(Twinkle)
	t.frame = frame
	t.colour = colour
	t.particles = make(map[int]colorful.Color)

	if frame != nil && end > start && end <= frame.Len() {
		if numParticles > end-start {
			numParticles = end - start
		}
		for len(t.particles) < numParticles {
			i := start + rng.Intn(end-start)
			t.particles[i] = frame.Pixels[i]
		}
	}

	return t
}

// Particles returns the number of lit pixels.
func (t *Twinkle) Particles() int {
	return len(t.particles)
}

// IsValid reports whether the twinkle is still attached to a frame holding
// its particles.
func (t *Twinkle) IsValid() bool {
	if t.frame == nil {
		return false
	}
	for i := range t.particles {
		if i >= t.frame.Len() {
			return false
		}
	}
	return true
}

// Refresh blends every particle towards the sparkle colour by t.
func (t *Twinkle) Refresh(v float64) {
	if !t.IsValid() {
		return
	}
	for i, back := range t.particles {
		t.frame.Pixels[i] = back.BlendRgb(t.colour, v)
	}
}

// Detach releases the frame.
func (t *Twinkle) Detach() {
	t.frame = nil
}
