package stream

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/tween"
)

// BlendFunc mixes two colours at t, which may lie outside [0, 1].
type BlendFunc func(from, to colorful.Color, t float64) colorful.Color

// A Fade blends a range of pixels towards a colour. It is the target of a
// tween.Timed animation.
type Fade struct {
	frame *Frame
	start int
	end   int
	from  []colorful.Color
	to    colorful.Color
	blend BlendFunc
}

// NewFade creates an instance of a Fade over pixels [start, end) of frame.
// A nil from starts each pixel at the colour it has now. A nil blend means
// tween.LerpColor.
func NewFade(frame *Frame, start, end int, from *colorful.Color, to colorful.Color, blend BlendFunc) *Fade {
	f := new(Fade)
	f.frame = frame
	f.start = start
	f.end = end
	f.to = to
	f.blend = blend
	if f.blend == nil {
		f.blend = tween.LerpColor
	}

	if f.IsValid() {
		f.from = make([]colorful.Color, end-start)
		if from != nil {
			for i := range f.from {
				f.from[i] = *from
			}
		} else {
			copy(f.from, frame.Pixels[start:end])
		}
	}

	return f
}

// From returns the starting colours, one per pixel in the range.
func (f *Fade) From() []colorful.Color {
	return f.from
}

// To returns the final colour.
func (f *Fade) To() colorful.Color {
	return f.to
}

// IsValid reports whether the fade is attached to a frame that still holds
// its range.
func (f *Fade) IsValid() bool {
	return f.frame != nil && f.start >= 0 && f.start <= f.end && f.end <= f.frame.Len() &&
		(f.from == nil || len(f.from) == f.end-f.start)
}

// Refresh writes the blended colours for t into the frame.
func (f *Fade) Refresh(t float64) {
	if !f.IsValid() {
		return
	}
	for i, from := range f.from {
		f.frame.Pixels[f.start+i] = f.blend(from, f.to, t)
	}
}

// Detach releases the frame. Animations on a detached fade abort on their
// next tick.
func (f *Fade) Detach() {
	f.frame = nil
}
