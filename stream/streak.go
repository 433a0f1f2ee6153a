package stream

import (
	"math"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/tween"
	"github.com/matt-g-everett/ledtween/util"
)

// A Streak moves a short band of colour across a range of pixels, fading in
// as it sets off and out as it arrives. Pixels it has passed get back the
// colour they had when the streak was created.
type Streak struct {
	frame  *Frame
	start  int
	end    int
	length float64
	colour colorful.Color
	back   []colorful.Color
}

// NewStreak creates an instance of a Streak of length pixels crossing
// [start, end).
func NewStreak(frame *Frame, start, end int, length float64, colour colorful.Color) *Streak {
	s := new(Streak)
	s.frame = frame
	s.start = start
	s.end = end
	s.length = math.Max(1, length)
	s.colour = colour

	if s.IsValid() {
		s.back = make([]colorful.Color, end-start)
		copy(s.back, frame.Pixels[start:end])
	}

	return s
}

// IsValid reports whether the streak is attached to a frame that still holds
// its range.
func (s *Streak) IsValid() bool {
	return s.frame != nil && s.start >= 0 && s.start <= s.end && s.end <= s.frame.Len()
}

// Head returns the position of the leading pixel at progress t. At 0 the
// streak sits just before the range and at 1 just past it.
func (s *Streak) Head(t float64) float64 {
	distance := float64(s.end-s.start) + s.length
	return float64(s.start) + t*distance
}

// Refresh draws the streak at progress t.
func (s *Streak) Refresh(t float64) {
	if !s.IsValid() || s.back == nil {
		return
	}
	copy(s.frame.Pixels[s.start:s.end], s.back)

	gain := ease.InOutQuad(util.Clamp01(tween.PingPong(util.Clamp01(t))))
	head := s.Head(t)
	first := int(math.Ceil(head - s.length))
	last := int(math.Floor(head))
	for i := first; i < last; i++ {
		if i < s.start || i >= s.end {
			continue
		}
		s.frame.Pixels[i] = s.back[i-s.start].BlendHcl(s.colour, gain).Clamped()
	}
}

// Detach releases the frame.
func (s *Streak) Detach() {
	s.frame = nil
}
