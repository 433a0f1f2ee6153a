package stream

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Frame represents a frame of RGB pixels to display on an ledrx device.
// Animations write into the pixels between ticks and the streamer sends the
// result after every tick.
type Frame struct {
	Pixels []colorful.Color
}

// NewFrame creates a new Frame instance of numPixels black pixels.
func NewFrame(numPixels int) *Frame {
	f := new(Frame)
	f.Pixels = make([]colorful.Color, numPixels)
	return f
}

// Len returns the number of pixels.
func (f *Frame) Len() int {
	return len(f.Pixels)
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c colorful.Color) {
	for i := range f.Pixels {
		f.Pixels[i] = c
	}
}

// Copy returns a deep copy of the frame.
func (f *Frame) Copy() *Frame {
	out := NewFrame(len(f.Pixels))
	copy(out.Pixels, f.Pixels)
	return out
}

// InterpolateFrame merges two frames. The result is as long as the shorter
// of the two.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	n := len(f.Pixels)
	if len(f2.Pixels) < n {
		n = len(f2.Pixels)
	}

	out := NewFrame(n)
	for i := 0; i < n; i++ {
		out.Pixels[i] = f.Pixels[i].BlendHcl(f2.Pixels[i], transitionPoint).Clamped()
	}

	return out
}

// MarshalBinary converts a Frame into binary data: the pixel count as a
// little-endian uint16 followed by one RGB triple per pixel.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	numPixels := len(f.Pixels)
	if numPixels > math.MaxUint16 {
		return nil, fmt.Errorf("frame of %d pixels is too long to marshal", numPixels)
	}

	data = make([]byte, 2, (numPixels*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(numPixels))
	for _, p := range f.Pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
