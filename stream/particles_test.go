package stream

import (
	"math/rand"
	"testing"
)

func countColour(f *Frame, start, end int, want func(i int) bool) int {
	n := 0
	for i := start; i < end; i++ {
		if want(i) {
			n++
		}
	}
	return n
}

func TestTwinkleLightsParticlesInRange(t *testing.T) {
	f := NewFrame(10)
	f.Fill(blue)
	tw := NewTwinkle(f, 2, 8, 3, red, rand.New(rand.NewSource(1)))
	if tw.Particles() != 3 {
		t.Fatalf("%d particles, want 3", tw.Particles())
	}

	tw.Refresh(1)
	isRed := func(i int) bool { return f.Pixels[i].AlmostEqualRgb(red) }
	if n := countColour(f, 0, 10, isRed); n != 3 {
		t.Errorf("%d red pixels, want 3", n)
	}
	if n := countColour(f, 2, 8, isRed); n != 3 {
		t.Errorf("%d red pixels inside the range, want 3", n)
	}

	tw.Refresh(0)
	if n := countColour(f, 0, 10, func(i int) bool { return f.Pixels[i] == blue }); n != 10 {
		t.Errorf("%d blue pixels at t=0, want 10", n)
	}
}

func TestTwinkleCapsParticles(t *testing.T) {
	f := NewFrame(4)
	tw := NewTwinkle(f, 1, 3, 10, red, rand.New(rand.NewSource(1)))
	if tw.Particles() != 2 {
		t.Errorf("%d particles in a range of 2", tw.Particles())
	}
	if tw := NewTwinkle(nil, 0, 3, 2, red, rand.New(rand.NewSource(1))); tw.IsValid() || tw.Particles() != 0 {
		t.Error("twinkle without a frame is valid")
	}

	tw.Detach()
	if tw.IsValid() {
		t.Error("detached twinkle is valid")
	}
}

func TestStreakCrossesRange(t *testing.T) {
	f := NewFrame(10)
	s := NewStreak(f, 0, 10, 2, red)
	if s.Head(0) != 0 || s.Head(1) != 12 {
		t.Errorf("head runs from %v to %v", s.Head(0), s.Head(1))
	}

	s.Refresh(0.5)
	for i, p := range f.Pixels {
		lit := i == 4 || i == 5
		if lit && !p.AlmostEqualRgb(red) {
			t.Errorf("pixel %d is %v, want red", i, p)
		}
		if !lit && p != black {
			t.Errorf("pixel %d is %v, want black", i, p)
		}
	}

	s.Refresh(1)
	for i, p := range f.Pixels {
		if p != black {
			t.Errorf("pixel %d is %v after the streak passed", i, p)
		}
	}
}

func TestStreakFadesAtTheEnds(t *testing.T) {
	f := NewFrame(10)
	s := NewStreak(f, 0, 10, 4, red)
	s.Refresh(0.1)
	if f.Pixels[0] == black || f.Pixels[0].AlmostEqualRgb(red) {
		t.Errorf("streak setting off drew %v, want a dim red", f.Pixels[0])
	}

	s.Detach()
	if s.IsValid() {
		t.Error("detached streak is valid")
	}
	if s := NewStreak(f, 5, 11, 2, red); s.IsValid() {
		t.Error("streak past the frame is valid")
	}
}

func TestShowTwinkleAndStreak(t *testing.T) {
	show, frame, driver := buildShow(t, `
root:
  sequence:
    - fade: {from: "#0000ff", to: "#0000ff", duration: 0}
    - twinkle: {particles: 2, colour: "#ff0000", duration: 1, easing: PingPong, seed: 7}
    - streak: {colour: "#ff0000", length: 2, duration: 1}
`, 4)
	var completed int
	show.Root.Play(func() { completed++ }, nil)

	driver.Tick(0.5)
	isRed := func(i int) bool { return frame.Pixels[i].AlmostEqualRgb(red) }
	if n := countColour(frame, 0, 4, isRed); n != 2 {
		t.Errorf("%d twinkling pixels, want 2", n)
	}
	driver.Tick(0.5)
	if n := countColour(frame, 0, 4, func(i int) bool { return frame.Pixels[i] == blue }); n != 4 {
		t.Errorf("twinkle left %d blue pixels, want 4", n)
	}

	driver.Tick(0.5)
	if n := countColour(frame, 0, 4, isRed); n != 2 {
		t.Errorf("streak lit %d pixels, want 2", n)
	}
	driver.Tick(0.5)
	if completed != 1 {
		t.Errorf("completed=%d", completed)
	}
}
