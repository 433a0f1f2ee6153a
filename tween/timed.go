package tween

import (
	"fmt"
	"math"

	"github.com/matt-g-everett/ledtween/util"
)

// A Target is what a Timed animation writes into on every frame.
type Target interface {
	// IsValid reports whether the target still exists. It is checked on
	// every tick; a Timed animation whose target goes away aborts itself.
	IsValid() bool
	// Refresh applies the eased progress t. Easing curves may take t
	// outside [0, 1]. Refresh must not play or abort the animation.
	Refresh(t float64)
}

// Timed is an animation with a duration, advanced by its Driver. On each tick
// the progress is eased and handed to the Target.
type Timed struct {
	lifecycle

	driver Driver
	target Target
	easing EasingFunc

	duration   float64
	current    float64
	reversed   bool
	registered bool
}

// NewTimed creates an instance of a Timed animation. A nil easing means
// linear. It panics if target is nil.
func NewTimed(target Target, duration float64, easing EasingFunc) *Timed {
	if target == nil {
		panic("tween: NewTimed called with a nil target")
	}

	t := new(Timed)
	t.target = target
	t.SetDuration(duration)
	t.easing = easing
	if t.easing == nil {
		t.easing = Linear
	}
	return t
}

// Target returns the animation's target.
func (t *Timed) Target() Target {
	return t.target
}

// IsValid reports whether the target is still valid.
func (t *Timed) IsValid() bool {
	return t.target.IsValid()
}

// Duration returns the duration in seconds.
func (t *Timed) Duration() float64 {
	return t.duration
}

// SetDuration sets the duration, clamped to zero or more. Use ScaleTime to
// keep the current progress.
func (t *Timed) SetDuration(duration float64) {
	t.duration = math.Max(0, duration)
}

// CurrentTime returns the elapsed time of the current pass.
func (t *Timed) CurrentTime() float64 {
	return t.current
}

// IsReversed reports whether the animation plays backwards.
func (t *Timed) IsReversed() bool {
	return t.reversed
}

// Progress returns CurrentTime / Duration clamped to [0, 1]. A zero-length
// animation is always at its end.
func (t *Timed) Progress() float64 {
	if t.duration == 0 {
		return 1
	}
	return util.Clamp01(t.current / t.duration)
}

func (t *Timed) isComplete() bool {
	if t.duration == 0 {
		return true
	}
	if t.reversed {
		return t.Progress() <= 0
	}
	return t.Progress() >= 1
}

// Driver returns the driver ticking this animation, binding the default
// driver on first use.
func (t *Timed) Driver() Driver {
	if t.driver == nil {
		t.driver = DefaultDriver()
	}
	return t.driver
}

// SetDriver changes the driver. A registered animation moves its
// registration to the new driver.
func (t *Timed) SetDriver(d Driver) {
	if t.registered {
		t.unregister()
		t.driver = d
		t.register()
		return
	}
	t.driver = d
}

func (t *Timed) register() {
	if t.registered {
		return
	}
	if err := t.Driver().Add(t); err != nil {
		panic(fmt.Sprintf("tween: registering timed animation: %v", err))
	}
	t.registered = true
}

func (t *Timed) unregister() {
	if !t.registered {
		return
	}
	if err := t.Driver().Remove(t); err != nil {
		panic(fmt.Sprintf("tween: unregistering timed animation: %v", err))
	}
	t.registered = false
}

func (t *Timed) refresh() {
	t.target.Refresh(t.easing(t.Progress()))
}

// Play starts the animation from the beginning (the end, when reversed).
// A zero-length animation completes before Play returns.
func (t *Timed) Play(onComplete func(), onAbort func()) error {
	if t.IsValid() {
		t.clearRepeat()
	}
	return t.play(onComplete, onAbort)
}

func (t *Timed) play(onComplete func(), onAbort func()) error {
	if !t.IsValid() {
		Log.Println("cannot play timed animation: invalid target")
		return ErrInvalid
	}

	if t.duration == 0 {
		t.unregister()
		t.begin(onComplete, onAbort)
		t.target.Refresh(t.easing(1))
		t.notifyComplete()
		return nil
	}

	t.register()
	t.begin(onComplete, onAbort)
	if t.reversed {
		t.current = t.duration
	} else {
		t.current = 0
	}
	t.refresh()
	return nil
}

// PlayRepeat plays the animation repeat+1 times, or forever for Infinite.
func (t *Timed) PlayRepeat(repeat int, onRepeat func(), onAllComplete func(), onAbort func()) error {
	if t.duration == 0 && repeat == Infinite {
		Log.Println("cannot loop a zero-length animation forever")
		return ErrInfiniteInstant
	}
	return t.startRepeat(t.IsValid(), repeat, onRepeat, onAllComplete, onAbort, t.play, t.Abort)
}

// Abort stops the animation where it is.
func (t *Timed) Abort() {
	t.unregister()
	t.abort()
}

// FastForward jumps to the end of the current direction and completes.
func (t *Timed) FastForward() error {
	if t.reversed {
		t.current = 0
	} else {
		t.current = t.duration
	}
	if t.IsValid() {
		t.refresh()
	}
	t.unregister()
	t.fastForward()
	return nil
}

// ScaleTime changes the duration while keeping the progress made so far.
func (t *Timed) ScaleTime(duration float64) {
	progress := t.Progress()
	t.SetDuration(duration)
	t.current = t.duration * progress
}

// ChangeSpeed scales the remaining time by 1/multiplier. Non-positive
// multipliers are ignored.
func (t *Timed) ChangeSpeed(multiplier float64) {
	if multiplier <= 0 {
		Log.Printf("ignoring speed multiplier %v", multiplier)
		return
	}
	t.ScaleTime(t.duration / multiplier)
}

// Reverse flips the direction of play, continuing from the current time.
func (t *Timed) Reverse() {
	t.reversed = !t.reversed
}

// Update advances the animation by dt. It is called by the driver.
func (t *Timed) Update(dt float64) {
	if !t.playing || t.paused {
		return
	}

	if !t.IsValid() {
		t.current = t.duration
		t.Abort()
		return
	}

	if t.reversed {
		t.current -= dt
	} else {
		t.current += dt
	}
	t.refresh()

	if t.isComplete() {
		if !t.looping {
			t.unregister()
		}
		t.notifyComplete()
	}
}
