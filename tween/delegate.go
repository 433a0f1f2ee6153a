package tween

// Delegate wraps an animation that is only created when the Delegate is
// played, so it can capture the state of its target at that moment (for
// example fading from whatever colour a pixel has by then). A new inner
// animation is created on every Play.
type Delegate struct {
	lifecycle

	// OnCreated, if set, is called with each newly created animation before
	// it starts playing.
	OnCreated func(a Animation)

	driver   Driver
	create   func() (Animation, error)
	inner    Animation
	timing   func(pc PlaybackControl)
	reversed bool
}

// NewDelegate creates an instance of a Delegate. It panics if create is nil.
func NewDelegate(create func() (Animation, error)) *Delegate {
	if create == nil {
		panic("tween: NewDelegate called with a nil create function")
	}

	d := new(Delegate)
	d.create = create
	return d
}

// Inner returns the most recently created animation, or nil before the first
// Play.
func (d *Delegate) Inner() Animation {
	return d.inner
}

// IsValid is true until the inner animation exists, then follows it.
func (d *Delegate) IsValid() bool {
	return d.inner == nil || d.inner.IsValid()
}

// Driver returns the driver handed to inner animations.
func (d *Delegate) Driver() Driver {
	if d.driver == nil {
		d.driver = DefaultDriver()
	}
	return d.driver
}

// SetDriver sets the driver for this and every future inner animation.
func (d *Delegate) SetDriver(driver Driver) {
	d.driver = driver
	if pc, ok := d.inner.(PlaybackControl); ok {
		pc.SetDriver(driver)
	}
}

// Play creates the inner animation and plays it. If creation fails the
// delegate completes straight away and the error is returned.
func (d *Delegate) Play(onComplete func(), onAbort func()) error {
	if d.IsValid() {
		d.clearRepeat()
	}
	return d.play(onComplete, onAbort)
}

func (d *Delegate) play(onComplete func(), onAbort func()) error {
	if !d.IsValid() {
		Log.Println("cannot play delegate animation: invalid")
		return ErrInvalid
	}
	if d.inner != nil && d.inner.IsPlaying() {
		d.inner.Abort()
	}

	d.begin(onComplete, onAbort)

	inner, err := d.create()
	if err != nil {
		Log.Printf("delegate animation: cannot create animation: %v", err)
		d.inner = nil
		d.fastForward()
		return err
	}
	d.inner = inner

	if pc, ok := inner.(PlaybackControl); ok {
		pc.SetDriver(d.Driver())
		if d.timing != nil {
			d.timing(pc)
		}
		if d.reversed {
			pc.Reverse()
		}
	}
	if d.OnCreated != nil {
		d.OnCreated(inner)
	}

	if !inner.IsValid() {
		d.abort()
		return nil
	}
	return inner.Play(d.notifyComplete, d.abort)
}

// PlayRepeat plays repeat+1 freshly created animations, or forever.
func (d *Delegate) PlayRepeat(repeat int, onRepeat func(), onAllComplete func(), onAbort func()) error {
	return d.startRepeat(d.IsValid(), repeat, onRepeat, onAllComplete, onAbort, d.play, d.Abort)
}

// Abort aborts the inner animation, which aborts the delegate.
func (d *Delegate) Abort() {
	if d.inner == nil {
		d.abort()
		return
	}
	d.inner.Abort()
}

// FastForward fast-forwards the inner animation. Before the first Play there
// is nothing to fast-forward: the delegate just completes and returns
// ErrNotStarted.
func (d *Delegate) FastForward() error {
	if d.inner == nil {
		Log.Println("delegate animation: cannot fast-forward before the animation is created")
		d.fastForward()
		return ErrNotStarted
	}

	d.looping = false
	d.paused = false
	return d.inner.FastForward()
}

// Pause pauses the delegate and its inner animation.
func (d *Delegate) Pause() {
	d.lifecycle.Pause()
	if d.inner != nil {
		d.inner.Pause()
	}
}

// Resume resumes the delegate and its inner animation.
func (d *Delegate) Resume() error {
	err := d.lifecycle.Resume()
	if d.inner == nil {
		Log.Println("delegate animation: cannot resume before the animation is created")
		return ErrNotStarted
	}
	if innerErr := d.inner.Resume(); err == nil {
		err = innerErr
	}
	return err
}

// ScaleTime rescales the inner animation. The request is kept and applied to
// every animation created later; the last ScaleTime or ChangeSpeed wins.
func (d *Delegate) ScaleTime(duration float64) {
	d.setTiming(func(pc PlaybackControl) { pc.ScaleTime(duration) })
}

// ChangeSpeed changes the speed of the inner animation, and of every
// animation created later.
func (d *Delegate) ChangeSpeed(multiplier float64) {
	d.setTiming(func(pc PlaybackControl) { pc.ChangeSpeed(multiplier) })
}

func (d *Delegate) setTiming(timing func(pc PlaybackControl)) {
	d.timing = timing
	if pc, ok := d.inner.(PlaybackControl); ok {
		timing(pc)
	}
}

// Reverse reverses the inner animation, and every animation created later.
func (d *Delegate) Reverse() {
	d.reversed = !d.reversed
	if pc, ok := d.inner.(PlaybackControl); ok {
		pc.Reverse()
	}
}
