package tween

type waitTarget struct{}

func (waitTarget) IsValid() bool     { return true }
func (waitTarget) Refresh(t float64) {}

// NewWait creates a Timed animation that does nothing for duration seconds.
// It is used to put delays into sequences.
func NewWait(duration float64) *Timed {
	return NewTimed(waitTarget{}, duration, nil)
}

type valueTarget struct {
	update func(value float64)
	from   float64
	to     float64
	value  float64
}

func (v *valueTarget) IsValid() bool {
	return true
}

func (v *valueTarget) Refresh(t float64) {
	v.value = Lerp(v.from, v.to, t)
	v.update(v.value)
}

// Custom is a Timed animation that hands the interpolated value to a
// function instead of writing into a target.
type Custom struct {
	*Timed
	value *valueTarget
}

// NewCustom creates an instance of a Custom animation that calls update with
// values running from from to to. It panics if update is nil.
func NewCustom(update func(value float64), from float64, to float64, duration float64, easing EasingFunc) *Custom {
	if update == nil {
		panic("tween: NewCustom called with a nil update function")
	}

	c := new(Custom)
	c.value = &valueTarget{update: update, from: from, to: to, value: from}
	c.Timed = NewTimed(c.value, duration, easing)
	return c
}

// CurrentValue returns the value last passed to the update function.
func (c *Custom) CurrentValue() float64 {
	return c.value.value
}

// From returns the start value.
func (c *Custom) From() float64 {
	return c.value.from
}

// To returns the end value.
func (c *Custom) To() float64 {
	return c.value.to
}

// FunctionCall calls a function when played and completes straight away,
// unless the function aborted it. Inside a sequence it runs code at a point
// in the timeline.
type FunctionCall struct {
	lifecycle
	fn func()
}

// NewFunctionCall creates an instance of a FunctionCall. It panics if fn is
// nil.
func NewFunctionCall(fn func()) *FunctionCall {
	if fn == nil {
		panic("tween: NewFunctionCall called with a nil function")
	}

	f := new(FunctionCall)
	f.fn = fn
	return f
}

// IsValid is always true.
func (f *FunctionCall) IsValid() bool {
	return true
}

// Play calls the function and then completes.
func (f *FunctionCall) Play(onComplete func(), onAbort func()) error {
	f.clearRepeat()
	return f.play(onComplete, onAbort)
}

func (f *FunctionCall) play(onComplete func(), onAbort func()) error {
	f.begin(onComplete, onAbort)
	f.fn()
	if f.playing {
		f.notifyComplete()
	}
	return nil
}

// PlayRepeat calls the function repeat+1 times. Infinite is rejected.
func (f *FunctionCall) PlayRepeat(repeat int, onRepeat func(), onAllComplete func(), onAbort func()) error {
	if repeat == Infinite {
		Log.Println("cannot loop a function call forever")
		return ErrInfiniteInstant
	}
	return f.startRepeat(true, repeat, onRepeat, onAllComplete, onAbort, f.play, f.Abort)
}

// Abort marks the call aborted. Only useful from inside the function itself.
func (f *FunctionCall) Abort() {
	f.abort()
}

// FastForward completes without calling the function.
func (f *FunctionCall) FastForward() error {
	f.fastForward()
	return nil
}
