package tween

import (
	"errors"
	"testing"
)

func TestTimedCompletesAtFullProgress(t *testing.T) {
	for _, duration := range []float64{0.25, 1, 2.5} {
		d := manualDriver(t)
		p := newRecorder()
		var c counts
		a := NewTimed(p, duration, nil)
		if err := a.Play(c.onComplete, c.onAbort); err != nil {
			t.Fatalf("duration %v: Play returned %v", duration, err)
		}

		for i := 0; i < 100 && a.IsPlaying(); i++ {
			d.Tick(0.25)
		}

		if a.Progress() != 1 {
			t.Errorf("duration %v: progress %v, want 1", duration, a.Progress())
		}
		if p.last() != 1 {
			t.Errorf("duration %v: last refresh %v, want 1", duration, p.last())
		}
		if c.complete != 1 || c.abort != 0 {
			t.Errorf("duration %v: complete=%d abort=%d", duration, c.complete, c.abort)
		}
		if d.Len() != 0 {
			t.Errorf("duration %v: %d updaters still registered", duration, d.Len())
		}

		d.Tick(1)
		if c.complete != 1 {
			t.Errorf("duration %v: completed again after the end", duration)
		}
	}
}

func TestTimedZeroDurationCompletesInsidePlay(t *testing.T) {
	d := manualDriver(t)
	p := newRecorder()
	var c counts
	a := NewTimed(p, 0, nil)

	a.Play(c.onComplete, c.onAbort)

	if c.complete != 1 {
		t.Fatalf("expected completion before Play returned, got %d", c.complete)
	}
	if len(p.values) != 1 || p.values[0] != 1 {
		t.Errorf("expected a single Refresh(1), got %v", p.values)
	}
	if d.Len() != 0 {
		t.Errorf("zero-length animation registered with the driver")
	}
	if a.IsPlaying() {
		t.Error("zero-length animation still playing")
	}
}

func TestTimedNegativeDurationIsClamped(t *testing.T) {
	a := NewTimed(newRecorder(), -3, nil)
	if a.Duration() != 0 {
		t.Errorf("duration %v, want 0", a.Duration())
	}
	a.SetDuration(-1)
	if a.Duration() != 0 {
		t.Errorf("duration %v after SetDuration(-1), want 0", a.Duration())
	}
}

func TestTimedPlayTwiceRegistersOnce(t *testing.T) {
	d := manualDriver(t)
	a := NewTimed(newRecorder(), 1, nil)
	a.Play(nil, nil)
	d.Tick(0.5)
	a.Play(nil, nil)

	if d.Len() != 1 {
		t.Errorf("expected 1 registration, got %d", d.Len())
	}
	if a.CurrentTime() != 0 {
		t.Errorf("replay did not reset the time: %v", a.CurrentTime())
	}
}

func TestTimedScaleTimeKeepsProgress(t *testing.T) {
	d := manualDriver(t)
	a := NewTimed(newRecorder(), 2, nil)
	a.Play(nil, nil)
	d.Tick(0.5)

	before := a.Progress()
	a.ScaleTime(4)
	if !near(a.CurrentTime(), 4*before) {
		t.Errorf("current time %v, want %v", a.CurrentTime(), 4*before)
	}

	d.Tick(0)
	if !near(a.Progress(), before) {
		t.Errorf("progress moved from %v to %v on a zero tick", before, a.Progress())
	}

	d.Tick(1)
	if !near(a.Progress(), 0.5) {
		t.Errorf("progress %v, want 0.5", a.Progress())
	}
}

func TestTimedChangeSpeed(t *testing.T) {
	d := manualDriver(t)
	a := NewTimed(newRecorder(), 2, nil)
	a.Play(nil, nil)
	d.Tick(0.5)

	a.ChangeSpeed(2)
	if a.Duration() != 1 {
		t.Errorf("duration %v, want 1", a.Duration())
	}
	if !near(a.CurrentTime(), 0.25) {
		t.Errorf("current time %v, want 0.25", a.CurrentTime())
	}

	a.ChangeSpeed(0)
	if a.Duration() != 1 {
		t.Errorf("zero multiplier changed the duration to %v", a.Duration())
	}
}

func TestTimedReverseContinuesFromCurrentTime(t *testing.T) {
	d := manualDriver(t)
	a := NewTimed(newRecorder(), 1, nil)
	a.Play(nil, nil)
	d.Tick(0.5)

	a.Reverse()
	if !near(a.CurrentTime(), 0.5) {
		t.Fatalf("Reverse reset the time to %v", a.CurrentTime())
	}
	d.Tick(0.25)
	if !near(a.Progress(), 0.25) {
		t.Errorf("progress %v after reversed tick, want 0.25", a.Progress())
	}

	a.Reverse()
	d.Tick(0.25)
	if !near(a.Progress(), 0.5) {
		t.Errorf("progress %v after forward tick, want 0.5", a.Progress())
	}
}

func TestTimedReversedPlaysFromTheEnd(t *testing.T) {
	d := manualDriver(t)
	p := newRecorder()
	var c counts
	a := NewTimed(p, 1, nil)
	a.Reverse()
	a.Play(c.onComplete, nil)

	if a.CurrentTime() != 1 || p.last() != 1 {
		t.Fatalf("reversed play started at %v, refresh %v", a.CurrentTime(), p.last())
	}
	d.Tick(0.5)
	d.Tick(0.5)
	if c.complete != 1 {
		t.Errorf("reversed animation did not complete at progress 0")
	}
	if p.last() != 0 {
		t.Errorf("last refresh %v, want 0", p.last())
	}
}

func TestTimedTargetLossAborts(t *testing.T) {
	d := manualDriver(t)
	p := newRecorder()
	var c counts
	a := NewTimed(p, 1, nil)
	a.Play(c.onComplete, c.onAbort)
	d.Tick(0.25)

	p.valid = false
	d.Tick(0.25)

	if c.abort != 1 || c.complete != 0 {
		t.Errorf("abort=%d complete=%d, want 1 and 0", c.abort, c.complete)
	}
	if a.CurrentTime() != a.Duration() {
		t.Errorf("current time %v, want the duration", a.CurrentTime())
	}
	if d.Len() != 0 {
		t.Error("aborted animation still registered")
	}
	if a.IsPlaying() {
		t.Error("aborted animation still playing")
	}
}

func TestTimedPlayInvalidIsRefused(t *testing.T) {
	d := manualDriver(t)
	p := newRecorder()
	p.valid = false
	var c counts
	a := NewTimed(p, 1, nil)

	if err := a.Play(c.onComplete, c.onAbort); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
	if a.IsPlaying() || d.Len() != 0 || c.complete+c.abort != 0 {
		t.Error("playing an invalid animation changed state")
	}
}

func TestRefusedPlayKeepsTheLoop(t *testing.T) {
	d := manualDriver(t)
	p := newRecorder()
	var c counts
	a := NewTimed(p, 1, nil)
	a.PlayRepeat(2, c.onRepeat, c.onComplete, c.onAbort)

	p.valid = false
	if err := a.Play(nil, nil); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if !a.IsLooping() || !a.IsPlaying() {
		t.Fatal("refused Play cleared the loop")
	}

	p.valid = true
	d.Tick(1)
	if c.repeat != 1 || c.complete != 0 || !a.IsLooping() {
		t.Errorf("after first pass: repeat=%d complete=%d looping=%v", c.repeat, c.complete, a.IsLooping())
	}
}

func TestTimedPauseHoldsProgress(t *testing.T) {
	d := manualDriver(t)
	a := NewTimed(newRecorder(), 1, nil)
	a.Play(nil, nil)
	d.Tick(0.25)

	a.Pause()
	d.Tick(0.5)
	if !near(a.Progress(), 0.25) {
		t.Errorf("paused animation advanced to %v", a.Progress())
	}
	if d.Len() != 1 {
		t.Error("pause unregistered the animation")
	}

	if err := a.Resume(); err != nil {
		t.Fatalf("Resume returned %v", err)
	}
	d.Tick(0.5)
	if !near(a.Progress(), 0.75) {
		t.Errorf("progress %v after resume, want 0.75", a.Progress())
	}
}

func TestResumeWithoutPlayReportsError(t *testing.T) {
	a := NewTimed(newRecorder(), 1, nil)
	a.Pause()
	if err := a.Resume(); !errors.Is(err, ErrNotPlaying) {
		t.Errorf("expected ErrNotPlaying, got %v", err)
	}
	if a.IsPaused() {
		t.Error("Resume left the paused flag set")
	}
}

func TestAbortFiresOnlyAbort(t *testing.T) {
	d := manualDriver(t)
	var c counts
	a := NewTimed(newRecorder(), 1, nil)
	a.Play(c.onComplete, c.onAbort)
	d.Tick(0.5)
	a.Abort()

	if c.abort != 1 || c.complete != 0 {
		t.Errorf("abort=%d complete=%d", c.abort, c.complete)
	}
	if d.Len() != 0 {
		t.Error("aborted animation still registered")
	}
	if a.IsPlaying() || a.IsPaused() || a.IsLooping() {
		t.Error("abort left flags set")
	}

	// Aborting again is harmless.
	a.Abort()
	d.Tick(1)
	if c.complete != 0 {
		t.Error("aborted animation completed later")
	}
}

func TestFastForwardSnapsToEnd(t *testing.T) {
	d := manualDriver(t)
	p := newRecorder()
	var c counts
	a := NewTimed(p, 3, nil)
	a.Play(c.onComplete, c.onAbort)
	d.Tick(0.5)

	if err := a.FastForward(); err != nil {
		t.Fatalf("FastForward returned %v", err)
	}
	if p.last() != 1 || c.complete != 1 || c.abort != 0 {
		t.Errorf("last=%v complete=%d abort=%d", p.last(), c.complete, c.abort)
	}
	if d.Len() != 0 || a.IsPlaying() {
		t.Error("fast-forwarded animation still running")
	}
}

func TestPlayRepeatCountsPasses(t *testing.T) {
	d := manualDriver(t)
	var c counts
	a := NewTimed(newRecorder(), 1, nil)
	a.PlayRepeat(2, c.onRepeat, c.onComplete, c.onAbort)

	if !a.IsLooping() {
		t.Fatal("PlayRepeat(2) is not looping")
	}
	for i := 0; i < 10 && a.IsPlaying(); i++ {
		d.Tick(1)
	}

	if c.repeat != 2 || c.complete != 1 || c.abort != 0 {
		t.Errorf("repeat=%d complete=%d abort=%d, want 2, 1, 0", c.repeat, c.complete, c.abort)
	}
	if d.Len() != 0 {
		t.Error("finished loop still registered")
	}
}

func TestPlayRepeatZeroPlaysOnce(t *testing.T) {
	d := manualDriver(t)
	var c counts
	a := NewTimed(newRecorder(), 1, nil)
	a.PlayRepeat(0, c.onRepeat, c.onComplete, nil)
	if a.IsLooping() {
		t.Fatal("PlayRepeat(0) is looping")
	}
	d.Tick(1)
	if c.repeat != 0 || c.complete != 1 {
		t.Errorf("repeat=%d complete=%d", c.repeat, c.complete)
	}
}

func TestInfiniteLoopEndsOnFastForward(t *testing.T) {
	d := manualDriver(t)
	var c counts
	a := NewTimed(newRecorder(), 1, nil)
	a.PlayRepeat(Infinite, c.onRepeat, c.onComplete, c.onAbort)

	for i := 0; i < 5; i++ {
		d.Tick(1)
		if !a.IsPlaying() {
			t.Fatalf("infinite loop stopped after %d passes", i+1)
		}
	}
	if c.repeat != 5 {
		t.Errorf("expected 5 repeats, got %d", c.repeat)
	}

	d.Tick(0.5)
	a.FastForward()
	if c.complete != 1 {
		t.Errorf("fast-forward did not fire the all-complete callback")
	}
	if a.IsPlaying() || a.IsLooping() || d.Len() != 0 {
		t.Error("fast-forwarded loop still running")
	}
}

func TestInfiniteLoopAbort(t *testing.T) {
	d := manualDriver(t)
	var c counts
	a := NewTimed(newRecorder(), 1, nil)
	a.PlayRepeat(Infinite, c.onRepeat, c.onComplete, c.onAbort)
	d.Tick(1)
	d.Tick(0.5)
	a.Abort()

	if c.abort != 1 || c.complete != 0 {
		t.Errorf("abort=%d complete=%d", c.abort, c.complete)
	}
	if d.Len() != 0 {
		t.Error("aborted loop still registered")
	}
}

func TestZeroDurationInfiniteLoopIsRefused(t *testing.T) {
	a := NewTimed(newRecorder(), 0, nil)
	if err := a.PlayRepeat(Infinite, nil, nil, nil); !errors.Is(err, ErrInfiniteInstant) {
		t.Errorf("expected ErrInfiniteInstant, got %v", err)
	}
}

func TestZeroDurationRepeat(t *testing.T) {
	var c counts
	a := NewTimed(newRecorder(), 0, nil)
	a.PlayRepeat(3, c.onRepeat, c.onComplete, nil)
	if c.repeat != 3 || c.complete != 1 {
		t.Errorf("repeat=%d complete=%d, want 3 and 1", c.repeat, c.complete)
	}
}

func TestSetDriverMovesRegistration(t *testing.T) {
	first := manualDriver(t)
	second := NewFrameDriver()
	a := NewTimed(newRecorder(), 1, nil)
	a.Play(nil, nil)

	a.SetDriver(second)
	if first.Len() != 0 || second.Len() != 1 {
		t.Fatalf("first=%d second=%d registrations", first.Len(), second.Len())
	}
	second.Tick(0.5)
	if !near(a.Progress(), 0.5) {
		t.Errorf("new driver did not tick the animation")
	}
}

func TestEasingOvershootReachesTarget(t *testing.T) {
	manualDriver(t)
	overshoot := func(t float64) float64 { return t * 1.5 }
	var got float64
	a := NewCustom(func(v float64) { got = v }, 0, 10, 0, overshoot)
	a.Play(nil, nil)

	if got != 15 {
		t.Errorf("value %v, want 15 (overshoot must not be clamped)", got)
	}
	if a.CurrentValue() != 15 {
		t.Errorf("CurrentValue %v", a.CurrentValue())
	}
}

func TestCustomInterpolates(t *testing.T) {
	d := manualDriver(t)
	var got []float64
	a := NewCustom(func(v float64) { got = append(got, v) }, 10, 20, 1, nil)
	a.Play(nil, nil)
	d.Tick(0.5)
	d.Tick(0.5)

	want := []float64{10, 15, 20}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if !near(got[i], want[i]) {
			t.Errorf("value %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestConstructorsRejectNil(t *testing.T) {
	expectPanic(t, "NewTimed(nil)", func() { NewTimed(nil, 1, nil) })
	expectPanic(t, "NewCustom(nil)", func() { NewCustom(nil, 0, 1, 1, nil) })
	expectPanic(t, "NewFunctionCall(nil)", func() { NewFunctionCall(nil) })
	expectPanic(t, "NewDelegate(nil)", func() { NewDelegate(nil) })
}

func TestFunctionCall(t *testing.T) {
	calls := 0
	var c counts
	f := NewFunctionCall(func() { calls++ })
	f.Play(c.onComplete, c.onAbort)
	if calls != 1 || c.complete != 1 {
		t.Errorf("calls=%d complete=%d", calls, c.complete)
	}

	var self *FunctionCall
	self = NewFunctionCall(func() { self.Abort() })
	var c2 counts
	self.Play(c2.onComplete, c2.onAbort)
	if c2.complete != 0 || c2.abort != 1 {
		t.Errorf("self-aborting call: complete=%d abort=%d", c2.complete, c2.abort)
	}

	if err := f.PlayRepeat(Infinite, nil, nil, nil); !errors.Is(err, ErrInfiniteInstant) {
		t.Errorf("expected ErrInfiniteInstant, got %v", err)
	}
	calls = 0
	f.PlayRepeat(2, nil, nil, nil)
	if calls != 3 {
		t.Errorf("PlayRepeat(2) called the function %d times, want 3", calls)
	}
}

func TestSafeHelpersIgnoreIdle(t *testing.T) {
	var c counts
	a := NewWait(1)
	SafeAbort(nil)
	SafeAbort(a)
	if err := SafeFastForward(nil); err != nil {
		t.Errorf("SafeFastForward(nil) returned %v", err)
	}
	SafeFastForward(a)
	if c.abort+c.complete != 0 {
		t.Error("idle animation received callbacks")
	}

	manualDriver(t)
	a = NewWait(1)
	a.Play(c.onComplete, c.onAbort)
	SafeAbort(a)
	if c.abort != 1 {
		t.Errorf("SafeAbort on a playing animation: abort=%d", c.abort)
	}
}
