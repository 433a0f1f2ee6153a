package tween

// lifecycle holds the state and callbacks shared by every animation kind.
// Variants embed it and call its helpers from their own Play, Abort and
// FastForward.
type lifecycle struct {
	playing bool
	paused  bool
	looping bool

	onComplete func()
	onAbort    func()

	// Repeat state, only meaningful after PlayRepeat. repeat counts the
	// passes still to come after the current one, or is Infinite.
	repeat        int
	onRepeat      func()
	onAllComplete func()
	replay        func(onComplete func(), onAbort func()) error
	fail          func()

	// replaying is set while a pass is being started. A pass that completes
	// before its play returns only sets pending, and the caller runs the next
	// one, so instantaneous passes loop instead of recursing.
	replaying bool
	pending   bool
}

// IsPlaying reports whether the animation is playing, including between
// passes of a loop.
func (l *lifecycle) IsPlaying() bool {
	return l.playing
}

// IsPaused reports whether the animation is paused.
func (l *lifecycle) IsPaused() bool {
	return l.paused
}

// IsLooping reports whether another pass will follow the current one.
func (l *lifecycle) IsLooping() bool {
	return l.looping
}

// Pause stops the animation from advancing until Resume.
func (l *lifecycle) Pause() {
	l.paused = true
}

// Resume lets a paused animation advance again.
func (l *lifecycle) Resume() error {
	l.paused = false
	if !l.playing {
		Log.Println("cannot resume an animation which isn't playing")
		return ErrNotPlaying
	}
	return nil
}

func (l *lifecycle) begin(onComplete func(), onAbort func()) {
	l.onComplete = onComplete
	l.onAbort = onAbort
	l.playing = true
}

func (l *lifecycle) clearRepeat() {
	l.looping = false
	l.repeat = 0
	l.onRepeat = nil
	l.onAllComplete = nil
	l.replay = nil
	l.fail = nil
}

func (l *lifecycle) startRepeat(valid bool, repeat int, onRepeat func(), onAllComplete func(), onAbort func(),
	play func(onComplete func(), onAbort func()) error, fail func()) error {

	if !valid {
		Log.Println("cannot play animation: invalid")
		return ErrInvalid
	}
	if repeat < Infinite {
		repeat = 0
	}

	l.repeat = repeat
	l.onRepeat = onRepeat
	l.onAllComplete = onAllComplete
	l.replay = play
	l.fail = fail
	l.looping = repeat != 0

	if !l.looping {
		return play(onAllComplete, onAbort)
	}

	l.replaying = true
	l.pending = false
	err := play(l.repeatComplete, onAbort)
	l.replaying = false
	if err != nil || !l.pending {
		return err
	}
	if l.repeat == Infinite && l.looping {
		Log.Println("cannot loop forever: the animation completes instantly")
		l.stop()
		return ErrInfiniteInstant
	}
	l.repeatComplete()
	return nil
}

// repeatComplete runs after each pass of a looping animation. The last pass
// is played with onAllComplete directly, so reaching here with looping unset
// means the loop was cut short by a fast-forward.
func (l *lifecycle) repeatComplete() {
	if l.replaying {
		l.pending = true
		return
	}

	l.replaying = true
	defer func() { l.replaying = false }()
	for {
		l.pending = false
		if l.onRepeat != nil {
			l.onRepeat()
		}

		if !l.looping {
			l.replaying = false
			if l.onAllComplete != nil {
				l.onAllComplete()
			}
			return
		}

		if l.repeat > 0 {
			l.repeat--
		}
		l.looping = l.repeat != 0

		next := l.onAllComplete
		if l.looping {
			next = l.repeatComplete
		}
		if err := l.replay(next, l.onAbort); err != nil {
			l.replaying = false
			l.fail()
			return
		}
		if !l.pending {
			return
		}
		if l.repeat == Infinite && l.looping {
			Log.Println("aborting loop: the animation completes instantly")
			l.replaying = false
			l.fail()
			return
		}
	}
}

func (l *lifecycle) notifyComplete() {
	l.playing = l.looping
	if l.onComplete != nil {
		l.onComplete()
	}
}

func (l *lifecycle) stop() {
	l.playing = false
	l.looping = false
	l.paused = false
}

func (l *lifecycle) abort() {
	l.stop()
	if l.onAbort != nil {
		l.onAbort()
	}
}

func (l *lifecycle) fastForward() {
	l.stop()
	l.notifyComplete()
}
