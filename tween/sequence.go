package tween

// Sequence plays its children one after another and completes after the
// last one. Children that are invalid when their turn comes are dropped.
type Sequence struct {
	collection
}

// NewSequence creates an instance of a Sequence holding children.
func NewSequence(children ...Animation) *Sequence {
	s := new(Sequence)
	s.add(children...)
	return s
}

// Add appends children to the sequence.
func (s *Sequence) Add(children ...Animation) *Sequence {
	s.add(children...)
	return s
}

// Current returns the child that is playing, or that would play next.
func (s *Sequence) Current() Animation {
	if len(s.children) == 0 {
		return nil
	}
	i := s.completed
	if i >= len(s.children) {
		i = len(s.children) - 1
	}
	if i < 0 {
		i = 0
	}
	return s.children[i]
}

// Play starts the sequence from its first child.
func (s *Sequence) Play(onComplete func(), onAbort func()) error {
	if s.IsValid() {
		s.clearRepeat()
	}
	return s.play(onComplete, onAbort)
}

func (s *Sequence) play(onComplete func(), onAbort func()) error {
	if !s.IsValid() {
		Log.Println("cannot play sequence: it is empty")
		return ErrInvalid
	}

	s.begin(onComplete, onAbort)
	s.completed = 0
	s.dispatch()
	return nil
}

// PlayRepeat plays the whole sequence repeat+1 times, or forever.
func (s *Sequence) PlayRepeat(repeat int, onRepeat func(), onAllComplete func(), onAbort func()) error {
	return s.startRepeat(s.IsValid(), repeat, onRepeat, onAllComplete, onAbort, s.play, s.Abort)
}

// dispatch plays the child at the completed index, pruning invalid children
// on the way. A child that completes synchronously re-enters dispatch through
// childComplete.
func (s *Sequence) dispatch() {
	for {
		if len(s.children) == 0 {
			Log.Println("aborting sequence: all animations are invalid")
			s.Abort()
			return
		}
		if s.completed >= len(s.children) {
			s.notifyComplete()
			return
		}

		next := s.children[s.completed]
		if !next.IsValid() {
			s.prune(next, "sequence")
			continue
		}

		next.Play(s.childComplete, func() {
			if s.playing && !next.IsValid() {
				s.prune(next, "sequence")
				s.dispatch()
			}
		})
		return
	}
}

func (s *Sequence) childComplete() {
	if !s.playing {
		return
	}
	s.completed++
	s.dispatch()
}

// Abort aborts the sequence and then every child.
func (s *Sequence) Abort() {
	s.abortAll()
}

// FastForward fast-forwards the current child and every child after it, in
// order, so each ends in its final state. A sequence that isn't playing
// fast-forwards all its children without completing itself.
func (s *Sequence) FastForward() error {
	if !s.playing {
		for _, a := range s.Children() {
			a.FastForward()
		}
		s.stop()
		return nil
	}

	s.looping = false
	s.paused = false
	for s.playing && s.completed < len(s.children) {
		completed, remaining := s.completed, len(s.children)
		s.children[s.completed].FastForward()
		if s.completed == completed && len(s.children) == remaining {
			// The child did not report back to us; finish the sequence here.
			break
		}
	}
	if s.playing {
		s.fastForward()
	}
	return nil
}

// Reverse reverses the order of the children and each child's direction,
// mapping the current position onto the reversed order.
func (s *Sequence) Reverse() {
	s.reverse()
	s.completed = len(s.children) - 1 - s.completed
}

// Wait appends a delay.
func (s *Sequence) Wait(duration float64) *Sequence {
	return s.Add(NewWait(duration))
}

// Invoke appends a function call.
func (s *Sequence) Invoke(fn func()) *Sequence {
	return s.Add(NewFunctionCall(fn))
}

// Custom appends a Custom animation.
func (s *Sequence) Custom(update func(value float64), from float64, to float64, duration float64, easing EasingFunc) *Sequence {
	return s.Add(NewCustom(update, from, to, duration, easing))
}

// Sequence appends a nested sequence built by configure.
func (s *Sequence) Sequence(configure func(*Sequence)) *Sequence {
	child := NewSequence()
	s.Add(child)
	configure(child)
	return s
}

// Parallel appends a nested parallel group built by configure.
func (s *Sequence) Parallel(configure func(*Parallel)) *Sequence {
	child := NewParallel()
	s.Add(child)
	configure(child)
	return s
}
