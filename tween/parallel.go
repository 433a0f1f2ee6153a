package tween

// Parallel plays all its children at once and completes when every child
// still in the group has completed. Children that turn out invalid are
// dropped without failing the group.
type Parallel struct {
	collection
	dispatching bool
}

// NewParallel creates an instance of a Parallel group holding children.
func NewParallel(children ...Animation) *Parallel {
	p := new(Parallel)
	p.add(children...)
	return p
}

// Add appends children to the group.
func (p *Parallel) Add(children ...Animation) *Parallel {
	p.add(children...)
	return p
}

// Play starts every child.
func (p *Parallel) Play(onComplete func(), onAbort func()) error {
	if p.IsValid() {
		p.clearRepeat()
	}
	return p.play(onComplete, onAbort)
}

func (p *Parallel) play(onComplete func(), onAbort func()) error {
	if !p.IsValid() {
		Log.Println("cannot play parallel group: it is empty")
		return ErrInvalid
	}

	p.begin(onComplete, onAbort)
	p.completed = 0

	// Highest index first, matching the update list, so pruning a child
	// never moves one that is still to be visited.
	p.dispatching = true
	for i := len(p.children) - 1; i >= 0; i-- {
		if i >= len(p.children) {
			continue
		}
		child := p.children[i]
		if !child.IsValid() {
			p.prune(child, "parallel group")
			continue
		}
		child.Play(p.childComplete, func() {
			if p.playing && !child.IsValid() {
				p.prune(child, "parallel group")
				p.settle()
			}
		})
		if !p.playing {
			break
		}
	}
	p.dispatching = false

	if p.playing {
		p.settle()
	}
	return nil
}

// PlayRepeat plays the whole group repeat+1 times, or forever.
func (p *Parallel) PlayRepeat(repeat int, onRepeat func(), onAllComplete func(), onAbort func()) error {
	return p.startRepeat(p.IsValid(), repeat, onRepeat, onAllComplete, onAbort, p.play, p.Abort)
}

func (p *Parallel) childComplete() {
	if !p.playing {
		return
	}
	p.completed++
	if !p.dispatching {
		p.settle()
	}
}

// settle aborts an emptied group or completes a finished one.
func (p *Parallel) settle() {
	if p.dispatching {
		return
	}
	if len(p.children) == 0 {
		Log.Println("aborting parallel group: all animations are invalid")
		p.Abort()
		return
	}
	if p.completed >= len(p.children) {
		p.notifyComplete()
	}
}

// Abort aborts the group and then every child.
func (p *Parallel) Abort() {
	p.abortAll()
}

// FastForward fast-forwards every child that is still playing, which
// completes the group. A group that isn't playing fast-forwards all its
// children without completing itself.
func (p *Parallel) FastForward() error {
	if !p.playing {
		for _, a := range p.Children() {
			a.FastForward()
		}
		p.stop()
		return nil
	}

	p.looping = false
	p.paused = false
	children := p.Children()
	for i := len(children) - 1; i >= 0 && p.playing; i-- {
		if children[i].IsPlaying() {
			children[i].FastForward()
		}
	}
	if p.playing {
		p.fastForward()
	}
	return nil
}

// Reverse reverses the order of the children and each child's direction.
func (p *Parallel) Reverse() {
	p.reverse()
}

// Wait adds a delay, which holds the group open for at least duration.
func (p *Parallel) Wait(duration float64) *Parallel {
	return p.Add(NewWait(duration))
}

// Invoke adds a function call.
func (p *Parallel) Invoke(fn func()) *Parallel {
	return p.Add(NewFunctionCall(fn))
}

// Custom adds a Custom animation.
func (p *Parallel) Custom(update func(value float64), from float64, to float64, duration float64, easing EasingFunc) *Parallel {
	return p.Add(NewCustom(update, from, to, duration, easing))
}

// Sequence adds a nested sequence built by configure.
func (p *Parallel) Sequence(configure func(*Sequence)) *Parallel {
	child := NewSequence()
	p.Add(child)
	configure(child)
	return p
}

// Parallel adds a nested parallel group built by configure.
func (p *Parallel) Parallel(configure func(*Parallel)) *Parallel {
	child := NewParallel()
	p.Add(child)
	configure(child)
	return p
}
