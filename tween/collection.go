package tween

// collection is the part of Sequence and Parallel that doesn't depend on the
// playback strategy. The collection owns its children while they are in it.
type collection struct {
	lifecycle

	driver    Driver
	children  []Animation
	completed int
}

// IsValid reports whether the collection has any children left.
func (c *collection) IsValid() bool {
	return len(c.children) > 0
}

// Len returns the number of children.
func (c *collection) Len() int {
	return len(c.children)
}

// Children returns a copy of the child list.
func (c *collection) Children() []Animation {
	children := make([]Animation, len(c.children))
	copy(children, c.children)
	return children
}

// Completed returns the number of children that have finished in the current
// play.
func (c *collection) Completed() int {
	return c.completed
}

// Driver returns the driver handed to children, binding the default driver on
// first use.
func (c *collection) Driver() Driver {
	if c.driver == nil {
		c.driver = DefaultDriver()
	}
	return c.driver
}

// SetDriver sets the driver of the collection and every child that has one.
func (c *collection) SetDriver(d Driver) {
	c.driver = d
	for _, a := range c.children {
		if pc, ok := a.(PlaybackControl); ok {
			pc.SetDriver(d)
		}
	}
}

func (c *collection) add(children ...Animation) {
	for _, a := range children {
		if a == nil {
			continue
		}
		if pc, ok := a.(PlaybackControl); ok {
			pc.SetDriver(c.Driver())
		}
		c.children = append(c.children, a)
	}
}

func (c *collection) prune(a Animation, kind string) {
	for i, child := range c.children {
		if child == a {
			Log.Printf("removed an invalid animation from the %s", kind)
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

func (c *collection) abortAll() {
	c.abort()
	for i := len(c.children) - 1; i >= 0; i-- {
		if i < len(c.children) {
			c.children[i].Abort()
		}
	}
}

// Pause pauses the collection and every playing child.
func (c *collection) Pause() {
	c.lifecycle.Pause()
	for _, a := range c.children {
		if a.IsPlaying() {
			a.Pause()
		}
	}
}

// Resume resumes the collection and every playing child.
func (c *collection) Resume() error {
	err := c.lifecycle.Resume()
	for _, a := range c.children {
		if a.IsPlaying() {
			a.Resume()
		}
	}
	return err
}

// ScaleTime gives every child with playback control the new duration.
func (c *collection) ScaleTime(duration float64) {
	for _, a := range c.children {
		if pc, ok := a.(PlaybackControl); ok {
			pc.ScaleTime(duration)
		}
	}
}

// ChangeSpeed changes the speed of every child with playback control.
func (c *collection) ChangeSpeed(multiplier float64) {
	for _, a := range c.children {
		if pc, ok := a.(PlaybackControl); ok {
			pc.ChangeSpeed(multiplier)
		}
	}
}

func (c *collection) reverse() {
	for i, j := 0, len(c.children)-1; i < j; i, j = i+1, j-1 {
		c.children[i], c.children[j] = c.children[j], c.children[i]
	}
	for _, a := range c.children {
		if pc, ok := a.(PlaybackControl); ok {
			pc.Reverse()
		}
	}
}
