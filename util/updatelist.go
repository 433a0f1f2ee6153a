package util

import "errors"

var (
	// ErrAlreadyAdded is returned when adding an Updater that is already live.
	ErrAlreadyAdded = errors.New("update list: updater is already in the list")
	// ErrNotFound is returned when removing an Updater that was never added.
	ErrNotFound = errors.New("update list: updater was not found in the list")
)

// An Updater receives the delta time of every tick it is registered for.
// Updaters are identified by interface equality, so the dynamic type must be
// comparable (normally a pointer).
type Updater interface {
	Update(dt float64)
}

// UpdateFunc adapts a plain function to an Updater. Each UpdateFunc has its
// own identity, so the same function can be wrapped and registered twice.
type UpdateFunc struct {
	fn func(dt float64)
}

// NewUpdateFunc creates an instance of an UpdateFunc.
func NewUpdateFunc(fn func(dt float64)) *UpdateFunc {
	u := new(UpdateFunc)
	u.fn = fn
	return u
}

// Update calls the wrapped function.
func (u *UpdateFunc) Update(dt float64) {
	u.fn(dt)
}

// UpdateList delivers a tick to many Updaters. Updaters may add or remove
// themselves, or each other, while a tick is being delivered: removals made
// during an update are only marked dead and the list is compacted once the
// pass has finished.
type UpdateList struct {
	updaters []Updater
	dead     []bool
	numDead  int
	updating bool
}

// NewUpdateList creates an instance of an UpdateList.
func NewUpdateList() *UpdateList {
	l := new(UpdateList)
	l.updaters = make([]Updater, 0, 16)
	l.dead = make([]bool, 0, 16)
	return l
}

func (l *UpdateList) indexOf(u Updater) int {
	for i, candidate := range l.updaters {
		if candidate == u {
			return i
		}
	}
	return -1
}

// Contains reports whether u is in the list and not marked for removal.
func (l *UpdateList) Contains(u Updater) bool {
	i := l.indexOf(u)
	return i >= 0 && !l.dead[i]
}

// Len returns the number of live updaters.
func (l *UpdateList) Len() int {
	return len(l.updaters) - l.numDead
}

// Add appends u to the list. Adding an updater that was removed earlier in
// the current pass cancels the removal instead of inserting it twice.
func (l *UpdateList) Add(u Updater) error {
	i := l.indexOf(u)
	if i >= 0 {
		if l.dead[i] {
			l.dead[i] = false
			l.numDead--
			return nil
		}
		return ErrAlreadyAdded
	}

	l.updaters = append(l.updaters, u)
	l.dead = append(l.dead, false)
	return nil
}

// Remove takes u out of the list. During an update it is only marked dead.
func (l *UpdateList) Remove(u Updater) error {
	i := l.indexOf(u)
	if i < 0 {
		return ErrNotFound
	}

	if l.updating {
		if !l.dead[i] {
			l.dead[i] = true
			l.numDead++
		}
		return nil
	}

	l.updaters = append(l.updaters[:i], l.updaters[i+1:]...)
	l.dead = append(l.dead[:i], l.dead[i+1:]...)
	return nil
}

// Update calls every live updater with dt, most recently added first.
// Updaters added during the pass are not called until the next one.
func (l *UpdateList) Update(dt float64) {
	l.updating = true
	for i := len(l.updaters) - 1; i >= 0; i-- {
		if !l.dead[i] {
			l.updaters[i].Update(dt)
		}
	}
	l.updating = false

	if l.numDead > 0 {
		l.compact()
	}
}

func (l *UpdateList) compact() {
	j := 0
	for i, u := range l.updaters {
		if l.dead[i] {
			continue
		}
		l.updaters[j] = u
		l.dead[j] = false
		j++
	}
	for i := j; i < len(l.updaters); i++ {
		l.updaters[i] = nil
	}
	l.updaters = l.updaters[:j]
	l.dead = l.dead[:j]
	l.numDead = 0
}
