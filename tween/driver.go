package tween

import (
	"context"
	"sync"
	"time"

	"github.com/matt-g-everett/ledtween/util"
)

// A Driver delivers ticks to the timed animations registered with it.
// Registering an updater twice, or removing one that isn't registered, is a
// programming error reported through the returned error.
type Driver interface {
	Add(u util.Updater) error
	Remove(u util.Updater) error
}

// FrameDriver is a Driver backed by an UpdateList. Tick delivers one frame;
// Run turns a wall-clock ticker into frames.
type FrameDriver struct {
	list *util.UpdateList
}

// NewFrameDriver creates an instance of a FrameDriver.
func NewFrameDriver() *FrameDriver {
	d := new(FrameDriver)
	d.list = util.NewUpdateList()
	return d
}

// Add registers u for future ticks.
func (d *FrameDriver) Add(u util.Updater) error {
	return d.list.Add(u)
}

// Remove unregisters u.
func (d *FrameDriver) Remove(u util.Updater) error {
	return d.list.Remove(u)
}

// Contains reports whether u is registered.
func (d *FrameDriver) Contains(u util.Updater) bool {
	return d.list.Contains(u)
}

// Len returns the number of registered updaters.
func (d *FrameDriver) Len() int {
	return d.list.Len()
}

// Tick advances every registered updater by dt seconds.
func (d *FrameDriver) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	d.list.Update(dt)
}

// Run ticks the driver every interval with the measured elapsed time, calling
// after (if non-nil) once each tick has been delivered. It returns when ctx is
// done. Everything that plays or controls animations on this driver must run
// inside after, or on this goroutine.
func (d *FrameDriver) Run(ctx context.Context, interval time.Duration, after func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			d.Tick(now.Sub(last).Seconds())
			last = now
			if after != nil {
				after()
			}
		}
	}
}

var (
	defaultMu     sync.Mutex
	defaultDriver Driver
)

// DefaultDriver returns the process-wide driver, creating a FrameDriver the
// first time it is needed. Animations bind it when they are first asked for
// their driver; pass a driver explicitly with SetDriver to avoid it.
func DefaultDriver() Driver {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultDriver == nil {
		defaultDriver = NewFrameDriver()
	}
	return defaultDriver
}

// SetDefaultDriver replaces the process-wide driver. Tests use it to
// install a FrameDriver they tick by hand. Passing nil makes the next
// DefaultDriver call create a fresh one.
func SetDefaultDriver(d Driver) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultDriver = d
}
