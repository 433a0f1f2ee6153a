// Package tween schedules frame-driven animations. Animations are played,
// paused, reversed, retimed, looped, fast-forwarded or aborted, and composed
// into sequences and parallel groups. Timed animations advance when their
// Driver delivers a tick; everything runs on the goroutine that ticks the
// driver.
package tween

import (
	"errors"
	"log"
	"os"
)

// Infinite repeats an animation until it is aborted or fast-forwarded.
const Infinite = -1

var (
	// ErrInvalid is returned by Play when the animation has lost its target
	// or, for a collection, has no children.
	ErrInvalid = errors.New("tween: animation is invalid")
	// ErrNotPlaying is returned by Resume on an animation that isn't playing.
	ErrNotPlaying = errors.New("tween: animation is not playing")
	// ErrNotStarted is returned when a Delegate is controlled before its
	// inner animation has been created.
	ErrNotStarted = errors.New("tween: delegate animation has not been created yet")
	// ErrInfiniteInstant is returned when an animation that completes
	// synchronously is asked to repeat forever.
	ErrInfiniteInstant = errors.New("tween: cannot repeat an instantaneous animation forever")
)

// Log receives diagnostics about misuse and self-aborting animations.
var Log = log.New(os.Stderr, "tween: ", log.LstdFlags)

// An Animation is anything with the play/pause/abort/complete lifecycle.
type Animation interface {
	// IsValid reports whether the animation still has something to animate.
	IsValid() bool
	IsPlaying() bool
	IsPaused() bool
	IsLooping() bool

	// Play starts the animation. onComplete fires when it finishes and
	// onAbort if it is aborted; either may be nil. Playing an invalid
	// animation changes nothing and returns ErrInvalid.
	Play(onComplete func(), onAbort func()) error

	// PlayRepeat plays the animation repeat+1 times, or forever when repeat
	// is Infinite. onRepeat fires after every pass that is followed by
	// another, onAllComplete once after the last pass (or a fast-forward).
	PlayRepeat(repeat int, onRepeat func(), onAllComplete func(), onAbort func()) error

	// Abort stops the animation where it is and fires the abort callback.
	Abort()

	// FastForward snaps the animation to its end state and fires the
	// completion callback.
	FastForward() error

	Pause()

	// Resume clears the paused flag. Resuming an animation that isn't
	// playing returns ErrNotPlaying.
	Resume() error
}

// PlaybackControl is implemented by animations whose timing can be changed
// while they play.
type PlaybackControl interface {
	Driver() Driver
	SetDriver(d Driver)

	// ScaleTime sets a new duration while keeping the progress made so far.
	ScaleTime(duration float64)
	// ChangeSpeed is ScaleTime(duration / multiplier).
	ChangeSpeed(multiplier float64)
	// Reverse flips the playback direction without resetting the time.
	Reverse()
}

// SafeAbort aborts a if it is non-nil and playing.
func SafeAbort(a Animation) {
	if a != nil && a.IsPlaying() {
		a.Abort()
	}
}

// SafeFastForward fast-forwards a if it is non-nil and playing.
func SafeFastForward(a Animation) error {
	if a != nil && a.IsPlaying() {
		return a.FastForward()
	}
	return nil
}
