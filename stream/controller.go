package stream

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/matt-g-everett/ledtween/tween"
)

var (
	// ErrNoShow is returned by commands that need a show before one loaded.
	ErrNoShow = errors.New("no show loaded")
	// ErrInvalidSpeed is returned for a speed multiplier that isn't positive.
	ErrInvalidSpeed = errors.New("speed multiplier must be positive")
)

// CommandKind identifies a controller command.
type CommandKind int

const (
	CommandStatus CommandKind = iota
	CommandPause
	CommandResume
	CommandFastForward
	CommandAbort
	CommandReverse
	CommandSpeed
	CommandLoad
)

var commandNames = [...]string{"status", "pause", "resume", "fastforward", "abort", "reverse", "speed", "load"}

func (k CommandKind) String() string {
	if k < 0 || int(k) >= len(commandNames) {
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
	return commandNames[k]
}

// Command is a request to the controller. Multiplier is used by CommandSpeed
// and Path by CommandLoad, where an empty path reloads the current show.
type Command struct {
	Kind       CommandKind
	Multiplier float64
	Path       string
}

// Status reports the state of the current show.
type Status struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Loaded    bool   `json:"loaded"`
	Playing   bool   `json:"playing"`
	Paused    bool   `json:"paused"`
	Looping   bool   `json:"looping"`
	Repeats   int    `json:"repeats"`
	Completed int    `json:"completed"`
	Aborted   int    `json:"aborted"`
}

// Loader reads a show description from path.
type Loader func(path string) (*ShowSpec, error)

type request struct {
	cmd   Command
	reply chan reply
}

type reply struct {
	status Status
	err    error
}

// Controller owns the frame and the show playing into it. Everything except
// Do runs on the goroutine that ticks the driver.
type Controller struct {
	frame  *Frame
	driver tween.Driver
	load   Loader
	path   string
	show   *Show

	repeats   int
	completed int
	aborted   int

	transitionTime float64
	transition     *tween.Custom
	snapshot       *Frame
	blend          float64

	requests chan request
}

// NewController creates an instance of a Controller. Shows are read with
// load and ticked by driver.
func NewController(frame *Frame, driver tween.Driver, load Loader) *Controller {
	c := new(Controller)
	c.frame = frame
	c.driver = driver
	c.load = load
	c.requests = make(chan request, 16)

	return c
}

// SetTransition sets how long, in seconds, the outgoing show stays blended
// over a newly loaded one. Zero switches instantly.
func (c *Controller) SetTransition(seconds float64) {
	c.transitionTime = seconds
}

// Frame returns the frame shows draw into.
func (c *Controller) Frame() *Frame {
	return c.frame
}

// Output returns the frame to display: the show's frame, blended with the
// previous show's last frame while a transition runs.
func (c *Controller) Output() *Frame {
	if c.snapshot == nil {
		return c.frame
	}
	return c.snapshot.InterpolateFrame(c.frame, c.blend)
}

// Do submits cmd and waits for it to be executed by Drain. It is safe to
// call from any goroutine.
func (c *Controller) Do(ctx context.Context, cmd Command) (Status, error) {
	req := request{cmd: cmd, reply: make(chan reply, 1)}
	select {
	case c.requests <- req:
	case <-ctx.Done():
		return Status{}, ctx.Err()
	}

	select {
	case r := <-req.reply:
		return r.status, r.err
	case <-ctx.Done():
		return Status{}, ctx.Err()
	}
}

// Drain executes every pending command.
func (c *Controller) Drain() {
	for {
		select {
		case req := <-c.requests:
			status, err := c.Execute(req.cmd)
			req.reply <- reply{status, err}
		default:
			return
		}
	}
}

// Execute runs cmd straight away and returns the resulting status.
func (c *Controller) Execute(cmd Command) (Status, error) {
	var err error
	switch cmd.Kind {
	case CommandStatus:
	case CommandLoad:
		err = c.Load(cmd.Path)
	default:
		err = c.control(cmd)
	}

	if err != nil {
		log.Printf("Command %v failed: %v", cmd.Kind, err)
	}
	return c.Status(), err
}

func (c *Controller) control(cmd Command) error {
	if c.show == nil {
		return ErrNoShow
	}
	root := c.show.Root
	pc, _ := root.(tween.PlaybackControl)

	switch cmd.Kind {
	case CommandPause:
		if !root.IsPlaying() {
			return tween.ErrNotPlaying
		}
		root.Pause()
	case CommandResume:
		return root.Resume()
	case CommandFastForward:
		if !root.IsPlaying() {
			return tween.ErrNotPlaying
		}
		return root.FastForward()
	case CommandAbort:
		if !root.IsPlaying() {
			return tween.ErrNotPlaying
		}
		root.Abort()
	case CommandReverse:
		if pc != nil {
			pc.Reverse()
		}
	case CommandSpeed:
		if cmd.Multiplier <= 0 {
			return ErrInvalidSpeed
		}
		if pc != nil {
			pc.ChangeSpeed(cmd.Multiplier)
		}
	default:
		return fmt.Errorf("unknown command %v", cmd.Kind)
	}
	return nil
}

// Load builds the show at path and plays it in place of the current one. An
// empty path reloads the current file. On error the current show keeps
// playing.
func (c *Controller) Load(path string) error {
	if path == "" {
		path = c.path
	}
	spec, err := c.load(path)
	if err != nil {
		return fmt.Errorf("loading show %s: %w", path, err)
	}
	show, err := spec.Build(c.frame, c.driver)
	if err != nil {
		return fmt.Errorf("building show %s: %w", path, err)
	}

	if old := c.show; old != nil {
		tween.SafeAbort(old.Root)
		old.Detach()
		c.startTransition()
	}

	c.path = path
	c.show = show
	c.repeats, c.completed, c.aborted = 0, 0, 0
	log.Printf("Playing show %q from %s", show.Name, path)

	return show.Root.PlayRepeat(show.Repeat,
		func() {
			if c.show == show {
				c.repeats++
			}
		},
		func() {
			if c.show == show {
				c.completed++
			}
		},
		func() {
			if c.show == show {
				c.aborted++
			}
		})
}

func (c *Controller) startTransition() {
	var current *Frame
	if c.transitionTime > 0 {
		current = c.Output().Copy()
	}
	if c.transition != nil {
		tween.SafeAbort(c.transition)
	}
	c.snapshot = current
	if current == nil {
		return
	}

	c.blend = 0
	c.transition = tween.NewCustom(func(v float64) { c.blend = v }, 0, 1, c.transitionTime, nil)
	c.transition.SetDriver(c.driver)
	done := func() { c.snapshot = nil }
	c.transition.Play(done, done)
}

// Status returns the state of the current show.
func (c *Controller) Status() Status {
	s := Status{
		Path:      c.path,
		Repeats:   c.repeats,
		Completed: c.completed,
		Aborted:   c.aborted,
	}
	if c.show != nil {
		s.Loaded = true
		s.Name = c.show.Name
		s.Playing = c.show.Root.IsPlaying()
		s.Paused = c.show.Root.IsPaused()
		s.Looping = c.show.Root.IsLooping()
	}
	return s
}
