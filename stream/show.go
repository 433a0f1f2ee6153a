package stream

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/tween"
	"gopkg.in/yaml.v2"
)

// ShowSpec describes a show: a tree of steps played repeat+1 times (-1 for
// forever).
type ShowSpec struct {
	Name   string   `yaml:"name"`
	Repeat int      `yaml:"repeat"`
	Root   StepSpec `yaml:"root"`
}

// StepSpec is one node of a show. Exactly one field must be set.
type StepSpec struct {
	Sequence []StepSpec   `yaml:"sequence,omitempty"`
	Parallel []StepSpec   `yaml:"parallel,omitempty"`
	Fade     *FadeSpec    `yaml:"fade,omitempty"`
	Trail    *TrailSpec   `yaml:"trail,omitempty"`
	Twinkle  *TwinkleSpec `yaml:"twinkle,omitempty"`
	Streak   *StreakSpec  `yaml:"streak,omitempty"`
	Wait     *float64     `yaml:"wait,omitempty"`
	Speed    *SpeedSpec   `yaml:"speed,omitempty"`
	Reverse  *StepSpec    `yaml:"reverse,omitempty"`
}

// FadeSpec fades pixels [Start, End) to To. End defaults to the frame length.
// With From empty the fade starts from whatever the pixels show when it
// begins playing.
type FadeSpec struct {
	Start    int     `yaml:"start"`
	End      *int    `yaml:"end"`
	From     string  `yaml:"from"`
	To       string  `yaml:"to"`
	Duration float64 `yaml:"duration"`
	Easing   string  `yaml:"easing"`
	Blend    string  `yaml:"blend"`
}

// TrailSpec scrolls a gradient Cycles times along pixels [Start, End).
type TrailSpec struct {
	Start     int           `yaml:"start"`
	End       *int          `yaml:"end"`
	Cycles    float64       `yaml:"cycles"`
	Duration  float64       `yaml:"duration"`
	Easing    string        `yaml:"easing"`
	Chroma    *float64      `yaml:"chroma"`
	Luminance *float64      `yaml:"luminance"`
	Gradient  GradientTable `yaml:"gradient"`
}

// TwinkleSpec lights Particles random pixels of [Start, End) in Colour. The
// same Seed picks the same pixels every time the show is built.
type TwinkleSpec struct {
	Start     int     `yaml:"start"`
	End       *int    `yaml:"end"`
	Particles int     `yaml:"particles"`
	Colour    string  `yaml:"colour"`
	Seed      int64   `yaml:"seed"`
	Duration  float64 `yaml:"duration"`
	Easing    string  `yaml:"easing"`
}

// StreakSpec sends a band of Length pixels in Colour across [Start, End).
type StreakSpec struct {
	Start    int     `yaml:"start"`
	End      *int    `yaml:"end"`
	Length   float64 `yaml:"length"`
	Colour   string  `yaml:"colour"`
	Duration float64 `yaml:"duration"`
	Easing   string  `yaml:"easing"`
}

// SpeedSpec plays Step at Multiplier times its normal speed.
type SpeedSpec struct {
	Multiplier float64  `yaml:"multiplier"`
	Step       StepSpec `yaml:"step"`
}

// LoadShow reads the show file at path.
func LoadShow(path string) (*ShowSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseShow(f)
}

// ParseShow decodes a show. Unknown fields are errors.
func ParseShow(r io.Reader) (*ShowSpec, error) {
	s := new(ShowSpec)
	decoder := yaml.NewDecoder(r)
	decoder.SetStrict(true)
	if err := decoder.Decode(s); err != nil {
		return nil, fmt.Errorf("decoding show: %w", err)
	}
	return s, nil
}

// Show is a built show, ready to play.
type Show struct {
	Name   string
	Repeat int
	Root   tween.Animation

	leaves   []detacher
	detached bool
}

type detacher interface {
	Detach()
}

// Detach releases the frame from every fade and trail in the show, so any
// animation still holding one aborts instead of drawing.
func (s *Show) Detach() {
	s.detached = true
	for _, l := range s.leaves {
		l.Detach()
	}
}

// lazyLeaf tracks the latest fade created by a delegate.
type lazyLeaf struct {
	current detacher
}

func (l *lazyLeaf) Detach() {
	if l.current != nil {
		l.current.Detach()
	}
}

type showBuilder struct {
	frame  *Frame
	driver tween.Driver
	show   *Show
}

// Build compiles the show into an animation tree drawing into frame and
// ticked by driver.
func (s *ShowSpec) Build(frame *Frame, driver tween.Driver) (*Show, error) {
	show := &Show{Name: s.Name, Repeat: s.Repeat}
	b := &showBuilder{frame: frame, driver: driver, show: show}

	root, err := b.step(s.Root, "root")
	if err != nil {
		return nil, err
	}
	show.Root = root
	return show, nil
}

func (b *showBuilder) step(spec StepSpec, path string) (tween.Animation, error) {
	kinds := 0
	for _, set := range []bool{
		spec.Sequence != nil, spec.Parallel != nil, spec.Fade != nil, spec.Trail != nil,
		spec.Twinkle != nil, spec.Streak != nil, spec.Wait != nil, spec.Speed != nil, spec.Reverse != nil,
	} {
		if set {
			kinds++
		}
	}
	if kinds != 1 {
		return nil, fmt.Errorf("%s: a step needs exactly one kind, found %d", path, kinds)
	}

	switch {
	case spec.Sequence != nil:
		seq := tween.NewSequence()
		seq.SetDriver(b.driver)
		if err := b.children(spec.Sequence, path+".sequence", func(a tween.Animation) { seq.Add(a) }); err != nil {
			return nil, err
		}
		return seq, nil

	case spec.Parallel != nil:
		par := tween.NewParallel()
		par.SetDriver(b.driver)
		if err := b.children(spec.Parallel, path+".parallel", func(a tween.Animation) { par.Add(a) }); err != nil {
			return nil, err
		}
		return par, nil

	case spec.Fade != nil:
		return b.fade(spec.Fade, path+".fade")

	case spec.Trail != nil:
		return b.trail(spec.Trail, path+".trail")

	case spec.Twinkle != nil:
		return b.twinkle(spec.Twinkle, path+".twinkle")

	case spec.Streak != nil:
		return b.streak(spec.Streak, path+".streak")

	case spec.Wait != nil:
		if *spec.Wait < 0 {
			return nil, fmt.Errorf("%s.wait: negative duration %v", path, *spec.Wait)
		}
		w := tween.NewWait(*spec.Wait)
		w.SetDriver(b.driver)
		return w, nil

	case spec.Speed != nil:
		if spec.Speed.Multiplier <= 0 {
			return nil, fmt.Errorf("%s.speed: multiplier must be positive, got %v", path, spec.Speed.Multiplier)
		}
		child, err := b.step(spec.Speed.Step, path+".speed.step")
		if err != nil {
			return nil, err
		}
		child.(tween.PlaybackControl).ChangeSpeed(spec.Speed.Multiplier)
		return child, nil

	default:
		child, err := b.step(*spec.Reverse, path+".reverse")
		if err != nil {
			return nil, err
		}
		child.(tween.PlaybackControl).Reverse()
		return child, nil
	}
}

func (b *showBuilder) children(specs []StepSpec, path string, add func(tween.Animation)) error {
	if len(specs) == 0 {
		return fmt.Errorf("%s: no steps", path)
	}
	for i, spec := range specs {
		a, err := b.step(spec, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return err
		}
		add(a)
	}
	return nil
}

func (b *showBuilder) span(start int, end *int, path string) (int, int, error) {
	e := b.frame.Len()
	if end != nil {
		e = *end
	}
	if start < 0 || start > e || e > b.frame.Len() {
		return 0, 0, fmt.Errorf("%s: range [%d, %d) does not fit a frame of %d pixels", path, start, e, b.frame.Len())
	}
	return start, e, nil
}

func (b *showBuilder) timing(duration float64, easing string, path string) (tween.EasingFunc, error) {
	if duration < 0 {
		return nil, fmt.Errorf("%s: negative duration %v", path, duration)
	}
	fn, ok := tween.Easing(easing)
	if !ok {
		return nil, fmt.Errorf("%s: unknown easing %q", path, easing)
	}
	return fn, nil
}

func (b *showBuilder) fade(spec *FadeSpec, path string) (tween.Animation, error) {
	start, end, err := b.span(spec.Start, spec.End, path)
	if err != nil {
		return nil, err
	}
	easing, err := b.timing(spec.Duration, spec.Easing, path)
	if err != nil {
		return nil, err
	}
	to, err := colorful.Hex(spec.To)
	if err != nil {
		return nil, fmt.Errorf("%s: bad colour %q for to", path, spec.To)
	}

	var blend BlendFunc
	switch spec.Blend {
	case "", "rgb":
		blend = tween.LerpColor
	case "hcl":
		blend = tween.LerpHcl
	default:
		return nil, fmt.Errorf("%s: unknown blend %q", path, spec.Blend)
	}

	if spec.From != "" {
		from, err := colorful.Hex(spec.From)
		if err != nil {
			return nil, fmt.Errorf("%s: bad colour %q for from", path, spec.From)
		}
		f := NewFade(b.frame, start, end, &from, to, blend)
		b.show.leaves = append(b.show.leaves, f)
		a := tween.NewTimed(f, spec.Duration, easing)
		a.SetDriver(b.driver)
		return a, nil
	}

	leaf := new(lazyLeaf)
	b.show.leaves = append(b.show.leaves, leaf)
	frame, show, duration := b.frame, b.show, spec.Duration
	d := tween.NewDelegate(func() (tween.Animation, error) {
		target := frame
		if show.detached {
			target = nil
		}
		f := NewFade(target, start, end, nil, to, blend)
		leaf.current = f
		return tween.NewTimed(f, duration, easing), nil
	})
	d.SetDriver(b.driver)
	return d, nil
}

func (b *showBuilder) trail(spec *TrailSpec, path string) (tween.Animation, error) {
	start, end, err := b.span(spec.Start, spec.End, path)
	if err != nil {
		return nil, err
	}
	easing, err := b.timing(spec.Duration, spec.Easing, path)
	if err != nil {
		return nil, err
	}

	chroma, luminance := 1.0, 0.05
	if spec.Chroma != nil {
		chroma = *spec.Chroma
	}
	if spec.Luminance != nil {
		luminance = *spec.Luminance
	}
	cycles := spec.Cycles
	if cycles == 0 {
		cycles = 1
	}

	g := NewTrail(b.frame, start, end, spec.Gradient, cycles, chroma, luminance)
	b.show.leaves = append(b.show.leaves, g)
	a := tween.NewTimed(g, spec.Duration, easing)
	a.SetDriver(b.driver)
	return a, nil
}

func (b *showBuilder) twinkle(spec *TwinkleSpec, path string) (tween.Animation, error) {
	start, end, err := b.span(spec.Start, spec.End, path)
	if err != nil {
		return nil, err
	}
	easing, err := b.timing(spec.Duration, spec.Easing, path)
	if err != nil {
		return nil, err
	}
	colour, err := colorful.Hex(spec.Colour)
	if err != nil {
		return nil, fmt.Errorf("%s: bad colour %q", path, spec.Colour)
	}
	if spec.Particles <= 0 {
		return nil, fmt.Errorf("%s: particles must be positive, got %d", path, spec.Particles)
	}

	// Particles are picked when the twinkle starts so they sit on top of
	// whatever earlier steps drew.
	leaf := new(lazyLeaf)
	b.show.leaves = append(b.show.leaves, leaf)
	frame, show, duration := b.frame, b.show, spec.Duration
	rng := rand.New(rand.NewSource(spec.Seed))
	d := tween.NewDelegate(func() (tween.Animation, error) {
		target := frame
		if show.detached {
			target = nil
		}
		tw := NewTwinkle(target, start, end, spec.Particles, colour, rng)
		leaf.current = tw
		return tween.NewTimed(tw, duration, easing), nil
	})
	d.SetDriver(b.driver)
	return d, nil
}

func (b *showBuilder) streak(spec *StreakSpec, path string) (tween.Animation, error) {
	start, end, err := b.span(spec.Start, spec.End, path)
	if err != nil {
		return nil, err
	}
	easing, err := b.timing(spec.Duration, spec.Easing, path)
	if err != nil {
		return nil, err
	}
	colour, err := colorful.Hex(spec.Colour)
	if err != nil {
		return nil, fmt.Errorf("%s: bad colour %q", path, spec.Colour)
	}
	length := spec.Length
	if length == 0 {
		length = 5
	}
	if length < 0 {
		return nil, fmt.Errorf("%s: negative length %v", path, length)
	}

	leaf := new(lazyLeaf)
	b.show.leaves = append(b.show.leaves, leaf)
	frame, show, duration := b.frame, b.show, spec.Duration
	d := tween.NewDelegate(func() (tween.Animation, error) {
		target := frame
		if show.detached {
			target = nil
		}
		s := NewStreak(target, start, end, length, colour)
		leaf.current = s
		return tween.NewTimed(s, duration, easing), nil
	})
	d.SetDriver(b.driver)
	return d, nil
}
