// Package intro plays the wake-up choreography shown on a first visit: the
// character sleeps, squashes, leaps, lands and then greets with a bubble.
package intro

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Phase is a step of the intro.
type Phase int

const (
	Sitting Phase = iota
	Wakeup
	Airborne
	Landing
	Settled
	Bubble
	Exiting
	Finished
)

var phaseNames = map[Phase]string{
	Sitting:  "sitting",
	Wakeup:   "wakeup",
	Airborne: "airborne",
	Landing:  "landing",
	Settled:  "settled",
	Bubble:   "bubble",
	Exiting:  "exiting",
	Finished: "finished",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Pose is the squash/stretch transform, anchored at the bottom centre. Y is
// in screen pixels, negative is up.
type Pose struct {
	ScaleX, ScaleY, Y float64
}

// Rest is the untransformed pose.
var Rest = Pose{ScaleX: 1, ScaleY: 1}

type phaseSpec struct {
	target   Pose
	duration float32
	easing   ease.TweenFunc
	// hold is how long the phase lasts in total, tween included.
	hold float32
}

var phases = map[Phase]phaseSpec{
	Sitting:  {target: Rest, hold: 2},
	Wakeup:   {target: Pose{1.2, 0.55, 0}, duration: 0.14, easing: ease.InQuad},
	Airborne: {target: Pose{0.78, 1.3, -180}, duration: 0.42, easing: ease.OutCubic},
	Landing:  {target: Pose{1.2, 0.62, 0}, duration: 0.1, easing: ease.InQuad},
	Settled:  {target: Rest, duration: 0.25, easing: ease.OutBack, hold: 0.35},
	Bubble:   {target: Rest},
	Exiting:  {target: Rest, hold: 0.2},
}

// DismissDelay keeps the click that finished the landing from closing the
// bubble straight away.
const DismissDelay = 0.15

// Sequence steps the intro. Times are in seconds.
type Sequence struct {
	phase   Phase
	elapsed float32
	pose    Pose
	tweens  [3]*gween.Tween
}

// New starts an intro in the sitting phase.
func New() *Sequence {
	s := &Sequence{pose: Rest}
	s.enter(Sitting)
	return s
}

// Phase returns the current phase.
func (s *Sequence) Phase() Phase {
	return s.phase
}

// Done reports whether the intro is over.
func (s *Sequence) Done() bool {
	return s.phase == Finished
}

// BubbleVisible reports whether the greeting should be on screen.
func (s *Sequence) BubbleVisible() bool {
	return s.phase == Bubble
}

// Pose returns the current transform.
func (s *Sequence) Pose() Pose {
	return s.pose
}

// Dismiss closes the bubble. It only works once the bubble has been up for
// DismissDelay.
func (s *Sequence) Dismiss() bool {
	if s.phase != Bubble || s.elapsed < DismissDelay {
		return false
	}
	s.enter(Exiting)
	return true
}

// Skip jumps straight to the end.
func (s *Sequence) Skip() {
	s.pose = Rest
	s.phase = Finished
}

// Update advances by dt seconds and returns the pose.
func (s *Sequence) Update(dt float64) Pose {
	if s.phase == Finished {
		return s.pose
	}
	step := float32(dt)
	s.elapsed += step

	tweening := false
	if s.tweens[0] != nil {
		sx, doneX := s.tweens[0].Update(step)
		sy, doneY := s.tweens[1].Update(step)
		y, doneYOff := s.tweens[2].Update(step)
		s.pose = Pose{ScaleX: float64(sx), ScaleY: float64(sy), Y: float64(y)}
		tweening = !(doneX && doneY && doneYOff)
	}

	spec, timed := phases[s.phase]
	switch {
	case s.phase == Bubble:
		// Waits for Dismiss.
	case tweening:
	case timed && s.elapsed < spec.hold:
	default:
		s.enter(s.phase + 1)
	}
	return s.pose
}

func (s *Sequence) enter(p Phase) {
	s.phase = p
	s.elapsed = 0
	s.tweens = [3]*gween.Tween{}

	spec, ok := phases[p]
	if !ok || spec.duration == 0 {
		if ok {
			s.pose = spec.target
		}
		return
	}
	from := s.pose
	s.tweens = [3]*gween.Tween{
		gween.New(float32(from.ScaleX), float32(spec.target.ScaleX), spec.duration, spec.easing),
		gween.New(float32(from.ScaleY), float32(spec.target.ScaleY), spec.duration, spec.easing),
		gween.New(float32(from.Y), float32(spec.target.Y), spec.duration, spec.easing),
	}
}
