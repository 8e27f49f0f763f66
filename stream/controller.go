package stream

import (
	"fmt"
	"log"
	"math/rand"
	"sync"

	"github.com/matt-g-everett/ledclock/tween"
)

// A Request asks the Controller to change face.
type Request struct {
	Face string
	Next bool
}

// Snapshot describes what the Controller is showing.
type Snapshot struct {
	Face          string        `json:"face"`
	Next          string        `json:"next,omitempty"`
	Outline       []tween.Point `json:"outline"`
	Hands         Hands         `json:"hands"`
	Transitioning bool          `json:"transitioning"`
}

// Controller that manages clock faces and cross-fades between them.
type Controller struct {
	mu sync.Mutex

	faces   []*ClockFace
	current int
	next    int

	transitionCell *tween.Number
	transition     tween.Node
	transitionEase tween.EaseFunc
	transitionSecs float64
	frameInterval  float64

	cycleMs     int64
	lastCycleMs int64
	started     bool

	requests chan Request
}

// NewController creates a Controller with one ClockFace per configured
// face. All faces report their outline through the same pair of cells.
func NewController(config Config, rng *rand.Rand) (*Controller, error) {
	ease, err := tween.DefaultRegistry().Lookup(config.Clock.TransitionEase)
	if err != nil {
		return nil, err
	}

	c := new(Controller)
	c.next = -1
	c.transitionCell = tween.NewNumber(0)
	c.transitionEase = ease
	c.transitionSecs = config.Clock.TransitionSeconds
	c.frameInterval = 1.0 / config.Display.FrameRate
	c.cycleMs = int64(config.Clock.CycleSeconds * 1000)
	c.requests = make(chan Request, 8)

	x := tween.NewNumber(0)
	y := tween.NewNumber(0)
	for _, fc := range config.Clock.Faces {
		face, err := NewClockFace(config, fc, x, y, rng)
		if err != nil {
			return nil, err
		}
		c.faces = append(c.faces, face)
	}
	if len(c.faces) == 0 {
		return nil, fmt.Errorf("no clock faces configured")
	}

	return c, nil
}

// Requests returns the channel on which face changes are accepted.
func (c *Controller) Requests() chan<- Request {
	return c.requests
}

// Current returns the name of the face being shown.
func (c *Controller) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.faces[c.current].Name()
}

// Snapshot returns the current face, its outline and hand positions.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	face := c.faces[c.current]
	s := Snapshot{
		Face:          face.Name(),
		Outline:       face.Outline(),
		Hands:         face.Hands(),
		Transitioning: c.next >= 0,
	}
	if c.next >= 0 {
		s.Next = c.faces[c.next].Name()
	}
	return s
}

// CalculateFrame creates a new Frame instance.
func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.drainRequests()

	if !c.started {
		c.lastCycleMs = runtimeMs
		c.started = true
	}
	if c.cycleMs > 0 && c.next < 0 && runtimeMs-c.lastCycleMs >= c.cycleMs {
		c.beginTransition((c.current + 1) % len(c.faces))
		c.lastCycleMs = runtimeMs
	}

	if c.next < 0 {
		return c.faces[c.current].CalculateFrame(runtimeMs)
	}

	f1 := c.faces[c.current].CalculateFrame(runtimeMs)
	f2 := c.faces[c.next].CalculateFrame(runtimeMs)
	f := f1.InterpolateFrame(f2, c.transitionCell.Get())

	if err := c.transition.Advance(c.frameInterval); err != nil {
		log.Printf("transition: %v", err)
	}
	if c.transition.IsDone() {
		c.current = c.next
		c.next = -1
	}

	return f
}

func (c *Controller) drainRequests() {
	for {
		select {
		case r := <-c.requests:
			c.handleRequest(r)
		default:
			return
		}
	}
}

func (c *Controller) handleRequest(r Request) {
	if r.Next {
		c.beginTransition((c.current + 1) % len(c.faces))
		return
	}
	for i, face := range c.faces {
		if face.Name() == r.Face {
			c.beginTransition(i)
			return
		}
	}
	log.Printf("Unknown face %q", r.Face)
}

func (c *Controller) beginTransition(target int) {
	if target == c.current || c.next >= 0 {
		return
	}
	log.Printf("Transition %s -> %s", c.faces[c.current].Name(), c.faces[target].Name())

	c.transitionCell.Set(0)
	tw, err := tween.NewTween(c.transitionCell, 1, c.transitionSecs, c.transitionEase)
	if err != nil {
		log.Printf("transition: %v", err)
		c.current = target
		return
	}
	c.transition = tw
	c.next = target
}
