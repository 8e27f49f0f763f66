package stream

import (
	"math/rand"
	"testing"
)

func newTestController(t *testing.T, configure func(*Config)) *Controller {
	t.Helper()
	config := testConfig()
	config.Clock.TransitionSeconds = 0.15
	config.Clock.CycleSeconds = 0
	if configure != nil {
		configure(&config)
	}
	c, err := NewController(config, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	for _, face := range c.faces {
		face.now = fixedTime(9, 30, 0)
	}
	return c
}

func TestControllerFaceRequest(t *testing.T) {
	c := newTestController(t, nil)
	if got := c.Current(); got != "round" {
		t.Fatalf("Current() = %q, want round", got)
	}

	c.Requests() <- Request{Face: "wide"}
	f := c.CalculateFrame(0)
	if f.Width() != 21 || f.Height() != 21 {
		t.Fatalf("frame size %dx%d, want 21x21", f.Width(), f.Height())
	}
	s := c.Snapshot()
	if !s.Transitioning || s.Face != "round" || s.Next != "wide" {
		t.Fatalf("after first frame snapshot = %+v, want transition round -> wide", s)
	}

	c.CalculateFrame(100)
	s = c.Snapshot()
	if s.Transitioning || s.Face != "wide" {
		t.Fatalf("after second frame snapshot = %+v, want wide", s)
	}
	if len(s.Outline) == 0 {
		t.Fatal("snapshot outline empty")
	}
}

func TestControllerIgnoresUnknownAndCurrentFace(t *testing.T) {
	c := newTestController(t, nil)
	c.Requests() <- Request{Face: "hexagon"}
	c.Requests() <- Request{Face: "round"}
	c.CalculateFrame(0)
	if s := c.Snapshot(); s.Transitioning || s.Face != "round" {
		t.Fatalf("snapshot = %+v, want round without transition", s)
	}
}

func TestControllerNextRequest(t *testing.T) {
	c := newTestController(t, func(config *Config) {
		config.Clock.TransitionSeconds = 0
	})
	c.Requests() <- Request{Next: true}
	c.CalculateFrame(0)
	if got := c.Current(); got != "wide" {
		t.Fatalf("Current() = %q, want wide", got)
	}
	c.Requests() <- Request{Next: true}
	c.CalculateFrame(100)
	if got := c.Current(); got != "round" {
		t.Fatalf("Current() = %q, want round after wrapping", got)
	}
}

func TestControllerCycles(t *testing.T) {
	c := newTestController(t, func(config *Config) {
		config.Clock.CycleSeconds = 1
	})
	c.CalculateFrame(0)
	if c.Snapshot().Transitioning {
		t.Fatal("transition started before cycle time")
	}
	c.CalculateFrame(1000)
	if s := c.Snapshot(); !s.Transitioning || s.Next != "wide" {
		t.Fatalf("snapshot = %+v, want transition to wide", s)
	}
}
