package tween

import (
	"errors"
	"fmt"
	"math"
)

// MaxTracePoints bounds the number of points a single trace may produce.
const MaxTracePoints = 1 << 24

// ErrBadStep is returned when a trace step is not positive or would produce
// more than MaxTracePoints points.
var ErrBadStep = errors.New("tween: bad trace step")

// Point is a 2-D coordinate read back from a pair of cells.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// A Sampler answers "where is the path at percent p" for a tree that drives
// an x and a y cell. Sampling moves the tree's play-head; it never changes
// the tree's shape.
type Sampler struct {
	root Node
	x    *Number
	y    *Number
}

// NewSampler creates a Sampler reading x and y after each seek of root.
func NewSampler(root Node, x, y *Number) *Sampler {
	s := new(Sampler)
	s.root = root
	s.x = x
	s.y = y
	return s
}

// Duration returns the total duration of the sampled tree.
func (s *Sampler) Duration() float64 {
	return s.root.Duration()
}

// Point returns the current value of the output cells.
func (s *Sampler) Point() Point {
	return Point{X: s.x.Get(), Y: s.y.Get()}
}

// SampleAtPercent seeks to p of the total duration and returns the point
// there. p is clamped to [0,1].
func (s *Sampler) SampleAtPercent(p float64) Point {
	p = clamp(p, 0, 1)
	s.root.SeekTo(p * s.root.Duration())
	return s.Point()
}

// CheckStep reports whether tracing a tree of the given duration in
// increments of step stays within MaxTracePoints.
func CheckStep(duration, step float64) error {
	if !(step > 0) {
		return fmt.Errorf("%w: %v is not positive", ErrBadStep, step)
	}
	if n := math.Ceil(duration / step); !(n < MaxTracePoints) {
		return fmt.Errorf("%w: %v over %v gives too many points", ErrBadStep, step, duration)
	}
	return nil
}

// Trace seeks from 0 to the total duration in increments of step and
// returns the sampled points. The final point is always at the end.
func (s *Sampler) Trace(step float64) ([]Point, error) {
	total := s.root.Duration()
	if err := CheckStep(total, step); err != nil {
		return nil, err
	}

	n := int(math.Ceil(total / step))
	points := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := math.Min(float64(i)*step, total)
		s.root.SeekTo(t)
		points = append(points, s.Point())
	}
	return points, nil
}

// Record plays root forward from its current state in increments of step,
// collecting the x/y position before the first step and after each one.
func Record(root Node, x, y *Number, step float64) ([]Point, error) {
	if err := CheckStep(root.Duration(), step); err != nil {
		return nil, err
	}

	points := []Point{{X: x.Get(), Y: y.Get()}}
	for !root.IsDone() {
		if err := root.Advance(step); err != nil {
			return points, err
		}
		points = append(points, Point{X: x.Get(), Y: y.Get()})
	}
	return points, nil
}
