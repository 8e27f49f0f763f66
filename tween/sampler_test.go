package tween

import (
	"errors"
	"math"
	"testing"
)

func resetChain(x, y *Number) *Chain {
	return NewChain().
		Add(NewCallback(func() {
			x.Set(0)
			y.Set(0)
		})).
		Add(MustTween(x, 10, 1, Linear)).
		Add(MustTween(y, 10, 1, Linear))
}

func TestSamplerResetChain(t *testing.T) {
	x, y := NewNumber(3), NewNumber(4)
	s := NewSampler(resetChain(x, y), x, y)

	if got := s.Duration(); got != 2 {
		t.Fatalf("Duration() = %v, want 2", got)
	}

	tests := []struct {
		p    float64
		want Point
	}{
		{0.75, Point{10, 5}},
		{0.25, Point{5, 0}},
		{1.0, Point{10, 10}},
		{0.0, Point{0, 0}},
		{-1, Point{0, 0}},
		{2, Point{10, 10}},
		{0.5, Point{10, 0}},
	}
	for _, tt := range tests {
		got := s.SampleAtPercent(tt.p)
		if !near(got.X, tt.want.X, tolerance) || !near(got.Y, tt.want.Y, tolerance) {
			t.Errorf("SampleAtPercent(%v) = %+v, want %+v", tt.p, got, tt.want)
		}
	}
}

func TestSamplerSharedCells(t *testing.T) {
	x, y := NewNumber(0), NewNumber(0)
	small, err := RoundedRect(x, y, 5, 0, 0)
	if err != nil {
		t.Fatalf("RoundedRect() error = %v", err)
	}
	wide, err := RoundedRect(x, y, 8, 12, 4)
	if err != nil {
		t.Fatalf("RoundedRect() error = %v", err)
	}
	a := NewSampler(small, x, y)
	b := NewSampler(wide, x, y)

	first := a.SampleAtPercent(0.6)
	b.SampleAtPercent(0.3)
	b.SampleAtPercent(0.9)
	again := a.SampleAtPercent(0.6)
	if !near(first.X, again.X, tolerance) || !near(first.Y, again.Y, tolerance) {
		t.Fatalf("interleaved sampling changed result: %+v then %+v", first, again)
	}
}

func TestTraceStep(t *testing.T) {
	x, y := NewNumber(0), NewNumber(0)
	s := NewSampler(resetChain(x, y), x, y)

	if _, err := s.Trace(0); !errors.Is(err, ErrBadStep) {
		t.Fatalf("Trace(0) error = %v, want ErrBadStep", err)
	}

	points, err := s.Trace(0.3)
	if err != nil {
		t.Fatalf("Trace() error = %v", err)
	}
	// 0, 0.3, ... 1.8, then the clamped end at 2.
	if len(points) != 8 {
		t.Fatalf("len(points) = %d, want 8", len(points))
	}
	if got := points[len(points)-1]; got != (Point{10, 10}) {
		t.Fatalf("last point = %+v, want {10 10}", got)
	}
	if got := points[0]; got != (Point{0, 0}) {
		t.Fatalf("first point = %+v, want {0 0}", got)
	}
}

func TestTraceRejectsTinySteps(t *testing.T) {
	x, y := NewNumber(0), NewNumber(0)
	chain, err := RoundedRect(x, y, 450, 250, 0)
	if err != nil {
		t.Fatalf("RoundedRect() error = %v", err)
	}
	s := NewSampler(chain, x, y)

	for _, step := range []float64{1e-300, 1e-12, math.SmallestNonzeroFloat64, math.NaN(), math.Inf(-1)} {
		if points, err := s.Trace(step); !errors.Is(err, ErrBadStep) {
			t.Fatalf("Trace(%v) = %d points, error %v, want ErrBadStep", step, len(points), err)
		}
		if _, err := Record(chain, x, y, step); !errors.Is(err, ErrBadStep) {
			t.Fatalf("Record(%v) error = %v, want ErrBadStep", step, err)
		}
	}

	// Just inside the cap is accepted by the check.
	step := s.Duration() / (MaxTracePoints - 2)
	if err := CheckStep(s.Duration(), step); err != nil {
		t.Fatalf("CheckStep(%v) error = %v", step, err)
	}
	if err := CheckStep(s.Duration(), s.Duration()/MaxTracePoints/2); !errors.Is(err, ErrBadStep) {
		t.Fatalf("CheckStep() past the cap error = %v, want ErrBadStep", err)
	}
}

func TestRecordPlaysForward(t *testing.T) {
	x, y := NewNumber(3), NewNumber(4)
	points, err := Record(resetChain(x, y), x, y, 0.5)
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	want := []Point{{3, 4}, {5, 0}, {10, 0}, {10, 5}, {10, 10}}
	if len(points) != len(want) {
		t.Fatalf("len(points) = %d, want %d: %+v", len(points), len(want), points)
	}
	for i := range want {
		if !near(points[i].X, want[i].X, tolerance) || !near(points[i].Y, want[i].Y, tolerance) {
			t.Errorf("points[%d] = %+v, want %+v", i, points[i], want[i])
		}
	}

	if _, err := Record(NewChain(), x, y, -1); !errors.Is(err, ErrBadStep) {
		t.Fatalf("Record(step -1) error = %v, want ErrBadStep", err)
	}
}
