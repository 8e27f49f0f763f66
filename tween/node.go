package tween

import "errors"

var (
	ErrNegativeDuration = errors.New("tween: negative duration")
	ErrNilTarget        = errors.New("tween: nil target")
	ErrNilEase          = errors.New("tween: nil ease function")
	ErrNilLerp          = errors.New("tween: nil lerp function")
	ErrNegativeDelta    = errors.New("tween: negative time delta")
	ErrUnknownEase      = errors.New("tween: unknown ease function")
	ErrBadShape         = errors.New("tween: invalid shape dimensions")
)

// A Node is one element of an animation tree: a Tween, a Callback, a Chain
// or a Multiplex. Times are in seconds of virtual clock.
//
// Advance moves the play-head forward by dt. SeekTo jumps the play-head to t,
// clamped to [0, Duration()], without replaying earlier time.
type Node interface {
	Advance(dt float64) error
	SeekTo(t float64)
	IsDone() bool
	Duration() float64

	// step advances by dt and returns the part of dt left over once the
	// node is done.
	step(dt float64) float64
	// rewind resets play state without writing to any cell.
	rewind()
}

func clamp(t, lo, hi float64) float64 {
	if t < lo {
		return lo
	}
	if t > hi {
		return hi
	}
	return t
}

func advance(n Node, dt float64) error {
	if dt < 0 {
		return ErrNegativeDelta
	}
	n.step(dt)
	return nil
}
