package tween

// A LerpFunc interpolates between a and b by eased progress p.
type LerpFunc[T any] func(a, b T, p float64) T

// LerpNumber is the linear interpolation used by numeric tweens.
func LerpNumber(a, b, p float64) float64 {
	return a + (b-a)*p
}

// A Tween animates one Tweenable from its current value to an end value.
//
// The start value is captured from the target the first time the tween is
// advanced or seeked, so a tween placed in a chain starts wherever the
// preceding nodes left the cell.
type Tween[T any] struct {
	target   *Tweenable[T]
	start    T
	end      T
	duration float64
	ease     EaseFunc
	lerp     LerpFunc[T]

	elapsed  float64
	captured bool
	entered  bool
}

// NewTween creates a numeric Tween.
func NewTween(target *Number, end, duration float64, ease EaseFunc) (*Tween[float64], error) {
	return NewTweenFunc(target, end, duration, ease, LerpNumber)
}

// MustTween is like NewTween but panics on error. It is meant for trees
// built from constant parameters.
func MustTween(target *Number, end, duration float64, ease EaseFunc) *Tween[float64] {
	t, err := NewTween(target, end, duration, ease)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTweenFunc creates a Tween over any type with the given interpolation.
func NewTweenFunc[T any](target *Tweenable[T], end T, duration float64, ease EaseFunc, lerp LerpFunc[T]) (*Tween[T], error) {
	switch {
	case target == nil:
		return nil, ErrNilTarget
	case duration < 0:
		return nil, ErrNegativeDuration
	case ease == nil:
		return nil, ErrNilEase
	case lerp == nil:
		return nil, ErrNilLerp
	}

	t := new(Tween[T])
	t.target = target
	t.end = end
	t.duration = duration
	t.ease = ease
	t.lerp = lerp
	return t, nil
}

// Advance moves the tween forward by dt seconds.
func (t *Tween[T]) Advance(dt float64) error {
	return advance(t, dt)
}

// SeekTo sets the elapsed time to t and writes the matching value.
func (t *Tween[T]) SeekTo(at float64) {
	t.capture()
	t.entered = true
	t.elapsed = clamp(at, 0, t.duration)
	t.apply()
}

// IsDone reports whether the tween has reached its end.
func (t *Tween[T]) IsDone() bool {
	return t.entered && t.elapsed >= t.duration
}

// Duration returns the length of the tween in seconds.
func (t *Tween[T]) Duration() float64 {
	return t.duration
}

func (t *Tween[T]) step(dt float64) float64 {
	t.capture()
	t.entered = true

	var left float64
	if remaining := t.duration - t.elapsed; dt >= remaining {
		t.elapsed = t.duration
		left = dt - remaining
	} else {
		t.elapsed += dt
	}

	t.apply()
	return left
}

func (t *Tween[T]) rewind() {
	t.elapsed = 0
	t.entered = false
}

func (t *Tween[T]) capture() {
	if !t.captured {
		t.start = t.target.Get()
		t.captured = true
	}
}

func (t *Tween[T]) apply() {
	if t.elapsed >= t.duration {
		// Exact end value; ease curves can miss 1 by an ulp.
		t.target.Set(t.end)
		return
	}
	if t.elapsed <= 0 {
		t.target.Set(t.start)
		return
	}
	p := t.ease(t.elapsed / t.duration)
	t.target.Set(t.lerp(t.start, t.end, p))
}
