package tween

// A Tweenable is a mutable value slot that tweens write into. Cells are
// shared by pointer: several trees may drive and read the same cell.
type Tweenable[T any] struct {
	value T
}

// NewTweenable creates a Tweenable holding v.
func NewTweenable[T any](v T) *Tweenable[T] {
	c := new(Tweenable[T])
	c.value = v
	return c
}

// Get returns the current value.
func (c *Tweenable[T]) Get() T {
	return c.value
}

// Set replaces the current value.
func (c *Tweenable[T]) Set(v T) {
	c.value = v
}

// Number is a numeric Tweenable.
type Number = Tweenable[float64]

// NewNumber creates a Number holding a constant.
func NewNumber(v float64) *Number {
	return NewTweenable(v)
}
