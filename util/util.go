package util

import (
	"math/rand"

	"github.com/matt-g-everett/ledclock/tween"
)

// RandomRange returns a random value in [min, max).
func RandomRange(r *rand.Rand, min float64, max float64) float64 {
	return r.Float64()*(max-min) + min
}

// GenerateLut builds a table that rises from 0 towards 1 over its first half
// and falls back over its second half, shaped by f.
func GenerateLut(length int, f tween.EaseFunc) []float64 {
	lut := make([]float64, length)
	if length < 2 {
		return lut
	}

	increment := 1.0 / float64(length/2)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := f(float64(i) * increment)
		lut[i] = value
		lut[j] = value
	}
	return lut
}

// A Memoizer caches LUTs of one ease function by length.
type Memoizer struct {
	ease tween.EaseFunc
	luts map[int][]float64
}

// NewMemoizer creates a Memoizer for f.
func NewMemoizer(f tween.EaseFunc) *Memoizer {
	m := new(Memoizer)
	m.ease = f
	m.luts = make(map[int][]float64)
	return m
}

// Lut returns the cached table of the given length, building it on first use.
// Callers must not modify the returned slice.
func (m *Memoizer) Lut(length int) []float64 {
	lut, ok := m.luts[length]
	if !ok {
		lut = GenerateLut(length, m.ease)
		m.luts[length] = lut
	}
	return lut
}
