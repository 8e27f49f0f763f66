package tween

import (
	"fmt"
	"sort"

	"github.com/fogleman/ease"
)

// An EaseFunc maps normalised progress in [0,1] to eased progress in [0,1].
type EaseFunc func(p float64) float64

// Stock ease functions.
var (
	Linear         EaseFunc = ease.Linear
	SineSlowToFast EaseFunc = ease.InSine
	SineFastToSlow EaseFunc = ease.OutSine
	SineInOut      EaseFunc = ease.InOutSine
	QuadIn         EaseFunc = ease.InQuad
	QuadOut        EaseFunc = ease.OutQuad
	QuadInOut      EaseFunc = ease.InOutQuad
	CubicIn        EaseFunc = ease.InCubic
	CubicOut       EaseFunc = ease.OutCubic
	CubicInOut     EaseFunc = ease.InOutCubic
)

// A Registry names ease functions so they can be chosen from config.
type Registry map[string]EaseFunc

// DefaultRegistry returns a registry holding the stock ease functions.
func DefaultRegistry() Registry {
	return Registry{
		"linear":         Linear,
		"sineSlowToFast": SineSlowToFast,
		"sineFastToSlow": SineFastToSlow,
		"sineInOut":      SineInOut,
		"quadIn":         QuadIn,
		"quadOut":        QuadOut,
		"quadInOut":      QuadInOut,
		"cubicIn":        CubicIn,
		"cubicOut":       CubicOut,
		"cubicInOut":     CubicInOut,
	}
}

// Lookup finds an ease function by name.
func (r Registry) Lookup(name string) (EaseFunc, error) {
	f, ok := r[name]
	if !ok || f == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
	}
	return f, nil
}

// Names lists the registered names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
