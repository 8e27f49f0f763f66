package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledclock/tween"
)

const (
	trailSaturation = 1.0
	trailLuminance  = 0.35
)

// A GradientTrail colours a traced path with a gradient that cycles along it.
type GradientTrail struct {
	gradient GradientTable
	speed    float64
}

// NewGradientTrail creates a GradientTrail moving speed turns per second.
func NewGradientTrail(gradient GradientTable, speed float64) *GradientTrail {
	g := new(GradientTrail)
	g.gradient = gradient
	g.speed = speed
	return g
}

// ColorAt returns the colour of the point t of the way along the path.
func (g *GradientTrail) ColorAt(t float64, runtimeMs int64) colorful.Color {
	offset := float64(runtimeMs) / 1000 * g.speed
	pos := math.Mod(t-offset, 1)
	if pos < 0 {
		pos++
	}
	return g.gradient.GetColor(pos, trailSaturation, trailLuminance)
}

// Draw renders the path onto f.
func (g *GradientTrail) Draw(f *Frame, path []tween.Point, runtimeMs int64) {
	if len(path) < 2 {
		return
	}
	segments := float64(len(path) - 1)
	f.DrawPolyline(path, func(i int) colorful.Color {
		return g.ColorAt(float64(i)/segments, runtimeMs)
	})
}
