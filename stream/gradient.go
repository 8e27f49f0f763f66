package stream

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// GradientStop is one keypoint of a GradientTable.
type GradientStop struct {
	Hue float64 `yaml:"hue"`
	Pos float64 `yaml:"pos"`
}

// GradientTable stores a look-up table of colours interpolated by hue.
type GradientTable []GradientStop

// GetColor gets a colour at the specified point on the look-up table.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			if c2.Pos == c1.Pos {
				return colorful.Hcl(c1.Hue, s, l)
			}
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, s, l)
		}
	}

	// Past the last keypoint.
	return colorful.Hcl(g[len(g)-1].Hue, s, l)
}

// Validate checks that the table has keypoints in ascending position order.
func (g GradientTable) Validate() error {
	if len(g) == 0 {
		return errors.New("gradient has no keypoints")
	}
	for i := 1; i < len(g); i++ {
		if g[i].Pos < g[i-1].Pos {
			return fmt.Errorf("gradient keypoint %d at %v is before %v", i, g[i].Pos, g[i-1].Pos)
		}
	}
	return nil
}
