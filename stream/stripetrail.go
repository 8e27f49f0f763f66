package stream

import (
	"fmt"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledclock/tween"
	"github.com/matt-g-everett/ledclock/util"
)

type stripe struct {
	colour colorful.Color
	length float64
}

// A StripeTrail paints a traced path with an endless run of randomly
// coloured stripes scrolling along it. Lengths and offsets are in turns of
// the path.
type StripeTrail struct {
	rng       *rand.Rand
	config    StripeConfig
	speed     float64
	palette   []colorful.Color
	previous  int
	stripes   []stripe
	current   float64
	runtimeMs int64
	started   bool
}

// NewStripeTrail creates a StripeTrail scrolling speed turns per second.
// Stripes take random hues unless the config names a palette.
func NewStripeTrail(rng *rand.Rand, config StripeConfig, speed float64) (*StripeTrail, error) {
	s := new(StripeTrail)
	s.rng = rng
	s.config = config
	s.speed = speed
	s.previous = -1
	s.stripes = make([]stripe, 0, 20)
	for _, hex := range config.Palette {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("stripe colour %q: %w", hex, err)
		}
		s.palette = append(s.palette, c)
	}
	return s, nil
}

// nextColour picks a random palette colour different from the previous one.
func (s *StripeTrail) nextColour() colorful.Color {
	if len(s.palette) == 0 {
		return colorful.Hsl(util.RandomRange(s.rng, 0, 360), s.config.Saturation, s.config.Luminance)
	}
	if len(s.palette) == 1 {
		return s.palette[0]
	}
	for {
		next := s.rng.Intn(len(s.palette))
		if next != s.previous {
			s.previous = next
			return s.palette[next]
		}
	}
}

func (s *StripeTrail) addStripe() stripe {
	colour := s.nextColour()
	length := util.RandomRange(s.rng, s.config.MinLength, s.config.MaxLength)
	if !(length > 0) {
		length = 1
	}
	st := stripe{colour, length}
	s.stripes = append(s.stripes, st)
	return st
}

// getStripe returns the stripe covering offset and the offset at which it
// ends, adding stripes as needed.
func (s *StripeTrail) getStripe(offset float64) (stripe, float64) {
	var end float64
	for _, st := range s.stripes {
		end += st.length
		if offset < end {
			return st, end
		}
	}

	for {
		st := s.addStripe()
		end += st.length
		if offset < end {
			return st, end
		}
	}
}

// Draw renders the path onto f.
func (s *StripeTrail) Draw(f *Frame, path []tween.Point, runtimeMs int64) {
	if s.started && runtimeMs > s.runtimeMs {
		s.current += s.speed * float64(runtimeMs-s.runtimeMs) / 1000
	}
	s.runtimeMs = runtimeMs
	s.started = true

	// Cull stripes that have passed.
	for len(s.stripes) > 0 && s.current >= s.stripes[0].length {
		s.current -= s.stripes[0].length
		s.stripes = s.stripes[1:]
	}

	if len(path) < 2 {
		return
	}

	segments := float64(len(path) - 1)
	current, end := s.getStripe(s.current)
	f.DrawPolyline(path, func(i int) colorful.Color {
		offset := s.current + float64(i)/segments
		if offset >= end {
			current, end = s.getStripe(offset)
		}
		return current.colour
	})
}
