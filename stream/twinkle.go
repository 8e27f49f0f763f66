package stream

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// A Twinkle makes random pixels of a frame scintillate towards a colour.
// Each scintillation follows a rise-and-fall LUT, one entry per frame.
type Twinkle struct {
	rng        *rand.Rand
	chance     int32
	foreColour colorful.Color
	lut        []float64
	particles  map[int]int
}

// NewTwinkle creates a Twinkle. Each frame every idle pixel starts to
// scintillate with probability 1/chance.
func NewTwinkle(rng *rand.Rand, chance int32, foreColour colorful.Color, lut []float64) *Twinkle {
	t := new(Twinkle)
	t.rng = rng
	t.chance = chance
	t.foreColour = foreColour
	t.lut = lut
	t.particles = make(map[int]int)
	return t
}

// Active returns the number of pixels currently scintillating.
func (t *Twinkle) Active() int {
	return len(t.particles)
}

// Draw advances every scintillation by one frame and blends it over f.
func (t *Twinkle) Draw(f *Frame) {
	if len(t.lut) == 0 {
		return
	}

	numPixels := f.width * f.height
	if t.chance > 0 {
		for i := 0; i < numPixels; i++ {
			if _, running := t.particles[i]; running {
				continue
			}
			if t.rng.Int31n(t.chance) == 0 {
				t.particles[i] = 0
			}
		}
	}

	for i, current := range t.particles {
		if i >= numPixels || current >= len(t.lut) {
			delete(t.particles, i)
			continue
		}
		gain := t.lut[current]
		f.pixels[i] = f.pixels[i].BlendHcl(t.foreColour, gain).Clamped()
		t.particles[i] = current + 1
	}
}
