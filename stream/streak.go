package stream

import (
	"container/list"
	"math"
	"math/rand"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledclock/tween"
	"github.com/matt-g-everett/ledclock/util"
)

// A streakParticle runs along a closed path. Positions are in turns of the
// path: 0 is the first point and 1 is back at the start.
type streakParticle struct {
	colour   colorful.Color
	start    float64
	current  float64
	speed    float64
	length   float64
	gainRate float64
}

func (p *streakParticle) incrementPosition(intervalMs int64) {
	p.current += p.speed * float64(intervalMs) / 1000
}

func (p *streakParticle) calcEaseDistance() float64 {
	return math.Abs(p.current-p.start) * p.gainRate
}

func (p *streakParticle) isLive(easeDistance float64) bool {
	return easeDistance <= 2
}

// overallGain fades in over the first half of the travel and out over the
// second.
func (p *streakParticle) overallGain(easeDistance float64) float64 {
	if easeDistance > 2 {
		return 0
	} else if easeDistance > 1 {
		easeDistance = 1 - (easeDistance - 1)
	}

	return ease.InOutQuad(easeDistance)
}

// addStreak blends the particle onto f along path. The head is brightest
// and the tail fades out behind it.
func (p *streakParticle) addStreak(f *Frame, path []tween.Point) bool {
	easeDistance := p.calcEaseDistance()
	live := p.isLive(easeDistance)
	if !live {
		return false
	}

	bias := p.overallGain(easeDistance)
	segments := len(path) - 1
	head := p.current * float64(segments)
	tail := head - p.length*float64(segments)
	for i := int(math.Ceil(tail)); i <= int(math.Floor(head)); i++ {
		gain := bias
		if head > tail {
			gain *= (float64(i) - tail) / (head - tail)
		}
		pt := path[wrapIndex(i, segments)]
		x, y := int(math.Round(pt.X)), int(math.Round(pt.Y))
		f.Set(x, y, f.At(x, y).BlendHcl(p.colour, gain).Clamped())
	}

	return true
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// A Streak sends randomly coloured streaks round a closed path. Each one
// fades in then out as it travels.
type Streak struct {
	rng       *rand.Rand
	config    StreakConfig
	runtimeMs int64
	started   bool
	particles *list.List
}

// NewStreak creates an instance of a Streak object.
func NewStreak(rng *rand.Rand, config StreakConfig) *Streak {
	s := new(Streak)
	s.rng = rng
	s.config = config
	s.particles = list.New()
	return s
}

// Active returns the number of streaks in flight.
func (s *Streak) Active() int {
	return s.particles.Len()
}

func (s *Streak) newParticle() *streakParticle {
	p := new(streakParticle)
	p.colour = colorful.Hsl(util.RandomRange(s.rng, 0, 360), s.config.Saturation, s.config.Luminance)
	p.start = s.rng.Float64()
	p.current = p.start
	p.speed = util.RandomRange(s.rng, s.config.MinSpeed, s.config.MaxSpeed)
	p.length = s.config.Length
	p.gainRate = 2 / s.config.Travel
	return p
}

// Draw moves every streak on by the time since the previous call and blends
// them onto f along path.
func (s *Streak) Draw(f *Frame, path []tween.Point, runtimeMs int64) {
	var intervalMs int64
	if s.started && runtimeMs > s.runtimeMs {
		intervalMs = runtimeMs - s.runtimeMs
	}
	s.runtimeMs = runtimeMs
	s.started = true

	if len(path) < 2 {
		return
	}

	for e := s.particles.Front(); e != nil; {
		next := e.Next()
		particle, _ := e.Value.(*streakParticle)
		particle.incrementPosition(intervalMs)
		if !particle.addStreak(f, path) {
			s.particles.Remove(e)
		}
		e = next
	}

	if s.config.Chance > 0 && s.rng.Int31n(s.config.Chance) == 0 {
		s.particles.PushBack(s.newParticle())
	}
}
