package stream

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledclock/tween"
	"github.com/matt-g-everett/ledclock/util"
)

const (
	hourHandLength   = 0.5
	minuteHandLength = 0.8
)

// Hands holds the positions of the hand markers in pixel coordinates and
// the fraction of a turn each hand has made.
type Hands struct {
	Hour          tween.Point `json:"hour"`
	Minute        tween.Point `json:"minute"`
	Second        tween.Point `json:"second"`
	HourPercent   float64     `json:"hourPercent"`
	MinutePercent float64     `json:"minutePercent"`
	SecondPercent float64     `json:"secondPercent"`
}

// An outlinePainter colours a traced path.
type outlinePainter interface {
	Draw(f *Frame, path []tween.Point, runtimeMs int64)
}

// A ClockFace is an Animation that draws a rounded-rectangle clock. The
// outline is traced once from a tween chain; hand markers are placed on it
// each frame by sampling the same chain at the hand's percent.
type ClockFace struct {
	face    FaceConfig
	width   int
	height  int
	sampler *tween.Sampler
	outline []tween.Point
	scale   float64
	origin  tween.Point
	centre  tween.Point
	top     float64

	background   colorful.Color
	minuteColour colorful.Color
	secondColour colorful.Color
	hourColour   *tween.Color
	hourCycle    *tween.Chain

	trail   outlinePainter
	streak  *Streak
	twinkle *Twinkle

	spring      harmonica.Spring
	secondPos   float64
	secondVel   float64
	springReady bool

	hands Hands
	now   func() time.Time
}

// NewClockFace builds a face. x and y are the cells the outline chain
// drives; faces may share them.
func NewClockFace(config Config, face FaceConfig, x, y *tween.Number, rng *rand.Rand) (*ClockFace, error) {
	chain, err := tween.RoundedRect(x, y, face.Radius, face.ExtraWidth, face.ExtraHeight)
	if err != nil {
		return nil, fmt.Errorf("face %q: %w", face.Name, err)
	}

	c := new(ClockFace)
	c.face = face
	c.width = config.Display.Width
	c.height = config.Display.Height
	c.sampler = tween.NewSampler(chain, x, y)
	c.top = tween.TopCentrePercent(face.Radius, face.ExtraWidth, face.ExtraHeight)
	c.now = time.Now

	boxW := 2*face.Radius + face.ExtraWidth
	boxH := 2*face.Radius + face.ExtraHeight
	availW := float64(c.width-1) - 2*config.Clock.Inset
	availH := float64(c.height-1) - 2*config.Clock.Inset
	if availW <= 0 || availH <= 0 {
		return nil, fmt.Errorf("face %q: inset %v leaves no room on a %dx%d display",
			face.Name, config.Clock.Inset, c.width, c.height)
	}
	c.scale = math.Min(availW/boxW, availH/boxH)
	c.origin = tween.Point{
		X: (float64(c.width-1) - boxW*c.scale) / 2,
		Y: (float64(c.height-1) - boxH*c.scale) / 2,
	}
	c.centre = c.toPixels(tween.Point{X: boxW / 2, Y: boxH / 2})

	traced, err := c.sampler.Trace(config.Clock.TraceStep)
	if err != nil {
		return nil, fmt.Errorf("face %q: %w", face.Name, err)
	}
	c.outline = make([]tween.Point, len(traced))
	for i, p := range traced {
		c.outline[i] = c.toPixels(p)
	}

	colours := config.Clock.Colours
	for _, hc := range []struct {
		hex string
		out *colorful.Color
	}{
		{colours.Background, &c.background},
		{colours.Minute, &c.minuteColour},
		{colours.Second, &c.secondColour},
	} {
		*hc.out, err = colorful.Hex(hc.hex)
		if err != nil {
			return nil, fmt.Errorf("face %q: colour %q: %w", face.Name, hc.hex, err)
		}
	}

	registry := tween.DefaultRegistry()
	hourEase, err := registry.Lookup(config.Clock.HourEase)
	if err != nil {
		return nil, err
	}
	c.hourColour, c.hourCycle, err = newColourCycle(colours.HourCycle, hourEase)
	if err != nil {
		return nil, fmt.Errorf("face %q: %w", face.Name, err)
	}

	twinkleEase, err := registry.Lookup(config.Twinkle.Ease)
	if err != nil {
		return nil, err
	}
	twinkleColour, err := colorful.Hex(config.Twinkle.Colour)
	if err != nil {
		return nil, fmt.Errorf("face %q: twinkle colour %q: %w", face.Name, config.Twinkle.Colour, err)
	}
	lut := util.NewMemoizer(twinkleEase).Lut(config.Twinkle.LutLength)
	c.twinkle = NewTwinkle(rng, config.Twinkle.Chance, twinkleColour, lut)
	c.streak = NewStreak(rng, config.Streak)

	switch face.Trail {
	case "", TrailGradient:
		c.trail = NewGradientTrail(config.Clock.Gradient, config.Clock.TrailSpeed)
	case TrailStripes:
		c.trail, err = NewStripeTrail(rng, config.Clock.Stripes, config.Clock.TrailSpeed)
		if err != nil {
			return nil, fmt.Errorf("face %q: %w", face.Name, err)
		}
	default:
		return nil, fmt.Errorf("face %q: unknown trail %q", face.Name, face.Trail)
	}

	fps := int(math.Round(config.Display.FrameRate))
	if fps < 1 {
		fps = 1
	}
	c.spring = harmonica.NewSpring(harmonica.FPS(fps), config.Clock.Spring.Frequency, config.Clock.Spring.Damping)

	return c, nil
}

// newColourCycle builds a closed chain through the colours, one unit per
// colour, starting and ending at the first.
func newColourCycle(hexes []string, ease tween.EaseFunc) (*tween.Color, *tween.Chain, error) {
	if len(hexes) == 0 {
		return nil, nil, fmt.Errorf("empty colour cycle")
	}
	colours := make([]colorful.Color, len(hexes))
	for i, hex := range hexes {
		col, err := colorful.Hex(hex)
		if err != nil {
			return nil, nil, fmt.Errorf("colour %q: %w", hex, err)
		}
		colours[i] = col
	}

	cell := tween.NewColor(colours[0])
	chain := tween.NewChain().Add(tween.NewCallback(func() {
		cell.Set(colours[0])
	}))
	for i := 1; i <= len(colours); i++ {
		tw, err := tween.NewColorTween(cell, colours[i%len(colours)], 1, ease)
		if err != nil {
			return nil, nil, err
		}
		chain.Add(tw)
	}
	return cell, chain, nil
}

// Name returns the face name.
func (c *ClockFace) Name() string {
	return c.face.Name
}

// Outline returns the traced outline in pixel coordinates.
func (c *ClockFace) Outline() []tween.Point {
	out := make([]tween.Point, len(c.outline))
	copy(out, c.outline)
	return out
}

// Hands returns the hand positions of the last calculated frame.
func (c *ClockFace) Hands() Hands {
	return c.hands
}

// PointAt returns the pixel position of a hand that has made p of a turn,
// with 0 at the top centre of the face.
func (c *ClockFace) PointAt(p float64) tween.Point {
	return c.toPixels(c.sampler.SampleAtPercent(frac(c.top + p)))
}

func (c *ClockFace) toPixels(p tween.Point) tween.Point {
	return tween.Point{
		X: c.origin.X + p.X*c.scale,
		Y: c.origin.Y + p.Y*c.scale,
	}
}

func (c *ClockFace) updateHands(now time.Time) {
	h, m, s := now.Clock()
	seconds := float64(s) + float64(now.Nanosecond())/1e9
	minutes := float64(m) + seconds/60
	hours := float64(h) + minutes/60

	// The second marker chases the time on a spring. The target counts
	// turns since midnight so the marker never swings back across 12.
	target := hours * 60
	if !c.springReady || math.Abs(target-c.secondPos) > 1 {
		c.secondPos = target
		c.secondVel = 0
		c.springReady = true
	} else {
		c.secondPos, c.secondVel = c.spring.Update(c.secondPos, c.secondVel, target)
	}

	c.hands.HourPercent = math.Mod(hours, 12) / 12
	c.hands.MinutePercent = minutes / 60
	c.hands.SecondPercent = frac(c.secondPos)
	c.hands.Hour = c.PointAt(c.hands.HourPercent)
	c.hands.Minute = c.PointAt(c.hands.MinutePercent)
	c.hands.Second = c.PointAt(c.hands.SecondPercent)

	c.hourCycle.SeekTo(hours / 24 * c.hourCycle.Duration())
}

// CalculateFrame creates a new Frame instance.
func (c *ClockFace) CalculateFrame(runtimeMs int64) *Frame {
	c.updateHands(c.now())

	f := NewFrame(c.width, c.height)
	f.Fill(c.background)
	c.twinkle.Draw(f)
	c.trail.Draw(f, c.outline, runtimeMs)
	c.streak.Draw(f, c.outline, runtimeMs)

	hour := c.hourColour.Get()
	f.DrawLine(c.centre, lerpPoint(c.centre, c.hands.Hour, hourHandLength), hour)
	f.DrawLine(c.centre, lerpPoint(c.centre, c.hands.Minute, minuteHandLength), c.minuteColour)
	setPoint(f, c.hands.Hour, hour)
	setPoint(f, c.hands.Minute, c.minuteColour)
	setPoint(f, c.hands.Second, c.secondColour)

	return f
}

func setPoint(f *Frame, p tween.Point, c colorful.Color) {
	f.Set(int(math.Round(p.X)), int(math.Round(p.Y)), c)
}

func lerpPoint(a, b tween.Point, t float64) tween.Point {
	return tween.Point{
		X: tween.LerpNumber(a.X, b.X, t),
		Y: tween.LerpNumber(a.Y, b.Y, t),
	}
}

func frac(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	return v
}
