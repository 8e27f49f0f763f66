package stream

import (
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledclock/tween"
	"gopkg.in/yaml.v2"
)

// Outline trail styles.
const (
	TrailGradient = "gradient"
	TrailStripes  = "stripes"
)

// FaceConfig describes one clock face outline in face units. Only the
// proportions matter; the face is scaled to fit the display.
type FaceConfig struct {
	Name        string  `yaml:"name"`
	Radius      float64 `yaml:"radius"`
	ExtraWidth  float64 `yaml:"extraWidth"`
	ExtraHeight float64 `yaml:"extraHeight"`
	// Trail is the outline style, TrailGradient when empty.
	Trail string `yaml:"trail"`
}

// StreakConfig controls the streaks that run along the outline. Lengths
// and speeds are in turns of the outline.
type StreakConfig struct {
	Chance     int32   `yaml:"chance"`
	Length     float64 `yaml:"length"`
	Travel     float64 `yaml:"travel"`
	MinSpeed   float64 `yaml:"minSpeed"`
	MaxSpeed   float64 `yaml:"maxSpeed"`
	Saturation float64 `yaml:"saturation"`
	Luminance  float64 `yaml:"luminance"`
}

// StripeConfig controls the stripes trail. Lengths are in turns of the
// outline. Stripes use random hues at the given saturation and luminance
// unless Palette lists hex colours.
type StripeConfig struct {
	MinLength  float64  `yaml:"minLength"`
	MaxLength  float64  `yaml:"maxLength"`
	Saturation float64  `yaml:"saturation"`
	Luminance  float64  `yaml:"luminance"`
	Palette    []string `yaml:"palette"`
}

// Config is the YAML configuration of the clock.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientID"`
		QoS      byte   `yaml:"qos"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`

	Display struct {
		Width     int     `yaml:"width"`
		Height    int     `yaml:"height"`
		FrameRate float64 `yaml:"frameRate"`
	} `yaml:"display"`

	Clock struct {
		Faces             []FaceConfig `yaml:"faces"`
		Inset             float64      `yaml:"inset"`
		TraceStep         float64      `yaml:"traceStep"`
		CycleSeconds      float64      `yaml:"cycleSeconds"`
		TransitionSeconds float64      `yaml:"transitionSeconds"`
		TransitionEase    string       `yaml:"transitionEase"`
		HourEase          string       `yaml:"hourEase"`
		TrailSpeed        float64      `yaml:"trailSpeed"`
		Stripes           StripeConfig `yaml:"stripes"`
		Spring            struct {
			Frequency float64 `yaml:"frequency"`
			Damping   float64 `yaml:"damping"`
		} `yaml:"spring"`
		Colours struct {
			Background string   `yaml:"background"`
			HourCycle  []string `yaml:"hourCycle"`
			Minute     string   `yaml:"minute"`
			Second     string   `yaml:"second"`
		} `yaml:"colours"`
		Gradient GradientTable `yaml:"gradient"`
	} `yaml:"clock"`

	Twinkle struct {
		Chance    int32  `yaml:"chance"`
		LutLength int    `yaml:"lutLength"`
		Ease      string `yaml:"ease"`
		Colour    string `yaml:"colour"`
	} `yaml:"twinkle"`

	Streak StreakConfig `yaml:"streak"`

	Api struct {
		Listen    string `yaml:"listen"`
		StaticDir string `yaml:"staticDir"`
	} `yaml:"api"`
}

var defaultGradient = GradientTable{
	{0.0, 0.0},
	{6.0, 0.04},   // Pink
	{87.0, 0.14},  // Red
	{88.0, 0.28},  // Orange
	{98.0, 0.42},  // Yellow
	{180.0, 0.56}, // Green
	{190.0, 0.70}, // Turquoise
	{320.0, 0.84}, // Blue
	{328.0, 0.91}, // Violet
	{360.0, 1.0},  // Pink wrap
}

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() Config {
	var c Config
	c.applyDefaults()
	return c
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over the defaults and validates the result.
// Keys present in data win, including explicit zeros.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "ledclock"
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = "home/ledclock/stream"
	}
	if c.Mqtt.Topics.Control == "" {
		c.Mqtt.Topics.Control = "home/ledclock/control"
	}

	if c.Display.Width == 0 {
		c.Display.Width = 64
	}
	if c.Display.Height == 0 {
		c.Display.Height = 32
	}
	if c.Display.FrameRate == 0 {
		c.Display.FrameRate = 30
	}

	cl := &c.Clock
	if len(cl.Faces) == 0 {
		cl.Faces = []FaceConfig{
			{Name: "oval", Radius: 450, ExtraWidth: 250},
			{Name: "round", Radius: 450},
		}
	}
	if cl.Inset == 0 {
		cl.Inset = 1
	}
	if cl.TraceStep == 0 {
		cl.TraceStep = 0.01
	}
	if cl.TransitionSeconds == 0 {
		cl.TransitionSeconds = 5
	}
	if cl.TransitionEase == "" {
		cl.TransitionEase = "sineInOut"
	}
	if cl.HourEase == "" {
		cl.HourEase = "sineInOut"
	}
	if cl.TrailSpeed == 0 {
		cl.TrailSpeed = 0.05
	}
	if cl.Spring.Frequency == 0 {
		cl.Spring.Frequency = 6
	}
	if cl.Spring.Damping == 0 {
		cl.Spring.Damping = 0.8
	}
	if cl.Colours.Background == "" {
		cl.Colours.Background = "#000005"
	}
	if len(cl.Colours.HourCycle) == 0 {
		cl.Colours.HourCycle = []string{"#1a1a80", "#ffb347", "#ffffff", "#ff6f3c"}
	}
	if cl.Colours.Minute == "" {
		cl.Colours.Minute = "#808080"
	}
	if cl.Colours.Second == "" {
		cl.Colours.Second = "#ff2020"
	}
	if len(cl.Gradient) == 0 {
		cl.Gradient = defaultGradient
	}
	if cl.Stripes.MinLength == 0 {
		cl.Stripes.MinLength = 0.08
	}
	if cl.Stripes.MaxLength == 0 {
		cl.Stripes.MaxLength = 0.25
	}
	if cl.Stripes.Saturation == 0 {
		cl.Stripes.Saturation = 1
	}
	if cl.Stripes.Luminance == 0 {
		cl.Stripes.Luminance = 0.2
	}

	if c.Twinkle.Chance == 0 {
		c.Twinkle.Chance = 400
	}
	if c.Twinkle.LutLength == 0 {
		c.Twinkle.LutLength = 40
	}
	if c.Twinkle.Ease == "" {
		c.Twinkle.Ease = "quadInOut"
	}
	if c.Twinkle.Colour == "" {
		c.Twinkle.Colour = "#404040"
	}

	st := &c.Streak
	if st.Chance == 0 {
		st.Chance = 90
	}
	if st.Length == 0 {
		st.Length = 0.06
	}
	if st.Travel == 0 {
		st.Travel = 0.5
	}
	if st.MinSpeed == 0 {
		st.MinSpeed = 0.15
	}
	if st.MaxSpeed == 0 {
		st.MaxSpeed = 0.35
	}
	if st.Saturation == 0 {
		st.Saturation = 1
	}
	if st.Luminance == 0 {
		st.Luminance = 0.45
	}

	if c.Api.Listen == "" {
		c.Api.Listen = ":3000"
	}
	if c.Api.StaticDir == "" {
		c.Api.StaticDir = "client/dist"
	}
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	var errs []error
	if c.Display.Width <= 0 || c.Display.Height <= 0 || c.Display.Width > 0xffff || c.Display.Height > 0xffff {
		errs = append(errs, fmt.Errorf("display size %dx%d out of range", c.Display.Width, c.Display.Height))
	}
	if !(c.Display.FrameRate > 0) {
		errs = append(errs, fmt.Errorf("frame rate %v is not positive", c.Display.FrameRate))
	}
	if c.Mqtt.QoS > 2 {
		errs = append(errs, fmt.Errorf("mqtt qos %d is not 0, 1 or 2", c.Mqtt.QoS))
	}

	names := make(map[string]bool)
	for i, f := range c.Clock.Faces {
		if f.Name == "" {
			errs = append(errs, fmt.Errorf("face %d has no name", i))
		} else if names[f.Name] {
			errs = append(errs, fmt.Errorf("face %q defined twice", f.Name))
		}
		names[f.Name] = true
		if f.Radius <= 0 || f.ExtraWidth < 0 || f.ExtraHeight < 0 {
			errs = append(errs, fmt.Errorf("face %q: %w", f.Name, tween.ErrBadShape))
		} else {
			duration := tween.RoundedRectDuration(f.Radius, f.ExtraWidth, f.ExtraHeight)
			if err := tween.CheckStep(duration, c.Clock.TraceStep); err != nil {
				errs = append(errs, fmt.Errorf("face %q: %w", f.Name, err))
			}
		}
		switch f.Trail {
		case "", TrailGradient, TrailStripes:
		default:
			errs = append(errs, fmt.Errorf("face %q: unknown trail %q", f.Name, f.Trail))
		}
	}
	if len(c.Clock.Faces) == 0 {
		errs = append(errs, errors.New("no clock faces configured"))
	}
	if c.Clock.TransitionSeconds < 0 || c.Clock.CycleSeconds < 0 || c.Clock.TrailSpeed < 0 {
		errs = append(errs, errors.New("clock timings must not be negative"))
	}
	if s := c.Clock.Stripes; !(s.MinLength > 0) || s.MaxLength < s.MinLength {
		errs = append(errs, fmt.Errorf("stripe lengths %v..%v out of range", s.MinLength, s.MaxLength))
	}
	if s := c.Streak; s.Chance < 0 || !(s.Length > 0) || !(s.Travel > 0) || s.MinSpeed < 0 || s.MaxSpeed < s.MinSpeed {
		errs = append(errs, errors.New("streak settings out of range"))
	}

	registry := tween.DefaultRegistry()
	for _, name := range []string{c.Clock.TransitionEase, c.Clock.HourEase, c.Twinkle.Ease} {
		if _, err := registry.Lookup(name); err != nil {
			errs = append(errs, err)
		}
	}

	colours := append([]string{
		c.Clock.Colours.Background,
		c.Clock.Colours.Minute,
		c.Clock.Colours.Second,
		c.Twinkle.Colour,
	}, c.Clock.Colours.HourCycle...)
	colours = append(colours, c.Clock.Stripes.Palette...)
	for _, hex := range colours {
		if _, err := colorful.Hex(hex); err != nil {
			errs = append(errs, fmt.Errorf("colour %q: %w", hex, err))
		}
	}

	if err := c.Clock.Gradient.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Twinkle.Chance < 0 || c.Twinkle.LutLength < 0 {
		errs = append(errs, errors.New("twinkle settings must not be negative"))
	}

	return errors.Join(errs...)
}
