package stream

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matt-g-everett/ledclock/tween"
)

func TestParseConfigDefaults(t *testing.T) {
	c, err := ParseConfig([]byte("mqtt:\n  url: tcp://broker:1883\n"))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if c.Mqtt.URL != "tcp://broker:1883" {
		t.Errorf("Mqtt.URL = %q", c.Mqtt.URL)
	}
	if c.Display.Width != 64 || c.Display.Height != 32 || c.Display.FrameRate != 30 {
		t.Errorf("Display = %+v, want 64x32 at 30", c.Display)
	}
	if len(c.Clock.Faces) != 2 {
		t.Errorf("len(Faces) = %d, want 2 defaults", len(c.Clock.Faces))
	}
	if len(c.Clock.Gradient) == 0 {
		t.Error("default gradient missing")
	}
}

func TestParseConfigFaces(t *testing.T) {
	data := `
display:
  width: 32
  height: 16
clock:
  faces:
    - name: wide
      radius: 4
      extraWidth: 6
  transitionEase: linear
  gradient:
    - {hue: 0, pos: 0}
    - {hue: 120, pos: 1}
`
	c, err := ParseConfig([]byte(data))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	want := FaceConfig{Name: "wide", Radius: 4, ExtraWidth: 6}
	if len(c.Clock.Faces) != 1 || c.Clock.Faces[0] != want {
		t.Fatalf("Faces = %+v, want [%+v]", c.Clock.Faces, want)
	}
	if got := c.Clock.Gradient[1]; got != (GradientStop{Hue: 120, Pos: 1}) {
		t.Fatalf("Gradient[1] = %+v", got)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"unknown ease", "clock:\n  hourEase: wobble\n", "unknown ease"},
		{"duplicate face", "clock:\n  faces:\n    - {name: a, radius: 1}\n    - {name: a, radius: 2}\n", "defined twice"},
		{"bad colour", "clock:\n  colours:\n    minute: nope\n", "colour"},
		{"bad qos", "mqtt:\n  qos: 3\n", "qos"},
		{"negative width", "display:\n  width: -4\n", "display size"},
		{"zero frame rate", "display:\n  frameRate: 0\n", "frame rate"},
		{"unknown trail", "clock:\n  faces:\n    - {name: a, radius: 1, trail: zigzag}\n", "unknown trail"},
		{"stripe lengths", "clock:\n  stripes:\n    minLength: 0\n", "stripe lengths"},
		{"streak speeds", "streak:\n  minSpeed: 2\n  maxSpeed: 1\n", "streak"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("ParseConfig() error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestParseConfigBadShape(t *testing.T) {
	_, err := ParseConfig([]byte("clock:\n  faces:\n    - {name: flat, radius: 0}\n"))
	if !errors.Is(err, tween.ErrBadShape) {
		t.Fatalf("ParseConfig() error = %v, want ErrBadShape", err)
	}
}

func TestParseConfigTraceStep(t *testing.T) {
	for _, step := range []string{"0", "-0.5", "1e-12", "1e-300"} {
		_, err := ParseConfig([]byte("clock:\n  traceStep: " + step + "\n"))
		if !errors.Is(err, tween.ErrBadStep) {
			t.Fatalf("ParseConfig(traceStep %s) error = %v, want ErrBadStep", step, err)
		}
	}
	c, err := ParseConfig([]byte("clock:\n  traceStep: 0.001\n"))
	if err != nil {
		t.Fatalf("ParseConfig(traceStep 0.001) error = %v", err)
	}
	if c.Clock.TraceStep != 0.001 {
		t.Fatalf("TraceStep = %v, want 0.001", c.Clock.TraceStep)
	}
}

func TestParseConfigKeepsExplicitZero(t *testing.T) {
	c, err := ParseConfig([]byte("clock:\n  transitionSeconds: 0\n  inset: 0\n"))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if c.Clock.TransitionSeconds != 0 {
		t.Errorf("TransitionSeconds = %v, want explicit 0 kept", c.Clock.TransitionSeconds)
	}
	if c.Clock.Inset != 0 {
		t.Errorf("Inset = %v, want explicit 0 kept", c.Clock.Inset)
	}

	c, err = ParseConfig([]byte("display:\n  width: 40\n"))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if c.Clock.TransitionSeconds != 5 || c.Display.Height != 32 {
		t.Errorf("TransitionSeconds/Height = %v/%d, want defaults 5/32", c.Clock.TransitionSeconds, c.Display.Height)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("display:\n  frameRate: 20\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if c.Display.FrameRate != 20 {
		t.Fatalf("FrameRate = %v, want 20", c.Display.FrameRate)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("LoadConfig(missing) error = nil")
	}
}
