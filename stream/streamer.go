package stream

import (
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Streamer that streams RGB data frames to an LED matrix over MQTT.
type Streamer struct {
	client    publisher
	topic     string
	qos       byte
	frameRate float64
	animation Animation
	control   *Control
}

// NewStreamer creates an instance of a Streamer. control may be nil.
func NewStreamer(config Config, client mqtt.Client, animation Animation, control *Control) *Streamer {
	return newStreamer(config, client, animation, control)
}

func newStreamer(config Config, client publisher, animation Animation, control *Control) *Streamer {
	s := new(Streamer)
	s.client = client
	s.topic = config.Mqtt.Topics.Stream
	s.qos = config.Mqtt.QoS
	s.frameRate = config.Display.FrameRate
	s.animation = animation
	s.control = control
	return s
}

// Subscribe subscribes to the control topic, if there is one.
func (s *Streamer) Subscribe() {
	if s.control == nil {
		return
	}
	if err := s.control.Subscribe(); err != nil {
		log.Println(err)
	}
}

// SendFrame sends a frame as binary over MQTT.
func (s *Streamer) SendFrame(runtimeMs int64) error {
	f := s.animation.CalculateFrame(runtimeMs)
	b, err := f.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	token := s.client.Publish(s.topic, s.qos, false, b)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("publish %s: %w", s.topic, token.Error())
	}
	return nil
}

// Run sends Frames continuously at the frame rate until stop is closed.
func (s *Streamer) Run(stop <-chan struct{}) {
	interval := time.Duration(float64(time.Second) / s.frameRate)
	publishTimer := time.NewTicker(interval)
	defer publishTimer.Stop()

	start := time.Now()
	for {
		select {
		case <-stop:
			return
		case <-publishTimer.C:
			if err := s.SendFrame(time.Since(start).Milliseconds()); err != nil {
				log.Println(err)
			}
		}
	}
}
