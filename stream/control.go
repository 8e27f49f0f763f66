package stream

import (
	"encoding/json"
	"fmt"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// ControlMessage is a JSON command received on the control topic.
type ControlMessage struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
}

// Control turns messages on the MQTT control topic into face requests.
type Control struct {
	topic    string
	qos      byte
	client   mqtt.Client
	requests chan<- Request
}

// NewControl creates a Control that forwards requests to the given channel.
func NewControl(config Config, client mqtt.Client, requests chan<- Request) *Control {
	c := new(Control)
	c.topic = config.Mqtt.Topics.Control
	c.qos = config.Mqtt.QoS
	c.client = client
	c.requests = requests
	return c
}

func (c *Control) handleClientMessages(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s\n", msg.MessageID(), msg.Topic(), msg.Payload())
	if err := c.handlePayload(msg.Payload()); err != nil {
		log.Println(err)
	}
}

func (c *Control) handlePayload(payload []byte) error {
	var message ControlMessage
	if err := json.Unmarshal(payload, &message); err != nil {
		return fmt.Errorf("control message: %w", err)
	}

	var r Request
	switch message.Type {
	case "face":
		if message.Name == "" {
			return fmt.Errorf("control message: face request without a name")
		}
		r.Face = message.Name
	case "next":
		r.Next = true
	default:
		return fmt.Errorf("control message: unknown type %q", message.Type)
	}

	select {
	case c.requests <- r:
		return nil
	default:
		return fmt.Errorf("control message: request queue full, dropped %+v", r)
	}
}

// Subscribe starts listening on the control topic.
func (c *Control) Subscribe() error {
	token := c.client.Subscribe(c.topic, c.qos, c.handleClientMessages)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe %s: %w", c.topic, token.Error())
	}
	return nil
}
