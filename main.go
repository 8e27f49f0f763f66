package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledclock/api"
	"github.com/matt-g-everett/ledclock/preview"
	"github.com/matt-g-everett/ledclock/stream"
)

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Controller *stream.Controller
	Streamer   *stream.Streamer
}

func newApp(config stream.Config) (*app, error) {
	a := new(app)
	a.Config = config

	controller, err := stream.NewController(config, rand.New(rand.NewSource(time.Now().UTC().UnixNano())))
	if err != nil {
		return nil, err
	}
	a.Controller = controller
	return a, nil
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	a.Streamer.Subscribe()
}

func (a *app) connect() {
	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	control := stream.NewControl(a.Config, a.Client, a.Controller.Requests())
	a.Streamer = stream.NewStreamer(a.Config, a.Client, a.Controller, control)

	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("Connect to %s: %v", a.Config.Mqtt.URL, token.Error())
	}
}

func (a *app) runStream(stop <-chan struct{}) {
	a.connect()
	defer a.Client.Disconnect(250)

	server := api.NewApi(a.Config.Api.Listen, a.Config.Api.StaticDir, a.Controller)
	go func() {
		if err := server.Serve(); err != nil {
			log.Printf("API server: %v", err)
		}
	}()

	a.Streamer.Run(stop)
}

func (a *app) runPreview(stop <-chan struct{}) {
	p, err := preview.New()
	if err != nil {
		log.Fatalf("Open terminal: %v", err)
	}
	defer p.Close()
	p.Run(a.Controller, a.Config.Display.FrameRate, stop)
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	showPreview := flag.Bool("preview", false, "Render in the terminal instead of streaming over MQTT.")
	flag.Parse()

	config, err := stream.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	if !*showPreview {
		log.Printf("Config: display %dx%d at %v fps, %d faces",
			config.Display.Width, config.Display.Height, config.Display.FrameRate, len(config.Clock.Faces))
	}

	a, err := newApp(config)
	if err != nil {
		log.Fatalf("Clock: %v", err)
	}

	stop := make(chan struct{})
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)
	go func() {
		<-signals
		close(stop)
	}()

	if *showPreview {
		a.runPreview(stop)
	} else {
		a.runStream(stop)
	}
}
