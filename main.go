package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledtween/api"
	"github.com/matt-g-everett/ledtween/preview"
	"github.com/matt-g-everett/ledtween/stream"
	"github.com/matt-g-everett/ledtween/tween"
)

type app struct {
	Config     *stream.Config
	Client     mqtt.Client
	Driver     *tween.FrameDriver
	Controller *stream.Controller
	Streamer   *stream.Streamer
	Api        *api.Api
	Preview    *preview.Terminal
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
}

func (a *app) handleConnectionLost(client mqtt.Client, err error) {
	log.Printf("Connection lost: %v", err)
}

func (a *app) readConfig(configPath string) {
	config, err := stream.LoadConfig(configPath)
	if err != nil {
		panic(err)
	}
	a.Config = config
}

func (a *app) connect() {
	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetAutoReconnect(true).
		SetOnConnectHandler(a.handleOnConnect).
		SetConnectionLostHandler(a.handleConnectionLost)
	a.Client = mqtt.NewClient(options)

	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
}

func (a *app) setup(quit func()) {
	var sinks []stream.Sink
	if a.Config.Mqtt.URL != "" {
		a.connect()
		sinks = append(sinks, stream.NewMqttSink(a.Client, a.Config.Mqtt.Topics.Stream))
	}
	if a.Config.Preview {
		term, err := preview.NewTerminal()
		if err != nil {
			panic(err)
		}
		a.Preview = term
		go term.Watch(quit)
		sinks = append(sinks, term)
	}
	if len(sinks) == 0 {
		log.Println("No MQTT broker and no preview configured; frames go nowhere")
	}

	a.Driver = tween.NewFrameDriver()
	tween.SetDefaultDriver(a.Driver)

	frame := stream.NewFrame(a.Config.Frame.Pixels)
	a.Controller = stream.NewController(frame, a.Driver, stream.LoadShow)
	a.Controller.SetTransition(a.Config.Transition)
	if err := a.Controller.Load(a.Config.Show); err != nil {
		log.Printf("Failed to load show: %v", err)
	}

	a.Streamer = stream.NewStreamer(a.Driver, a.Controller, a.Config.Frame.Rate, sinks...)
	a.Api = api.NewApi(a.Controller, "client/dist")
}

// watchShow reloads the show whenever its file changes.
func (a *app) watchShow(ctx context.Context) {
	w, err := stream.NewWatcher(a.Config.Show)
	if err != nil {
		log.Printf("Not watching %s: %v", a.Config.Show, err)
		return
	}
	defer w.Close()

	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			log.Printf("Show file %s changed", filepath.Base(path))
			if _, err := a.Controller.Do(ctx, stream.Command{Kind: stream.CommandLoad, Path: path}); err != nil {
				log.Printf("Reload failed: %v", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		case <-ctx.Done():
			return
		}
	}
}

func (a *app) run(ctx context.Context) {
	go a.watchShow(ctx)
	go func() {
		if err := a.Api.Serve(ctx, a.Config.Api.Listen); err != nil {
			log.Printf("API server stopped: %v", err)
		}
	}()

	if err := a.Streamer.Run(ctx); err != nil && ctx.Err() == nil {
		log.Printf("Streamer stopped: %v", err)
	}

	if a.Preview != nil {
		a.Preview.Close()
	}
	if a.Client != nil {
		a.Client.Disconnect(250)
	}
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)
	tween.Log = log.New(os.Stdout, "tween: ", log.LstdFlags)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: show=%s pixels=%d rate=%v broker=%q", a.Config.Show,
		a.Config.Frame.Pixels, a.Config.Frame.Rate, a.Config.Mqtt.URL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.setup(stop)
	a.run(ctx)
}
