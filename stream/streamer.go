package stream

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledtween/tween"
)

// A Sink displays frames.
type Sink interface {
	Send(f *Frame) error
}

// MqttSink publishes frames as binary to an ledrx device.
type MqttSink struct {
	client mqtt.Client
	topic  string
}

// NewMqttSink creates an instance of an MqttSink publishing on topic.
func NewMqttSink(client mqtt.Client, topic string) *MqttSink {
	s := new(MqttSink)
	s.client = client
	s.topic = topic
	return s
}

// Send publishes one frame and waits for delivery.
func (s *MqttSink) Send(f *Frame) error {
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	token := s.client.Publish(s.topic, 2, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publishing frame to %s: %w", s.topic, err)
	}
	return nil
}

// Streamer ticks the show and streams the resulting frames to its sinks.
type Streamer struct {
	driver     *tween.FrameDriver
	controller *Controller
	sinks      []Sink
	interval   time.Duration
}

// NewStreamer creates an instance of a Streamer sending frameRate frames a
// second.
func NewStreamer(driver *tween.FrameDriver, controller *Controller, frameRate float64, sinks ...Sink) *Streamer {
	s := new(Streamer)
	s.driver = driver
	s.controller = controller
	s.sinks = sinks
	s.interval = time.Duration(float64(time.Second) / frameRate)

	return s
}

// SendFrame sends the current frame to every sink.
func (s *Streamer) SendFrame() {
	f := s.controller.Output()
	for _, sink := range s.sinks {
		if err := sink.Send(f); err != nil {
			log.Printf("Failed to send frame: %v", err)
		}
	}
}

// Step runs one frame: advance the show by dt, run pending commands and send
// the frame.
func (s *Streamer) Step(dt float64) {
	s.driver.Tick(dt)
	s.after()
}

func (s *Streamer) after() {
	s.controller.Drain()
	s.SendFrame()
}

// Run causes the Streamer to send Frames continuously until ctx is done.
func (s *Streamer) Run(ctx context.Context) error {
	return s.driver.Run(ctx, s.interval, s.after)
}
