package stream

import (
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	c, err := ParseConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if c.Frame.Pixels != 500 || c.Frame.Rate != 30 {
		t.Errorf("frame defaults %+v", c.Frame)
	}
	if c.Mqtt.Topics.Stream != "home/xmastree/stream" || c.Mqtt.ClientID != "ledtx" {
		t.Errorf("mqtt defaults %+v", c.Mqtt)
	}
	if c.Show != "show.yaml" || c.Api.Listen != ":3000" || c.Preview || c.Transition != 0 {
		t.Errorf("defaults %+v", c)
	}
}

func TestParseConfig(t *testing.T) {
	c, err := ParseConfig(strings.NewReader(`
mqtt:
  url: tcp://broker:1883
  username: tree
  clientID: porch
  topics:
    stream: home/porch/stream
frame:
  pixels: 120
  rate: 60
show: shows/evening.yaml
transition: 5
api:
  listen: ":8080"
preview: true
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if c.Mqtt.URL != "tcp://broker:1883" || c.Mqtt.Username != "tree" || c.Mqtt.ClientID != "porch" ||
		c.Mqtt.Topics.Stream != "home/porch/stream" {
		t.Errorf("mqtt %+v", c.Mqtt)
	}
	if c.Frame.Pixels != 120 || c.Frame.Rate != 60 || c.Show != "shows/evening.yaml" ||
		c.Transition != 5 || c.Api.Listen != ":8080" || !c.Preview {
		t.Errorf("config %+v", c)
	}
}

func TestParseConfigErrors(t *testing.T) {
	for _, text := range []string{"frame: [1, 2]", "frame: {pixels: 70000}"} {
		if _, err := ParseConfig(strings.NewReader(text)); err == nil {
			t.Errorf("%q: expected an error", text)
		}
	}
}
