package stream

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the application configuration, read from YAML.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientID"`
		Topics   struct {
			Stream string `yaml:"stream"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Frame struct {
		Pixels int     `yaml:"pixels"`
		Rate   float64 `yaml:"rate"`
	} `yaml:"frame"`
	Show       string  `yaml:"show"`
	Transition float64 `yaml:"transition"`
	Api        struct {
		Listen string `yaml:"listen"`
	} `yaml:"api"`
	Preview bool `yaml:"preview"`
}

// LoadConfig reads the config file at path.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	return ParseConfig(f)
}

// ParseConfig decodes a config and fills in defaults.
func ParseConfig(r io.Reader) (*Config, error) {
	c := new(Config)
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	c.applyDefaults()
	if c.Frame.Pixels > 0xffff {
		return nil, fmt.Errorf("frame.pixels %d is more than a frame can carry", c.Frame.Pixels)
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "ledtx"
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = "home/xmastree/stream"
	}
	if c.Frame.Pixels <= 0 {
		c.Frame.Pixels = 500
	}
	if c.Frame.Rate <= 0 {
		c.Frame.Rate = 30
	}
	if c.Show == "" {
		c.Show = "show.yaml"
	}
	if c.Api.Listen == "" {
		c.Api.Listen = ":3000"
	}
}
