package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	API     API     `yaml:"api"`
	Chat    Chat    `yaml:"chat"`
	State   State   `yaml:"state"`
	Log     Log     `yaml:"log"`
	Metrics Metrics `yaml:"metrics"`
}

type API struct {
	BaseURL string   `yaml:"base_url"`
	Timeout Duration `yaml:"timeout"`
}

// Duration parses yaml values like "5s"; yaml.v2 cannot unmarshal those into
// time.Duration directly.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type Chat struct {
	URL string `yaml:"url"`
}

type State struct {
	Dir string `yaml:"dir"` // credential store location
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type Metrics struct {
	Addr string `yaml:"addr"` // empty disables the metrics listener
}

const (
	defaultBaseURL = "http://localhost:8081/api"
	defaultChatURL = "ws://localhost:8081/ws/chat"
	defaultTimeout = Duration(10 * time.Second)
)

// MustLoad reads and parses the config file, panicking on any failure.
// Missing values fall back to defaults pointing at a local backend.
func MustLoad(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	raw, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		panic("can't unmarshal config file: " + err.Error())
	}
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = defaultTimeout
	}
	if c.Chat.URL == "" {
		c.Chat.URL = defaultChatURL
	}
	if c.State.Dir == "" {
		c.State.Dir = ".quill"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
