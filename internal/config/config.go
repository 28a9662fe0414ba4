// Package config loads the confl formatted settings of the automata driver.
package config

import (
	"fmt"
	"os"

	"github.com/lytics/confl"

	"automata/internal/automaton"
)

const (
	DefaultLogLevel = "info"
	DefaultWorkers  = 4
)

// Config is the driver configuration, eg:
//
//	log_level = debug
//	color = true
//	max_dfa_states = 4096
//	workers = 8
type Config struct {
	LogLevel     string `json:"log_level"`      // [debug,info,warn,error]
	Color        bool   `json:"color"`          // colorize log output on a terminal
	MaxDFAStates int    `json:"max_dfa_states"` // subset construction budget, 0 = unlimited
	Workers      int    `json:"workers"`        // goroutines for batch word matching
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:     DefaultLogLevel,
		MaxDFAStates: automaton.DefaultMaxDFAStates,
		Workers:      DefaultWorkers,
	}
}

// LoadConfigFromFile reads a confl configured file.
func LoadConfigFromFile(filename string) (*Config, error) {
	confBytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return LoadConfig(string(confBytes))
}

// LoadConfig decodes confl text on top of the defaults.
func LoadConfig(conf string) (*Config, error) {
	c := Default()
	if _, err := confl.Decode(conf, c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.MaxDFAStates < 0 {
		return fmt.Errorf("max_dfa_states must not be negative, got %d", c.MaxDFAStates)
	}
	return nil
}

// Options maps the settings onto automaton options.
func (c *Config) Options() []automaton.Option {
	return []automaton.Option{automaton.WithMaxStates(c.MaxDFAStates)}
}

func (c *Config) String() string {
	return fmt.Sprintf(`<config log_level="%s" max_dfa_states=%d workers=%d />`, c.LogLevel, c.MaxDFAStates, c.Workers)
}
