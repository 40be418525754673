package main

import (
	"exprtree-go/exprtree"
	"fmt"
	"gopkg.in/gcfg.v1"
)

const (
	kDefaultTool          = "prefix"
	kDefaultListen        = "localhost:8080"
	kDefaultStatsInterval = 60
)

type BindingConfig struct {
	Value int
}

// Config is the file read by -c:
//
//	[expr]
//	tool = fancy
//	strict = true
//	listen = localhost:8080
//	statsinterval = 60
//
//	[binding "c"]
//	value = 5
type Config struct {
	Expr struct {
		Tool          string
		Strict        bool
		Listen        string
		StatsInterval int
	}
	Binding map[string]*BindingConfig
}

func NewConfig() *Config {
	ret := Config{}
	ret.Expr.Tool = kDefaultTool
	ret.Expr.Listen = kDefaultListen
	ret.Expr.StatsInterval = kDefaultStatsInterval
	return &ret
}

// LoadConfig reads fname over the defaults.
func LoadConfig(fname string) (*Config, error) {
	config := NewConfig()
	if err := gcfg.ReadFileInto(config, fname); err != nil {
		return nil, fmt.Errorf("loading %s: %w", fname, err)
	}
	return config, config.check()
}

// ParseConfig is LoadConfig for configuration text.
func ParseConfig(text string) (*Config, error) {
	config := NewConfig()
	if err := gcfg.ReadStringInto(config, text); err != nil {
		return nil, err
	}
	return config, config.check()
}

func (c *Config) check() error {
	if c.Expr.StatsInterval <= 0 {
		return fmt.Errorf("statsinterval must be positive, got %d", c.Expr.StatsInterval)
	}
	for name := range c.Binding {
		if name == "" {
			return fmt.Errorf("%w: binding with an empty name", exprtree.ErrInvalidArgument)
		}
	}
	return nil
}

// Env returns the configured bindings as the outermost scope.
func (c *Config) Env() (*exprtree.BindingEnv, error) {
	env := exprtree.NewBindingEnv()
	for name, binding := range c.Binding {
		value := 0
		if binding != nil {
			value = binding.Value
		}
		if err := env.AddBinding(name, value); err != nil {
			return nil, fmt.Errorf("binding %q: %w", name, err)
		}
	}
	return env, nil
}
