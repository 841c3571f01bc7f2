package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Service *svcConfig
	Sensors *sensorsConfig
}

type svcConfig struct {
	LogLevel     string `envconfig:"FTRACKER_LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	OutputFormat string `envconfig:"FTRACKER_OUTPUT" default:"text" validate:"oneof=text csv json yaml"`
	FailFast     bool   `envconfig:"FTRACKER_FAIL_FAST" default:"false"`
}

type sensorsConfig struct {
	SheetName string `envconfig:"FTRACKER_SHEET_NAME" default:"packages" validate:"required"`
}

// New returns the process-wide configuration, reading the environment on first use.
func New() (*Config, error) {
	if singleConfig == nil {
		cfg, err := Load()
		if err != nil {
			return nil, err
		}
		singleConfig = cfg
	}
	return singleConfig, nil
}

// Load reads and validates the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Service: new(svcConfig),
		Sensors: new(sensorsConfig),
	}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its validate tag.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c.Service); err != nil {
		return fmt.Errorf("invalid service configuration: %w", err)
	}
	if err := v.Struct(c.Sensors); err != nil {
		return fmt.Errorf("invalid sensors configuration: %w", err)
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf("log_level=%s output=%s fail_fast=%t sheet=%s",
		c.Service.LogLevel, c.Service.OutputFormat, c.Service.FailFast, c.Sensors.SheetName)
}
