// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/mia-platform/fatallogger/internal/logger"
)

var (
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
)

// Config holds the logger settings read from the environment.
type Config struct {
	LoggerLevel string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerJSON  bool   `env:"LOGGER_JSON" envDefault:"true"`
	LoggerColor bool   `env:"LOGGER_COLOR" envDefault:"false"`
}

// LoadConfig parses and validates the logger configuration from the environment.
func LoadConfig() (*Config, error) {
	var envVars Config
	if err := env.Parse(&envVars); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}

	if err := validateEnvironmentVariables(&envVars); err != nil {
		return nil, err
	}
	return &envVars, nil
}

// Level returns the configured logger level.
func (c *Config) Level() logger.Level {
	return logger.LevelFromString(c.LoggerLevel)
}

// LoggerOptions converts the configuration to the options used to build the root logger.
func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:      c.Level(),
		JSONFormat: c.LoggerJSON,
		Color:      c.LoggerColor,
	}
}

func validateEnvironmentVariables(envVars *Config) error {
	envError := make([]string, 0)

	level := strings.ToUpper(strings.TrimSpace(envVars.LoggerLevel))
	if logger.LevelFromString(level).String() != level {
		envError = append(envError, fmt.Sprintf("LOGGER_LEVEL %q is not a valid level", envVars.LoggerLevel))
	}

	if envVars.LoggerJSON && envVars.LoggerColor {
		envError = append(envError, "LOGGER_COLOR cannot be used with LOGGER_JSON")
	}

	if len(envError) > 0 {
		return fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, strings.Join(envError, ", "))
	}
	return nil
}
