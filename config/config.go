// Package config loads keyless CLI defaults from a JSON file and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/traittech/trait-keyless/compliance"
	"github.com/traittech/trait-keyless/ss58"
)

const envPrefix = "KEYLESS"

// Environment variables consulted by FromEnv.
const (
	EnvSS58Format = envPrefix + "_SS58_FORMAT"
	EnvCompliance = envPrefix + "_COMPLIANCE"
)

// Config holds the defaults the keyless CLI applies when a flag is not given.
//
// Example:
//
//	{
//	  "ss58_format": 42,
//	  "compliance": "strict",
//	  "output": "json",
//	  "log_level": "debug"
//	}
//
// Omitted fields keep the values from Default.
type Config struct {
	SS58Format uint16 `json:"ss58_format"`
	Compliance string `json:"compliance,omitempty"`
	Output     string `json:"output,omitempty"`
	LogLevel   string `json:"log_level,omitempty"`
}

func Default() Config {
	return Config{
		SS58Format: ss58.FormatTraitAssetHub,
		Compliance: compliance.Permissive.String(),
		Output:     "text",
		LogLevel:   "info",
	}
}

func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, errors.New("config: empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// envOverrides is read with the "KEYLESS" prefix. Empty values are ignored.
type envOverrides struct {
	SS58Format string `envconfig:"SS58_FORMAT"`
	Compliance string `envconfig:"COMPLIANCE"`
}

// FromEnv returns c with KEYLESS_SS58_FORMAT and KEYLESS_COMPLIANCE applied.
func (c Config) FromEnv() (Config, error) {
	var env envOverrides
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	if env.SS58Format != "" {
		f, err := strconv.ParseUint(env.SS58Format, 10, 16)
		if err != nil {
			return c, fmt.Errorf("config: %s=%q: %w", EnvSS58Format, env.SS58Format, err)
		}
		c.SS58Format = uint16(f)
	}
	if env.Compliance != "" {
		c.Compliance = env.Compliance
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if !ss58.ValidFormat(c.SS58Format) {
		return fmt.Errorf("config: invalid ss58_format %d", c.SS58Format)
	}
	if _, err := compliance.ParseMode(c.Compliance); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Output {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: invalid output %q", c.Output)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Mode returns the configured compliance mode.
func (c Config) Mode() compliance.Mode {
	m, _ := compliance.ParseMode(c.Compliance)
	return m
}

// Level returns the configured log level. The empty string is info.
func (c Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("config: invalid log_level %q", c.LogLevel)
	}
	return lvl, nil
}
