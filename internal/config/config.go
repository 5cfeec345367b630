// SPDX-License-Identifier: MIT

// Package config resolves routegraph runtime settings from .routegraph.yaml, ROUTEGRAPH_* env
// vars and CLI flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// EnvPrefix is the environment prefix, e.g. ROUTEGRAPH_WORKERS.
const EnvPrefix = "ROUTEGRAPH"

// Config holds all runtime configuration for one routegraph invocation.
type Config struct {
	Input          string        `mapstructure:"input" validate:"required"`
	Format         string        `mapstructure:"format" validate:"oneof=text json yaml"`
	Top            int           `mapstructure:"top" validate:"gte=0"`
	Workers        int           `mapstructure:"workers" validate:"gte=0"`
	Timeout        time.Duration `mapstructure:"timeout" validate:"gte=0"`
	StepBudget     int           `mapstructure:"step_budget" validate:"gte=0"`
	PairMode       string        `mapstructure:"pair_mode" validate:"oneof=ordered unordered"`
	IncludeRemoved bool          `mapstructure:"include_removed"`
	LogLevel       string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	MetricsFile    string        `mapstructure:"metrics_file"`
	Watch          bool          `mapstructure:"watch"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", "")
	v.SetDefault("format", "text")
	v.SetDefault("top", 0)
	v.SetDefault("workers", 0)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("step_budget", 0)
	v.SetDefault("pair_mode", "ordered")
	v.SetDefault("include_removed", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("metrics_file", "")
	v.SetDefault("watch", false)
}

// Load applies the defaults to v and decodes it into a Config. It does not validate.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks cfg against its field rules and joins every violation into one error.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
