// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegraph/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, config.Config{
		Format:   "text",
		PairMode: "ordered",
		LogLevel: "info",
	}, cfg)

	err = cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "input is required")
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".routegraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"input: us_highway.csv",
		"format: json",
		"top: 10",
		"workers: 4",
		"timeout: 30s",
		"step_budget: 500000",
		"pair_mode: unordered",
		"include_removed: true",
		"log_level: debug",
	}, "\n")), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := config.Load(v)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "us_highway.csv", cfg.Input)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 10, cfg.Top)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 500000, cfg.StepBudget)
	assert.Equal(t, "unordered", cfg.PairMode)
	assert.True(t, cfg.IncludeRemoved)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ROUTEGRAPH_INPUT", "env.csv")
	t.Setenv("ROUTEGRAPH_WORKERS", "3")

	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "env.csv", cfg.Input)
	assert.Equal(t, 3, cfg.Workers)
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	cfg := config.Config{
		Input:    "x.csv",
		Format:   "xml",
		Top:      -1,
		PairMode: "both",
		LogLevel: "info",
		Timeout:  -time.Second,
	}

	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalid)
	for _, want := range []string{
		"format must be one of: text json yaml",
		"top must be >= 0",
		"timeout must be >= 0",
		"pairmode must be one of: ordered unordered",
	} {
		assert.Contains(t, err.Error(), want)
	}
}
