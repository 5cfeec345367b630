// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/routegraph/internal/config"
	"github.com/katalvlaran/routegraph/internal/routes"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:               "routegraph",
		Short:             "Centrality analysis of route-adjacency graphs",
		Long:              "routegraph links the regions each route passes through and ranks them by degree, closeness and betweenness centrality.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .routegraph.yaml)")
	pf.StringP("input", "i", "", "route CSV file")
	pf.Bool("include-removed", false, "keep routes that have a removal year")
	pf.StringP("format", "f", "text", "output format: text, json or yaml")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.BoolP("verbose", "v", false, "shorthand for --log-level=debug")
	a.bind(pf, "input", "input")
	a.bind(pf, "include_removed", "include-removed")
	a.bind(pf, "format", "format")
	a.bind(pf, "log_level", "log-level")

	root.AddCommand(a.centralityCmd(), a.graphCmd(), a.routesCmd())

	return root
}

// bind maps a flag onto a viper key so flags override file and env values.
func (a *app) bind(fs *pflag.FlagSet, key, flag string) {
	if err := a.v.BindPFlag(key, fs.Lookup(flag)); err != nil {
		panic(fmt.Sprintf("routegraph: bind %s: %v", flag, err))
	}
}

// setup reads the config file and environment, validates the result and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		a.v.SetConfigName(".routegraph")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
	}
	a.v.SetEnvPrefix(config.EnvPrefix)
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("routegraph: read config: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.LogLevel = "debug"
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.log, err = newLogger(cfg.LogLevel); err != nil {
		return fmt.Errorf("routegraph: logger: %w", err)
	}
	a.log.Debug("configuration resolved",
		zap.String("config_file", a.v.ConfigFileUsed()),
		zap.String("input", cfg.Input),
		zap.String("format", cfg.Format))

	return nil
}

// newLogger returns a development logger at debug level and a production logger otherwise.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}

// loadRoutes reads the configured input, logging and counting every skipped row.
func (a *app) loadRoutes(log *zap.Logger, onSkip func()) ([]routes.Route, error) {
	rs, err := routes.LoadFile(a.cfg.Input,
		routes.WithIncludeRemoved(a.cfg.IncludeRemoved),
		routes.WithOnSkip(func(line int, err error) {
			log.Warn("skipping malformed row", zap.Int("line", line), zap.Error(err))
			if onSkip != nil {
				onSkip()
			}
		}),
	)
	if err != nil {
		return nil, err
	}
	log.Info("routes loaded", zap.String("input", a.cfg.Input), zap.Int("routes", len(rs)))

	return rs, nil
}
