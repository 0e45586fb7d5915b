package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/void-bridge/internal/adapters/repo/statefile"
	"github.com/bnema/void-bridge/internal/adapters/void"
	"github.com/bnema/void-bridge/internal/application"
	"github.com/bnema/void-bridge/internal/config"
	"github.com/bnema/void-bridge/internal/logging"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	settings config.Settings
	logger   *logging.Logger
	factory  void.Factory
	store    *statefile.Store
	runID    string
}

// wireApp resolves settings and builds the adapters. A positional state path
// overrides every other source.
func wireApp(cmd *cobra.Command, v *viper.Viper, opts *rootOptions, args []string) (*app, error) {
	if len(args) == 1 {
		v.Set(config.StatePathKey, args[0])
	}

	settings, err := config.Load(v, opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	logger, err := logging.NewLogger(settings.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	factory := void.Factory{}

	return &app{
		settings: settings,
		logger:   logger,
		factory:  factory,
		store:    statefile.NewStore(factory),
		runID:    uuid.NewString(),
	}, nil
}

func (a *app) context(ctx context.Context) context.Context {
	return logging.WithRunID(ctx, a.runID)
}

func (a *app) newBridge() *application.Bridge {
	return application.NewBridge(application.Options{
		Factory:   a.factory,
		Store:     a.store,
		StatePath: a.settings.State.Path,
		TopN:      a.settings.Response.Top,
		Logger:    a.logger,
	})
}

func (a *app) close() {
	_ = a.logger.Sync()
}
