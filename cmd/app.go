// Package cmd provides the command line interface for unit-scout
package cmd

import (
	"context"

	"github.com/trly/unit-scout/internal/config"
	"github.com/trly/unit-scout/internal/dbusquery"
	"github.com/trly/unit-scout/internal/execx"
	"github.com/trly/unit-scout/internal/log"
	"github.com/trly/unit-scout/internal/resolver"
	"github.com/trly/unit-scout/internal/systemctl"
	"github.com/trly/unit-scout/internal/unitfile"
	"github.com/trly/unit-scout/internal/validate"
)

type contextKey string

const appContextKey contextKey = "unit-scout-app"

// App holds the application dependencies for the command line interface.
type App struct {
	Logger         log.Logger
	Config         *config.Settings
	ConfigProvider config.Provider
	Validator      SystemValidator
	Runner         execx.Runner
	Source         resolver.Source
	Inspector      *unitfile.Inspector
}

// NewApp creates a new App with all dependencies initialized. The
// listing source is picked per configuration: systemctl by default,
// D-Bus when useDBus is set.
func NewApp(logger log.Logger, configProv config.Provider) *App {
	cfg := configProv.GetConfig()
	runner := execx.NewRealRunner()

	var source resolver.Source
	if cfg.UseDBus {
		source = dbusquery.NewSource(dbusquery.NewConnectionFactory(logger), cfg.UserMode)
	} else {
		source = systemctl.NewSource(logger, runner, cfg.SystemctlPath, cfg.UserMode)
	}

	return &App{
		Logger:         logger,
		Config:         cfg,
		ConfigProvider: configProv,
		Validator:      validate.NewValidator(logger, runner, cfg.SystemctlPath),
		Runner:         runner,
		Source:         source,
		Inspector:      unitfile.NewInspector(logger, runner, cfg.SystemctlPath, cfg.UserMode),
	}
}

// queryContext returns a context bounded by the configured command
// timeout for one listing or property query.
func (a *App) queryContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.Config.CommandTimeout)
}

// snapshot captures a fresh view of both listings. Snapshots are taken
// per invocation and never cached.
func (a *App) snapshot(ctx context.Context) (resolver.Snapshot, error) {
	return resolver.Take(ctx, a.Source)
}
