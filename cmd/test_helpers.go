package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/trly/unit-scout/internal/config"
	"github.com/trly/unit-scout/internal/execx"
	"github.com/trly/unit-scout/internal/log"
	"github.com/trly/unit-scout/internal/resolver"
	"github.com/trly/unit-scout/internal/unitfile"
	"github.com/trly/unit-scout/internal/validate"
)

// newTestApp builds an App wired to the given source and runner,
// bypassing config initialization.
func newTestApp(source resolver.Source, runner execx.Runner) *App {
	logger := log.NewLogger(false)
	cfg := &config.Settings{
		SystemctlPath:  "systemctl",
		CommandTimeout: config.DefaultCommandTimeout,
	}

	return &App{
		Logger:         logger,
		Config:         cfg,
		ConfigProvider: config.NewStaticProvider(cfg),
		Validator:      validate.NewValidator(logger, runner, cfg.SystemctlPath),
		Runner:         runner,
		Source:         source,
		Inspector:      unitfile.NewInspector(logger, runner, cfg.SystemctlPath, false),
	}
}

// executeWithApp runs a cobra command with the test App injected into
// its context and returns everything written to the command's output.
func executeWithApp(t *testing.T, app *App, cobraCmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cobraCmd.SetOut(&buf)
	cobraCmd.SetErr(&buf)
	cobraCmd.SetArgs(args)
	cobraCmd.SilenceUsage = true
	cobraCmd.SilenceErrors = true

	ctx := context.WithValue(context.Background(), appContextKey, app)
	err := cobraCmd.ExecuteContext(ctx)

	return buf.String(), err
}
