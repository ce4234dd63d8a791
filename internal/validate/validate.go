// Package validate provides functions to validate various aspects of the application.
package validate

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/trly/unit-scout/internal/execx"
	"github.com/trly/unit-scout/internal/log"
)

// Validator provides system requirements validation with dependency injection.
type Validator struct {
	logger        log.Logger
	runner        execx.Runner
	systemctlPath string
	osGetter      func() string // For testing, defaults to runtime.GOOS
}

// NewValidator creates a new Validator with the provided logger and command runner.
func NewValidator(logger log.Logger, runner execx.Runner, systemctlPath string) *Validator {
	return &Validator{
		logger:        logger,
		runner:        runner,
		systemctlPath: systemctlPath,
		osGetter:      func() string { return runtime.GOOS },
	}
}

// WithOSGetter sets a custom OS getter for testing.
func (v *Validator) WithOSGetter(osGetter func() string) *Validator {
	v.osGetter = osGetter
	return v
}

// NewValidatorWithDefaults creates a new Validator with default dependencies.
func NewValidatorWithDefaults(logger log.Logger, systemctlPath string) *Validator {
	return NewValidator(logger, execx.NewRealRunner(), systemctlPath)
}

// SystemRequirements checks that a usable service manager is present.
func (v *Validator) SystemRequirements() error {
	ctx := context.Background()
	goos := v.osGetter()

	if goos != "linux" {
		return fmt.Errorf("unsupported platform: %s (unit-scout requires Linux with systemd)", goos)
	}

	v.logger.Debug("Validating systemd availability")

	version, err := v.runner.CombinedOutput(ctx, v.systemctlPath, "--version")
	if err != nil {
		return fmt.Errorf("systemd not found: %w", err)
	}

	if !strings.Contains(string(version), "systemd") {
		return fmt.Errorf("systemd not properly installed")
	}

	return nil
}
