// Package systemctl captures unit listings by running the systemctl
// command line.
package systemctl

import (
	"context"

	"github.com/trly/unit-scout/internal/execx"
	"github.com/trly/unit-scout/internal/log"
)

// Source implements resolver.Source by shelling out to systemctl. Every
// call runs a fresh command; nothing is cached between calls, listings
// must reflect current service state.
type Source struct {
	logger   log.Logger
	runner   execx.Runner
	path     string
	userMode bool
}

// NewSource creates a systemctl-backed listing source. path is the
// systemctl binary to run; userMode targets the per-user service
// manager instead of the system one.
func NewSource(logger log.Logger, runner execx.Runner, path string, userMode bool) *Source {
	return &Source{
		logger:   logger,
		runner:   runner,
		path:     path,
		userMode: userMode,
	}
}

// ListUnits returns the raw loaded-units listing.
func (s *Source) ListUnits(ctx context.Context) (string, error) {
	return s.capture(ctx, "list-units")
}

// ListUnitFiles returns the raw unit-files listing.
func (s *Source) ListUnitFiles(ctx context.Context) (string, error) {
	return s.capture(ctx, "list-unit-files")
}

func (s *Source) capture(ctx context.Context, subcommand string) (string, error) {
	args := s.Args(subcommand)

	s.logger.Debug("Capturing systemctl listing", "subcommand", subcommand, "userMode", s.userMode)

	output, err := s.runner.Output(ctx, s.path, args...)
	if err != nil {
		return "", NewCommandError(s.path, args, output, err)
	}
	return string(output), nil
}

// Args returns the full argument list for a listing subcommand. The
// legend and pager are suppressed and names are never truncated so the
// output parses cleanly.
func (s *Source) Args(subcommand string) []string {
	args := []string{"--full", "--no-legend", "--no-pager"}
	if s.userMode {
		args = append(args, "--user")
	}
	return append(args, subcommand)
}
