package dbusquery

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Source implements resolver.Source over the systemd D-Bus API. A fresh
// connection is made per listing and closed immediately; no state
// survives between calls.
type Source struct {
	factory  ConnectionFactory
	userMode bool
}

// NewSource creates a D-Bus-backed listing source.
func NewSource(factory ConnectionFactory, userMode bool) *Source {
	return &Source{
		factory:  factory,
		userMode: userMode,
	}
}

// ListUnits returns the loaded-units listing rendered as
// "<unit> <load-state> <active-state> <sub-state>" lines.
func (s *Source) ListUnits(ctx context.Context) (string, error) {
	conn, err := s.factory.NewConnection(ctx, s.userMode)
	if err != nil {
		return "", err
	}
	defer func() { _ = conn.Close() }()

	units, err := conn.ListUnits(ctx)
	if err != nil {
		return "", fmt.Errorf("listing units over D-Bus: %w", err)
	}

	var b strings.Builder
	for _, unit := range units {
		fmt.Fprintf(&b, "%s %s %s %s\n", unit.Name, unit.LoadState, unit.ActiveState, unit.SubState)
	}
	return b.String(), nil
}

// ListUnitFiles returns the unit-files listing rendered as
// "<unit> <state>" lines. The manager reports full fragment paths; only
// the unit name takes part in resolution.
func (s *Source) ListUnitFiles(ctx context.Context) (string, error) {
	conn, err := s.factory.NewConnection(ctx, s.userMode)
	if err != nil {
		return "", err
	}
	defer func() { _ = conn.Close() }()

	files, err := conn.ListUnitFiles(ctx)
	if err != nil {
		return "", fmt.Errorf("listing unit files over D-Bus: %w", err)
	}

	var b strings.Builder
	for _, file := range files {
		fmt.Fprintf(&b, "%s %s\n", filepath.Base(file.Path), file.Type)
	}
	return b.String(), nil
}
