// Package dbusquery captures unit listings over the systemd D-Bus API.
// The listings are rendered into the same line format systemctl prints
// so one parser serves both sources.
package dbusquery

import (
	"context"

	"github.com/coreos/go-systemd/v22/dbus"

	"github.com/trly/unit-scout/internal/log"
)

// Connection wraps the systemd D-Bus enumeration calls for testability.
type Connection interface {
	// ListUnits enumerates the units currently loaded by the manager.
	ListUnits(ctx context.Context) ([]dbus.UnitStatus, error)

	// ListUnitFiles enumerates the unit files installed on disk.
	ListUnitFiles(ctx context.Context) ([]dbus.UnitFile, error)

	// Close closes the connection.
	Close() error
}

// ConnectionFactory creates Connection instances.
type ConnectionFactory interface {
	// NewConnection creates a new systemd connection based on configuration.
	NewConnection(ctx context.Context, userMode bool) (Connection, error)
}

// DBusConnection implements Connection wrapping systemd D-Bus operations.
type DBusConnection struct {
	conn *dbus.Conn
}

// NewDBusConnection creates a new D-Bus connection wrapper.
func NewDBusConnection(conn *dbus.Conn) *DBusConnection {
	return &DBusConnection{conn: conn}
}

// ListUnits enumerates the units currently loaded by the manager.
func (d *DBusConnection) ListUnits(ctx context.Context) ([]dbus.UnitStatus, error) {
	return d.conn.ListUnitsContext(ctx)
}

// ListUnitFiles enumerates the unit files installed on disk.
func (d *DBusConnection) ListUnitFiles(ctx context.Context) ([]dbus.UnitFile, error) {
	return d.conn.ListUnitFilesContext(ctx)
}

// Close closes the D-Bus connection.
func (d *DBusConnection) Close() error {
	d.conn.Close()
	return nil
}

// DefaultConnectionFactory implements ConnectionFactory.
type DefaultConnectionFactory struct {
	logger log.Logger
}

// NewConnectionFactory creates a new connection factory with injected logger.
func NewConnectionFactory(logger log.Logger) *DefaultConnectionFactory {
	return &DefaultConnectionFactory{
		logger: logger,
	}
}

// NewConnection creates a new systemd connection based on configuration.
func (f *DefaultConnectionFactory) NewConnection(ctx context.Context, userMode bool) (Connection, error) {
	var conn *dbus.Conn
	var err error

	if userMode {
		f.logger.Debug("Establishing user connection to systemd")
		conn, err = dbus.NewUserConnectionContext(ctx)
	} else {
		f.logger.Debug("Establishing system connection to systemd")
		conn, err = dbus.NewSystemConnectionContext(ctx)
	}

	if err != nil {
		return nil, NewConnectionError(userMode, err)
	}

	return NewDBusConnection(conn), nil
}
