package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleListUnits = `  proc-sys-fs-binfmt_misc.automount                  loaded active waiting   Arbitrary Executable File Formats File System Automount Point
  sshd.service                                       loaded active running   OpenSSH server daemon
  dbus.service                                       loaded active running   D-Bus System Message Bus
● crond.service                                      loaded failed failed    Command Scheduler
  dhcpcd@eth0.service                                loaded active running   dhcpcd on eth0
  system.slice                                       loaded active active    System Slice

LOAD   = Reflects whether the unit definition was properly loaded.
ACTIVE = The high-level unit activation state, i.e. generalization of SUB.

6 loaded units listed.`

const sampleListUnitFiles = `sshd.service                               enabled         enabled
dbus.service                               static          -
dhcpcd@.service                            enabled         enabled
getty@.service                             enabled         enabled
nginx.service                              disabled        disabled

5 unit files listed.`

func TestParseLoadedUnits(t *testing.T) {
	t.Run("extracts unit names from matching lines", func(t *testing.T) {
		names := ParseLoadedUnits(sampleListUnits)
		assert.Equal(t, []string{
			"proc-sys-fs-binfmt_misc.automount",
			"sshd.service",
			"dbus.service",
			"crond.service",
			"dhcpcd@eth0.service",
			"system.slice",
		}, names)
	})

	t.Run("skips legend and summary lines", func(t *testing.T) {
		names := ParseLoadedUnits(sampleListUnits)
		for _, name := range names {
			assert.NotContains(t, name, "LOAD")
			assert.NotContains(t, name, "listed")
		}
	})

	t.Run("empty input yields empty set", func(t *testing.T) {
		assert.Empty(t, ParseLoadedUnits(""))
	})

	t.Run("malformed input degrades without error", func(t *testing.T) {
		names := ParseLoadedUnits("garbage\n\n   \nnot a unit line at all")
		assert.Empty(t, names)
	})

	t.Run("failed unit marked with bullet is still extracted", func(t *testing.T) {
		names := ParseLoadedUnits("● crond.service loaded failed failed Command Scheduler")
		assert.Equal(t, []string{"crond.service"}, names)
	})
}

func TestParseUnitFiles(t *testing.T) {
	t.Run("extracts unit file names", func(t *testing.T) {
		names := ParseUnitFiles(sampleListUnitFiles)
		assert.Equal(t, []string{
			"sshd.service",
			"dbus.service",
			"dhcpcd@.service",
			"getty@.service",
			"nginx.service",
		}, names)
	})

	t.Run("empty input yields empty set", func(t *testing.T) {
		assert.Empty(t, ParseUnitFiles(""))
	})

	t.Run("summary line is skipped", func(t *testing.T) {
		names := ParseUnitFiles("3 unit files listed.")
		assert.Empty(t, names)
	})
}

func TestSnapshotAll(t *testing.T) {
	t.Run("union is sorted and deduplicated", func(t *testing.T) {
		s := NewSnapshot(
			"foo.service loaded active running\nshared.service loaded active running",
			"bar.service enabled\nshared.service enabled",
		)
		assert.Equal(t, []string{"bar.service", "foo.service", "shared.service"}, s.All())
	})

	t.Run("idempotent for fixed input", func(t *testing.T) {
		s := NewSnapshot(sampleListUnits, sampleListUnitFiles)
		assert.Equal(t, s.All(), s.All())
	})

	t.Run("empty listings yield empty union", func(t *testing.T) {
		s := NewSnapshot("", "")
		assert.Empty(t, s.All())
	})

	t.Run("loaded and unit file sources both contribute", func(t *testing.T) {
		s := NewSnapshot(
			"foo.service loaded active running",
			"bar.service enabled",
		)
		assert.Equal(t, []string{"bar.service", "foo.service"}, s.All())
	})
}

func TestSnapshotAvailable(t *testing.T) {
	s := NewSnapshot(sampleListUnits, sampleListUnitFiles)

	t.Run("bare name canonicalized to .service", func(t *testing.T) {
		assert.True(t, s.Available("sshd"))
	})

	t.Run("exact canonical name", func(t *testing.T) {
		assert.True(t, s.Available("sshd.service"))
	})

	t.Run("unit file only", func(t *testing.T) {
		assert.True(t, s.Available("nginx"))
	})

	t.Run("loaded only", func(t *testing.T) {
		assert.True(t, s.Available("crond"))
	})

	t.Run("template instance never listed falls back to template", func(t *testing.T) {
		assert.True(t, s.Available("getty@tty1"))
	})

	t.Run("template name matches exactly without fallback", func(t *testing.T) {
		assert.True(t, s.Available("dhcpcd@"))
	})

	t.Run("instantiated template instance matches exactly", func(t *testing.T) {
		assert.True(t, s.Available("dhcpcd@eth0"))
	})

	t.Run("unknown unit", func(t *testing.T) {
		assert.False(t, s.Available("postfix"))
	})

	t.Run("unknown template", func(t *testing.T) {
		assert.False(t, s.Available("openvpn@client"))
	})

	t.Run("non-service extension passes through", func(t *testing.T) {
		assert.True(t, s.Available("system.slice"))
		assert.False(t, s.Available("system"))
	})

	t.Run("comparison is case sensitive", func(t *testing.T) {
		assert.False(t, s.Available("SSHD"))
	})

	t.Run("empty registry knows nothing", func(t *testing.T) {
		empty := NewSnapshot("", "")
		assert.False(t, empty.Available("anything"))
	})
}

func TestSnapshotMissing(t *testing.T) {
	s := NewSnapshot(sampleListUnits, sampleListUnitFiles)

	t.Run("negation of available for every name", func(t *testing.T) {
		for _, name := range []string{
			"sshd", "sshd.service", "getty@tty1", "dhcpcd@eth0",
			"postfix", "openvpn@client", "system.slice", "anything",
		} {
			assert.Equal(t, !s.Available(name), s.Missing(name), "name %q", name)
		}
	})

	t.Run("everything missing on empty registry", func(t *testing.T) {
		empty := NewSnapshot("", "")
		assert.True(t, empty.Missing("anything"))
	})
}

func TestSnapshotOrigins(t *testing.T) {
	s := NewSnapshot(
		"foo.service loaded active running\nshared.service loaded active running",
		"bar.service enabled\nshared.service enabled",
	)

	assert.True(t, s.Loaded("foo"))
	assert.False(t, s.HasUnitFile("foo"))
	assert.True(t, s.HasUnitFile("bar"))
	assert.False(t, s.Loaded("bar"))
	assert.True(t, s.Loaded("shared"))
	assert.True(t, s.HasUnitFile("shared"))
}

type stubSource struct {
	units     string
	unitFiles string
	unitsErr  error
	filesErr  error
}

func (s *stubSource) ListUnits(_ context.Context) (string, error) {
	return s.units, s.unitsErr
}

func (s *stubSource) ListUnitFiles(_ context.Context) (string, error) {
	return s.unitFiles, s.filesErr
}

func TestTake(t *testing.T) {
	ctx := context.Background()

	t.Run("builds snapshot from source", func(t *testing.T) {
		src := &stubSource{
			units:     "sshd.service loaded active running",
			unitFiles: "dhcpcd@.service enabled",
		}
		snap, err := Take(ctx, src)
		require.NoError(t, err)
		assert.Equal(t, []string{"dhcpcd@.service", "sshd.service"}, snap.All())
	})

	t.Run("propagates list-units failure", func(t *testing.T) {
		src := &stubSource{unitsErr: errors.New("systemctl exited 1")}
		_, err := Take(ctx, src)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing loaded units")
	})

	t.Run("propagates list-unit-files failure", func(t *testing.T) {
		src := &stubSource{filesErr: errors.New("bus unavailable")}
		_, err := Take(ctx, src)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing unit files")
	})
}
