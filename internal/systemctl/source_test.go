package systemctl

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trly/unit-scout/internal/log"
	"github.com/trly/unit-scout/internal/resolver"
	"github.com/trly/unit-scout/internal/testutil/fakerunner"
)

func newTestSource(runner *fakerunner.Runner, userMode bool) *Source {
	return NewSource(log.NewLogger(false), runner, "systemctl", userMode)
}

func TestSourceArgs(t *testing.T) {
	t.Run("system mode", func(t *testing.T) {
		src := newTestSource(fakerunner.New(), false)
		assert.Equal(t,
			[]string{"--full", "--no-legend", "--no-pager", "list-units"},
			src.Args("list-units"))
	})

	t.Run("user mode adds --user", func(t *testing.T) {
		src := newTestSource(fakerunner.New(), true)
		assert.Equal(t,
			[]string{"--full", "--no-legend", "--no-pager", "--user", "list-unit-files"},
			src.Args("list-unit-files"))
	})
}

func TestSourceListUnits(t *testing.T) {
	ctx := context.Background()

	t.Run("returns captured output", func(t *testing.T) {
		runner := fakerunner.New()
		runner.SetOutput("systemctl",
			[]string{"--full", "--no-legend", "--no-pager", "list-units"},
			[]byte("sshd.service loaded active running OpenSSH server daemon\n"))

		src := newTestSource(runner, false)
		out, err := src.ListUnits(ctx)
		require.NoError(t, err)
		assert.Contains(t, out, "sshd.service")
	})

	t.Run("wraps failures in CommandError", func(t *testing.T) {
		runner := fakerunner.New()
		runner.SetError("systemctl",
			[]string{"--full", "--no-legend", "--no-pager", "list-units"},
			errors.New("exit status 1"))

		src := newTestSource(runner, false)
		_, err := src.ListUnits(ctx)
		require.Error(t, err)
		assert.True(t, IsCommandError(err))

		var cmdErr *CommandError
		require.ErrorAs(t, err, &cmdErr)
		assert.Equal(t, "systemctl", cmdErr.Path)
		assert.Contains(t, cmdErr.Args, "list-units")
	})
}

func TestSourceListUnitFiles(t *testing.T) {
	ctx := context.Background()

	runner := fakerunner.New()
	runner.SetOutput("systemctl",
		[]string{"--full", "--no-legend", "--no-pager", "list-unit-files"},
		[]byte("dhcpcd@.service enabled enabled\n"))

	src := newTestSource(runner, false)
	out, err := src.ListUnitFiles(ctx)
	require.NoError(t, err)
	assert.Contains(t, out, "dhcpcd@.service")
}

// The source and resolver together: a template instance resolves as
// available through the captured unit-files listing.
func TestSourceFeedsResolver(t *testing.T) {
	ctx := context.Background()

	runner := fakerunner.New()
	runner.SetOutput("systemctl",
		[]string{"--full", "--no-legend", "--no-pager", "list-units"},
		[]byte("sshd.service loaded active running OpenSSH server daemon\n"))
	runner.SetOutput("systemctl",
		[]string{"--full", "--no-legend", "--no-pager", "list-unit-files"},
		[]byte("dhcpcd@.service enabled enabled\n"))

	snap, err := resolver.Take(ctx, newTestSource(runner, false))
	require.NoError(t, err)

	assert.Equal(t, []string{"dhcpcd@.service", "sshd.service"}, snap.All())
	assert.True(t, snap.Available("sshd"))
	assert.True(t, snap.Available("dhcpcd@eth0"))
	assert.True(t, snap.Missing("nginx"))
}
