package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare name gets service suffix", "sshd", "sshd.service"},
		{"service name unchanged", "sshd.service", "sshd.service"},
		{"socket unchanged", "docker.socket", "docker.socket"},
		{"timer unchanged", "logrotate.timer", "logrotate.timer"},
		{"slice unchanged", "system.slice", "system.slice"},
		{"template prefix gets suffix", "dhcpcd@", "dhcpcd@.service"},
		{"template instance gets suffix", "dhcpcd@eth0", "dhcpcd@eth0.service"},
		{"canonical template unchanged", "dhcpcd@.service", "dhcpcd@.service"},
		{"unrecognized extension gets suffix", "foo.custom", "foo.custom.service"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Canonicalize(tt.input))
		})
	}
}

func TestTemplatePrefix(t *testing.T) {
	t.Run("instance yields template", func(t *testing.T) {
		prefix, ok := TemplatePrefix("dhcpcd@eth0.service")
		assert.True(t, ok)
		assert.Equal(t, "dhcpcd@.service", prefix)
	})

	t.Run("first at sign wins", func(t *testing.T) {
		prefix, ok := TemplatePrefix("a@b@c.service")
		assert.True(t, ok)
		assert.Equal(t, "a@.service", prefix)
	})

	t.Run("non-service extension is kept", func(t *testing.T) {
		prefix, ok := TemplatePrefix("getty@tty1.timer")
		assert.True(t, ok)
		assert.Equal(t, "getty@.timer", prefix)
	})

	t.Run("plain name has no template", func(t *testing.T) {
		_, ok := TemplatePrefix("sshd.service")
		assert.False(t, ok)
	})
}
