// Package unitfile inspects on-disk systemd unit definitions.
package unitfile

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/trly/unit-scout/internal/execx"
	"github.com/trly/unit-scout/internal/log"
)

// File is a parsed unit definition.
type File struct {
	Path string
	file *ini.File
}

// Parse reads a unit definition from raw bytes. Unit files repeat keys
// (ExecStartPre, Environment) so shadow values are allowed.
func Parse(path string, data []byte) (*File, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		AllowShadows:             true,
		AllowNonUniqueSections:   true,
		SpaceBeforeInlineComment: true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("parsing unit file %s: %w", path, err)
	}
	return &File{Path: path, file: f}, nil
}

// Description returns the [Unit] Description value, empty when absent.
func (f *File) Description() string {
	return f.file.Section("Unit").Key("Description").String()
}

// Sections returns the section names present in the file, sorted. The
// unnamed default section is omitted.
func (f *File) Sections() []string {
	var names []string
	for _, section := range f.file.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		names = append(names, section.Name())
	}
	sort.Strings(names)
	return names
}

// Keys returns the key/value pairs of one section. Repeated keys come
// back joined in declaration order.
func (f *File) Keys(section string) map[string]string {
	keys := make(map[string]string)
	sec, err := f.file.GetSection(section)
	if err != nil {
		return keys
	}
	for _, key := range sec.Keys() {
		values := key.ValueWithShadows()
		keys[key.Name()] = strings.Join(values, "\n")
	}
	return keys
}

// Inspector locates and reads unit definitions through systemctl.
type Inspector struct {
	logger   log.Logger
	runner   execx.Runner
	path     string
	userMode bool
}

// NewInspector creates an Inspector running the given systemctl binary.
func NewInspector(logger log.Logger, runner execx.Runner, path string, userMode bool) *Inspector {
	return &Inspector{
		logger:   logger,
		runner:   runner,
		path:     path,
		userMode: userMode,
	}
}

// FragmentPath returns the on-disk path of a unit's definition. An
// empty path is a valid answer: runtime-only and templated instance
// units have no fragment of their own.
func (i *Inspector) FragmentPath(ctx context.Context, unit string) (string, error) {
	return i.property(ctx, unit, "FragmentPath")
}

// ActiveState returns the unit's active state as reported by the
// manager (active, inactive, failed, ...).
func (i *Inspector) ActiveState(ctx context.Context, unit string) (string, error) {
	return i.property(ctx, unit, "ActiveState")
}

func (i *Inspector) property(ctx context.Context, unit, name string) (string, error) {
	args := []string{"show", "-p", name, "--value"}
	if i.userMode {
		args = append([]string{"--user"}, args...)
	}
	args = append(args, unit)

	i.logger.Debug("Reading unit property", "unit", unit, "property", name)

	output, err := i.runner.Output(ctx, i.path, args...)
	if err != nil {
		return "", fmt.Errorf("reading %s of %s: %w", name, unit, err)
	}
	return strings.TrimSpace(string(output)), nil
}
