// Package resolver reconciles systemd unit listings into a canonical
// registry and answers availability queries, including template-aware
// matching for parameterized units such as dhcpcd@eth0.
package resolver

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Source supplies raw service-manager listings. Implementations capture
// the output of "list-units" and "list-unit-files" style enumerations,
// either by running systemctl or by querying the D-Bus API directly.
type Source interface {
	// ListUnits returns the raw loaded-units listing.
	ListUnits(ctx context.Context) (string, error)

	// ListUnitFiles returns the raw unit-files listing.
	ListUnitFiles(ctx context.Context) (string, error)
}

// Snapshot holds both listings captured at one moment. All queries on a
// Snapshot see the same data; callers needing a consistent view across
// several queries reuse one Snapshot instead of re-fetching. Snapshots
// are never cached by this package, service state can change between
// invocations.
type Snapshot struct {
	loadedUnits map[string]struct{}
	unitFiles   map[string]struct{}
}

// NewSnapshot parses the two raw listings into a Snapshot.
func NewSnapshot(listUnits, listUnitFiles string) Snapshot {
	s := Snapshot{
		loadedUnits: make(map[string]struct{}),
		unitFiles:   make(map[string]struct{}),
	}
	for _, name := range ParseLoadedUnits(listUnits) {
		s.loadedUnits[Canonicalize(name)] = struct{}{}
	}
	for _, name := range ParseUnitFiles(listUnitFiles) {
		s.unitFiles[Canonicalize(name)] = struct{}{}
	}
	return s
}

// Take captures a fresh Snapshot from the given source. Fetch failures
// propagate to the caller; they are never degraded to an empty registry.
func Take(ctx context.Context, src Source) (Snapshot, error) {
	units, err := src.ListUnits(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("listing loaded units: %w", err)
	}

	files, err := src.ListUnitFiles(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("listing unit files: %w", err)
	}

	return NewSnapshot(units, files), nil
}

// ParseLoadedUnits extracts unit names from a "list-units" style text
// block. A relevant line reads "<unit> loaded <active-state> ...";
// headers, blanks, and summary lines fall through silently. Malformed
// input degrades to a partial or empty result, never an error.
func ParseLoadedUnits(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)

		// systemctl marks failed units with a leading bullet.
		if len(fields) > 0 && (fields[0] == "●" || fields[0] == "*") {
			fields = fields[1:]
		}

		if len(fields) < 3 || fields[1] != "loaded" {
			continue
		}
		if !isUnitName(fields[0]) {
			continue
		}
		names = append(names, fields[0])
	}
	return names
}

// ParseUnitFiles extracts unit file names from a "list-unit-files" style
// text block. A relevant line reads "<unit> <state> ..."; the same
// tolerant skip policy as ParseLoadedUnits applies.
func ParseUnitFiles(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if !isUnitName(fields[0]) {
			continue
		}
		names = append(names, fields[0])
	}
	return names
}

// isUnitName reports whether a token looks like a unit name. Unit names
// always carry a type extension, which is what separates them from
// header tokens and summary counts.
func isUnitName(token string) bool {
	return strings.Contains(token, ".")
}

// All returns the union of loaded units and unit files, sorted and
// deduplicated. It is recomputed from the two sets on every call.
func (s Snapshot) All() []string {
	union := make(map[string]struct{}, len(s.loadedUnits)+len(s.unitFiles))
	for name := range s.loadedUnits {
		union[name] = struct{}{}
	}
	for name := range s.unitFiles {
		union[name] = struct{}{}
	}

	names := make([]string, 0, len(union))
	for name := range union {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Available reports whether the named unit exists in the registry. The
// name is canonicalized first; an exact match wins. A templated instance
// (foo@bar) that never appears literally is still available when its
// template definition (foo@.service) is known, an instance may simply
// not have been instantiated yet.
func (s Snapshot) Available(name string) bool {
	canonical := Canonicalize(name)
	if s.contains(canonical) {
		return true
	}
	if prefix, ok := TemplatePrefix(canonical); ok {
		return s.contains(prefix)
	}
	return false
}

// Missing reports whether the named unit is absent. Defined strictly as
// the negation of Available so the two predicates can never disagree on
// templated names.
func (s Snapshot) Missing(name string) bool {
	return !s.Available(name)
}

// Loaded reports whether the canonicalized name appears in the
// loaded-units listing. Exact match only, no template fallback.
func (s Snapshot) Loaded(name string) bool {
	_, ok := s.loadedUnits[Canonicalize(name)]
	return ok
}

// HasUnitFile reports whether the canonicalized name appears in the
// unit-files listing. Exact match only, no template fallback.
func (s Snapshot) HasUnitFile(name string) bool {
	_, ok := s.unitFiles[Canonicalize(name)]
	return ok
}

func (s Snapshot) contains(canonical string) bool {
	if _, ok := s.loadedUnits[canonical]; ok {
		return true
	}
	_, ok := s.unitFiles[canonical]
	return ok
}
