package resolver

import "strings"

// unitExtensions lists the unit types systemd recognizes. A name ending
// in one of these is already canonical.
var unitExtensions = []string{
	".service",
	".socket",
	".device",
	".mount",
	".automount",
	".swap",
	".target",
	".path",
	".timer",
	".slice",
	".scope",
}

// Canonicalize normalizes a raw unit name to the form stored in the
// registry: a name without a recognized extension gets ".service"
// appended. Applied before every set insertion and lookup so both sides
// of a comparison agree. Comparison stays case-sensitive throughout.
func Canonicalize(name string) string {
	if name == "" {
		return name
	}
	for _, ext := range unitExtensions {
		if strings.HasSuffix(name, ext) {
			return name
		}
	}
	return name + ".service"
}

// TemplatePrefix derives the template unit name for a templated instance.
// For "dhcpcd@eth0.service" it returns "dhcpcd@.service". Only the first
// '@' delimits the template; later ones belong to the instance. The
// second return is false for non-templated names.
func TemplatePrefix(canonical string) (string, bool) {
	i := strings.Index(canonical, "@")
	if i < 0 {
		return "", false
	}
	return canonical[:i+1] + extension(canonical), true
}

// extension returns the unit-type extension of a canonical name.
func extension(canonical string) string {
	for _, ext := range unitExtensions {
		if strings.HasSuffix(canonical, ext) {
			return ext
		}
	}
	return ".service"
}
