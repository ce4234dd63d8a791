package systemctl

import (
	"fmt"
	"strings"
)

// CommandError represents a failed systemctl invocation. The captured
// output is kept so callers can report what systemctl said; a fetch
// failure is never degraded to an empty listing.
type CommandError struct {
	Path   string   // The systemctl binary that was run
	Args   []string // The full argument list
	Output []byte   // Whatever output the command produced
	Cause  error    // The underlying error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf("systemctl command failed: %s %s: %v", e.Path, strings.Join(e.Args, " "), e.Cause)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *CommandError) Unwrap() error {
	return e.Cause
}

// NewCommandError creates a new CommandError.
func NewCommandError(path string, args []string, output []byte, cause error) *CommandError {
	return &CommandError{
		Path:   path,
		Args:   args,
		Output: output,
		Cause:  cause,
	}
}

// IsCommandError checks if an error is a CommandError.
func IsCommandError(err error) bool {
	_, ok := err.(*CommandError)
	return ok
}
