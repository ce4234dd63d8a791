/*
Copyright © 2025 Travis Lyons travis.lyons@gmail.com

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trly/unit-scout/internal/resolver"
)

// AvailableCommand represents the available command.
type AvailableCommand struct{}

// GetCobraCommand returns the cobra command for availability checks.
// The exit code mirrors the verdict: zero when the unit is available.
func (c *AvailableCommand) GetCobraCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "available <unit>",
		Short: "Checks whether a unit is known to the service manager",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			name := args[0]

			ctx, cancel := app.queryContext()
			defer cancel()

			snap, err := app.snapshot(ctx)
			if err != nil {
				return err
			}

			if !snap.Available(name) {
				return fmt.Errorf("unit %s is not available", resolver.Canonicalize(name))
			}

			cmd.Printf("%s is available%s\n", resolver.Canonicalize(name), resolutionDetail(snap, name))
			return nil
		},
	}
}

// resolutionDetail explains a template fallback when the exact name was
// never listed but its template definition was.
func resolutionDetail(snap resolver.Snapshot, name string) string {
	canonical := resolver.Canonicalize(name)
	if snap.Loaded(canonical) || snap.HasUnitFile(canonical) {
		return ""
	}
	if prefix, ok := resolver.TemplatePrefix(canonical); ok {
		return fmt.Sprintf(" (via template %s)", prefix)
	}
	return ""
}
