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

// MissingCommand represents the missing command.
type MissingCommand struct{}

// GetCobraCommand returns the cobra command for the inverse
// availability check. Exit code zero means the unit is missing.
func (c *MissingCommand) GetCobraCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "missing <unit>",
		Short: "Checks whether a unit is absent from the service manager",
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

			if !snap.Missing(name) {
				return fmt.Errorf("unit %s is present", resolver.Canonicalize(name))
			}

			cmd.Printf("%s is missing\n", resolver.Canonicalize(name))
			return nil
		},
	}
}
