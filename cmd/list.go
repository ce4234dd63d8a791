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
	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/trly/unit-scout/internal/resolver"
)

// ListCommand represents the list command.
type ListCommand struct{}

// GetCobraCommand returns the cobra command for listing known units.
func (c *ListCommand) GetCobraCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists every unit known to the service manager",
		Long:  "Lists the union of loaded units and installed unit files, sorted, with the origin of each name.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := getApp(cmd)

			ctx, cancel := app.queryContext()
			defer cancel()

			snap, err := app.snapshot(ctx)
			if err != nil {
				return err
			}

			headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
			columnFmt := color.New(color.FgYellow).SprintfFunc()
			tbl := table.New("Unit", "Origin")
			tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt).WithWriter(cmd.OutOrStdout())

			for _, name := range snap.All() {
				tbl.AddRow(name, origin(snap, name))
			}
			tbl.Print()

			return nil
		},
	}
}

func origin(snap resolver.Snapshot, name string) string {
	switch {
	case snap.Loaded(name) && snap.HasUnitFile(name):
		return "loaded + unit-file"
	case snap.Loaded(name):
		return "loaded"
	default:
		return "unit-file"
	}
}
