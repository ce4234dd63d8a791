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
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/trly/unit-scout/internal/resolver"
	"github.com/trly/unit-scout/internal/unitfile"
)

// ShowCommand represents the show command.
type ShowCommand struct{}

// GetCobraCommand returns the cobra command for showing unit details:
// availability, how the name resolved, active state, and the parsed
// on-disk definition when one exists.
func (c *ShowCommand) GetCobraCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <unit>",
		Short: "Shows availability and definition details for a unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			name := resolver.Canonicalize(args[0])
			caser := cases.Title(language.English)

			ctx, cancel := app.queryContext()
			defer cancel()

			snap, err := app.snapshot(ctx)
			if err != nil {
				return err
			}

			cmd.Printf("Unit: %s\n", name)

			if snap.Missing(name) {
				cmd.Println("Availability: Missing")
				return nil
			}

			cmd.Printf("Availability: Available%s\n", resolutionDetail(snap, name))

			// Origin only makes sense for names the listings actually
			// contain; a template-fallback match has none of its own.
			if snap.Loaded(name) || snap.HasUnitFile(name) {
				cmd.Printf("Origin: %s\n", caser.String(origin(snap, name)))
			}

			state, err := app.Inspector.ActiveState(ctx, name)
			if err != nil {
				app.Logger.Debug("Active state unavailable", "unit", name, "err", err)
			} else if state != "" {
				cmd.Printf("Active State: %s\n", caser.String(state))
			}

			fragment, err := app.Inspector.FragmentPath(ctx, name)
			if err != nil {
				app.Logger.Debug("Fragment path unavailable", "unit", name, "err", err)
				return nil
			}
			if fragment == "" {
				cmd.Println("Fragment: none (runtime-only or templated instance)")
				return nil
			}

			cmd.Printf("Fragment: %s\n", fragment)

			data, err := os.ReadFile(fragment)
			if err != nil {
				app.Logger.Warn("Could not read unit file", "path", fragment, "err", err)
				return nil
			}

			file, err := unitfile.Parse(fragment, data)
			if err != nil {
				app.Logger.Warn("Could not parse unit file", "path", fragment, "err", err)
				return nil
			}

			if desc := file.Description(); desc != "" {
				cmd.Printf("Description: %s\n", desc)
			}
			for _, section := range file.Sections() {
				cmd.Printf("Section: [%s] (%d keys)\n", section, len(file.Keys(section)))
			}

			return nil
		},
	}
}
