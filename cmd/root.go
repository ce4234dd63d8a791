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
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/trly/unit-scout/internal/config"
	"github.com/trly/unit-scout/internal/log"
)

// RootCommand represents the root command for the unit-scout CLI.
type RootCommand struct{}

var (
	userMode       bool
	verbose        bool
	useDBus        bool
	configFilePath string
	systemctlPath  string
)

// GetCobraCommand returns the cobra root command for the unit-scout CLI.
func (c *RootCommand) GetCobraCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "unit-scout",
		Short: "Unit-Scout resolves systemd service unit availability.",
		Long: `Unit-Scout reconciles the service manager's loaded-units and unit-files
listings into one registry and answers availability queries, including
template-aware matching for parameterized units such as dhcpcd@eth0.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if configFilePath != "" {
				config.SetConfigFilePath(configFilePath)
			}
			cfg := config.InitConfig()
			log.Init(verbose)
			logger := log.GetLogger()

			if verbose {
				fmt.Printf("%s using config: %s\n\n", cmd.Root().Use, viper.GetViper().ConfigFileUsed())
				cfg.Verbose = verbose
			}

			if userMode {
				cfg.UserMode = userMode
			}

			if useDBus {
				cfg.UseDBus = useDBus
			}

			if systemctlPath != "" {
				cfg.SystemctlPath = systemctlPath
			}

			app := NewApp(logger, config.NewStaticProvider(cfg))

			// D-Bus mode does not need the systemctl binary at all.
			if !cfg.UseDBus {
				if err := app.Validator.SystemRequirements(); err != nil {
					logger.Error("System requirements not met", "err", err)
				}
			}

			cmd.SetContext(context.WithValue(cmd.Context(), appContextKey, app))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&userMode, "user", "u", false, "Query the per-user service manager")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&useDBus, "dbus", false, "Capture listings over D-Bus instead of running systemctl")
	rootCmd.PersistentFlags().StringVar(&configFilePath, "config", "", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&systemctlPath, "systemctl-path", "", "Path to the systemctl binary")

	rootCmd.AddCommand(
		(&ListCommand{}).GetCobraCommand(),
		(&AvailableCommand{}).GetCobraCommand(),
		(&MissingCommand{}).GetCobraCommand(),
		(&ShowCommand{}).GetCobraCommand(),
		(&ConfigCommand{}).GetCobraCommand(),
		(&VersionCommand{}).GetCobraCommand(),
	)

	return rootCmd
}

// getApp retrieves the App from the command context.
func getApp(cmd *cobra.Command) *App {
	app, _ := cmd.Context().Value(appContextKey).(*App)
	return app
}
