// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yourbase/iniutil/profile"
)

// newRootCmd builds the command tree. Configuration is resolved once the
// arguments are parsed, before any subcommand runs.
func newRootCmd(app *App) *cobra.Command {
	v := viper.New()
	var configFile string

	root := &cobra.Command{
		Use:   "iniutil",
		Short: "Read and write values in INI files",
		Long: `iniutil reads and writes values in INI files through the profile string
routines: sections are [Name] headers, keys are the text before the first '='
on a line, and names are matched case-insensitively.

Section names cannot contain ']' and keys cannot contain '='.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			if err := loadConfig(v, configFile, app.ConfigDir); err != nil {
				return err
			}
			if app.ConfigureLog != nil {
				app.ConfigureLog(v.GetBool(cfgKeyVerbose))
			}
			switch output := v.GetString(cfgKeyOutput); output {
			case outputText, outputJSON, outputYAML:
				app.Output = output
			default:
				return fmt.Errorf("unknown output format %q (want %s, %s, or %s)", output, outputText, outputJSON, outputYAML)
			}
			if app.Profile == nil {
				native, err := profile.NewNative(v.GetString(cfgKeyBackend))
				if err != nil {
					return err
				}
				app.Profile = profile.New(native, nil)
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default: $XDG_CONFIG_HOME/iniutil/config.yaml)")
	flags.StringP(cfgKeyOutput, "o", outputText, "output format: text, json, or yaml")
	flags.String(cfgKeyBackend, profile.BackendAuto, "profile routines to use: auto, system, or file")
	flags.Bool(cfgKeyVerbose, false, "log each native call to stderr")

	root.SetOut(app.Out)
	root.SetErr(app.Err)
	root.SetIn(app.In)

	root.AddCommand(
		newGetCmd(app),
		newSectionsCmd(app),
		newKeysCmd(app),
		newDumpCmd(app),
		newSetCmd(app),
		newRemoveKeyCmd(app),
		newRemoveSectionCmd(app),
		newVersionCmd(app),
	)
	return root
}
