// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"github.com/spf13/cobra"
	"github.com/yourbase/iniutil/profile"
)

func newGetCmd(app *App) *cobra.Command {
	var def string
	cmd := &cobra.Command{
		Use:   "get <path> <section> <key>",
		Short: "Print the value of a key",
		Long: `Print the value of a key.

If the key does not exist, the --default value is printed instead. If there is
no default, or the value is empty, nothing is printed.

Examples:
  iniutil get app.ini Net Host
  iniutil get app.ini Net Port --default 80`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			defArg := profile.None
			if cmd.Flags().Changed("default") {
				defArg = profile.Some(def)
			}
			value, ok, err := app.Profile.Value(cmd.Context(), args[0], args[1], args[2], defArg)
			if err != nil {
				return err
			}
			return app.printValue(value, ok)
		},
	}
	cmd.Flags().StringVarP(&def, "default", "d", "", "value to print if the key does not exist")
	return cmd
}

func newSectionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sections <path>",
		Short: "List the sections in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := app.Profile.Sections(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.printList(names)
		},
	}
}

func newKeysCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "keys <path> <section>",
		Short: "List the keys in a section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := app.Profile.Keys(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return app.printList(keys)
		},
	}
}

func newDumpCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <path>",
		Short: "Print every section, key, and value in a file",
		Long: `Print every section, key, and value in a file.

In text output each entry is a line of tab-separated section, key, and value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Profile.Entries(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.printEntries(entries)
		},
	}
}
