// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yourbase/iniutil/profile"
	"zombiezen.com/go/log"
)

func newSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> <section> <key> <value>",
		Short: "Set the value of a key",
		Long: `Set the value of a key, creating the section and the file if needed.

Examples:
  iniutil set app.ini Net Host example.com
  iniutil set app.ini Paths Root "C:\Program Files\App"`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Profile.SetValue(cmd.Context(), args[0], args[1], args[2], args[3])
		},
	}
}

func newRemoveKeyCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "remove-key <path> <section> <key>",
		Short: "Remove a key from a section",
		Long: `Remove a key from a section.

Unless --force is specified, you will be prompted to confirm the removal.
Removing a key that does not exist is not an error, but the file must exist.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, section, key := args[0], args[1], args[2]
			// Reject bad names before prompting.
			if err := profile.ValidateSection(section); err != nil {
				return err
			}
			if err := profile.ValidateKey(key); err != nil {
				return err
			}
			prompt := fmt.Sprintf("Remove key %q from section %q in %s?", key, section, path)
			if proceed, err := app.confirmUnlessForced(force, prompt); err != nil || !proceed {
				return err
			}
			if err := app.Profile.DeleteKey(cmd.Context(), path, section, key); err != nil {
				return err
			}
			log.Debugf(cmd.Context(), "Removed key %q from section %q in %s", key, section, path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")
	return cmd
}

func newRemoveSectionCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "remove-section <path> <section>",
		Short: "Remove a section and all of its keys",
		Long: `Remove a section and all of its keys.

Unless --force is specified, you will be prompted to confirm the removal.
Removing a section that does not exist is not an error, but the file must exist.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, section := args[0], args[1]
			if err := profile.ValidateSection(section); err != nil {
				return err
			}
			prompt := fmt.Sprintf("Remove section %q and all of its keys from %s?", section, path)
			if proceed, err := app.confirmUnlessForced(force, prompt); err != nil || !proceed {
				return err
			}
			if err := app.Profile.DeleteSection(cmd.Context(), path, section); err != nil {
				return err
			}
			log.Debugf(cmd.Context(), "Removed section %q from %s", section, path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")
	return cmd
}

// confirmUnlessForced prompts for confirmation unless force is set. It prints
// "Cancelled" when the user declines.
func (app *App) confirmUnlessForced(force bool, prompt string) (bool, error) {
	if force {
		return true, nil
	}
	ok, err := app.confirm(prompt)
	if err != nil {
		return false, err
	}
	if !ok {
		fmt.Fprintln(app.Out, "Cancelled")
	}
	return ok, nil
}
