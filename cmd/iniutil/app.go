// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yourbase/iniutil/profile"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// App holds state shared across commands.
type App struct {
	// Profile is the accessor commands operate through. If nil, the root
	// command creates one for the configured backend.
	Profile *profile.Accessor

	Out io.Writer
	Err io.Writer
	In  io.Reader

	// Interactive reports whether In is a terminal that can answer prompts.
	Interactive bool

	// ConfigDir overrides the directory searched for config.yaml.
	ConfigDir string

	// ConfigureLog is called once configuration is loaded. It may be nil.
	ConfigureLog func(verbose bool)

	// Output is the output format, set from configuration.
	Output string
}

var errConfirmationRequired = errors.New("refusing to delete without confirmation when input is not a terminal; pass --force to skip the prompt")

// confirm asks the user a yes/no question. Anything other than "y" or "yes"
// is a no.
func (app *App) confirm(prompt string) (bool, error) {
	if !app.Interactive {
		return false, errConfirmationRequired
	}
	fmt.Fprintf(app.Out, "%s [y/N] ", prompt)
	response, err := bufio.NewReader(app.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// printValue writes a single value. In text mode nothing is written when
// there is no value; structured formats write null.
func (app *App) printValue(value string, ok bool) error {
	var v interface{}
	if ok {
		v = value
	}
	switch app.Output {
	case outputJSON:
		return json.NewEncoder(app.Out).Encode(v)
	case outputYAML:
		return app.encodeYAML(v)
	default:
		if ok {
			_, err := fmt.Fprintln(app.Out, value)
			return err
		}
		return nil
	}
}

// printList writes names one per line, or as a sequence.
func (app *App) printList(names []string) error {
	if names == nil {
		names = []string{}
	}
	switch app.Output {
	case outputJSON:
		return json.NewEncoder(app.Out).Encode(names)
	case outputYAML:
		return app.encodeYAML(names)
	default:
		for _, name := range names {
			if _, err := fmt.Fprintln(app.Out, name); err != nil {
				return err
			}
		}
		return nil
	}
}

// printEntries writes entries as tab-separated lines, or as a sequence of
// records.
func (app *App) printEntries(entries []profile.Entry) error {
	if entries == nil {
		entries = []profile.Entry{}
	}
	switch app.Output {
	case outputJSON:
		return json.NewEncoder(app.Out).Encode(entries)
	case outputYAML:
		return app.encodeYAML(entries)
	default:
		for _, e := range entries {
			if _, err := fmt.Fprintf(app.Out, "%s\t%s\t%s\n", e.Section, e.Key, e.Value); err != nil {
				return err
			}
		}
		return nil
	}
}

func (app *App) encodeYAML(v interface{}) error {
	enc := yaml.NewEncoder(app.Out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
