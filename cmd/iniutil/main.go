// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// iniutil reads and writes values in INI files.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/yourbase/iniutil/profile"
	"golang.org/x/term"
	"zombiezen.com/go/log"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitFileError = 2
)

func main() {
	app := &App{
		Out:         os.Stdout,
		Err:         os.Stderr,
		In:          os.Stdin,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
		ConfigureLog: func(verbose bool) {
			log.SetDefault(newLogger(os.Stderr, verbose))
		},
	}
	root := newRootCmd(app)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "iniutil:", err)
		os.Exit(exitCode(err))
	}
}

// newLogger returns a logger that writes warnings and errors to w, or every
// entry when verbose is set.
func newLogger(w io.Writer, verbose bool) log.Logger {
	level := log.Warn
	if verbose {
		level = log.Debug
	}
	return &log.LevelFilter{
		Min:    level,
		Output: log.New(w, "iniutil: ", log.ShowLevel, nil),
	}
}

func exitCode(err error) int {
	var (
		notFound  *profile.NotFoundError
		nativeErr *profile.NativeError
	)
	switch {
	case err == nil:
		return exitSuccess
	case errors.As(err, &notFound), errors.As(err, &nativeErr):
		return exitFileError
	default:
		return exitUserError
	}
}
