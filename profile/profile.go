// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package profile reads and writes INI files through the "profile string"
// routines: one call to read a value or enumerate names, and one call to
// write or delete.
//
// The routines fill a caller-supplied buffer of fixed size, so Accessor
// retries with larger buffers until the result is not truncated, then splits
// the NUL-delimited result. Section names and keys are validated before any
// call is made.
package profile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yourbase/iniutil/growbuf"
	"zombiezen.com/go/log"
)

// Native is the pair of platform routines the Accessor is built on. Absent
// arguments must be passed to the platform as NULL.
type Native interface {
	// ReadProfileString copies a value, a list of keys, or a list of section
	// names into buf and returns the number of UTF-16 code units copied, not
	// counting the final terminator. If both section and key are present, the
	// result is the value (or def if the key does not exist), truncated to
	// len(buf)-1 units. Otherwise the result is a list of names, each
	// terminated by NUL, with an extra NUL at the end; a truncated list
	// reports len(buf)-2. The returned code is the platform's last error.
	ReadProfileString(section, key, def Arg, buf []uint16, path string) (n int, errno Errno)

	// WriteProfileString sets key to value in section. An absent value
	// deletes the key, and an absent key deletes the whole section.
	WriteProfileString(section string, key, value Arg, path string) (ok bool, errno Errno)
}

// Options holds optional parameters for New.
type Options struct {
	// InitialSize is the size of the first read buffer in UTF-16 code units.
	// If zero, 2048 is used.
	InitialSize int

	// Growth picks the next buffer size after a truncated read.
	// If nil, buffers grow by 2048 code units per attempt.
	Growth growbuf.Strategy
}

const defaultBufferSize = 2048

// An Accessor performs profile string operations on INI files.
// Accessors hold no per-file state: every call opens, operates on, and
// closes the file.
type Accessor struct {
	native  Native
	initial int
	growth  growbuf.Strategy
}

// New returns an Accessor that calls the given native routines. Nil options
// are treated identically as passing the zero value.
func New(native Native, opts *Options) *Accessor {
	a := &Accessor{
		native:  native,
		initial: defaultBufferSize,
		growth:  growbuf.Linear(defaultBufferSize),
	}
	if opts != nil {
		if opts.InitialSize > 0 {
			a.initial = opts.InitialSize
		}
		if opts.Growth != nil {
			a.growth = opts.Growth
		}
	}
	return a
}

// Query reads from the INI file at path. With section and key absent it
// returns the section names; with only section present it returns the keys
// in that section; with both present it returns a single element holding the
// value, or def if the key does not exist. A nil result means the native
// layer had nothing to return.
//
// Query returns a *NotFoundError if the file does not exist and a
// *NativeError for any platform error other than "not found", which is how
// the platform reports a missing section or key.
func (a *Accessor) Query(ctx context.Context, path string, section, key, def Arg) ([]string, error) {
	path, err := resolveExisting(path)
	if err != nil {
		return nil, fmt.Errorf("read profile string: %w", err)
	}
	multi := !section.Valid || !key.Valid
	terminators := 1
	if multi {
		terminators = 2
	}
	buf, n, err := growbuf.Fill(ctx, a.initial, a.growth, func(buf []uint16) (int, error) {
		n, errno := a.native.ReadProfileString(section, key, def, buf, path)
		log.Debugf(ctx, "read profile string %s: section=%v key=%v default=%v buffer=%d: n=%d errno=%d",
			path, section, key, def, len(buf), n, uint32(errno))
		if errno != ErrorSuccess && errno != ErrorFileNotFound {
			return n, &NativeError{Op: "read profile string", Path: path, Code: errno}
		}
		return n, nil
	}, func(n, size int) bool {
		return n == size-terminators
	})
	if err != nil {
		return nil, err
	}
	return DecodeMultiString(buf[:n], multi)
}

// Write modifies the INI file at path. With key and value present it sets
// the key, creating the file and section as needed. With value absent it
// deletes the key, and with key absent it deletes the section; deletions
// require the file to exist and return a *NotFoundError otherwise.
//
// Write returns a *NativeError if the native call reports failure or leaves
// a non-zero error code.
func (a *Accessor) Write(ctx context.Context, path string, section string, key, value Arg) error {
	var err error
	if !key.Valid || !value.Valid {
		path, err = resolveExisting(path)
	} else {
		path, err = filepath.Abs(path)
	}
	if err != nil {
		return fmt.Errorf("write profile string: %w", err)
	}
	ok, errno := a.native.WriteProfileString(section, key, value, path)
	log.Debugf(ctx, "write profile string %s: section=%q key=%v value=%v: ok=%t errno=%d",
		path, section, key, value, ok, uint32(errno))
	if !ok || errno != ErrorSuccess {
		return &NativeError{Op: "write profile string", Path: path, Code: errno}
	}
	return nil
}

// resolveExisting returns the absolute form of path, or a *NotFoundError if
// nothing exists there.
func resolveExisting(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		return "", &NotFoundError{Path: abs}
	} else if err != nil {
		return "", err
	}
	return abs, nil
}
