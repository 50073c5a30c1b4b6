// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package profile

import (
	"fmt"
	"io/fs"
)

// A ValidationError is returned when a section name or key contains a
// character that would corrupt INI syntax. No file is touched when a
// ValidationError is returned.
type ValidationError struct {
	Field string // "section" or "key"
	Name  string
	Char  rune
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s name %q cannot contain the %q character", e.Field, e.Name, e.Char)
}

// A NotFoundError is returned when an operation requires an existing file.
type NotFoundError struct {
	Path string // absolute path
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: file not found", e.Path)
}

// Is makes errors.Is(err, fs.ErrNotExist) report true.
func (e *NotFoundError) Is(target error) bool {
	return target == fs.ErrNotExist
}

// A NativeError is returned when the native layer reports a failure.
type NativeError struct {
	Op   string
	Path string
	Code Errno
}

func (e *NativeError) Error() string {
	return fmt.Sprintf("%s %s: error %d: %v", e.Op, e.Path, uint32(e.Code), e.Code)
}

// Unwrap returns the error code.
func (e *NativeError) Unwrap() error {
	return e.Code
}
