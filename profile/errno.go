// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package profile

import (
	"errors"
	"io/fs"
)

// An Errno is a platform error code as reported by GetLastError.
type Errno uint32

// Error codes produced by the profile routines.
const (
	ErrorSuccess          Errno = 0
	ErrorFileNotFound     Errno = 2
	ErrorPathNotFound     Errno = 3
	ErrorAccessDenied     Errno = 5
	ErrorGenFailure       Errno = 31
	ErrorInvalidParameter Errno = 87
)

// Error returns the platform's description of the code.
func (e Errno) Error() string {
	return errnoDescription(e)
}

// Is reports whether e corresponds to a portable error value, so that
// errors.Is(err, fs.ErrNotExist) works on codes from the native layer.
func (e Errno) Is(target error) bool {
	switch target {
	case fs.ErrNotExist:
		return e == ErrorFileNotFound || e == ErrorPathNotFound
	case fs.ErrPermission:
		return e == ErrorAccessDenied
	}
	return false
}

// errnoFor maps a Go file system error to the code the Windows profile
// routines would report for it.
func errnoFor(err error) Errno {
	switch {
	case err == nil:
		return ErrorSuccess
	case errors.Is(err, fs.ErrNotExist):
		return ErrorPathNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrorAccessDenied
	default:
		return ErrorGenFailure
	}
}
