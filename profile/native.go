// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package profile

import "fmt"

// Backend names accepted by NewNative.
const (
	BackendAuto   = "auto"
	BackendSystem = "system"
	BackendFile   = "file"
)

// NewNative returns the named implementation of the profile routines.
// BackendSystem calls the operating system's routines and is only available
// on Windows. BackendFile is FileNative. BackendAuto (or the empty string)
// picks the system routines where they exist and FileNative elsewhere.
func NewNative(backend string) (Native, error) {
	switch backend {
	case "", BackendAuto:
		return defaultNative(), nil
	case BackendFile:
		return FileNative{}, nil
	case BackendSystem:
		return systemNative()
	default:
		return nil, fmt.Errorf("unknown backend %q (want %s, %s, or %s)", backend, BackendAuto, BackendSystem, BackendFile)
	}
}
