// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

//go:build !windows

package profile

import (
	"errors"
	"runtime"
)

func defaultNative() Native {
	return FileNative{}
}

func systemNative() (Native, error) {
	return nil, errors.New("system profile routines are not available on " + runtime.GOOS)
}
