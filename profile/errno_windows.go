// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package profile

import "golang.org/x/sys/windows"

func errnoDescription(e Errno) string {
	return windows.Errno(e).Error()
}
