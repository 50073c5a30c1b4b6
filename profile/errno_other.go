// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

//go:build !windows

package profile

import "fmt"

var errnoText = map[Errno]string{
	ErrorSuccess:          "The operation completed successfully.",
	ErrorFileNotFound:     "The system cannot find the file specified.",
	ErrorPathNotFound:     "The system cannot find the path specified.",
	ErrorAccessDenied:     "Access is denied.",
	ErrorGenFailure:       "A device attached to the system is not functioning.",
	ErrorInvalidParameter: "The parameter is incorrect.",
}

func errnoDescription(e Errno) string {
	if text, ok := errnoText[e]; ok {
		return text
	}
	return fmt.Sprintf("Unknown error %d.", uint32(e))
}
