// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package profile

import "strconv"

// An Arg is an optional string argument to a profile routine. An absent
// argument is passed to the native layer as NULL, which selects a different
// operation than an empty string does.
type Arg struct {
	Value string
	Valid bool // Valid is true if the argument is present
}

// None is the absent argument.
var None = Arg{}

// Some returns a present argument with the given value.
func Some(v string) Arg {
	return Arg{Value: v, Valid: true}
}

// String returns the quoted value or "NULL".
func (a Arg) String() string {
	if !a.Valid {
		return "NULL"
	}
	return strconv.Quote(a.Value)
}
