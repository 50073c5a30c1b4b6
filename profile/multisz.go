// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package profile

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeUTF16 converts UTF-16 code units to a string. Unpaired surrogates
// become U+FFFD.
func DecodeUTF16(units []uint16) (string, error) {
	b := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(b[2*i:], u)
	}
	s, err := utf16LE.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode utf-16: %w", err)
	}
	return string(s), nil
}

// DecodeMultiString decodes the filled portion of a profile string buffer.
// If multi is false, units holds a single value and DecodeMultiString returns
// it as the only element. If multi is true, units holds NUL-terminated names
// (a "multi-string") and DecodeMultiString returns them without the empty
// segment after the last terminator. An empty input yields nil.
func DecodeMultiString(units []uint16, multi bool) ([]string, error) {
	if len(units) == 0 {
		return nil, nil
	}
	s, err := DecodeUTF16(units)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(s, "\x00")
	if !multi {
		return parts[:1], nil
	}
	return parts[:len(parts)-1], nil
}
