// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package profile

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// A codec is the text encoding of an INI file on disk.
type codec struct {
	name string
	enc  encoding.Encoding
}

var (
	utf16LEBOM = codec{"utf-16le", unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)}
	utf16BEBOM = codec{"utf-16be", unicode.UTF16(unicode.BigEndian, unicode.UseBOM)}
	utf8BOM    = codec{"utf-8-bom", unicode.UTF8BOM}
	utf8Plain  = codec{"utf-8", unicode.UTF8}

	// legacyCodec is the single-byte code page new files are written in.
	legacyCodec = codec{"windows-1252", charmap.Windows1252}
)

// detectCodec picks the encoding of existing file contents from its byte
// order mark. Files without one are read as UTF-8 when they contain valid
// multi-byte UTF-8 and as Windows-1252 otherwise, so a pure-ASCII file stays in
// the code page it was created in.
func detectCodec(data []byte) codec {
	switch {
	case bytes.HasPrefix(data, []byte{0xff, 0xfe}):
		return utf16LEBOM
	case bytes.HasPrefix(data, []byte{0xfe, 0xff}):
		return utf16BEBOM
	case bytes.HasPrefix(data, []byte{0xef, 0xbb, 0xbf}):
		return utf8BOM
	case !isASCII(data) && utf8.Valid(data):
		return utf8Plain
	default:
		return legacyCodec
	}
}

func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func (c codec) decode(data []byte) (string, error) {
	text, err := c.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", c.name, err)
	}
	return string(text), nil
}

// encode converts text to the file encoding. Characters the legacy code page
// cannot represent are written as '?'.
func (c codec) encode(text string) ([]byte, error) {
	if c.name == legacyCodec.name {
		buf := make([]byte, 0, len(text))
		for _, r := range text {
			b, ok := charmap.Windows1252.EncodeRune(r)
			if !ok {
				b = '?'
			}
			buf = append(buf, b)
		}
		return buf, nil
	}
	data, err := c.enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.name, err)
	}
	return data, nil
}
