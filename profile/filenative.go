// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package profile

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"unicode/utf16"

	"github.com/yourbase/iniutil/ini"
)

// FileNative implements the profile routines in Go on top of package ini.
// It follows the buffer and error code conventions of the Windows routines,
// so it can stand in for them on any platform.
//
// Existing files keep their encoding. New files are created in the
// Windows-1252 code page, like the Windows routines do.
type FileNative struct{}

var _ Native = FileNative{}

// ReadProfileString implements Native.
func (FileNative) ReadProfileString(section, key, def Arg, buf []uint16, path string) (int, Errno) {
	doc, _, errno := loadDocument(path)
	if errno != ErrorSuccess && errno != ErrorFileNotFound {
		return 0, errno
	}
	switch {
	case !section.Valid:
		if doc == nil {
			return copyMulti(buf, nil), ErrorFileNotFound
		}
		return copyMulti(buf, doc.Sections()), ErrorSuccess
	case !key.Valid:
		if !doc.HasSection(section.Value) {
			return copyMulti(buf, nil), ErrorFileNotFound
		}
		return copyMulti(buf, doc.Keys(section.Value)), ErrorSuccess
	default:
		if v, ok := doc.Get(section.Value, key.Value); ok {
			return copySingle(buf, v), ErrorSuccess
		}
		// The default has trailing blanks removed.
		return copySingle(buf, strings.TrimRight(def.Value, " ")), ErrorFileNotFound
	}
}

// WriteProfileString implements Native.
func (FileNative) WriteProfileString(section string, key, value Arg, path string) (bool, Errno) {
	doc, c, errno := loadDocument(path)
	switch {
	case errno == ErrorFileNotFound && (!key.Valid || !value.Valid):
		// Nothing to delete.
		return true, ErrorSuccess
	case errno == ErrorFileNotFound:
		doc, c = new(ini.File), legacyCodec
	case errno != ErrorSuccess:
		return false, errno
	}

	switch {
	case !key.Valid:
		doc.DeleteSection(section)
	case !value.Valid:
		doc.DeleteKey(section, key.Value)
	default:
		if !ini.IsValidSection(section) || !ini.IsValidKey(key.Value) {
			return false, ErrorInvalidParameter
		}
		doc.Set(section, key.Value, value.Value)
	}

	text, err := doc.MarshalText()
	if err != nil {
		return false, ErrorGenFailure
	}
	data, err := c.encode(string(text))
	if err != nil {
		return false, ErrorGenFailure
	}
	if err := os.WriteFile(path, data, 0o666); err != nil {
		return false, errnoFor(err)
	}
	return true, ErrorSuccess
}

// loadDocument reads and parses the file at path. A missing file is reported
// as ErrorFileNotFound with a nil document.
func loadDocument(path string) (*ini.File, codec, Errno) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, codec{}, ErrorFileNotFound
	}
	if err != nil {
		return nil, codec{}, errnoFor(err)
	}
	c := detectCodec(data)
	text, err := c.decode(data)
	if err != nil {
		return nil, codec{}, ErrorGenFailure
	}
	doc, err := ini.Parse(strings.NewReader(text))
	if err != nil {
		return nil, codec{}, ErrorGenFailure
	}
	return doc, c, ErrorSuccess
}

// copySingle copies s and a terminating NUL into buf, truncating s if needed,
// and returns the number of units copied before the terminator.
func copySingle(buf []uint16, s string) int {
	if len(buf) == 0 {
		return 0
	}
	units := utf16.Encode([]rune(s))
	if len(units) > len(buf)-1 {
		units = units[:len(buf)-1]
	}
	n := copy(buf, units)
	buf[n] = 0
	return n
}

// copyMulti copies names into buf as NUL-terminated strings followed by an
// extra NUL. If they do not fit, the list is cut off at len(buf)-2 units and
// double-terminated. The count excludes the final NUL.
func copyMulti(buf []uint16, names []string) int {
	if len(buf) < 2 {
		if len(buf) == 1 {
			buf[0] = 0
		}
		return 0
	}
	var units []uint16
	for _, name := range names {
		units = append(units, utf16.Encode([]rune(name))...)
		units = append(units, 0)
	}
	if len(units)+1 > len(buf) {
		n := copy(buf, units[:len(buf)-2])
		buf[n] = 0
		buf[n+1] = 0
		return n
	}
	n := copy(buf, units)
	buf[n] = 0
	if n == 0 {
		buf[1] = 0
	}
	return n
}
