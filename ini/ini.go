// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// A File is an INI document. The zero value is an empty file.
// Files can be read by multiple concurrent goroutines.
type File struct {
	// preamble holds the lines before the first section header.
	preamble []line
	sections []section
	newline  string
}

type section struct {
	name   string
	header string // verbatim header line
	lines  []line
}

// A line is either a property or an opaque line (comment, blank, junk).
type line struct {
	text  string // verbatim text without the line ending
	prop  bool
	key   string
	value string
}

// Parse reads an INI document. Parse only fails on read errors: content the
// parser does not understand is kept verbatim and otherwise ignored.
//
// See the Syntax section in the package documentation for the format recognized
// by Parse.
func Parse(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parse ini file: %w", err)
	}
	f := new(File)
	if len(data) == 0 {
		return f, nil
	}
	if bytes.Contains(data, []byte("\r\n")) {
		f.newline = "\r\n"
	}
	text := strings.TrimSuffix(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for _, raw := range strings.Split(text, "\n") {
		if name, ok := parseHeader(raw); ok {
			f.sections = append(f.sections, section{name: name, header: raw})
			continue
		}
		ln := parseLine(raw)
		if len(f.sections) == 0 {
			f.preamble = append(f.preamble, ln)
		} else {
			curr := &f.sections[len(f.sections)-1]
			curr.lines = append(curr.lines, ln)
		}
	}
	return f, nil
}

func parseHeader(raw string) (name string, ok bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "[") {
		return "", false
	}
	end := strings.IndexByte(trimmed, ']')
	if end == -1 {
		return "", false
	}
	return strings.TrimSpace(trimmed[1:end]), true
}

func parseLine(raw string) line {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed[0] == ';' || trimmed[0] == '#' {
		return line{text: raw}
	}
	i := strings.IndexByte(trimmed, '=')
	if i <= 0 {
		return line{text: raw}
	}
	key := strings.TrimSpace(trimmed[:i])
	if key == "" {
		return line{text: raw}
	}
	return line{
		text:  raw,
		prop:  true,
		key:   key,
		value: unquote(strings.TrimSpace(trimmed[i+1:])),
	}
}

func unquote(v string) string {
	if len(v) < 2 {
		return v
	}
	if q := v[0]; (q == '"' || q == '\'') && v[len(v)-1] == q {
		return v[1 : len(v)-1]
	}
	return v
}

// needsQuotes reports whether v would not survive a write and read back
// unchanged without surrounding quotes.
func needsQuotes(v string) bool {
	if strings.TrimSpace(v) != v {
		return true
	}
	return len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0]
}

func formatProperty(key, value string) line {
	text := key + "=" + value
	if needsQuotes(value) {
		text = key + `="` + value + `"`
	}
	return line{text: text, prop: true, key: key, value: value}
}

// Get returns the value of the first property with the given key in sections
// with the given name. ok is false if there is no such property.
func (f *File) Get(sectionName, key string) (_ string, ok bool) {
	if f == nil {
		return "", false
	}
	sectionName, key = strings.TrimSpace(sectionName), strings.TrimSpace(key)
	for i := range f.sections {
		s := &f.sections[i]
		if !strings.EqualFold(s.name, sectionName) {
			continue
		}
		for j := range s.lines {
			if ln := &s.lines[j]; ln.prop && strings.EqualFold(ln.key, key) {
				return ln.value, true
			}
		}
	}
	return "", false
}

// HasSection reports whether the file has a section header with the given name.
func (f *File) HasSection(name string) bool {
	if f == nil {
		return false
	}
	name = strings.TrimSpace(name)
	for _, s := range f.sections {
		if strings.EqualFold(s.name, name) {
			return true
		}
	}
	return false
}

// Sections returns the names of the sections in the file in the order they
// first appear, including sections without properties. Repeated sections are
// listed once, using the spelling of the first header.
func (f *File) Sections() []string {
	if f == nil {
		return nil
	}
	var names []string
	for _, s := range f.sections {
		if !containsFold(names, s.name) {
			names = append(names, s.name)
		}
	}
	return names
}

// Keys returns the keys in the named section in the order they first appear.
// Repeated keys are listed once.
func (f *File) Keys(sectionName string) []string {
	if f == nil {
		return nil
	}
	sectionName = strings.TrimSpace(sectionName)
	var keys []string
	for _, s := range f.sections {
		if !strings.EqualFold(s.name, sectionName) {
			continue
		}
		for _, ln := range s.lines {
			if ln.prop && !containsFold(keys, ln.key) {
				keys = append(keys, ln.key)
			}
		}
	}
	return keys
}

func containsFold(list []string, s string) bool {
	for _, elem := range list {
		if strings.EqualFold(elem, s) {
			return true
		}
	}
	return false
}

// Set sets the property to the given value. Set will panic if
// IsValidSection(sectionName) or IsValidKey(key) report false.
//
// If the section already has a property with the given key, the first one is
// rewritten in place. Otherwise the property is added after the last property
// of the first matching section, creating a section at the end of the file if
// necessary. Values with surrounding whitespace or quotes are written quoted
// so that Get returns them unchanged.
func (f *File) Set(sectionName, key, value string) {
	if !IsValidSection(sectionName) {
		panic("File.Set invalid section: " + sectionName)
	}
	if !IsValidKey(key) {
		panic("File.Set invalid key: " + key)
	}
	sectionName, key = strings.TrimSpace(sectionName), strings.TrimSpace(key)
	var addToSection *section
	for i := range f.sections {
		s := &f.sections[i]
		if !strings.EqualFold(s.name, sectionName) {
			continue
		}
		if addToSection == nil {
			addToSection = s
		}
		for j := range s.lines {
			if ln := &s.lines[j]; ln.prop && strings.EqualFold(ln.key, key) {
				*ln = formatProperty(key, value)
				return
			}
		}
	}
	if addToSection == nil {
		f.separateFromPrevious()
		f.sections = append(f.sections, section{name: sectionName, header: "[" + sectionName + "]"})
		addToSection = &f.sections[len(f.sections)-1]
	}
	// Insert after the last property so trailing comments and blank lines stay
	// at the end of the section.
	at := 0
	for j, ln := range addToSection.lines {
		if ln.prop {
			at = j + 1
		}
	}
	addToSection.lines = append(addToSection.lines, line{})
	copy(addToSection.lines[at+1:], addToSection.lines[at:])
	addToSection.lines[at] = formatProperty(key, value)
}

// separateFromPrevious appends a blank line to the end of a non-empty file
// unless it already ends with one.
func (f *File) separateFromPrevious() {
	last := &f.preamble
	if len(f.sections) > 0 {
		s := &f.sections[len(f.sections)-1]
		if len(s.lines) == 0 {
			s.lines = append(s.lines, line{})
			return
		}
		last = &s.lines
	}
	if n := len(*last); n > 0 && strings.TrimSpace((*last)[n-1].text) != "" {
		*last = append(*last, line{})
	}
}

// DeleteKey deletes every property with the given key in sections with the
// given name. The section header is kept even if the section becomes empty.
func (f *File) DeleteKey(sectionName, key string) {
	sectionName, key = strings.TrimSpace(sectionName), strings.TrimSpace(key)
	for i := range f.sections {
		s := &f.sections[i]
		if !strings.EqualFold(s.name, sectionName) {
			continue
		}
		n := 0
		for _, ln := range s.lines {
			if ln.prop && strings.EqualFold(ln.key, key) {
				continue
			}
			s.lines[n] = ln
			n++
		}
		for j := n; j < len(s.lines); j++ {
			// Zero out for garbage collection.
			s.lines[j] = line{}
		}
		s.lines = s.lines[:n]
	}
}

// DeleteSection deletes every section with the given name along with all of
// the lines inside it.
func (f *File) DeleteSection(name string) {
	name = strings.TrimSpace(name)
	n := 0
	for _, s := range f.sections {
		if strings.EqualFold(s.name, name) {
			continue
		}
		f.sections[n] = s
		n++
	}
	for i := n; i < len(f.sections); i++ {
		// Zero out for garbage collection.
		f.sections[i] = section{}
	}
	f.sections = f.sections[:n]
}

// MarshalText serializes the file in INI format. Lines that were not modified
// are written exactly as they were parsed. The line ending of the parsed input
// is kept; new files use "\n".
func (f *File) MarshalText() ([]byte, error) {
	if f == nil {
		return nil, nil
	}
	nl := f.newline
	if nl == "" {
		nl = "\n"
	}
	var buf []byte
	appendLines := func(lines []line) {
		for _, ln := range lines {
			buf = append(buf, ln.text...)
			buf = append(buf, nl...)
		}
	}
	appendLines(f.preamble)
	for _, s := range f.sections {
		buf = append(buf, s.header...)
		buf = append(buf, nl...)
		appendLines(s.lines)
	}
	return buf, nil
}

// UnmarshalText parses the INI data, replacing any properties or sections in f.
func (f *File) UnmarshalText(data []byte) error {
	parsed, err := Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*f = *parsed
	return nil
}

// IsValidSection reports whether a string can be used as a section name in
// an INI file.
func IsValidSection(name string) bool {
	return !strings.ContainsRune(name, ']')
}

// IsValidKey reports whether a string can be used as a property key in
// an INI file.
func IsValidKey(key string) bool {
	return !strings.ContainsRune(key, '=')
}
