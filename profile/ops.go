// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package profile

import (
	"context"
	"strings"
)

// An Entry is a single property in an INI file.
type Entry struct {
	Section string `json:"section" yaml:"section"`
	Key     string `json:"key" yaml:"key"`
	Value   string `json:"value" yaml:"value"`
}

// ValidateSection returns a *ValidationError if name contains ']'.
func ValidateSection(name string) error {
	if strings.ContainsRune(name, ']') {
		return &ValidationError{Field: "section", Name: name, Char: ']'}
	}
	return nil
}

// ValidateKey returns a *ValidationError if key contains '='.
func ValidateKey(key string) error {
	if strings.ContainsRune(key, '=') {
		return &ValidationError{Field: "key", Name: key, Char: '='}
	}
	return nil
}

func validateNames(section, key string) error {
	if err := ValidateSection(section); err != nil {
		return err
	}
	return ValidateKey(key)
}

// Value returns the value of key in section. If the key does not exist,
// Value returns def when it is present. ok is false when there is nothing to
// return, which includes a key whose value is empty.
func (a *Accessor) Value(ctx context.Context, path, section, key string, def Arg) (_ string, ok bool, err error) {
	if err := validateNames(section, key); err != nil {
		return "", false, err
	}
	result, err := a.Query(ctx, path, Some(section), Some(key), def)
	if err != nil || len(result) == 0 {
		return "", false, err
	}
	return result[0], true, nil
}

// Sections returns the names of the sections in the file in file order.
func (a *Accessor) Sections(ctx context.Context, path string) ([]string, error) {
	return a.Query(ctx, path, None, None, None)
}

// Keys returns the keys in the named section in file order.
func (a *Accessor) Keys(ctx context.Context, path, section string) ([]string, error) {
	if err := ValidateSection(section); err != nil {
		return nil, err
	}
	return a.Query(ctx, path, Some(section), None, None)
}

// Entries returns every property in the file, section by section. Keys with
// empty values are included with an empty Value.
func (a *Accessor) Entries(ctx context.Context, path string) ([]Entry, error) {
	sections, err := a.Sections(ctx, path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, section := range sections {
		keys, err := a.Keys(ctx, path, section)
		if err != nil {
			return entries, err
		}
		for _, key := range keys {
			value, _, err := a.Value(ctx, path, section, key, None)
			if err != nil {
				return entries, err
			}
			entries = append(entries, Entry{Section: section, Key: key, Value: value})
		}
	}
	return entries, nil
}

// SetValue sets key to value in section, creating the file and section if
// they do not exist.
func (a *Accessor) SetValue(ctx context.Context, path, section, key, value string) error {
	if err := validateNames(section, key); err != nil {
		return err
	}
	return a.Write(ctx, path, section, Some(key), Some(value))
}

// DeleteKey removes key from section. The file must exist; a missing section
// or key is not an error.
func (a *Accessor) DeleteKey(ctx context.Context, path, section, key string) error {
	if err := validateNames(section, key); err != nil {
		return err
	}
	return a.Write(ctx, path, section, Some(key), None)
}

// DeleteSection removes section and all of its keys. The file must exist;
// a missing section is not an error.
func (a *Accessor) DeleteSection(ctx context.Context, path, section string) error {
	if err := ValidateSection(section); err != nil {
		return err
	}
	return a.Write(ctx, path, section, None, None)
}
