// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"encoding"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Ensure File satisfies the encoding.Text* interfaces.
var _ interface {
	encoding.TextMarshaler
	encoding.TextUnmarshaler
} = new(File)

func TestNil(t *testing.T) {
	f := (*File)(nil)
	if got, ok := f.Get("foo", "bar"); ok || got != "" {
		t.Errorf("Get(...) = %q, %t; want \"\", false", got, ok)
	}
	if got := f.Sections(); len(got) > 0 {
		t.Errorf("Sections() = %q; want empty", got)
	}
	if got := f.Keys("foo"); len(got) > 0 {
		t.Errorf("Keys(...) = %q; want empty", got)
	}
	if f.HasSection("foo") {
		t.Error("HasSection(...) = true; want false")
	}
	if got, err := f.MarshalText(); err != nil {
		t.Errorf("MarshalText(): %v", err)
	} else if len(got) > 0 {
		t.Errorf("MarshalText() = %q; want empty", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		want      map[string]map[string]string
		canonical string // defaults to source
	}{
		{
			name: "Empty",
		},
		{
			name:   "Single",
			source: "[foo]\nbar=baz\n",
			want: map[string]map[string]string{
				"foo": {"bar": "baz"},
			},
		},
		{
			name:   "Whitespace",
			source: "[ foo ]\n  bar =  baz  \n",
			want: map[string]map[string]string{
				"foo": {"bar": "baz"},
			},
		},
		{
			name:   "Quoted",
			source: "[foo]\nbar=\"  baz  \"\nsingle='x'\nhalf=\"y\n",
			want: map[string]map[string]string{
				"foo": {"bar": "  baz  ", "single": "x", "half": `"y`},
			},
		},
		{
			name:   "ValueWithEquals",
			source: "[foo]\nurl=a=b\n",
			want: map[string]map[string]string{
				"foo": {"url": "a=b"},
			},
		},
		{
			name:   "Comments",
			source: "; top\n[foo]\n# hash\n;bar=commented\nbar=baz\n\n",
			want: map[string]map[string]string{
				"foo": {"bar": "baz"},
			},
		},
		{
			name:   "Junk",
			source: "[foo]\nnot a property\n=novalue\nbar=baz\n",
			want: map[string]map[string]string{
				"foo": {"bar": "baz"},
			},
		},
		{
			name:   "PropertiesBeforeFirstSection",
			source: "global=1\n[foo]\nbar=baz\n",
			want: map[string]map[string]string{
				"foo": {"bar": "baz"},
			},
		},
		{
			name:   "TextAfterHeader",
			source: "[foo] ; comment\nbar=baz\n",
			want: map[string]map[string]string{
				"foo": {"bar": "baz"},
			},
		},
		{
			name:   "UnterminatedHeader",
			source: "[foo\nbar=baz\n",
		},
		{
			name:   "EmptySection",
			source: "[foo]\n[bar]\nx=1\n",
			want: map[string]map[string]string{
				"foo": {},
				"bar": {"x": "1"},
			},
		},
		{
			name:   "RepeatedSections",
			source: "[foo]\na=1\n[FOO]\nb=2\na=3\n",
			want: map[string]map[string]string{
				"foo": {"a": "1", "b": "2"},
			},
		},
		{
			name:   "CRLF",
			source: "[foo]\r\nbar=baz\r\n",
			want: map[string]map[string]string{
				"foo": {"bar": "baz"},
			},
		},
		{
			name:   "NoNewline",
			source: "[foo]\nbar=baz",
			want: map[string]map[string]string{
				"foo": {"bar": "baz"},
			},
			canonical: "[foo]\nbar=baz\n",
		},
		{
			name:   "BlankLineOnly",
			source: "\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, err := Parse(strings.NewReader(test.source))
			if err != nil {
				t.Fatal("Parse:", err)
			}

			t.Run("Sections", func(t *testing.T) {
				got := make(map[string]map[string]string)
				for _, name := range f.Sections() {
					props := make(map[string]string)
					for _, key := range f.Keys(name) {
						v, ok := f.Get(name, key)
						if !ok {
							t.Errorf("Get(%q, %q) not found after Keys listed it", name, key)
						}
						props[key] = v
					}
					got[name] = props
				}
				if diff := cmp.Diff(test.want, got, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("sections (-want +got):\n%s", diff)
				}
			})

			t.Run("MarshalText", func(t *testing.T) {
				want := test.canonical
				if want == "" {
					want = test.source
				}
				got, err := f.MarshalText()
				if err != nil {
					t.Fatal("MarshalText:", err)
				}
				if diff := cmp.Diff(want, string(got)); diff != "" {
					t.Errorf("MarshalText (-want +got):\n%s", diff)
				}
			})
		})
	}
}

func TestOrder(t *testing.T) {
	f, err := Parse(strings.NewReader("[b]\nz=1\ny=2\n[a]\n[B]\nx=3\nZ=4\n"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "a"}, f.Sections()); diff != "" {
		t.Errorf("Sections() (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"z", "y", "x"}, f.Keys("B")); diff != "" {
		t.Errorf("Keys(\"B\") (-want +got):\n%s", diff)
	}
	if got, _ := f.Get("b", "z"); got != "1" {
		t.Errorf("Get(\"b\", \"z\") = %q; want \"1\" (first occurrence)", got)
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		section string
		key     string
		value   string
		want    string
	}{
		{
			name:    "Empty",
			section: "foo",
			key:     "bar",
			value:   "baz",
			want:    "[foo]\nbar=baz\n",
		},
		{
			name:    "Replace",
			source:  "[foo]\nbar=old\n",
			section: "foo",
			key:     "bar",
			value:   "baz",
			want:    "[foo]\nbar=baz\n",
		},
		{
			name:    "ReplaceCaseInsensitive",
			source:  "[Foo]\nBar=old\n",
			section: "foo",
			key:     "bar",
			value:   "baz",
			want:    "[Foo]\nbar=baz\n",
		},
		{
			name:    "ReplaceFirstOfRepeated",
			source:  "[foo]\na=1\na=2\n",
			section: "foo",
			key:     "a",
			value:   "3",
			want:    "[foo]\na=3\na=2\n",
		},
		{
			name:    "KeepComments",
			source:  "; c\n[foo]\n; about a\na=1\n",
			section: "foo",
			key:     "a",
			value:   "2",
			want:    "; c\n[foo]\n; about a\na=2\n",
		},
		{
			name:    "AppendBeforeTrailingLines",
			source:  "[foo]\na=1\n; trailing\n\n[b]\n",
			section: "foo",
			key:     "c",
			value:   "3",
			want:    "[foo]\na=1\nc=3\n; trailing\n\n[b]\n",
		},
		{
			name:    "AppendToEmptySection",
			source:  "[foo]\n[bar]\nx=1\n",
			section: "foo",
			key:     "a",
			value:   "1",
			want:    "[foo]\na=1\n[bar]\nx=1\n",
		},
		{
			name:    "NewSection",
			source:  "[foo]\na=1\n",
			section: "bar",
			key:     "b",
			value:   "2",
			want:    "[foo]\na=1\n\n[bar]\nb=2\n",
		},
		{
			name:    "NewSectionAfterBlankLine",
			source:  "[foo]\na=1\n\n",
			section: "bar",
			key:     "b",
			value:   "2",
			want:    "[foo]\na=1\n\n[bar]\nb=2\n",
		},
		{
			name:    "NewSectionAfterEmptySection",
			source:  "[foo]\n",
			section: "bar",
			key:     "b",
			value:   "2",
			want:    "[foo]\n\n[bar]\nb=2\n",
		},
		{
			name:    "NewSectionAfterPreamble",
			source:  "; settings\n",
			section: "bar",
			key:     "b",
			value:   "2",
			want:    "; settings\n\n[bar]\nb=2\n",
		},
		{
			name:    "QuotesSurroundingWhitespace",
			section: "foo",
			key:     "bar",
			value:   "  spaced ",
			want:    "[foo]\nbar=\"  spaced \"\n",
		},
		{
			name:    "CRLF",
			source:  "[foo]\r\na=1\r\n",
			section: "foo",
			key:     "b",
			value:   "2",
			want:    "[foo]\r\na=1\r\nb=2\r\n",
		},
		{
			name:    "PaddedNamesNewSection",
			section: " foo ",
			key:     "\tbar ",
			value:   "baz",
			want:    "[foo]\nbar=baz\n",
		},
		{
			name:    "PaddedNamesReplace",
			source:  "[ foo ]\n bar = old\n",
			section: " foo",
			key:     "bar ",
			value:   "baz",
			want:    "[ foo ]\nbar=baz\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, err := Parse(strings.NewReader(test.source))
			if err != nil {
				t.Fatal(err)
			}
			f.Set(test.section, test.key, test.value)
			got, err := f.MarshalText()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, string(got)); diff != "" {
				t.Errorf("MarshalText (-want +got):\n%s", diff)
			}
			if v, ok := f.Get(test.section, test.key); !ok || v != test.value {
				t.Errorf("Get(%q, %q) = %q, %t; want %q, true", test.section, test.key, v, ok, test.value)
			}
		})
	}
}

func TestSetRoundTrip(t *testing.T) {
	values := []string{
		"",
		"plain",
		" leading",
		"trailing\t",
		`"quoted"`,
		`'single'`,
		`"half`,
		"a=b;c#d",
		strings.Repeat("x", 3000),
	}
	for _, value := range values {
		f := new(File)
		f.Set("s", "k", value)
		text, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		parsed, err := Parse(strings.NewReader(string(text)))
		if err != nil {
			t.Fatal(err)
		}
		if got, ok := parsed.Get("s", "k"); !ok || got != value {
			t.Errorf("round trip of %q = %q, %t", value, got, ok)
		}
	}
}

func TestSetPanicsOnInvalidNames(t *testing.T) {
	tests := []struct {
		section string
		key     string
	}{
		{section: "a]b", key: "k"},
		{section: "s", key: "a=b"},
	}
	for _, test := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Set(%q, %q, ...) did not panic", test.section, test.key)
				}
			}()
			new(File).Set(test.section, test.key, "v")
		}()
	}
}

func TestDeleteKey(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		section string
		key     string
		want    string
	}{
		{
			name:    "Single",
			source:  "[foo]\na=1\nb=2\n",
			section: "foo",
			key:     "a",
			want:    "[foo]\nb=2\n",
		},
		{
			name:    "RepeatedSections",
			source:  "[foo]\na=1\n[bar]\na=2\n[FOO]\nA=3\n",
			section: "foo",
			key:     "a",
			want:    "[foo]\n[bar]\na=2\n[FOO]\n",
		},
		{
			name:    "KeepComments",
			source:  "[foo]\n; c\na=1\n",
			section: "foo",
			key:     "a",
			want:    "[foo]\n; c\n",
		},
		{
			name:    "DoesNotExist",
			source:  "[foo]\na=1\n",
			section: "foo",
			key:     "b",
			want:    "[foo]\na=1\n",
		},
		{
			name:    "PreambleUntouched",
			source:  "a=0\n[foo]\na=1\n",
			section: "foo",
			key:     "a",
			want:    "a=0\n[foo]\n",
		},
		{
			name:    "PaddedNames",
			source:  "[foo]\na=1\nb=2\n",
			section: "  foo ",
			key:     " a\t",
			want:    "[foo]\nb=2\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, err := Parse(strings.NewReader(test.source))
			if err != nil {
				t.Fatal(err)
			}
			f.DeleteKey(test.section, test.key)
			got, err := f.MarshalText()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, string(got)); diff != "" {
				t.Errorf("MarshalText (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeleteSection(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		section string
		want    string
	}{
		{
			name:    "First",
			source:  "[foo]\na=1\n\n[bar]\nb=2\n",
			section: "foo",
			want:    "[bar]\nb=2\n",
		},
		{
			name:    "KeepPreamble",
			source:  "; c\n[foo]\na=1\n",
			section: "foo",
			want:    "; c\n",
		},
		{
			name:    "Repeated",
			source:  "[foo]\na=1\n[bar]\n[Foo]\nb=2\n",
			section: "foo",
			want:    "[bar]\n",
		},
		{
			name:    "DoesNotExist",
			source:  "[foo]\na=1\n",
			section: "bar",
			want:    "[foo]\na=1\n",
		},
		{
			name:    "PaddedName",
			source:  "[foo]\na=1\n[bar]\n",
			section: " foo ",
			want:    "[bar]\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, err := Parse(strings.NewReader(test.source))
			if err != nil {
				t.Fatal(err)
			}
			f.DeleteSection(test.section)
			got, err := f.MarshalText()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, string(got)); diff != "" {
				t.Errorf("MarshalText (-want +got):\n%s", diff)
			}
			if f.HasSection(test.section) {
				t.Errorf("HasSection(%q) = true after DeleteSection", test.section)
			}
		})
	}
}

func TestIsValidSection(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "", want: true},
		{name: "foo", want: true},
		{name: "foo bar", want: true},
		{name: "[foo", want: true},
		{name: "foo]", want: false},
		{name: "a]b", want: false},
	}
	for _, test := range tests {
		if got := IsValidSection(test.name); got != test.want {
			t.Errorf("IsValidSection(%q) = %t; want %t", test.name, got, test.want)
		}
	}
}

func TestIsValidKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{key: "foo", want: true},
		{key: "foo bar", want: true},
		{key: "foo;bar", want: true},
		{key: "foo=bar", want: false},
		{key: "=", want: false},
	}
	for _, test := range tests {
		if got := IsValidKey(test.key); got != test.want {
			t.Errorf("IsValidKey(%q) = %t; want %t", test.key, got, test.want)
		}
	}
}
