// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini provides an editable document model for INI files that behaves
like the Windows profile-string routines (GetPrivateProfileString and
WritePrivateProfileString). See https://en.wikipedia.org/wiki/INI_file.

This package is specifically designed for read-modify-write scenarios: lines
that are not touched by an edit are written back byte-for-byte, so comments,
blank lines, and lines the parser does not understand survive a round trip.

Syntax

A section is started by writing its name in square brackets ('[' and ']') on
its own line and ends at the next section name or the end of file. Whitespace
around the name is ignored, as is anything after the closing bracket:

	[section]
	key1=value1
	key2 = "  quoted value  "

A property is a key and value on a single line, separated by the first equals
sign ('='). Whitespace around the key and the value is ignored. A single pair
of matching double (") or single (') quotes around a value is removed. There
are no escape sequences.

Lines whose first non-whitespace character is a semicolon (';') or a hash
('#') are comments. Lines without an equals sign are ignored. Properties that
appear before the first section are kept in the file but are not part of any
section.

Names

Section names and keys are compared case-insensitively. Multiple sections may
have the same name; they are treated as one section whose properties appear
in file order. When a key is repeated, the first occurrence wins. Whitespace
around names passed to File methods is ignored too, so " Net " finds [Net].
*/
package ini
