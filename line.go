// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cedict

import (
	"strings"
)

// LineType is the classification of one line of CC-CEDICT text.
type LineType int

const (
	// EmptyLine is a line with no content.
	EmptyLine LineType = iota

	// CommentLine is a '#' comment line.
	CommentLine

	// MetadataLine is a '#!' metadata directive in key=value form.
	MetadataLine

	// EntryLine is a well-formed dictionary entry.
	EntryLine

	// IncorrectLine is a line that failed entry tokenization.
	IncorrectLine
)

// String returns the name of the line type.
func (t LineType) String() string {
	switch t {
	case EmptyLine:
		return "empty"
	case CommentLine:
		return "comment"
	case MetadataLine:
		return "metadata"
	case EntryLine:
		return "entry"
	case IncorrectLine:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Line is one classified line of CC-CEDICT text. Exactly one variant holds
// per line; accessors for other variants return zero values.
type Line struct {
	typ LineType
	raw string

	comment    string
	key, value string
	entry      *Entry
}

// Type returns the line's classification.
func (l *Line) Type() LineType {
	return l.typ
}

// Raw returns the raw line text as it appeared in the input.
func (l *Line) Raw() string {
	return l.raw
}

// Comment returns the comment text with surrounding whitespace trimmed.
func (l *Line) Comment() string {
	return l.comment
}

// Metadata returns the metadata key and value with surrounding whitespace
// trimmed from both. A directive with no '=' yields the whole trimmed text
// as the key and an empty value.
func (l *Line) Metadata() (string, string) {
	return l.key, l.value
}

// Entry returns the parsed entry for EntryLine lines and nil otherwise.
func (l *Line) Entry() *Entry {
	return l.entry
}

// ParseLine classifies one line of CC-CEDICT text. The line must not
// contain a line terminator. Classification is a pure function of the line
// text: empty lines are EmptyLine, lines starting with "#!" are
// MetadataLine, other lines starting with "#" are CommentLine, and
// everything else is tokenized as an entry, yielding EntryLine on success
// and IncorrectLine on failure.
func ParseLine(line string) *Line {
	switch {
	case line == "":
		return &Line{typ: EmptyLine}
	case strings.HasPrefix(line, "#!"):
		kv := strings.TrimSpace(line[2:])
		key, value, _ := strings.Cut(kv, "=")
		return &Line{
			typ:   MetadataLine,
			raw:   line,
			key:   strings.TrimSpace(key),
			value: strings.TrimSpace(value),
		}
	case strings.HasPrefix(line, "#"):
		return &Line{
			typ:     CommentLine,
			raw:     line,
			comment: strings.TrimSpace(line[1:]),
		}
	}

	e, err := ParseEntry(line)
	if err != nil {
		return &Line{typ: IncorrectLine, raw: line}
	}
	return &Line{typ: EntryLine, raw: line, entry: e}
}
