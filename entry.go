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
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/ianlewis/go-cedict/internal/folding"
)

// Entry is a single dictionary entry. The entry holds one backing line of
// text and field spans into it. Entries are immutable after construction;
// there is no field mutation API. Modifying an entry means building new
// canonical text with NewEntry and re-parsing it.
type Entry struct {
	// text is the backing text. It is always in canonical line form.
	text string

	traditional Span
	simplified  Span
	pinyin      Span

	// definitions spans from just after the '/' opening the definitions
	// section to the end of the line, trailing '/' included.
	definitions Span
}

// NewEntry creates an entry from its component fields by building canonical
// text and parsing it back. Interior whitespace in each component is folded
// to a single space and surrounding whitespace is trimmed. NewEntry fails
// if the components do not survive the round trip, e.g. a component
// containing an embedded '[', ']', '/' or a space that breaks the line
// grammar.
func NewEntry(traditional, simplified, pinyin string, definitions []string) (*Entry, error) {
	traditional = folding.String(traditional)
	simplified = folding.String(simplified)
	pinyin = folding.String(pinyin)

	defs := make([]string, 0, len(definitions))
	for _, d := range definitions {
		defs = append(defs, folding.String(d))
	}

	var b strings.Builder
	b.WriteString(traditional)
	b.WriteByte(' ')
	b.WriteString(simplified)
	b.WriteString(" [")
	b.WriteString(pinyin)
	b.WriteString("] /")
	for _, d := range defs {
		b.WriteString(d)
		b.WriteByte('/')
	}
	if len(defs) == 0 {
		b.WriteByte('/')
	}

	e, err := ParseEntry(b.String())
	if err != nil {
		return nil, err
	}

	// A component containing a delimiter produces a line that parses into
	// different fields. Reject anything that does not round-trip.
	if e.Traditional() != traditional || e.Simplified() != simplified || e.Pinyin() != pinyin {
		return nil, fmt.Errorf("%w: fields are not representable", ErrInvalidEntry)
	}
	if !slices.Equal(slices.Collect(e.Definitions()), defs) {
		return nil, fmt.Errorf("%w: definitions are not representable", ErrInvalidEntry)
	}

	return e, nil
}

// Traditional returns the entry's traditional Chinese form.
func (e *Entry) Traditional() string {
	return e.traditional.in(e.text)
}

// Simplified returns the entry's simplified Chinese form.
func (e *Entry) Simplified() string {
	return e.simplified.in(e.text)
}

// Pinyin returns the entry's pinyin reading. The text between the brackets
// is returned opaquely; syllables and tone numbers are not validated.
func (e *Entry) Pinyin() string {
	return e.pinyin.in(e.text)
}

// Definitions returns the entry's definitions as a lazy sequence. The
// sequence splits the definitions blob on '/' after trimming one leading
// and one trailing separator. Each call returns a fresh sequence that can
// be iterated independently. A blob with no definitions yields an empty
// sequence.
func (e *Entry) Definitions() iter.Seq[string] {
	return func(yield func(string) bool) {
		blob := e.definitions.in(e.text)
		blob = strings.TrimPrefix(blob, "/")
		blob = strings.TrimSuffix(blob, "/")
		if blob == "" {
			return
		}
		for {
			i := strings.IndexByte(blob, '/')
			if i < 0 {
				yield(blob)
				return
			}
			if !yield(blob[:i]) {
				return
			}
			blob = blob[i+1:]
		}
	}
}

// Text returns the entry's canonical line text. For parsed entries this is
// the original line verbatim; entries built with New carry canonical text
// by construction.
func (e *Entry) Text() string {
	return e.text
}

// String returns a string representation of the Entry.
func (e *Entry) String() string {
	return e.Text()
}
