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
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidEntry indicates that a line is not a well-formed dictionary
// entry.
var ErrInvalidEntry = errors.New("invalid entry")

// scanState identifies the entry scanner's position in the line grammar.
type scanState int

const (
	// scanTraditional scans the traditional form up to the next space.
	scanTraditional scanState = iota

	// scanSimplified scans the simplified form up to the next space.
	scanSimplified

	// expectOpenBracket expects the literal '[' opening the pinyin field.
	expectOpenBracket

	// scanPinyin scans the pinyin field up to the closing ']'.
	scanPinyin

	// expectSpace expects the single space between ']' and the first '/'.
	expectSpace

	// expectSlash expects the '/' opening the definitions section.
	expectSlash

	// scanDefinitions scans the definitions blob to the end of the line.
	scanDefinitions

	// scanDone terminates the scan.
	scanDone
)

// scanSteps maps each scanner state to the function that consumes that
// state's input and returns the next state. The table is the entry grammar:
// every state must succeed in order or the whole scan fails with no partial
// result.
var scanSteps = [scanDone]func(*entryScanner) (scanState, error){
	scanTraditional:   (*entryScanner).stepTraditional,
	scanSimplified:    (*entryScanner).stepSimplified,
	expectOpenBracket: (*entryScanner).stepOpenBracket,
	scanPinyin:        (*entryScanner).stepPinyin,
	expectSpace:       (*entryScanner).stepSpace,
	expectSlash:       (*entryScanner).stepSlash,
	scanDefinitions:   (*entryScanner).stepDefinitions,
}

// entryScanner scans a single entry line left to right by rune so that
// field spans always fall on UTF-8 boundaries. It never backtracks.
type entryScanner struct {
	line string

	// pos is the byte offset of the scan cursor.
	pos int

	traditional Span
	simplified  Span
	pinyin      Span
	definitions Span
}

// run drives the scanner through the state table until the line is
// consumed or a state fails.
func (s *entryScanner) run() error {
	state := scanTraditional
	for state != scanDone {
		next, err := scanSteps[state](s)
		if err != nil {
			return err
		}
		state = next
	}
	return nil
}

func (s *entryScanner) stepTraditional() (scanState, error) {
	span, err := s.until(' ')
	if err != nil {
		return scanDone, err
	}
	s.traditional = span
	return scanSimplified, nil
}

func (s *entryScanner) stepSimplified() (scanState, error) {
	span, err := s.until(' ')
	if err != nil {
		return scanDone, err
	}
	s.simplified = span
	return expectOpenBracket, nil
}

func (s *entryScanner) stepOpenBracket() (scanState, error) {
	if err := s.expect('['); err != nil {
		return scanDone, err
	}
	return scanPinyin, nil
}

func (s *entryScanner) stepPinyin() (scanState, error) {
	span, err := s.until(']')
	if err != nil {
		return scanDone, err
	}
	s.pinyin = span
	return expectSpace, nil
}

func (s *entryScanner) stepSpace() (scanState, error) {
	if err := s.expect(' '); err != nil {
		return scanDone, err
	}
	return expectSlash, nil
}

func (s *entryScanner) stepSlash() (scanState, error) {
	if err := s.expect('/'); err != nil {
		return scanDone, err
	}
	return scanDefinitions, nil
}

// stepDefinitions records the rest of the line as the definitions blob.
// The blob retains its interior and trailing '/' separators. Nothing past
// the first '/' is validated.
func (s *entryScanner) stepDefinitions() (scanState, error) {
	s.definitions = Span{Start: s.pos, End: len(s.line)}
	s.pos = len(s.line)
	return scanDone, nil
}

// next decodes and consumes the rune at the cursor. It returns false if
// the cursor is at the end of the line.
func (s *entryScanner) next() (rune, bool) {
	if s.pos >= len(s.line) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.line[s.pos:])
	s.pos += size
	return r, true
}

// until consumes runes up to and including the delimiter and returns the
// span of the runes before it.
func (s *entryScanner) until(delim rune) (Span, error) {
	start := s.pos
	for {
		end := s.pos
		r, ok := s.next()
		if !ok {
			return Span{}, s.errorf("missing %q", delim)
		}
		if r == delim {
			return Span{Start: start, End: end}, nil
		}
	}
}

// expect consumes the rune at the cursor and fails unless it is want.
func (s *entryScanner) expect(want rune) error {
	at := s.pos
	r, ok := s.next()
	if !ok || r != want {
		s.pos = at
		return s.errorf("expected %q", want)
	}
	return nil
}

// errorf returns an entry error naming the cursor's byte offset.
func (s *entryScanner) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: byte %d: %s", ErrInvalidEntry, s.pos, fmt.Sprintf(format, args...))
}

// ParseEntry parses a single dictionary entry line of the form:
//
//	<traditional> <simplified> [<pinyin>] /<def1>/<def2>/.../
//
// The returned entry keeps line as its backing text and exposes fields as
// spans into it. Parsing is all-or-nothing: no partial entry is returned
// on failure.
func ParseEntry(line string) (*Entry, error) {
	s := entryScanner{line: line}
	if err := s.run(); err != nil {
		return nil, err
	}

	for _, span := range []Span{s.traditional, s.simplified, s.pinyin, s.definitions} {
		if !span.validIn(line) {
			return nil, fmt.Errorf("%w: span %d:%d out of bounds", ErrInvalidEntry, span.Start, span.End)
		}
	}

	return &Entry{
		text:        line,
		traditional: s.traditional,
		simplified:  s.simplified,
		pinyin:      s.pinyin,
		definitions: s.definitions,
	}, nil
}
