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
	"unicode/utf8"
)

// Span is a half-open byte range [Start, End) into an entry's backing text.
// A Span never owns data. It is only meaningful when interpreted against the
// text it was produced from.
type Span struct {
	// Start is the byte offset of the first byte of the range.
	Start int

	// End is the byte offset one past the last byte of the range.
	End int
}

// in returns the substring of text covered by the span.
func (s Span) in(text string) string {
	return text[s.Start:s.End]
}

// validIn reports whether the span is within the bounds of text and both
// offsets fall on UTF-8 rune boundaries.
func (s Span) validIn(text string) bool {
	if s.Start < 0 || s.Start > s.End || s.End > len(text) {
		return false
	}
	return boundary(text, s.Start) && boundary(text, s.End)
}

// boundary reports whether the byte offset i is a rune boundary in text.
func boundary(text string, i int) bool {
	if i == 0 || i == len(text) {
		return true
	}
	return utf8.RuneStart(text[i])
}
