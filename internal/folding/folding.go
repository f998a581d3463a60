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

// Package folding implements whitespace folding of text used to normalize
// entry components and queries.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Folder is a [transform.Transformer] that removes whitespace from the
// beginning and end of the input and replaces each interior whitespace run
// with a single ASCII space.
type Folder struct {
	// started is true once the first non-space rune has been seen.
	started bool

	// pending is true when a space is owed before the next non-space rune.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (f *Folder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(r) {
			// Leading whitespace is dropped. Anything else is owed a
			// single space, emitted only if a non-space rune follows.
			f.pending = f.started
			nSrc += size
			continue
		}

		// NOTE: r could be utf8.RuneError whose encoded length differs
		// from size, so the rune is re-encoded rather than copied.
		need := utf8.RuneLen(r)
		if f.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if f.pending {
			dst[nDst] = ' '
			nDst++
			f.pending = false
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		f.started = true
		nSrc += size
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *Folder) Reset() {
	*f = Folder{}
}

// String returns s with whitespace folded.
func String(s string) string {
	folded, _, err := transform.String(&Folder{}, s)
	if err != nil {
		return s
	}
	return folded
}
