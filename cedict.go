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
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

// InvalidLine records a malformed dictionary line for error reporting.
type InvalidLine struct {
	// Number is the 1-based line number.
	Number int

	// Raw is the raw line text.
	Raw string
}

// Dict is an in-memory CC-CEDICT dictionary. It holds the file's metadata
// directives, its well-formed entries in file order, and a record of every
// malformed line.
type Dict struct {
	metadata map[string]string
	entries  []*Entry
	invalid  []InvalidLine
}

// New reads a CC-CEDICT dictionary from r. Comment and empty lines are
// discarded. Malformed lines do not stop reading; they are recorded and
// available from InvalidLines.
func New(r io.Reader, options *ScannerOptions) (*Dict, error) {
	s, err := NewScanner(io.NopCloser(r), options)
	if err != nil {
		return nil, err
	}

	d := &Dict{
		metadata: map[string]string{},
	}
	for s.Scan() {
		line := s.Line()
		switch line.Type() {
		case MetadataLine:
			key, value := line.Metadata()
			d.metadata[key] = value
		case EntryLine:
			d.entries = append(d.entries, line.Entry())
		case IncorrectLine:
			d.invalid = append(d.invalid, InvalidLine{
				Number: s.LineNumber(),
				Raw:    line.Raw(),
			})
		case EmptyLine, CommentLine:
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning cedict file: %w", err)
	}

	return d, nil
}

// Open opens a CC-CEDICT dictionary from the given path. Files with a .gz
// extension are decompressed with gzip and files with a .dz extension with
// dictzip. The whole file is read before Open returns.
func Open(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("error opening %q: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case ".dz":
		zr, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("error opening %q: %w", path, err)
		}
		r = zr
	}

	d, err := New(r, nil)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// Metadata returns the value of the given '#!' metadata directive. It
// returns an empty string for keys not present in the file.
func (d *Dict) Metadata(key string) string {
	return d.metadata[key]
}

// MetadataKeys returns the keys of all metadata directives in sorted
// order.
func (d *Dict) MetadataKeys() []string {
	keys := make([]string, 0, len(d.metadata))
	for k := range d.metadata {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Entries returns the dictionary's entries in file order.
func (d *Dict) Entries() []*Entry {
	return d.entries
}

// InvalidLines returns the malformed lines encountered while reading the
// dictionary.
func (d *Dict) InvalidLines() []InvalidLine {
	return d.invalid
}
