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
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidLineSize indicates that the MaxLineSize option is an invalid
// value.
var ErrInvalidLineSize = errors.New("invalid max line size")

// Scanner scans a CC-CEDICT file from start to end, classifying one line
// per scan.
type Scanner struct {
	r io.ReadCloser
	s *bufio.Scanner

	// n is the 1-based line number of the current line.
	n int
}

// ScannerOptions are options for scanning a CC-CEDICT file.
type ScannerOptions struct {
	// MaxLineSize is the maximum length of a line in bytes. Lines longer
	// than this stop the scan with an error. If zero,
	// bufio.MaxScanTokenSize is used.
	MaxLineSize int
}

// DefaultScannerOptions is the default options for a Scanner.
var DefaultScannerOptions = &ScannerOptions{}

// NewScanner returns a new scanner that reads lines from r. The Scanner
// assumes ownership of the reader and should be closed with the Close
// method.
func NewScanner(r io.ReadCloser, options *ScannerOptions) (*Scanner, error) {
	if options == nil {
		options = DefaultScannerOptions
	}
	if options.MaxLineSize < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLineSize, options.MaxLineSize)
	}

	s := &Scanner{
		r: r,
		s: bufio.NewScanner(bufio.NewReader(r)),
	}
	if options.MaxLineSize > 0 {
		s.s.Buffer(nil, options.MaxLineSize)
	}
	return s, nil
}

// Scan advances the scanner to the next line. It returns false if the scan
// stops either by reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	if !s.s.Scan() {
		return false
	}
	s.n++
	return true
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	err := s.r.Close()
	if err != nil {
		return fmt.Errorf("closing cedict file: %w", err)
	}
	return nil
}

// Line classifies and returns the current line.
func (s *Scanner) Line() *Line {
	return ParseLine(s.s.Text())
}

// LineNumber returns the 1-based line number of the current line. It
// returns zero before the first call to Scan.
func (s *Scanner) LineNumber() int {
	return s.n
}
