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
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// scannedLine pairs a line number with its classification.
type scannedLine struct {
	Number int
	Type   LineType
}

// TestScanner tests Scanner.
func TestScanner(t *testing.T) {
	t.Parallel()

	data := strings.Join([]string{
		"#! version = 1.0",
		"# CC-CEDICT",
		"",
		"你好 你好 [ni3 hao3] /Hello!/Hi!/How are you?/",
		"bogus line",
		"愛 爱 [ai4] /to love/to be fond of/to like/",
	}, "\n")

	expected := []scannedLine{
		{Number: 1, Type: MetadataLine},
		{Number: 2, Type: CommentLine},
		{Number: 3, Type: EmptyLine},
		{Number: 4, Type: EntryLine},
		{Number: 5, Type: IncorrectLine},
		{Number: 6, Type: EntryLine},
	}

	s, err := NewScanner(io.NopCloser(strings.NewReader(data)), nil)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}

	var lines []scannedLine
	for s.Scan() {
		lines = append(lines, scannedLine{
			Number: s.LineNumber(),
			Type:   s.Line().Type(),
		})
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}

	if diff := cmp.Diff(expected, lines); diff != "" {
		t.Errorf("Scan (-want, +got):\n%s", diff)
	}
}

// TestScanner_options tests ScannerOptions validation and limits.
func TestScanner_options(t *testing.T) {
	t.Parallel()

	t.Run("negative max line size", func(t *testing.T) {
		t.Parallel()

		_, err := NewScanner(io.NopCloser(strings.NewReader("")), &ScannerOptions{
			MaxLineSize: -1,
		})
		if !errors.Is(err, ErrInvalidLineSize) {
			t.Fatalf("NewScanner: unexpected error: %v", err)
		}
	})

	t.Run("line too long", func(t *testing.T) {
		t.Parallel()

		data := "愛 爱 [ai4] /to love/to be fond of/to like/"
		s, err := NewScanner(io.NopCloser(strings.NewReader(data)), &ScannerOptions{
			MaxLineSize: 8,
		})
		if err != nil {
			t.Fatalf("NewScanner: %v", err)
		}

		for s.Scan() {
		}
		if err := s.Err(); err == nil {
			t.Fatal("Err: expected failure")
		}
	})
}
