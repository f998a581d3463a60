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

package cedict_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-cedict"
	"github.com/ianlewis/go-cedict/internal/testutil"
)

var testFile = strings.Join([]string{
	"# CC-CEDICT",
	"#! version = 1.0",
	"#! entries = 2",
	"",
	"你好 你好 [ni3 hao3] /Hello!/Hi!/How are you?/",
	"bogus line",
	"愛 爱 [ai4] /to love/to be fond of/to like/",
}, "\n")

// TestNew tests reading a dictionary from a reader.
func TestNew(t *testing.T) {
	t.Parallel()

	d, err := cedict.New(strings.NewReader(testFile), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if want, got := "1.0", d.Metadata("version"); want != got {
		t.Errorf("Metadata(version); want: %q, got: %q", want, got)
	}
	if diff := cmp.Diff([]string{"entries", "version"}, d.MetadataKeys()); diff != "" {
		t.Errorf("MetadataKeys (-want, +got):\n%s", diff)
	}

	if want, got := 2, len(d.Entries()); want != got {
		t.Fatalf("unexpected # of entries; want: %d, got: %d", want, got)
	}
	if want, got := "你好", d.Entries()[0].Traditional(); want != got {
		t.Errorf("Traditional; want: %q, got: %q", want, got)
	}
	if want, got := "爱", d.Entries()[1].Simplified(); want != got {
		t.Errorf("Simplified; want: %q, got: %q", want, got)
	}

	expected := []cedict.InvalidLine{
		{Number: 6, Raw: "bogus line"},
	}
	if diff := cmp.Diff(expected, d.InvalidLines()); diff != "" {
		t.Errorf("InvalidLines (-want, +got):\n%s", diff)
	}
}

// TestOpen tests opening dictionary files.
func TestOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts *testutil.MakeDictOptions
	}{
		{
			name: "plain",
			opts: nil,
		},
		{
			name: "gzip",
			opts: &testutil.MakeDictOptions{Gzip: true},
		},
		{
			name: "dictzip",
			opts: &testutil.MakeDictOptions{DictZip: true},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := testutil.MakeTempDict(t, testFile, test.opts)
			d, err := cedict.Open(path)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}

			if want, got := 2, len(d.Entries()); want != got {
				t.Fatalf("unexpected # of entries; want: %d, got: %d", want, got)
			}
			if want, got := "ni3 hao3", d.Entries()[0].Pinyin(); want != got {
				t.Errorf("Pinyin; want: %q, got: %q", want, got)
			}
		})
	}
}

// TestOpen_missing tests opening a nonexistent file.
func TestOpen_missing(t *testing.T) {
	t.Parallel()

	if _, err := cedict.Open("testdata/does-not-exist.u8"); err == nil {
		t.Fatal("Open: expected failure")
	}
}
