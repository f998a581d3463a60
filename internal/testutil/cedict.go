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

// Package testutil provides CC-CEDICT test file helpers.
package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// MakeDictOptions are options for creating test dictionary files.
type MakeDictOptions struct {
	// Ext is the file extension for the dictionary file. Defaults to
	// ".u8", ".u8.gz", or ".u8.dz" depending on compression.
	Ext string

	// Gzip indicates that the file should be compressed with gzip.
	Gzip bool

	// DictZip indicates that the file should be compressed with dictzip.
	DictZip bool
}

// GetExt returns the extension the dictionary file should use.
func (o *MakeDictOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.Gzip {
			return ".u8.gz"
		}
		if o.DictZip {
			return ".u8.dz"
		}
	}
	return ".u8"
}

// MakeTempDict writes contents out as a temporary CC-CEDICT file and
// returns its path. The file is removed when the test completes.
func MakeTempDict(t *testing.T, contents string, opts *MakeDictOptions) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cedict"+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch {
	case opts != nil && opts.Gzip:
		z := gzip.NewWriter(f)
		defer z.Close()
		if _, err := z.Write([]byte(contents)); err != nil {
			t.Fatal(err)
		}
	case opts != nil && opts.DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		defer z.Close()
		if _, err := z.Write([]byte(contents)); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.WriteString(contents); err != nil {
			t.Fatal(err)
		}
	}

	return path
}
