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

package folding

import (
	"testing"

	"golang.org/x/text/transform"
)

// TestString tests whitespace folding.
func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		s        string
		expected string
	}{
		{
			name:     "empty",
			s:        "",
			expected: "",
		},
		{
			name:     "no whitespace",
			s:        "ni3hao3",
			expected: "ni3hao3",
		},
		{
			name:     "leading whitespace",
			s:        " \t　ni3 hao3",
			expected: "ni3 hao3",
		},
		{
			name:     "trailing whitespace",
			s:        "ni3 hao3 \t　",
			expected: "ni3 hao3",
		},
		{
			name:     "interior whitespace spans",
			s:        "ni3 \t hao3  ma5",
			expected: "ni3 hao3 ma5",
		},
		{
			name:     "ideographic space",
			s:        "你好　你好",
			expected: "你好 你好",
		},
		{
			name:     "all whitespace",
			s:        " \t　 ",
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if want, got := test.expected, String(test.s); want != got {
				t.Errorf("String(%q); want: %q, got: %q", test.s, want, got)
			}
		})
	}
}

// TestFolder_shortDst tests resumption when the destination is too small.
func TestFolder_shortDst(t *testing.T) {
	t.Parallel()

	f := &Folder{}
	src := []byte(" foo  bar ")
	dst := make([]byte, 3)

	nDst, nSrc, err := f.Transform(dst, src, true)
	if err != transform.ErrShortDst {
		t.Fatalf("Transform: unexpected error: %v", err)
	}
	if want, got := "foo", string(dst[:nDst]); want != got {
		t.Errorf("dst; want: %q, got: %q", want, got)
	}

	// Resume with a larger buffer from where the transform stopped.
	dst = make([]byte, 16)
	nDst2, _, err := f.Transform(dst, src[nSrc:], true)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if want, got := " bar", string(dst[:nDst2]); want != got {
		t.Errorf("resumed dst; want: %q, got: %q", want, got)
	}
}
