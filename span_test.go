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
	"testing"
)

// TestSpan_validIn tests span bounds and rune boundary validation.
func TestSpan_validIn(t *testing.T) {
	t.Parallel()

	// "愛" occupies bytes 0-2, "爱" bytes 4-6.
	text := "愛 爱"

	tests := []struct {
		name     string
		span     Span
		expected bool
	}{
		{
			name:     "full text",
			span:     Span{Start: 0, End: len(text)},
			expected: true,
		},
		{
			name:     "empty at start",
			span:     Span{Start: 0, End: 0},
			expected: true,
		},
		{
			name:     "single rune",
			span:     Span{Start: 4, End: 7},
			expected: true,
		},
		{
			name:     "start inside rune",
			span:     Span{Start: 1, End: 4},
			expected: false,
		},
		{
			name:     "end inside rune",
			span:     Span{Start: 0, End: 5},
			expected: false,
		},
		{
			name:     "end before start",
			span:     Span{Start: 4, End: 3},
			expected: false,
		},
		{
			name:     "negative start",
			span:     Span{Start: -1, End: 3},
			expected: false,
		},
		{
			name:     "end out of bounds",
			span:     Span{Start: 0, End: len(text) + 1},
			expected: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if want, got := test.expected, test.span.validIn(text); want != got {
				t.Errorf("validIn; want: %v, got: %v", want, got)
			}
		})
	}
}
