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

// Package cedict implements a library for reading CC-CEDICT dictionaries in
// pure Go.
//
// CC-CEDICT is a line-oriented text format for Chinese-English dictionary
// data. A file contains three kinds of lines:
//  1. Metadata directives starting with "#!" in "key=value" form.
//  2. Comment lines starting with "#".
//  3. Dictionary entries of the form:
//     <traditional> <simplified> [<pinyin>] /<def1>/<def2>/.../
//
// Entry fields are exposed as views into the original line text rather than
// per-field copies. Parsed entries are immutable and safe for concurrent
// use.
//
// More info on the dictionary format can be found at this URL:
// https://cc-cedict.org/wiki/format:syntax
package cedict
