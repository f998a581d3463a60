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

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-cedict"
	"github.com/ianlewis/go-cedict/internal/folding"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "Print entries matching a headword",
	ArgsUsage: "FILE WORD",
	Description: `Print every entry whose traditional or simplified form matches WORD
exactly. Entries are matched by a linear scan of the file.`,
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}

		d, err := cedict.Open(c.Args().Get(0))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCedictutil, err)
		}

		word := folding.String(c.Args().Get(1))
		for _, e := range d.Entries() {
			if e.Traditional() == word || e.Simplified() == word {
				fmt.Fprintln(c.App.Writer, e.Text())
			}
		}

		return nil
	},
}
