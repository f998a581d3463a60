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
)

var checkCommand = &cli.Command{
	Name:      "check",
	Usage:     "Report malformed dictionary lines",
	ArgsUsage: "FILE",
	Description: `Check every line of a CC-CEDICT file and report each line that is not a
well-formed entry, comment, or metadata directive along with its line
number.`,
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}
		path := c.Args().Get(0)

		d, err := cedict.Open(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCedictutil, err)
		}

		for _, line := range d.InvalidLines() {
			fmt.Fprintf(c.App.Writer, "%s:%d: %s\n", path, line.Number, line.Raw)
		}

		if n := len(d.InvalidLines()); n > 0 {
			return fmt.Errorf("%w: %d", ErrMalformedLines, n)
		}
		return nil
	},
}
