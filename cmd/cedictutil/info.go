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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-cedict"
)

var infoCommand = &cli.Command{
	Name:      "info",
	Usage:     "Print dictionary metadata",
	ArgsUsage: "FILE",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}

		d, err := cedict.Open(c.Args().Get(0))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCedictutil, err)
		}

		tbl := table.New("Key", "Value").WithWriter(c.App.Writer)
		for _, key := range d.MetadataKeys() {
			tbl.AddRow(key, d.Metadata(key))
		}
		tbl.Print()

		fmt.Fprintln(c.App.Writer)
		fmt.Fprintf(c.App.Writer, "Entries:         %d\n", len(d.Entries()))
		fmt.Fprintf(c.App.Writer, "Malformed lines: %d\n", len(d.InvalidLines()))

		return nil
	},
}
