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
	"slices"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-cedict"
)

var dumpCommand = &cli.Command{
	Name:      "dump",
	Usage:     "Print dictionary entries as a table",
	ArgsUsage: "FILE",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "max-entries",
			Usage:   "print at most `N` entries (0 prints all)",
			Aliases: []string{"n"},
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}

		d, err := cedict.Open(c.Args().Get(0))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCedictutil, err)
		}

		entries := d.Entries()
		if maxEntries := c.Int("max-entries"); maxEntries > 0 && maxEntries < len(entries) {
			entries = entries[:maxEntries]
		}

		tbl := table.New("Traditional", "Simplified", "Pinyin", "Definitions").WithWriter(c.App.Writer)
		for _, e := range entries {
			defs := strings.Join(slices.Collect(e.Definitions()), "; ")
			tbl.AddRow(e.Traditional(), e.Simplified(), e.Pinyin(), defs)
		}
		tbl.Print()

		return nil
	},
}
