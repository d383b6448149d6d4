// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/archive/cmd/archive/cli"
	"github.com/bureau-foundation/archive/lib/docfile"
	"github.com/bureau-foundation/archive/lib/document"
)

func checkCommand() *cli.Command {
	var (
		jsonc bool
		quiet bool
		stats bool
	)

	return &cli.Command{
		Name:    "check",
		Summary: "Validate documents",
		Description: `Parse each document and verify it is a well-formed archive: valid
JSON with an object or array at the root. Prints one line per input
and exits non-zero if any input fails.

With --stats, each valid document also gets a structural summary:
nesting depth, compound counts, and scalar counts.`,
		Usage: "archive check [flags] [file...]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("check", pflag.ContinueOnError)
			flagSet.BoolVar(&jsonc, "jsonc", false, "accept comments and trailing commas")
			flagSet.BoolVarP(&quiet, "quiet", "q", false, "suppress per-file output, exit status only")
			flagSet.BoolVar(&stats, "stats", false, "print structural statistics for valid documents")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Validate a document from stdin",
				Command:     "archive check < doc.json",
			},
			{
				Description: "Validate several files at once",
				Command:     "archive check one.json two.json three.jsonc --jsonc",
			},
		},
		Run: func(args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = []string{""}
			}

			failures := 0
			for _, path := range paths {
				label := path
				if label == "" {
					label = "<stdin>"
				}
				v, err := checkDocument(path, jsonc)
				if err != nil {
					failures++
					if !quiet {
						fmt.Fprintf(os.Stderr, "%s: %v\n", label, err)
					}
					continue
				}
				if quiet {
					continue
				}
				if stats {
					fmt.Printf("%s: ok (%s)\n", label, collectStats(v))
				} else {
					fmt.Printf("%s: ok\n", label)
				}
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d documents invalid", failures, len(paths))
			}
			return nil
		},
	}
}

func checkDocument(path string, jsonc bool) (*document.Value, error) {
	v, err := docfile.Load(path, jsonc)
	if err != nil {
		return nil, err
	}
	switch v.Kind() {
	case document.KindObject, document.KindArray:
		return v, nil
	default:
		return nil, fmt.Errorf("root is %s, want object or array", v.Kind())
	}
}

// docStats summarizes the structure of one document.
type docStats struct {
	objects  int
	arrays   int
	scalars  int
	maxDepth int
}

func (s docStats) String() string {
	return fmt.Sprintf("depth %d, %d objects, %d arrays, %d scalars",
		s.maxDepth, s.objects, s.arrays, s.scalars)
}

func collectStats(v *document.Value) docStats {
	var stats docStats
	walkStats(v, 1, &stats)
	return stats
}

func walkStats(v *document.Value, depth int, stats *docStats) {
	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}
	switch v.Kind() {
	case document.KindObject:
		stats.objects++
		for _, member := range v.Members() {
			walkStats(member.Value, depth+1, stats)
		}
	case document.KindArray:
		stats.arrays++
		for _, element := range v.Elements() {
			walkStats(element, depth+1, stats)
		}
	default:
		stats.scalars++
	}
}
