// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/archive/cmd/archive/cli"
	"github.com/bureau-foundation/archive/lib/docfile"
	"github.com/bureau-foundation/archive/lib/docid"
)

func hashCommand() *cli.Command {
	var jsonc bool

	return &cli.Command{
		Name:    "hash",
		Summary: "Compute document content identities",
		Description: `Compute the content identity of each document: a BLAKE3 keyed hash
over the document's deterministic CBOR form. Two documents with the
same structure and values have the same identity regardless of
formatting, member order, or compression.

Output is one line per input: the hex identity, then the file name
when reading from files.`,
		Usage: "archive hash [flags] [file...]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("hash", pflag.ContinueOnError)
			flagSet.BoolVar(&jsonc, "jsonc", false, "accept comments and trailing commas")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Identity of a document on stdin",
				Command:     "archive hash < doc.json",
			},
			{
				Description: "Compare two documents by content",
				Command:     "archive hash a.json b.json",
			},
		},
		Run: func(args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = []string{""}
			}
			for _, path := range paths {
				v, err := docfile.Load(path, jsonc)
				if err != nil {
					return err
				}
				digest, err := docid.HashDocument(v)
				if err != nil {
					return err
				}
				if path == "" {
					fmt.Println(digest)
				} else {
					fmt.Printf("%s  %s\n", digest, path)
				}
			}
			return nil
		},
	}
}
