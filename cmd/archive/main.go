// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// The archive command works with archived JSON documents: formatting,
// validation, content hashing, YAML viewing, and conversion to and
// from the compact CBOR form.
package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/archive/cmd/archive/cborcmd"
	"github.com/bureau-foundation/archive/cmd/archive/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return root().Execute(os.Args[1:])
}

func root() *cli.Command {
	return &cli.Command{
		Name:    "archive",
		Summary: "Work with archived JSON documents",
		Description: `Tooling for archived JSON documents: the hierarchical format produced
by the archive serialization library.

Documents are read from a file argument or stdin. Compressed input
(zstd or lz4 frames) is decompressed transparently; JSONC input
(comments, trailing commas) is accepted with --jsonc or a .jsonc
extension.`,
		Subcommands: []*cli.Command{
			fmtCommand(),
			checkCommand(),
			viewCommand(),
			hashCommand(),
			cborcmd.Command(),
		},
		Examples: []cli.Example{
			{
				Description: "Reformat a document with 2-space indentation",
				Command:     "archive fmt --indent 2 doc.json",
			},
			{
				Description: "Validate documents",
				Command:     "archive check one.json two.json",
			},
			{
				Description: "Content identity, independent of formatting",
				Command:     "archive hash doc.json",
			},
			{
				Description: "Convert to compact CBOR and back",
				Command:     "archive cbor encode doc.json | archive cbor decode",
			},
		},
	}
}
