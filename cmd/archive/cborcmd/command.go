// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cborcmd implements the "archive cbor" command group:
// conversion between archived JSON documents and their compact CBOR
// form, plus diagnostic inspection of CBOR bytes.
package cborcmd

import (
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/archive/cmd/archive/cli"
	"github.com/bureau-foundation/archive/lib/docfile"
)

// Command returns the "cbor" command group. With no subcommand it
// defaults to decode, so "archive cbor < doc.cbor" just works.
func Command() *cli.Command {
	var compact bool

	return &cli.Command{
		Name:    "cbor",
		Summary: "Convert documents to and from CBOR",
		Description: `Convert between archived JSON documents and CBOR.

The CBOR side uses Core Deterministic Encoding (RFC 8949 §4.2):
sorted map keys, smallest integer encoding. The same document always
produces identical bytes, so CBOR output is safe to hash and compare.
JSON member order does not survive the trip.

With no subcommand, decodes CBOR on stdin to JSON on stdout
(equivalent to "archive cbor decode").`,
		Subcommands: []*cli.Command{
			encodeCommand(),
			decodeCommand(),
			diagCommand(),
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("cbor", pflag.ContinueOnError)
			flagSet.BoolVarP(&compact, "compact", "c", false, "compact JSON output")
			return flagSet
		},
		Run: func(args []string) error {
			path, err := singlePath(args)
			if err != nil {
				return err
			}
			data, err := docfile.Read(path)
			if err != nil {
				return err
			}
			output, err := decodeToJSON(data, compact)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(output)
			return err
		},
		Examples: []cli.Example{
			{
				Description: "Convert a document to CBOR",
				Command:     "archive cbor encode doc.json > doc.cbor",
			},
			{
				Description: "Decode CBOR back to JSON",
				Command:     "archive cbor doc.cbor",
			},
			{
				Description: "Inspect CBOR structure",
				Command:     "archive cbor diag doc.cbor",
			},
		},
	}
}
