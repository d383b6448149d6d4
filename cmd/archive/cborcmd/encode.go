// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cborcmd

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/archive/cmd/archive/cli"
	"github.com/bureau-foundation/archive/lib/codec"
	"github.com/bureau-foundation/archive/lib/docfile"
)

func encodeCommand() *cli.Command {
	var (
		jsonc    bool
		output   string
		compress string
	)

	return &cli.Command{
		Name:    "encode",
		Summary: "Convert a JSON document to CBOR",
		Description: `Read a JSON document and write the equivalent CBOR using Core
Deterministic Encoding.

Integer literals that fit 64 bits are preserved as CBOR integers, not
floats, so the full int64 and uint64 ranges survive the conversion.

The output is binary. Pipe to "archive cbor diag" or "xxd" to
inspect.`,
		Usage: "archive cbor encode [flags] [file]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
			flagSet.BoolVar(&jsonc, "jsonc", false, "accept comments and trailing commas")
			flagSet.StringVarP(&output, "output", "o", "", "write to file instead of stdout")
			flagSet.StringVar(&compress, "compress", "", "compress output: none, lz4, or zstd")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Encode a document to CBOR",
				Command:     "archive cbor encode doc.json > doc.cbor",
			},
			{
				Description: "Encode and compress for storage",
				Command:     "archive cbor encode --compress zstd -o doc.cbor.zst doc.json",
			},
		},
		Run: func(args []string) error {
			path, err := singlePath(args)
			if err != nil {
				return err
			}
			compression, err := docfile.ParseCompression(compress)
			if err != nil {
				return err
			}

			v, err := docfile.Load(path, jsonc)
			if err != nil {
				return err
			}
			encoded, err := codec.EncodeDocument(v)
			if err != nil {
				return err
			}
			data, err := docfile.Compress(encoded, compression)
			if err != nil {
				return err
			}
			return writeOutput(output, data)
		},
	}
}

// singlePath extracts the optional single file argument, "" meaning
// stdin.
func singlePath(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("expected at most one file argument, got %d", len(args))
	}
}

// writeOutput writes data to the named file, or stdout when path is
// empty.
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
