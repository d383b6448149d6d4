// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cborcmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/archive/cmd/archive/cli"
	"github.com/bureau-foundation/archive/lib/codec"
	"github.com/bureau-foundation/archive/lib/docfile"
	"github.com/bureau-foundation/archive/lib/document"
)

func decodeCommand() *cli.Command {
	var (
		compact bool
		output  string
	)

	return &cli.Command{
		Name:    "decode",
		Summary: "Convert CBOR back to a JSON document",
		Description: `Read CBOR and write the equivalent JSON document. Map keys appear in
sorted order, matching the deterministic encoding that produced them.
Byte strings, which JSON cannot carry natively, appear as base64
text.

By default output is pretty-printed with 4-space indentation; use -c
for compact single-line output.`,
		Usage: "archive cbor decode [flags] [file]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("decode", pflag.ContinueOnError)
			flagSet.BoolVarP(&compact, "compact", "c", false, "compact JSON output")
			flagSet.StringVarP(&output, "output", "o", "", "write to file instead of stdout")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Decode a CBOR file to pretty JSON",
				Command:     "archive cbor decode doc.cbor",
			},
			{
				Description: "Round-trip: encode then decode",
				Command:     "archive cbor encode doc.json | archive cbor decode",
			},
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
			formatted, err := decodeToJSON(data, compact)
			if err != nil {
				return err
			}
			return writeOutput(output, formatted)
		},
	}
}

// decodeToJSON converts one CBOR item to JSON text with a trailing
// newline.
func decodeToJSON(data []byte, compact bool) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty input: expected CBOR data")
	}

	config := document.WriterConfig{IndentChar: ' ', IndentWidth: 4}
	if compact {
		config.IndentWidth = 0
	}
	writer := document.NewWriter(nil, config)
	if err := codec.DecodeDocument(data, writer); err != nil {
		return nil, err
	}
	return append(writer.Bytes(), '\n'), nil
}
