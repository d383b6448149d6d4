// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cborcmd

import (
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/archive/cmd/archive/cli"
	"github.com/bureau-foundation/archive/lib/codec"
	"github.com/bureau-foundation/archive/lib/docfile"
)

func diagCommand() *cli.Command {
	return &cli.Command{
		Name:    "diag",
		Summary: "Show CBOR diagnostic notation",
		Description: `Read CBOR and write RFC 8949 Extended Diagnostic Notation to stdout.

Unlike JSON output, diagnostic notation preserves CBOR type
information: integer vs float, byte strings vs text strings, and
tagged values. Use it to inspect the exact wire representation of an
encoded document.`,
		Usage: "archive cbor diag [file]",
		Examples: []cli.Example{
			{
				Description: "Inspect the CBOR form of a document",
				Command:     "archive cbor encode doc.json | archive cbor diag",
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
			return diagnose(data, os.Stdout)
		},
	}
}

// diagnose writes diagnostic notation for data, one line per item.
// For a single document this is one line; for CBOR sequences (RFC
// 8742) it is one line per item.
func diagnose(data []byte, w io.Writer) error {
	if len(data) == 0 {
		return fmt.Errorf("empty input: expected CBOR data")
	}

	remaining := data
	for len(remaining) > 0 {
		notation, rest, err := codec.DiagnoseFirst(remaining)
		if err != nil {
			offset := len(data) - len(remaining)
			return fmt.Errorf("diagnose CBOR at byte %d: %w", offset, err)
		}
		if _, err := fmt.Fprintln(w, notation); err != nil {
			return err
		}
		remaining = rest
	}

	return nil
}
