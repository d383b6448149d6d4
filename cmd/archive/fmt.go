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

func fmtCommand() *cli.Command {
	var (
		indent   int
		tab      bool
		compact  bool
		jsonc    bool
		output   string
		compress string
	)

	return &cli.Command{
		Name:    "fmt",
		Summary: "Reformat a document",
		Description: `Parse a document and rewrite it with consistent formatting. Member
order and number literals are preserved exactly; only whitespace
changes.

JSONC input is rewritten as plain JSON: comments and trailing commas
do not survive.`,
		Usage: "archive fmt [flags] [file]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("fmt", pflag.ContinueOnError)
			flagSet.IntVar(&indent, "indent", 4, "spaces per nesting level")
			flagSet.BoolVar(&tab, "tab", false, "indent with tabs instead of spaces")
			flagSet.BoolVarP(&compact, "compact", "c", false, "single-line output, no indentation")
			flagSet.BoolVar(&jsonc, "jsonc", false, "accept comments and trailing commas")
			flagSet.StringVarP(&output, "output", "o", "", "write to file instead of stdout")
			flagSet.StringVar(&compress, "compress", "", "compress output: none, lz4, or zstd")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Reformat to the default 4-space style",
				Command:     "archive fmt doc.json",
			},
			{
				Description: "Strip comments from a JSONC config",
				Command:     "archive fmt --jsonc config.jsonc",
			},
			{
				Description: "Compact and compress for storage",
				Command:     "archive fmt -c --compress zstd -o doc.json.zst doc.json",
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

			config := document.WriterConfig{IndentChar: ' ', IndentWidth: indent}
			if tab {
				config.IndentChar = '\t'
				config.IndentWidth = 1
			}
			if compact {
				config.IndentWidth = 0
			}

			writer := document.NewWriter(nil, config)
			writer.WriteValue(v)
			formatted := append(writer.Bytes(), '\n')

			data, err := docfile.Compress(formatted, compression)
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
