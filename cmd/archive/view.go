// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/archive/cmd/archive/cli"
	"github.com/bureau-foundation/archive/lib/docfile"
	"github.com/bureau-foundation/archive/lib/document"
)

func viewCommand() *cli.Command {
	var jsonc bool

	return &cli.Command{
		Name:    "view",
		Summary: "Render a document as YAML",
		Description: `Render a document as YAML for human reading. Member order is
preserved, so the output follows the document rather than an
alphabetical re-sort.`,
		Usage: "archive view [flags] [file]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("view", pflag.ContinueOnError)
			flagSet.BoolVar(&jsonc, "jsonc", false, "accept comments and trailing commas")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "View a document as YAML",
				Command:     "archive view doc.json",
			},
		},
		Run: func(args []string) error {
			path, err := singlePath(args)
			if err != nil {
				return err
			}
			v, err := docfile.Load(path, jsonc)
			if err != nil {
				return err
			}

			encoder := yaml.NewEncoder(os.Stdout)
			encoder.SetIndent(2)
			if err := encoder.Encode(yamlNode(v)); err != nil {
				return fmt.Errorf("encode YAML: %w", err)
			}
			return encoder.Close()
		},
	}
}

// yamlNode converts a document tree to a yaml.Node tree. Going
// through nodes rather than Go maps keeps member order intact.
func yamlNode(v *document.Value) *yaml.Node {
	switch v.Kind() {
	case document.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}

	case document.KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.Bool())}

	case document.KindNumber:
		literal := v.NumberLiteral()
		tag := "!!int"
		if strings.ContainsAny(literal, ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: literal}

	case document.KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Str()}

	case document.KindArray:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, element := range v.Elements() {
			node.Content = append(node.Content, yamlNode(element))
		}
		return node

	case document.KindObject:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, member := range v.Members() {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: member.Key}
			node.Content = append(node.Content, key, yamlNode(member.Value))
		}
		return node

	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
