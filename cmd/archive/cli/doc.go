// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework for the archive tool: a
// declarative command tree with pflag flag parsing, structured help
// output, and typo suggestions for unknown commands and flags.
package cli
