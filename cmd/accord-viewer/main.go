// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

// accord-viewer is an interactive terminal browser for captured
// gateway sessions.
//
// The left pane lists every frame in the capture: timestamp,
// direction, socket, and a one-line summary. The right pane shows
// the selected frame's payload as syntax-highlighted JSON, with
// message content rendered as markdown. A fuzzy filter (press /)
// narrows the list against frame summaries and metadata.
//
// The input is a .acap capture file, a JSONL file with one frame per
// line, or a raw zlib-stream transport dump, the same formats
// accord-inspect reads.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/accordlib/accord/capture"
	"github.com/accordlib/accord/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		formatFlag string
		identities []string
	)

	flagSet := pflag.NewFlagSet("accord-viewer", pflag.ContinueOnError)
	flagSet.StringVar(&formatFlag, "format", "auto", "input format: auto, capture, jsonl, or zlib-stream")
	flagSet.StringSliceVar(&identities, "identity", nil, "age identity for encrypted captures (repeatable)")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match other accord binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("accord-viewer")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	args := flagSet.Args()
	if len(args) != 1 {
		printHelp(flagSet)
		return fmt.Errorf("expected exactly one capture file, got %d", len(args))
	}

	var (
		format capture.Format
		err    error
	)
	if formatFlag == "auto" {
		format, err = capture.DetectFormat(args[0])
	} else {
		format, err = capture.ParseFormat(formatFlag)
	}
	if err != nil {
		return err
	}

	file, err := capture.LoadFile(args[0], format, identities...)
	if err != nil {
		return err
	}

	model := NewModel(args[0], file)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `accord-viewer browses a captured gateway session interactively.

The left pane lists frames; the right pane shows the selected frame's
payload as highlighted JSON. Press / to fuzzy-filter the list, Tab to
move focus between panes, and q to quit.

Usage:
  accord-viewer [flags] <file>

Examples:
  # Browse a capture
  accord-viewer session.acap

  # Read an encrypted capture
  accord-viewer --identity AGE-SECRET-KEY-1... session.acap

  # Ingest a raw zlib-stream dump
  accord-viewer --format zlib-stream gateway.dump

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
