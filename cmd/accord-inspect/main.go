// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

// accord-inspect prints the frames of a captured gateway session.
//
// The input is a .acap capture file, a JSONL file with one frame per
// line, or a raw zlib-stream transport dump. Each frame is decoded
// with the accord codecs and printed as a one-line summary, or as
// pretty JSON with --json. Frames can be filtered by event type,
// guild, socket, and direction, and sensitive payload fields can be
// stripped with a YAML redaction rules file before anything reaches
// the terminal.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/accordlib/accord/internal/highlight"
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
		format     string
		jsonOutput bool
		events     []string
		guild      string
		socket     string
		direction  string
		redactPath string
		identities []string
		noColor    bool
		verbose    bool
	)

	flagSet := pflag.NewFlagSet("accord-inspect", pflag.ContinueOnError)
	flagSet.StringVar(&format, "format", "auto", "input format: auto, capture, jsonl, or zlib-stream")
	flagSet.BoolVar(&jsonOutput, "json", false, "print each frame as pretty JSON after its summary line")
	flagSet.StringSliceVar(&events, "event", nil, "only show these gateway event types (repeatable)")
	flagSet.StringVar(&guild, "guild", "", "only show events belonging to this guild id")
	flagSet.StringVar(&socket, "socket", "", "only show frames from one socket: gateway or voice")
	flagSet.StringVar(&direction, "direction", "", "only show frames going one way: rx or tx")
	flagSet.StringVar(&redactPath, "redact", "", "YAML redaction rules applied to frames before display")
	flagSet.StringSliceVar(&identities, "identity", nil, "age identity for encrypted captures (repeatable)")
	flagSet.BoolVar(&noColor, "no-color", false, "disable ANSI color")
	flagSet.BoolVar(&verbose, "verbose", false, "log capture details and undecodable frames")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match other accord binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("accord-inspect")
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
		return fmt.Errorf("expected exactly one input file, got %d", len(args))
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	filter, err := buildFilter(events, guild, socket, direction)
	if err != nil {
		return err
	}

	var rules *redactRules
	if redactPath != "" {
		rules, err = loadRedactRules(redactPath)
		if err != nil {
			return err
		}
	}

	records, err := loadRecords(logger, args[0], format, identities)
	if err != nil {
		return err
	}

	color := !noColor && term.IsTerminal(int(os.Stdout.Fd()))
	out := bufio.NewWriter(os.Stdout)

	for _, record := range records {
		if !filter.keepRecord(record) {
			continue
		}
		frame := record.Frame
		if rules != nil {
			frame = rules.apply(frame)
		}

		summary, event, err := summarize(record, frame)
		if err != nil {
			logger.Warn("undecodable frame",
				"socket", record.Socket.String(), "error", err)
			if filter.wantsEvent() {
				continue
			}
			summary = fmt.Sprintf("undecodable frame (%v)", err)
		} else if !filter.keepEvent(record.Socket, event) {
			continue
		}

		fmt.Fprintln(out, recordLine(record, summary))
		if jsonOutput {
			if color {
				fmt.Fprintln(out, highlight.JSON(frame))
			} else {
				fmt.Fprintln(out, highlight.Indent(frame))
			}
			fmt.Fprintln(out)
		}
	}
	return out.Flush()
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `accord-inspect prints the frames of a captured gateway session.

The input is a .acap capture, a JSONL file with one frame per line, or
a raw zlib-stream transport dump (--format overrides detection). Each
frame prints as a one-line summary; --json adds the full payload,
syntax-highlighted when stdout is a terminal.

Usage:
  accord-inspect [flags] <file>

Examples:
  # Summarize a capture
  accord-inspect session.acap

  # Only message traffic in one guild, with payloads
  accord-inspect --event MESSAGE_CREATE --event MESSAGE_DELETE \
      --guild 290926798626357250 --json session.acap

  # Strip tokens before sharing
  accord-inspect --redact redact.yaml --json session.acap > clean.txt

  # Read an encrypted capture
  accord-inspect --identity AGE-SECRET-KEY-1... session.acap

  # Ingest a raw zlib-stream dump
  accord-inspect --format zlib-stream gateway.dump

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
