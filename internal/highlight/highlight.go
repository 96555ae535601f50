// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

// Package highlight pretty-prints JSON frames for terminal output.
package highlight

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// Indent returns raw pretty-printed with two-space indentation. Input
// that is not valid JSON is returned unchanged.
func Indent(raw []byte) string {
	var buffer bytes.Buffer
	if err := json.Indent(&buffer, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buffer.String()
}

// JSON returns raw pretty-printed and ANSI-highlighted for a
// 256-color terminal. Falls back to plain indented text when
// highlighting fails.
func JSON(raw []byte) string {
	indented := Indent(raw)
	var buffer strings.Builder
	if err := quick.Highlight(&buffer, indented, "json", "terminal256", "monokai"); err != nil {
		return indented
	}
	out := buffer.String()
	// The tokenizer may append a trailing newline the input lacked.
	if !strings.HasSuffix(indented, "\n") {
		out = strings.TrimRight(out, "\n")
	}
	return out
}
