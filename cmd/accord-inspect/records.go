// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log/slog"

	"github.com/accordlib/accord/capture"
)

// loadRecords reads the input file, resolving the --format flag value,
// and logs capture metadata for the verbose mode.
func loadRecords(logger *slog.Logger, path, formatFlag string, identities []string) ([]capture.Record, error) {
	var (
		format capture.Format
		err    error
	)
	if formatFlag == "auto" {
		format, err = capture.DetectFormat(path)
	} else {
		format, err = capture.ParseFormat(formatFlag)
	}
	if err != nil {
		return nil, err
	}

	file, err := capture.LoadFile(path, format, identities...)
	if err != nil {
		return nil, err
	}
	if file.Format == capture.FormatCapture {
		logger.Debug("opened capture",
			"codec", file.Codec.String(),
			"created", file.Header.Created,
			"labels", file.Header.Labels)
	}
	return file.Records, nil
}
