// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zlib"

	"github.com/accordlib/accord/capture"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRecordsAutoDetectsJSONL(t *testing.T) {
	path := writeTempFile(t, "frames.txt", []byte("{\"op\":11,\"d\":null}\n{\"op\":1,\"d\":41}\n"))

	records, err := loadRecords(discardLogger(), path, "auto", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Socket != capture.SocketGateway || records[0].Direction != capture.DirectionRx {
		t.Errorf("synthesized metadata = %s/%s, want gateway/rx",
			records[0].Socket, records[0].Direction)
	}
}

func TestLoadRecordsFormatOverride(t *testing.T) {
	// A zlib dump whose name gives no hint; the flag picks the format.
	path := filepath.Join(t.TempDir(), "session.raw")
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	compressor := zlib.NewWriter(file)
	if _, err := compressor.Write([]byte(`{"op":11,"d":null}`)); err != nil {
		t.Fatal(err)
	}
	if err := compressor.Close(); err != nil {
		t.Fatal(err)
	}
	if err := file.Close(); err != nil {
		t.Fatal(err)
	}

	records, err := loadRecords(discardLogger(), path, "zlib-stream", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if got := string(records[0].Frame); got != `{"op":11,"d":null}` {
		t.Errorf("frame = %q", got)
	}
}

func TestLoadRecordsRejectsUnknownFormat(t *testing.T) {
	path := writeTempFile(t, "frames.jsonl", []byte(`{"op":11,"d":null}`))
	if _, err := loadRecords(discardLogger(), path, "tar", nil); err == nil {
		t.Fatal("expected an error for an unknown format flag")
	}
}
