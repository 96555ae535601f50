// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zlib"
)

func TestZlibStreamFrames(t *testing.T) {
	frames := []string{
		`{"op":10,"d":{"heartbeat_interval":41250}}`,
		`{"op":0,"s":1,"t":"READY","d":{"v":9}}`,
		`{"op":11,"d":null}`,
	}

	t.Run("clean close", func(t *testing.T) {
		var dump bytes.Buffer
		writer := zlib.NewWriter(&dump)
		for _, frame := range frames {
			if _, err := writer.Write([]byte(frame)); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			if err := writer.Flush(); err != nil {
				t.Fatalf("Flush failed: %v", err)
			}
		}
		if err := writer.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}

		got, err := ZlibStreamFrames(bytes.NewReader(dump.Bytes()))
		if err != nil {
			t.Fatalf("ZlibStreamFrames failed: %v", err)
		}
		assertFrames(t, got, frames)
	})

	t.Run("cut mid-connection", func(t *testing.T) {
		// A live dump carries no zlib final block: the connection
		// died, it was not closed.
		var dump bytes.Buffer
		writer := zlib.NewWriter(&dump)
		for _, frame := range frames {
			writer.Write([]byte(frame))
			if err := writer.Flush(); err != nil {
				t.Fatalf("Flush failed: %v", err)
			}
		}

		got, err := ZlibStreamFrames(bytes.NewReader(dump.Bytes()))
		if err != nil {
			t.Fatalf("ZlibStreamFrames failed: %v", err)
		}
		assertFrames(t, got, frames)
	})

	t.Run("truncated final frame", func(t *testing.T) {
		var dump bytes.Buffer
		writer := zlib.NewWriter(&dump)
		for _, frame := range frames {
			writer.Write([]byte(frame))
			if err := writer.Flush(); err != nil {
				t.Fatalf("Flush failed: %v", err)
			}
		}
		// Half a frame made it out before the cut.
		writer.Write([]byte(`{"op":0,"s":2,"t":"MESSAGE_CRE`))
		if err := writer.Flush(); err != nil {
			t.Fatalf("Flush failed: %v", err)
		}

		got, err := ZlibStreamFrames(bytes.NewReader(dump.Bytes()))
		if err != nil {
			t.Fatalf("ZlibStreamFrames failed: %v", err)
		}
		assertFrames(t, got, frames)
	})

	t.Run("not zlib", func(t *testing.T) {
		if _, err := ZlibStreamFrames(bytes.NewReader([]byte(`{"op":10}`))); err == nil {
			t.Fatal("ZlibStreamFrames accepted plain JSON")
		}
	})
}

func assertFrames(t *testing.T, got [][]byte, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("split %d frames, want %d", len(got), len(want))
	}
	for i := range want {
		if string(got[i]) != want[i] {
			t.Errorf("frame %d = %s, want %s", i, got[i], want[i])
		}
	}
}
