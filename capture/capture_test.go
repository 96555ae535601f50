// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"filippo.io/age"
)

// sessionRecords is a short gateway+voice session in observation
// order.
func sessionRecords() []Record {
	base := time.Date(2026, time.March, 14, 9, 26, 53, 589793214, time.UTC)
	at := func(offset time.Duration) time.Time { return base.Add(offset) }

	return []Record{
		{at(0), DirectionRx, SocketGateway, []byte(`{"op":10,"d":{"heartbeat_interval":41250}}`)},
		{at(12 * time.Millisecond), DirectionTx, SocketGateway, []byte(`{"op":2,"d":{"token":"Bot OTc3","properties":{"$os":"linux","$browser":"accord","$device":"accord"}}}`)},
		{at(190 * time.Millisecond), DirectionRx, SocketGateway, []byte(`{"op":0,"s":1,"t":"READY","d":{"v":9,"user":{"id":"775577821269393419","username":"accord-probe","discriminator":"6177"},"guilds":[],"session_id":"svha3d2qbsm2qvi4"}}`)},
		{at(41 * time.Second), DirectionTx, SocketGateway, []byte(`{"op":1,"d":1}`)},
		{at(41*time.Second + 44*time.Millisecond), DirectionRx, SocketGateway, []byte(`{"op":11,"d":null}`)},
		{at(55 * time.Second), DirectionRx, SocketVoice, []byte(`{"op":8,"d":{"heartbeat_interval":13750.0}}`)},
		{at(55*time.Second + 9*time.Millisecond), DirectionTx, SocketVoice, []byte(`{"op":3,"d":1501184119561}`)},
	}
}

func writeCapture(t *testing.T, path string, options WriterOptions, records []Record) {
	t.Helper()
	writer, err := Create(path, options)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	for _, record := range records {
		if err := writer.Append(record); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func compareRecords(t *testing.T, got, want []Record) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("read %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Time.Equal(want[i].Time) {
			t.Errorf("record %d: time = %v, want %v", i, got[i].Time, want[i].Time)
		}
		if got[i].Direction != want[i].Direction {
			t.Errorf("record %d: direction = %v, want %v", i, got[i].Direction, want[i].Direction)
		}
		if got[i].Socket != want[i].Socket {
			t.Errorf("record %d: socket = %v, want %v", i, got[i].Socket, want[i].Socket)
		}
		if !bytes.Equal(got[i].Frame, want[i].Frame) {
			t.Errorf("record %d: frame = %s, want %s", i, got[i].Frame, want[i].Frame)
		}
	}
}

func TestCaptureRoundtrip(t *testing.T) {
	records := sessionRecords()
	created := time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)

	for _, codec := range []Codec{CodecNone, CodecZstd, CodecLZ4} {
		t.Run(codec.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "session.acap")
			writeCapture(t, path, WriterOptions{
				Codec:   codec,
				Labels:  map[string]string{"shard": "0", "bot": "accord-probe"},
				Created: created,
			}, records)

			reader, err := Open(path)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer reader.Close()

			if reader.Codec != codec {
				t.Errorf("Codec = %v, want %v", reader.Codec, codec)
			}
			if !reader.Header.Created.Equal(created) {
				t.Errorf("Created = %v, want %v", reader.Header.Created, created)
			}
			if reader.Header.Labels["bot"] != "accord-probe" {
				t.Errorf(`Labels["bot"] = %q, want "accord-probe"`, reader.Header.Labels["bot"])
			}

			got, err := reader.ReadAll()
			if err != nil {
				t.Fatalf("ReadAll failed: %v", err)
			}
			compareRecords(t, got, records)
			if reader.Count() != uint64(len(records)) {
				t.Errorf("Count = %d, want %d", reader.Count(), len(records))
			}
		})
	}
}

func TestCaptureEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.acap")
	writeCapture(t, path, WriterOptions{}, nil)

	reader, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer reader.Close()

	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("read %d records from an empty capture", len(records))
	}
}

func TestCaptureWriterLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locked.acap")

	first, err := Create(path, WriterOptions{})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := Create(path, WriterOptions{}); err == nil {
		t.Fatal("second Create on a locked capture succeeded")
	}

	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// The lock is released with the file; the path can be rewritten.
	second, err := Create(path, WriterOptions{})
	if err != nil {
		t.Fatalf("Create after Close failed: %v", err)
	}
	if err := second.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestCaptureAppendAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed.acap")
	writer, err := Create(path, WriterOptions{})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := writer.Append(Record{Frame: []byte(`{"op":1,"d":2}`)}); err == nil {
		t.Fatal("Append after Close succeeded")
	}
}

func TestCaptureDigestDetectsTampering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tampered.acap")
	writeCapture(t, path, WriterOptions{}, sessionRecords())

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	// The last trailer byte is part of the stored digest.
	data[len(data)-1] ^= 0xff
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	reader, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer reader.Close()

	if _, err := reader.ReadAll(); err == nil {
		t.Fatal("ReadAll accepted a capture with a corrupted digest")
	} else if !strings.Contains(err.Error(), "digest") {
		t.Errorf("error = %q, want a digest mismatch", err)
	}
}

func TestCaptureTruncation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cut.acap")
	writeCapture(t, path, WriterOptions{}, sessionRecords())

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if err := os.WriteFile(path, data[:len(data)-50], 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	reader, err := Open(path)
	if err != nil {
		// Acceptable: the cut can leave too few bytes for a trailer.
		return
	}
	defer reader.Close()
	if _, err := reader.ReadAll(); err == nil {
		t.Fatal("ReadAll accepted a truncated capture")
	}
}

func TestCaptureVersionCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.acap")
	writeCapture(t, path, WriterOptions{}, nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	data[5] = captureVersion + 1
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err = Open(path)
	if err == nil {
		t.Fatal("Open accepted a capture from a future format version")
	}
	if !strings.Contains(err.Error(), "version") {
		t.Errorf("error = %q, want a version complaint", err)
	}
}

func TestOpenRejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("shopping list: coffee\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("Open accepted a file that is not a capture")
	}
}

func TestCaptureEncryption(t *testing.T) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatalf("GenerateX25519Identity failed: %v", err)
	}
	records := sessionRecords()

	path := filepath.Join(t.TempDir(), "secret.acap")
	writeCapture(t, path, WriterOptions{
		Codec:      CodecZstd,
		Recipients: []string{identity.Recipient().String()},
	}, records)

	// Without an identity the capture must not open, and the raw
	// file must not leak frame text.
	if _, err := Open(path); err == nil {
		t.Fatal("Open succeeded on an encrypted capture without an identity")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if bytes.Contains(raw, []byte("heartbeat_interval")) {
		t.Error("encrypted capture contains plaintext frame content")
	}

	wrong, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatalf("GenerateX25519Identity failed: %v", err)
	}
	if _, err := Open(path, wrong.String()); err == nil {
		t.Fatal("Open succeeded with a non-matching identity")
	}

	reader, err := Open(path, identity.String())
	if err != nil {
		t.Fatalf("Open with matching identity failed: %v", err)
	}
	defer reader.Close()
	got, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	compareRecords(t, got, records)
}

func TestCreateRejectsBadRecipient(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.acap")
	_, err := Create(path, WriterOptions{Recipients: []string{"not-an-age-key"}})
	if err == nil {
		t.Fatal("Create accepted a malformed recipient key")
	}
	// Recipients are validated before the file is touched.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Create left a file behind: %v", err)
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"codec none", CodecNone.String(), "none"},
		{"codec zstd", CodecZstd.String(), "zstd"},
		{"codec lz4", CodecLZ4.String(), "lz4"},
		{"codec unknown", Codec(9).String(), "unknown(9)"},
		{"direction rx", DirectionRx.String(), "rx"},
		{"direction tx", DirectionTx.String(), "tx"},
		{"socket gateway", SocketGateway.String(), "gateway"},
		{"socket voice", SocketVoice.String(), "voice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestEnumParsing(t *testing.T) {
	codec, err := ParseCodec("zstd")
	if err != nil || codec != CodecZstd {
		t.Errorf("ParseCodec(zstd) = %v, %v", codec, err)
	}
	if _, err := ParseCodec("brotli"); err == nil {
		t.Error("ParseCodec accepted an unknown codec")
	}

	direction, err := ParseDirection("tx")
	if err != nil || direction != DirectionTx {
		t.Errorf("ParseDirection(tx) = %v, %v", direction, err)
	}
	if _, err := ParseDirection("both"); err == nil {
		t.Error("ParseDirection accepted an unknown direction")
	}

	socket, err := ParseSocket("voice")
	if err != nil || socket != SocketVoice {
		t.Errorf("ParseSocket(voice) = %v, %v", socket, err)
	}
	if _, err := ParseSocket("udp"); err == nil {
		t.Error("ParseSocket accepted an unknown socket")
	}
}
