// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Format identifies how frames are stored in an input file. Besides
// its own container format, the package reads two interchange forms:
// JSONL with one frame per line, and raw zlib-stream transport dumps.
type Format uint8

const (
	FormatCapture Format = iota
	FormatJSONL
	FormatZlibStream
)

func (f Format) String() string {
	switch f {
	case FormatCapture:
		return "capture"
	case FormatJSONL:
		return "jsonl"
	case FormatZlibStream:
		return "zlib-stream"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(f))
	}
}

// ParseFormat is the inverse of Format.String, for flag values.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "capture":
		return FormatCapture, nil
	case "jsonl":
		return FormatJSONL, nil
	case "zlib-stream":
		return FormatZlibStream, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want capture, jsonl, or zlib-stream)", s)
	}
}

// DetectFormat guesses the format of a file from its extension and
// first byte. Captures open with their magic or an age header, JSONL
// with '{', and zlib streams with the 0x78 deflate header.
func DetectFormat(path string) (Format, error) {
	if strings.HasSuffix(path, ".acap") {
		return FormatCapture, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	first := make([]byte, 1)
	if _, err := file.Read(first); err != nil {
		return 0, fmt.Errorf("cannot determine format of empty file %s", path)
	}
	switch first[0] {
	case '{':
		return FormatJSONL, nil
	case 0x78:
		return FormatZlibStream, nil
	case 'A', 'a':
		return FormatCapture, nil
	}
	return 0, fmt.Errorf("cannot determine format of %s", path)
}

// File is a frame file loaded into memory. Header and Codec are only
// meaningful for FormatCapture; the interchange formats carry no
// metadata, so their records get a zero timestamp and are assumed to
// be received gateway traffic.
type File struct {
	Format  Format
	Codec   Codec
	Header  Header
	Records []Record
}

// LoadFile reads path in the given format. Identities are age
// identity strings for encrypted captures; the other formats ignore
// them.
func LoadFile(path string, format Format, identities ...string) (*File, error) {
	switch format {
	case FormatCapture:
		return loadCaptureFile(path, identities)
	case FormatJSONL:
		return loadJSONLFile(path)
	case FormatZlibStream:
		return loadZlibStreamFile(path)
	default:
		return nil, fmt.Errorf("unknown format %d", format)
	}
}

func loadCaptureFile(path string, identities []string) (*File, error) {
	reader, err := Open(path, identities...)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return &File{
		Format:  FormatCapture,
		Codec:   reader.Codec,
		Header:  reader.Header,
		Records: records,
	}, nil
}

func loadJSONLFile(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// Ready frames for large bots run to megabytes, far past the
	// default scanner token limit.
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 16<<20)

	var records []Record
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		records = append(records, Record{
			Direction: DirectionRx,
			Socket:    SocketGateway,
			Frame:     append([]byte(nil), line...),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &File{Format: FormatJSONL, Records: records}, nil
}

func loadZlibStreamFile(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	frames, err := ZlibStreamFrames(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	records := make([]Record, len(frames))
	for i, frame := range frames {
		records[i] = Record{
			Direction: DirectionRx,
			Socket:    SocketGateway,
			Frame:     frame,
		}
	}
	return &File{Format: FormatZlibStream, Records: records}, nil
}
