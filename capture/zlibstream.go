// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// ZlibStreamFrames inflates a raw zlib-stream transport dump and
// splits it into individual JSON frames. A zlib-stream connection
// shares one zlib context for its whole life and flushes after each
// message, so a byte-for-byte dump of the socket is a single zlib
// stream whose plaintext is the concatenation of every JSON frame.
//
// Dumps cut mid-connection carry no final block; once the flushed
// data is drained the inflater reports an unexpected EOF, which is
// treated as the end of the dump. A frame truncated by the cut is
// discarded.
func ZlibStreamFrames(r io.Reader) ([][]byte, error) {
	inflater, err := zlib.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening zlib stream: %w", err)
	}
	defer inflater.Close()

	var frames [][]byte
	decoder := json.NewDecoder(inflater)
	for {
		var frame json.RawMessage
		err := decoder.Decode(&frame)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return frames, nil
		}
		if err != nil {
			return frames, fmt.Errorf("splitting frame %d: %w", len(frames), err)
		}
		frames = append(frames, []byte(frame))
	}
}
