// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

// Package capture reads and writes .acap session captures: append-only
// containers of gateway and voice frames recorded from a live
// connection, replayable through the accord decoders.
//
// A capture file is a fixed 8-byte prelude (magic, format version,
// compression codec), a CBOR header (creation time, free-form labels),
// a stream of length-framed CBOR records, and a trailer carrying the
// record count and a BLAKE3 digest of the record stream. The record
// stream is optionally zstd- or lz4-compressed, and the whole container
// is optionally age-encrypted to a set of recipients.
package capture

import (
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Container format constants.
const (
	// captureVersion is the format version byte in the prelude.
	// Version 1 is the initial format.
	captureVersion = 1

	// preludeSize is the fixed prelude: 5-byte magic + version byte
	// + codec byte + reserved byte.
	preludeSize = 8

	// trailerSize is the fixed trailer: 8-byte record count +
	// 32-byte BLAKE3 digest of the uncompressed record stream.
	trailerSize = 8 + 32

	// maxRecordSize bounds a single record's encoded length. A
	// gateway frame tops out far below this; anything larger means
	// the length prefix was read from a corrupt or misaligned
	// stream.
	maxRecordSize = 64 << 20
)

// captureMagic is the 5-byte file signature.
var captureMagic = [5]byte{'A', 'C', 'A', 'P', '1'}

// Codec identifies the compression applied to the record stream.
// Stored as a single byte in the prelude.
type Codec uint8

const (
	// CodecNone stores the record stream uncompressed.
	CodecNone Codec = 0

	// CodecZstd compresses the record stream with zstandard at the
	// default level. The usual choice: JSON frames compress 10-20x.
	CodecZstd Codec = 1

	// CodecLZ4 compresses the record stream with the LZ4 frame
	// format. Lower ratio than zstd but cheap enough to run inline
	// with a hot gateway connection.
	CodecLZ4 Codec = 2
)

// String returns the codec's name as used on the command line.
func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecZstd:
		return "zstd"
	case CodecLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// ParseCodec parses a codec from its string representation.
func ParseCodec(name string) (Codec, error) {
	switch name {
	case "none":
		return CodecNone, nil
	case "zstd":
		return CodecZstd, nil
	case "lz4":
		return CodecLZ4, nil
	default:
		return 0, fmt.Errorf("unknown capture codec: %q", name)
	}
}

// Direction records which way a frame travelled on the socket.
type Direction uint8

const (
	// DirectionRx is a frame received from the server.
	DirectionRx Direction = 0

	// DirectionTx is a frame sent by the client.
	DirectionTx Direction = 1
)

// String returns "rx" or "tx".
func (d Direction) String() string {
	switch d {
	case DirectionRx:
		return "rx"
	case DirectionTx:
		return "tx"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(d))
	}
}

// ParseDirection parses a direction from its string representation.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "rx":
		return DirectionRx, nil
	case "tx":
		return DirectionTx, nil
	default:
		return 0, fmt.Errorf("unknown capture direction: %q", name)
	}
}

// Socket records which connection a frame belongs to. A session that
// joins voice runs two sockets at once; their frames interleave in the
// capture in arrival order.
type Socket uint8

const (
	// SocketGateway is the main gateway connection.
	SocketGateway Socket = 0

	// SocketVoice is a voice control connection.
	SocketVoice Socket = 1
)

// String returns "gateway" or "voice".
func (s Socket) String() string {
	switch s {
	case SocketGateway:
		return "gateway"
	case SocketVoice:
		return "voice"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// ParseSocket parses a socket from its string representation.
func ParseSocket(name string) (Socket, error) {
	switch name {
	case "gateway":
		return SocketGateway, nil
	case "voice":
		return SocketVoice, nil
	default:
		return 0, fmt.Errorf("unknown capture socket: %q", name)
	}
}

// Header is the CBOR-encoded capture header written after the prelude.
// It is never compressed or covered by the trailer digest, so tools
// can identify a capture without inflating the record stream.
type Header struct {
	// Created is when the capture was started.
	Created time.Time `cbor:"created"`

	// Labels are free-form key/value annotations: shard number, bot
	// name, library version, whatever the recording tool wants to
	// remember. May be empty.
	Labels map[string]string `cbor:"labels,omitempty"`
}

// Record is one captured frame. Frame holds the raw JSON text exactly
// as it crossed the socket, after transport decompression; it decodes
// with gateway.UnmarshalPayload or voice.UnmarshalEvent according to
// Socket.
type Record struct {
	// Time is when the frame was observed.
	Time time.Time `cbor:"time"`

	// Direction is rx or tx.
	Direction Direction `cbor:"direction"`

	// Socket is gateway or voice.
	Socket Socket `cbor:"socket"`

	// Frame is the raw JSON frame.
	Frame []byte `cbor:"frame"`
}

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. The same logical record
// stream always produces identical bytes, so the trailer digest is
// stable across re-encodes.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured to accept standard CBOR.
// Unknown fields are silently ignored for forward compatibility.
var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	// The default time mode truncates to whole seconds. Frame
	// timestamps need sub-second precision to reconstruct heartbeat
	// timing and event ordering, so encode RFC 3339 text with
	// nanoseconds. An epoch float would wobble at the nanosecond
	// level through float64 and break byte-stable re-encoding.
	encOptions.Time = cbor.TimeRFC3339Nano
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("capture: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("capture: CBOR decoder initialization failed: " + err.Error())
	}
}
