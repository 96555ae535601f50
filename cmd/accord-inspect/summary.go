// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/accordlib/accord/capture"
	"github.com/accordlib/accord/gateway"
	"github.com/accordlib/accord/voice"
)

// summarize renders a one-line description of a frame. For received
// gateway frames it also returns the decoded event so the event and
// guild filters can see it.
func summarize(record capture.Record, frame []byte) (string, gateway.Event, error) {
	if record.Direction == capture.DirectionTx {
		return summarizeTx(record.Socket, frame)
	}

	switch record.Socket {
	case capture.SocketVoice:
		event, err := voice.UnmarshalEvent(frame)
		if err != nil {
			return "", nil, err
		}
		return voiceEventName(event), nil, nil
	default:
		payload, err := gateway.UnmarshalPayload(frame)
		if err != nil {
			return "", nil, err
		}
		return payload.String(), payload.Event, nil
	}
}

// summarizeTx labels a client-sent frame by its operation code. These
// frames never reach the inbound decoders, which would report every
// command as unknown.
func summarizeTx(socket capture.Socket, frame []byte) (string, gateway.Event, error) {
	var envelope struct {
		Op *uint8          `json:"op"`
		D  json.RawMessage `json:"d"`
	}
	if err := json.Unmarshal(frame, &envelope); err != nil {
		return "", nil, fmt.Errorf("malformed frame: %w", err)
	}
	if envelope.Op == nil {
		return "", nil, fmt.Errorf("frame has no op")
	}

	var (
		name      string
		heartbeat bool
	)
	if socket == capture.SocketVoice {
		op := voice.Op(*envelope.Op)
		name = op.String()
		heartbeat = op == voice.OpHeartbeat
	} else {
		op := gateway.Op(*envelope.Op)
		name = op.String()
		heartbeat = op == gateway.OpHeartbeat
	}

	// Heartbeat payloads are a bare sequence or nonce, small enough
	// to show inline.
	if heartbeat && len(envelope.D) > 0 && string(envelope.D) != "null" {
		return fmt.Sprintf("%s(%s)", name, envelope.D), nil, nil
	}
	return name, nil, nil
}

// voiceEventName names a decoded voice event. Most voice events have
// no Stringer, so the concrete type stands in.
func voiceEventName(event voice.Event) string {
	if unknown, ok := event.(*voice.Unknown); ok {
		return fmt.Sprintf("Unknown(op=%d)", unknown.Op)
	}
	if stringer, ok := event.(fmt.Stringer); ok {
		return stringer.String()
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", event), "*voice.")
}

// recordLine prefixes the summary with the record's metadata columns.
// Synthesized records carry no timestamp and skip the time column.
func recordLine(record capture.Record, summary string) string {
	var b strings.Builder
	if !record.Time.IsZero() {
		b.WriteString(record.Time.UTC().Format("15:04:05.000 "))
	}
	fmt.Fprintf(&b, "%s %-7s %s", record.Direction, record.Socket, summary)
	return b.String()
}
