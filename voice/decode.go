// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package voice

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/internal/jsonscan"
)

// UnmarshalEvent decodes one inbound voice frame. The envelope rules
// match the gateway's: op and d exactly once each, in any order,
// unknown keys ignored. There is no type tag and no sequence, so the
// result is the bare event.
func UnmarshalEvent(data []byte) (Event, error) {
	var (
		opSeen bool
		op     uint64
		dSeen  bool
		d      json.RawMessage
	)

	scan := jsonscan.New(data)
	for scan.Next() {
		switch scan.Key() {
		case "op":
			if opSeen {
				return nil, &discord.DuplicateFieldError{Field: "op"}
			}
			opSeen = true
			raw := scan.Value()
			v, err := strconv.ParseUint(string(raw), 10, 8)
			if err != nil {
				reason := "not an unsigned integer"
				if errors.Is(err, strconv.ErrRange) {
					reason = "exceeds 8 bits"
				}
				return nil, &discord.InvalidValueError{
					Type:   "op",
					Value:  string(raw),
					Reason: reason,
				}
			}
			op = v
		case "d":
			if dSeen {
				return nil, &discord.DuplicateFieldError{Field: "d"}
			}
			dSeen = true
			d = scan.Value()
		}
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("malformed frame: %w", err)
	}
	if !dSeen {
		return nil, &discord.MissingFieldError{Field: "d"}
	}
	if !opSeen {
		return nil, &discord.MissingFieldError{Field: "op"}
	}
	if string(d) == "null" {
		d = nil
	}

	switch Op(op) {
	case OpReady:
		return decodePayload(op, d, &Ready{})
	case OpSessionDescription:
		return decodePayload(op, d, &SessionDescription{})
	case OpSpeaking:
		return decodePayload(op, d, &Speaking{})
	case OpHeartbeatAck:
		return decodePayload(op, d, &HeartbeatAck{})
	case OpHello:
		return decodePayload(op, d, &Hello{})
	case OpResumed:
		return &Resumed{}, nil
	default:
		return &Unknown{Op: Op(op)}, nil
	}
}

// decodePayload fills ev from d, treating a null payload as absent.
func decodePayload(op uint64, d json.RawMessage, ev Event) (Event, error) {
	if d == nil {
		return nil, &discord.MissingFieldError{Field: "d"}
	}
	if err := json.Unmarshal(d, ev); err != nil {
		return nil, fmt.Errorf("decoding voice op %d: %w", op, err)
	}
	return ev, nil
}
