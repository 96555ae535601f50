// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package voice

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/accordlib/accord/discord"
)

// Event is one decoded voice control frame. The set of
// implementations is closed; frames with an operation code outside
// the dispatch table decode to Unknown.
type Event interface {
	isEvent()
}

// UnexpectedEventError reports an Expect helper applied to the wrong
// event variant. The frame itself decoded fine.
type UnexpectedEventError struct {
	// Want names the expected variant.
	Want string
	// Got is the event actually decoded.
	Got Event
}

func (e *UnexpectedEventError) Error() string {
	return fmt.Sprintf("expected %s, got %T", e.Want, e.Got)
}

// ExpectHello asserts that ev is the Hello handshake frame.
func ExpectHello(ev Event) (*Hello, error) {
	hello, ok := ev.(*Hello)
	if !ok {
		return nil, &UnexpectedEventError{Want: "Hello", Got: ev}
	}
	return hello, nil
}

// ExpectReady asserts that ev is the Ready frame.
func ExpectReady(ev Event) (*Ready, error) {
	ready, ok := ev.(*Ready)
	if !ok {
		return nil, &UnexpectedEventError{Want: "Ready", Got: ev}
	}
	return ready, nil
}

// ExpectResumed asserts that ev confirms a resume.
func ExpectResumed(ev Event) error {
	if _, ok := ev.(*Resumed); !ok {
		return &UnexpectedEventError{Want: "Resumed", Got: ev}
	}
	return nil
}

// IsHeartbeatAck reports whether ev acknowledges a heartbeat.
func IsHeartbeatAck(ev Event) bool {
	_, ok := ev.(*HeartbeatAck)
	return ok
}

// IsReadyKind reports whether ev completes a connection attempt:
// Ready for a fresh session, Resumed for a resumed one.
func IsReadyKind(ev Event) bool {
	switch ev.(type) {
	case *Ready, *Resumed:
		return true
	}
	return false
}

// Hello is the handshake frame (op 8). The interval arrives as a
// float on the wire, a quirk the reference service has never fixed.
type Hello struct {
	HeartbeatInterval float64 `json:"heartbeat_interval"`
}

func (*Hello) isEvent() {}

// Ready carries the media transport parameters (op 2). Modes lists
// the encryption modes the server offers.
type Ready struct {
	SSRC  uint32   `json:"ssrc"`
	IP    string   `json:"ip"`
	Port  uint16   `json:"port"`
	Modes []string `json:"modes"`
}

func (*Ready) isEvent() {}

// Resumed confirms a session resume (op 9). Its payload is discarded.
type Resumed struct{}

func (*Resumed) isEvent() {}

// HeartbeatAck echoes a heartbeat nonce back (op 6). The payload is
// the bare number.
type HeartbeatAck struct {
	Nonce uint64
}

func (*HeartbeatAck) isEvent() {}

// UnmarshalJSON reads the bare nonce payload.
func (h *HeartbeatAck) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &h.Nonce)
}

// SessionDescription delivers the negotiated mode and the media
// encryption key (op 4).
type SessionDescription struct {
	Mode      string   `json:"mode"`
	SecretKey [32]byte `json:"secret_key"`
}

func (*SessionDescription) isEvent() {}

// String omits the key. Session descriptions end up in logs; the key
// must not.
func (d *SessionDescription) String() string {
	return fmt.Sprintf("SessionDescription(mode=%s)", d.Mode)
}

// LogValue keeps the key out of structured log output too.
func (d *SessionDescription) LogValue() slog.Value {
	return slog.GroupValue(slog.String("mode", d.Mode))
}

// Speaking marks an SSRC as transmitting (op 5). It flows both ways:
// the server announces other participants, and the client sends the
// same shape as a command before transmitting.
type Speaking struct {
	Speaking discord.SpeakingFlags `json:"speaking"`
	Delay    uint32                `json:"delay"`
	SSRC     uint32                `json:"ssrc"`
}

func (*Speaking) isEvent() {}

// Unknown is the escape hatch for operation codes outside the
// dispatch table. The payload was consumed and discarded.
type Unknown struct {
	Op Op
}

func (*Unknown) isEvent() {}
