// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package voice

import (
	"encoding/json"
	"fmt"

	"github.com/accordlib/accord/discord"
)

// Command is one outbound voice control frame. Like the gateway's
// commands, these are send-only.
type Command interface {
	// Op returns the operation code the command is framed under.
	Op() Op

	isCommand()
}

// MarshalCommand wraps a command in the wire envelope, operation code
// first.
func MarshalCommand(cmd Command) ([]byte, error) {
	d, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("encoding voice op %d: %w", cmd.Op(), err)
	}
	return json.Marshal(envelope{Op: cmd.Op(), D: d})
}

type envelope struct {
	Op Op              `json:"op"`
	D  json.RawMessage `json:"d"`
}

// IsHeartbeat reports whether cmd is a heartbeat.
func IsHeartbeat(cmd Command) bool {
	_, ok := cmd.(Heartbeat)
	return ok
}

// Heartbeat carries a nonce the server echoes back in HeartbeatAck.
// Its payload is the bare number.
type Heartbeat uint64

func (Heartbeat) Op() Op     { return OpHeartbeat }
func (Heartbeat) isCommand() {}

// Identify opens a voice session using the token and session handed
// over by the main gateway. The guild travels as server_id on this
// channel; the rename is the protocol's, not ours.
type Identify struct {
	GuildID   discord.GuildID `json:"server_id"`
	UserID    discord.UserID  `json:"user_id"`
	SessionID string          `json:"session_id"`
	Token     string          `json:"token"`
}

func (*Identify) Op() Op     { return OpIdentify }
func (*Identify) isCommand() {}

// Resume picks up a dropped voice session.
type Resume struct {
	GuildID   discord.GuildID `json:"server_id"`
	SessionID string          `json:"session_id"`
	Token     string          `json:"token"`
}

func (*Resume) Op() Op     { return OpResume }
func (*Resume) isCommand() {}

// SelectProtocol commits to a transport address and encryption mode
// from the Ready offer.
type SelectProtocol struct {
	Protocol string             `json:"protocol"`
	Data     SelectProtocolData `json:"data"`
}

// SelectProtocolData is the transport half of SelectProtocol: where
// the server should send media, and how it will be sealed.
type SelectProtocolData struct {
	Address string `json:"address"`
	Port    uint16 `json:"port"`
	Mode    string `json:"mode"`
}

func (*SelectProtocol) Op() Op     { return OpSelectProtocol }
func (*SelectProtocol) isCommand() {}

// Speaking doubles as a command; the client sends the same shape it
// receives.
func (*Speaking) Op() Op     { return OpSpeaking }
func (*Speaking) isCommand() {}
