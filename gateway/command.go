// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/accordlib/accord/discord"
)

// Command is one outbound gateway frame. Commands are only ever sent,
// never received, so the codec is one-way: MarshalCommand and no
// decode counterpart.
type Command interface {
	fmt.Stringer

	// Op returns the operation code the command is framed under.
	Op() Op

	isCommand()
}

// MarshalCommand wraps a command in the wire envelope. The operation
// code always precedes the payload, matching the frames the reference
// service itself emits.
func MarshalCommand(cmd Command) ([]byte, error) {
	d, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", cmd, err)
	}
	return json.Marshal(envelope{Op: cmd.Op(), D: d})
}

type envelope struct {
	Op Op              `json:"op"`
	D  json.RawMessage `json:"d"`
}

// IsHeartbeat reports whether cmd is a heartbeat, the one command
// transports tend to treat specially (rate bookkeeping, quiet
// logging).
func IsHeartbeat(cmd Command) bool {
	_, ok := cmd.(Heartbeat)
	return ok
}

// Heartbeat carries the last dispatch sequence number the client
// processed. Its payload is the bare number.
type Heartbeat uint64

func (Heartbeat) Op() Op     { return OpHeartbeat }
func (Heartbeat) isCommand() {}

func (h Heartbeat) String() string {
	return fmt.Sprintf("Heartbeat(%d)", uint64(h))
}

// Identify opens a fresh session.
type Identify struct {
	Token              string               `json:"token"`
	Properties         ConnectionProperties `json:"properties"`
	Compress           *bool                `json:"compress,omitempty"`
	LargeThreshold     *uint8               `json:"large_threshold,omitempty"`
	Shard              *[2]uint8            `json:"shard,omitempty"`
	Presence           *UpdateStatus        `json:"presence,omitempty"`
	GuildSubscriptions *bool                `json:"guild_subscriptions,omitempty"`
	Intents            *discord.Intents     `json:"intents,omitempty"`
}

func (*Identify) Op() Op         { return OpIdentify }
func (*Identify) isCommand()     {}
func (*Identify) String() string { return "Identify" }

// ConnectionProperties describes the connecting client. The dollar
// prefixes are the wire names, not a convention of this package.
type ConnectionProperties struct {
	OS      string `json:"$os"`
	Browser string `json:"$browser"`
	Device  string `json:"$device"`
}

// UpdateStatus publishes the client's presence. Since is the idle
// epoch in milliseconds and is always emitted, null for an active
// client.
type UpdateStatus struct {
	Since  *uint64        `json:"since"`
	Status discord.Status `json:"status"`
	AFK    bool           `json:"afk"`
}

func (*UpdateStatus) Op() Op         { return OpUpdateStatus }
func (*UpdateStatus) isCommand()     {}
func (*UpdateStatus) String() string { return "UpdateStatus" }

// UpdateVoiceState joins, moves within, or leaves voice. ChannelID is
// always emitted: an explicit null is the leave instruction, not an
// omission.
type UpdateVoiceState struct {
	GuildID   discord.GuildID    `json:"guild_id"`
	ChannelID *discord.ChannelID `json:"channel_id"`
	SelfMute  bool               `json:"self_mute"`
	SelfDeaf  bool               `json:"self_deaf"`
}

func (*UpdateVoiceState) Op() Op         { return OpUpdateVoiceState }
func (*UpdateVoiceState) isCommand()     {}
func (*UpdateVoiceState) String() string { return "UpdateVoiceState" }

// Resume picks up a dropped session at the last processed sequence.
type Resume struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
	Seq       uint64 `json:"seq"`
}

func (*Resume) Op() Op         { return OpResume }
func (*Resume) isCommand()     {}
func (*Resume) String() string { return "Resume" }

// RequestGuildMembers asks the gateway to stream a guild's member
// list back as GUILD_MEMBERS_CHUNK events. Query and Limit are always
// emitted; an empty query with limit 0 requests everyone.
type RequestGuildMembers struct {
	GuildID   discord.GuildID  `json:"guild_id"`
	Query     string           `json:"query"`
	Limit     uint32           `json:"limit"`
	Presences *bool            `json:"presences,omitempty"`
	UserIDs   []discord.UserID `json:"user_ids,omitempty"`
	Nonce     string           `json:"nonce,omitempty"`
}

func (*RequestGuildMembers) Op() Op         { return OpRequestGuildMembers }
func (*RequestGuildMembers) isCommand()     {}
func (*RequestGuildMembers) String() string { return "RequestGuildMembers" }
