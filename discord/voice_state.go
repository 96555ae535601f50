// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package discord

// VoiceState is a user's position in voice. A nil ChannelID means the
// user disconnected; the gateway sends an explicit null there rather
// than omitting the key.
type VoiceState struct {
	GuildID                 *GuildID   `json:"guild_id,omitempty"`
	ChannelID               *ChannelID `json:"channel_id"`
	UserID                  UserID     `json:"user_id"`
	Member                  *Member    `json:"member,omitempty"`
	SessionID               string     `json:"session_id"`
	Deaf                    bool       `json:"deaf"`
	Mute                    bool       `json:"mute"`
	SelfDeaf                bool       `json:"self_deaf"`
	SelfMute                bool       `json:"self_mute"`
	SelfStream              bool       `json:"self_stream,omitempty"`
	SelfVideo               bool       `json:"self_video"`
	Suppress                bool       `json:"suppress"`
	RequestToSpeakTimestamp Timestamp  `json:"request_to_speak_timestamp,omitempty"`
}
