// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package discord

import "encoding/json"

// InteractionType discriminates inbound interactions.
type InteractionType uint8

const (
	InteractionPing    InteractionType = 1
	InteractionCommand InteractionType = 2
)

// InteractionResponseType discriminates responses to an interaction.
type InteractionResponseType uint8

const (
	ResponsePong                   InteractionResponseType = 1
	ResponseChannelMessage         InteractionResponseType = 4
	ResponseDeferredChannelMessage InteractionResponseType = 5
)

// Interaction is a user invoking a slash command. Member is set when
// the command ran in a guild, User when it ran in a DM.
type Interaction struct {
	ID        InteractionID    `json:"id"`
	Type      InteractionType  `json:"type"`
	Data      *InteractionData `json:"data,omitempty"`
	GuildID   *GuildID         `json:"guild_id,omitempty"`
	ChannelID *ChannelID       `json:"channel_id,omitempty"`
	Member    *Member          `json:"member,omitempty"`
	User      *User            `json:"user,omitempty"`
	Token     string           `json:"token"`
	Version   uint8            `json:"version"`
}

// InteractionData identifies which command ran and with which
// arguments.
type InteractionData struct {
	ID      Snowflake               `json:"id"`
	Name    string                  `json:"name"`
	Options []InteractionDataOption `json:"options,omitempty"`
}

// InteractionDataOption is one argument value. Value is kept raw: its
// JSON type depends on the option's declared type, and nested
// sub-commands carry their own options instead of a value.
type InteractionDataOption struct {
	Name    string                  `json:"name"`
	Value   json.RawMessage         `json:"value,omitempty"`
	Options []InteractionDataOption `json:"options,omitempty"`
}
