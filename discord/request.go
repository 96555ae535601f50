// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package discord

// REST request bodies. These are types only: the module ships no HTTP
// client, callers marshal them into whatever transport they use.

// CreateMessage is the body for posting a message to a channel.
type CreateMessage struct {
	Content    string      `json:"content,omitempty"`
	Embeds     []Embed     `json:"embeds,omitempty"`
	Components []Component `json:"components,omitempty"`
}

// EditMessage is the PATCH body for editing a message. Pointer fields
// distinguish "leave unchanged" (nil) from "replace with this value",
// including replacement with an empty list to clear embeds or
// components.
type EditMessage struct {
	Content    *string      `json:"content,omitempty"`
	Embeds     *[]Embed     `json:"embeds,omitempty"`
	Components *[]Component `json:"components,omitempty"`
}

// CreateCommand is the body for registering a slash command. Options
// is always emitted, empty or not: registration replaces the full
// option list.
type CreateCommand struct {
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Options     []ApplicationCommandOption `json:"options"`
}

// CreateGuildBan is the body for banning a member.
type CreateGuildBan struct {
	DeleteMessageDays uint8  `json:"delete_message_days,omitempty"`
	Reason            string `json:"reason,omitempty"`
}

// InteractionResponse is the body for answering an interaction.
type InteractionResponse struct {
	Type InteractionResponseType  `json:"type"`
	Data *InteractionCallbackData `json:"data,omitempty"`
}

// InteractionCallbackData is the message half of an interaction
// response. TTS is always emitted; set MessageFlagEphemeral in Flags
// to make the response visible only to the invoking user.
type InteractionCallbackData struct {
	TTS             bool             `json:"tts"`
	Content         string           `json:"content,omitempty"`
	Embeds          []Embed          `json:"embeds,omitempty"`
	AllowedMentions *AllowedMentions `json:"allowed_mentions,omitempty"`
	Flags           MessageFlags     `json:"flags,omitempty"`
	Components      []Component      `json:"components,omitempty"`
}

// Attachment is a file to upload alongside a message. Data is the raw
// file content, carried as a multipart form part rather than JSON.
type Attachment struct {
	Name string `json:"name"`
	Data []byte `json:"-"`
}
