// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package discord

// ChannelType discriminates the kinds of channel. Unknown values pass
// through decode unchanged; compare against the constants rather than
// assuming the set is complete.
type ChannelType uint8

const (
	ChannelText          ChannelType = 0
	ChannelPrivate       ChannelType = 1
	ChannelVoice         ChannelType = 2
	ChannelGroup         ChannelType = 3
	ChannelCategory      ChannelType = 4
	ChannelNews          ChannelType = 5
	ChannelStore         ChannelType = 6
	ChannelNewsThread    ChannelType = 10
	ChannelPublicThread  ChannelType = 11
	ChannelPrivateThread ChannelType = 12
	ChannelStage         ChannelType = 13
)

// Channel is a guild channel or DM. GuildID and ParentID are nil for
// channels outside a guild hierarchy.
type Channel struct {
	ID               ChannelID   `json:"id"`
	Type             ChannelType `json:"type"`
	GuildID          *GuildID    `json:"guild_id,omitempty"`
	Position         uint16      `json:"position,omitempty"`
	Name             string      `json:"name,omitempty"`
	Topic            string      `json:"topic,omitempty"`
	NSFW             bool        `json:"nsfw,omitempty"`
	Bitrate          uint32      `json:"bitrate,omitempty"`
	UserLimit        uint16      `json:"user_limit,omitempty"`
	RateLimitPerUser uint16      `json:"rate_limit_per_user,omitempty"`
	ParentID         *ChannelID  `json:"parent_id,omitempty"`
}

// String returns the channel name, or "??" for unnamed channels (DMs).
func (c Channel) String() string {
	if c.Name == "" {
		return "??"
	}
	return c.Name
}
