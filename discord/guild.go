// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package discord

// Guild is the full guild object delivered by GUILD_CREATE and
// GUILD_UPDATE. Fields the gateway omits for small or partial guilds
// take their zero values; Unavailable is a pointer because an absent
// key means something different from an explicit false.
type Guild struct {
	ID                          GuildID        `json:"id"`
	Name                        string         `json:"name"`
	Icon                        string         `json:"icon,omitempty"`
	Splash                      string         `json:"splash,omitempty"`
	DiscoverySplash             string         `json:"discovery_splash,omitempty"`
	Owner                       bool           `json:"owner,omitempty"`
	OwnerID                     UserID         `json:"owner_id"`
	Permissions                 uint64         `json:"permissions,omitempty"`
	Region                      string         `json:"region"`
	AFKChannelID                *ChannelID     `json:"afk_channel_id,omitempty"`
	AFKTimeout                  uint64         `json:"afk_timeout"`
	WidgetEnabled               bool           `json:"widget_enabled,omitempty"`
	WidgetChannelID             *ChannelID     `json:"widget_channel_id,omitempty"`
	VerificationLevel           uint8          `json:"verification_level"`
	DefaultMessageNotifications uint8          `json:"default_message_notifications"`
	ExplicitContentFilter       uint8          `json:"explicit_content_filter"`
	Roles                       []Role         `json:"roles"`
	MFALevel                    uint8          `json:"mfa_level"`
	ApplicationID               *ApplicationID `json:"application_id,omitempty"`
	SystemChannelID             *ChannelID     `json:"system_channel_id,omitempty"`
	SystemChannelFlags          uint8          `json:"system_channel_flags"`
	RulesChannelID              *ChannelID     `json:"rules_channel_id,omitempty"`
	JoinedAt                    Timestamp      `json:"joined_at,omitempty"`
	Large                       bool           `json:"large,omitempty"`
	Unavailable                 *bool          `json:"unavailable,omitempty"`
	MemberCount                 uint16         `json:"member_count,omitempty"`
	Members                     []Member       `json:"members,omitempty"`
	Channels                    []Channel      `json:"channels,omitempty"`
	MaxMembers                  uint32         `json:"max_members,omitempty"`
	VanityURLCode               string         `json:"vanity_url_code,omitempty"`
	Description                 string         `json:"description,omitempty"`
	Banner                      string         `json:"banner,omitempty"`
	PremiumTier                 uint8          `json:"premium_tier"`
	PremiumSubscriptionCount    uint16         `json:"premium_subscription_count,omitempty"`
	PreferredLocale             string         `json:"preferred_locale"`
	PublicUpdatesChannelID      *ChannelID     `json:"public_updates_channel_id,omitempty"`
	MaxVideoChannelUsers        uint16         `json:"max_video_channel_users,omitempty"`
	ApproximateMemberCount      uint16         `json:"approximate_member_count,omitempty"`
	ApproximatePresenceCount    uint16         `json:"approximate_presence_count,omitempty"`
}

// Role is a guild role. Permissions is the stringified 53-plus-bit
// permission integer, kept as text because its width outgrew JSON
// numbers long ago.
type Role struct {
	ID          RoleID `json:"id"`
	Name        string `json:"name"`
	Color       Color  `json:"color"`
	Hoist       bool   `json:"hoist"`
	Position    uint16 `json:"position"`
	Permissions string `json:"permissions"`
	Managed     bool   `json:"managed"`
	Mentionable bool   `json:"mentionable"`
}

// Member is a user's guild-specific profile. User is nil in partial
// member objects attached to messages when the gateway already sent
// the author separately.
type Member struct {
	User         *User     `json:"user,omitempty"`
	Nick         string    `json:"nick,omitempty"`
	Roles        []RoleID  `json:"roles"`
	JoinedAt     Timestamp `json:"joined_at"`
	PremiumSince Timestamp `json:"premium_since,omitempty"`
	Deaf         bool      `json:"deaf"`
	Mute         bool      `json:"mute"`
	Pending      bool      `json:"pending,omitempty"`
	Permissions  string    `json:"permissions,omitempty"`
}

// String returns "nick (user)" with "??" standing in for whichever
// part is missing.
func (m Member) String() string {
	nick := m.Nick
	if nick == "" {
		nick = "??"
	}
	if m.User == nil {
		return nick
	}
	return nick + " (" + m.User.String() + ")"
}
