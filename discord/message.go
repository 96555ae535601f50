// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package discord

// MessageType discriminates ordinary messages from system notices.
// Unknown values pass through decode unchanged.
type MessageType uint8

const (
	MessageDefault                    MessageType = 0
	MessageRecipientAdd               MessageType = 1
	MessageRecipientRemove            MessageType = 2
	MessageCall                       MessageType = 3
	MessageChannelNameChange          MessageType = 4
	MessageChannelIconChange          MessageType = 5
	MessageChannelPinned              MessageType = 6
	MessageGuildMemberJoin            MessageType = 7
	MessagePremiumSubscription        MessageType = 8
	MessagePremiumSubscriptionTier1   MessageType = 9
	MessagePremiumSubscriptionTier2   MessageType = 10
	MessagePremiumSubscriptionTier3   MessageType = 11
	MessageChannelFollowAdd           MessageType = 12
	MessageGuildDiscoveryDisqualified MessageType = 14
	MessageGuildDiscoveryRequalified  MessageType = 15
	MessageReply                      MessageType = 19
	MessageApplicationCommand         MessageType = 20
)

// Textual reports whether the message carries user-authored content:
// a default message, a reply, or a command response.
func (t MessageType) Textual() bool {
	switch t {
	case MessageDefault, MessageReply, MessageApplicationCommand:
		return true
	}
	return false
}

// Message is a message as delivered by MESSAGE_CREATE. Author is nil
// for webhook messages without a backing user; WebhookID is the raw
// sender ID in that case.
type Message struct {
	ID              MessageID   `json:"id"`
	ChannelID       ChannelID   `json:"channel_id"`
	GuildID         *GuildID    `json:"guild_id,omitempty"`
	Author          *User       `json:"author,omitempty"`
	Member          *Member     `json:"member,omitempty"`
	Content         string      `json:"content,omitempty"`
	Timestamp       Timestamp   `json:"timestamp,omitempty"`
	EditedTimestamp Timestamp   `json:"edited_timestamp,omitempty"`
	TTS             bool        `json:"tts,omitempty"`
	MentionEveryone bool        `json:"mention_everyone,omitempty"`
	Mentions        []User      `json:"mentions,omitempty"`
	Pinned          bool        `json:"pinned,omitempty"`
	WebhookID       Snowflake   `json:"webhook_id,omitempty"`
	Type            MessageType `json:"type"`
}

// Embed is rich content attached to a message. Only the subset the
// gateway round-trips is modeled; build values with the chainable
// With methods:
//
//	discord.NewEmbed().WithURL(link).WithImage(imageURL)
type Embed struct {
	URL       string          `json:"url,omitempty"`
	Color     Color           `json:"color,omitempty"`
	Image     *EmbedImage     `json:"image,omitempty"`
	Thumbnail *EmbedThumbnail `json:"thumbnail,omitempty"`
}

// EmbedImage is the main image of an embed.
type EmbedImage struct {
	URL    string `json:"url,omitempty"`
	Height uint16 `json:"height,omitempty"`
	Width  uint16 `json:"width,omitempty"`
}

// EmbedThumbnail is the small corner image of an embed.
type EmbedThumbnail struct {
	URL string `json:"url,omitempty"`
}

// NewEmbed returns an empty embed for the With chain.
func NewEmbed() Embed { return Embed{} }

// WithURL sets the embed's link target.
func (e Embed) WithURL(url string) Embed {
	e.URL = url
	return e
}

// WithColor sets the embed's accent color.
func (e Embed) WithColor(c Color) Embed {
	e.Color = c
	return e
}

// WithImage sets the main image by URL.
func (e Embed) WithImage(url string) Embed {
	e.Image = &EmbedImage{URL: url}
	return e
}

// WithThumbnail sets the thumbnail by URL.
func (e Embed) WithThumbnail(url string) Embed {
	e.Thumbnail = &EmbedThumbnail{URL: url}
	return e
}

// ComponentType discriminates interactive message components.
type ComponentType uint8

const (
	ComponentActionRow ComponentType = 1
	ComponentButton    ComponentType = 2
)

// ButtonStyle selects a button's appearance and behavior.
type ButtonStyle uint8

const (
	ButtonPrimary   ButtonStyle = 1
	ButtonSecondary ButtonStyle = 2
	ButtonSuccess   ButtonStyle = 3
	ButtonDanger    ButtonStyle = 4
	ButtonLink      ButtonStyle = 5
)

// Component is an interactive element attached to a message. Action
// rows nest their children in Components; buttons carry either a
// CustomID (interaction callback) or a URL (link button), never both.
type Component struct {
	Type       ComponentType `json:"type"`
	Style      ButtonStyle   `json:"style,omitempty"`
	Label      string        `json:"label,omitempty"`
	CustomID   string        `json:"custom_id,omitempty"`
	URL        string        `json:"url,omitempty"`
	Disabled   bool          `json:"disabled,omitempty"`
	Components []Component   `json:"components,omitempty"`
}

// Allowed mention parse classes.
const (
	AllowedMentionUsers    = "users"
	AllowedMentionRoles    = "roles"
	AllowedMentionEveryone = "everyone"
)

// AllowedMentions restricts which mention classes in a message will
// ping. The parse key is always emitted: an empty list is the "ping
// nobody" form, which is not the same as omitting the object.
type AllowedMentions struct {
	Parse []string `json:"parse"`
}

// SuppressAll returns the "ping nobody" form.
func SuppressAll() *AllowedMentions {
	return &AllowedMentions{Parse: []string{}}
}
