// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package discord

// Typed snowflake wrappers. Each is a distinct named struct embedding
// Snowflake, so a ChannelID cannot be passed where a GuildID is
// expected even though both promote the same accessors and JSON codec.
// Construct them explicitly: discord.ChannelID{Snowflake: 1234}.

// ApplicationID identifies an application (a bot's parent app).
type ApplicationID struct{ Snowflake }

// ChannelID identifies a text, voice, or DM channel.
type ChannelID struct{ Snowflake }

// GuildID identifies a guild.
type GuildID struct{ Snowflake }

// InteractionID identifies a single interaction exchange.
type InteractionID struct{ Snowflake }

// MessageID identifies a message within a channel.
type MessageID struct{ Snowflake }

// RoleID identifies a role within a guild.
type RoleID struct{ Snowflake }

// UserID identifies a user account.
type UserID struct{ Snowflake }
