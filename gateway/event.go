// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/accordlib/accord/discord"
)

// Event is one decoded gateway event. The set of implementations is
// closed: every variant lives in this package, and frames outside the
// dispatch table decode to Unknown rather than growing the set.
// Consumers switch on the concrete type:
//
//	switch ev := payload.Event.(type) {
//	case *gateway.MessageCreate:
//	    ...
//	case *gateway.Unknown:
//	    log.Debug("unhandled event", "type", ev.Tag)
//	}
type Event interface {
	fmt.Stringer

	// EventType returns the dispatch tag for dispatch events
	// ("MESSAGE_CREATE") and an upper-case synthetic name for
	// protocol events ("HELLO"). For Unknown it returns the
	// preserved tag.
	EventType() string

	isEvent()
}

// Payload is a fully decoded inbound frame: the event plus the
// sequence number. Sequence is nil when the frame carried no sequence
// (protocol frames, or a dispatch with s null).
type Payload struct {
	Sequence *uint64
	Event    Event
}

// String renders "<event>@<sequence>", or just the event for
// sequenceless frames.
func (p Payload) String() string {
	if p.Sequence == nil {
		return p.Event.String()
	}
	return fmt.Sprintf("%s@%d", p.Event, *p.Sequence)
}

// UnexpectedEventError reports an Expect helper applied to the wrong
// event variant. It is a caller-side error, distinct from the decode
// taxonomy in package discord: the frame itself was valid.
type UnexpectedEventError struct {
	// Want is the EventType the caller expected.
	Want string
	// Got is the event actually decoded.
	Got Event
}

func (e *UnexpectedEventError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Want, e.Got)
}

// ExpectHello asserts that ev is the Hello handshake frame.
func ExpectHello(ev Event) (*Hello, error) {
	hello, ok := ev.(*Hello)
	if !ok {
		return nil, &UnexpectedEventError{Want: "HELLO", Got: ev}
	}
	return hello, nil
}

// ExpectReady asserts that ev is the READY dispatch.
func ExpectReady(ev Event) (*Ready, error) {
	ready, ok := ev.(*Ready)
	if !ok {
		return nil, &UnexpectedEventError{Want: "READY", Got: ev}
	}
	return ready, nil
}

// IsHeartbeatAck reports whether ev acknowledges a heartbeat.
func IsHeartbeatAck(ev Event) bool {
	_, ok := ev.(*HeartbeatAck)
	return ok
}

// GuildID returns the guild an event pertains to. Events outside any
// guild (DM messages, protocol frames, unknown events) return false.
func GuildID(ev Event) (discord.GuildID, bool) {
	switch ev := ev.(type) {
	case *GuildCreate:
		return ev.ID, true
	case *GuildUpdate:
		return ev.ID, true
	case *GuildDelete:
		return ev.ID, true
	case *MessageCreate:
		return deref(ev.GuildID)
	case *MessageUpdate:
		return deref(ev.GuildID)
	case *MessageDelete:
		return deref(ev.GuildID)
	case *GuildMemberAdd:
		return ev.GuildID, true
	case *GuildMemberUpdate:
		return ev.GuildID, true
	case *GuildMemberRemove:
		return ev.GuildID, true
	case *GuildMembersChunk:
		return ev.GuildID, true
	case *GuildRoleCreate:
		return ev.GuildID, true
	case *GuildRoleUpdate:
		return ev.GuildID, true
	case *GuildRoleDelete:
		return ev.GuildID, true
	case *ChannelCreate:
		return deref(ev.Channel.GuildID)
	case *ChannelUpdate:
		return deref(ev.Channel.GuildID)
	case *ChannelDelete:
		return deref(ev.Channel.GuildID)
	case *ApplicationCommandCreate:
		return deref(ev.GuildID)
	case *ApplicationCommandUpdate:
		return deref(ev.GuildID)
	case *ApplicationCommandDelete:
		return deref(ev.GuildID)
	case *InteractionCreate:
		return deref(ev.Interaction.GuildID)
	case *VoiceStateUpdate:
		return deref(ev.VoiceState.GuildID)
	case *VoiceServerUpdate:
		return ev.GuildID, true
	}
	return discord.GuildID{}, false
}

func deref(id *discord.GuildID) (discord.GuildID, bool) {
	if id == nil {
		return discord.GuildID{}, false
	}
	return *id, true
}

// Hello is the handshake frame (op 10) telling the client how often to
// heartbeat.
type Hello struct {
	HeartbeatInterval uint64 `json:"heartbeat_interval"`
}

func (*Hello) EventType() string { return "HELLO" }
func (*Hello) isEvent()          {}
func (*Hello) String() string    { return "Hello" }

// Ready is the session handshake completion (op 0, READY). Guilds
// holds only the IDs: the gateway sends partial, unavailable guild
// stubs here and follows up with one GUILD_CREATE each.
type Ready struct {
	Version     uint8
	User        discord.User
	Guilds      []discord.GuildID
	SessionID   string
	Shard       *[2]uint8
	Application discord.Application
}

func (*Ready) EventType() string { return "READY" }
func (*Ready) isEvent()          {}

func (r *Ready) String() string {
	return fmt.Sprintf("Ready(username=%s)", r.User.Username)
}

// UnmarshalJSON flattens the guild stub list down to its IDs.
func (r *Ready) UnmarshalJSON(data []byte) error {
	var wire struct {
		Version uint8        `json:"v"`
		User    discord.User `json:"user"`
		Guilds  []struct {
			ID discord.GuildID `json:"id"`
		} `json:"guilds"`
		SessionID   string              `json:"session_id"`
		Shard       *[2]uint8           `json:"shard"`
		Application discord.Application `json:"application"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	r.Version = wire.Version
	r.User = wire.User
	r.SessionID = wire.SessionID
	r.Shard = wire.Shard
	r.Application = wire.Application
	r.Guilds = make([]discord.GuildID, 0, len(wire.Guilds))
	for _, g := range wire.Guilds {
		r.Guilds = append(r.Guilds, g.ID)
	}
	return nil
}

// Resumed confirms a session resume (op 0, RESUMED). Its payload
// carries nothing of use and is discarded.
type Resumed struct{}

func (*Resumed) EventType() string { return "RESUMED" }
func (*Resumed) isEvent()          {}
func (*Resumed) String() string    { return "Resumed" }

// InvalidSession reports that the server rejected the session (op 9).
// The payload is a bare boolean: whether a resume may be attempted.
type InvalidSession struct {
	Resumable bool
}

func (*InvalidSession) EventType() string { return "INVALID_SESSION" }
func (*InvalidSession) isEvent()          {}
func (*InvalidSession) String() string    { return "InvalidSession" }

// UnmarshalJSON reads the bare boolean payload.
func (s *InvalidSession) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &s.Resumable)
}

// HeartbeatAck acknowledges a client heartbeat (op 11). The frame
// carries no payload.
type HeartbeatAck struct{}

func (*HeartbeatAck) EventType() string { return "HEARTBEAT_ACK" }
func (*HeartbeatAck) isEvent()          {}
func (*HeartbeatAck) String() string    { return "HeartbeatAck" }

// GuildCreate delivers a full guild, either on join or lazily after
// READY.
type GuildCreate struct {
	discord.Guild
}

func (*GuildCreate) EventType() string { return "GUILD_CREATE" }
func (*GuildCreate) isEvent()          {}

func (g *GuildCreate) String() string {
	return fmt.Sprintf("GuildCreate(id=%s, name=%s)", g.ID, g.Name)
}

// GuildUpdate delivers a changed guild.
type GuildUpdate struct {
	discord.Guild
}

func (*GuildUpdate) EventType() string { return "GUILD_UPDATE" }
func (*GuildUpdate) isEvent()          {}

func (g *GuildUpdate) String() string {
	return fmt.Sprintf("GuildUpdate(id=%s)", g.ID)
}

// GuildDelete announces a guild becoming unavailable or the user
// leaving it. Unavailable is nil when the user was removed and an
// explicit boolean when the guild went down.
type GuildDelete struct {
	ID          discord.GuildID `json:"id"`
	Unavailable *bool           `json:"unavailable,omitempty"`
}

func (*GuildDelete) EventType() string { return "GUILD_DELETE" }
func (*GuildDelete) isEvent()          {}

func (g *GuildDelete) String() string {
	return fmt.Sprintf("GuildDelete(id=%s)", g.ID)
}

// MessageCreate delivers a new message.
type MessageCreate struct {
	discord.Message
}

func (*MessageCreate) EventType() string { return "MESSAGE_CREATE" }
func (*MessageCreate) isEvent()          {}

func (m *MessageCreate) String() string {
	author := "?"
	if m.Author != nil {
		author = m.Author.String()
	}
	return fmt.Sprintf("MessageCreate(user=%s, channel_id=%s)", author, m.ChannelID)
}

// MessageUpdate delivers a message edit. Only the identifying fields
// are guaranteed; everything else is present only when it changed.
type MessageUpdate struct {
	ID              discord.MessageID `json:"id"`
	ChannelID       discord.ChannelID `json:"channel_id"`
	GuildID         *discord.GuildID  `json:"guild_id,omitempty"`
	Content         string            `json:"content,omitempty"`
	EditedTimestamp discord.Timestamp `json:"edited_timestamp,omitempty"`
	MentionEveryone bool              `json:"mention_everyone,omitempty"`
	Mentions        []discord.User    `json:"mentions,omitempty"`
	Pinned          bool              `json:"pinned,omitempty"`
}

func (*MessageUpdate) EventType() string { return "MESSAGE_UPDATE" }
func (*MessageUpdate) isEvent()          {}

func (m *MessageUpdate) String() string {
	return fmt.Sprintf("MessageUpdate(channel_id=%s)", m.ChannelID)
}

// MessageDelete announces a deleted message.
type MessageDelete struct {
	ID        discord.MessageID `json:"id"`
	ChannelID discord.ChannelID `json:"channel_id"`
	GuildID   *discord.GuildID  `json:"guild_id,omitempty"`
}

func (*MessageDelete) EventType() string { return "MESSAGE_DELETE" }
func (*MessageDelete) isEvent()          {}

func (m *MessageDelete) String() string {
	return fmt.Sprintf("MessageDelete(channel_id=%s, id=%s)", m.ChannelID, m.ID)
}

// GuildMemberAdd announces a user joining a guild. The member fields
// sit beside guild_id on the wire, so the struct embeds Member.
type GuildMemberAdd struct {
	GuildID discord.GuildID `json:"guild_id"`
	discord.Member
}

func (*GuildMemberAdd) EventType() string { return "GUILD_MEMBER_ADD" }
func (*GuildMemberAdd) isEvent()          {}

func (g *GuildMemberAdd) String() string {
	return fmt.Sprintf("GuildMemberAdd(guild=%s, user=%s)", g.GuildID, g.Member)
}

// GuildMemberUpdate announces a changed member profile.
type GuildMemberUpdate struct {
	GuildID      discord.GuildID   `json:"guild_id"`
	Roles        []discord.RoleID  `json:"roles"`
	User         discord.User      `json:"user"`
	Nick         string            `json:"nick,omitempty"`
	PremiumSince discord.Timestamp `json:"premium_since,omitempty"`
}

func (*GuildMemberUpdate) EventType() string { return "GUILD_MEMBER_UPDATE" }
func (*GuildMemberUpdate) isEvent()          {}

func (g *GuildMemberUpdate) String() string {
	return fmt.Sprintf("GuildMemberUpdate(guild=%s, user=%s)", g.GuildID, g.User)
}

// GuildMemberRemove announces a user leaving a guild.
type GuildMemberRemove struct {
	GuildID discord.GuildID `json:"guild_id"`
	User    discord.User    `json:"user"`
}

func (*GuildMemberRemove) EventType() string { return "GUILD_MEMBER_REMOVE" }
func (*GuildMemberRemove) isEvent()          {}

func (g *GuildMemberRemove) String() string {
	return fmt.Sprintf("GuildMemberRemove(guild=%s, user=%s)", g.GuildID, g.User)
}

// GuildMembersChunk is one page of a member-request response.
type GuildMembersChunk struct {
	GuildID    discord.GuildID  `json:"guild_id"`
	Members    []discord.Member `json:"members"`
	ChunkIndex uint16           `json:"chunk_index"`
	ChunkCount uint16           `json:"chunk_count"`
	Nonce      string           `json:"nonce,omitempty"`
}

func (*GuildMembersChunk) EventType() string { return "GUILD_MEMBERS_CHUNK" }
func (*GuildMembersChunk) isEvent()          {}

func (g *GuildMembersChunk) String() string {
	return fmt.Sprintf("GuildMembersChunk(guild=%s, chunk=%d/%d)", g.GuildID, g.ChunkIndex, g.ChunkCount)
}

// GuildRoleCreate announces a new role.
type GuildRoleCreate struct {
	GuildID discord.GuildID `json:"guild_id"`
	Role    discord.Role    `json:"role"`
}

func (*GuildRoleCreate) EventType() string { return "GUILD_ROLE_CREATE" }
func (*GuildRoleCreate) isEvent()          {}

func (g *GuildRoleCreate) String() string {
	return fmt.Sprintf("GuildRoleCreate(guild=%s, role=%s)", g.GuildID, g.Role.ID)
}

// GuildRoleUpdate announces a changed role.
type GuildRoleUpdate struct {
	GuildID discord.GuildID `json:"guild_id"`
	Role    discord.Role    `json:"role"`
}

func (*GuildRoleUpdate) EventType() string { return "GUILD_ROLE_UPDATE" }
func (*GuildRoleUpdate) isEvent()          {}

func (g *GuildRoleUpdate) String() string {
	return fmt.Sprintf("GuildRoleUpdate(guild=%s, role=%s)", g.GuildID, g.Role.ID)
}

// GuildRoleDelete announces a removed role.
type GuildRoleDelete struct {
	GuildID discord.GuildID `json:"guild_id"`
	RoleID  discord.RoleID  `json:"role_id"`
}

func (*GuildRoleDelete) EventType() string { return "GUILD_ROLE_DELETE" }
func (*GuildRoleDelete) isEvent()          {}

func (g *GuildRoleDelete) String() string {
	return fmt.Sprintf("GuildRoleDelete(guild=%s, role=%s)", g.GuildID, g.RoleID)
}

// ChannelCreate delivers a new channel.
type ChannelCreate struct {
	discord.Channel
}

func (*ChannelCreate) EventType() string { return "CHANNEL_CREATE" }
func (*ChannelCreate) isEvent()          {}

func (c *ChannelCreate) String() string {
	return fmt.Sprintf("ChannelCreate(id=%s)", c.ID)
}

// ChannelUpdate delivers a changed channel.
type ChannelUpdate struct {
	discord.Channel
}

func (*ChannelUpdate) EventType() string { return "CHANNEL_UPDATE" }
func (*ChannelUpdate) isEvent()          {}

func (c *ChannelUpdate) String() string {
	return fmt.Sprintf("ChannelUpdate(id=%s)", c.ID)
}

// ChannelDelete announces a removed channel.
type ChannelDelete struct {
	discord.Channel
}

func (*ChannelDelete) EventType() string { return "CHANNEL_DELETE" }
func (*ChannelDelete) isEvent()          {}

func (c *ChannelDelete) String() string {
	return fmt.Sprintf("ChannelDelete(id=%s)", c.ID)
}

// ApplicationCommandCreate announces a newly registered slash command.
// The command fields sit beside guild_id on the wire; guild_id is nil
// for global commands.
type ApplicationCommandCreate struct {
	discord.ApplicationCommand
	GuildID *discord.GuildID `json:"guild_id,omitempty"`
}

func (*ApplicationCommandCreate) EventType() string { return "APPLICATION_COMMAND_CREATE" }
func (*ApplicationCommandCreate) isEvent()          {}

func (a *ApplicationCommandCreate) String() string {
	return fmt.Sprintf("ApplicationCommandCreate(command=%s)", a.Name)
}

// ApplicationCommandUpdate announces a changed slash command.
type ApplicationCommandUpdate struct {
	discord.ApplicationCommand
	GuildID *discord.GuildID `json:"guild_id,omitempty"`
}

func (*ApplicationCommandUpdate) EventType() string { return "APPLICATION_COMMAND_UPDATE" }
func (*ApplicationCommandUpdate) isEvent()          {}

func (a *ApplicationCommandUpdate) String() string {
	return fmt.Sprintf("ApplicationCommandUpdate(command=%s)", a.Name)
}

// ApplicationCommandDelete announces a removed slash command.
type ApplicationCommandDelete struct {
	discord.ApplicationCommand
	GuildID *discord.GuildID `json:"guild_id,omitempty"`
}

func (*ApplicationCommandDelete) EventType() string { return "APPLICATION_COMMAND_DELETE" }
func (*ApplicationCommandDelete) isEvent()          {}

func (a *ApplicationCommandDelete) String() string {
	return fmt.Sprintf("ApplicationCommandDelete(command=%s)", a.Name)
}

// InteractionCreate delivers a slash-command invocation.
type InteractionCreate struct {
	discord.Interaction
}

func (*InteractionCreate) EventType() string { return "INTERACTION_CREATE" }
func (*InteractionCreate) isEvent()          {}

func (i *InteractionCreate) String() string {
	command, user := "?", "?"
	if i.Data != nil {
		command = i.Data.Name
	}
	if i.User != nil {
		user = i.User.String()
	}
	return fmt.Sprintf("InteractionCreate(command=%s, user=%s)", command, user)
}

// VoiceStateUpdate announces a user moving, muting, or disconnecting
// in voice.
type VoiceStateUpdate struct {
	discord.VoiceState
}

func (*VoiceStateUpdate) EventType() string { return "VOICE_STATE_UPDATE" }
func (*VoiceStateUpdate) isEvent()          {}

func (v *VoiceStateUpdate) String() string {
	if v.VoiceState.GuildID == nil {
		return "VoiceStateUpdate"
	}
	return fmt.Sprintf("VoiceStateUpdate(guild=%s)", v.VoiceState.GuildID)
}

// VoiceServerUpdate hands the client a voice server to connect to.
// Endpoint is nil when the current server went away and no
// replacement is allocated yet.
type VoiceServerUpdate struct {
	Token    string          `json:"token"`
	GuildID  discord.GuildID `json:"guild_id"`
	Endpoint *string         `json:"endpoint"`
}

func (*VoiceServerUpdate) EventType() string { return "VOICE_SERVER_UPDATE" }
func (*VoiceServerUpdate) isEvent()          {}

func (v *VoiceServerUpdate) String() string {
	return fmt.Sprintf("VoiceServerUpdate(guild=%s)", v.GuildID)
}

// Unknown is the escape hatch for frames outside the dispatch table:
// an unrecognized dispatch tag, or an operation code the client does
// not speak. Tag preserves the dispatch tag, or the decimal operation
// code for non-dispatch frames. The payload was consumed and
// discarded.
type Unknown struct {
	Tag string
}

func (u *Unknown) EventType() string { return u.Tag }
func (*Unknown) isEvent()            {}

func (u *Unknown) String() string {
	return fmt.Sprintf("Unknown(%s)", u.Tag)
}

// unknownOp builds the Unknown event for a non-dispatch operation
// code.
func unknownOp(op uint64) *Unknown {
	return &Unknown{Tag: strconv.FormatUint(op, 10)}
}
