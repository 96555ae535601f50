// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/internal/jsonscan"
)

// UnmarshalPayload decodes one inbound gateway frame. The envelope
// keys may arrive in any order; classification happens only after the
// whole envelope has been walked. Every frame must carry op and d
// exactly once, t and s at most once; unknown envelope keys are
// ignored.
//
// Frames the client does not recognize, an unfamiliar dispatch tag or
// operation code, decode to Unknown rather than an error. Errors are
// reserved for frames that are structurally wrong.
func UnmarshalPayload(data []byte) (Payload, error) {
	var (
		opSeen bool
		op     uint64
		tSeen  bool
		tag    string
		tNull  bool
		sSeen  bool
		seq    *uint64
		dSeen  bool
		d      json.RawMessage
	)

	scan := jsonscan.New(data)
	for scan.Next() {
		switch scan.Key() {
		case "op":
			if opSeen {
				return Payload{}, &discord.DuplicateFieldError{Field: "op"}
			}
			opSeen = true
			v, err := parseOp(scan.Value())
			if err != nil {
				return Payload{}, err
			}
			op = v
		case "t":
			if tSeen {
				return Payload{}, &discord.DuplicateFieldError{Field: "t"}
			}
			tSeen = true
			raw := scan.Value()
			if string(raw) == "null" {
				tNull = true
				break
			}
			if err := json.Unmarshal(raw, &tag); err != nil {
				return Payload{}, &discord.InvalidValueError{
					Type:   "t",
					Value:  string(raw),
					Reason: "not a string",
				}
			}
		case "s":
			if sSeen {
				return Payload{}, &discord.DuplicateFieldError{Field: "s"}
			}
			sSeen = true
			raw := scan.Value()
			if string(raw) == "null" {
				break
			}
			v, err := strconv.ParseUint(string(raw), 10, 64)
			if err != nil {
				return Payload{}, &discord.InvalidValueError{
					Type:   "s",
					Value:  string(raw),
					Reason: "not an unsigned integer",
				}
			}
			seq = &v
		case "d":
			if dSeen {
				return Payload{}, &discord.DuplicateFieldError{Field: "d"}
			}
			dSeen = true
			d = scan.Value()
		}
	}
	if err := scan.Err(); err != nil {
		return Payload{}, fmt.Errorf("malformed frame: %w", err)
	}
	if !dSeen {
		return Payload{}, &discord.MissingFieldError{Field: "d"}
	}
	if !opSeen {
		return Payload{}, &discord.MissingFieldError{Field: "op"}
	}

	// An explicit d:null carries no payload. Frames that discard
	// their payload accept it; payload-bearing frames treat it the
	// same as an absent d.
	if string(d) == "null" {
		d = nil
	}

	var (
		ev  Event
		err error
	)
	switch Op(op) {
	case OpDispatch:
		if !tSeen || tNull {
			return Payload{}, &discord.MissingFieldError{Field: "t"}
		}
		ev, err = decodeDispatch(tag, d)
	case OpInvalidSession:
		if d == nil {
			return Payload{}, &discord.MissingFieldError{Field: "d"}
		}
		ev, err = decodeEvent[InvalidSession](d)
	case OpHello:
		if d == nil {
			return Payload{}, &discord.MissingFieldError{Field: "d"}
		}
		ev, err = decodeEvent[Hello](d)
	case OpHeartbeatAck:
		ev = &HeartbeatAck{}
	default:
		ev = unknownOp(op)
	}
	if err != nil {
		return Payload{}, err
	}
	return Payload{Sequence: seq, Event: ev}, nil
}

// UnmarshalJSON lets a Payload sit inside a larger decoded structure,
// a capture record for instance, while keeping the envelope rules.
func (p *Payload) UnmarshalJSON(data []byte) error {
	decoded, err := UnmarshalPayload(data)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

// parseOp reads the operation code token. Codes are 8-bit on the
// wire; anything else is structurally wrong rather than Unknown.
func parseOp(raw json.RawMessage) (uint64, error) {
	v, err := strconv.ParseUint(string(raw), 10, 8)
	if err != nil {
		reason := "not an unsigned integer"
		if errors.Is(err, strconv.ErrRange) {
			reason = "exceeds 8 bits"
		}
		return 0, &discord.InvalidValueError{
			Type:   "op",
			Value:  string(raw),
			Reason: reason,
		}
	}
	return v, nil
}

// decodeDispatch resolves a dispatch tag to its event type and
// decodes the payload. Tags outside the table preserve themselves as
// Unknown; RESUMED discards whatever payload it came with.
func decodeDispatch(tag string, d json.RawMessage) (Event, error) {
	if tag == "RESUMED" {
		return &Resumed{}, nil
	}
	decode, ok := dispatchTable[tag]
	if !ok {
		return &Unknown{Tag: tag}, nil
	}
	if d == nil {
		return nil, &discord.MissingFieldError{Field: "d"}
	}
	return decode(d)
}

var dispatchTable = map[string]func(json.RawMessage) (Event, error){
	"READY":                      decodeEvent[Ready],
	"GUILD_CREATE":               decodeEvent[GuildCreate],
	"GUILD_UPDATE":               decodeEvent[GuildUpdate],
	"GUILD_DELETE":               decodeEvent[GuildDelete],
	"MESSAGE_CREATE":             decodeEvent[MessageCreate],
	"MESSAGE_UPDATE":             decodeEvent[MessageUpdate],
	"MESSAGE_DELETE":             decodeEvent[MessageDelete],
	"GUILD_MEMBER_ADD":           decodeEvent[GuildMemberAdd],
	"GUILD_MEMBER_UPDATE":        decodeEvent[GuildMemberUpdate],
	"GUILD_MEMBER_REMOVE":        decodeEvent[GuildMemberRemove],
	"GUILD_MEMBERS_CHUNK":        decodeEvent[GuildMembersChunk],
	"GUILD_ROLE_CREATE":          decodeEvent[GuildRoleCreate],
	"GUILD_ROLE_UPDATE":          decodeEvent[GuildRoleUpdate],
	"GUILD_ROLE_DELETE":          decodeEvent[GuildRoleDelete],
	"CHANNEL_CREATE":             decodeEvent[ChannelCreate],
	"CHANNEL_UPDATE":             decodeEvent[ChannelUpdate],
	"CHANNEL_DELETE":             decodeEvent[ChannelDelete],
	"APPLICATION_COMMAND_CREATE": decodeEvent[ApplicationCommandCreate],
	"APPLICATION_COMMAND_UPDATE": decodeEvent[ApplicationCommandUpdate],
	"APPLICATION_COMMAND_DELETE": decodeEvent[ApplicationCommandDelete],
	"INTERACTION_CREATE":         decodeEvent[InteractionCreate],
	"VOICE_STATE_UPDATE":         decodeEvent[VoiceStateUpdate],
	"VOICE_SERVER_UPDATE":        decodeEvent[VoiceServerUpdate],
}

// decodeEvent unmarshals a payload into a fresh event of type T,
// wrapping decode failures with the event's tag. Field-level errors
// from the record types keep their identity through the wrap.
func decodeEvent[T any, PT interface {
	*T
	Event
}](d json.RawMessage) (Event, error) {
	ev := PT(new(T))
	if err := json.Unmarshal(d, ev); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", ev.EventType(), err)
	}
	return ev, nil
}
