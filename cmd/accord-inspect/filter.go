// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/accordlib/accord/capture"
	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/gateway"
)

// frameFilter decides which records reach the output. Socket and
// direction are checked against record metadata before decoding;
// event type and guild need the decoded gateway event.
type frameFilter struct {
	events       map[string]bool
	guild        discord.GuildID
	guildSet     bool
	socket       capture.Socket
	socketSet    bool
	direction    capture.Direction
	directionSet bool
}

func buildFilter(events []string, guild, socket, direction string) (*frameFilter, error) {
	filter := &frameFilter{}

	if len(events) > 0 {
		filter.events = make(map[string]bool, len(events))
		for _, event := range events {
			filter.events[strings.ToUpper(event)] = true
		}
	}
	if guild != "" {
		id, err := discord.ParseSnowflake(guild)
		if err != nil {
			return nil, fmt.Errorf("--guild: %w", err)
		}
		filter.guild = discord.GuildID{Snowflake: id}
		filter.guildSet = true
	}
	if socket != "" {
		parsed, err := capture.ParseSocket(socket)
		if err != nil {
			return nil, fmt.Errorf("--socket: %w", err)
		}
		filter.socket = parsed
		filter.socketSet = true
	}
	if direction != "" {
		parsed, err := capture.ParseDirection(direction)
		if err != nil {
			return nil, fmt.Errorf("--direction: %w", err)
		}
		filter.direction = parsed
		filter.directionSet = true
	}
	return filter, nil
}

// keepRecord applies the metadata filters.
func (f *frameFilter) keepRecord(record capture.Record) bool {
	if f.socketSet && record.Socket != f.socket {
		return false
	}
	if f.directionSet && record.Direction != f.direction {
		return false
	}
	return true
}

// wantsEvent reports whether any filter needs a decoded event, in
// which case undecodable frames are dropped rather than shown.
func (f *frameFilter) wantsEvent() bool {
	return len(f.events) > 0 || f.guildSet
}

// keepEvent applies the event type and guild filters. Voice frames
// carry no event tag or guild field, so they only pass when neither
// filter is set.
func (f *frameFilter) keepEvent(socket capture.Socket, event gateway.Event) bool {
	if !f.wantsEvent() {
		return true
	}
	if socket == capture.SocketVoice || event == nil {
		return false
	}
	if len(f.events) > 0 && !f.events[event.EventType()] {
		return false
	}
	if f.guildSet {
		id, ok := gateway.GuildID(event)
		if !ok || id != f.guild {
			return false
		}
	}
	return true
}
