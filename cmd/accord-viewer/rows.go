// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/accordlib/accord/capture"
	"github.com/accordlib/accord/gateway"
	"github.com/accordlib/accord/voice"
)

// frameRow is one entry in the frame list: a capture record plus
// everything the list, filter, and detail pane need, decoded once at
// startup so navigation never re-parses frames.
type frameRow struct {
	record capture.Record

	// index is the frame's position in the capture, stable across
	// filtering. Shown in the detail header.
	index int

	// summary is the one-line description rendered in the list and
	// matched by the fuzzy filter.
	summary string

	// eventType is the dispatch tag or synthetic event name for
	// decoded gateway events, empty otherwise.
	eventType string

	// event holds the decoded gateway event for received gateway
	// frames. Transmitted and voice frames leave it nil.
	event gateway.Event

	// voiceEvent holds the decoded event for received voice frames.
	voiceEvent voice.Event

	// err records a decode failure. The summary is still set so the
	// frame stays visible in the list.
	err error

	// noise marks keepalive traffic (heartbeats and their acks),
	// which renders dim so dispatches stay easy to scan for.
	noise bool
}

// metadata returns the searchable text beyond the summary: direction
// and socket, so queries like "tx" or "voice" narrow by column.
func (row frameRow) metadata() string {
	return row.record.Direction.String() + " " + row.record.Socket.String()
}

// buildRows decodes every record into a frame row.
func buildRows(records []capture.Record) []frameRow {
	rows := make([]frameRow, len(records))
	for index, record := range records {
		rows[index] = buildRow(index, record)
	}
	return rows
}

func buildRow(index int, record capture.Record) frameRow {
	row := frameRow{record: record, index: index}

	switch {
	case record.Direction == capture.DirectionTx:
		row.summary, row.noise, row.err = commandSummary(record.Socket, record.Frame)

	case record.Socket == capture.SocketVoice:
		event, err := voice.UnmarshalEvent(record.Frame)
		if err != nil {
			row.err = err
			break
		}
		row.voiceEvent = event
		row.summary = voiceEventName(event)
		_, row.noise = event.(*voice.HeartbeatAck)

	default:
		payload, err := gateway.UnmarshalPayload(record.Frame)
		if err != nil {
			row.err = err
			break
		}
		row.event = payload.Event
		row.summary = payload.String()
		row.eventType = payload.Event.EventType()
		row.noise = row.eventType == "HEARTBEAT_ACK"
	}

	if row.err != nil {
		row.summary = "undecodable frame"
	}
	return row
}

// commandSummary names a transmitted frame from its opcode. Client
// commands never come back from the server, so the inbound decoders
// cannot name them; the opcode is the source of truth here. Reports
// whether the frame is a heartbeat alongside the summary.
func commandSummary(socket capture.Socket, frame []byte) (string, bool, error) {
	var envelope struct {
		Op *uint8          `json:"op"`
		D  json.RawMessage `json:"d"`
	}
	if err := json.Unmarshal(frame, &envelope); err != nil {
		return "", false, fmt.Errorf("malformed frame: %w", err)
	}
	if envelope.Op == nil {
		return "", false, errors.New("frame has no op")
	}

	var (
		name      string
		heartbeat bool
	)
	if socket == capture.SocketVoice {
		op := voice.Op(*envelope.Op)
		name = op.String()
		heartbeat = op == voice.OpHeartbeat
	} else {
		op := gateway.Op(*envelope.Op)
		name = op.String()
		heartbeat = op == gateway.OpHeartbeat
	}

	// Heartbeat payloads are a bare sequence or nonce, small enough
	// to show inline.
	if heartbeat && len(envelope.D) > 0 && string(envelope.D) != "null" {
		return fmt.Sprintf("%s(%s)", name, envelope.D), true, nil
	}
	return name, heartbeat, nil
}

// voiceEventName names a decoded voice event. Most voice events have
// no String method because their payloads are connection plumbing, so
// the type name stands in.
func voiceEventName(event voice.Event) string {
	if unknown, ok := event.(*voice.Unknown); ok {
		return fmt.Sprintf("Unknown(op=%d)", unknown.Op)
	}
	if stringer, ok := event.(fmt.Stringer); ok {
		return stringer.String()
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", event), "*voice.")
}
