// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/accordlib/accord/capture"
	"github.com/accordlib/accord/gateway"
	"github.com/accordlib/accord/voice"
)

func TestBuildRow(t *testing.T) {
	tests := []struct {
		name          string
		direction     capture.Direction
		socket        capture.Socket
		frame         string
		wantSummary   string
		wantEventType string
		wantNoise     bool
	}{
		{
			name:        "gateway hello",
			direction:   capture.DirectionRx,
			socket:      capture.SocketGateway,
			frame:       `{"op":10,"d":{"heartbeat_interval":41250}}`,
			wantSummary: "Hello",
			// Synthetic tag for non-dispatch frames.
			wantEventType: "HELLO",
		},
		{
			name:          "gateway dispatch with sequence",
			direction:     capture.DirectionRx,
			socket:        capture.SocketGateway,
			frame:         `{"op":0,"t":"MESSAGE_DELETE","s":42,"d":{"id":"111","channel_id":"222"}}`,
			wantSummary:   "MessageDelete(channel_id=222, id=111)@42",
			wantEventType: "MESSAGE_DELETE",
		},
		{
			name:          "gateway heartbeat ack is noise",
			direction:     capture.DirectionRx,
			socket:        capture.SocketGateway,
			frame:         `{"op":11,"d":null}`,
			wantSummary:   "HeartbeatAck",
			wantEventType: "HEARTBEAT_ACK",
			wantNoise:     true,
		},
		{
			name:        "transmitted identify",
			direction:   capture.DirectionTx,
			socket:      capture.SocketGateway,
			frame:       `{"op":2,"d":{"token":"hunter2","intents":512}}`,
			wantSummary: "Identify",
		},
		{
			name:        "transmitted heartbeat shows payload and is noise",
			direction:   capture.DirectionTx,
			socket:      capture.SocketGateway,
			frame:       `{"op":1,"d":41}`,
			wantSummary: "Heartbeat(41)",
			wantNoise:   true,
		},
		{
			name:        "transmitted heartbeat before first dispatch",
			direction:   capture.DirectionTx,
			socket:      capture.SocketGateway,
			frame:       `{"op":1,"d":null}`,
			wantSummary: "Heartbeat",
			wantNoise:   true,
		},
		{
			name:        "voice session description",
			direction:   capture.DirectionRx,
			socket:      capture.SocketVoice,
			frame:       `{"op":4,"d":{"mode":"xsalsa20_poly1305","secret_key":[]}}`,
			wantSummary: "SessionDescription(mode=xsalsa20_poly1305)",
		},
		{
			name:        "voice heartbeat ack is noise",
			direction:   capture.DirectionRx,
			socket:      capture.SocketVoice,
			frame:       `{"op":6,"d":1501184119561}`,
			wantSummary: "HeartbeatAck",
			wantNoise:   true,
		},
		{
			name:        "voice hello named from its type",
			direction:   capture.DirectionRx,
			socket:      capture.SocketVoice,
			frame:       `{"op":8,"d":{"heartbeat_interval":13750}}`,
			wantSummary: "Hello",
		},
		{
			name:        "voice unknown operation",
			direction:   capture.DirectionRx,
			socket:      capture.SocketVoice,
			frame:       `{"op":12,"d":null}`,
			wantSummary: "Unknown(op=12)",
		},
		{
			name:        "transmitted voice heartbeat",
			direction:   capture.DirectionTx,
			socket:      capture.SocketVoice,
			frame:       `{"op":3,"d":1501184119561}`,
			wantSummary: "Heartbeat(1501184119561)",
			wantNoise:   true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			record := capture.Record{
				Direction: tc.direction,
				Socket:    tc.socket,
				Frame:     []byte(tc.frame),
			}
			row := buildRow(7, record)

			if row.err != nil {
				t.Fatalf("buildRow returned error: %v", row.err)
			}
			if row.index != 7 {
				t.Errorf("index = %d, want 7", row.index)
			}
			if row.summary != tc.wantSummary {
				t.Errorf("summary = %q, want %q", row.summary, tc.wantSummary)
			}
			if row.eventType != tc.wantEventType {
				t.Errorf("eventType = %q, want %q", row.eventType, tc.wantEventType)
			}
			if row.noise != tc.wantNoise {
				t.Errorf("noise = %v, want %v", row.noise, tc.wantNoise)
			}
		})
	}
}

func TestBuildRowDecodedEvents(t *testing.T) {
	message := capture.Record{
		Direction: capture.DirectionRx,
		Socket:    capture.SocketGateway,
		Frame:     []byte(`{"op":0,"t":"MESSAGE_CREATE","s":9,"d":{"id":"111","channel_id":"222","author":{"id":"1","username":"dana","discriminator":"0001"},"content":"hi there"}}`),
	}
	row := buildRow(0, message)
	if row.err != nil {
		t.Fatal(row.err)
	}
	create, ok := row.event.(*gateway.MessageCreate)
	if !ok {
		t.Fatalf("event = %T, want *gateway.MessageCreate", row.event)
	}
	if create.Content != "hi there" {
		t.Errorf("content = %q, want %q", create.Content, "hi there")
	}

	speaking := capture.Record{
		Direction: capture.DirectionRx,
		Socket:    capture.SocketVoice,
		Frame:     []byte(`{"op":5,"d":{"speaking":1,"delay":0,"ssrc":110}}`),
	}
	row = buildRow(1, speaking)
	if row.err != nil {
		t.Fatal(row.err)
	}
	if _, ok := row.voiceEvent.(*voice.Speaking); !ok {
		t.Fatalf("voiceEvent = %T, want *voice.Speaking", row.voiceEvent)
	}
	if row.summary != "Speaking" {
		t.Errorf("summary = %q, want %q", row.summary, "Speaking")
	}
}

func TestBuildRowUndecodable(t *testing.T) {
	tests := []struct {
		name      string
		direction capture.Direction
		socket    capture.Socket
		frame     string
	}{
		{
			name:      "gateway frame without payload",
			direction: capture.DirectionRx,
			socket:    capture.SocketGateway,
			frame:     `{"op":10}`,
		},
		{
			name:      "voice frame without op",
			direction: capture.DirectionRx,
			socket:    capture.SocketVoice,
			frame:     `{"d":null}`,
		},
		{
			name:      "client frame that is not an object",
			direction: capture.DirectionTx,
			socket:    capture.SocketGateway,
			frame:     `[1,2]`,
		},
		{
			name:      "client frame without op",
			direction: capture.DirectionTx,
			socket:    capture.SocketGateway,
			frame:     `{"d":null}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			record := capture.Record{
				Direction: tc.direction,
				Socket:    tc.socket,
				Frame:     []byte(tc.frame),
			}
			row := buildRow(0, record)
			if row.err == nil {
				t.Fatal("expected a decode error")
			}
			// The row stays listed with a placeholder summary.
			if row.summary != "undecodable frame" {
				t.Errorf("summary = %q, want %q", row.summary, "undecodable frame")
			}
		})
	}
}

func TestFrameRowMetadata(t *testing.T) {
	row := frameRow{record: capture.Record{
		Direction: capture.DirectionTx,
		Socket:    capture.SocketVoice,
	}}
	if got := row.metadata(); got != "tx voice" {
		t.Errorf("metadata() = %q, want %q", got, "tx voice")
	}
}
