// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package voice

import (
	"testing"

	"github.com/accordlib/accord/discord"
)

func marshal(t *testing.T, cmd Command) string {
	t.Helper()
	raw, err := MarshalCommand(cmd)
	if err != nil {
		t.Fatalf("MarshalCommand failed: %v", err)
	}
	return string(raw)
}

func TestMarshalHeartbeat(t *testing.T) {
	if got, want := marshal(t, Heartbeat(7)), `{"op":3,"d":7}`; got != want {
		t.Errorf("frame = %s, want %s", got, want)
	}
}

func TestMarshalIdentify(t *testing.T) {
	cmd := &Identify{
		GuildID:   discord.GuildID{Snowflake: 41771983423143937},
		UserID:    discord.UserID{Snowflake: 80351110224678912},
		SessionID: "30f32c5d54ae86130fc4",
		Token:     "my_token",
	}
	// The guild travels as server_id on this channel.
	want := `{"op":0,"d":{"server_id":"41771983423143937","user_id":"80351110224678912","session_id":"30f32c5d54ae86130fc4","token":"my_token"}}`
	if got := marshal(t, cmd); got != want {
		t.Errorf("frame = %s\nwant    %s", got, want)
	}
}

func TestMarshalResume(t *testing.T) {
	cmd := &Resume{
		GuildID:   discord.GuildID{Snowflake: 41771983423143937},
		SessionID: "30f32c5d54ae86130fc4",
		Token:     "my_token",
	}
	want := `{"op":7,"d":{"server_id":"41771983423143937","session_id":"30f32c5d54ae86130fc4","token":"my_token"}}`
	if got := marshal(t, cmd); got != want {
		t.Errorf("frame = %s\nwant    %s", got, want)
	}
}

func TestMarshalSelectProtocol(t *testing.T) {
	cmd := &SelectProtocol{
		Protocol: "udp",
		Data: SelectProtocolData{
			Address: "127.0.0.1",
			Port:    1337,
			Mode:    ModeXSalsa20Poly1305,
		},
	}
	want := `{"op":1,"d":{"protocol":"udp","data":{"address":"127.0.0.1","port":1337,"mode":"xsalsa20_poly1305"}}}`
	if got := marshal(t, cmd); got != want {
		t.Errorf("frame = %s\nwant    %s", got, want)
	}
}

func TestMarshalSpeaking(t *testing.T) {
	cmd := &Speaking{Speaking: discord.SpeakingMicrophone, SSRC: 110}
	// delay always encodes; receivers use it for lip sync.
	want := `{"op":5,"d":{"speaking":1,"delay":0,"ssrc":110}}`
	if got := marshal(t, cmd); got != want {
		t.Errorf("frame = %s, want %s", got, want)
	}
}

func TestIsHeartbeat(t *testing.T) {
	if !IsHeartbeat(Heartbeat(7)) {
		t.Error("IsHeartbeat(Heartbeat) = false")
	}
	if IsHeartbeat(&Identify{}) {
		t.Error("IsHeartbeat(Identify) = true")
	}
}
