// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package discord

import (
	"encoding/json"
	"strconv"
	"testing"
)

func TestIntentsStrictRoundTrip(t *testing.T) {
	combos := []Intents{
		0,
		IntentGuilds,
		IntentGuildMessages | IntentDirectMessages,
		IntentsGuildAll,
		IntentsAll,
	}
	for _, want := range combos {
		data, err := json.Marshal(want)
		if err != nil {
			t.Fatalf("encoding %v: %v", want, err)
		}
		var got Intents
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("decoding %s: %v", data, err)
		}
		if got != want {
			t.Errorf("round trip of %b produced %b", want, got)
		}
	}
}

func TestIntentsStrictRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown bit", strconv.FormatUint(1<<15, 10)},
		{"unknown high bit", strconv.FormatUint(1<<31, 10)},
		{"width overflow", strconv.FormatUint(1<<32, 10)},
		{"mixed", strconv.FormatUint((1<<15)|1, 10)},
		{"negative", "-1"},
		{"string", `"512"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var i Intents
			err := json.Unmarshal([]byte(tt.input), &i)
			if err == nil {
				t.Fatalf("decoding %s succeeded, want error", tt.input)
			}
			if !IsInvalidValue(err) {
				t.Errorf("got %v, want InvalidValueError", err)
			}
		})
	}
}

func TestIntentsComposites(t *testing.T) {
	if IntentsGuildAll != 0xFFF {
		t.Errorf("IntentsGuildAll = %#x, want 0xfff", uint32(IntentsGuildAll))
	}
	if IntentsDirectMessageAll != 0x7000 {
		t.Errorf("IntentsDirectMessageAll = %#x, want 0x7000", uint32(IntentsDirectMessageAll))
	}
	if IntentsAll != 0x7FFF {
		t.Errorf("IntentsAll = %#x, want 0x7fff", uint32(IntentsAll))
	}
}

func TestUserFlagsTruncate(t *testing.T) {
	// Bits above the 32-bit target are masked off, everything below is
	// kept even when unknown.
	input := strconv.FormatUint((1<<40)|1, 10)
	var f UserFlags
	if err := json.Unmarshal([]byte(input), &f); err != nil {
		t.Fatalf("decoding %s: %v", input, err)
	}
	if f != 1 {
		t.Errorf("decoded to %d, want 1", f)
	}

	// The re-encoded value differs from the input by exactly the
	// masked bits.
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("encoding: %v", err)
	}
	got, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		t.Fatalf("parsing %s: %v", data, err)
	}
	if diff := ((1 << 40) | 1) ^ got; diff != 1<<40 {
		t.Errorf("input and re-encode differ by %#x, want %#x", diff, uint64(1)<<40)
	}
}

func TestUserFlagsKeepsUnknownLowBits(t *testing.T) {
	var f UserFlags
	if err := json.Unmarshal([]byte(strconv.FormatUint(1<<20, 10)), &f); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if f != 1<<20 {
		t.Errorf("decoded to %#x, want 1<<20 kept", uint32(f))
	}
}

func TestUserFlagsRejectsNonNumeric(t *testing.T) {
	var f UserFlags
	if err := json.Unmarshal([]byte(`"131072"`), &f); !IsInvalidValue(err) {
		t.Errorf("got %v, want InvalidValueError", err)
	}
}

func TestMessageFlagsStrict(t *testing.T) {
	var f MessageFlags
	if err := json.Unmarshal([]byte("7"), &f); err != nil {
		t.Fatalf("decoding 7: %v", err)
	}
	want := MessageFlagCrossposted | MessageFlagIsCrosspost | MessageFlagSuppressEmbeds
	if f != want {
		t.Errorf("decoded to %b, want %b", f, want)
	}
	if err := json.Unmarshal([]byte("32"), &f); !IsInvalidValue(err) {
		t.Errorf("decoding bit 5: got %v, want InvalidValueError", err)
	}
}

func TestSpeakingFlagsStrict(t *testing.T) {
	var f SpeakingFlags
	if err := json.Unmarshal([]byte("5"), &f); err != nil {
		t.Fatalf("decoding 5: %v", err)
	}
	if !f.Has(SpeakingMicrophone) || !f.Has(SpeakingPriority) || f.Has(SpeakingSoundshare) {
		t.Errorf("decoded to %b, want microphone|priority", f)
	}
	if err := json.Unmarshal([]byte("8"), &f); !IsInvalidValue(err) {
		t.Errorf("decoding bit 3: got %v, want InvalidValueError", err)
	}
}

func TestFlagsDecodeNull(t *testing.T) {
	f := UserFlags(3)
	if err := json.Unmarshal([]byte("null"), &f); err != nil {
		t.Fatalf("decoding null: %v", err)
	}
	if f != 0 {
		t.Errorf("null decoded to %d, want 0", f)
	}
}

func TestFlagsHas(t *testing.T) {
	f := IntentGuilds | IntentGuildMessages
	if !f.Has(IntentGuilds) {
		t.Error("Has(IntentGuilds) = false")
	}
	if !f.Has(IntentGuilds | IntentGuildMessages) {
		t.Error("Has(both) = false")
	}
	if f.Has(IntentDirectMessages) {
		t.Error("Has(IntentDirectMessages) = true")
	}
}
