// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package main

import "testing"

func TestFuzzyMatchBasic(t *testing.T) {
	result := fuzzyMatch("MessageCreate(user=dana#0001, channel_id=222)@42", []rune("message"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for substring match")
	}
	if len(result.Positions) == 0 {
		t.Fatal("expected non-empty match positions")
	}
}

func TestFuzzyMatchNonContiguous(t *testing.T) {
	// "gmu" should match "GuildMemberUpdate" on the word boundaries.
	result := fuzzyMatch("GuildMemberUpdate(guild_id=333)@7", []rune("gmu"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for non-contiguous fuzzy match")
	}
}

func TestFuzzyMatchNoMatch(t *testing.T) {
	result := fuzzyMatch("Hello", []rune("xyz"), nil)
	if result.Score != 0 {
		t.Errorf("expected zero score for no match, got %d", result.Score)
	}
	if len(result.Positions) != 0 {
		t.Errorf("expected empty positions for no match, got %v", result.Positions)
	}
}

func TestFuzzyMatchCaseInsensitive(t *testing.T) {
	// Event summaries are upper camel case and dispatch tags are all
	// caps; a lowercase query must match both.
	result := fuzzyMatch("HeartbeatAck", []rune("ack"), nil)
	if result.Score <= 0 {
		t.Fatalf("expected case-insensitive match, got score=%d", result.Score)
	}

	result = fuzzyMatch("SessionDescription(mode=xsalsa20_poly1305)", []rune("SESSION"), nil)
	if result.Score <= 0 {
		t.Fatalf("expected match for uppercase query, got score=%d", result.Score)
	}
}

func TestFuzzyMatchEmptyPattern(t *testing.T) {
	result := fuzzyMatch("anything", []rune{}, nil)
	if result.Score != 0 {
		t.Errorf("expected zero score for empty pattern, got %d", result.Score)
	}
}

func TestFuzzyMatchPositionsInBounds(t *testing.T) {
	text := "Ready(username=dana)@1"
	result := fuzzyMatch(text, []rune("ready"), nil)
	if result.Score <= 0 {
		t.Fatal("expected a match")
	}
	for _, position := range result.Positions {
		if position < 0 || position >= len([]rune(text)) {
			t.Errorf("position %d out of bounds for %q", position, text)
		}
	}
}
