// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package discord

import (
	"encoding/json"
	"testing"
)

func TestColorDecodeBounds(t *testing.T) {
	var c Color
	if err := json.Unmarshal([]byte("16777215"), &c); err != nil {
		t.Fatalf("decoding 16777215: %v", err)
	}
	if c != 0xFFFFFF {
		t.Errorf("decoded to %#x, want 0xffffff", uint32(c))
	}

	err := json.Unmarshal([]byte("16777216"), &c)
	if err == nil {
		t.Fatal("decoding 16777216 succeeded, want error")
	}
	if !IsInvalidValue(err) {
		t.Errorf("got %v, want InvalidValueError", err)
	}
}

func TestColorDecodeErrors(t *testing.T) {
	for _, input := range []string{`-1`, `1.5`, `"ff0000"`, `true`} {
		var c Color
		if err := json.Unmarshal([]byte(input), &c); !IsInvalidValue(err) {
			t.Errorf("decoding %s: got %v, want InvalidValueError", input, err)
		}
	}
}

func TestColorEncode(t *testing.T) {
	data, err := json.Marshal(Color(0x1A2B3C))
	if err != nil {
		t.Fatalf("encoding: %v", err)
	}
	if got, want := string(data), "1715004"; got != want {
		t.Errorf("encoded to %s, want %s", got, want)
	}
}

func TestParseColor(t *testing.T) {
	hash, err := ParseColor("#1a2b3c")
	if err != nil {
		t.Fatalf("ParseColor(#1a2b3c): %v", err)
	}
	hex, err := ParseColor("0x1a2b3c")
	if err != nil {
		t.Fatalf("ParseColor(0x1a2b3c): %v", err)
	}
	if hash != hex {
		t.Errorf("#1a2b3c parsed to %v, 0x1a2b3c to %v, want equal", hash, hex)
	}
	if hash != 0x1A2B3C {
		t.Errorf("parsed to %#x, want 0x1a2b3c", uint32(hash))
	}

	upper, err := ParseColor("#1A2B3C")
	if err != nil || upper != hash {
		t.Errorf("ParseColor(#1A2B3C) = %v, %v, want %v, nil", upper, err, hash)
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, input := range []string{"1a2b3c", "#1a2b3", "#1a2b3cd", "0x", "#gggggg", ""} {
		if _, err := ParseColor(input); err == nil {
			t.Errorf("ParseColor(%q) succeeded, want error", input)
		}
	}
}

func TestColorRGB(t *testing.T) {
	c := FromRGB(0x1A, 0x2B, 0x3C)
	if c != 0x1A2B3C {
		t.Fatalf("FromRGB = %#x, want 0x1a2b3c", uint32(c))
	}
	r, g, b := c.RGB()
	if r != 0x1A || g != 0x2B || b != 0x3C {
		t.Errorf("RGB() = %#x, %#x, %#x, want 0x1a, 0x2b, 0x3c", r, g, b)
	}
}

func TestColorString(t *testing.T) {
	if got := Color(0x1A2B3C).String(); got != "#1a2b3c" {
		t.Errorf("String() = %q, want #1a2b3c", got)
	}
	if got := Color(0).String(); got != "#000000" {
		t.Errorf("zero String() = %q, want #000000", got)
	}
	if got := ColorWhite.String(); got != "#ffffff" {
		t.Errorf("white String() = %q, want #ffffff", got)
	}
}
