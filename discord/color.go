// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package discord

import (
	"strconv"
	"strings"
)

// Color is a 24-bit RGB color as used for roles and embeds. The wire
// form is a plain JSON integer; anything above 0xFFFFFF is rejected on
// decode.
type Color uint32

// Standard palette, matching Discord's brand colors.
const (
	ColorBlurple Color = 0x5865F2
	ColorGreen   Color = 0x57F287
	ColorYellow  Color = 0xFEE75C
	ColorFuchsia Color = 0xEB459E
	ColorRed     Color = 0xED4245
	ColorWhite   Color = 0xFFFFFF
	ColorBlack   Color = 0x000000
)

// FromRGB packs three 8-bit channels into a Color.
func FromRGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// ParseColor parses "#rrggbb" or "0xrrggbb" with exactly six hex
// digits, case-insensitive.
func ParseColor(s string) (Color, error) {
	var digits string
	switch {
	case strings.HasPrefix(s, "#"):
		digits = s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		digits = s[2:]
	default:
		return 0, &InvalidValueError{Type: "color", Value: strconv.Quote(s), Reason: `expected "#rrggbb" or "0xrrggbb"`}
	}
	if len(digits) != 6 {
		return 0, &InvalidValueError{Type: "color", Value: strconv.Quote(s), Reason: "expected exactly six hex digits"}
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, &InvalidValueError{Type: "color", Value: strconv.Quote(s), Reason: "expected exactly six hex digits"}
	}
	return Color(v), nil
}

// RGB unpacks the three 8-bit channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// String returns the "#rrggbb" form.
func (c Color) String() string {
	return "#" + strconv.FormatUint(uint64(c)|0x1000000, 16)[1:]
}

// MarshalJSON encodes the color as a plain integer.
func (c Color) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(c), 10), nil
}

// UnmarshalJSON decodes a JSON integer, rejecting values that do not
// fit 24 bits. A JSON null produces the zero value.
func (c *Color) UnmarshalJSON(data []byte) error {
	text := string(data)
	if text == "null" {
		*c = 0
		return nil
	}
	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return &InvalidValueError{Type: "color", Value: text, Reason: "not an unsigned integer"}
	}
	if v > 0xFFFFFF {
		return &InvalidValueError{Type: "color", Value: text, Reason: "exceeds 24 bits"}
	}
	*c = Color(v)
	return nil
}
