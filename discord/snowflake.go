// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package discord

import (
	"strconv"
	"time"
)

// Epoch is the Discord epoch, 2015-01-01T00:00:00Z, in milliseconds
// since the Unix epoch. Snowflake timestamps count from here.
const Epoch int64 = 1420070400000

// Snowflake is a 64-bit Discord ID. The top 42 bits hold a millisecond
// timestamp relative to Epoch, followed by a 5-bit worker ID, a 5-bit
// process ID, and a 12-bit per-process increment.
//
// The wire form is asymmetric: decoding accepts both a JSON number and
// a JSON string of decimal digits, encoding always produces the string
// form. JavaScript peers silently corrupt integers above 2^53, so the
// string form is the only safe one to emit. Parsing goes through the
// raw token text rather than a float so large IDs survive exactly.
type Snowflake uint64

// ParseSnowflake converts a decimal digit string into a Snowflake.
func ParseSnowflake(s string) (Snowflake, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &InvalidValueError{Type: "snowflake", Value: strconv.Quote(s), Reason: "not a decimal unsigned integer"}
	}
	return Snowflake(v), nil
}

// Time returns the creation time encoded in the snowflake, in UTC.
func (s Snowflake) Time() time.Time {
	return time.UnixMilli(int64(s>>22) + Epoch).UTC()
}

// Worker returns the 5-bit worker ID.
func (s Snowflake) Worker() uint8 {
	return uint8((s & 0x3E0000) >> 17)
}

// PID returns the 5-bit process ID.
func (s Snowflake) PID() uint8 {
	return uint8((s & 0x1F000) >> 12)
}

// Increment returns the 12-bit per-process increment.
func (s Snowflake) Increment() uint16 {
	return uint16(s & 0xFFF)
}

// IsZero reports whether the snowflake is unset. Discord never issues
// the zero ID.
func (s Snowflake) IsZero() bool { return s == 0 }

// String returns the decimal form, matching the wire encoding minus
// the quotes.
func (s Snowflake) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// MarshalJSON encodes the snowflake as a decimal string.
func (s Snowflake) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 22)
	buf = append(buf, '"')
	buf = strconv.AppendUint(buf, uint64(s), 10)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON decodes either wire form. A JSON null produces the
// zero value.
func (s *Snowflake) UnmarshalJSON(data []byte) error {
	text := string(data)
	if text == "null" {
		*s = 0
		return nil
	}
	digits := text
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		digits = text[1 : len(text)-1]
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return &InvalidValueError{Type: "snowflake", Value: text, Reason: "not a decimal unsigned integer"}
	}
	*s = Snowflake(v)
	return nil
}
