// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package discord

import (
	"strconv"
	"time"
)

// timestampFormat is the canonical encode form: UTC with millisecond
// precision, e.g. "2016-04-30T11:18:25.796Z".
const timestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is an ISO 8601 instant as Discord sends it. Decoding
// accepts any RFC 3339 form (fractional seconds, numeric offsets) and
// normalizes to UTC; encoding always produces the canonical UTC
// millisecond form. The zero value stands for an absent timestamp and
// encodes as null.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t, normalized to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC()}
}

// String returns the canonical encode form, or "never" for the zero
// value.
func (t Timestamp) String() string {
	if t.Time.IsZero() {
		return "never"
	}
	return t.Time.UTC().Format(timestampFormat)
}

// MarshalJSON encodes the canonical form, or null for the zero value.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(t.Time.UTC().Format(timestampFormat))), nil
}

// UnmarshalJSON decodes an RFC 3339 string. A JSON null produces the
// zero value.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	text := string(data)
	if text == "null" {
		*t = Timestamp{}
		return nil
	}
	s, err := strconv.Unquote(text)
	if err != nil {
		return &InvalidValueError{Type: "timestamp", Value: text, Reason: "not a string"}
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return &InvalidValueError{Type: "timestamp", Value: text, Reason: "not an RFC 3339 instant"}
	}
	t.Time = parsed.UTC()
	return nil
}
