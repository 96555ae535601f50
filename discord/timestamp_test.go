// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package discord

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			"utc with millis",
			`"2016-04-30T11:18:25.796Z"`,
			time.Date(2016, time.April, 30, 11, 18, 25, 796_000_000, time.UTC),
		},
		{
			"numeric offset",
			`"2021-03-02T18:00:00+01:00"`,
			time.Date(2021, time.March, 2, 17, 0, 0, 0, time.UTC),
		},
		{
			"microsecond precision",
			`"2021-01-14T22:29:52.822918+00:00"`,
			time.Date(2021, time.January, 14, 22, 29, 52, 822_918_000, time.UTC),
		},
		{
			"no fraction",
			`"2015-01-01T00:00:00Z"`,
			time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(tt.input), &ts); err != nil {
				t.Fatalf("decoding %s: %v", tt.input, err)
			}
			if !ts.Time.Equal(tt.want) {
				t.Errorf("decoded to %v, want %v", ts.Time, tt.want)
			}
			if ts.Location() != time.UTC {
				t.Errorf("location = %v, want UTC", ts.Location())
			}
		})
	}
}

func TestTimestampDecodeNull(t *testing.T) {
	ts := NewTimestamp(time.Now())
	if err := json.Unmarshal([]byte("null"), &ts); err != nil {
		t.Fatalf("decoding null: %v", err)
	}
	if !ts.IsZero() {
		t.Errorf("null decoded to %v, want zero", ts)
	}
}

func TestTimestampDecodeErrors(t *testing.T) {
	for _, input := range []string{`"yesterday"`, `"2016-04-30"`, `1461972105`, `true`} {
		var ts Timestamp
		err := json.Unmarshal([]byte(input), &ts)
		if err == nil {
			t.Fatalf("decoding %s succeeded, want error", input)
		}
		if !IsInvalidValue(err) {
			t.Errorf("decoding %s: got %v, want InvalidValueError", input, err)
		}
	}
}

func TestTimestampEncode(t *testing.T) {
	ts := NewTimestamp(time.Date(2016, time.April, 30, 11, 18, 25, 796_000_000, time.FixedZone("CET", 3600)))
	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("encoding: %v", err)
	}
	if got, want := string(data), `"2016-04-30T10:18:25.796Z"`; got != want {
		t.Errorf("encoded to %s, want %s", got, want)
	}
}

func TestTimestampZeroEncodesNull(t *testing.T) {
	data, err := json.Marshal(Timestamp{})
	if err != nil {
		t.Fatalf("encoding: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("encoded to %s, want null", data)
	}
}

func TestTimestampString(t *testing.T) {
	ts := NewTimestamp(time.Date(2016, time.April, 30, 11, 18, 25, 796_000_000, time.UTC))
	if got := ts.String(); got != "2016-04-30T11:18:25.796Z" {
		t.Errorf("String() = %q", got)
	}
	if got := (Timestamp{}).String(); got != "never" {
		t.Errorf("zero String() = %q, want never", got)
	}
}
