// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

// Package jsonscan walks the top-level keys of a JSON object in wire
// order, handing each value to the caller as a raw, undecoded slice.
//
// The gateway and voice envelope decoders are built on this scanner:
// they need to see keys in the order the peer wrote them (to detect
// duplicates) and to defer payload decoding until the envelope's
// discriminator fields are known. encoding/json's struct decoding can
// do neither, so the scanner drives a json.Decoder token stream
// directly.
package jsonscan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Scanner iterates over the key/value pairs of a single JSON object.
// It does not interpret values and it does not deduplicate keys: a key
// the peer sent twice is yielded twice, in order.
type Scanner struct {
	dec     *json.Decoder
	key     string
	value   json.RawMessage
	err     error
	started bool
	done    bool
}

// New returns a Scanner over data, which must hold exactly one JSON
// object and nothing else. Malformed input is reported by Err after
// the scan stops.
func New(data []byte) *Scanner {
	return &Scanner{dec: json.NewDecoder(bytes.NewReader(data))}
}

// Next advances to the next key/value pair. It returns false when the
// object is exhausted or an error occurred; the caller must check Err
// afterwards.
func (s *Scanner) Next() bool {
	if s.err != nil || s.done {
		return false
	}
	if !s.started {
		tok, err := s.dec.Token()
		if err != nil {
			s.err = fmt.Errorf("reading value: %w", err)
			return false
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '{' {
			s.err = fmt.Errorf("expected object, found %v", tok)
			return false
		}
		s.started = true
	}
	if !s.dec.More() {
		// Consume the closing brace, then require EOF: a frame is
		// one object, trailing bytes mean a framing bug upstream.
		if _, err := s.dec.Token(); err != nil {
			s.err = fmt.Errorf("reading object end: %w", err)
			return false
		}
		if _, err := s.dec.Token(); !errors.Is(err, io.EOF) {
			s.err = errors.New("trailing data after object")
			return false
		}
		s.done = true
		return false
	}
	tok, err := s.dec.Token()
	if err != nil {
		s.err = fmt.Errorf("reading key: %w", err)
		return false
	}
	key, ok := tok.(string)
	if !ok {
		// Inside an object the decoder only yields string keys; a
		// non-string token here means the decoder state is corrupt.
		s.err = fmt.Errorf("object key is %T, not string", tok)
		return false
	}
	var raw json.RawMessage
	if err := s.dec.Decode(&raw); err != nil {
		s.err = fmt.Errorf("reading value of %q: %w", key, err)
		return false
	}
	s.key = key
	s.value = raw
	return true
}

// Key returns the key of the current pair. Valid only after a true
// Next.
func (s *Scanner) Key() string { return s.key }

// Value returns the raw bytes of the current pair's value, exactly as
// they appeared on the wire. Valid only after a true Next.
func (s *Scanner) Value() json.RawMessage { return s.value }

// Err returns the first error encountered, or nil if the object was
// scanned to completion.
func (s *Scanner) Err() error { return s.err }
