// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package discord

import (
	"errors"
	"fmt"
)

// MissingFieldError reports a required envelope key that never
// appeared in a frame. Callers can match it with errors.As:
//
//	var missing *discord.MissingFieldError
//	if errors.As(err, &missing) {
//	    if missing.Field == "d" { ... }
//	}
type MissingFieldError struct {
	// Field is the wire name of the absent key ("op", "t", "d").
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

// DuplicateFieldError reports an envelope key that appeared more than
// once in a single frame.
type DuplicateFieldError struct {
	// Field is the wire name of the repeated key.
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("duplicate field %q", e.Field)
}

// InvalidValueError reports a token that was present but could not
// decode into its target type: a snowflake that is not decimal digits,
// a color above 24 bits, a strict flag set with unknown bits, a
// malformed timestamp.
type InvalidValueError struct {
	// Type names the target type ("snowflake", "color", "intents").
	Type string
	// Value is the offending token, verbatim from the wire.
	Value string
	// Reason says what made the token undecodable. May be empty when
	// the type name alone is enough.
	Reason string
}

func (e *InvalidValueError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid %s %s", e.Type, e.Value)
	}
	return fmt.Sprintf("invalid %s %s: %s", e.Type, e.Value, e.Reason)
}

// IsMissingField reports whether err is a *MissingFieldError for the
// named field.
func IsMissingField(err error, field string) bool {
	var missing *MissingFieldError
	return errors.As(err, &missing) && missing.Field == field
}

// IsDuplicateField reports whether err is a *DuplicateFieldError for
// the named field.
func IsDuplicateField(err error, field string) bool {
	var dup *DuplicateFieldError
	return errors.As(err, &dup) && dup.Field == field
}

// IsInvalidValue reports whether err is an *InvalidValueError.
func IsInvalidValue(err error) bool {
	var invalid *InvalidValueError
	return errors.As(err, &invalid)
}
