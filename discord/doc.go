// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

// Package discord defines the wire-level scalar types and entity
// records shared by the gateway and voice codecs: snowflake IDs and
// their typed wrappers, timestamps, colors, bit flag sets, and the
// plain structs (User, Guild, Channel, Message, and so on) that ride
// inside event payloads.
//
// Everything here is a value type with no hidden state. Decoding is
// lenient about unknown object keys and strict about the scalar
// contracts: a snowflake must be decimal digits, a color must fit 24
// bits, a strict flag set must contain only known bits. Violations
// surface as the shared error taxonomy in errors.go so callers can
// match with errors.As regardless of which codec produced them.
package discord
