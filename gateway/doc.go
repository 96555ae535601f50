// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

// Package gateway decodes inbound gateway frames into a closed event
// union and encodes outbound client commands into their envelope form.
//
// Inbound frames are JSON objects carrying an operation code ("op"),
// an optional dispatch tag ("t"), an optional sequence number ("s"),
// and a payload ("d"). UnmarshalPayload classifies a frame by (op, t),
// decoding the payload only once the pair is known, so envelope keys
// may arrive in any order. Frames the table does not know come back as
// Unknown values rather than errors: new server-side event types must
// never break an existing session.
//
// Outbound commands are the mirror image: MarshalCommand wraps a
// Command in {"op":N,"d":...} with the key order fixed. There is no
// command decode path, the client never receives its own commands.
//
// The package holds no state. Both directions are safe for concurrent
// use, and one malformed frame has no effect on the decoding of any
// other.
package gateway
