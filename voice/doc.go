// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

// Package voice implements the codec for the per-call voice control
// channel. It is the small sibling of package gateway: the same
// envelope discipline (op and d exactly once, any key order, unknown
// keys ignored) but no type tag and no sequence number, so dispatch
// goes by operation code alone.
//
// The package stops at the control plane. It negotiates transport
// parameters and seals media payloads, but moving RTP packets is the
// caller's business.
package voice
