// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package voice

import "fmt"

// Op is a voice gateway operation code. The wire form is an unsigned
// 8-bit JSON integer. Speaking uses the same code in both directions.
type Op uint8

// Operation codes the client sends.
const (
	OpIdentify       Op = 0
	OpSelectProtocol Op = 1
	OpHeartbeat      Op = 3
	OpSpeaking       Op = 5
	OpResume         Op = 7
)

// Operation codes the client receives. Anything else decodes as an
// Unknown event carrying the code.
const (
	OpReady              Op = 2
	OpSessionDescription Op = 4
	OpHeartbeatAck       Op = 6
	OpHello              Op = 8
	OpResumed            Op = 9
)

// String names the operation for logs and capture summaries.
func (op Op) String() string {
	switch op {
	case OpIdentify:
		return "Identify"
	case OpSelectProtocol:
		return "SelectProtocol"
	case OpReady:
		return "Ready"
	case OpHeartbeat:
		return "Heartbeat"
	case OpSessionDescription:
		return "SessionDescription"
	case OpSpeaking:
		return "Speaking"
	case OpHeartbeatAck:
		return "HeartbeatAck"
	case OpResume:
		return "Resume"
	case OpHello:
		return "Hello"
	case OpResumed:
		return "Resumed"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(op))
	}
}
