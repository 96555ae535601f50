// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package gateway

import "fmt"

// Op is a gateway operation code. The wire form is an unsigned 8-bit
// JSON integer.
type Op uint8

// Operation codes the client sends.
const (
	OpHeartbeat           Op = 1
	OpIdentify            Op = 2
	OpUpdateStatus        Op = 3
	OpUpdateVoiceState    Op = 4
	OpResume              Op = 6
	OpRequestGuildMembers Op = 8
)

// Operation codes the client receives. Anything else decodes as an
// Unknown event carrying the code.
const (
	OpDispatch       Op = 0
	OpInvalidSession Op = 9
	OpHello          Op = 10
	OpHeartbeatAck   Op = 11
)

// String names the operation for logs and capture summaries.
func (op Op) String() string {
	switch op {
	case OpDispatch:
		return "Dispatch"
	case OpHeartbeat:
		return "Heartbeat"
	case OpIdentify:
		return "Identify"
	case OpUpdateStatus:
		return "UpdateStatus"
	case OpUpdateVoiceState:
		return "UpdateVoiceState"
	case OpResume:
		return "Resume"
	case OpRequestGuildMembers:
		return "RequestGuildMembers"
	case OpInvalidSession:
		return "InvalidSession"
	case OpHello:
		return "Hello"
	case OpHeartbeatAck:
		return "HeartbeatAck"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(op))
	}
}
