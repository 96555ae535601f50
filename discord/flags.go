// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package discord

import (
	"math"
	"strconv"
)

// Bit flag sets. All four are 32-bit in memory and encode as a plain
// JSON integer, but they split into two decode policies:
//
//   - Strict (Intents, MessageFlags, SpeakingFlags): the wire value
//     must fit 32 bits and contain only known bits. Anything else is
//     an InvalidValueError, and every known combination round-trips
//     exactly.
//   - Truncating (UserFlags): the wire form is declared 64-bit and
//     grows without notice, so decoding masks to the low 32 bits and
//     keeps whatever bits arrive there, known or not.

// Intents selects which event groups the gateway will deliver to a
// session. Sent in Identify; never received.
type Intents uint32

const (
	IntentGuilds Intents = 1 << iota
	IntentGuildMembers
	IntentGuildBans
	IntentGuildEmojis
	IntentGuildIntegrations
	IntentGuildWebhooks
	IntentGuildInvites
	IntentGuildVoiceStates
	IntentGuildPresences
	IntentGuildMessages
	IntentGuildMessageReactions
	IntentGuildMessageTyping
	IntentDirectMessages
	IntentDirectMessageReactions
	IntentDirectMessageTyping
)

const (
	// IntentsGuildAll is every guild-scoped intent.
	IntentsGuildAll = IntentGuilds | IntentGuildMembers | IntentGuildBans |
		IntentGuildEmojis | IntentGuildIntegrations | IntentGuildWebhooks |
		IntentGuildInvites | IntentGuildVoiceStates | IntentGuildPresences |
		IntentGuildMessages | IntentGuildMessageReactions | IntentGuildMessageTyping

	// IntentsDirectMessageAll is every direct-message intent.
	IntentsDirectMessageAll = IntentDirectMessages | IntentDirectMessageReactions |
		IntentDirectMessageTyping

	// IntentsAll is every known intent.
	IntentsAll = IntentsGuildAll | IntentsDirectMessageAll
)

// Has reports whether every bit in bits is set.
func (i Intents) Has(bits Intents) bool { return i&bits == bits }

// MarshalJSON encodes the raw bitmask.
func (i Intents) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(i), 10), nil
}

// UnmarshalJSON decodes under the strict policy.
func (i *Intents) UnmarshalJSON(data []byte) error {
	v, err := decodeStrictFlags(data, "intents", uint64(IntentsAll))
	if err != nil {
		return err
	}
	*i = Intents(v)
	return nil
}

// UserFlags are the account badges on a user profile.
type UserFlags uint32

const (
	UserFlagEmployee             UserFlags = 1 << 0
	UserFlagPartner              UserFlags = 1 << 1
	UserFlagHypeSquadEvents      UserFlags = 1 << 2
	UserFlagBugHunterLevel1      UserFlags = 1 << 3
	UserFlagHouseBravery         UserFlags = 1 << 6
	UserFlagHouseBrilliance      UserFlags = 1 << 7
	UserFlagHouseBalance         UserFlags = 1 << 8
	UserFlagEarlySupporter       UserFlags = 1 << 9
	UserFlagTeamUser             UserFlags = 1 << 10
	UserFlagSystem               UserFlags = 1 << 12
	UserFlagBugHunterLevel2      UserFlags = 1 << 14
	UserFlagVerifiedBot          UserFlags = 1 << 16
	UserFlagVerifiedBotDeveloper UserFlags = 1 << 17
)

// Has reports whether every bit in bits is set.
func (f UserFlags) Has(bits UserFlags) bool { return f&bits == bits }

// MarshalJSON encodes the raw bitmask.
func (f UserFlags) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(f), 10), nil
}

// UnmarshalJSON decodes under the truncating policy: the wire value is
// read as a 64-bit integer and masked to the low 32 bits. Unknown bits
// inside that width are kept.
func (f *UserFlags) UnmarshalJSON(data []byte) error {
	v, err := parseFlagToken(data, "user flags")
	if err != nil {
		return err
	}
	*f = UserFlags(uint32(v))
	return nil
}

// MessageFlags mark how a message was delivered or displayed.
type MessageFlags uint32

const (
	MessageFlagCrossposted          MessageFlags = 1 << 0
	MessageFlagIsCrosspost          MessageFlags = 1 << 1
	MessageFlagSuppressEmbeds       MessageFlags = 1 << 2
	MessageFlagSourceMessageDeleted MessageFlags = 1 << 3
	MessageFlagUrgent               MessageFlags = 1 << 4
	MessageFlagEphemeral            MessageFlags = 1 << 6
)

const knownMessageFlags = MessageFlagCrossposted | MessageFlagIsCrosspost |
	MessageFlagSuppressEmbeds | MessageFlagSourceMessageDeleted |
	MessageFlagUrgent | MessageFlagEphemeral

// Has reports whether every bit in bits is set.
func (f MessageFlags) Has(bits MessageFlags) bool { return f&bits == bits }

// MarshalJSON encodes the raw bitmask.
func (f MessageFlags) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(f), 10), nil
}

// UnmarshalJSON decodes under the strict policy.
func (f *MessageFlags) UnmarshalJSON(data []byte) error {
	v, err := decodeStrictFlags(data, "message flags", uint64(knownMessageFlags))
	if err != nil {
		return err
	}
	*f = MessageFlags(v)
	return nil
}

// SpeakingFlags indicate how a voice connection is transmitting.
type SpeakingFlags uint32

const (
	SpeakingMicrophone SpeakingFlags = 1 << 0
	SpeakingSoundshare SpeakingFlags = 1 << 1
	SpeakingPriority   SpeakingFlags = 1 << 2
)

const knownSpeakingFlags = SpeakingMicrophone | SpeakingSoundshare | SpeakingPriority

// Has reports whether every bit in bits is set.
func (f SpeakingFlags) Has(bits SpeakingFlags) bool { return f&bits == bits }

// MarshalJSON encodes the raw bitmask.
func (f SpeakingFlags) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(f), 10), nil
}

// UnmarshalJSON decodes under the strict policy.
func (f *SpeakingFlags) UnmarshalJSON(data []byte) error {
	v, err := decodeStrictFlags(data, "speaking flags", uint64(knownSpeakingFlags))
	if err != nil {
		return err
	}
	*f = SpeakingFlags(v)
	return nil
}

// parseFlagToken reads the numeric token shared by both policies. A
// JSON null counts as zero.
func parseFlagToken(data []byte, typeName string) (uint64, error) {
	text := string(data)
	if text == "null" {
		return 0, nil
	}
	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, &InvalidValueError{Type: typeName, Value: text, Reason: "not an unsigned integer"}
	}
	return v, nil
}

// decodeStrictFlags enforces the strict policy: the value must fit 32
// bits and stay inside the known bit set.
func decodeStrictFlags(data []byte, typeName string, known uint64) (uint32, error) {
	v, err := parseFlagToken(data, typeName)
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, &InvalidValueError{Type: typeName, Value: string(data), Reason: "exceeds 32 bits"}
	}
	if v&^known != 0 {
		return 0, &InvalidValueError{
			Type:   typeName,
			Value:  string(data),
			Reason: "unknown bits 0x" + strconv.FormatUint(v&^known, 16),
		}
	}
	return uint32(v), nil
}
