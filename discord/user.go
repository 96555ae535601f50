// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package discord

// Status is a user's presence status. Sent in the status-update
// command and carried in presence payloads.
type Status string

const (
	StatusOnline       Status = "online"
	StatusDoNotDisturb Status = "dnd"
	StatusIdle         Status = "idle"
	StatusInvisible    Status = "invisible"
	StatusOffline      Status = "offline"
)

// User is a Discord account as it appears in event payloads. Optional
// profile fields take their zero values when the gateway omits them.
type User struct {
	ID            UserID    `json:"id"`
	Username      string    `json:"username"`
	Discriminator string    `json:"discriminator"`
	Avatar        string    `json:"avatar,omitempty"`
	Bot           bool      `json:"bot,omitempty"`
	System        bool      `json:"system,omitempty"`
	MFAEnabled    bool      `json:"mfa_enabled,omitempty"`
	Locale        string    `json:"locale,omitempty"`
	Verified      bool      `json:"verified,omitempty"`
	Email         string    `json:"email,omitempty"`
	Flags         UserFlags `json:"flags,omitempty"`
	PremiumType   uint64    `json:"premium_type,omitempty"`
	PublicFlags   UserFlags `json:"public_flags,omitempty"`
}

// String returns the classic "username#discriminator" tag.
func (u User) String() string {
	return u.Username + "#" + u.Discriminator
}
