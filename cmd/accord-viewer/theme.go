// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/accordlib/accord/capture"
)

// Theme defines the color palette for the capture viewer. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Direction badges (rx is server traffic, tx is ours).
	RxColor lipgloss.Color
	TxColor lipgloss.Color

	// Socket column.
	GatewayColor lipgloss.Color
	VoiceColor   lipgloss.Color

	// Frame summaries: dispatches carry the session's actual content,
	// keepalive traffic is noise, and undecodable frames are errors.
	DispatchColor lipgloss.Color
	NoiseColor    lipgloss.Color
	ErrorColor    lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// ActiveAccent marks the focused pane's scrollbar thumb.
	ActiveAccent lipgloss.Color

	// Filter match highlighting in the frame list.
	MatchForeground lipgloss.Color

	// Markdown message previews.
	CodeForeground lipgloss.Color
	LinkForeground lipgloss.Color
}

// DirectionColor returns the badge color for a transfer direction.
func (theme Theme) DirectionColor(direction capture.Direction) lipgloss.Color {
	if direction == capture.DirectionTx {
		return theme.TxColor
	}
	return theme.RxColor
}

// SocketColor returns the column color for a socket kind.
func (theme Theme) SocketColor(socket capture.Socket) lipgloss.Color {
	if socket == capture.SocketVoice {
		return theme.VoiceColor
	}
	return theme.GatewayColor
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	RxColor: lipgloss.Color("114"), // green
	TxColor: lipgloss.Color("175"), // pink

	GatewayColor: lipgloss.Color("110"), // steel blue
	VoiceColor:   lipgloss.Color("140"), // purple

	DispatchColor: lipgloss.Color("252"), // same as NormalText
	NoiseColor:    lipgloss.Color("242"), // dim gray, fades heartbeats
	ErrorColor:    lipgloss.Color("167"), // red

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	ActiveAccent: lipgloss.Color("220"), // amber

	MatchForeground: lipgloss.Color("215"), // orange

	CodeForeground: lipgloss.Color("150"), // pale green
	LinkForeground: lipgloss.Color("75"),  // blue
}
