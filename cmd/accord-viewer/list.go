// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// listRenderer renders frame rows at a fixed width. Row layout:
//
//	 09:26:53.589 rx gateway MessageCreate(user=jo, channel_id=55)@107
//
// The time column is omitted entirely for interchange formats, which
// carry no timestamps.
type listRenderer struct {
	theme     Theme
	width     int
	showTimes bool
}

// RenderRow renders one frame row. matchPositions contains rune
// indices in the summary to highlight from the active fuzzy filter.
func (renderer listRenderer) RenderRow(row frameRow, selected bool, matchPositions []int) string {
	if selected {
		return renderer.renderSelectedRow(row, matchPositions)
	}
	return renderer.renderNormalRow(row, matchPositions)
}

func (renderer listRenderer) renderNormalRow(row frameRow, matchPositions []int) string {
	var columns strings.Builder
	columns.WriteString(" ")

	if renderer.showTimes {
		timeStyle := lipgloss.NewStyle().Foreground(renderer.theme.FaintText)
		columns.WriteString(timeStyle.Render(timeColumn(row.record.Time)))
		columns.WriteString(" ")
	}

	directionStyle := lipgloss.NewStyle().
		Foreground(renderer.theme.DirectionColor(row.record.Direction))
	columns.WriteString(directionStyle.Render(row.record.Direction.String()))
	columns.WriteString(" ")

	socketStyle := lipgloss.NewStyle().
		Foreground(renderer.theme.SocketColor(row.record.Socket))
	columns.WriteString(socketStyle.Render(fmt.Sprintf("%-7s", row.record.Socket)))
	columns.WriteString(" ")

	summaryStyle := lipgloss.NewStyle().Foreground(renderer.summaryColor(row))
	if len(matchPositions) > 0 {
		highlightStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(renderer.theme.MatchForeground)
		columns.WriteString(highlightSummary(row.summary, matchPositions, summaryStyle, highlightStyle))
	} else {
		columns.WriteString(summaryStyle.Render(row.summary))
	}

	return lipgloss.NewStyle().
		Width(renderer.width).
		MaxWidth(renderer.width).
		Render(columns.String())
}

// renderSelectedRow renders the cursor row with a highlight
// background. All text uses the selected foreground color; filter
// matches use bold+underline because a color change would be subtle
// against the selection background.
func (renderer listRenderer) renderSelectedRow(row frameRow, matchPositions []int) string {
	baseStyle := lipgloss.NewStyle().
		Background(renderer.theme.SelectedBackground).
		Foreground(renderer.theme.SelectedForeground)

	var columns strings.Builder
	columns.WriteString(" ")
	if renderer.showTimes {
		columns.WriteString(timeColumn(row.record.Time))
		columns.WriteString(" ")
	}
	columns.WriteString(row.record.Direction.String())
	columns.WriteString(" ")
	columns.WriteString(fmt.Sprintf("%-7s", row.record.Socket))
	columns.WriteString(" ")

	prefix := baseStyle.Render(columns.String())

	var summaryRendered string
	if len(matchPositions) > 0 {
		highlightStyle := baseStyle.Bold(true).Underline(true)
		summaryRendered = highlightSummary(row.summary, matchPositions, baseStyle, highlightStyle)
	} else {
		summaryRendered = baseStyle.Render(row.summary)
	}

	return baseStyle.
		Width(renderer.width).
		MaxWidth(renderer.width).
		Render(prefix + summaryRendered)
}

// summaryColor picks the summary color for a row: errors stand out,
// keepalive noise fades, everything else reads normally.
func (renderer listRenderer) summaryColor(row frameRow) lipgloss.Color {
	switch {
	case row.err != nil:
		return renderer.theme.ErrorColor
	case row.noise:
		return renderer.theme.NoiseColor
	default:
		return renderer.theme.DispatchColor
	}
}

// timeColumn formats a record timestamp for the fixed-width time
// column, in UTC with millisecond precision.
func timeColumn(timestamp time.Time) string {
	if timestamp.IsZero() {
		return strings.Repeat(" ", 12)
	}
	return timestamp.UTC().Format("15:04:05.000")
}

// highlightSummary renders a summary with character-level highlighting
// at the given rune positions. Consecutive runs of same-style
// characters are batched into a single Render call to keep ANSI
// output compact.
func highlightSummary(summary string, positions []int, baseStyle, highlightStyle lipgloss.Style) string {
	if len(positions) == 0 {
		return baseStyle.Render(summary)
	}

	positionSet := make(map[int]bool, len(positions))
	for _, position := range positions {
		positionSet[position] = true
	}

	runes := []rune(summary)
	var result strings.Builder
	runStart := 0
	isHighlighted := positionSet[0]

	for index := 1; index <= len(runes); index++ {
		currentHighlighted := index < len(runes) && positionSet[index]
		if currentHighlighted != isHighlighted || index == len(runes) {
			chunk := string(runes[runStart:index])
			if isHighlighted {
				result.WriteString(highlightStyle.Render(chunk))
			} else {
				result.WriteString(baseStyle.Render(chunk))
			}
			runStart = index
			isHighlighted = currentHighlighted
		}
	}

	return result.String()
}
