// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/accordlib/accord/gateway"
	"github.com/accordlib/accord/internal/highlight"
)

// detailHeaderLines is the fixed header height: frame metadata, event
// line, and the separator rule.
const detailHeaderLines = 3

// DetailPane shows the selected frame: a fixed metadata header above
// a scrollable body with the highlighted payload and, for messages, a
// markdown preview of the content.
type DetailPane struct {
	theme  Theme
	width  int
	height int

	viewport viewport.Model

	hasRow bool
	row    frameRow
	header string
}

// NewDetailPane creates an empty detail pane.
func NewDetailPane(theme Theme) DetailPane {
	return DetailPane{theme: theme}
}

// bodyHeight returns the number of lines available for the scrollable
// viewport body.
func (pane DetailPane) bodyHeight() int {
	result := pane.height - detailHeaderLines
	if result < 1 {
		result = 1
	}
	return result
}

// contentWidth returns the usable width for text content (total width
// minus the left padding column and right scrollbar column). Zero
// until the first window size arrives.
func (pane DetailPane) contentWidth() int {
	result := pane.width - 2
	if result < 0 {
		result = 0
	}
	return result
}

// SetSize updates the pane dimensions. If the width changed and a
// frame is displayed, the content re-renders at the new width so
// wrapping stays correct, preserving the scroll position as far as
// the new content allows.
func (pane *DetailPane) SetSize(width, height int) {
	previousWidth := pane.width
	pane.width = width
	pane.height = height
	pane.viewport.Width = pane.contentWidth()
	pane.viewport.Height = pane.bodyHeight()

	if pane.hasRow && width != previousWidth {
		previousOffset := pane.viewport.YOffset
		pane.render()
		maxOffset := pane.viewport.TotalLineCount() - pane.viewport.Height
		if maxOffset < 0 {
			maxOffset = 0
		}
		if previousOffset > maxOffset {
			previousOffset = maxOffset
		}
		pane.viewport.SetYOffset(previousOffset)
	}
}

// SetContent displays a frame. Re-selecting the already-displayed
// frame keeps the scroll position; anything else renders fresh and
// jumps to the top.
func (pane *DetailPane) SetContent(row frameRow) {
	if pane.hasRow && pane.row.index == row.index {
		return
	}
	pane.hasRow = true
	pane.row = row
	pane.render()
	pane.viewport.GotoTop()
}

// ClearContent empties the pane, used when a filter matches nothing.
func (pane *DetailPane) ClearContent() {
	pane.hasRow = false
	pane.header = ""
	pane.viewport.SetContent("")
}

func (pane *DetailPane) render() {
	pane.header = pane.renderHeader()
	pane.viewport.SetContent(pane.renderBody())
}

func (pane DetailPane) renderHeader() string {
	row := pane.row
	contentWidth := pane.contentWidth()

	boldStyle := lipgloss.NewStyle().Bold(true).Foreground(pane.theme.HeaderForeground)
	faintStyle := lipgloss.NewStyle().Foreground(pane.theme.FaintText)
	directionStyle := lipgloss.NewStyle().Foreground(pane.theme.DirectionColor(row.record.Direction))
	socketStyle := lipgloss.NewStyle().Foreground(pane.theme.SocketColor(row.record.Socket))

	metadata := boldStyle.Render(fmt.Sprintf("frame %d", row.index)) + "  "
	if !row.record.Time.IsZero() {
		metadata += faintStyle.Render(row.record.Time.UTC().Format("2006-01-02 15:04:05.000")) + "  "
	}
	metadata += directionStyle.Render(row.record.Direction.String()) + " " +
		socketStyle.Render(row.record.Socket.String())

	label := row.eventType
	if label == "" {
		label = row.summary
	}
	eventLine := lipgloss.NewStyle().Foreground(pane.theme.NormalText).Render(label) +
		faintStyle.Render(fmt.Sprintf("  %d bytes", len(row.record.Frame)))

	rule := lipgloss.NewStyle().
		Foreground(pane.theme.BorderColor).
		Render(strings.Repeat("─", contentWidth))

	lineStyle := lipgloss.NewStyle().Width(contentWidth).MaxWidth(contentWidth)
	return lineStyle.Render(metadata) + "\n" + lineStyle.Render(eventLine) + "\n" + rule
}

func (pane DetailPane) renderBody() string {
	row := pane.row
	contentWidth := pane.contentWidth()

	var sections []string

	if row.err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(pane.theme.ErrorColor)
		sections = append(sections, errorStyle.Render("cannot decode: "+row.err.Error()))
	}

	sections = append(sections, strings.TrimRight(highlight.JSON(row.record.Frame), "\n"))

	if content := messageContent(row.event); content != "" {
		label := lipgloss.NewStyle().Foreground(pane.theme.FaintText).Render("message content")
		rendered := renderMessageMarkdown(content, pane.theme, contentWidth)
		sections = append(sections, label+"\n"+rendered)
	}

	body := strings.Join(sections, "\n\n")

	// Wrap so no line exceeds the viewport width. Compact payloads
	// are a single long line, and base64 or snowflake arrays would
	// otherwise leak into the scrollbar column.
	return lipgloss.NewStyle().Width(contentWidth).Render(body)
}

// messageContent returns the markdown body for message events, which
// get a rendered preview under the raw payload.
func messageContent(event gateway.Event) string {
	switch event := event.(type) {
	case *gateway.MessageCreate:
		return event.Content
	case *gateway.MessageUpdate:
		return event.Content
	}
	return ""
}

// ScrollUp moves the body up half a viewport.
func (pane *DetailPane) ScrollUp() {
	pane.viewport.HalfViewUp()
}

// ScrollDown moves the body down half a viewport.
func (pane *DetailPane) ScrollDown() {
	pane.viewport.HalfViewDown()
}

// View renders the pane at its configured size: fixed header, body
// viewport, and a scrollbar column spanning only the body rows.
func (pane DetailPane) View(focused bool) string {
	if !pane.hasRow {
		emptyStyle := lipgloss.NewStyle().Foreground(pane.theme.FaintText)
		content := lipgloss.NewStyle().
			Width(pane.width - 1).
			Render(lipgloss.Place(
				pane.width-1, pane.height,
				lipgloss.Center, lipgloss.Center,
				emptyStyle.Render("No frame selected"),
			))
		scrollbar := renderScrollbar(pane.theme, pane.height, 0, pane.height, 0, focused)
		return lipgloss.JoinHorizontal(lipgloss.Top, content, scrollbar)
	}

	paddingStyle := lipgloss.NewStyle().
		PaddingLeft(1).
		Width(pane.width - 1)

	headerView := paddingStyle.Height(detailHeaderLines).Render(pane.header)
	bodyHeight := pane.bodyHeight()
	bodyView := paddingStyle.Height(bodyHeight).Render(pane.viewport.View())
	content := headerView + "\n" + bodyView

	// Blank column over the header rows so the scrollbar only covers
	// the region it scrolls.
	headerColumn := lipgloss.NewStyle().
		Width(1).
		Height(detailHeaderLines).
		Render("")
	bodyScrollbar := renderScrollbar(
		pane.theme, bodyHeight,
		pane.viewport.TotalLineCount(), pane.viewport.Height, pane.viewport.YOffset,
		focused,
	)
	scrollColumn := headerColumn + "\n" + bodyScrollbar

	return lipgloss.JoinHorizontal(lipgloss.Top, content, scrollColumn)
}
