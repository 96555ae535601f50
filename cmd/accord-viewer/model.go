// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/accordlib/accord/capture"
)

// FocusRegion identifies which pane receives navigation keys.
type FocusRegion int

const (
	// FocusList means navigation keys move the frame cursor.
	FocusList FocusRegion = iota

	// FocusDetail means navigation keys scroll the detail viewport.
	FocusDetail

	// FocusFilter means keys type into the filter input.
	FocusFilter
)

// Split ratio bounds for the ]/[ resize keys and divider drag.
const (
	defaultSplitRatio = 0.55
	minSplitRatio     = 0.25
	maxSplitRatio     = 0.75
	splitRatioStep    = 0.05
)

// Model is the bubbletea model for the capture viewer: a frame list
// on the left, the decoded payload of the selected frame on the
// right, and a fuzzy filter over the list.
type Model struct {
	rows []frameRow

	// Capture metadata for the title bar.
	source string
	format capture.Format
	codec  capture.Codec

	theme Theme
	keys  KeyMap

	filter FilterModel

	// results is the filtered view: indices into rows plus match
	// positions, sorted by score while a query is active.
	results []filterResult

	// cursor and scrollOffset index into results, not rows.
	cursor       int
	scrollOffset int

	focusRegion FocusRegion
	priorFocus  FocusRegion
	splitRatio  float64

	detailPane DetailPane

	// showTimes is set when any record carries a timestamp; the
	// interchange formats have none and render without the column.
	showTimes bool

	width  int
	height int
	ready  bool
}

// NewModel builds the viewer model for a loaded capture.
func NewModel(path string, file *capture.File) Model {
	rows := buildRows(file.Records)

	showTimes := false
	for _, row := range rows {
		if !row.record.Time.IsZero() {
			showTimes = true
			break
		}
	}

	model := Model{
		rows:       rows,
		source:     filepath.Base(path),
		format:     file.Format,
		codec:      file.Codec,
		theme:      DefaultTheme,
		keys:       DefaultKeyMap,
		filter:     NewFilterModel(DefaultTheme),
		splitRatio: defaultSplitRatio,
		detailPane: NewDetailPane(DefaultTheme),
		showTimes:  showTimes,
	}
	model.applyFilter()
	return model
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		if model.focusRegion == FocusFilter {
			return model.handleFilterKeys(message)
		}

		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit

		case key.Matches(message, model.keys.FocusToggle):
			if model.focusRegion == FocusList {
				model.focusRegion = FocusDetail
			} else {
				model.focusRegion = FocusList
			}

		case key.Matches(message, model.keys.SplitGrow):
			model.setSplitRatio(model.splitRatio + splitRatioStep)

		case key.Matches(message, model.keys.SplitShrink):
			model.setSplitRatio(model.splitRatio - splitRatioStep)

		case key.Matches(message, model.keys.FilterActivate):
			model.priorFocus = model.focusRegion
			model.focusRegion = FocusFilter
			// Reset list position so results show from the top as
			// the user types.
			model.cursor = 0
			model.scrollOffset = 0
			return model, model.filter.Focus()

		case key.Matches(message, model.keys.FilterClear):
			if model.filter.Query() != "" {
				model.filter.Clear()
				model.applyFilter()
			}

		default:
			if model.focusRegion == FocusList {
				model.handleListKeys(message)
			} else {
				model.handleDetailKeys(message)
			}
		}

	case tea.MouseMsg:
		model.handleMouse(message)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.updatePaneSizes()
		model.ensureCursorVisible()
		model.syncDetailPane()

	default:
		// Component messages (cursor blink) go to the filter input so
		// its cursor keeps blinking while focused.
		if model.filter.Active {
			cmd, _ := model.filter.Update(message)
			return model, cmd
		}
	}

	return model, nil
}

// handleFilterKeys processes keystrokes while the filter input has
// focus. Esc clears the query first and exits filter mode second;
// Enter confirms the query and returns focus to the list. Everything
// else edits the input.
func (model Model) handleFilterKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case message.Type == tea.KeyCtrlC:
		return model, tea.Quit

	case key.Matches(message, model.keys.FilterClear):
		if model.filter.Query() != "" {
			model.filter.Clear()
			model.cursor = 0
			model.scrollOffset = 0
			model.applyFilter()
		} else {
			model.filter.Deactivate()
			model.focusRegion = model.priorFocus
		}
		return model, nil

	case message.Type == tea.KeyEnter:
		model.filter.Deactivate()
		model.focusRegion = FocusList
		return model, nil
	}

	cmd, changed := model.filter.Update(message)
	if changed {
		// Snap to the top so the best matches stay visible as the
		// query narrows.
		model.cursor = 0
		model.scrollOffset = 0
		model.applyFilter()
	}
	return model, cmd
}

func (model *Model) handleListKeys(message tea.KeyMsg) {
	previousCursor := model.cursor

	switch {
	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}

	case key.Matches(message, model.keys.Down):
		if model.cursor < len(model.results)-1 {
			model.cursor++
		}

	case key.Matches(message, model.keys.PageUp):
		model.cursor = clampIndex(model.cursor-model.visibleHeight(), len(model.results))

	case key.Matches(message, model.keys.PageDown):
		model.cursor = clampIndex(model.cursor+model.visibleHeight(), len(model.results))

	case key.Matches(message, model.keys.Home):
		model.cursor = 0

	case key.Matches(message, model.keys.End):
		if len(model.results) > 0 {
			model.cursor = len(model.results) - 1
		}
	}

	model.ensureCursorVisible()
	if model.cursor != previousCursor {
		model.syncDetailPane()
	}
}

func (model *Model) handleDetailKeys(message tea.KeyMsg) {
	switch {
	case key.Matches(message, model.keys.Up):
		model.detailPane.viewport.LineUp(1)
	case key.Matches(message, model.keys.Down):
		model.detailPane.viewport.LineDown(1)
	case key.Matches(message, model.keys.PageUp):
		model.detailPane.ScrollUp()
	case key.Matches(message, model.keys.PageDown):
		model.detailPane.ScrollDown()
	case key.Matches(message, model.keys.Home):
		model.detailPane.viewport.GotoTop()
	case key.Matches(message, model.keys.End):
		model.detailPane.viewport.GotoBottom()
	}
}

// handleMouse scrolls whichever pane the cursor is over; a left click
// in the list selects the clicked row and focuses the list.
func (model *Model) handleMouse(message tea.MouseMsg) {
	contentStart := model.contentStartY()
	inContentArea := message.Y >= contentStart && message.Y < model.height-2
	inListPane := message.X < model.listWidth()

	switch message.Button {
	case tea.MouseButtonWheelUp:
		if !inContentArea {
			return
		}
		if inListPane {
			model.scrollList(-1)
		} else {
			model.detailPane.viewport.LineUp(3)
		}

	case tea.MouseButtonWheelDown:
		if !inContentArea {
			return
		}
		if inListPane {
			model.scrollList(1)
		} else {
			model.detailPane.viewport.LineDown(3)
		}

	case tea.MouseButtonLeft:
		if message.Action != tea.MouseActionPress || !inContentArea {
			return
		}
		if inListPane {
			model.focusRegion = FocusList
			clicked := model.scrollOffset + message.Y - contentStart
			if clicked >= 0 && clicked < len(model.results) {
				model.cursor = clicked
				model.syncDetailPane()
			}
		} else {
			model.focusRegion = FocusDetail
		}
	}
}

// scrollList moves the list viewport without moving the cursor unless
// the cursor would leave the visible window.
func (model *Model) scrollList(delta int) {
	visible := model.visibleHeight()
	maxOffset := len(model.results) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}

	model.scrollOffset += delta
	if model.scrollOffset < 0 {
		model.scrollOffset = 0
	}
	if model.scrollOffset > maxOffset {
		model.scrollOffset = maxOffset
	}

	previousCursor := model.cursor
	if model.cursor < model.scrollOffset {
		model.cursor = model.scrollOffset
	}
	if model.cursor >= model.scrollOffset+visible {
		model.cursor = model.scrollOffset + visible - 1
	}
	if model.cursor != previousCursor {
		model.syncDetailPane()
	}
}

func (model *Model) setSplitRatio(ratio float64) {
	if ratio < minSplitRatio {
		ratio = minSplitRatio
	}
	if ratio > maxSplitRatio {
		ratio = maxSplitRatio
	}
	model.splitRatio = ratio
	model.updatePaneSizes()
}

// applyFilter recomputes the filtered view from the current query and
// keeps the cursor, scroll position, and detail pane consistent.
func (model *Model) applyFilter() {
	model.results = applyRowFilter(model.rows, model.filter.Query())
	if model.cursor >= len(model.results) {
		model.cursor = len(model.results) - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
	model.ensureCursorVisible()
	model.syncDetailPane()
}

// syncDetailPane points the detail pane at the frame under the cursor.
func (model *Model) syncDetailPane() {
	if len(model.results) == 0 {
		model.detailPane.ClearContent()
		return
	}
	if model.cursor >= len(model.results) {
		model.cursor = len(model.results) - 1
	}
	model.detailPane.SetContent(model.rows[model.results[model.cursor].Index])
}

func (model *Model) updatePaneSizes() {
	// 1 column for the vertical divider between panes.
	detailWidth := model.width - model.listWidth() - 1
	if detailWidth < 10 {
		detailWidth = 10
	}
	model.detailPane.SetSize(detailWidth, model.visibleHeight())
}

// listWidth returns the width of the list pane in columns.
func (model Model) listWidth() int {
	return int(float64(model.width) * model.splitRatio)
}

// contentStartY returns the Y coordinate where the content area
// begins. The top chrome is always exactly one row: the title bar, or
// the filter bar when a query is active.
func (model Model) contentStartY() int {
	return 1
}

// visibleHeight returns the number of list rows between the top
// chrome and the bottom separator plus help bar.
func (model Model) visibleHeight() int {
	return model.height - model.contentStartY() - 2
}

// ensureCursorVisible adjusts scrollOffset so the cursor stays within
// the visible window.
func (model *Model) ensureCursorVisible() {
	visible := model.visibleHeight()
	if visible <= 0 {
		return
	}

	maxOffset := len(model.results) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if model.scrollOffset > maxOffset {
		model.scrollOffset = maxOffset
	}

	if model.cursor < model.scrollOffset {
		model.scrollOffset = model.cursor
	}
	if model.cursor >= model.scrollOffset+visible {
		model.scrollOffset = model.cursor - visible + 1
	}
}

// View implements tea.Model. Renders the full frame: top chrome, the
// two-pane content area, a separator, and the help bar.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	if len(model.rows) == 0 && model.filter.Query() == "" {
		return model.renderEmpty()
	}

	var sections []string

	// Top chrome: the filter bar replaces the title bar while a query
	// is active so the layout never shifts.
	filterView := model.filter.View(model.theme, model.width, len(model.results), len(model.rows))
	if filterView != "" {
		sections = append(sections, filterView)
	} else {
		sections = append(sections, model.renderTitle())
	}

	listView := model.renderListPane()
	divider := model.renderDivider()
	detailView := model.detailPane.View(model.focusRegion == FocusDetail)
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, listView, divider, detailView))

	separator := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", model.width))
	sections = append(sections, separator)
	sections = append(sections, model.renderHelp())

	return strings.Join(sections, "\n")
}

// renderTitle renders the top bar: capture name on the left, frame
// counts and codec on the right, joined by a rule.
func (model Model) renderTitle() string {
	separatorStyle := lipgloss.NewStyle().Foreground(model.theme.BorderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground)
	statsStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	sep := separatorStyle.Render("─")

	statsText := fmt.Sprintf("%d frames", len(model.rows))
	if model.format == capture.FormatCapture {
		statsText += "  " + model.codec.String()
	}

	leftPortion := sep + sep + sep + " " + titleStyle.Render(model.source) + " "
	leftWidth := 3 + 1 + lipgloss.Width(model.source) + 1

	// Fill the gap between the name and the stats with separator
	// chars, leaving 1 space on each side of the stats.
	rightPortion := " " + statsStyle.Render(statsText) + " " + sep
	rightWidth := 1 + lipgloss.Width(statsText) + 1 + 1

	fillCount := model.width - leftWidth - rightWidth
	if fillCount < 1 {
		fillCount = 1
	}
	fill := ""
	for range fillCount {
		fill += sep
	}

	return leftPortion + fill + rightPortion
}

func (model Model) renderListPane() string {
	listWidth := model.listWidth()

	// Reserve 1 column for the scrollbar so content stays at a fixed
	// position regardless of scroll state.
	focused := model.focusRegion == FocusList
	rowWidth := listWidth - 1

	renderer := listRenderer{
		theme:     model.theme,
		width:     rowWidth,
		showTimes: model.showTimes,
	}

	visible := model.visibleHeight()
	if visible < 0 {
		visible = 0
	}

	var rows []string
	for index := model.scrollOffset; index < model.scrollOffset+visible && index < len(model.results); index++ {
		result := model.results[index]
		row := model.rows[result.Index]
		rows = append(rows, renderer.RenderRow(row, index == model.cursor, result.Positions))
	}

	// Pad empty rows.
	rendered := len(rows)
	if rendered < visible {
		emptyStyle := lipgloss.NewStyle().Width(rowWidth)
		for padding := rendered; padding < visible; padding++ {
			rows = append(rows, emptyStyle.Render(""))
		}
	}

	scrollbar := renderScrollbar(
		model.theme, visible,
		len(model.results), visible, model.scrollOffset,
		focused,
	)

	contentStyle := lipgloss.NewStyle().
		Width(rowWidth).
		Height(visible)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		contentStyle.Render(strings.Join(rows, "\n")),
		scrollbar,
	)
}

// renderDivider renders the single-column vertical rule between the
// list and detail panes.
func (model Model) renderDivider() string {
	visible := model.visibleHeight()
	if visible < 0 {
		visible = 0
	}

	dividerStyle := lipgloss.NewStyle().Foreground(model.theme.BorderColor)

	lines := make([]string, visible)
	for index := range lines {
		lines[index] = "│"
	}

	return dividerStyle.Width(1).Height(visible).Render(strings.Join(lines, "\n"))
}

// renderEmpty renders the whole-screen empty state for a capture with
// no frames.
func (model Model) renderEmpty() string {
	messageStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	return lipgloss.Place(
		model.width, model.height,
		lipgloss.Center, lipgloss.Center,
		messageStyle.Render("No frames in capture."),
	)
}

// renderHelp renders the bottom help bar with key hints and the list
// scroll position.
func (model Model) renderHelp() string {
	style := lipgloss.NewStyle().Foreground(model.theme.HelpText)

	focusIndicator := "LIST"
	switch model.focusRegion {
	case FocusDetail:
		focusIndicator = "DETAIL"
	case FocusFilter:
		focusIndicator = "FILTER"
	}

	help := fmt.Sprintf(" [%s] q quit  ↑↓ navigate  Tab focus  ]/[ resize  / filter  Esc clear",
		focusIndicator)

	if len(model.results) > model.visibleHeight() {
		position := ""
		if model.scrollOffset == 0 {
			position = "top"
		} else if model.scrollOffset+model.visibleHeight() >= len(model.results) {
			position = "bottom"
		} else {
			percent := float64(model.scrollOffset) / float64(len(model.results)-model.visibleHeight()) * 100
			position = fmt.Sprintf("%d%%", int(percent))
		}
		help += "  " + position
	}

	return style.Render(help)
}

func clampIndex(position, length int) int {
	if length == 0 {
		return 0
	}
	if position < 0 {
		return 0
	}
	if position >= length {
		return length - 1
	}
	return position
}
