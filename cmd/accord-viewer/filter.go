// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/junegunn/fzf/src/util"
)

// FilterModel owns the fuzzy filter line above the frame list. The
// input itself is a bubbles textinput, so cursor movement and editing
// behave like a normal readline; the model routes keys here while the
// filter has focus.
type FilterModel struct {
	input textinput.Model

	// Active is true while the input has keyboard focus (the user
	// pressed / and has not confirmed or cleared yet).
	Active bool
}

// NewFilterModel builds the filter input with the viewer's theme.
func NewFilterModel(theme Theme) FilterModel {
	input := textinput.New()
	input.Prompt = " / "
	input.Placeholder = "filter frames"
	input.PromptStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground)
	input.TextStyle = lipgloss.NewStyle().Foreground(theme.NormalText)
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.FaintText)
	return FilterModel{input: input}
}

// Query returns the current filter text.
func (filter *FilterModel) Query() string {
	return filter.input.Value()
}

// Focus activates the filter and returns the cursor blink command.
func (filter *FilterModel) Focus() tea.Cmd {
	filter.Active = true
	return filter.input.Focus()
}

// Deactivate drops keyboard focus, keeping any applied query.
func (filter *FilterModel) Deactivate() {
	filter.Active = false
	filter.input.Blur()
}

// Clear empties the query without changing focus.
func (filter *FilterModel) Clear() {
	filter.input.SetValue("")
}

// Update forwards a message to the text input and reports whether the
// query text changed.
func (filter *FilterModel) Update(message tea.Msg) (tea.Cmd, bool) {
	before := filter.input.Value()
	var cmd tea.Cmd
	filter.input, cmd = filter.input.Update(message)
	return cmd, filter.input.Value() != before
}

// View renders the filter bar. When active, shows the live input with
// its cursor and a running match count. When inactive with text, shows
// the applied query as a subtle indicator. When inactive with no text,
// returns empty string (hidden).
func (filter *FilterModel) View(theme Theme, width, matched, total int) string {
	if !filter.Active && filter.Query() == "" {
		return ""
	}

	count := ""
	if filter.Query() != "" {
		count = lipgloss.NewStyle().
			Foreground(theme.FaintText).
			Render(fmt.Sprintf("  %d/%d", matched, total))
	}

	if filter.Active {
		return lipgloss.NewStyle().Width(width).Render(filter.input.View() + count)
	}

	dimStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	return lipgloss.NewStyle().Width(width).Render(dimStyle.Render(" filter: "+filter.Query()) + count)
}

// filterResult pairs a row index with its fuzzy score and the summary
// rune positions that matched, for highlighting in the list.
type filterResult struct {
	Index     int
	Score     int
	Positions []int
}

// applyRowFilter scores every row against the query and returns the
// matches sorted by score, stable so ties keep capture order. The
// query matches against the summary plus the direction and socket
// columns; an empty query returns every row in capture order with
// zero scores.
func applyRowFilter(rows []frameRow, query string) []filterResult {
	results := make([]filterResult, 0, len(rows))
	if query == "" {
		for index := range rows {
			results = append(results, filterResult{Index: index})
		}
		return results
	}

	pattern := []rune(query)
	slab := util.MakeSlab(slabSize16, slabSize32)
	for index := range rows {
		row := &rows[index]
		match := fuzzyMatch(row.summary+" "+row.metadata(), pattern, slab)
		if match.Score <= 0 {
			continue
		}
		results = append(results, filterResult{
			Index: index,
			Score: match.Score,
			// Positions past the summary fall in the direction and
			// socket columns, which render with their own colors and
			// have no room for per-rune highlighting.
			Positions: summaryPositions(match.Positions, row.summary),
		})
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})
	return results
}

func summaryPositions(positions []int, summary string) []int {
	limit := len([]rune(summary))
	var kept []int
	for _, position := range positions {
		if position < limit {
			kept = append(kept, position)
		}
	}
	sort.Ints(kept)
	return kept
}
