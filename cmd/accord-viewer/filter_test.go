// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/accordlib/accord/capture"
)

// testFilterRows builds a small session by hand: summaries and
// metadata only, since that is all the filter sees.
func testFilterRows() []frameRow {
	gatewayRx := capture.Record{Direction: capture.DirectionRx, Socket: capture.SocketGateway}
	gatewayTx := capture.Record{Direction: capture.DirectionTx, Socket: capture.SocketGateway}
	voiceRx := capture.Record{Direction: capture.DirectionRx, Socket: capture.SocketVoice}
	voiceTx := capture.Record{Direction: capture.DirectionTx, Socket: capture.SocketVoice}

	return []frameRow{
		{index: 0, record: gatewayRx, summary: "Hello", eventType: "HELLO"},
		{index: 1, record: gatewayTx, summary: "Identify"},
		{index: 2, record: gatewayRx, summary: "Ready(username=dana)@1", eventType: "READY"},
		{index: 3, record: gatewayRx, summary: "MessageCreate(user=dana#0001, channel_id=222)@2", eventType: "MESSAGE_CREATE"},
		{index: 4, record: voiceTx, summary: "Heartbeat(1501184119561)", noise: true},
		{index: 5, record: voiceRx, summary: "SessionDescription(mode=xsalsa20_poly1305)"},
		{index: 6, record: gatewayTx, summary: "Heartbeat(41)", noise: true},
		{index: 7, record: gatewayRx, summary: "HeartbeatAck", eventType: "HEARTBEAT_ACK", noise: true},
	}
}

func TestApplyRowFilterEmptyQuery(t *testing.T) {
	rows := testFilterRows()
	results := applyRowFilter(rows, "")

	if len(results) != len(rows) {
		t.Fatalf("empty query should return all %d rows, got %d", len(rows), len(results))
	}
	for position, result := range results {
		if result.Index != position {
			t.Errorf("result %d should keep capture order, got index %d", position, result.Index)
		}
		if result.Score != 0 {
			t.Errorf("result %d should have zero score with empty query, got %d", position, result.Score)
		}
		if len(result.Positions) != 0 {
			t.Errorf("result %d should have no positions with empty query", position)
		}
	}
}

func TestApplyRowFilterNarrows(t *testing.T) {
	rows := testFilterRows()
	results := applyRowFilter(rows, "messagecreate")

	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d", len(results))
	}
	if results[0].Index != 3 {
		t.Errorf("expected the MessageCreate row, got index %d", results[0].Index)
	}
	if results[0].Score <= 0 {
		t.Error("expected a positive score for the match")
	}
	if len(results[0].Positions) == 0 {
		t.Error("expected summary positions for highlighting")
	}
}

func TestApplyRowFilterMatchesSocketColumn(t *testing.T) {
	rows := testFilterRows()
	results := applyRowFilter(rows, "voice")

	if len(results) != 2 {
		t.Fatalf("expected the 2 voice rows, got %d matches", len(results))
	}
	for _, result := range results {
		if rows[result.Index].record.Socket != capture.SocketVoice {
			t.Errorf("row %d is not a voice frame", result.Index)
		}
	}
}

func TestApplyRowFilterMetadataMatchHasNoHighlight(t *testing.T) {
	rows := testFilterRows()
	results := applyRowFilter(rows, "voice")

	// "SessionDescription(...)" contains none of v-o-i-c-e in order;
	// that row matches on the socket column alone, which renders with
	// its own color and gets no per-rune highlighting.
	for _, result := range results {
		if result.Index != 5 {
			continue
		}
		if result.Score <= 0 {
			t.Error("expected a positive score for the metadata match")
		}
		if len(result.Positions) != 0 {
			t.Errorf("metadata-only match should have no summary positions, got %v", result.Positions)
		}
		return
	}
	t.Fatal("SessionDescription row missing from results")
}

func TestApplyRowFilterPositionsWithinSummary(t *testing.T) {
	rows := testFilterRows()
	results := applyRowFilter(rows, "ready")

	for _, result := range results {
		limit := len([]rune(rows[result.Index].summary))
		for _, position := range result.Positions {
			if position < 0 || position >= limit {
				t.Errorf("position %d out of summary bounds for row %d", position, result.Index)
			}
		}
	}
}

func TestApplyRowFilterSortedByScore(t *testing.T) {
	rows := testFilterRows()
	results := applyRowFilter(rows, "heartbeat")

	if len(results) < 3 {
		t.Fatalf("expected the 3 heartbeat rows, got %d matches", len(results))
	}
	for position := 1; position < len(results); position++ {
		if results[position].Score > results[position-1].Score {
			t.Errorf("results out of order: score %d at %d after score %d",
				results[position].Score, position, results[position-1].Score)
		}
	}
}

func TestApplyRowFilterNoMatches(t *testing.T) {
	rows := testFilterRows()
	results := applyRowFilter(rows, "zzzzz")

	if len(results) != 0 {
		t.Fatalf("expected no matches, got %d", len(results))
	}
}

func TestFilterModelHiddenWhenInactive(t *testing.T) {
	filter := NewFilterModel(DefaultTheme)
	if view := filter.View(DefaultTheme, 80, 0, 8); view != "" {
		t.Errorf("inactive empty filter should render nothing, got %q", view)
	}
}

func TestFilterModelViewShowsMatchCount(t *testing.T) {
	filter := NewFilterModel(DefaultTheme)
	filter.Focus()
	for _, char := range "heartbeat" {
		filter.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{char}})
	}

	view := filter.View(DefaultTheme, 80, 3, 8)
	if !strings.Contains(view, "heartbeat") {
		t.Errorf("active view should show the query, got %q", view)
	}
	if !strings.Contains(view, "3/8") {
		t.Errorf("active view should show the match count, got %q", view)
	}

	filter.Deactivate()
	view = filter.View(DefaultTheme, 80, 3, 8)
	if !strings.Contains(view, "filter: heartbeat") {
		t.Errorf("inactive view should show the applied query, got %q", view)
	}
	if !strings.Contains(view, "3/8") {
		t.Errorf("inactive view should keep the match count, got %q", view)
	}
}

func TestFilterModelTyping(t *testing.T) {
	filter := NewFilterModel(DefaultTheme)
	filter.Focus()
	if !filter.Active {
		t.Fatal("Focus should activate the filter")
	}

	for _, char := range "ready" {
		_, changed := filter.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{char}})
		if !changed {
			t.Fatalf("typing %q should report a change", char)
		}
	}
	if filter.Query() != "ready" {
		t.Errorf("query should be %q, got %q", "ready", filter.Query())
	}

	// Keys that do not edit the text report no change.
	if _, changed := filter.Update(tea.KeyMsg{Type: tea.KeyLeft}); changed {
		t.Error("cursor movement should not report a change")
	}

	filter.Deactivate()
	if filter.Active {
		t.Error("Deactivate should drop focus")
	}
	if filter.Query() != "ready" {
		t.Error("Deactivate should keep the applied query")
	}

	filter.Clear()
	if filter.Query() != "" {
		t.Error("Clear should empty the query")
	}
}
