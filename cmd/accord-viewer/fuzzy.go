// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Slab sizes for the fzf matcher's scratch memory, matching the
// defaults fzf itself allocates per matcher goroutine.
const (
	slabSize16 = 100 * 1024
	slabSize32 = 2048
)

// fuzzyResult is the outcome of matching a filter query against one
// line of text: the fzf score and the rune positions that matched.
// A zero result means no match.
type fuzzyResult struct {
	Score     int
	Positions []int
}

// fuzzyMatch scores pattern against text using the fzf V2 algorithm.
// Matching is case-insensitive on both sides: the text side is
// handled by the algorithm, the pattern is lowercased here. An empty
// pattern never matches. The slab is optional scratch memory; callers
// matching in a loop should pass one from util.MakeSlab to avoid
// per-call allocation.
func fuzzyMatch(text string, pattern []rune, slab *util.Slab) fuzzyResult {
	if len(pattern) == 0 {
		return fuzzyResult{}
	}

	lowered := []rune(strings.ToLower(string(pattern)))
	chars := util.ToChars([]byte(text))
	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, lowered, true, slab)
	if result.Score <= 0 {
		return fuzzyResult{}
	}

	match := fuzzyResult{Score: result.Score}
	if positions != nil {
		match.Positions = *positions
	}
	return match
}
