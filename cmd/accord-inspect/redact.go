// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// redactRules strips sensitive values from frames before they reach
// the terminal. Keys match at any depth of the payload, so a single
// "token" rule covers identify frames, ready payloads, and anything a
// future event nests one deeper.
type redactRules struct {
	Keys        []string `yaml:"keys"`
	Replacement string   `yaml:"replacement"`

	keySet map[string]bool
}

func loadRedactRules(path string) (*redactRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading redaction rules: %w", err)
	}
	rules := &redactRules{Replacement: "[redacted]"}
	if err := yaml.Unmarshal(data, rules); err != nil {
		return nil, fmt.Errorf("parsing redaction rules %s: %w", path, err)
	}
	if len(rules.Keys) == 0 {
		return nil, fmt.Errorf("redaction rules %s name no keys", path)
	}
	rules.keySet = make(map[string]bool, len(rules.Keys))
	for _, key := range rules.Keys {
		rules.keySet[key] = true
	}
	return rules, nil
}

// apply replaces the value of every matching key in the frame. Frames
// that do not parse, or contain no matching key, are returned
// unchanged; re-encoding sorts object keys, so it only happens when
// something was actually redacted.
func (r *redactRules) apply(frame []byte) []byte {
	decoder := json.NewDecoder(bytes.NewReader(frame))
	decoder.UseNumber()
	var decoded any
	if err := decoder.Decode(&decoded); err != nil {
		return frame
	}

	redacted, changed := r.walk(decoded)
	if !changed {
		return frame
	}
	encoded, err := json.Marshal(redacted)
	if err != nil {
		return frame
	}
	return encoded
}

func (r *redactRules) walk(value any) (any, bool) {
	switch typed := value.(type) {
	case map[string]any:
		changed := false
		for key, child := range typed {
			if r.keySet[key] {
				typed[key] = r.Replacement
				changed = true
				continue
			}
			if replaced, childChanged := r.walk(child); childChanged {
				typed[key] = replaced
				changed = true
			}
		}
		return typed, changed
	case []any:
		changed := false
		for i, child := range typed {
			if replaced, childChanged := r.walk(child); childChanged {
				typed[i] = replaced
				changed = true
			}
		}
		return typed, changed
	default:
		return value, false
	}
}
