// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: history/ring.go
// Summary: Bounded recall ring with Prev/Next navigation.

package history

import (
	"strings"
	"sync"
)

const (
	// DefaultSize is the number of entries kept per class when none is configured.
	DefaultSize = 100
	// MaxSize is the absolute maximum number of entries per class.
	MaxSize = 10000
)

// Ring keeps the most recent entries of one class, oldest first, and a
// navigation position (-1 when not navigating).
type Ring struct {
	mu      sync.RWMutex
	entries []string
	maxSize int
	pos     int
}

// NewRing creates a ring. Sizes <= 0 use DefaultSize; sizes above MaxSize
// are clamped.
func NewRing(maxSize int) *Ring {
	if maxSize <= 0 {
		maxSize = DefaultSize
	}
	if maxSize > MaxSize {
		maxSize = MaxSize
	}
	return &Ring{
		entries: make([]string, 0, maxSize),
		maxSize: maxSize,
		pos:     -1,
	}
}

// Add appends text and resets navigation. Blank text and repeats of the
// newest entry are ignored. It reports whether the ring changed.
func (r *Ring) Add(text string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pos = -1
	if strings.TrimSpace(text) == "" {
		return false
	}
	if n := len(r.entries); n > 0 && r.entries[n-1] == text {
		return false
	}
	if len(r.entries) >= r.maxSize {
		copy(r.entries, r.entries[1:])
		r.entries[len(r.entries)-1] = text
	} else {
		r.entries = append(r.entries, text)
	}
	return true
}

// Prev steps towards older entries and returns the entry reached. It stays
// on the oldest entry once there. ok is false for an empty ring.
func (r *Ring) Prev() (text string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries) == 0 {
		return "", false
	}
	if r.pos == -1 {
		r.pos = len(r.entries) - 1
	} else if r.pos > 0 {
		r.pos--
	}
	return r.entries[r.pos], true
}

// Next steps towards newer entries. Moving past the newest entry leaves
// navigation and returns "", the empty line the user started from. ok is
// false when there is nothing to step to because navigation is not active.
func (r *Ring) Next() (text string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries) == 0 || r.pos == -1 {
		return "", false
	}
	if r.pos < len(r.entries)-1 {
		r.pos++
		return r.entries[r.pos], true
	}
	r.pos = -1
	return "", true
}

// Reset leaves navigation without touching the entries.
func (r *Ring) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pos = -1
}

// Clear removes every entry.
func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make([]string, 0, r.maxSize)
	r.pos = -1
}

// Len returns the number of entries.
func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Entries returns a copy of the entries, oldest first.
func (r *Ring) Entries() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}
