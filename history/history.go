// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: history/history.go
// Summary: Per-class recall rings, optionally persisted to SQLite.
// Usage: Passed to lineedit.Env as the History collaborator.

package history

import (
	"fmt"
	"log"
)

// History holds one Ring per Class. When opened with a Store every accepted
// entry is written through to disk.
type History struct {
	rings [numClasses]*Ring
	store *Store
}

// New creates in-memory rings holding up to size entries per class.
func New(size int) *History {
	h := &History{}
	for c := range h.rings {
		h.rings[c] = NewRing(size)
	}
	return h
}

// Open creates rings backed by the SQLite database at path and preloads
// them with the most recent size entries per class.
func Open(path string, size int) (*History, error) {
	store, err := OpenStore(path, size)
	if err != nil {
		return nil, err
	}
	h := New(size)
	h.store = store
	for _, c := range Classes() {
		entries, err := store.Load(c)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("load %s history: %w", c, err)
		}
		for _, e := range entries {
			h.rings[c].Add(e)
		}
	}
	return h, nil
}

func (h *History) ring(c Class) *Ring {
	if !c.Valid() {
		c = ClassOther
	}
	return h.rings[c]
}

// Push records text under class c.
func (h *History) Push(c Class, text string) {
	if !h.ring(c).Add(text) || h.store == nil {
		return
	}
	if err := h.store.Append(c, text); err != nil {
		log.Printf("History: Failed to persist %s entry: %v", c, err)
	}
}

// Prev returns the previous (older) entry of class c. ok is false when the
// class has no entries.
func (h *History) Prev(c Class) (string, bool) { return h.ring(c).Prev() }

// Next returns the next (newer) entry of class c. ok is false when c is not
// being navigated.
func (h *History) Next(c Class) (string, bool) { return h.ring(c).Next() }

// Entries returns the entries of class c, oldest first.
func (h *History) Entries(c Class) []string { return h.ring(c).Entries() }

// Clear drops every entry of class c, on disk as well.
func (h *History) Clear(c Class) error {
	h.ring(c).Clear()
	if h.store == nil {
		return nil
	}
	return h.store.Clear(c)
}

// Close releases the backing store, if any.
func (h *History) Close() error {
	if h.store == nil {
		return nil
	}
	return h.store.Close()
}
