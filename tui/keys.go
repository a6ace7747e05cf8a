// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/keys.go
// Summary: lineedit.KeySource reading tcell events.

package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelprompt/lineedit"
)

// Keys reads key events from a screen and translates them with a Keymap.
type Keys struct {
	screen tcell.Screen
	keymap *Keymap

	// OnResize runs after the screen was resized and re-synced.
	OnResize func()
}

// NewKeys creates a key source. A nil keymap uses DefaultKeymap.
func NewKeys(screen tcell.Screen, keymap *Keymap) *Keys {
	if keymap == nil {
		keymap = DefaultKeymap()
	}
	return &Keys{screen: screen, keymap: keymap}
}

// NextEvent blocks for the next key. A finalized screen yields OpAbort.
func (k *Keys) NextEvent() lineedit.Event {
	for {
		ev := k.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return lineedit.Key(lineedit.OpAbort)
		case *tcell.EventResize:
			k.screen.Sync()
			if k.OnResize != nil {
				k.OnResize()
			}
		case *tcell.EventKey:
			return k.keymap.Translate(ev)
		}
	}
}

// FlushPendingInput drops queued events.
func (k *Keys) FlushPendingInput() {
	for k.screen.HasPendingEvent() {
		if k.screen.PollEvent() == nil {
			return
		}
	}
}
