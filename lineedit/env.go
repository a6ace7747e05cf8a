// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: lineedit/env.go
// Summary: Collaborator interfaces the editor talks to while a session runs.

package lineedit

import "github.com/framegrace/texelprompt/history"

// KeySource delivers translated key events. NextEvent blocks until a key is
// available; a closed or failed source returns an OpAbort event.
type KeySource interface {
	NextEvent() Event
	// FlushPendingInput discards type-ahead after a rejected key.
	FlushPendingInput()
}

// Terminal is the drawing surface for the prompt line.
type Terminal interface {
	MoveCursor(row, col int)
	// DrawScalar draws r at the current position, advances and returns the
	// number of columns used.
	DrawScalar(r rune) int
	ClearToEOL()
	Refresh()
	// Width returns the terminal width in columns.
	Width() int
	Beep()
}

// Highlighter is implemented by terminals that colour the visible run. It is
// called right before the run is drawn scalar by scalar.
type Highlighter interface {
	HighlightRun(ctx Context, run []rune)
}

// History is the recall collaborator.
type History interface {
	Push(class history.Class, text string)
	Prev(class history.Class) (string, bool)
	Next(class history.Class) (string, bool)
}

// Request describes one completion probe.
type Request struct {
	Context Context
	// Text is the probed span, encoded.
	Text string
	// Tabs counts consecutive completion requests, starting at 1.
	Tabs int
	// VarValue asks for the value of the variable named before a trailing '='.
	VarValue bool
}

// Completer is the completion engine. It returns the replacement for the
// probed span and whether anything matched.
type Completer interface {
	Complete(req Request) (string, bool)
}

// PickRequest is passed to a picker sub-UI.
type PickRequest struct {
	Prefix   string
	Multiple bool
}

// PickResult is what a picker hands back. Empty Text and Files means the
// user cancelled.
type PickResult struct {
	Text  string
	Files []string
}

// Picker runs a full-screen selection sub-UI.
type Picker interface {
	Pick(req PickRequest) (PickResult, error)
}

// MailboxCycler returns the mailbox that follows current.
type MailboxCycler interface {
	Next(current string) string
}

// Env bundles the collaborators of a session. Keys and Term are required;
// everything else is optional and its absence turns the matching operations
// into a beep.
type Env struct {
	Keys      KeySource
	Term      Terminal
	History   History
	Completer Completer

	FilePicker  Picker
	AliasPicker Picker
	QueryPicker Picker

	Mailboxes MailboxCycler
}
