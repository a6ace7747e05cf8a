// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: lineedit/session.go
// Summary: Resumable editing session and the Edit entry point.
// Usage: Hosts create one Session per prompt and call Edit until it returns
// StatusDone or StatusAborted, repainting on StatusContinue.

package lineedit

import (
	"github.com/framegrace/texelprompt/history"
)

// Status is the outcome of one Edit call.
type Status int

const (
	// StatusContinue asks the host to repaint its screen and call Edit again
	// with the same session.
	StatusContinue Status = iota
	// StatusDone means the text was accepted.
	StatusDone
	// StatusAborted means the user cancelled or the session failed.
	StatusAborted
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusDone:
		return "done"
	case StatusAborted:
		return "aborted"
	}
	return "unknown"
}

// Result is returned by Edit.
type Result struct {
	Status Status
	// Text is the accepted text for StatusDone.
	Text string
	// Files holds the selection of a multi-select file prompt.
	Files []string
}

// Options configure a session at creation.
type Options struct {
	Flags Flags
	// MaxBytes bounds the encoded result; 0 means unlimited.
	MaxBytes int
	// MaxScalars bounds buffer growth; 0 means unlimited.
	MaxScalars int
	// Width overrides DefaultWidth.
	Width WidthOracle
}

// Session is the caller-owned editor state. It persists across Edit calls
// for the same logical prompt.
type Session struct {
	opts  Options
	flags Flags
	ctx   Context
	class history.Class
	width WidthOracle

	buf     *Buffer
	cursor  int
	begin   int
	started bool

	// Per-call state, reset at the top of Edit.
	first    bool
	tabs     int
	snapshot []rune
}

// NewSession creates a session holding text. Text is decoded up to its first
// malformed sequence.
func NewSession(text string, opts Options) *Session {
	w := opts.Width
	if w == nil {
		w = DefaultWidth
	}
	ctx := ContextFor(opts.Flags)
	buf := NewBuffer(Decode(text))
	buf.MaxScalars = opts.MaxScalars
	return &Session{
		opts:  opts,
		flags: opts.Flags,
		ctx:   ctx,
		class: ctx.HistoryClass(),
		width: w,
		buf:   buf,
	}
}

// Context returns the editing context fixed at creation.
func (s *Session) Context() Context { return s.ctx }

// HistoryClass returns the recall ring used by this session.
func (s *Session) HistoryClass() history.Class { return s.class }

// Edit runs the editor on row starting at col until the text is accepted,
// the user aborts, or a sub-UI requires the host to repaint. The returned
// error is non-nil only when the buffer could not grow; the status is then
// StatusAborted.
func (s *Session) Edit(env *Env, row, col int) (Result, error) {
	level := redrawLine
	if !s.started {
		s.started = true
		level = redrawInit
	}
	s.first = true
	s.tabs = 0
	s.snapshot = nil

	for {
		if level != redrawNone {
			width := windowWidth(env.Term, col)
			s.scroll(level, width)
			if !s.flags.Has(FlagPassword) {
				s.draw(env.Term, row, col, width)
			}
		}
		env.Term.Refresh()

		ev := env.Keys.NextEvent()
		next, res, err := s.dispatch(env, ev)
		if err != nil {
			return Result{Status: StatusAborted}, err
		}
		if res != nil {
			return *res, nil
		}
		level = next
	}
}

// EnterString runs a fresh single-call session. A StatusContinue result
// tells the caller to repaint and prompt again.
func EnterString(env *Env, text string, row, col int, opts Options) (Result, error) {
	return NewSession(text, opts).Edit(env, row, col)
}
