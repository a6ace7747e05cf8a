// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: lineedit/dispatch.go
// Summary: Translates editing operations into buffer and cursor mutations.

package lineedit

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// dispatch handles one event. A non-nil result ends the current Edit call.
func (s *Session) dispatch(env *Env, ev Event) (redrawLevel, *Result, error) {
	switch ev.Op {
	case OpAbort:
		return redrawNone, &Result{Status: StatusAborted}, nil
	case OpNull:
		return s.selfInsert(env, ev.Rune)
	}

	s.first = false
	if ev.Op != OpComplete {
		s.tabs = 0
	}

	switch ev.Op {
	case OpHistoryUp, OpHistoryDown:
		return s.recall(env, ev.Op)

	case OpBackspace:
		if s.cursor == 0 {
			s.beep(env)
			break
		}
		i := s.unitStart(s.cursor)
		s.buf.Remove(i, s.cursor)
		s.cursor = i

	case OpBeginningOfLine:
		s.cursor = 0

	case OpEndOfLine:
		return redrawInit, nil, nil

	case OpKillLine:
		s.buf.Truncate(0)
		s.cursor = 0

	case OpKillEOL:
		s.buf.Truncate(s.cursor)

	case OpKillWord:
		s.killWord(env)

	case OpKillEOW:
		s.killToEndOfWord()

	case OpBackwardChar:
		if s.cursor == 0 {
			s.beep(env)
			break
		}
		s.cursor = s.unitStart(s.cursor)

	case OpForwardChar:
		if s.cursor == s.buf.Len() {
			s.beep(env)
			break
		}
		s.cursor = s.unitEnd(s.cursor + 1)

	case OpBackwardWord:
		if s.cursor == 0 {
			s.beep(env)
			break
		}
		runes := s.buf.Runes()
		for s.cursor > 0 && unicode.IsSpace(runes[s.cursor-1]) {
			s.cursor--
		}
		for s.cursor > 0 && !unicode.IsSpace(runes[s.cursor-1]) {
			s.cursor--
		}

	case OpForwardWord:
		n := s.buf.Len()
		if s.cursor == n {
			s.beep(env)
			break
		}
		runes := s.buf.Runes()
		for s.cursor < n && unicode.IsSpace(runes[s.cursor]) {
			s.cursor++
		}
		for s.cursor < n && !unicode.IsSpace(runes[s.cursor]) {
			s.cursor++
		}

	case OpUpcaseWord, OpDowncaseWord, OpCapitalizeWord:
		s.transformWord(env, ev.Op)

	case OpDeleteChar:
		n := s.buf.Len()
		if s.cursor == n {
			s.beep(env)
			break
		}
		runes := s.buf.Runes()
		i := s.cursor
		for i < n && s.width.RuneWidth(runes[i]) == 0 {
			i++
		}
		if i < n {
			i++
		}
		i = s.unitEnd(i)
		s.buf.Remove(s.cursor, i)

	case OpTransposeChars:
		s.transpose(env)

	case OpMailboxCycle:
		switch s.ctx {
		case ContextEffectiveFile:
			return s.cycleMailbox(env)
		case ContextFile:
			return s.complete(env, ev)
		}
		return s.selfInsert(env, ev.Rune)

	case OpComplete:
		return s.complete(env, ev)

	case OpCompleteQuery:
		if s.ctx != ContextAlias {
			return s.selfInsert(env, ev.Rune)
		}
		return s.completeQuery(env)

	case OpQuoteChar:
		// A key without a raw scalar cannot be quoted; it is consumed with
		// a beep and cancellation stays with the main loop.
		next := env.Keys.NextEvent()
		if next.Rune >= 0 {
			return s.selfInsert(env, next.Rune)
		}
		s.beep(env)

	default:
		s.beep(env)
	}
	return redrawLine, nil, nil
}

// selfInsert handles a raw scalar: Enter accepts, control and printable
// scalars are inserted, anything else is rejected.
func (s *Session) selfInsert(env *Env, r rune) (redrawLevel, *Result, error) {
	s.tabs = 0

	if s.first && s.flags.Has(FlagClear) {
		s.first = false
		if isPrintable(r) {
			s.buf.Truncate(0)
			s.cursor = 0
		}
	}

	if r == '\r' || r == '\n' {
		res := s.accept(env)
		return redrawNone, &res, nil
	}

	if r >= 0 && (r < ' ' || isPrintable(r)) {
		if err := s.buf.Insert(s.cursor, r); err != nil {
			return redrawNone, nil, err
		}
		s.cursor++
		return redrawLine, nil, nil
	}

	env.Keys.FlushPendingInput()
	s.beep(env)
	return redrawLine, nil, nil
}

// accept finishes the session with the current buffer.
func (s *Session) accept(env *Env) Result {
	text := Encode(s.buf.Runes(), s.opts.MaxBytes)
	if !s.flags.Has(FlagPassword) && env.History != nil {
		env.History.Push(s.class, text)
	}
	res := Result{Status: StatusDone, Text: text}
	if s.flags.Has(FlagMultiple) {
		res.Files = []string{expandHome(text)}
	}
	return res
}

// recall replaces the buffer with a history entry for the session's class.
// A miss beeps and leaves the line alone.
func (s *Session) recall(env *Env, op Op) (redrawLevel, *Result, error) {
	if env.History == nil {
		s.beep(env)
		return redrawLine, nil, nil
	}
	var text string
	var ok bool
	if op == OpHistoryUp {
		text, ok = env.History.Prev(s.class)
	} else {
		text, ok = env.History.Next(s.class)
	}
	if !ok {
		s.beep(env)
		return redrawLine, nil, nil
	}
	if err := s.buf.Set(Decode(text)); err != nil {
		return redrawNone, nil, err
	}
	s.cursor = s.buf.Len()
	return redrawInit, nil, nil
}

// cycleMailbox replaces the buffer with the mailbox after the text left of
// the cursor. The next printable key clears it again.
func (s *Session) cycleMailbox(env *Env) (redrawLevel, *Result, error) {
	s.first = true
	if env.Mailboxes == nil {
		s.beep(env)
		return redrawLine, nil, nil
	}
	current := Encode(s.buf.Runes()[:s.cursor], s.opts.MaxBytes)
	if err := s.buf.Set(Decode(env.Mailboxes.Next(current))); err != nil {
		return redrawNone, nil, err
	}
	s.cursor = s.buf.Len()
	return redrawLine, nil, nil
}

// unitStart returns the start of the grapheme unit ending at i: the base
// scalar before i together with the zero-width marks that follow it.
func (s *Session) unitStart(i int) int {
	runes := s.buf.Runes()
	for i > 0 && s.width.RuneWidth(runes[i-1]) == 0 {
		i--
	}
	if i > 0 {
		i--
	}
	return i
}

// unitEnd skips the zero-width marks starting at i.
func (s *Session) unitEnd(i int) int {
	runes := s.buf.Runes()
	for i < len(runes) && s.width.RuneWidth(runes[i]) == 0 {
		i++
	}
	return i
}

// transformWord changes the case of the word under or after the cursor and
// leaves the cursor at its end.
func (s *Session) transformWord(env *Env, op Op) {
	n := s.buf.Len()
	if s.cursor == n {
		s.beep(env)
		return
	}
	runes := s.buf.Runes()
	if !unicode.IsSpace(runes[s.cursor]) {
		for s.cursor > 0 && !unicode.IsSpace(runes[s.cursor-1]) {
			s.cursor--
		}
	}
	for s.cursor < n && unicode.IsSpace(runes[s.cursor]) {
		s.cursor++
	}
	upper := op != OpDowncaseWord
	for s.cursor < n && !unicode.IsSpace(runes[s.cursor]) {
		if upper {
			runes[s.cursor] = unicode.ToUpper(runes[s.cursor])
			if op == OpCapitalizeWord {
				upper = false
			}
		} else {
			runes[s.cursor] = unicode.ToLower(runes[s.cursor])
		}
		s.cursor++
	}
}

// killWord deletes the word before the cursor. A run of letters and digits
// counts as a word; any other non-space scalar is a word on its own.
func (s *Session) killWord(env *Env) {
	if s.cursor == 0 {
		s.beep(env)
		return
	}
	runes := s.buf.Runes()
	i := s.cursor
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	if i > 0 {
		if isWordRune(runes[i-1]) {
			for i > 0 && isWordRune(runes[i-1]) {
				i--
			}
		} else {
			i = s.unitStart(i)
		}
	}
	s.buf.Remove(i, s.cursor)
	s.cursor = i
}

// killToEndOfWord deletes from the cursor to the end of the next word.
func (s *Session) killToEndOfWord() {
	runes := s.buf.Runes()
	n := len(runes)
	i := s.cursor
	for i < n && unicode.IsSpace(runes[i]) {
		i++
	}
	for i < n && isWordRune(runes[i]) {
		i++
	}
	s.buf.Remove(s.cursor, i)
}

// transpose swaps the two scalars before the cursor, first advancing the
// cursor when it is not at the end of the buffer.
func (s *Session) transpose(env *Env) {
	n := s.buf.Len()
	if n < 2 {
		s.beep(env)
		return
	}
	if s.cursor == 0 {
		s.cursor = 2
	} else if s.cursor < n {
		s.cursor++
	}
	runes := s.buf.Runes()
	runes[s.cursor-2], runes[s.cursor-1] = runes[s.cursor-1], runes[s.cursor-2]
}

func (s *Session) beep(env *Env) {
	env.Term.Beep()
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isPrintable(r rune) bool {
	return r >= 0 && unicode.IsPrint(r)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
