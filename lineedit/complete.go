// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: lineedit/complete.go
// Summary: Completion bridge: probed span selection, escalation to pickers
// and splicing results back into the buffer.

package lineedit

import (
	"log"
	"slices"
	"strings"
)

// complete handles OpComplete (and OpMailboxCycle in file context).
//
// The first request in a row asks the Completer for the probed span and
// remembers it. A request whose span is unchanged since then opens the
// context's picker instead.
func (s *Session) complete(env *Env, ev Event) (redrawLevel, *Result, error) {
	s.tabs++
	switch s.ctx {
	case ContextFile, ContextEffectiveFile:
		return s.completeSpan(env, 0, env.FilePicker)
	case ContextCommand:
		return s.completeSpan(env, s.tokenStart(' ', false), env.FilePicker)
	case ContextAlias:
		return s.completeSpan(env, s.tokenStart(',', true), env.AliasPicker)
	case ContextConfigCommand:
		return s.completeConfig(env)
	}
	return s.selfInsert(env, ev.Rune)
}

// tokenStart returns the index after the last sep before the cursor,
// optionally skipping the spaces that follow it.
func (s *Session) tokenStart(sep rune, skipSpaces bool) int {
	runes := s.buf.Runes()
	i := s.cursor
	for i > 0 && runes[i-1] != sep {
		i--
	}
	if skipSpaces {
		for i < s.cursor && runes[i] == ' ' {
			i++
		}
	}
	return i
}

// completeSpan probes [from, cursor) and escalates to picker when the text
// from `from` to the end of the buffer has not changed since the last probe.
func (s *Session) completeSpan(env *Env, from int, picker Picker) (redrawLevel, *Result, error) {
	runes := s.buf.Runes()
	probe := Encode(runes[from:s.cursor], s.opts.MaxBytes)

	if s.snapshot != nil && slices.Equal(s.snapshot, runes[from:]) {
		return s.escalate(env, from, probe, picker)
	}

	s.snapshot = slices.Clone(runes[from:])
	if env.Completer == nil {
		s.beep(env)
		return redrawLine, nil, nil
	}
	text, ok := env.Completer.Complete(Request{Context: s.ctx, Text: probe, Tabs: s.tabs})
	if !ok {
		s.beep(env)
		return redrawLine, nil, nil
	}
	if err := s.splice(from, text); err != nil {
		return redrawNone, nil, err
	}
	return redrawLine, nil, nil
}

// escalate opens picker on the probed prefix. The session always ends the
// call with StatusContinue because the picker painted over the screen,
// except for a multi-file selection which ends the prompt.
func (s *Session) escalate(env *Env, from int, prefix string, picker Picker) (redrawLevel, *Result, error) {
	if picker == nil {
		s.beep(env)
		return redrawLine, nil, nil
	}
	multiple := s.ctx != ContextAlias && s.ctx != ContextCommand && s.flags.Has(FlagMultiple)
	pick, err := picker.Pick(PickRequest{Prefix: prefix, Multiple: multiple})
	if err != nil {
		log.Printf("LineEdit: picker failed for %q: %v", prefix, err)
		pick = PickResult{}
	}
	if multiple && len(pick.Files) > 1 {
		return redrawNone, &Result{Status: StatusDone, Files: pick.Files}, nil
	}
	if pick.Text != "" {
		if err := s.splice(from, pick.Text); err != nil {
			return redrawNone, nil, err
		}
	}
	s.snapshot = nil
	return redrawNone, &Result{Status: StatusContinue}, nil
}

// completeConfig completes configuration commands on [0, cursor). A trailing
// '=' asks for the current value of the variable; otherwise the engine sees
// the number of consecutive requests so it can cycle candidates.
func (s *Session) completeConfig(env *Env) (redrawLevel, *Result, error) {
	if env.Completer == nil {
		s.beep(env)
		return redrawLine, nil, nil
	}
	probe := Encode(s.buf.Runes()[:s.cursor], s.opts.MaxBytes)

	if strings.HasSuffix(probe, "=") {
		if text, ok := env.Completer.Complete(Request{Context: s.ctx, Text: probe, VarValue: true}); ok {
			s.tabs = 0
			if err := s.splice(0, text); err != nil {
				return redrawNone, nil, err
			}
			return redrawLine, nil, nil
		}
	}

	text, ok := env.Completer.Complete(Request{Context: s.ctx, Text: probe, Tabs: s.tabs})
	if !ok {
		s.beep(env)
		return redrawLine, nil, nil
	}
	if err := s.splice(0, text); err != nil {
		return redrawNone, nil, err
	}
	return redrawLine, nil, nil
}

// completeQuery runs the query picker on the address under the cursor, or
// on an empty prefix at the start of the line.
func (s *Session) completeQuery(env *Env) (redrawLevel, *Result, error) {
	from := 0
	if s.cursor > 0 {
		from = s.tokenStart(',', true)
	}
	prefix := Encode(s.buf.Runes()[from:s.cursor], s.opts.MaxBytes)
	if env.QueryPicker == nil {
		s.beep(env)
		return redrawLine, nil, nil
	}
	pick, err := env.QueryPicker.Pick(PickRequest{Prefix: prefix})
	if err != nil {
		log.Printf("LineEdit: query failed for %q: %v", prefix, err)
		return redrawNone, &Result{Status: StatusContinue}, nil
	}
	if pick.Text != "" {
		if err := s.splice(from, pick.Text); err != nil {
			return redrawNone, nil, err
		}
	}
	return redrawNone, &Result{Status: StatusContinue}, nil
}

// splice replaces [from, cursor) with text, keeps everything after the
// cursor and moves the cursor to the end of the inserted text.
func (s *Session) splice(from int, text string) error {
	end, err := s.buf.Replace(from, s.cursor, Decode(text))
	if err != nil {
		return err
	}
	s.cursor = end
	return nil
}
