// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/keymap.go
// Summary: Key bindings translating tcell keys into editing operations.
// Usage: DefaultKeymap gives emacs-style bindings; the "keys" config
// section overrides them with entries such as "C-w": "kill-word".

package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelprompt/lineedit"
)

// binding identifies a key press. Rune is only set for tcell.KeyRune.
type binding struct {
	key  tcell.Key
	r    rune
	meta bool
}

// Keymap maps key presses to operations.
type Keymap struct {
	m map[binding]lineedit.Op
}

// namedKeys are the key names accepted in binding specs besides C-x, M-x
// and single characters.
var namedKeys = map[string]tcell.Key{
	"tab":       tcell.KeyTab,
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEsc,
	"backspace": tcell.KeyBackspace,
	"delete":    tcell.KeyDelete,
	"insert":    tcell.KeyInsert,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
}

var defaultBindings = []struct {
	spec string
	op   lineedit.Op
}{
	{"C-a", lineedit.OpBeginningOfLine},
	{"Home", lineedit.OpBeginningOfLine},
	{"C-e", lineedit.OpEndOfLine},
	{"End", lineedit.OpEndOfLine},
	{"C-b", lineedit.OpBackwardChar},
	{"Left", lineedit.OpBackwardChar},
	{"C-f", lineedit.OpForwardChar},
	{"Right", lineedit.OpForwardChar},
	{"M-b", lineedit.OpBackwardWord},
	{"M-f", lineedit.OpForwardWord},
	{"Backspace", lineedit.OpBackspace},
	{"C-d", lineedit.OpDeleteChar},
	{"Delete", lineedit.OpDeleteChar},
	{"C-k", lineedit.OpKillEOL},
	{"C-u", lineedit.OpKillLine},
	{"C-w", lineedit.OpKillWord},
	{"M-d", lineedit.OpKillEOW},
	{"M-c", lineedit.OpCapitalizeWord},
	{"M-u", lineedit.OpUpcaseWord},
	{"M-l", lineedit.OpDowncaseWord},
	{"C-t", lineedit.OpCompleteQuery},
	{"Tab", lineedit.OpComplete},
	{"C-v", lineedit.OpQuoteChar},
	{"Up", lineedit.OpHistoryUp},
	{"C-p", lineedit.OpHistoryUp},
	{"Down", lineedit.OpHistoryDown},
	{"C-n", lineedit.OpHistoryDown},
	{"C-g", lineedit.OpAbort},
	{"Esc", lineedit.OpAbort},
	{" ", lineedit.OpMailboxCycle},
}

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() *Keymap {
	k := &Keymap{m: make(map[binding]lineedit.Op, len(defaultBindings))}
	for _, b := range defaultBindings {
		if err := k.Bind(b.spec, b.op); err != nil {
			panic(err)
		}
	}
	return k
}

// parseSpec parses "C-a", "M-b", "Tab", "Space" or a single character.
func parseSpec(spec string) (binding, error) {
	if spec == "" {
		return binding{}, fmt.Errorf("empty key")
	}
	if strings.EqualFold(spec, "space") {
		spec = " "
	}
	if utf8.RuneCountInString(spec) == 1 {
		r, _ := utf8.DecodeRuneInString(spec)
		return binding{key: tcell.KeyRune, r: r}, nil
	}
	if key, ok := namedKeys[strings.ToLower(spec)]; ok {
		return binding{key: key}, nil
	}
	if len(spec) > 2 && spec[1] == '-' {
		rest := spec[2:]
		switch spec[0] {
		case 'C', 'c':
			if len(rest) == 1 {
				c := rest[0] | 0x20
				if c >= 'a' && c <= 'z' {
					return binding{key: tcell.KeyCtrlA + tcell.Key(c-'a')}, nil
				}
			}
			if strings.EqualFold(rest, "space") {
				return binding{key: tcell.KeyCtrlSpace}, nil
			}
		case 'M', 'm':
			b, err := parseSpec(rest)
			if err != nil {
				return binding{}, err
			}
			b.meta = true
			return b, nil
		}
	}
	return binding{}, fmt.Errorf("unknown key %q", spec)
}

// Bind binds spec to op.
func (k *Keymap) Bind(spec string, op lineedit.Op) error {
	b, err := parseSpec(spec)
	if err != nil {
		return err
	}
	k.m[b] = op
	return nil
}

// Unbind removes the binding of spec; the key then self-inserts.
func (k *Keymap) Unbind(spec string) error {
	b, err := parseSpec(spec)
	if err != nil {
		return err
	}
	delete(k.m, b)
	return nil
}

// Apply installs overrides mapping key specs to operation names. The name
// "noop" removes a binding. Every entry is applied; the first error is
// returned.
func (k *Keymap) Apply(overrides map[string]string) error {
	var first error
	for spec, name := range overrides {
		var err error
		if name == "noop" {
			err = k.Unbind(spec)
		} else if op, ok := lineedit.ParseOp(name); ok {
			err = k.Bind(spec, op)
		} else {
			err = fmt.Errorf("unknown function %q", name)
		}
		if err != nil && first == nil {
			first = fmt.Errorf("key %q: %w", spec, err)
		}
	}
	return first
}

// Lookup returns the operation bound to spec.
func (k *Keymap) Lookup(spec string) (lineedit.Op, bool) {
	b, err := parseSpec(spec)
	if err != nil {
		return lineedit.OpNull, false
	}
	op, ok := k.m[b]
	return op, ok
}

// Translate turns a key event into an editing event. The raw scalar is the
// typed character for rune keys and the control code for C0 keys; other
// keys carry -1. Unbound keys self-insert their raw scalar.
func (k *Keymap) Translate(ev *tcell.EventKey) lineedit.Event {
	key := ev.Key()
	raw := rune(-1)
	switch {
	case key == tcell.KeyRune:
		raw = ev.Rune()
	case key < 0x20 || key == 0x7f:
		raw = rune(key)
	}

	b := binding{key: key, meta: ev.Modifiers()&tcell.ModAlt != 0}
	if key == tcell.KeyRune {
		b.r = raw
	}
	if op, ok := k.m[b]; ok {
		return lineedit.Event{Op: op, Rune: raw}
	}
	return lineedit.Event{Op: lineedit.OpNull, Rune: raw}
}
