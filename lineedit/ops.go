// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: lineedit/ops.go
// Summary: Abstract editing operations and their binding names.

package lineedit

// Op is an abstract editing command produced by a KeySource.
type Op int

const (
	// OpNull carries a raw scalar to be inserted (or accepted, for Enter).
	OpNull Op = iota
	OpAbort
	OpBackwardChar
	OpForwardChar
	OpBackwardWord
	OpForwardWord
	OpBeginningOfLine
	OpEndOfLine
	OpBackspace
	OpDeleteChar
	OpKillLine
	OpKillEOL
	OpKillWord
	OpKillEOW
	OpTransposeChars
	OpUpcaseWord
	OpDowncaseWord
	OpCapitalizeWord
	OpHistoryUp
	OpHistoryDown
	OpComplete
	OpCompleteQuery
	OpMailboxCycle
	OpQuoteChar
)

var opNames = []string{
	OpNull:            "self-insert",
	OpAbort:           "abort",
	OpBackwardChar:    "backward-char",
	OpForwardChar:     "forward-char",
	OpBackwardWord:    "backward-word",
	OpForwardWord:     "forward-word",
	OpBeginningOfLine: "bol",
	OpEndOfLine:       "eol",
	OpBackspace:       "backspace",
	OpDeleteChar:      "delete-char",
	OpKillLine:        "kill-line",
	OpKillEOL:         "kill-eol",
	OpKillWord:        "kill-word",
	OpKillEOW:         "kill-eow",
	OpTransposeChars:  "transpose-chars",
	OpUpcaseWord:      "upcase-word",
	OpDowncaseWord:    "downcase-word",
	OpCapitalizeWord:  "capitalize-word",
	OpHistoryUp:       "history-up",
	OpHistoryDown:     "history-down",
	OpComplete:        "complete",
	OpCompleteQuery:   "complete-query",
	OpMailboxCycle:    "mailbox-cycle",
	OpQuoteChar:       "quote-char",
}

func (op Op) String() string {
	if op >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return "unknown"
}

// ParseOp returns the Op bound to a function name such as "kill-eol".
func ParseOp(name string) (Op, bool) {
	for i, n := range opNames {
		if n == name {
			return Op(i), true
		}
	}
	return OpNull, false
}

// Event is one key press after keymap translation. Rune is the raw scalar
// behind the key, or -1 for keys without one (arrows, function keys).
type Event struct {
	Op   Op
	Rune rune
}

// Insert returns an event that self-inserts r.
func Insert(r rune) Event { return Event{Op: OpNull, Rune: r} }

// Key returns an event for op with no raw scalar.
func Key(op Op) Event { return Event{Op: op, Rune: -1} }
