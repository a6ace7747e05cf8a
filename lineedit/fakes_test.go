// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package lineedit

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/framegrace/texelprompt/history"
)

// scriptKeys replays events and checks the cursor and viewport invariants
// every time the editor asks for the next key. An exhausted script aborts.
type scriptKeys struct {
	t       *testing.T
	s       *Session
	events  []Event
	flushed int
}

func (k *scriptKeys) NextEvent() Event {
	if k.s != nil {
		require.True(k.t, 0 <= k.s.begin && k.s.begin <= k.s.cursor && k.s.cursor <= k.s.buf.Len(),
			"begin=%d cursor=%d len=%d", k.s.begin, k.s.cursor, k.s.buf.Len())
	}
	if len(k.events) == 0 {
		return Key(OpAbort)
	}
	ev := k.events[0]
	k.events = k.events[1:]
	return ev
}

func (k *scriptKeys) FlushPendingInput() { k.flushed++ }

// recTerm records what the editor draws.
type recTerm struct {
	width      int
	beeps      int
	draws      int
	x, lastX   int
	cursorRow  int
	cursorCol  int
	cells      map[int]string
	refreshed  int
	highlights []Context
}

func newRecTerm(width int) *recTerm {
	return &recTerm{width: width, cells: make(map[int]string)}
}

func (t *recTerm) MoveCursor(row, col int) {
	t.x = col
	t.cursorRow, t.cursorCol = row, col
}

func (t *recTerm) DrawScalar(r rune) int {
	t.draws++
	w := DefaultWidth.RuneWidth(r)
	if w == 0 {
		t.cells[t.lastX] += string(r)
		return 0
	}
	t.cells[t.x] = string(r)
	t.lastX = t.x
	t.x += w
	return w
}

func (t *recTerm) ClearToEOL() {
	for c := range t.cells {
		if c >= t.x {
			delete(t.cells, c)
		}
	}
}

func (t *recTerm) Refresh() { t.refreshed++ }
func (t *recTerm) Width() int { return t.width }
func (t *recTerm) Beep() { t.beeps++ }

func (t *recTerm) HighlightRun(ctx Context, run []rune) {
	t.highlights = append(t.highlights, ctx)
}

// line returns the drawn text from column col on.
func (t *recTerm) line(col int) string {
	cols := make([]int, 0, len(t.cells))
	for c := range t.cells {
		if c >= col {
			cols = append(cols, c)
		}
	}
	sort.Ints(cols)
	var sb strings.Builder
	for _, c := range cols {
		sb.WriteString(t.cells[c])
	}
	return sb.String()
}

type fakeCompleter struct {
	reqs  []Request
	reply func(req Request) (string, bool)
}

func (c *fakeCompleter) Complete(req Request) (string, bool) {
	c.reqs = append(c.reqs, req)
	if c.reply == nil {
		return "", false
	}
	return c.reply(req)
}

type fakePicker struct {
	reqs   []PickRequest
	result PickResult
	err    error
}

func (p *fakePicker) Pick(req PickRequest) (PickResult, error) {
	p.reqs = append(p.reqs, req)
	return p.result, p.err
}

type mailboxFunc func(current string) string

func (f mailboxFunc) Next(current string) string { return f(current) }

type push struct {
	class history.Class
	text  string
}

// recHistory wraps real rings and records pushes.
type recHistory struct {
	*history.History
	pushes []push
}

func newRecHistory() *recHistory { return &recHistory{History: history.New(10)} }

func (h *recHistory) Push(c history.Class, text string) {
	h.pushes = append(h.pushes, push{c, text})
	h.History.Push(c, text)
}

// harness bundles a session with recording collaborators.
type harness struct {
	s    *Session
	env  *Env
	keys *scriptKeys
	term *recTerm
	hist *recHistory
}

func newHarness(t *testing.T, text string, opts Options) *harness {
	t.Helper()
	s := NewSession(text, opts)
	h := &harness{
		s:    s,
		keys: &scriptKeys{t: t, s: s},
		term: newRecTerm(80),
		hist: newRecHistory(),
	}
	h.env = &Env{Keys: h.keys, Term: h.term, History: h.hist}
	return h
}

// run queues events and runs one Edit call at row 0, column 2.
func (h *harness) run(t *testing.T, events ...Event) Result {
	t.Helper()
	h.keys.events = append(h.keys.events, events...)
	res, err := h.s.Edit(h.env, 0, 2)
	require.NoError(t, err)
	return res
}

func typed(text string) []Event {
	var out []Event
	for _, r := range text {
		out = append(out, Insert(r))
	}
	return out
}

func keys(ops ...Op) []Event {
	out := make([]Event, len(ops))
	for i, op := range ops {
		out[i] = Key(op)
	}
	return out
}

func seq(parts ...[]Event) []Event {
	var out []Event
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

var enter = Insert('\r')
