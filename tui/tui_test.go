// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/texelprompt/history"
	"github.com/framegrace/texelprompt/lineedit"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func readScreenLine(screen tcell.Screen, y, width int) string {
	runes := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		ch, comb, _, _ := screen.GetContent(i, y)
		if ch == 0 {
			ch = ' '
		}
		runes = append(runes, ch)
		runes = append(runes, comb...)
	}
	return strings.TrimRight(string(runes), " ")
}

func TestParseSpec(t *testing.T) {
	tests := []struct {
		spec string
		want binding
	}{
		{"C-a", binding{key: tcell.KeyCtrlA}},
		{"c-W", binding{key: tcell.KeyCtrlW}},
		{"M-b", binding{key: tcell.KeyRune, r: 'b', meta: true}},
		{"Tab", binding{key: tcell.KeyTab}},
		{"space", binding{key: tcell.KeyRune, r: ' '}},
		{"x", binding{key: tcell.KeyRune, r: 'x'}},
		{"M-Up", binding{key: tcell.KeyUp, meta: true}},
		{"C-space", binding{key: tcell.KeyCtrlSpace}},
	}
	for _, tt := range tests {
		got, err := parseSpec(tt.spec)
		require.NoError(t, err, tt.spec)
		assert.Equal(t, tt.want, got, tt.spec)
	}

	for _, bad := range []string{"", "C-1", "Hyper-x", "F99"} {
		_, err := parseSpec(bad)
		assert.Error(t, err, bad)
	}
}

func TestKeymap_Translate(t *testing.T) {
	k := DefaultKeymap()

	tests := []struct {
		ev   *tcell.EventKey
		want lineedit.Event
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), lineedit.Insert('a')},
		{tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModAlt), lineedit.Event{Op: lineedit.OpBackwardWord, Rune: 'b'}},
		{tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl), lineedit.Event{Op: lineedit.OpBeginningOfLine, Rune: 1}},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), lineedit.Event{Op: lineedit.OpComplete, Rune: '\t'}},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), lineedit.Insert('\r')},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), lineedit.Key(lineedit.OpHistoryUp)},
		{tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), lineedit.Key(lineedit.OpNull)},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), lineedit.Event{Op: lineedit.OpBackspace, Rune: 8}},
		{tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), lineedit.Event{Op: lineedit.OpBackspace, Rune: 8}},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), lineedit.Event{Op: lineedit.OpMailboxCycle, Rune: ' '}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, k.Translate(tt.ev), tt.ev.Name())
	}
}

func TestKeymap_Apply(t *testing.T) {
	k := DefaultKeymap()
	err := k.Apply(map[string]string{
		"C-x": "kill-line",
		" ":   "noop",
	})
	require.NoError(t, err)

	op, ok := k.Lookup("C-x")
	require.True(t, ok)
	assert.Equal(t, lineedit.OpKillLine, op)
	_, ok = k.Lookup("space")
	assert.False(t, ok)

	assert.Error(t, k.Apply(map[string]string{"C-y": "frobnicate"}))
	assert.Error(t, k.Apply(map[string]string{"Nope-y": "bol"}))
}

func TestTerminal_DrawScalar(t *testing.T) {
	screen := newScreen(t, 20, 2)
	term := NewTerminal(screen, nil)

	term.MoveCursor(0, 0)
	assert.Equal(t, 1, term.DrawScalar('a'))
	assert.Equal(t, 2, term.DrawScalar(0x01))
	assert.Equal(t, 0, term.DrawScalar('\u0301'))
	assert.Equal(t, 2, term.DrawScalar('世'))
	term.ClearToEOL()
	term.Refresh()

	assert.Equal(t, "a^A\u0301世", readScreenLine(screen, 0, 20))
	assert.Equal(t, 20, term.Width())
}

func TestTerminal_Print(t *testing.T) {
	screen := newScreen(t, 20, 2)
	term := NewTerminal(screen, nil)
	n := term.Print(1, 2, "Subject: ", tcell.StyleDefault.Bold(true))
	assert.Equal(t, 9, n)
	assert.Equal(t, "  Subject:", readScreenLine(screen, 1, 20))
}

func TestHighlighter_Styles(t *testing.T) {
	h := NewHighlighter("")
	run := []rune(`ls -l "$HOME"`)

	styles := h.Styles(lineedit.ContextCommand, run, tcell.StyleDefault)
	require.Len(t, styles, len(run))

	assert.Nil(t, h.Styles(lineedit.ContextFile, run, tcell.StyleDefault))
	assert.Nil(t, h.Styles(lineedit.ContextCommand, nil, tcell.StyleDefault))
}

func TestKeys_NextEventAndFlush(t *testing.T) {
	screen := newScreen(t, 20, 2)
	keys := NewKeys(screen, nil)

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	assert.Equal(t, lineedit.Insert('x'), keys.NextEvent())

	screen.InjectKey(tcell.KeyRune, 'y', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	keys.FlushPendingInput()
	screen.InjectKey(tcell.KeyCtrlG, 0, tcell.ModCtrl)
	assert.Equal(t, lineedit.OpAbort, keys.NextEvent().Op)
}

func TestSession_OnSimulationScreen(t *testing.T) {
	screen := newScreen(t, 30, 3)
	term := NewTerminal(screen, nil)
	hist := history.New(10)
	env := &lineedit.Env{Keys: NewKeys(screen, nil), Term: term, History: hist}

	for _, r := range "echo hi" {
		screen.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	screen.InjectKey(tcell.KeyCtrlA, 0, tcell.ModCtrl)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	n := term.Print(1, 0, "$ ", tcell.StyleDefault)
	res, err := lineedit.EnterString(env, "", 1, n, lineedit.Options{Flags: lineedit.FlagPattern})
	require.NoError(t, err)
	assert.Equal(t, lineedit.StatusDone, res.Status)
	assert.Equal(t, "echo hi", res.Text)
	assert.Equal(t, "$ echo hi", readScreenLine(screen, 1, 30))
	assert.Equal(t, []string{"echo hi"}, hist.Entries(history.ClassPattern))

	x, y, visible := screen.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 1, y)
	assert.Equal(t, n, x, "C-a leaves the cursor at the start of the text")
}
