// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/terminal.go
// Summary: lineedit.Terminal on top of a tcell.Screen.

package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelprompt/lineedit"
)

// Terminal draws the prompt line on a tcell screen. Control scalars are
// drawn in caret notation and zero-width scalars join the previous cell.
type Terminal struct {
	screen tcell.Screen
	oracle lineedit.WidthOracle

	// Style is the base style of drawn text.
	Style tcell.Style
	// Highlight colours the visible run when set.
	Highlight *Highlighter

	x, y   int
	styles []tcell.Style
	idx    int
}

// NewTerminal wraps screen. A nil oracle uses lineedit.DefaultWidth.
func NewTerminal(screen tcell.Screen, oracle lineedit.WidthOracle) *Terminal {
	if oracle == nil {
		oracle = lineedit.DefaultWidth
	}
	return &Terminal{screen: screen, oracle: oracle, Style: tcell.StyleDefault}
}

// Screen returns the wrapped screen.
func (t *Terminal) Screen() tcell.Screen { return t.screen }

// MoveCursor places the drawing position and the visible cursor.
func (t *Terminal) MoveCursor(row, col int) {
	t.x, t.y = col, row
	t.idx = 0
	t.screen.ShowCursor(col, row)
}

// HighlightRun implements lineedit.Highlighter.
func (t *Terminal) HighlightRun(ctx lineedit.Context, run []rune) {
	t.styles = nil
	if t.Highlight != nil {
		t.styles = t.Highlight.Styles(ctx, run, t.Style)
	}
}

// DrawScalar draws r and returns the columns used.
func (t *Terminal) DrawScalar(r rune) int {
	style := t.Style
	if t.idx < len(t.styles) {
		style = t.styles[t.idx]
	}
	t.idx++

	if lineedit.IsControl(r) {
		t.screen.SetContent(t.x, t.y, '^', nil, style)
		t.screen.SetContent(t.x+1, t.y, r^0x40, nil, style)
		t.x += 2
		return 2
	}

	w := t.oracle.RuneWidth(r)
	if w == 0 {
		if t.x > 0 {
			mainc, comb, st, _ := t.screen.GetContent(t.x-1, t.y)
			t.screen.SetContent(t.x-1, t.y, mainc, append(comb, r), st)
		}
		return 0
	}
	t.screen.SetContent(t.x, t.y, r, nil, style)
	t.x += w
	return w
}

// Print draws text with style starting at (row, col), for prompts and
// labels around the edited line. It returns the columns used.
func (t *Terminal) Print(row, col int, text string, style tcell.Style) int {
	saved := t.Style
	t.Style = style
	t.styles = nil
	t.x, t.y = col, row
	used := 0
	for _, r := range text {
		used += t.DrawScalar(r)
	}
	t.Style = saved
	return used
}

// ClearToEOL blanks the rest of the current row.
func (t *Terminal) ClearToEOL() {
	w, _ := t.screen.Size()
	for x := t.x; x < w; x++ {
		t.screen.SetContent(x, t.y, ' ', nil, t.Style)
	}
}

// ClearRow blanks a whole row.
func (t *Terminal) ClearRow(row int) {
	t.x, t.y = 0, row
	t.ClearToEOL()
}

// Refresh pushes pending changes to the terminal.
func (t *Terminal) Refresh() { t.screen.Show() }

// Width returns the screen width in columns.
func (t *Terminal) Width() int {
	w, _ := t.screen.Size()
	return w
}

// Beep rings the terminal bell.
func (t *Terminal) Beep() {
	_ = t.screen.Beep()
}
