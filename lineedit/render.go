// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: lineedit/render.go
// Summary: Minimal redraw of the prompt line on the terminal collaborator.

package lineedit

// draw paints the visible run starting at the viewport, clears the rest of
// the line and leaves the terminal cursor on the editing cursor.
func (s *Session) draw(t Terminal, row, col, width int) {
	runes := s.buf.Runes()
	visible := runes[s.begin:]

	end := 0
	w := 0
	for end < len(visible) {
		w += s.width.RuneWidth(visible[end])
		if w > width {
			break
		}
		end++
	}

	if h, ok := t.(Highlighter); ok {
		h.HighlightRun(s.ctx, visible[:end])
	}
	t.MoveCursor(row, col)
	for _, r := range visible[:end] {
		t.DrawScalar(r)
	}
	t.ClearToEOL()
	t.MoveCursor(row, col+runWidth(s.width, runes[s.begin:s.cursor]))
}
