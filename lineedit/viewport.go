// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: lineedit/viewport.go
// Summary: Cursor and horizontal viewport bookkeeping.

package lineedit

// redrawLevel says how much of the prompt has to be recomputed.
type redrawLevel int

const (
	redrawNone redrawLevel = iota
	// redrawLine repaints the visible run and scrolls only if the cursor
	// left the window.
	redrawLine
	// redrawInit moves the cursor to the end and rebuilds the viewport.
	redrawInit
)

// windowWidth returns the number of columns available right of col.
func windowWidth(t Terminal, col int) int {
	w := t.Width() - col - 1
	if w < 1 {
		w = 1
	}
	return w
}

// scroll applies the viewport rule for the given redraw level.
//
// Scrolling jumps: when the cursor leaves the window the viewport is
// re-centred so that half a window of text precedes the cursor.
func (s *Session) scroll(level redrawLevel, width int) {
	runes := s.buf.Runes()
	if level == redrawInit {
		s.cursor = len(runes)
		s.begin = tailStart(s.width, runes, s.cursor, width-1)
	}
	if s.begin > s.cursor || runWidth(s.width, runes[s.begin:s.cursor]) >= width {
		s.begin = tailStart(s.width, runes, s.cursor, width/2)
	}
}

// Cursor returns the cursor index.
func (s *Session) Cursor() int { return s.cursor }

// ViewportStart returns the index of the first drawn scalar.
func (s *Session) ViewportStart() int { return s.begin }

// Len returns the number of scalars in the buffer.
func (s *Session) Len() int { return s.buf.Len() }

// Text returns the current buffer without capacity limits.
func (s *Session) Text() string { return s.buf.String() }
