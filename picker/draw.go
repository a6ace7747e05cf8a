// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: picker/draw.go
// Summary: Grapheme-aware text drawing helpers.

package picker

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// drawText draws text at (x, y) without exceeding maxW columns and returns
// the columns used. Clusters are never split; a cluster that would cross
// the limit is dropped along with the rest of the text.
func drawText(s tcell.Screen, x, y, maxW int, text string, style tcell.Style) int {
	if maxW <= 0 {
		return 0
	}
	used := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := g.Width()
		if w == 0 {
			continue
		}
		if used+w > maxW {
			break
		}
		runes := g.Runes()
		var comb []rune
		if len(runes) > 1 {
			comb = runes[1:]
		}
		s.SetContent(x+used, y, runes[0], comb, style)
		used += w
	}
	return used
}

func textWidth(text string) int {
	return uniseg.StringWidth(text)
}

func fill(s tcell.Screen, x, y, w int, style tcell.Style) {
	for i := 0; i < w; i++ {
		s.SetContent(x+i, y, ' ', nil, style)
	}
}
