// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/highlight.go
// Summary: Chroma syntax colouring for command prompts.

package tui

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelprompt/lineedit"
)

const defaultStyleName = "catppuccin-mocha"

// Highlighter colours the visible run of prompts whose context has a lexer.
type Highlighter struct {
	style  *chroma.Style
	lexers map[lineedit.Context]chroma.Lexer
}

// NewHighlighter resolves styleName, falling back to the default style.
// Shell and configuration commands are lexed as bash.
func NewHighlighter(styleName string) *Highlighter {
	if styleName == "" {
		styleName = defaultStyleName
	}
	bash := lexers.Get("bash")
	if bash == nil {
		bash = lexers.Fallback
	}
	bash = chroma.Coalesce(bash)
	return &Highlighter{
		style: styles.Get(styleName),
		lexers: map[lineedit.Context]chroma.Lexer{
			lineedit.ContextCommand:       bash,
			lineedit.ContextConfigCommand: bash,
		},
	}
}

// Styles returns one style per scalar of run, derived from base. It returns
// nil when the context is not highlighted or the run cannot be lexed.
func (h *Highlighter) Styles(ctx lineedit.Context, run []rune, base tcell.Style) []tcell.Style {
	lexer, ok := h.lexers[ctx]
	if !ok || len(run) == 0 {
		return nil
	}
	tokens, err := chroma.Tokenise(lexer, nil, string(run))
	if err != nil {
		return nil
	}

	baseColour := h.style.Get(chroma.Text).Colour
	out := make([]tcell.Style, 0, len(run))
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		st := tokenStyle(h.style.Get(tok.Type), baseColour, base)
		for range []rune(tok.Value) {
			out = append(out, st)
		}
	}
	// Lexers may append a trailing newline token.
	if len(out) > len(run) {
		out = out[:len(run)]
	}
	return out
}

func tokenStyle(entry chroma.StyleEntry, baseColour chroma.Colour, base tcell.Style) tcell.Style {
	st := base
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	if entry.Colour.IsSet() && entry.Colour != baseColour {
		st = st.Foreground(tcell.NewRGBColor(
			int32(entry.Colour.Red()),
			int32(entry.Colour.Green()),
			int32(entry.Colour.Blue()),
		))
	}
	return st
}
