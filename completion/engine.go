// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: completion/engine.go
// Summary: Context dispatch for completion requests.
// Usage: Installed as lineedit.Env.Completer.

package completion

import (
	"github.com/framegrace/texelprompt/lineedit"
)

// Engine routes a completion request to the completer for its context.
type Engine struct {
	Aliases  *Aliases
	Commands *Commands
}

// NewEngine creates an engine. Either source may be nil, in which case the
// matching context never completes.
func NewEngine(aliases *Aliases, commands *Commands) *Engine {
	return &Engine{Aliases: aliases, Commands: commands}
}

// Complete implements lineedit.Completer.
func (e *Engine) Complete(req lineedit.Request) (string, bool) {
	switch req.Context {
	case lineedit.ContextFile, lineedit.ContextEffectiveFile, lineedit.ContextCommand:
		return CompleteFile(req.Text)
	case lineedit.ContextAlias:
		if e.Aliases == nil {
			return "", false
		}
		return e.Aliases.Complete(req.Text)
	case lineedit.ContextConfigCommand:
		if e.Commands == nil {
			return "", false
		}
		if req.VarValue {
			return e.Commands.CompleteValue(req.Text)
		}
		return e.Commands.Complete(req.Text, req.Tabs)
	}
	return "", false
}

// commonPrefix returns the longest prefix shared by every string in words.
func commonPrefix(words []string) string {
	if len(words) == 0 {
		return ""
	}
	prefix := []rune(words[0])
	for _, w := range words[1:] {
		r := []rune(w)
		n := 0
		for n < len(prefix) && n < len(r) && prefix[n] == r[n] {
			n++
		}
		prefix = prefix[:n]
		if n == 0 {
			break
		}
	}
	return string(prefix)
}
