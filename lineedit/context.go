// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: lineedit/context.go
// Summary: Session flags and the editing context derived from them.

package lineedit

import (
	"strings"

	"github.com/framegrace/texelprompt/history"
)

// Flags configure a session.
type Flags uint16

const (
	// FlagClear erases the initial text when the first printable key is typed.
	FlagClear Flags = 1 << iota
	// FlagPassword suppresses rendering and history.
	FlagPassword
	// FlagFile completes file names.
	FlagFile
	// FlagEffectiveFile completes file names and cycles mailboxes on space.
	FlagEffectiveFile
	// FlagCommand completes the last word of a shell command as a path.
	FlagCommand
	// FlagAlias completes the address after the last comma.
	FlagAlias
	// FlagConfigCommand completes configuration commands and values.
	FlagConfigCommand
	// FlagPattern selects the pattern history.
	FlagPattern
	// FlagMultiple lets the file picker return several files.
	FlagMultiple
)

// Has reports whether all bits in f are set.
func (fl Flags) Has(f Flags) bool { return fl&f == f }

// Context selects history and completion behaviour for a whole session.
type Context int

const (
	ContextNone Context = iota
	ContextFile
	ContextEffectiveFile
	ContextCommand
	ContextAlias
	ContextConfigCommand
	ContextPattern
)

var contextNames = map[Context]string{
	ContextNone:          "none",
	ContextFile:          "file",
	ContextEffectiveFile: "efile",
	ContextCommand:       "command",
	ContextAlias:         "alias",
	ContextConfigCommand: "config",
	ContextPattern:       "pattern",
}

func (c Context) String() string {
	if name, ok := contextNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseContext maps a context name back to its Context.
func ParseContext(name string) (Context, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range contextNames {
		if n == name {
			return c, true
		}
	}
	return ContextNone, false
}

// Flags returns the flag that selects this context.
func (c Context) Flags() Flags {
	switch c {
	case ContextFile:
		return FlagFile
	case ContextEffectiveFile:
		return FlagEffectiveFile
	case ContextCommand:
		return FlagCommand
	case ContextAlias:
		return FlagAlias
	case ContextConfigCommand:
		return FlagConfigCommand
	case ContextPattern:
		return FlagPattern
	}
	return 0
}

// ContextFor derives the context from flags. When several context flags are
// set the earlier one in this order wins: effective-file, file, command,
// alias, config-command, pattern.
func ContextFor(fl Flags) Context {
	switch {
	case fl.Has(FlagEffectiveFile):
		return ContextEffectiveFile
	case fl.Has(FlagFile):
		return ContextFile
	case fl.Has(FlagCommand):
		return ContextCommand
	case fl.Has(FlagAlias):
		return ContextAlias
	case fl.Has(FlagConfigCommand):
		return ContextConfigCommand
	case fl.Has(FlagPattern):
		return ContextPattern
	}
	return ContextNone
}

// HistoryClass returns the recall ring used in this context.
func (c Context) HistoryClass() history.Class {
	switch c {
	case ContextFile, ContextEffectiveFile:
		return history.ClassFile
	case ContextCommand:
		return history.ClassCommand
	case ContextAlias:
		return history.ClassAlias
	case ContextConfigCommand:
		return history.ClassGenericCommand
	case ContextPattern:
		return history.ClassPattern
	}
	return history.ClassOther
}
