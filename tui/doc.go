// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/doc.go
// Summary: tcell adapters for the line editor.

// Package tui connects lineedit sessions to a tcell.Screen: Terminal draws
// the prompt line, Keys turns tcell key events into editing operations
// through a Keymap, and Highlighter colours shell commands with Chroma.
package tui
