// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: lineedit/doc.go
// Summary: Package overview for the single-line prompt editor.

// Package lineedit implements a resumable single-line text editor for
// terminal prompts.
//
// The editor keeps its text as Unicode scalars and measures everything that
// reaches the screen in display columns. A Session is owned by the caller and
// survives across calls to Edit: when the editor hands control to a picker
// sub-UI it returns StatusContinue, the host repaints its screen, and calls
// Edit again with the same Session to resume.
//
// Terminal output, key input, history, completion and pickers are
// collaborators supplied through Env. Package tui provides the tcell-backed
// terminal and key source, package history the recall rings, package
// completion the engines and package picker the list sub-UIs.
package lineedit
