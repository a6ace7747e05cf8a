// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: completion/doc.go
// Summary: Completion engines behind the line editor's Tab key.

// Package completion implements lineedit.Completer for file names, mail
// aliases and configuration commands, plus the mailbox cycler and the
// external address query used by the query picker.
package completion
