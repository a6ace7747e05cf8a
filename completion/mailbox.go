// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: completion/mailbox.go
// Summary: Mailbox cycling for effective-file prompts.

package completion

import (
	"os"
	"path/filepath"
)

// Mailboxes cycles through a configured list of mailboxes. When some of
// them are Maildirs holding new mail only those take part in the cycle.
type Mailboxes struct {
	list []string
	// HasNewMail may be replaced in tests.
	HasNewMail func(path string) bool
}

// NewMailboxes creates a cycler over paths in the given order.
func NewMailboxes(paths []string) *Mailboxes {
	return &Mailboxes{list: append([]string(nil), paths...), HasNewMail: maildirHasNew}
}

// Next implements lineedit.MailboxCycler. It returns the mailbox after
// current, wrapping around, or current itself when there is nothing to
// cycle to.
func (m *Mailboxes) Next(current string) string {
	candidates := m.withNewMail()
	if len(candidates) == 0 {
		candidates = m.list
	}
	if len(candidates) == 0 {
		return current
	}

	cur := ExpandHome(current)
	for i, mb := range candidates {
		if ExpandHome(mb) == cur {
			return candidates[(i+1)%len(candidates)]
		}
	}
	return candidates[0]
}

func (m *Mailboxes) withNewMail() []string {
	if m.HasNewMail == nil {
		return nil
	}
	var out []string
	for _, mb := range m.list {
		if m.HasNewMail(ExpandHome(mb)) {
			out = append(out, mb)
		}
	}
	return out
}

// maildirHasNew reports whether path is a Maildir with files in new/.
func maildirHasNew(path string) bool {
	entries, err := os.ReadDir(filepath.Join(path, "new"))
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() {
			return true
		}
	}
	return false
}
