// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: completion/commands.go
// Summary: Configuration command, variable name and variable value completion.

package completion

import (
	"sort"
	"strconv"
	"strings"
	"sync"
)

// varCommands take variable names as arguments.
var varCommands = map[string]bool{
	"set":    true,
	"unset":  true,
	"reset":  true,
	"toggle": true,
}

// Commands completes configuration lines such as "set editor=vim". The
// first Tab extends the word under completion to the common prefix of its
// candidates; further Tabs cycle through the candidates one by one.
type Commands struct {
	names []string
	vars  map[string]string

	mu    sync.Mutex
	head  string
	cycle []string
}

// NewCommands creates a completer for the given command names and variable
// values.
func NewCommands(names []string, vars map[string]string) *Commands {
	c := &Commands{
		names: append([]string(nil), names...),
		vars:  make(map[string]string, len(vars)),
	}
	for k := range varCommands {
		if !contains(c.names, k) {
			c.names = append(c.names, k)
		}
	}
	sort.Strings(c.names)
	for k, v := range vars {
		c.vars[k] = v
	}
	return c
}

// Variables returns the sorted variable names.
func (c *Commands) Variables() []string {
	out := make([]string, 0, len(c.vars))
	for k := range c.vars {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Complete completes the last word of text. tabs is the number of
// consecutive completion requests, starting at 1.
func (c *Commands) Complete(text string, tabs int) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tabs > 1 && len(c.cycle) > 0 {
		return c.head + c.cycle[(tabs-2)%len(c.cycle)], true
	}

	head, word, candidates := c.candidates(text)
	if len(candidates) == 0 {
		c.cycle = nil
		return "", false
	}
	c.head = head
	c.cycle = candidates
	if len(candidates) == 1 {
		return head + candidates[0], true
	}
	completed := commonPrefix(candidates)
	if len(completed) < len(word) {
		completed = word
	}
	return head + completed, true
}

// candidates splits text into the part that stays and the word being
// completed, and lists the words that could replace it.
func (c *Commands) candidates(text string) (head, word string, out []string) {
	trimmed := strings.TrimLeft(text, " ")
	lead := text[:len(text)-len(trimmed)]

	sp := strings.IndexByte(trimmed, ' ')
	if sp < 0 {
		for _, n := range c.names {
			if strings.HasPrefix(n, trimmed) {
				out = append(out, n)
			}
		}
		return lead, trimmed, out
	}

	cmd := trimmed[:sp]
	if !varCommands[cmd] {
		return "", "", nil
	}
	i := strings.LastIndexByte(text, ' ')
	head, word = text[:i+1], text[i+1:]
	if strings.ContainsRune(word, '=') {
		return "", "", nil
	}

	// "set noname" and "set invname" negate or invert a boolean.
	negation := ""
	if cmd == "set" {
		for _, p := range []string{"no", "inv"} {
			if strings.HasPrefix(word, p) && !c.hasVarPrefix(word) {
				negation = p
				break
			}
		}
	}
	for _, v := range c.Variables() {
		if strings.HasPrefix(v, word[len(negation):]) {
			out = append(out, negation+v)
		}
	}
	return head, word, out
}

func (c *Commands) hasVarPrefix(prefix string) bool {
	for v := range c.vars {
		if strings.HasPrefix(v, prefix) {
			return true
		}
	}
	return false
}

// CompleteValue expands "set name=" to "set name=<current value>".
func (c *Commands) CompleteValue(text string) (string, bool) {
	if !strings.HasSuffix(text, "=") {
		return "", false
	}
	fields := strings.Fields(strings.TrimSuffix(text, "="))
	if len(fields) < 2 || fields[0] != "set" {
		return "", false
	}
	val, ok := c.vars[fields[len(fields)-1]]
	if !ok {
		return "", false
	}
	return text + strconv.Quote(val), true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
