// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: completion/alias.go
// Summary: Mail alias lookup and completion.

package completion

import (
	"sort"
	"strings"
)

// Alias maps a short name to one or more addresses.
type Alias struct {
	Name    string
	Address string
}

// Aliases is an immutable, name-sorted alias table.
type Aliases struct {
	list []Alias
}

// NewAliases builds a table from a name -> address map.
func NewAliases(m map[string]string) *Aliases {
	a := &Aliases{list: make([]Alias, 0, len(m))}
	for name, addr := range m {
		a.list = append(a.list, Alias{Name: name, Address: addr})
	}
	sort.Slice(a.list, func(i, j int) bool { return a.list[i].Name < a.list[j].Name })
	return a
}

// Match returns the aliases whose name starts with prefix.
func (a *Aliases) Match(prefix string) []Alias {
	var out []Alias
	for _, al := range a.list {
		if strings.HasPrefix(al.Name, prefix) {
			out = append(out, al)
		}
	}
	return out
}

// Lookup returns the address of an exact alias name.
func (a *Aliases) Lookup(name string) (string, bool) {
	for _, al := range a.list {
		if al.Name == name {
			return al.Address, true
		}
	}
	return "", false
}

// Complete extends prefix to the longest common prefix of the matching
// alias names.
func (a *Aliases) Complete(prefix string) (string, bool) {
	matches := a.Match(prefix)
	if len(matches) == 0 {
		return "", false
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Name
	}
	return commonPrefix(names), true
}
