// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: history/class.go
// Summary: History classes selecting independent recall rings.

package history

import "fmt"

// Class selects which recall ring a prompt uses.
type Class int

const (
	ClassFile Class = iota
	ClassCommand
	ClassAlias
	ClassGenericCommand
	ClassPattern
	ClassOther

	numClasses
)

var classNames = [numClasses]string{
	ClassFile:           "file",
	ClassCommand:        "command",
	ClassAlias:          "alias",
	ClassGenericCommand: "generic-command",
	ClassPattern:        "pattern",
	ClassOther:          "other",
}

func (c Class) String() string {
	if c >= 0 && c < numClasses {
		return classNames[c]
	}
	return fmt.Sprintf("class(%d)", int(c))
}

// Valid reports whether c is one of the defined classes.
func (c Class) Valid() bool { return c >= 0 && c < numClasses }

// Classes returns every class in declaration order.
func Classes() []Class {
	out := make([]Class, 0, numClasses)
	for c := Class(0); c < numClasses; c++ {
		out = append(out, c)
	}
	return out
}

// ParseClass maps a class name to its Class.
func ParseClass(name string) (Class, error) {
	for c, n := range classNames {
		if n == name {
			return Class(c), nil
		}
	}
	return ClassOther, fmt.Errorf("unknown history class %q", name)
}
