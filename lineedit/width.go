// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: lineedit/width.go
// Summary: Display-width oracle used for cursor placement and scrolling.

package lineedit

import "github.com/mattn/go-runewidth"

// WidthOracle reports how many terminal columns a scalar occupies: 0 for
// combining and zero-width marks, 1 for narrow and 2 for wide scalars.
type WidthOracle interface {
	RuneWidth(r rune) int
}

// RunewidthOracle measures scalars with go-runewidth. Control scalars are
// two columns wide because terminals in package tui draw them in caret
// notation (^A).
type RunewidthOracle struct {
	cond *runewidth.Condition
}

// NewRunewidthOracle builds an oracle. eastAsian treats ambiguous-width
// scalars as wide, matching CJK terminal locales.
func NewRunewidthOracle(eastAsian bool) *RunewidthOracle {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	return &RunewidthOracle{cond: cond}
}

// DefaultWidth is the oracle used when a session is created without one.
var DefaultWidth WidthOracle = NewRunewidthOracle(false)

// RuneWidth implements WidthOracle.
func (o *RunewidthOracle) RuneWidth(r rune) int {
	if IsControl(r) {
		return 2
	}
	w := o.cond.RuneWidth(r)
	if w > 2 {
		w = 2
	}
	return w
}

// IsControl reports whether r is a C0 control or DEL.
func IsControl(r rune) bool {
	return (r >= 0 && r < ' ') || r == 0x7f
}

// runWidth sums the widths of a run of scalars.
func runWidth(o WidthOracle, run []rune) int {
	w := 0
	for _, r := range run {
		w += o.RuneWidth(r)
	}
	return w
}

// tailStart returns the smallest index i <= end such that s[i:end] fits in
// limit columns. Zero-width scalars just before the boundary are included.
func tailStart(o WidthOracle, s []rune, end, limit int) int {
	if limit < 0 {
		limit = 0
	}
	w := 0
	i := end
	for i > 0 {
		cw := o.RuneWidth(s[i-1])
		if w+cw > limit {
			break
		}
		w += cw
		i--
	}
	return i
}
