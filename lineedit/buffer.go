// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: lineedit/buffer.go
// Summary: Growable scalar buffer and UTF-8 conversions for the line editor.

package lineedit

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// growSlack is the number of spare scalars added whenever the buffer grows.
const growSlack = 20

// ErrBufferExhausted is returned when the buffer cannot grow any further.
var ErrBufferExhausted = errors.New("lineedit: buffer exhausted")

// Buffer is a growable sequence of scalars. It has no notion of display
// width; the session measures columns through a WidthOracle.
type Buffer struct {
	data []rune

	// MaxScalars caps the capacity when > 0.
	MaxScalars int
}

// NewBuffer returns a buffer holding the given scalars.
func NewBuffer(runes []rune) *Buffer {
	b := &Buffer{}
	b.data = append(make([]rune, 0, len(runes)+growSlack), runes...)
	return b
}

// Len returns the number of valid scalars.
func (b *Buffer) Len() int { return len(b.data) }

// Cap returns the current backing capacity in scalars.
func (b *Buffer) Cap() int { return cap(b.data) }

// Runes exposes the valid scalars. The slice aliases the buffer and is only
// valid until the next mutation.
func (b *Buffer) Runes() []rune { return b.data }

// String encodes the whole buffer without a capacity limit.
func (b *Buffer) String() string { return Encode(b.data, 0) }

// EnsureCapacity grows the backing storage to hold at least n scalars,
// preserving the existing content.
func (b *Buffer) EnsureCapacity(n int) error {
	if b.MaxScalars > 0 && n > b.MaxScalars {
		return fmt.Errorf("grow to %d scalars (limit %d): %w", n, b.MaxScalars, ErrBufferExhausted)
	}
	if n <= cap(b.data) {
		return nil
	}
	newCap := n + growSlack
	if b.MaxScalars > 0 && newCap > b.MaxScalars {
		newCap = b.MaxScalars
	}
	grown := make([]rune, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
	return nil
}

// Insert places r before index i, shifting the tail right.
func (b *Buffer) Insert(i int, r rune) error {
	if err := b.EnsureCapacity(len(b.data) + 1); err != nil {
		return err
	}
	b.data = b.data[:len(b.data)+1]
	copy(b.data[i+1:], b.data[i:])
	b.data[i] = r
	return nil
}

// Remove deletes the scalars in [from, to), shifting the tail left.
func (b *Buffer) Remove(from, to int) {
	if from >= to {
		return
	}
	b.data = append(b.data[:from], b.data[to:]...)
}

// Truncate drops everything from index n on.
func (b *Buffer) Truncate(n int) {
	if n < len(b.data) {
		b.data = b.data[:n]
	}
}

// Replace substitutes [from, to) with text and keeps the suffix that followed
// to. It returns the index just after the inserted text.
func (b *Buffer) Replace(from, to int, text []rune) (int, error) {
	suffix := append([]rune(nil), b.data[to:]...)
	if err := b.EnsureCapacity(from + len(text) + len(suffix)); err != nil {
		return to, err
	}
	b.data = append(b.data[:from], text...)
	end := len(b.data)
	b.data = append(b.data, suffix...)
	return end, nil
}

// Set replaces the entire content.
func (b *Buffer) Set(runes []rune) error {
	_, err := b.Replace(0, len(b.data), runes)
	return err
}

// Decode converts text to scalars. Decoding stops at the first malformed
// sequence or NUL byte; whatever was decoded before it is kept.
func Decode(text string) []rune {
	out := make([]rune, 0, len(text))
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		if r == utf8.RuneError && size <= 1 {
			break
		}
		if r == 0 {
			break
		}
		out = append(out, r)
		text = text[size:]
	}
	return out
}

// Encode converts scalars back to UTF-8. When capacity > 0 the result is
// kept strictly below capacity bytes, leaving room for the terminator a
// fixed-size caller buffer needs; scalars are never split. Encoding stops at
// the first scalar that has no UTF-8 form.
func Encode(runes []rune, capacity int) string {
	var sb strings.Builder
	for _, r := range runes {
		if !utf8.ValidRune(r) {
			break
		}
		n := utf8.RuneLen(r)
		if capacity > 0 && sb.Len()+n > capacity-1 {
			break
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
