// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: headers/headers.go
// Summary: Ordered list of raw "Field: value" header lines.
// Usage: The compose command collects user-defined headers here and edits
// them one prompt at a time.

package headers

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// List keeps header lines in insertion order. Fields are matched case
// insensitively up to and including the colon.
type List struct {
	lines []string
}

// Len returns the number of header lines.
func (l *List) Len() int { return len(l.lines) }

// Lines returns a copy of the header lines.
func (l *List) Lines() []string { return append([]string(nil), l.lines...) }

// At returns line i.
func (l *List) At(i int) string { return l.lines[i] }

// Find returns the index of the first line whose field matches the field of
// header. header is either "X-Field:" or "X-Field: value"; a header without
// a colon never matches.
func (l *List) Find(header string) (int, bool) {
	colon := strings.IndexByte(header, ':')
	if colon < 0 {
		return -1, false
	}
	key := header[:colon+1]
	for i, line := range l.lines {
		if len(line) >= len(key) && strings.EqualFold(line[:len(key)], key) {
			return i, true
		}
	}
	return -1, false
}

// Add appends line and returns its index.
func (l *List) Add(line string) int {
	l.lines = append(l.lines, line)
	return len(l.lines) - 1
}

// Update replaces line i.
func (l *List) Update(i int, line string) {
	l.lines[i] = line
}

// Set updates the line with the same field as line, or adds it when there
// is none. It returns the index of the line.
func (l *List) Set(line string) int {
	if i, ok := l.Find(line); ok {
		l.Update(i, line)
		return i
	}
	return l.Add(line)
}

// Remove deletes the line with the same field as header.
func (l *List) Remove(header string) bool {
	i, ok := l.Find(header)
	if !ok {
		return false
	}
	l.lines = append(l.lines[:i], l.lines[i+1:]...)
	return true
}

// Value returns the trimmed value of field, which is given without colon.
func (l *List) Value(field string) (string, bool) {
	i, ok := l.Find(field + ":")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(l.lines[i][len(field)+1:]), true
}

// Field returns the field name of a header line, or "" when it has no colon.
func Field(line string) string {
	colon := strings.IndexByte(line, ':')
	if colon <= 0 {
		return ""
	}
	return line[:colon]
}

// Parse reads header lines up to the first empty line. Lines starting with
// white space continue the previous header.
func Parse(r io.Reader) (*List, error) {
	l := &List{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			break
		}
		if line[0] == ' ' || line[0] == '\t' {
			if l.Len() == 0 {
				return nil, fmt.Errorf("continuation line before first header: %q", line)
			}
			l.lines[l.Len()-1] += " " + strings.TrimSpace(line)
			continue
		}
		if Field(line) == "" {
			return nil, fmt.Errorf("malformed header line %q", line)
		}
		l.Add(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read headers: %w", err)
	}
	return l, nil
}

// WriteTo writes one header per line.
func (l *List) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range l.lines {
		n, err := fmt.Fprintln(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
