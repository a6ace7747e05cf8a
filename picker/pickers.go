// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: picker/pickers.go
// Summary: Alias and address-query pickers built on List.

package picker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelprompt/completion"
	"github.com/framegrace/texelprompt/lineedit"
)

// Source lists the rows for a prefix.
type Source func(prefix string) ([]Item, error)

// SourcePicker shows the rows of a Source and returns the chosen values
// joined by ", ", as an address list expects.
type SourcePicker struct {
	List   *List
	Source Source
}

// Pick implements lineedit.Picker. A cancelled or empty list is an empty
// result, not an error.
func (p *SourcePicker) Pick(req lineedit.PickRequest) (lineedit.PickResult, error) {
	items, err := p.Source(req.Prefix)
	if err != nil {
		return lineedit.PickResult{}, err
	}
	chosen, err := p.List.Run(items, true)
	if errors.Is(err, ErrCancelled) || errors.Is(err, ErrEmpty) {
		return lineedit.PickResult{}, nil
	}
	if err != nil {
		return lineedit.PickResult{}, err
	}
	values := make([]string, len(chosen))
	for i, it := range chosen {
		values[i] = it.value()
	}
	return lineedit.PickResult{Text: strings.Join(values, ", ")}, nil
}

// NewAliasPicker lists the aliases starting with the prefix.
func NewAliasPicker(screen tcell.Screen, aliases *completion.Aliases) *SourcePicker {
	return &SourcePicker{
		List: NewList(screen, "Aliases"),
		Source: func(prefix string) ([]Item, error) {
			var items []Item
			for _, a := range aliases.Match(prefix) {
				items = append(items, Item{Label: a.Name, Note: a.Address})
			}
			return items, nil
		},
	}
}

// NewQueryPicker runs q for the prefix and lists the addresses found.
func NewQueryPicker(screen tcell.Screen, q *completion.Query) *SourcePicker {
	return &SourcePicker{
		List: NewList(screen, "Query"),
		Source: func(prefix string) ([]Item, error) {
			results, err := q.Run(context.Background(), prefix)
			if err != nil {
				return nil, fmt.Errorf("query %q: %w", prefix, err)
			}
			items := make([]Item, len(results))
			for i, r := range results {
				items[i] = Item{Label: r.Address, Note: strings.TrimSpace(r.Name + " " + r.Other), Value: r.String()}
			}
			return items, nil
		},
	}
}
