// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: picker/list.go
// Summary: Full-screen scrolling list used by every picker.

package picker

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

var (
	// ErrCancelled is returned by List.Run when the user leaves the list
	// without choosing.
	ErrCancelled = errors.New("picker: cancelled")
	// ErrEmpty is returned by List.Run when there is nothing to choose from.
	ErrEmpty = errors.New("picker: no entries")
)

// Item is one row of a list.
type Item struct {
	Label string
	// Value is what the picker hands back; Label is used when empty.
	Value string
	// Note is drawn right-aligned after the label.
	Note string
	Dir  bool

	tagged bool
}

func (it Item) value() string {
	if it.Value != "" {
		return it.Value
	}
	return it.Label
}

// Styles used to paint a list.
type Styles struct {
	Normal   tcell.Style
	Selected tcell.Style
	Title    tcell.Style
	Note     tcell.Style
	Tag      tcell.Style
}

// DefaultStyles returns the colours used when a list has none configured.
func DefaultStyles() Styles {
	base := tcell.StyleDefault
	return Styles{
		Normal:   base,
		Selected: base.Reverse(true),
		Title:    base.Bold(true).Reverse(true),
		Note:     base.Foreground(tcell.ColorGray),
		Tag:      base.Foreground(tcell.ColorYellow).Bold(true),
	}
}

// List draws items over the whole screen: a title line, the rows and a
// help line. Keys: Up/Down (also k/j, C-p/C-n), PgUp/PgDn, Home/End,
// Enter to choose, Space to tag when tagging is allowed, Esc/q/C-g to
// cancel.
type List struct {
	Screen tcell.Screen
	Title  string
	Styles Styles

	items    []Item
	selected int
	scroll   int
	multiple bool
}

// NewList creates a list drawing on screen.
func NewList(screen tcell.Screen, title string) *List {
	return &List{Screen: screen, Title: title, Styles: DefaultStyles()}
}

// Run shows items and blocks until the user chooses or cancels. With
// multiple set, Space tags non-directory rows and Enter returns every
// tagged row; without tags Enter returns the selected row.
func (l *List) Run(items []Item, multiple bool) ([]Item, error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	l.items = items
	l.selected = 0
	l.scroll = 0
	l.multiple = multiple

	l.Screen.HideCursor()
	for {
		l.draw()
		ev := l.Screen.PollEvent()
		if ev == nil {
			return nil, ErrCancelled
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			l.Screen.Sync()
		case *tcell.EventKey:
			if chosen, done, err := l.handleKey(ev); done {
				return chosen, err
			}
		}
	}
}

// handleKey applies one key; done reports that Run should return.
func (l *List) handleKey(ev *tcell.EventKey) (chosen []Item, done bool, err error) {
	page := l.pageSize()
	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyCtrlP:
		l.move(-1)
	case tcell.KeyDown, tcell.KeyCtrlN:
		l.move(1)
	case tcell.KeyPgUp:
		l.move(-page)
	case tcell.KeyPgDn:
		l.move(page)
	case tcell.KeyHome:
		l.move(-len(l.items))
	case tcell.KeyEnd:
		l.move(len(l.items))
	case tcell.KeyEnter:
		return l.chosen(), true, nil
	case tcell.KeyEsc, tcell.KeyCtrlG:
		return nil, true, ErrCancelled
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			l.move(-1)
		case 'j':
			l.move(1)
		case 'q':
			return nil, true, ErrCancelled
		case ' ':
			if l.multiple && !l.items[l.selected].Dir {
				l.items[l.selected].tagged = !l.items[l.selected].tagged
				l.move(1)
			}
		}
	}
	return nil, false, nil
}

func (l *List) chosen() []Item {
	var tagged []Item
	for _, it := range l.items {
		if it.tagged {
			tagged = append(tagged, it)
		}
	}
	if len(tagged) > 0 {
		return tagged
	}
	return []Item{l.items[l.selected]}
}

func (l *List) move(delta int) {
	l.selected += delta
	if l.selected < 0 {
		l.selected = 0
	}
	if l.selected >= len(l.items) {
		l.selected = len(l.items) - 1
	}
	l.ensureSelectedVisible()
}

func (l *List) ensureSelectedVisible() {
	page := l.pageSize()
	if l.selected < l.scroll {
		l.scroll = l.selected
	} else if l.selected >= l.scroll+page {
		l.scroll = l.selected - page + 1
	}
}

// pageSize is the number of rows between the title and help lines.
func (l *List) pageSize() int {
	_, h := l.Screen.Size()
	if h-2 < 1 {
		return 1
	}
	return h - 2
}

func (l *List) draw() {
	w, h := l.Screen.Size()
	st := l.Styles
	l.Screen.Clear()

	fill(l.Screen, 0, 0, w, st.Title)
	drawText(l.Screen, 0, 0, w, l.Title, st.Title)

	page := l.pageSize()
	for row := 0; row < page; row++ {
		idx := l.scroll + row
		if idx >= len(l.items) {
			break
		}
		it := l.items[idx]
		y := row + 1

		style := st.Normal
		if idx == l.selected {
			style = st.Selected
			fill(l.Screen, 0, y, w, style)
		}
		mark := "  "
		if it.tagged {
			mark = "* "
			drawText(l.Screen, 0, y, 2, mark, st.Tag)
		}
		label := it.Label
		if it.Dir {
			label += "/"
		}
		noteW := 0
		if it.Note != "" {
			noteW = textWidth(it.Note) + 1
		}
		drawText(l.Screen, len(mark), y, w-len(mark)-noteW, label, style)
		if noteW > 0 && w-noteW > len(mark) {
			noteStyle := st.Note
			if idx == l.selected {
				noteStyle = style
			}
			drawText(l.Screen, w-noteW+1, y, noteW-1, it.Note, noteStyle)
		}
	}

	if l.scroll > 0 {
		l.Screen.SetContent(w-1, 1, '▲', nil, st.Note)
	}
	if l.scroll+page < len(l.items) {
		l.Screen.SetContent(w-1, page, '▼', nil, st.Note)
	}

	help := "Enter:Select  q:Exit"
	if l.multiple {
		help = "Enter:Select  Space:Tag  q:Exit"
	}
	if h > 1 {
		fill(l.Screen, 0, h-1, w, st.Title)
		drawText(l.Screen, 0, h-1, w, help, st.Title)
	}
	l.Screen.Show()
}
