// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: picker/files.go
// Summary: Directory browser picker for file prompts.

package picker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/go-enry/go-enry/v2"

	"github.com/framegrace/texelprompt/completion"
	"github.com/framegrace/texelprompt/lineedit"
)

// FilePicker browses directories starting at the directory part of the
// prefix. Choosing a directory descends into it; choosing a file (or
// several tagged files) ends the browse.
type FilePicker struct {
	List       *List
	ShowHidden bool
}

// NewFilePicker creates a file browser drawing on screen.
func NewFilePicker(screen tcell.Screen) *FilePicker {
	return &FilePicker{List: NewList(screen, "")}
}

// Pick implements lineedit.Picker.
func (p *FilePicker) Pick(req lineedit.PickRequest) (lineedit.PickResult, error) {
	dir, mask := splitPrefix(req.Prefix)
	for {
		items, err := p.listDir(dir, mask)
		if err != nil {
			return lineedit.PickResult{}, err
		}
		p.List.Title = "Directory: " + dir

		chosen, err := p.List.Run(items, req.Multiple)
		if errors.Is(err, ErrCancelled) || errors.Is(err, ErrEmpty) {
			return lineedit.PickResult{}, nil
		}
		if err != nil {
			return lineedit.PickResult{}, err
		}
		if len(chosen) == 1 && chosen[0].Dir {
			dir = chosen[0].Value
			mask = ""
			continue
		}

		files := make([]string, len(chosen))
		for i, it := range chosen {
			files[i] = it.Value
		}
		res := lineedit.PickResult{Text: files[0]}
		if req.Multiple {
			res.Files = files
		}
		return res, nil
	}
}

// splitPrefix returns the directory to browse and the name prefix used to
// filter its first listing.
func splitPrefix(prefix string) (dir, mask string) {
	prefix = completion.ExpandHome(prefix)
	if prefix == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd, ""
		}
		return ".", ""
	}
	if info, err := os.Stat(prefix); err == nil && info.IsDir() {
		return filepath.Clean(prefix), ""
	}
	dir, mask = filepath.Split(prefix)
	if dir == "" {
		dir = "."
	}
	return filepath.Clean(dir), mask
}

// listDir lists dir, directories first. When mask matches nothing the
// whole directory is shown.
func (p *FilePicker) listDir(dir, mask string) ([]Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	build := func(mask string) []Item {
		var items []Item
		for _, e := range entries {
			name := e.Name()
			if !strings.HasPrefix(name, mask) {
				continue
			}
			if !p.ShowHidden && strings.HasPrefix(name, ".") && !strings.HasPrefix(mask, ".") {
				continue
			}
			path := filepath.Join(dir, name)
			isDir := e.IsDir()
			if !isDir && e.Type()&os.ModeSymlink != 0 {
				if info, err := os.Stat(path); err == nil {
					isDir = info.IsDir()
				}
			}
			items = append(items, Item{Label: name, Value: path, Dir: isDir, Note: fileNote(path, isDir)})
		}
		return items
	}

	items := build(mask)
	if len(items) == 0 && mask != "" {
		items = build("")
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Dir != items[j].Dir {
			return items[i].Dir
		}
		return items[i].Label < items[j].Label
	})

	if parent := filepath.Dir(dir); parent != dir {
		items = append([]Item{{Label: "..", Value: parent, Dir: true}}, items...)
	}
	return items, nil
}

// fileNote describes a file by its detected language and whether it looks
// like vendored or documentation content.
func fileNote(path string, isDir bool) string {
	var notes []string
	if !isDir {
		if lang, _ := enry.GetLanguageByExtension(path); lang != "" {
			notes = append(notes, lang)
		}
	}
	switch {
	case enry.IsVendor(path):
		notes = append(notes, "vendor")
	case enry.IsDocumentation(path):
		notes = append(notes, "docs")
	}
	return strings.Join(notes, ", ")
}
