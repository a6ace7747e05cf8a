// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: completion/files.go
// Summary: File name completion.

package completion

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CompleteFile extends text to the longest prefix shared by the directory
// entries it names. A single matching directory gets a trailing slash.
// Hidden entries are only offered when the typed name starts with a dot.
// It reports false when nothing matches.
func CompleteFile(text string) (string, bool) {
	dir, base := splitPath(text)

	lookup := dir
	if lookup == "" {
		lookup = "."
	}
	entries, err := os.ReadDir(ExpandHome(lookup))
	if err != nil {
		return "", false
	}

	var names []string
	isDir := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		names = append(names, name)
		isDir[name] = entryIsDir(filepath.Join(ExpandHome(lookup), name), e)
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)

	completed := commonPrefix(names)
	if len(names) == 1 && isDir[names[0]] {
		completed += "/"
	}
	return dir + completed, true
}

// splitPath splits text after its last slash. A bare "~" names the home
// directory.
func splitPath(text string) (dir, base string) {
	if text == "~" {
		return "~/", ""
	}
	i := strings.LastIndex(text, "/")
	if i < 0 {
		return "", text
	}
	return text[:i+1], text[i+1:]
}

func entryIsDir(path string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + strings.TrimPrefix(path, "~")
}
