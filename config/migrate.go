// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/migrate.go
// Summary: Imports a mutt-style alias file on first run.

package config

import (
	"bufio"
	"os"
	"strings"
)

// importLegacyAliases reads "alias <name> <address>" lines from the legacy
// aliases file into the aliases section. Existing names are kept. It
// reports whether anything was imported.
func importLegacyAliases(cfg Config) (bool, error) {
	if cfg == nil {
		return false, nil
	}
	path, err := legacyAliasPath()
	if err != nil {
		return false, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	section := cfg.Section("aliases")
	if section == nil {
		section = make(Section)
		cfg["aliases"] = section
	}

	imported := false
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		name, addr, ok := parseAliasLine(sc.Text())
		if !ok {
			continue
		}
		if _, exists := section[name]; exists {
			continue
		}
		section[name] = addr
		imported = true
	}
	return imported, sc.Err()
}

// parseAliasLine parses "alias name address..." and ignores comments.
func parseAliasLine(line string) (name, addr string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	fields := strings.Fields(line)
	if len(fields) < 3 || fields[0] != "alias" {
		return "", "", false
	}
	rest := strings.TrimSpace(line[len("alias"):])
	rest = strings.TrimSpace(strings.TrimPrefix(rest, fields[1]))
	if i := strings.Index(rest, " #"); i >= 0 {
		rest = strings.TrimSpace(rest[:i])
	}
	return fields[1], rest, rest != ""
}
