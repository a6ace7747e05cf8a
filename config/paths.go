// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for texelprompt configuration and data files.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelprompt"), nil
}

func systemConfigPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, systemConfigName), nil
}

func legacyAliasPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, legacyAliasName), nil
}

func profileConfigPath(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("profile name is required")
	}
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "profiles", name, "config.json"), nil
}

// HistoryPath returns the history database location: the editor section's
// "history_db" when set (with ~ expanded), otherwise history.db next to
// the system config.
func HistoryPath(cfg Config) (string, error) {
	if p := cfg.GetString("editor", "history_db", ""); p != "" {
		if p == "~" || strings.HasPrefix(p, "~/") {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
		return p, nil
	}
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "history.db"), nil
}
