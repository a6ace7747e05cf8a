// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded default configuration files.

package defaults

import (
	"embed"
	"fmt"
)

//go:embed texelprompt.json profiles/*.json
var fs embed.FS

// SystemConfig returns the embedded system config JSON.
func SystemConfig() ([]byte, error) {
	return fs.ReadFile("texelprompt.json")
}

// ProfileConfig returns the embedded config JSON for the named profile.
func ProfileConfig(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("profile name is required")
	}
	return fs.ReadFile(fmt.Sprintf("profiles/%s.json", name))
}
