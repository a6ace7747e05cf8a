// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/embedded.go
// Summary: Loads and caches parsed defaults from embedded JSON files.
// The embedded JSON files in defaults/ are the single source of truth.

package config

import (
	"encoding/json"
	"sync"

	"github.com/framegrace/texelprompt/defaults"
)

var (
	embeddedSystemOnce sync.Once
	embeddedSystem     Config
	embeddedSystemErr  error

	embeddedProfiles   = make(map[string]Config)
	embeddedProfilesMu sync.RWMutex
)

// embeddedSystemDefaults returns the parsed system defaults from embedded JSON.
func embeddedSystemDefaults() (Config, error) {
	embeddedSystemOnce.Do(func() {
		data, err := defaults.SystemConfig()
		if err != nil {
			embeddedSystemErr = err
			return
		}
		var cfg Config
		if err := json.Unmarshal(data, &cfg); err != nil {
			embeddedSystemErr = err
			return
		}
		embeddedSystem = cfg
	})
	return embeddedSystem, embeddedSystemErr
}

// embeddedProfileDefaults returns the parsed profile defaults, or nil when
// the profile has no embedded file.
func embeddedProfileDefaults(name string) (Config, error) {
	embeddedProfilesMu.RLock()
	if cfg, ok := embeddedProfiles[name]; ok {
		embeddedProfilesMu.RUnlock()
		return cfg, nil
	}
	embeddedProfilesMu.RUnlock()

	data, err := defaults.ProfileConfig(name)
	if err != nil {
		return nil, nil
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	embeddedProfilesMu.Lock()
	embeddedProfiles[name] = cfg
	embeddedProfilesMu.Unlock()

	return cfg, nil
}

// defaultSystemConfig returns a copy of the embedded system defaults.
func defaultSystemConfig() Config {
	cfg, err := embeddedSystemDefaults()
	if err != nil || cfg == nil {
		return nil
	}
	return Clone(cfg)
}

// defaultProfileConfig returns a copy of the embedded profile defaults.
func defaultProfileConfig(name string) Config {
	cfg, err := embeddedProfileDefaults(name)
	if err != nil || cfg == nil {
		return nil
	}
	return Clone(cfg)
}
