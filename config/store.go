// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load, reload, and first-run logic for the config store.

package config

import "log"

func loadSystemLocked() error {
	path, err := systemConfigPath()
	if err != nil {
		log.Printf("Config: Failed to resolve system config path: %v", err)
		system = make(Config)
		applySystemDefaults(system)
		return err
	}

	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		log.Printf("Config: Failed to read system config %s: %v", path, readErr)
		cfg = make(Config)
	}

	if exists && len(cfg) == 0 {
		if def := defaultSystemConfig(); def != nil {
			cfg = def
			if err := writeConfig(path, cfg); err != nil {
				log.Printf("Config: Failed to write default system config: %v", err)
				if readErr == nil {
					readErr = err
				}
			}
		}
	}

	if !exists {
		cfg = defaultSystemConfig()
		if cfg == nil {
			cfg = make(Config)
		}
		if _, err := importLegacyAliases(cfg); err != nil {
			log.Printf("Config: Legacy alias import error: %v", err)
			if readErr == nil {
				readErr = err
			}
		}
		applySystemDefaults(cfg)
		if err := writeConfig(path, cfg); err != nil {
			log.Printf("Config: Failed to write initial system config: %v", err)
			if readErr == nil {
				readErr = err
			}
		}
	} else {
		applySystemDefaults(cfg)
	}

	system = cfg
	if readErr == nil && exists {
		log.Printf("Config: Loaded system config from %s", path)
	}
	return readErr
}

func loadProfileLocked(name string) (Config, error) {
	path, err := profileConfigPath(name)
	if err != nil {
		return nil, err
	}

	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		log.Printf("Config: Failed to read profile config %s: %v", path, readErr)
		cfg = make(Config)
	}

	if !exists || len(cfg) == 0 {
		if def := defaultProfileConfig(name); def != nil {
			cfg = def
			if err := writeConfig(path, cfg); err != nil {
				log.Printf("Config: Failed to write default profile config: %v", err)
				if readErr == nil {
					readErr = err
				}
			}
		} else if cfg == nil {
			cfg = make(Config)
		}
	}
	applyProfileDefaults(name, cfg)

	if readErr == nil && exists {
		log.Printf("Config: Loaded profile %q config from %s", name, path)
	}
	return cfg, readErr
}
