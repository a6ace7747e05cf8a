// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for system and profile configuration files.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("editor", Section{
		"history_size":     100,
		"history_db":       "",
		"highlight_style":  "catppuccin-mocha",
		"east_asian_width": false,
		"max_bytes":        1024,
	})
	cfg.RegisterDefaults("aliases", Section{})
	cfg.RegisterDefaults("mailboxes", Section{
		"list": []interface{}{},
	})
	cfg.RegisterDefaults("keys", Section{})
	cfg.RegisterDefaults("query", Section{
		"command":   "",
		"timeout_s": 10,
	})
	cfg.RegisterDefaults("commands", Section{
		"names": defaultCommandNames(),
	})
	cfg.RegisterDefaults("variables", Section{})
}

func applyProfileDefaults(name string, cfg Config) {
	if cfg == nil {
		return
	}
	switch name {
	case "compose":
		cfg.RegisterDefaults("compose", Section{
			"headers":       []interface{}{"To", "Cc", "Bcc", "Subject"},
			"alias_headers": []interface{}{"To", "Cc", "Bcc"},
		})
	case "ask":
		cfg.RegisterDefaults("ask", Section{
			"prompt":  "> ",
			"context": "none",
		})
	}
}

func defaultCommandNames() []interface{} {
	return []interface{}{
		"alias", "bind", "macro", "mailboxes", "my_hdr", "push",
		"reset", "set", "source", "toggle", "unalias", "unset",
	}
}
