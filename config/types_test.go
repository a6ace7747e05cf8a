// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"reflect"
	"testing"
)

func TestGetters(t *testing.T) {
	cfg := Config{
		"editor": map[string]interface{}{
			"history_size": float64(50),
			"east_asian":   "true",
			"timeout":      "2.5",
		},
		"mailboxes": map[string]interface{}{
			"list":   []interface{}{"~/Mail/inbox", 3, "~/Mail/lists"},
			"single": "=inbox",
		},
		"keys": map[string]interface{}{
			"C-w": "kill-word",
			"n":   1.5,
		},
	}

	if got := cfg.GetInt("editor", "history_size", 0); got != 50 {
		t.Errorf("GetInt = %d", got)
	}
	if !cfg.GetBool("editor", "east_asian", false) {
		t.Errorf("GetBool from string failed")
	}
	if got := cfg.GetFloat("editor", "timeout", 0); got != 2.5 {
		t.Errorf("GetFloat = %v", got)
	}
	if got := cfg.GetString("missing", "x", "dflt"); got != "dflt" {
		t.Errorf("GetString default = %q", got)
	}

	list := cfg.GetStringSlice("mailboxes", "list", nil)
	if !reflect.DeepEqual(list, []string{"~/Mail/inbox", "~/Mail/lists"}) {
		t.Errorf("GetStringSlice = %v", list)
	}
	if got := cfg.GetStringSlice("mailboxes", "single", nil); !reflect.DeepEqual(got, []string{"=inbox"}) {
		t.Errorf("GetStringSlice single = %v", got)
	}

	keys := cfg.GetStringMap("keys")
	if keys["C-w"] != "kill-word" || keys["n"] != "1.5" {
		t.Errorf("GetStringMap = %v", keys)
	}
	if got := cfg.GetStringMap("nope"); len(got) != 0 {
		t.Errorf("expected empty map, got %v", got)
	}
	if got := cfg.Section("keys").Keys(); !reflect.DeepEqual(got, []string{"C-w", "n"}) {
		t.Errorf("Keys = %v", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Config{
		"mailboxes": map[string]interface{}{
			"list": []interface{}{"a"},
		},
	}
	c := Clone(orig)
	c.Section("mailboxes")["list"].([]interface{})[0] = "b"
	if got := orig.GetStringSlice("mailboxes", "list", nil); got[0] != "a" {
		t.Errorf("clone shares list with original")
	}
}

func TestParseAliasLine(t *testing.T) {
	tests := []struct {
		line, name, addr string
		ok               bool
	}{
		{"alias bob bob@example.com", "bob", "bob@example.com", true},
		{"  alias  x  A <a@b>  ", "x", "A <a@b>", true},
		{"# alias c d", "", "", false},
		{"alias lonely", "", "", false},
		{"unalias bob", "", "", false},
	}
	for _, tt := range tests {
		name, addr, ok := parseAliasLine(tt.line)
		if name != tt.name || addr != tt.addr || ok != tt.ok {
			t.Errorf("parseAliasLine(%q) = %q, %q, %v", tt.line, name, addr, ok)
		}
	}
}
