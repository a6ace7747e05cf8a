// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelprompt/compose.go
// Summary: compose command: prompts for message headers and prints them.

package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/framegrace/texelprompt/completion"
	"github.com/framegrace/texelprompt/config"
	"github.com/framegrace/texelprompt/headers"
	"github.com/framegrace/texelprompt/lineedit"
	"github.com/framegrace/texelprompt/tui"
)

var (
	composeExtra []string
	composeDraft string
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Prompt for message headers and print them",
	Long: `Prompt for the headers listed in the compose profile (To, Cc, Bcc and
Subject by default), then for extra "Field: value" headers until an empty
line is entered. Address headers complete aliases and expand them on
accept. The resulting header block is printed on standard output.`,
	Args: cobra.NoArgs,
	RunE: runCompose,
}

func init() {
	composeCmd.Flags().StringArrayVarP(&composeExtra, "header", "H", nil, `preset header, "Field: value" (repeatable)`)
	composeCmd.Flags().StringVar(&composeDraft, "draft", "", "read initial headers from this file")
	rootCmd.AddCommand(composeCmd)
}

func runCompose(cmd *cobra.Command, args []string) error {
	list, err := initialHeaders(composeDraft, composeExtra)
	if err != nil {
		return err
	}
	profile := config.Profile("compose")
	fields := profile.GetStringSlice("compose", "headers", []string{"To", "Cc", "Bcc", "Subject"})
	aliasFields := profile.GetStringSlice("compose", "alias_headers", []string{"To", "Cc", "Bcc"})

	err = withApp(systemConfig(), "compose", func(a *app) error {
		a.paint = func(t *tui.Terminal) {
			for i, line := range list.Lines() {
				t.Print(i, 0, line, headerStyle)
			}
		}
		for _, field := range fields {
			if err := promptHeader(a, list, field, slices.Contains(aliasFields, field)); err != nil {
				return err
			}
		}
		return promptExtraHeaders(a, list)
	})
	if err != nil {
		return err
	}
	_, err = list.WriteTo(cmd.OutOrStdout())
	return err
}

// initialHeaders loads the draft, if any, and applies the presets on top.
func initialHeaders(draft string, presets []string) (*headers.List, error) {
	list := &headers.List{}
	if draft != "" {
		f, err := os.Open(draft)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if list, err = headers.Parse(f); err != nil {
			return nil, fmt.Errorf("draft %s: %w", draft, err)
		}
	}
	for _, p := range presets {
		if headers.Field(p) == "" {
			return nil, fmt.Errorf("malformed header %q", p)
		}
		list.Set(p)
	}
	return list, nil
}

// promptHeader edits one header. An empty value removes it.
func promptHeader(a *app, list *headers.List, field string, addresses bool) error {
	initial, _ := list.Value(field)
	var flags lineedit.Flags
	if addresses {
		flags = lineedit.FlagAlias
	}
	res, err := a.prompt(field+": ", initial, flags)
	if err != nil {
		return err
	}
	if res.Status != lineedit.StatusDone {
		return errAborted
	}
	value := strings.TrimSpace(res.Text)
	if addresses {
		value = expandAliases(value, a.aliases)
	}
	if value == "" {
		list.Remove(field + ":")
		return nil
	}
	list.Set(field + ": " + value)
	return nil
}

// promptExtraHeaders asks for "Field: value" lines until an empty one.
// A line without a field is offered again for correction.
func promptExtraHeaders(a *app, list *headers.List) error {
	text := ""
	for {
		res, err := a.prompt("Header: ", text, 0)
		if err != nil {
			return err
		}
		if res.Status != lineedit.StatusDone {
			return errAborted
		}
		line := strings.TrimSpace(res.Text)
		if line == "" {
			return nil
		}
		if headers.Field(line) == "" {
			a.term.Beep()
			text = line
			continue
		}
		list.Set(line)
		text = ""
	}
}

// expandAliases replaces every alias name in a comma separated address
// list by its address.
func expandAliases(value string, aliases *completion.Aliases) string {
	if value == "" {
		return ""
	}
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if addr, ok := aliases.Lookup(p); ok {
			p = addr
		}
		out = append(out, p)
	}
	return strings.Join(out, ", ")
}
