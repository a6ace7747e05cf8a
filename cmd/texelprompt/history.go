// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelprompt/history.go
// Summary: history commands: list and clear the persisted recall rings.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/framegrace/texelprompt/config"
	"github.com/framegrace/texelprompt/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect or clear prompt history",
}

var historyListCmd = &cobra.Command{
	Use:   "list [class...]",
	Short: "Print history entries, oldest first",
	Long: `Print the history entries of the given classes, oldest first. Without
arguments every class is printed under a "[class]" heading.

Classes: file, command, alias, generic-command, pattern, other.`,
	RunE: runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear <class>...",
	Short: "Delete history entries",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

// parseClasses maps names to classes; no names means every class.
func parseClasses(names []string) ([]history.Class, error) {
	if len(names) == 0 {
		return history.Classes(), nil
	}
	out := make([]history.Class, 0, len(names))
	for _, n := range names {
		c, err := history.ParseClass(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func openStoredHistory() (*history.History, error) {
	cfg := systemConfig()
	path, err := config.HistoryPath(cfg)
	if err != nil {
		return nil, err
	}
	return history.Open(path, cfg.GetInt("editor", "history_size", history.DefaultSize))
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	classes, err := parseClasses(args)
	if err != nil {
		return err
	}
	h, err := openStoredHistory()
	if err != nil {
		return err
	}
	defer h.Close()
	return listHistory(cmd.OutOrStdout(), h, classes, len(args) == 0)
}

// listHistory prints the entries of classes, with a heading per class when
// headings is set.
func listHistory(w io.Writer, h *history.History, classes []history.Class, headings bool) error {
	for _, c := range classes {
		entries := h.Entries(c)
		if headings {
			if len(entries) == 0 {
				continue
			}
			if _, err := fmt.Fprintf(w, "[%s]\n", c); err != nil {
				return err
			}
		}
		for _, e := range entries {
			if _, err := fmt.Fprintln(w, e); err != nil {
				return err
			}
		}
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	classes, err := parseClasses(args)
	if err != nil {
		return err
	}
	h, err := openStoredHistory()
	if err != nil {
		return err
	}
	defer h.Close()
	for _, c := range classes {
		if err := h.Clear(c); err != nil {
			return err
		}
	}
	return nil
}
