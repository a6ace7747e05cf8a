// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelprompt/app.go
// Summary: Builds the editor collaborators from configuration and runs the
// prompt host loop.

package main

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/texelprompt/completion"
	"github.com/framegrace/texelprompt/config"
	"github.com/framegrace/texelprompt/history"
	"github.com/framegrace/texelprompt/lineedit"
	"github.com/framegrace/texelprompt/picker"
	"github.com/framegrace/texelprompt/tui"
)

var errNoTerminal = errors.New("standard input is not a terminal")

// newScreen opens the terminal. Tests replace it with a simulation screen.
var newScreen = func() (tcell.Screen, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errNoTerminal
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

var (
	labelStyle  = tcell.StyleDefault.Bold(true)
	headerStyle = tcell.StyleDefault.Dim(true)
)

// app owns the screen and every collaborator a session needs.
type app struct {
	screen  tcell.Screen
	term    *tui.Terminal
	hist    *history.History
	aliases *completion.Aliases
	env     *lineedit.Env
	opts    lineedit.Options

	// paint draws whatever the current command shows above the prompt row.
	paint func(t *tui.Terminal)
}

// newApp wires the configured collaborators around a fresh screen.
func newApp(cfg config.Config) (*app, error) {
	screen, err := newScreen()
	if err != nil {
		return nil, err
	}

	oracle := lineedit.NewRunewidthOracle(cfg.GetBool("editor", "east_asian_width", false))
	t := tui.NewTerminal(screen, oracle)
	t.Highlight = tui.NewHighlighter(cfg.GetString("editor", "highlight_style", ""))

	keymap := tui.DefaultKeymap()
	if err := keymap.Apply(cfg.GetStringMap("keys")); err != nil {
		log.Printf("Config: Ignoring key bindings: %v", err)
	}

	a := &app{
		screen:  screen,
		term:    t,
		hist:    openHistory(cfg),
		aliases: completion.NewAliases(cfg.GetStringMap("aliases")),
		opts: lineedit.Options{
			MaxBytes: cfg.GetInt("editor", "max_bytes", 1024),
			Width:    oracle,
		},
	}
	commands := completion.NewCommands(
		cfg.GetStringSlice("commands", "names", nil),
		cfg.GetStringMap("variables"),
	)
	a.env = &lineedit.Env{
		Keys:        tui.NewKeys(screen, keymap),
		Term:        t,
		History:     a.hist,
		Completer:   completion.NewEngine(a.aliases, commands),
		FilePicker:  picker.NewFilePicker(screen),
		AliasPicker: picker.NewAliasPicker(screen, a.aliases),
		Mailboxes:   completion.NewMailboxes(cfg.GetStringSlice("mailboxes", "list", nil)),
	}
	if cmd := cfg.GetString("query", "command", ""); cmd != "" {
		a.env.QueryPicker = picker.NewQueryPicker(screen, &completion.Query{
			Command: cmd,
			Timeout: time.Duration(cfg.GetFloat("query", "timeout_s", 10) * float64(time.Second)),
		})
	}
	return a, nil
}

// openHistory opens the configured history database, falling back to
// memory-only rings when that fails or --no-history is set.
func openHistory(cfg config.Config) *history.History {
	size := cfg.GetInt("editor", "history_size", history.DefaultSize)
	if noHistory {
		return history.New(size)
	}
	path, err := config.HistoryPath(cfg)
	if err == nil {
		var h *history.History
		if h, err = history.Open(path, size); err == nil {
			return h
		}
	}
	log.Printf("History: Using in-memory history: %v", err)
	return history.New(size)
}

// close restores the terminal and flushes history.
func (a *app) close() {
	a.screen.Fini()
	if err := a.hist.Close(); err != nil {
		log.Printf("History: Close failed: %v", err)
	}
}

// drawPrompt repaints the screen and returns where editing starts: the
// bottom row, right after the label.
func (a *app) drawPrompt(label string) (row, col int) {
	a.screen.Clear()
	if a.paint != nil {
		a.paint(a.term)
	}
	_, h := a.screen.Size()
	row = h - 1
	col = a.term.Print(row, 0, label, labelStyle)
	return row, col
}

// prompt edits text after label until it is accepted or aborted, repainting
// whenever a picker handed the screen back.
func (a *app) prompt(label, text string, flags lineedit.Flags) (lineedit.Result, error) {
	opts := a.opts
	opts.Flags = flags
	s := lineedit.NewSession(text, opts)
	for {
		row, col := a.drawPrompt(label)
		res, err := s.Edit(a.env, row, col)
		if err != nil {
			return res, err
		}
		if res.Status != lineedit.StatusContinue {
			return res, nil
		}
	}
}

// withApp runs fn with a live app and restores the terminal afterwards, so
// callers can print results once it returns.
func withApp(cfg config.Config, context string, fn func(a *app) error) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()
	defer recoverScreen(a.screen, context)
	return fn(a)
}

// systemConfig returns the system config, logging a load failure. Loading
// never blocks a prompt: built-in defaults are used instead.
func systemConfig() config.Config {
	cfg := config.System()
	if err := config.Err(); err != nil {
		log.Printf("Config: Using defaults: %v", err)
	}
	return cfg
}
