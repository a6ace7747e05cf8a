// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/texelprompt/completion"
	"github.com/framegrace/texelprompt/config"
	"github.com/framegrace/texelprompt/headers"
	"github.com/framegrace/texelprompt/history"
	"github.com/framegrace/texelprompt/lineedit"
)

// useSimulationScreen makes newApp use a simulation screen with keys
// already queued.
func useSimulationScreen(t *testing.T, inject func(s tcell.SimulationScreen)) {
	t.Helper()
	prevScreen, prevNoHistory := newScreen, noHistory
	t.Cleanup(func() { newScreen, noHistory = prevScreen, prevNoHistory })
	noHistory = true

	newScreen = func() (tcell.Screen, error) {
		screen := tcell.NewSimulationScreen("UTF-8")
		if err := screen.Init(); err != nil {
			return nil, err
		}
		screen.SetSize(40, 6)
		inject(screen)
		return screen, nil
	}
}

func typeText(s tcell.SimulationScreen, text string) {
	for _, r := range text {
		s.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
}

func TestAskOptions_Flags(t *testing.T) {
	fl, err := askOptions{context: "efile", clear: true}.flags()
	require.NoError(t, err)
	assert.True(t, fl.Has(lineedit.FlagEffectiveFile|lineedit.FlagClear))
	assert.Equal(t, lineedit.ContextEffectiveFile, lineedit.ContextFor(fl))

	fl, err = askOptions{context: "Alias", password: true, multiple: true}.flags()
	require.NoError(t, err)
	assert.Equal(t, lineedit.FlagAlias|lineedit.FlagPassword|lineedit.FlagMultiple, fl)

	fl, err = askOptions{context: "none"}.flags()
	require.NoError(t, err)
	assert.Zero(t, fl)

	_, err = askOptions{context: "bogus"}.flags()
	assert.Error(t, err)
}

func TestWriteResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, lineedit.Result{Status: lineedit.StatusDone, Text: "hello"}))
	assert.Equal(t, "hello\n", buf.String())

	buf.Reset()
	require.NoError(t, writeResult(&buf, lineedit.Result{Status: lineedit.StatusDone, Files: []string{"/a", "/b"}}))
	assert.Equal(t, "/a\n/b\n", buf.String())

	buf.Reset()
	assert.ErrorIs(t, writeResult(&buf, lineedit.Result{Status: lineedit.StatusAborted}), errAborted)
	assert.Empty(t, buf.String())
}

func TestExpandAliases(t *testing.T) {
	aliases := completion.NewAliases(map[string]string{"bob": "Bob <bob@example.com>"})
	assert.Equal(t, "Bob <bob@example.com>, carol@example.com",
		expandAliases("bob,  carol@example.com, ", aliases))
	assert.Equal(t, "", expandAliases("", aliases))
}

func TestInitialHeaders(t *testing.T) {
	draft := filepath.Join(t.TempDir(), "draft")
	require.NoError(t, os.WriteFile(draft, []byte("To: a@example.com\nSubject: old\n\nbody\n"), 0o600))

	list, err := initialHeaders(draft, []string{"subject: new", "X-Mailer: texelprompt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"To: a@example.com", "subject: new", "X-Mailer: texelprompt"}, list.Lines())

	_, err = initialHeaders("", []string{"no colon"})
	assert.Error(t, err)
}

func TestListHistory(t *testing.T) {
	h := history.New(10)
	h.Push(history.ClassFile, "/etc/passwd")
	h.Push(history.ClassFile, "/etc/hosts")
	h.Push(history.ClassPattern, "~f bob")

	var buf bytes.Buffer
	require.NoError(t, listHistory(&buf, h, history.Classes(), true))
	assert.Equal(t, "[file]\n/etc/passwd\n/etc/hosts\n[pattern]\n~f bob\n", buf.String())

	buf.Reset()
	classes, err := parseClasses([]string{"pattern"})
	require.NoError(t, err)
	require.NoError(t, listHistory(&buf, h, classes, false))
	assert.Equal(t, "~f bob\n", buf.String())

	_, err = parseClasses([]string{"nope"})
	assert.Error(t, err)
}

func TestApp_PromptOnSimulationScreen(t *testing.T) {
	useSimulationScreen(t, func(s tcell.SimulationScreen) {
		typeText(s, "hi")
		s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	})

	var res lineedit.Result
	err := withApp(config.Config{}, "test", func(a *app) error {
		var err error
		res, err = a.prompt("> ", "", 0)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, lineedit.StatusDone, res.Status)
	assert.Equal(t, "hi", res.Text)
}

func TestApp_AbortIsReported(t *testing.T) {
	useSimulationScreen(t, func(s tcell.SimulationScreen) {
		s.InjectKey(tcell.KeyCtrlG, 0, tcell.ModCtrl)
	})

	var res lineedit.Result
	err := withApp(config.Config{}, "test", func(a *app) error {
		var err error
		res, err = a.prompt("> ", "draft", 0)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, lineedit.StatusAborted, res.Status)
}

func TestCompose_AliasHeaderExpands(t *testing.T) {
	useSimulationScreen(t, func(s tcell.SimulationScreen) {
		typeText(s, "bob")
		s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	})
	cfg := config.Config{
		"aliases": map[string]interface{}{"bob": "Bob <bob@example.com>"},
	}

	list := &headers.List{}
	err := withApp(cfg, "test", func(a *app) error {
		return promptHeader(a, list, "To", true)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"To: Bob <bob@example.com>"}, list.Lines())
}

func TestCompose_EmptyValueRemovesHeader(t *testing.T) {
	useSimulationScreen(t, func(s tcell.SimulationScreen) {
		s.InjectKey(tcell.KeyCtrlU, 0, tcell.ModCtrl)
		s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	})

	list := &headers.List{}
	list.Set("Cc: someone@example.com")
	err := withApp(config.Config{}, "test", func(a *app) error {
		return promptHeader(a, list, "Cc", true)
	})
	require.NoError(t, err)
	assert.Zero(t, list.Len())
}

func TestCompose_ExtraHeaders(t *testing.T) {
	useSimulationScreen(t, func(s tcell.SimulationScreen) {
		typeText(s, "X:y")
		s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
		s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	})

	list := &headers.List{}
	err := withApp(config.Config{}, "test", func(a *app) error {
		return promptExtraHeaders(a, list)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"X:y"}, list.Lines())
}
