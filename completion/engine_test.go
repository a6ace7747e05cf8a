// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package completion

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/texelprompt/lineedit"
)

func makeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "mail", "inbox"), 0755))
	for _, f := range []string{"passwd", "passage", "profile", ".hidden"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), nil, 0644))
	}
	return dir
}

func TestCompleteFile(t *testing.T) {
	dir := makeTree(t)

	got, ok := CompleteFile(dir + "/pas")
	require.True(t, ok)
	assert.Equal(t, dir+"/pass", got)

	got, ok = CompleteFile(dir + "/ma")
	require.True(t, ok)
	assert.Equal(t, dir+"/mail/", got, "single directory gets a trailing slash")

	got, ok = CompleteFile(dir + "/.h")
	require.True(t, ok)
	assert.Equal(t, dir+"/.hidden", got)

	_, ok = CompleteFile(dir + "/zzz")
	assert.False(t, ok)

	_, ok = CompleteFile(dir + "/nope/x")
	assert.False(t, ok)
}

func TestCompleteFile_HiddenEntriesNeedDot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".only"), nil, 0644))
	_, ok := CompleteFile(dir + "/")
	assert.False(t, ok)
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, "/home/tester/Mail", ExpandHome("~/Mail"))
	assert.Equal(t, "/home/tester", ExpandHome("~"))
	assert.Equal(t, "~bob/x", ExpandHome("~bob/x"))
}

func TestAliases(t *testing.T) {
	a := NewAliases(map[string]string{
		"bob":    "bob@example.com",
		"bobby":  "bobby@example.com",
		"alice":  "alice@example.com",
		"robert": "robert@example.com",
	})

	got, ok := a.Complete("b")
	require.True(t, ok)
	assert.Equal(t, "bob", got)

	got, ok = a.Complete("al")
	require.True(t, ok)
	assert.Equal(t, "alice", got)

	_, ok = a.Complete("x")
	assert.False(t, ok)

	matches := a.Match("bo")
	require.Len(t, matches, 2)
	assert.Equal(t, "bob", matches[0].Name)

	addr, ok := a.Lookup("robert")
	require.True(t, ok)
	assert.Equal(t, "robert@example.com", addr)
}

func TestCommands_CompleteAndCycle(t *testing.T) {
	c := NewCommands([]string{"source", "macro", "mailboxes"}, map[string]string{
		"editor":       "vim",
		"edit_headers": "yes",
		"sort":         "threads",
	})

	got, ok := c.Complete("ma", 1)
	require.True(t, ok)
	assert.Equal(t, "ma", got, "ambiguous prefix stays as typed")

	got, ok = c.Complete(got, 2)
	require.True(t, ok)
	assert.Equal(t, "macro", got)

	got, ok = c.Complete(got, 3)
	require.True(t, ok)
	assert.Equal(t, "mailboxes", got)

	got, ok = c.Complete(got, 4)
	require.True(t, ok)
	assert.Equal(t, "macro", got, "cycle wraps")

	got, ok = c.Complete("set ed", 1)
	require.True(t, ok)
	assert.Equal(t, "set edit", got)

	got, ok = c.Complete("set noso", 1)
	require.True(t, ok)
	assert.Equal(t, "set nosort", got)

	got, ok = c.Complete("  so", 1)
	require.True(t, ok)
	assert.Equal(t, "  source", got)

	_, ok = c.Complete("source ~/x", 1)
	assert.False(t, ok)

	_, ok = c.Complete("zz", 1)
	assert.False(t, ok)
}

func TestCommands_CompleteValue(t *testing.T) {
	c := NewCommands(nil, map[string]string{"editor": "vim -c 'set tw=72'"})

	got, ok := c.CompleteValue("set editor=")
	require.True(t, ok)
	assert.Equal(t, `set editor="vim -c 'set tw=72'"`, got)

	_, ok = c.CompleteValue("set pager=")
	assert.False(t, ok)
	_, ok = c.CompleteValue("source editor=")
	assert.False(t, ok)
}

func TestEngine_RoutesByContext(t *testing.T) {
	dir := makeTree(t)
	e := NewEngine(NewAliases(map[string]string{"bob": "b@x"}), NewCommands(nil, map[string]string{"sort": "date"}))

	got, ok := e.Complete(lineedit.Request{Context: lineedit.ContextFile, Text: dir + "/pro", Tabs: 1})
	require.True(t, ok)
	assert.Equal(t, dir+"/profile", got)

	got, ok = e.Complete(lineedit.Request{Context: lineedit.ContextAlias, Text: "b", Tabs: 1})
	require.True(t, ok)
	assert.Equal(t, "bob", got)

	got, ok = e.Complete(lineedit.Request{Context: lineedit.ContextConfigCommand, Text: "set sort=", VarValue: true})
	require.True(t, ok)
	assert.Equal(t, `set sort="date"`, got)

	_, ok = e.Complete(lineedit.Request{Context: lineedit.ContextPattern, Text: "x"})
	assert.False(t, ok)

	_, ok = NewEngine(nil, nil).Complete(lineedit.Request{Context: lineedit.ContextAlias, Text: "b"})
	assert.False(t, ok)
}

func TestMailboxes_Next(t *testing.T) {
	m := NewMailboxes([]string{"=inbox", "=lists", "=work"})
	m.HasNewMail = func(string) bool { return false }

	assert.Equal(t, "=inbox", m.Next(""))
	assert.Equal(t, "=lists", m.Next("=inbox"))
	assert.Equal(t, "=inbox", m.Next("=work"))

	m.HasNewMail = func(p string) bool { return p == "=work" }
	assert.Equal(t, "=work", m.Next("=inbox"))

	empty := NewMailboxes(nil)
	assert.Equal(t, "cur", empty.Next("cur"))
}

func TestMaildirHasNew(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "new"), 0755))
	assert.False(t, maildirHasNew(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new", "1.msg"), []byte("x"), 0644))
	assert.True(t, maildirHasNew(dir))
}

func TestQuery_Run(t *testing.T) {
	q := &Query{Command: `echo %s >/dev/null; printf 'Searching\nbob@example.com\tBob\tfriend\nann@example.com\tAnn\n'`}
	results, err := q.Run(context.Background(), "b")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, QueryResult{Address: "bob@example.com", Name: "Bob", Other: "friend"}, results[0])
	assert.Equal(t, "Ann <ann@example.com>", results[1].String())

	_, err = (&Query{}).Run(context.Background(), "b")
	assert.Error(t, err)

	_, err = (&Query{Command: "exit 3"}).Run(context.Background(), "b")
	assert.Error(t, err)
}

func TestParseQueryOutput_SkipsBlankAddresses(t *testing.T) {
	out := []byte("header\n\t\tnothing\ncarl@example.com\n")
	results := parseQueryOutput(out)
	require.Len(t, results, 1)
	assert.Equal(t, "carl@example.com", results[0].String())
}
