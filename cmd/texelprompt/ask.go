// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelprompt/ask.go
// Summary: ask command: one prompt, result on stdout.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/framegrace/texelprompt/config"
	"github.com/framegrace/texelprompt/lineedit"
)

type askOptions struct {
	prompt   string
	context  string
	initial  string
	password bool
	clear    bool
	multiple bool
}

var askOpts askOptions

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Prompt for one line and print it",
	Long: `Prompt for one line of input and print it on standard output.

The context selects completion and history:
  none     plain text
  file     file names (Tab completes, Tab Tab browses)
  efile    file names, space cycles mailboxes with new mail
  command  shell command, the last word completes as a path
  alias    address list, completes aliases after the last comma
  config   configuration commands and variable values
  pattern  search patterns

Exits with status 1 when the prompt is cancelled.`,
	Args: cobra.NoArgs,
	RunE: runAsk,
}

func init() {
	f := askCmd.Flags()
	f.StringVarP(&askOpts.prompt, "prompt", "p", "> ", "prompt label (default from the ask profile)")
	f.StringVarP(&askOpts.context, "context", "c", "none", "completion and history context (default from the ask profile)")
	f.StringVarP(&askOpts.initial, "initial", "i", "", "initial text")
	f.BoolVar(&askOpts.password, "password", false, "do not echo input or record history")
	f.BoolVar(&askOpts.clear, "clear", false, "erase the initial text on the first printable key")
	f.BoolVarP(&askOpts.multiple, "multiple", "m", false, "allow selecting several files in the browser")
	rootCmd.AddCommand(askCmd)
}

// flags maps the options to session flags.
func (o askOptions) flags() (lineedit.Flags, error) {
	ctx, ok := lineedit.ParseContext(o.context)
	if !ok {
		return 0, fmt.Errorf("unknown context %q", o.context)
	}
	fl := ctx.Flags()
	if o.password {
		fl |= lineedit.FlagPassword
	}
	if o.clear {
		fl |= lineedit.FlagClear
	}
	if o.multiple {
		fl |= lineedit.FlagMultiple
	}
	return fl, nil
}

// applyProfile takes prompt and context from the ask profile unless they
// were given on the command line.
func (o *askOptions) applyProfile(cmd *cobra.Command, profile config.Config) {
	if !cmd.Flags().Changed("prompt") {
		o.prompt = profile.GetString("ask", "prompt", o.prompt)
	}
	if !cmd.Flags().Changed("context") {
		o.context = profile.GetString("ask", "context", o.context)
	}
}

func runAsk(cmd *cobra.Command, args []string) error {
	askOpts.applyProfile(cmd, config.Profile("ask"))
	flags, err := askOpts.flags()
	if err != nil {
		return err
	}

	var res lineedit.Result
	err = withApp(systemConfig(), "ask", func(a *app) error {
		var err error
		res, err = a.prompt(askOpts.prompt, askOpts.initial, flags)
		return err
	})
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), res)
}

// writeResult prints the accepted text, or one selected file per line.
func writeResult(w io.Writer, res lineedit.Result) error {
	if res.Status != lineedit.StatusDone {
		return errAborted
	}
	out := res.Text
	if len(res.Files) > 0 {
		out = strings.Join(res.Files, "\n")
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
