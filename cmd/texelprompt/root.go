// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelprompt/root.go
// Summary: Root command, shared flags and logging setup.

package main

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// errAborted is returned when the user cancels a prompt; the process exits
// with status 1 without printing anything.
var errAborted = errors.New("aborted")

var (
	logPath   string
	noHistory bool
	logFile   *os.File
)

var rootCmd = &cobra.Command{
	Use:   "texelprompt",
	Short: "Line editor prompts with completion and history",
	Long: `texelprompt asks for a single line of input on the terminal, with
emacs-style editing, per-context history, Tab completion of file names,
aliases and configuration commands, and full-screen pickers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(logPath)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
			logFile = nil
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "append log output to this file")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "keep history in memory only")
}

// setupLogging routes the standard logger to path, or discards it so that
// log lines never land on the screen.
func setupLogging(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return err
	}
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logFile = file
	return nil
}
