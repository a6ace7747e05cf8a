// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelprompt/main.go
// Summary: texelprompt command: interactive single-line prompts for scripts.
// Usage: `texelprompt ask --context file`, `texelprompt compose`,
// `texelprompt history list`.

package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errAborted) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}
