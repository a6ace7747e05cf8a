// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelprompt/panic.go
// Summary: Panic recovery that gives the terminal back before reporting.

package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/gdamore/tcell/v2"
)

// recoverScreen should be deferred right after the screen is initialised.
// A panic would otherwise leave the terminal in raw mode with the stack
// trace drawn over the alternate screen.
func recoverScreen(screen tcell.Screen, context string) {
	r := recover()
	if r == nil {
		return
	}
	screen.Fini()

	buf := make([]byte, 1<<16)
	n := runtime.Stack(buf, false)
	msg := fmt.Sprintf("panic in %s: %v\n%s", context, r, buf[:n])
	log.Print(msg)
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(2)
}
