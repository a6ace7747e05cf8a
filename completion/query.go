// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: completion/query.go
// Summary: External address query used by the query picker.

package completion

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"time"
)

// DefaultQueryTimeout bounds one run of the query command.
const DefaultQueryTimeout = 10 * time.Second

// QueryResult is one line of query command output.
type QueryResult struct {
	Address string
	Name    string
	Other   string
}

// String formats the result as an address list entry.
func (r QueryResult) String() string {
	if r.Name == "" {
		return r.Address
	}
	return fmt.Sprintf("%s <%s>", r.Name, r.Address)
}

// Query runs an external address book command. Command is a shell command
// line in which %s is replaced by the quoted query; without %s the query
// is appended.
type Query struct {
	Command string
	Timeout time.Duration
}

// Run executes the command for query. The first output line is a status
// message and is skipped; every following line is address, name and an
// optional comment separated by tabs.
func (q *Query) Run(ctx context.Context, query string) ([]QueryResult, error) {
	if q.Command == "" {
		return nil, fmt.Errorf("no query command configured")
	}
	timeout := q.Timeout
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	line := q.Command
	quoted := shellQuote(query)
	if strings.Contains(line, "%s") {
		line = strings.ReplaceAll(line, "%s", quoted)
	} else {
		line += " " + quoted
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", line)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("query command %q: %w (%s)", q.Command, err, strings.TrimSpace(stderr.String()))
	}
	return parseQueryOutput(out), nil
}

func parseQueryOutput(out []byte) []QueryResult {
	var results []QueryResult
	sc := bufio.NewScanner(bytes.NewReader(out))
	first := true
	for sc.Scan() {
		if first {
			first = false
			if msg := strings.TrimSpace(sc.Text()); msg != "" {
				log.Printf("Query: %s", msg)
			}
			continue
		}
		fields := strings.Split(sc.Text(), "\t")
		if strings.TrimSpace(fields[0]) == "" {
			continue
		}
		r := QueryResult{Address: strings.TrimSpace(fields[0])}
		if len(fields) > 1 {
			r.Name = strings.TrimSpace(fields[1])
		}
		if len(fields) > 2 {
			r.Other = strings.TrimSpace(fields[2])
		}
		results = append(results, r)
	}
	return results
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
