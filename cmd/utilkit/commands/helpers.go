// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

// Package commands contains the implementations behind the utilkit CLI
// subcommands. Every Run function takes its dependencies explicitly and
// talks to an [IOTuple], so tests can drive commands with plain buffers.
package commands

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// IOTuple holds the reader and writer a command talks to, allowing tests
// to substitute buffers for the real standard streams.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple wired to os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// orStdin returns value unchanged when non-empty; otherwise it reads the
// tuple's reader to exhaustion, so commands compose in shell pipelines.
// Trailing newlines are stripped either way a shell delivers them.
func orStdin(t IOTuple, value string) (string, error) {
	if value != "" {
		return value, nil
	}
	raw, err := io.ReadAll(t.Reader)
	if err != nil {
		return "", fmt.Errorf("read standard input: %w", err)
	}
	return strings.TrimRight(string(raw), "\r\n"), nil
}

// readSecret prompts on the tuple's writer and reads a secret from its
// reader. Terminal input is read without echo; anything else falls back to
// a single line, which keeps the prompt scriptable in pipes and tests.
func readSecret(t IOTuple, prompt string) (string, error) {
	_, _ = fmt.Fprint(t.Writer, prompt)

	if f, ok := t.Reader.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(t.Writer)
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return string(secret), nil
	}

	line, err := bufio.NewReader(t.Reader).ReadString('\n')
	_, _ = fmt.Fprintln(t.Writer)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// parseFormat validates a --format flag value.
func parseFormat(format string) (string, error) {
	switch format {
	case "text", "json":
		return format, nil
	default:
		return "", fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}

// printJSON writes v as indented JSON, the machine-readable counterpart of
// the plain-text command output.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, _ = fmt.Fprintln(w, string(out))
	return nil
}

// orNA substitutes "N/A" for build metadata that was not stamped in.
func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
