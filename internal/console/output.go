// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package console formats command output for terminals, pipes and machines.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// OutputState holds global output configuration. Results go to Out,
// diagnostics to Err.
type OutputState struct {
	Verbose bool
	JSON    bool
	Plain   bool

	Out io.Writer
	Err io.Writer
}

// NewOutputState writes to the process standard streams.
func NewOutputState(verbose, json, plain bool) *OutputState {
	return &OutputState{
		Verbose: verbose,
		JSON:    json,
		Plain:   plain,
		Out:     os.Stdout,
		Err:     os.Stderr,
	}
}

// IsTTY checks if fd is a terminal (not piped/redirected).
func IsTTY(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// Interactive reports whether both stdin and stdout are terminals.
func Interactive() bool {
	return IsTTY(os.Stdin.Fd()) && IsTTY(os.Stdout.Fd())
}

// NoColor reports whether the environment asks for uncoloured output.
func NoColor() bool {
	return os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb"
}

// Bold formats text with bold when writing to a terminal, uppercase when piped.
func (o *OutputState) Bold(text string) string {
	if o.JSON || o.Plain || NoColor() {
		return text
	}

	if file, ok := o.Out.(*os.File); ok && IsTTY(file.Fd()) {
		return "\033[1m" + text + "\033[0m"
	}

	return strings.ToUpper(text)
}

// Header formats section headers consistently.
func (o *OutputState) Header(text string) string {
	return o.Bold(text)
}

// Progressf writes progress messages (only if verbose and not JSON/Plain).
func (o *OutputState) Progressf(format string, args ...any) {
	if o.Verbose && !o.JSON && !o.Plain {
		_, _ = fmt.Fprintf(o.Err, format+"\n", args...)
	}
}

// Successf writes success messages (only if not JSON/Plain).
func (o *OutputState) Successf(format string, args ...any) {
	if !o.JSON && !o.Plain {
		_, _ = fmt.Fprintf(o.Err, "✓ "+format+"\n", args...)
	}
}

// Warningf writes warning messages.
func (o *OutputState) Warningf(format string, args ...any) {
	if o.Plain {
		_, _ = fmt.Fprintf(o.Err, "warning: "+format+"\n", args...)
	} else {
		_, _ = fmt.Fprintf(o.Err, "⚠ "+format+"\n", args...)
	}
}

// Errorf writes error messages (always visible).
func (o *OutputState) Errorf(format string, args ...any) {
	if o.Plain {
		_, _ = fmt.Fprintf(o.Err, "error: "+format+"\n", args...)
	} else {
		_, _ = fmt.Fprintf(o.Err, "✗ "+format+"\n", args...)
	}
}

// Adapter returns the OutputPort matching the current mode.
func (o *OutputState) Adapter() *OutputAdapter {
	format := TextFormat

	switch {
	case o.JSON:
		format = JSONFormat
	case o.Plain:
		format = PlainFormat
	}

	return NewOutputAdapterWithWriter(o.Out, format, false)
}

// Notify prints a notification as a success line, with the description as
// a verbose follow-up. It makes OutputState usable as a session notifier.
func (o *OutputState) Notify(title, description string) {
	o.Successf("%s", title)

	if description != "" {
		o.Progressf("  %s", description)
	}
}
