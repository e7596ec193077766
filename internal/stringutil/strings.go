// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package stringutil provides string utility functions for the app catalog.
package stringutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

// ContainsIgnoreCase checks if text contains substr (case-insensitive).
func ContainsIgnoreCase(text, substr string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(substr))
}

// EqualFoldAny reports whether text equals any candidate, ignoring case.
func EqualFoldAny(text string, candidates []string) bool {
	for _, candidate := range candidates {
		if strings.EqualFold(text, candidate) {
			return true
		}
	}

	return false
}

// Truncate shortens text to fit width terminal cells, appending an ellipsis.
// Emoji and wide runes are measured by display width.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if runewidth.StringWidth(text) <= width {
		return text
	}

	if width <= len(Ellipsis) {
		return runewidth.Truncate(text, width, "")
	}

	return runewidth.Truncate(text, width, Ellipsis)
}

// PadRight pads text with spaces to exactly width terminal cells.
func PadRight(text string, width int) string {
	return runewidth.FillRight(Truncate(text, width), width)
}

// Width returns the display width of text in terminal cells.
func Width(text string) int {
	return runewidth.StringWidth(text)
}
