// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package handlers implements CLI command execution logic.
package handlers

import (
	"strings"

	"github.com/janderssonse/appcatalog/internal/domain"
)

// BaseHandler provides common functionality for all command handlers.
type BaseHandler struct {
	Verbose bool
	JSON    bool
	Plain   bool
	Output  domain.OutputPort
}

// NewBaseHandler creates a new base handler writing to output.
func NewBaseHandler(verbose, json, plain bool, output domain.OutputPort) *BaseHandler {
	return &BaseHandler{
		Verbose: verbose,
		JSON:    json,
		Plain:   plain,
		Output:  output,
	}
}

// GetOutput returns the output port for CLI rendering.
func (h *BaseHandler) GetOutput() domain.OutputPort {
	return h.Output
}

// decorated reports whether human-oriented extras (summaries, headings,
// glyphs) should be printed.
func (h *BaseHandler) decorated() bool {
	return !h.JSON && !h.Plain
}

func stars(rating int) string {
	rating = max(domain.MinRating, min(rating, domain.MaxRating))

	return strings.Repeat("★", rating) + strings.Repeat("☆", domain.MaxRating-rating)
}

func accessLabel(hasAccess bool) string {
	if hasAccess {
		return "yes"
	}

	return "no"
}
