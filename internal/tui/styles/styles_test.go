// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package styles

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/janderssonse/appcatalog/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStars(t *testing.T) {
	t.Parallel()

	s := New()

	tests := []struct {
		rating int
		want   string
	}{
		{0, "☆☆☆☆☆"},
		{3, "★★★☆☆"},
		{5, "★★★★★"},
		{9, "★★★★★"},
		{-1, "☆☆☆☆☆"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ansi.Strip(s.Stars(tt.rating)))
	}
}

func TestStatusBadgeTitleCases(t *testing.T) {
	t.Parallel()

	s := New()

	assert.Contains(t, s.StatusBadge(domain.StatusApproved), "Approved")
	assert.Contains(t, s.StatusBadge(domain.StatusRejected), "Rejected")
	assert.Contains(t, s.StatusBadge(domain.StatusPending), "⏳ Pending")
}

func TestAccessBadge(t *testing.T) {
	t.Parallel()

	s := New()

	assert.Contains(t, s.AccessBadge(true), "Have Access")
	assert.Contains(t, s.AccessBadge(false), "Request Access")
}

func TestKeybinding(t *testing.T) {
	t.Parallel()

	assert.Contains(t, New().Keybinding("enter", "details"), "[enter]")
}
