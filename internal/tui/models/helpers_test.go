// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/janderssonse/appcatalog/internal/catalog"
	"github.com/janderssonse/appcatalog/internal/session"
	"github.com/janderssonse/appcatalog/internal/tui/styles"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()

	return session.New(catalog.DefaultSeed())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(model tea.Model, text string) {
	for _, r := range text {
		model.Update(runes(string(r)))
	}
}

// intentOf runs cmd and returns the intent it carries.
func intentOf(t *testing.T, cmd tea.Cmd) session.Intent {
	t.Helper()

	require.NotNil(t, cmd)

	msg, ok := cmd().(IntentMsg)
	require.True(t, ok, "expected an IntentMsg")

	return msg.Intent
}

func plain(s string) string {
	return ansi.Strip(s)
}

func tallWindow(model tea.Model) {
	model.Update(tea.WindowSizeMsg{Width: 160, Height: 200})
}

func testStyles() *styles.Styles {
	return styles.New()
}

func emptySeed() catalog.Seed {
	return catalog.Seed{}
}
