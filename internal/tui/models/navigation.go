// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models implements the catalog screens as Bubble Tea models. Screen
// models only read session state; every change is raised as an IntentMsg for
// the root model to apply.
package models

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/janderssonse/appcatalog/internal/domain"
	"github.com/janderssonse/appcatalog/internal/session"
)

// Key constants shared by the screens.
const (
	KeyEnter = "enter"
	KeyEsc   = "esc"
	KeyCtrlC = "ctrl+c"
)

// GoodbyeMessage is shown once the program quits.
const GoodbyeMessage = "Goodbye!\n"

// State is the read-only view of the session the screens render from.
type State interface {
	Apps() []domain.App
	Role() domain.Role
	View() session.View
	Selected() (domain.App, bool)
	Dashboard() domain.DashboardResult
}

// IntentMsg carries a user action up to the root model.
type IntentMsg struct {
	Intent session.Intent
}

// Emit wraps an intent in a command.
func Emit(intent session.Intent) tea.Cmd {
	return func() tea.Msg {
		return IntentMsg{Intent: intent}
	}
}

// SyncMsg tells a screen the session changed underneath it.
type SyncMsg struct{}

// SearchFocusMsg reports whether a text input owns the keyboard.
type SearchFocusMsg struct {
	Focused bool
}
