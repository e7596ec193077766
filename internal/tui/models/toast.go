// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/appcatalog/internal/session"
	"github.com/janderssonse/appcatalog/internal/tui/styles"
)

// ToastDuration is how long a toast stays on screen.
const ToastDuration = 3 * time.Second

// ToastExpiredMsg hides the toast with the matching sequence number.
type ToastExpiredMsg struct {
	Seq int
}

// Toast shows the latest session notification until it expires.
type Toast struct {
	styles      *styles.Styles
	title       string
	description string
	seq         int
	visible     bool
	pending     bool
	duration    time.Duration
}

var _ session.Notifier = (*Toast)(nil)

// NewToast creates a hidden toast.
func NewToast(styleConfig *styles.Styles) *Toast {
	return &Toast{styles: styleConfig, duration: ToastDuration}
}

// Notify replaces the shown message. A newer toast restarts the timer.
func (t *Toast) Notify(title, description string) {
	t.seq++
	t.title = title
	t.description = description
	t.visible = true
	t.pending = true
}

// Cmd returns the expiry timer for a freshly shown toast, or nil.
func (t *Toast) Cmd() tea.Cmd {
	if !t.pending {
		return nil
	}

	t.pending = false
	seq := t.seq

	return tea.Tick(t.duration, func(_ time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq}
	})
}

// Update hides the toast when its timer fires.
func (t *Toast) Update(msg tea.Msg) {
	if msg, ok := msg.(ToastExpiredMsg); ok && msg.Seq == t.seq {
		t.visible = false
	}
}

// IsVisible returns whether a toast is shown.
func (t *Toast) IsVisible() bool {
	return t.visible
}

// Seq returns the sequence number of the latest toast.
func (t *Toast) Seq() int {
	return t.seq
}

// View renders the toast box, or "" when hidden.
func (t *Toast) View() string {
	if !t.visible {
		return ""
	}

	body := t.styles.SuccessText.Bold(true).Render("✓ " + t.title)
	if t.description != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, t.description)
	}

	return t.styles.Toast.Render(body)
}
