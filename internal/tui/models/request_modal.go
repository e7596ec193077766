// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/appcatalog/internal/domain"
	"github.com/janderssonse/appcatalog/internal/session"
	"github.com/janderssonse/appcatalog/internal/tui/styles"
)

// Request dialog copy.
const (
	RequestModalTitle = "Confirm Access Request"
	ApprovalNotice    = session.ApprovalNotice
	ConfirmLabel      = "Confirm Request"
	CancelLabel       = "Cancel"
)

const modalFormWidth = 52

// RequestModal asks the user to confirm an access request for one app.
type RequestModal struct {
	styles    *styles.Styles
	app       domain.App
	form      *huh.Form
	confirmed bool
	cancel    key.Binding
}

// NewRequestModal creates the confirmation dialog for app.
func NewRequestModal(styleConfig *styles.Styles, app domain.App) *RequestModal {
	m := &RequestModal{
		styles: styleConfig,
		app:    app,
		cancel: key.NewBinding(
			key.WithKeys(KeyEsc),
			key.WithHelp("esc", "cancel"),
		),
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title("Submit this request?").
				Affirmative(ConfirmLabel).
				Negative(CancelLabel).
				Value(&m.confirmed),
		),
	).
		WithTheme(huh.ThemeCharm()).
		WithWidth(modalFormWidth).
		WithShowHelp(false)

	return m
}

// App returns the app the request is for.
func (m *RequestModal) App() domain.App {
	return m.app
}

// Init starts the embedded form.
func (m *RequestModal) Init() tea.Cmd {
	return m.form.Init()
}

// Update forwards input to the form and raises Confirm or Cancel once it
// completes. Esc cancels at any time.
func (m *RequestModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.cancel) {
		return m, m.Resolve(false)
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f

		switch m.form.State {
		case huh.StateCompleted:
			return m, m.Resolve(m.confirmed)
		case huh.StateAborted:
			return m, m.Resolve(false)
		case huh.StateNormal:
		}
	}

	return m, cmd
}

// Resolve emits the intent for the user's answer.
func (m *RequestModal) Resolve(confirmed bool) tea.Cmd {
	if confirmed {
		return Emit(session.Confirm{})
	}

	return Emit(session.Cancel{})
}

// View renders the dialog box.
func (m *RequestModal) View() string {
	return m.styles.Modal.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(RequestModalTitle),
		m.renderApp(),
		"",
		m.styles.WarningText.Width(modalFormWidth).Render(ApprovalNotice),
		m.renderRequirements(),
		"",
		m.form.View(),
		m.styles.MutedText.Render("←/→ choose • enter submit • esc cancel"),
	))
}

func (m *RequestModal) renderApp() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.app.Icon+" "+m.styles.PrimaryText.Bold(true).Render(m.app.Name),
		m.styles.MutedText.Render(string(m.app.Category)),
	)
}

func (m *RequestModal) renderRequirements() string {
	if len(m.app.AccessRequirements) == 0 {
		return ""
	}

	lines := make([]string, 0, len(m.app.AccessRequirements)+1)
	lines = append(lines, "", m.styles.Subtitle.Render("Requirements:"))

	for _, requirement := range m.app.AccessRequirements {
		lines = append(lines, "• "+requirement)
	}

	return strings.Join(lines, "\n")
}
