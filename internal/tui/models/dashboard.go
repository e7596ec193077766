// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/appcatalog/internal/domain"
	"github.com/janderssonse/appcatalog/internal/session"
	"github.com/janderssonse/appcatalog/internal/stringutil"
	"github.com/janderssonse/appcatalog/internal/tui/styles"
)

// DashboardKeyMap defines key bindings for the dashboard.
type DashboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Details    key.Binding
	Request    key.Binding
	SwitchRole key.Binding
}

// DefaultDashboardKeyMap returns the default key bindings.
func DefaultDashboardKeyMap() DashboardKeyMap {
	return DashboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Details: key.NewBinding(
			key.WithKeys(KeyEnter),
			key.WithHelp("enter", "details"),
		),
		Request: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "request access"),
		),
		SwitchRole: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "switch role"),
		),
	}
}

// DashboardModel renders the session overview shared by the my-apps and
// requests views. Its output does not depend on which of the two is active.
type DashboardModel struct {
	styles   *styles.Styles
	state    State
	width    int
	height   int
	keyMap   DashboardKeyMap
	cursor   int
	viewport viewport.Model
}

// NewDashboard creates the dashboard screen.
func NewDashboard(styleConfig *styles.Styles, state State) *DashboardModel {
	return &DashboardModel{
		styles:   styleConfig,
		state:    state,
		width:    defaultWidth,
		height:   defaultHeight,
		keyMap:   DefaultDashboardKeyMap(),
		viewport: viewport.New(defaultWidth, defaultHeight-2),
	}
}

// Init initializes the dashboard model.
func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the dashboard.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-lipgloss.Height(m.renderFooter()))

		return m, nil
	case SyncMsg:
		m.cursor = max(0, min(m.cursor, len(m.selectable())-1))

		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	m.viewport.SetContent(m.renderDashboard(m.state.Dashboard()))

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.renderFooter())
}

// Current returns the highlighted app.
func (m *DashboardModel) Current() (domain.App, bool) {
	apps := m.selectable()
	if m.cursor < 0 || m.cursor >= len(apps) {
		return domain.App{}, false
	}

	return apps[m.cursor], true
}

// GetNavigationHints returns the key hints shown in the footer.
func (m *DashboardModel) GetNavigationHints() []FooterAction {
	return []FooterAction{
		{Key: "enter", Action: "Details"},
		{Key: "r", Action: "Request"},
		{Key: "s", Action: "Switch to " + string(m.state.Role().Toggle()) + " Role"},
	}
}

// selectable lists the apps the cursor walks: my apps, then recommendations.
func (m *DashboardModel) selectable() []domain.App {
	dashboard := m.state.Dashboard()

	return append(dashboard.MyApps, dashboard.Recommended...)
}

func (m *DashboardModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Up):
		m.cursor = max(0, m.cursor-1)
	case key.Matches(msg, m.keyMap.Down):
		m.cursor = max(0, min(m.cursor+1, len(m.selectable())-1))
	case key.Matches(msg, m.keyMap.Details):
		if app, ok := m.Current(); ok {
			return m, Emit(session.ShowDetails{AppID: app.ID})
		}
	case key.Matches(msg, m.keyMap.Request):
		if app, ok := m.Current(); ok && !app.HasAccess {
			return m, Emit(session.BeginRequest{AppID: app.ID})
		}
	case key.Matches(msg, m.keyMap.SwitchRole):
		return m, Emit(session.ToggleRole{})
	}

	return m, nil
}

func (m *DashboardModel) renderDashboard(dashboard domain.DashboardResult) string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("My Dashboard"),
		m.styles.MutedText.Render("Welcome back! Here's your app overview."),
		"",
		m.styles.MutedText.Render("Current Role: ")+m.styles.PrimaryText.Bold(true).Render(string(dashboard.Role)),
		m.styles.Keybinding("s", fmt.Sprintf("Switch to %s Role", dashboard.Role.Toggle())),
	)

	myApps := m.styles.MutedText.Render("You don't have access to any apps yet.") + "\n" +
		m.styles.MutedText.Faint(true).Render("Browse the catalog to request access to apps you need.")
	if len(dashboard.MyApps) > 0 {
		myApps = m.renderApps(dashboard.MyApps, 0)
	}

	requests := m.styles.MutedText.Render("No pending requests.")
	if len(dashboard.Requests) > 0 {
		requests = m.renderRequests(dashboard.Requests)
	}

	recommended := m.styles.MutedText.Render("Nothing to recommend right now.")
	if len(dashboard.Recommended) > 0 {
		recommended = m.renderApps(dashboard.Recommended, len(dashboard.MyApps))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.styles.Section.Render(fmt.Sprintf("My Apps (%d)", len(dashboard.MyApps))),
		myApps,
		m.styles.Section.Render(fmt.Sprintf("Pending Requests (%d)", len(dashboard.Requests))),
		requests,
		m.styles.Section.Render(fmt.Sprintf("Recommended for You - %s Role", dashboard.Role)),
		recommended,
	)
}

func (m *DashboardModel) renderApps(apps []domain.App, offset int) string {
	rows := make([]string, 0, len(apps))

	for i, app := range apps {
		marker := "  "
		if offset+i == m.cursor {
			marker = m.styles.PrimaryText.Render("▸ ")
		}

		rows = append(rows, strings.Join([]string{
			marker + stringutil.PadRight(app.Icon, 2),
			stringutil.PadRight(app.Name, nameColumnWidth),
			m.styles.Stars(app.Rating),
			stringutil.PadRight(string(app.Category), categoryColumnWidth),
			m.styles.AccessBadge(app.HasAccess),
		}, " "))
	}

	return strings.Join(rows, "\n")
}

func (m *DashboardModel) renderRequests(requests []domain.PendingRequest) string {
	rows := make([]string, 0, len(requests))

	for _, request := range requests {
		rows = append(rows, strings.Join([]string{
			"  " + stringutil.PadRight(request.AppIcon, 2),
			stringutil.PadRight(request.AppName, nameColumnWidth),
			m.styles.MutedText.Render(stringutil.PadRight("Requested on "+request.RequestDate, 26)),
			m.styles.StatusIcon(request.Status),
			m.styles.StatusBadge(request.Status),
		}, " "))
	}

	return strings.Join(rows, "\n")
}

func (m *DashboardModel) renderFooter() string {
	return RenderFooter(m.styles, m.width, m.GetNavigationHints(), true)
}
