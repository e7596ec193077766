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
	"github.com/janderssonse/appcatalog/internal/tui/styles"
)

// Placeholders listed when an app carries no screenshots.
var defaultScreenshots = []string{"Screenshot 1", "Screenshot 2", "Screenshot 3", "Demo Video"} //nolint:gochecknoglobals

type review struct {
	rating int
	author string
	quote  string
}

var staticReviews = []review{ //nolint:gochecknoglobals
	{5, "Sarah M.", "Great tool for productivity!"},
	{4, "John D.", "Easy to use and reliable."},
}

// DetailKeyMap defines key bindings for the detail screen.
type DetailKeyMap struct {
	Back    key.Binding
	Request key.Binding
	Up      key.Binding
	Down    key.Binding
}

// DefaultDetailKeyMap returns the default key bindings.
func DefaultDetailKeyMap() DetailKeyMap {
	return DetailKeyMap{
		Back: key.NewBinding(
			key.WithKeys(KeyEsc, "backspace", "b"),
			key.WithHelp("esc", "back to catalog"),
		),
		Request: key.NewBinding(
			key.WithKeys("r", KeyEnter),
			key.WithHelp("r", "request access"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
	}
}

// DetailModel shows the selected app. With no selection it renders nothing.
type DetailModel struct {
	styles   *styles.Styles
	state    State
	width    int
	height   int
	keyMap   DetailKeyMap
	viewport viewport.Model
}

// NewDetail creates the app detail screen.
func NewDetail(styleConfig *styles.Styles, state State) *DetailModel {
	return &DetailModel{
		styles:   styleConfig,
		state:    state,
		width:    defaultWidth,
		height:   defaultHeight,
		keyMap:   DefaultDetailKeyMap(),
		viewport: viewport.New(defaultWidth, defaultHeight-2),
	}
}

// Init initializes the detail model.
func (m *DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail screen.
func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-lipgloss.Height(m.renderFooter()))

		return m, nil
	case SyncMsg:
		m.viewport.GotoTop()

		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// View renders the selected app, or "" when nothing is selected.
func (m *DetailModel) View() string {
	app, ok := m.state.Selected()
	if !ok {
		return ""
	}

	m.viewport.SetContent(m.renderApp(app))

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.renderFooter())
}

// GetNavigationHints returns the key hints shown in the footer.
func (m *DetailModel) GetNavigationHints() []FooterAction {
	actions := []FooterAction{{Key: "esc", Action: "Back to Catalog"}}

	if app, ok := m.state.Selected(); ok && !app.HasAccess {
		actions = append(actions, FooterAction{Key: "r", Action: "Request Access"})
	}

	return append(actions, FooterAction{Key: "j/k", Action: "Scroll"})
}

func (m *DetailModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Back):
		return m, Emit(session.GoBack{})
	case key.Matches(msg, m.keyMap.Request):
		if app, ok := m.state.Selected(); ok && !app.HasAccess {
			return m, Emit(session.BeginRequest{AppID: app.ID})
		}

		return m, nil
	case key.Matches(msg, m.keyMap.Up):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keyMap.Down):
		m.viewport.ScrollDown(1)
	}

	return m, nil
}

func (m *DetailModel) renderApp(app domain.App) string {
	sections := []string{
		m.styles.MutedText.Render("‹ Back to Catalog"),
		"",
		m.renderHeader(app),
		m.renderScreenshots(app),
		m.renderSection("Description", m.styles.Content.Render(app.Description)),
	}

	if app.Features != nil {
		lines := make([]string, 0, len(app.Features))
		for _, feature := range app.Features {
			lines = append(lines, m.styles.SuccessText.Render("✓")+" "+feature)
		}

		sections = append(sections, m.renderSection("Key Features", strings.Join(lines, "\n")))
	}

	if app.AccessRequirements != nil {
		sections = append(sections, m.renderSection("Access Requirements", m.renderRequirements(app.AccessRequirements)))
	}

	sections = append(sections, m.renderSection("User Reviews", m.renderReviews()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *DetailModel) renderHeader(app domain.App) string {
	access := m.styles.SuccessText.Render("✅ You have access")
	if !app.HasAccess {
		access = m.styles.Keybinding("r", "Request Access")
	}

	info := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(app.Name),
		fmt.Sprintf("%s (%d/%d)", m.styles.Stars(app.Rating), app.Rating, domain.MaxRating),
		m.styles.Chip.Render(string(app.Category)),
		"",
		access,
	)

	icon := m.styles.Card.Padding(1, 2).Render(app.Icon)

	return lipgloss.JoinHorizontal(lipgloss.Top, icon, "  ", info)
}

func (m *DetailModel) renderScreenshots(app domain.App) string {
	names := defaultScreenshots
	if app.Screenshots != nil {
		names = make([]string, len(app.Screenshots))
		for i := range app.Screenshots {
			names[i] = fmt.Sprintf("Screenshot %d", i+1)
		}
	}

	tiles := make([]string, 0, len(names))
	for _, name := range names {
		tiles = append(tiles, m.styles.Card.Render(m.styles.MutedText.Render(name)))
	}

	return m.renderSection("Screenshots", lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
}

func (m *DetailModel) renderRequirements(requirements []string) string {
	lines := make([]string, 0, len(requirements))
	for _, requirement := range requirements {
		lines = append(lines, m.styles.WarningText.Render("• "+requirement))
	}

	return strings.Join(lines, "\n")
}

func (m *DetailModel) renderReviews() string {
	lines := make([]string, 0, len(staticReviews)*2)
	for _, r := range staticReviews {
		lines = append(lines,
			m.styles.Stars(r.rating)+" "+r.author,
			m.styles.MutedText.Render(fmt.Sprintf("%q", r.quote)),
		)
	}

	return strings.Join(lines, "\n")
}

func (m *DetailModel) renderSection(title, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left, m.styles.Section.Render(title), body)
}

func (m *DetailModel) renderFooter() string {
	return RenderFooter(m.styles, m.width, m.GetNavigationHints(), true)
}
