// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/appcatalog/internal/tui/styles"
)

// Support contact details.
const (
	SupportEmail     = "support@company.com"
	SupportExtension = "ext. 1234"
)

// HelpSection represents a help documentation section.
type HelpSection struct {
	Title   string
	Content string
}

// HelpKeyMap defines key bindings for the help screen.
type HelpKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Home  key.Binding
	End   key.Binding
}

// DefaultHelpKeyMap returns the default key bindings.
func DefaultHelpKeyMap() HelpKeyMap {
	return HelpKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous section"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next section"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "go to bottom"),
		),
	}
}

// HelpSections returns the static help content as markdown.
func HelpSections() []HelpSection {
	return []HelpSection{
		{
			Title: "How to Request App Access",
			Content: `# How to Request App Access

1. Browse the app catalog to find the application you need
2. Press **enter** on an app to learn more about it
3. Press **r** to request access if you don't already have it
4. Confirm your request in the dialog
5. Wait for manager and IT approval (2-3 business days)

Submitted requests appear under **My Apps** and **Requests** with their status.`,
		},
		{
			Title: "Approval Process",
			Content: `# Approval Process

Most apps require approval from your manager and IT department.
The process typically includes:

- Manager approval for business justification
- IT security review
- License availability check
- Training requirements verification`,
		},
		{
			Title: "Contact Support",
			Content: `# Contact Support

Need help? Contact IT Support at **` + SupportEmail + `** or call **` + SupportExtension + `**.`,
		},
		{
			Title: "Keyboard Shortcuts",
			Content: `# Keyboard Shortcuts

| Key | Action |
|-----|--------|
| tab / shift+tab | Switch between Catalog, My Apps, Requests and Help |
| / | Search the catalog |
| 1-7 | Toggle a category filter |
| p | Popular apps only (4+ stars) |
| s | Cycle sort order (catalog) or switch role (dashboard) |
| x | Clear filters |
| enter | View app details |
| r | Request access |
| esc | Back |
| ? | Key reference for the current screen |
| q | Quit |`,
		},
	}
}

// Help represents the help screen model.
type Help struct {
	styles         *styles.Styles
	width          int
	height         int
	sections       []HelpSection
	viewport       viewport.Model
	renderer       *glamour.TermRenderer
	currentSection int
	keyMap         HelpKeyMap
}

// NewHelp creates a new help model with pre-rendered content.
func NewHelp(styleConfig *styles.Styles) *Help {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		renderer, _ = glamour.NewTermRenderer()
	}

	viewPort := viewport.New(80, 20)
	viewPort.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styleConfig.Primary).
		Padding(1)

	helpModel := &Help{
		styles:   styleConfig,
		sections: HelpSections(),
		viewport: viewPort,
		renderer: renderer,
		keyMap:   DefaultHelpKeyMap(),
	}

	helpModel.updateContent()

	return helpModel
}

// Init initializes the help model.
func (m *Help) Init() tea.Cmd {
	return nil
}

// Update handles messages for the Help model.
func (m *Help) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	}

	return m, nil
}

// View renders the help screen.
func (m *Help) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		m.viewport.View(),
		m.renderFooter(),
	)
}

// CurrentSection returns the title of the visible section.
func (m *Help) CurrentSection() string {
	return m.sections[m.currentSection].Title
}

// GetNavigationHints returns the key hints shown in the footer.
func (m *Help) GetNavigationHints() []FooterAction {
	return []FooterAction{
		{Key: "↑↓/jk", Action: "Scroll"},
		{Key: "←→/hl", Action: "Sections"},
		{Key: "g/G", Action: "Top/Bottom"},
	}
}

func (m *Help) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Left):
		m.moveSection(-1)
	case key.Matches(msg, m.keyMap.Right):
		m.moveSection(1)
	case key.Matches(msg, m.keyMap.Home):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keyMap.End):
		m.viewport.GotoBottom()
	default:
		var cmd tea.Cmd

		m.viewport, cmd = m.viewport.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *Help) moveSection(direction int) {
	next := m.currentSection + direction
	if next >= 0 && next < len(m.sections) {
		m.currentSection = next
		m.updateContent()
	}
}

func (m *Help) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	verticalMargins := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderFooter()) + 1

	m.viewport.Width = msg.Width
	m.viewport.Height = max(1, msg.Height-verticalMargins)

	m.updateContent()

	return m, nil
}

func (m *Help) renderHeader() string {
	var builder strings.Builder

	builder.WriteString(m.styles.Title.Render("❓ Help & Support"))
	builder.WriteString("\n")

	tabs := make([]string, 0, len(m.sections))

	for i, section := range m.sections {
		style := m.styles.Unselected.MarginRight(1).Faint(true)
		if i == m.currentSection {
			style = m.styles.Selected.MarginRight(1)
		}

		tabs = append(tabs, style.Render(section.Title))
	}

	builder.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))

	return builder.String()
}

func (m *Help) renderFooter() string {
	return RenderFooter(m.styles, m.width, m.GetNavigationHints(), true)
}

// updateContent renders the current section with glamour.
func (m *Help) updateContent() {
	section := m.sections[m.currentSection]

	rendered, err := m.renderer.Render(section.Content)
	if err != nil {
		rendered = section.Content
	}

	m.viewport.SetContent(rendered)
	m.viewport.GotoTop()
}
