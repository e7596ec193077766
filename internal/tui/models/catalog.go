// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/appcatalog/internal/catalog"
	"github.com/janderssonse/appcatalog/internal/domain"
	"github.com/janderssonse/appcatalog/internal/session"
	"github.com/janderssonse/appcatalog/internal/stringutil"
	"github.com/janderssonse/appcatalog/internal/tui/styles"
)

// Catalog screen texts.
const (
	SearchPlaceholder = "Search apps by name, function, or department"
	EmptyCatalogText  = catalog.NoMatchesMessage
)

// Default dimensions used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 30
)

// Column widths for catalog rows.
const (
	nameColumnWidth     = 22
	categoryColumnWidth = 12
	badgeColumnWidth    = 18
	minDescriptionWidth = 10
)

// CatalogKeyMap defines key bindings for the catalog screen.
type CatalogKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Search   key.Binding
	Details  key.Binding
	Request  key.Binding
	Category key.Binding
	Popular  key.Binding
	Sort     key.Binding
	Clear    key.Binding
	Blur     key.Binding
}

// DefaultCatalogKeyMap returns the default key bindings.
func DefaultCatalogKeyMap() CatalogKeyMap {
	return CatalogKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Details: key.NewBinding(
			key.WithKeys(KeyEnter),
			key.WithHelp("enter", "details"),
		),
		Request: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "request access"),
		),
		Category: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "category"),
		),
		Popular: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "popular"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		Blur: key.NewBinding(
			key.WithKeys(KeyEsc, KeyEnter),
			key.WithHelp("esc", "done"),
		),
	}
}

// CatalogModel is the browsable app list with search, filters and sort.
// The filter state lives here and nowhere else, and is dropped whenever the
// session leaves the catalog view.
type CatalogModel struct {
	styles      *styles.Styles
	state       State
	width       int
	height      int
	keyMap      CatalogKeyMap
	defaultSort catalog.SortKey

	search   textinput.Model
	query    catalog.Query
	cursor   int
	viewport viewport.Model
}

// NewCatalog creates the catalog screen sorted by sort.
func NewCatalog(styleConfig *styles.Styles, state State, sort catalog.SortKey) *CatalogModel {
	search := textinput.New()
	search.Placeholder = SearchPlaceholder
	search.Prompt = "🔍 "
	search.CharLimit = 64

	m := &CatalogModel{
		styles:      styleConfig,
		state:       state,
		width:       defaultWidth,
		height:      defaultHeight,
		keyMap:      DefaultCatalogKeyMap(),
		defaultSort: sort,
		search:      search,
		query:       catalog.Query{Sort: sort},
		viewport:    viewport.New(defaultWidth, defaultHeight),
	}
	m.resize()

	return m
}

// Init initializes the catalog model.
func (m *CatalogModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the catalog screen.
func (m *CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

		return m, nil
	case SyncMsg:
		if m.state.View() != session.ViewCatalog {
			m.reset()

			return m, nil
		}

		m.clampCursor()

		return m, nil
	case tea.KeyMsg:
		if m.search.Focused() {
			return m.handleSearchInput(msg)
		}

		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// reset restores the search, filters, sort and cursor a fresh catalog
// screen starts with.
func (m *CatalogModel) reset() {
	m.query = catalog.Query{Sort: m.defaultSort}
	m.search.SetValue("")
	m.search.Blur()
	m.cursor = 0
	m.viewport.GotoTop()
}

// View renders the catalog screen.
func (m *CatalogModel) View() string {
	m.viewport.SetContent(m.renderList(m.Visible()))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

// Visible returns the filtered, sorted apps currently shown.
func (m *CatalogModel) Visible() []domain.App {
	return catalog.Apply(m.state.Apps(), m.query)
}

// Query returns the current filter state.
func (m *CatalogModel) Query() catalog.Query {
	return m.query
}

// Cursor returns the index of the highlighted row.
func (m *CatalogModel) Cursor() int {
	return m.cursor
}

// SearchFocused reports whether the search input owns the keyboard.
func (m *CatalogModel) SearchFocused() bool {
	return m.search.Focused()
}

// Current returns the highlighted app.
func (m *CatalogModel) Current() (domain.App, bool) {
	visible := m.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return domain.App{}, false
	}

	return visible[m.cursor], true
}

// GetNavigationHints returns the key hints shown in the footer.
func (m *CatalogModel) GetNavigationHints() []FooterAction {
	if m.search.Focused() {
		return []FooterAction{{Key: "esc", Action: "Done"}}
	}

	return []FooterAction{
		{Key: "enter", Action: "Details"},
		{Key: "r", Action: "Request"},
		{Key: "/", Action: "Search"},
		{Key: "1-7", Action: "Category"},
		{Key: "p", Action: "Popular"},
		{Key: "s", Action: "Sort"},
		{Key: "x", Action: "Clear"},
	}
}

func (m *CatalogModel) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Blur) {
		m.search.Blur()

		return m, focusCmd(false)
	}

	var cmd tea.Cmd

	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.query.Text {
		m.query.Text = m.search.Value()
		m.cursor = 0
		m.viewport.GotoTop()
	}

	return m, cmd
}

//nolint:cyclop // one case per binding
func (m *CatalogModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keyMap.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keyMap.Search):
		return m, tea.Batch(m.search.Focus(), focusCmd(true))
	case key.Matches(msg, m.keyMap.Details):
		if app, ok := m.Current(); ok {
			return m, Emit(session.ShowDetails{AppID: app.ID})
		}
	case key.Matches(msg, m.keyMap.Request):
		if app, ok := m.Current(); ok && !app.HasAccess {
			return m, Emit(session.BeginRequest{AppID: app.ID})
		}
	case key.Matches(msg, m.keyMap.Category):
		m.toggleCategory(msg.String())
	case key.Matches(msg, m.keyMap.Popular):
		m.query.PopularOnly = !m.query.PopularOnly
		m.resetCursor()
	case key.Matches(msg, m.keyMap.Sort):
		m.query.Sort = m.query.Sort.Next()
		m.resetCursor()
	case key.Matches(msg, m.keyMap.Clear):
		m.ClearFilters()
	}

	return m, nil
}

// ClearFilters drops search text, categories and the popular flag.
func (m *CatalogModel) ClearFilters() {
	m.query = m.query.Cleared()
	m.search.SetValue("")
	m.resetCursor()
}

func (m *CatalogModel) toggleCategory(digit string) {
	index, err := strconv.Atoi(digit)
	categories := domain.Categories()

	if err != nil || index < 1 || index > len(categories) {
		return
	}

	m.query = m.query.ToggleCategory(categories[index-1])
	m.resetCursor()
}

func (m *CatalogModel) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
	m.ensureCursorVisible()
}

func (m *CatalogModel) resetCursor() {
	m.cursor = 0
	m.viewport.GotoTop()
}

func (m *CatalogModel) clampCursor() {
	count := len(m.Visible())
	m.cursor = max(0, min(m.cursor, count-1))
}

func (m *CatalogModel) ensureCursorVisible() {
	switch {
	case m.cursor < m.viewport.YOffset:
		m.viewport.SetYOffset(m.cursor)
	case m.cursor >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func (m *CatalogModel) resize() {
	m.search.Width = max(minDescriptionWidth, m.width-lipgloss.Width(m.search.Prompt)-4)
	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-lipgloss.Height(m.renderHeader())-lipgloss.Height(m.renderFooter()))
}

func (m *CatalogModel) renderHeader() string {
	searchLine := lipgloss.JoinHorizontal(lipgloss.Top,
		m.search.View(),
		"   ",
		m.styles.MutedText.Render("Sort by: "+m.query.Sort.Label()),
	)

	lines := []string{searchLine, m.renderFilterBar()}

	if m.query.IsFiltered() {
		lines = append(lines, m.renderActiveFilters())
	}

	lines = append(lines, m.renderSummary(), "")

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *CatalogModel) renderFilterBar() string {
	parts := make([]string, 0, len(domain.Categories())+1)

	for i, category := range domain.Categories() {
		label := fmt.Sprintf("%d %s", i+1, category)
		if m.query.HasCategory(category) {
			parts = append(parts, m.styles.Selected.Render(label))
		} else {
			parts = append(parts, m.styles.Unselected.Faint(true).Render(label))
		}
	}

	popular := "☐ Popular (4+ stars)"
	if m.query.PopularOnly {
		popular = "☑ Popular (4+ stars)"
	}

	parts = append(parts, m.styles.WarningText.Render(popular))

	return strings.Join(parts, " ")
}

func (m *CatalogModel) renderActiveFilters() string {
	chips := make([]string, 0, len(m.query.Categories)+1)
	for _, category := range m.query.Categories {
		chips = append(chips, m.styles.Chip.Render(string(category)+" ×"))
	}

	if m.query.PopularOnly {
		chips = append(chips, m.styles.Chip.Render("Popular ×"))
	}

	return m.styles.MutedText.Render("Active filters: ") +
		strings.Join(chips, "") +
		m.styles.Keybinding("x", "Clear Filters")
}

// Summary returns the "Showing X of Y apps" line without styling.
func (m *CatalogModel) Summary() string {
	summary := fmt.Sprintf("Showing %d of %d apps", len(m.Visible()), len(m.state.Apps()))

	if len(m.query.Categories) > 0 {
		names := make([]string, 0, len(m.query.Categories))
		for _, category := range m.query.Categories {
			names = append(names, string(category))
		}

		summary += " in " + strings.Join(names, ", ")
	}

	return summary
}

func (m *CatalogModel) renderSummary() string {
	return m.styles.MutedText.Render(m.Summary())
}

func (m *CatalogModel) renderList(apps []domain.App) string {
	if len(apps) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			"",
			m.styles.MutedText.Render(EmptyCatalogText),
			m.styles.Keybinding("x", "Clear Filters"),
		)
	}

	rows := make([]string, 0, len(apps))
	for i, app := range apps {
		rows = append(rows, m.renderRow(app, i == m.cursor))
	}

	return strings.Join(rows, "\n")
}

func (m *CatalogModel) renderRow(app domain.App, current bool) string {
	marker := "  "
	name := stringutil.PadRight(stringutil.Truncate(app.Name, nameColumnWidth), nameColumnWidth)

	if current {
		marker = m.styles.PrimaryText.Render("▸ ")
		name = m.styles.Title.Render(name)
	}

	prefix := strings.Join([]string{
		marker + stringutil.PadRight(app.Icon, 2),
		name,
		m.styles.Stars(app.Rating),
		stringutil.PadRight(string(app.Category), categoryColumnWidth),
		lipgloss.NewStyle().Width(badgeColumnWidth).Render(m.styles.AccessBadge(app.HasAccess)),
	}, " ")

	descWidth := max(minDescriptionWidth, m.width-lipgloss.Width(prefix)-1)

	return prefix + " " + m.styles.MutedText.Render(stringutil.Truncate(app.Description, descWidth))
}

func (m *CatalogModel) renderFooter() string {
	return RenderFooter(m.styles, m.width, m.GetNavigationHints(), true)
}

func focusCmd(focused bool) tea.Cmd {
	return func() tea.Msg {
		return SearchFocusMsg{Focused: focused}
	}
}
