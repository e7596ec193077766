// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package tui hosts the interactive catalog: a root model that owns the
// session and routes input to cached screen models.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/appcatalog/internal/catalog"
	"github.com/janderssonse/appcatalog/internal/console"
	"github.com/janderssonse/appcatalog/internal/logging"
	"github.com/janderssonse/appcatalog/internal/session"
	"github.com/janderssonse/appcatalog/internal/tui/models"
	"github.com/janderssonse/appcatalog/internal/tui/styles"
	"github.com/sirupsen/logrus"
)

// ErrNoTerminal is returned when the TUI is launched in a non-terminal environment.
var ErrNoTerminal = errors.New("TUI requires a terminal environment")

// Options configures the interactive catalog.
type Options struct {
	Seed          catalog.Seed
	Sort          catalog.SortKey
	TechnicalApps []string
	Logger        logrus.FieldLogger
	Clock         func() time.Time
}

// App is the root model. It is the only place the session is mutated.
type App struct {
	width  int
	height int
	styles *styles.Styles

	session *session.Session
	screens map[session.View]tea.Model // my-apps and requests share one model

	modal     *models.RequestModal
	helpModal *models.HelpModal
	toast     *models.Toast

	searchFocused bool
	quitting      bool
	log           logrus.FieldLogger
}

// NewApp creates the root model with a fresh session over opts.Seed.
func NewApp(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	sort := opts.Sort
	if sort == "" {
		sort = catalog.SortPopularity
	}

	styleConfig := styles.New()
	toast := models.NewToast(styleConfig)

	state := session.New(opts.Seed,
		session.WithNotifier(toast),
		session.WithTechnicalApps(opts.TechnicalApps),
		session.WithLogger(log),
		session.WithClock(opts.Clock),
	)

	dashboard := models.NewDashboard(styleConfig, state)

	app := &App{
		styles:  styleConfig,
		session: state,
		screens: map[session.View]tea.Model{
			session.ViewCatalog:   models.NewCatalog(styleConfig, state, sort),
			session.ViewAppDetail: models.NewDetail(styleConfig, state),
			session.ViewMyApps:    dashboard,
			session.ViewRequests:  dashboard,
			session.ViewHelp:      models.NewHelp(styleConfig),
		},
		helpModal: models.NewHelpModal(styleConfig),
		toast:     toast,
		log:       log,
	}
	app.helpModal.SetView(state.View())

	return app
}

// Run starts the TUI application with the provided context.
func (a *App) Run(ctx context.Context) error {
	program := tea.NewProgram(
		a,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI application failed: %w", err)
	}

	return nil
}

// Launch starts the interactive catalog when stdout is a terminal.
func Launch(ctx context.Context, opts Options) error {
	if !console.IsTTY(os.Stdout.Fd()) {
		return fmt.Errorf("terminal check failed: %w", ErrNoTerminal)
	}

	return NewApp(opts).Run(ctx)
}

// Init implements the tea.Model interface.
func (a *App) Init() tea.Cmd {
	return a.screen().Init()
}

// Update implements the tea.Model interface.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a, a.handleWindowSize(msg)
	case models.IntentMsg:
		return a, a.apply(msg.Intent)
	case models.SearchFocusMsg:
		a.searchFocused = msg.Focused

		return a, nil
	case models.ToastExpiredMsg:
		a.toast.Update(msg)

		return a, nil
	case tea.KeyMsg:
		return a.handleKeyMessage(msg)
	}

	if a.modal != nil {
		_, cmd := a.modal.Update(msg)

		return a, cmd
	}

	_, cmd := a.screen().Update(msg)

	return a, cmd
}

// View implements the tea.Model interface.
func (a *App) View() string {
	if a.quitting {
		return models.GoodbyeMessage
	}

	navbar := models.RenderNavbar(a.styles, a.width, a.session.View(), a.session.Role())

	var content string

	switch {
	case a.helpModal.IsVisible():
		content = a.overlay(a.helpModal.View())
	case a.modal != nil:
		content = a.overlay(a.modal.View())
	default:
		content = a.screen().View()
	}

	components := []string{navbar, content}

	if a.toast.IsVisible() {
		components = append(components, lipgloss.PlaceHorizontal(a.width, lipgloss.Right, a.toast.View()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, components...)
}

// Session returns the session the app drives.
func (a *App) Session() *session.Session {
	return a.session
}

// Screen returns the model rendering the active view.
func (a *App) Screen() tea.Model {
	return a.screen()
}

// Modal returns the open request confirmation, or nil.
func (a *App) Modal() *models.RequestModal {
	return a.modal
}

// HelpModal returns the key reference overlay.
func (a *App) HelpModal() *models.HelpModal {
	return a.helpModal
}

// Toast returns the notification surface.
func (a *App) Toast() *models.Toast {
	return a.toast
}

func (a *App) screen() tea.Model {
	return a.screens[a.session.View()]
}

// uniqueScreens lists each cached model once.
func (a *App) uniqueScreens() []tea.Model {
	result := make([]tea.Model, 0, len(a.screens))

	for _, view := range session.Views() {
		model := a.screens[view]
		if model != nil && !slices.Contains(result, model) {
			result = append(result, model)
		}
	}

	return result
}

func (a *App) handleWindowSize(msg tea.WindowSizeMsg) tea.Cmd {
	a.width = msg.Width
	a.height = msg.Height
	a.helpModal.SetSize(msg.Width, msg.Height)

	sized := tea.WindowSizeMsg{Width: msg.Width, Height: a.contentHeight()}
	cmds := make([]tea.Cmd, 0, len(a.screens))

	for _, model := range a.uniqueScreens() {
		_, cmd := model.Update(sized)
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

// contentHeight is the space left below the navigation bar.
func (a *App) contentHeight() int {
	navbar := models.RenderNavbar(a.styles, a.width, a.session.View(), a.session.Role())

	return max(1, a.height-lipgloss.Height(navbar))
}

// apply dispatches an intent and brings the overlays and screens in line
// with the resulting session state.
func (a *App) apply(intent session.Intent) tea.Cmd {
	if err := a.session.Dispatch(intent); err != nil {
		a.log.WithError(err).WithField("intent", fmt.Sprintf("%T", intent)).Warn("intent rejected")
	}

	cmds := []tea.Cmd{a.toast.Cmd(), a.syncModal()}

	a.helpModal.SetView(a.session.View())

	if a.session.View() != session.ViewCatalog {
		a.searchFocused = false
	}

	for _, model := range a.uniqueScreens() {
		_, cmd := model.Update(models.SyncMsg{})
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

// syncModal opens or closes the confirmation to match the session.
func (a *App) syncModal() tea.Cmd {
	if !a.session.IsConfirming() {
		a.modal = nil

		return nil
	}

	selected, ok := a.session.Selected()
	if !ok {
		a.modal = nil

		return nil
	}

	if a.modal != nil && a.modal.App().ID == selected.ID {
		return nil
	}

	a.modal = models.NewRequestModal(a.styles, selected)

	return a.modal.Init()
}

func (a *App) handleKeyMessage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == models.KeyCtrlC {
		return a.quit()
	}

	if a.modal != nil {
		_, cmd := a.modal.Update(msg)

		return a, cmd
	}

	if a.helpModal.IsVisible() {
		return a, a.helpModal.Update(msg)
	}

	if a.searchFocused {
		_, cmd := a.screen().Update(msg)

		return a, cmd
	}

	switch msg.String() {
	case "q":
		return a.quit()
	case "?":
		a.helpModal.SetView(a.session.View())
		a.helpModal.Toggle()

		return a, nil
	case "tab", "shift+l", "L":
		return a, a.apply(session.ChangeView{View: a.adjacentTab(1)})
	case "shift+tab", "shift+h", "H":
		return a, a.apply(session.ChangeView{View: a.adjacentTab(-1)})
	}

	_, cmd := a.screen().Update(msg)

	return a, cmd
}

// adjacentTab returns the navigation tab direction steps away from the
// highlighted one, wrapping around.
func (a *App) adjacentTab(direction int) session.View {
	tabs := session.Tabs()
	current := slices.Index(tabs, a.session.View().Tab())

	return tabs[(current+direction+len(tabs))%len(tabs)]
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	a.quitting = true

	return a, tea.Quit
}

// overlay centers a box over the content area.
func (a *App) overlay(box string) string {
	width := max(a.width, lipgloss.Width(box))
	height := max(a.contentHeight(), lipgloss.Height(box))

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceBackground(lipgloss.Color("235")),
	)
}
