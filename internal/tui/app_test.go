// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"bytes"
	"context"
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/janderssonse/appcatalog/internal/catalog"
	"github.com/janderssonse/appcatalog/internal/domain"
	"github.com/janderssonse/appcatalog/internal/logging"
	"github.com/janderssonse/appcatalog/internal/session"
	"github.com/janderssonse/appcatalog/internal/tui/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.December, 12, 9, 30, 0, 0, time.UTC) //nolint:gochecknoglobals

func newTestApp(t *testing.T) *App {
	t.Helper()

	app := NewApp(Options{
		Seed:  catalog.DefaultSeed(),
		Clock: func() time.Time { return fixedNow },
	})
	app.Update(tea.WindowSizeMsg{Width: 140, Height: 60})

	return app
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and applies the intent the active screen raises, if any.
func press(t *testing.T, app *App, msg tea.KeyMsg) {
	t.Helper()

	_, cmd := app.Update(msg)
	if cmd == nil {
		return
	}

	if intent, ok := cmd().(models.IntentMsg); ok {
		app.Update(intent)
	}
}

// settle runs cmd and every command it leads to, feeding the messages back
// into the app the way a running program would. Commands that don't return
// promptly, like toast timers, are dropped.
func settle(t *testing.T, app *App, cmd tea.Cmd) {
	t.Helper()

	cmdType := reflect.TypeOf(tea.Cmd(nil))
	queue := []tea.Cmd{cmd}

	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 200, "commands did not settle")

		next := queue[0]
		queue = queue[1:]

		if next == nil {
			continue
		}

		msg, ok := runWithTimeout(next, 100*time.Millisecond)
		if !ok || msg == nil {
			continue
		}

		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)

			continue
		}

		if value := reflect.ValueOf(msg); value.Kind() == reflect.Slice && value.Type().Elem() == cmdType {
			for i := range value.Len() {
				queue = append(queue, value.Index(i).Interface().(tea.Cmd))
			}

			continue
		}

		_, follow := app.Update(msg)
		queue = append(queue, follow)
	}
}

func runWithTimeout(cmd tea.Cmd, timeout time.Duration) (tea.Msg, bool) {
	done := make(chan tea.Msg, 1)

	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		return msg, true
	case <-time.After(timeout):
		return nil, false
	}
}

func screenText(app *App) string {
	return ansi.Strip(app.View())
}

func TestNewAppStartsOnCatalog(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	assert.Equal(t, session.ViewCatalog, app.Session().View())
	assert.IsType(t, &models.CatalogModel{}, app.Screen())
	assert.Nil(t, app.Modal())

	view := screenText(app)
	assert.Contains(t, view, "Employee App Catalog")
	assert.Contains(t, view, "Role: General")
	assert.Contains(t, view, "Showing 12 of 12 apps")
}

func TestTabNavigation(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	want := []session.View{session.ViewMyApps, session.ViewRequests, session.ViewHelp, session.ViewCatalog}
	for _, view := range want {
		_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyTab})
		require.NotNil(t, cmd)
		assert.Equal(t, view, app.Session().View())
	}

	app.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, session.ViewHelp, app.Session().View())
	assert.IsType(t, &models.Help{}, app.Screen())

	app.Update(runes("L"))
	assert.Equal(t, session.ViewCatalog, app.Session().View())
}

func TestDashboardViewsShareModel(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	myApps := app.Screen()
	myAppsView := screenText(app)

	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Same(t, myApps, app.Screen())
	assert.Contains(t, myAppsView, "My Dashboard")
	assert.Contains(t, screenText(app), "My Dashboard")
}

func TestDetailAndBack(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, session.ViewAppDetail, app.Session().View())

	selected, ok := app.Session().Selected()
	require.True(t, ok)
	assert.Equal(t, "Salesforce", selected.Name)
	assert.Contains(t, screenText(app), "✅ You have access")

	press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, session.ViewCatalog, app.Session().View())
}

func TestRequestFlow(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	press(t, app, runes("j"))
	press(t, app, runes("r"))

	require.True(t, app.Session().IsConfirming())
	require.NotNil(t, app.Modal())
	assert.Equal(t, "Figma", app.Modal().App().Name)
	assert.Contains(t, screenText(app), models.RequestModalTitle)

	press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, app.Session().IsConfirming())
	assert.Nil(t, app.Modal())
	assert.Equal(t, session.ViewCatalog, app.Session().View())
	assert.Len(t, app.Session().Requests(), 3)

	press(t, app, runes("r"))
	require.NotNil(t, app.Modal())

	app.Update(models.IntentMsg{Intent: session.Confirm{}})

	assert.Nil(t, app.Modal())
	assert.Equal(t, session.ViewMyApps, app.Session().View())

	requests := app.Session().Requests()
	require.Len(t, requests, 4)
	assert.Equal(t, domain.PendingRequest{
		ID:          "req-1733995800000",
		AppName:     "Figma",
		AppIcon:     "🎨",
		RequestDate: "Dec 12, 2024",
		Status:      domain.StatusPending,
	}, requests[0])

	assert.True(t, app.Toast().IsVisible())

	view := screenText(app)
	assert.Contains(t, view, "Access request submitted for Figma")
	assert.Contains(t, view, "Pending Requests (4)")
}

func TestRequestConfirmedWithKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys []tea.KeyMsg
	}{
		{name: "toggle then enter", keys: []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyEnter}}},
		{name: "accept shortcut", keys: []tea.KeyMsg{runes("y")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := newTestApp(t)

			press(t, app, runes("j"))
			press(t, app, runes("r"))
			require.NotNil(t, app.Modal())

			for _, key := range tt.keys {
				_, cmd := app.Update(key)
				settle(t, app, cmd)
			}

			assert.Nil(t, app.Modal())
			assert.False(t, app.Session().IsConfirming())
			assert.Equal(t, session.ViewMyApps, app.Session().View())

			requests := app.Session().Requests()
			require.Len(t, requests, 4)
			assert.Equal(t, "Figma", requests[0].AppName)
		})
	}
}

func TestRequestDeclinedWithKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys []tea.KeyMsg
	}{
		{name: "enter on default", keys: []tea.KeyMsg{{Type: tea.KeyEnter}}},
		{name: "reject shortcut", keys: []tea.KeyMsg{runes("n")}},
		{name: "toggle twice", keys: []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyRight}, {Type: tea.KeyEnter}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := newTestApp(t)

			press(t, app, runes("j"))
			press(t, app, runes("r"))
			require.NotNil(t, app.Modal())

			for _, key := range tt.keys {
				_, cmd := app.Update(key)
				settle(t, app, cmd)
			}

			assert.Nil(t, app.Modal())
			assert.False(t, app.Session().IsConfirming())
			assert.Equal(t, session.ViewCatalog, app.Session().View())
			assert.Len(t, app.Session().Requests(), 3)
		})
	}
}

func TestModalCapturesKeys(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	press(t, app, runes("j"))
	press(t, app, runes("r"))
	require.NotNil(t, app.Modal())

	app.Update(runes("q"))
	app.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.NotEqual(t, models.GoodbyeMessage, app.View())
	assert.Equal(t, session.ViewCatalog, app.Session().View())
}

func TestCatalogFiltersResetAfterLeaving(t *testing.T) {
	t.Parallel()

	catalogScreen := func(t *testing.T, app *App) *models.CatalogModel {
		t.Helper()

		model, ok := app.Screen().(*models.CatalogModel)
		require.True(t, ok)

		return model
	}

	t.Run("tab round trip", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(t)

		press(t, app, runes("p"))
		press(t, app, runes("1"))

		query := catalogScreen(t, app).Query()
		require.True(t, query.PopularOnly)
		require.Len(t, query.Categories, 1)
		require.NotContains(t, screenText(app), "Showing 12 of 12 apps")

		for range session.Tabs() {
			app.Update(tea.KeyMsg{Type: tea.KeyTab})
		}

		require.Equal(t, session.ViewCatalog, app.Session().View())
		assert.Equal(t, catalog.Query{Sort: catalog.SortPopularity}, catalogScreen(t, app).Query())
		assert.Contains(t, screenText(app), "Showing 12 of 12 apps")
	})

	t.Run("details and back", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(t)

		press(t, app, runes("p"))
		press(t, app, runes("j"))
		press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
		require.Equal(t, session.ViewAppDetail, app.Session().View())

		press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
		require.Equal(t, session.ViewCatalog, app.Session().View())

		assert.Equal(t, catalog.Query{Sort: catalog.SortPopularity}, catalogScreen(t, app).Query())
		assert.Equal(t, "Salesforce", catalogScreen(t, app).Visible()[0].Name)
	})
}

func TestChangeViewAcceptsAnyCase(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	assert.NotPanics(t, func() {
		app.Update(models.IntentMsg{Intent: session.ChangeView{View: "MY-APPS"}})
	})

	assert.Equal(t, session.ViewMyApps, app.Session().View())
	assert.IsType(t, &models.DashboardModel{}, app.Screen())
	assert.Contains(t, screenText(app), "My Dashboard")
}

func TestRoleSwitchFromDashboard(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	press(t, app, runes("s"))

	assert.Equal(t, domain.RoleEngineering, app.Session().Role())

	view := screenText(app)
	assert.Contains(t, view, "Role: Engineering")
	assert.Contains(t, view, "My Apps (7)")
	assert.Contains(t, view, "Switched to Engineering role")
}

func TestHelpModalToggle(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	app.Update(runes("?"))
	assert.True(t, app.HelpModal().IsVisible())
	assert.Contains(t, screenText(app), "Catalog Keys")

	app.Update(runes("q"))
	assert.True(t, app.HelpModal().IsVisible())
	assert.NotEqual(t, models.GoodbyeMessage, app.View())

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, app.HelpModal().IsVisible())
}

func TestSearchSwallowsGlobalKeys(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	app.Update(runes("/"))
	app.Update(models.SearchFocusMsg{Focused: true})

	app.Update(runes("q"))
	app.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, session.ViewCatalog, app.Session().View())
	assert.NotEqual(t, models.GoodbyeMessage, app.View())

	catalogModel, ok := app.Screen().(*models.CatalogModel)
	require.True(t, ok)
	assert.Equal(t, "q", catalogModel.Query().Text)
}

func TestQuit(t *testing.T) {
	t.Parallel()

	for _, key := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		app := newTestApp(t)

		_, cmd := app.Update(key)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.Equal(t, models.GoodbyeMessage, app.View())
	}
}

func TestRejectedIntentIsLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	app := NewApp(Options{
		Seed:   catalog.DefaultSeed(),
		Logger: logging.NewWithWriter(&buf, logrus.DebugLevel),
	})

	app.Update(models.IntentMsg{Intent: session.ShowDetails{AppID: "404"}})

	assert.Equal(t, session.ViewCatalog, app.Session().View())
	assert.Contains(t, buf.String(), "intent rejected")
	assert.Contains(t, buf.String(), "unknown app")
}

func TestCustomTechnicalApps(t *testing.T) {
	t.Parallel()

	app := NewApp(Options{
		Seed:          catalog.DefaultSeed(),
		TechnicalApps: []string{"Tableau"},
	})

	app.Update(models.IntentMsg{Intent: session.ToggleRole{}})

	tableau, ok := app.Session().App("12")
	require.True(t, ok)
	assert.True(t, tableau.HasAccess)

	jira, ok := app.Session().App("2")
	require.True(t, ok)
	assert.False(t, jira.HasAccess)
}

func TestLaunchWithoutTerminal(t *testing.T) {
	t.Parallel()

	err := Launch(context.Background(), Options{Seed: catalog.DefaultSeed()})
	require.ErrorIs(t, err, ErrNoTerminal)
}
