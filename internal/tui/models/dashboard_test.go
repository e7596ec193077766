// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janderssonse/appcatalog/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardContent(t *testing.T) {
	t.Parallel()

	model := NewDashboard(testStyles(), newTestSession(t))
	tallWindow(model)

	view := plain(model.View())

	for _, want := range []string{
		"My Dashboard",
		"Welcome back! Here's your app overview.",
		"Current Role: General",
		"[s] Switch to Engineering Role",
		"My Apps (5)",
		"Slack",
		"Pending Requests (3)",
		"Requested on Dec 10, 2024",
		"⏳ Pending",
		"Approved",
		"Recommended for You - General Role",
		"QuickBooks",
		"Adobe Creative Suite",
	} {
		assert.Contains(t, view, want)
	}
}

func TestDashboardSameForBothViews(t *testing.T) {
	t.Parallel()

	state := newTestSession(t)
	model := NewDashboard(testStyles(), state)
	tallWindow(model)

	require.NoError(t, state.Navigate(session.ViewMyApps))
	myApps := model.View()

	require.NoError(t, state.Navigate(session.ViewRequests))
	requests := model.View()

	assert.Equal(t, myApps, requests)
}

func TestDashboardAfterRoleSwitch(t *testing.T) {
	t.Parallel()

	state := newTestSession(t)
	model := NewDashboard(testStyles(), state)
	tallWindow(model)

	_, cmd := model.Update(runes("s"))
	assert.Equal(t, session.ToggleRole{}, intentOf(t, cmd))

	require.NoError(t, state.Dispatch(session.ToggleRole{}))
	model.Update(SyncMsg{})

	view := plain(model.View())
	assert.Contains(t, view, "Current Role: Engineering")
	assert.Contains(t, view, "My Apps (7)")
	assert.Contains(t, view, "Recommended for You - Engineering Role")
	assert.Contains(t, view, "[s] Switch to General Role")
}

func TestDashboardCursorWalksMyAppsThenRecommended(t *testing.T) {
	t.Parallel()

	model := NewDashboard(testStyles(), newTestSession(t))

	current, ok := model.Current()
	require.True(t, ok)
	assert.Equal(t, "Slack", current.Name)

	_, cmd := model.Update(runes("r"))
	assert.Nil(t, cmd)

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, session.ShowDetails{AppID: "1"}, intentOf(t, cmd))

	for range 5 {
		model.Update(runes("j"))
	}

	current, ok = model.Current()
	require.True(t, ok)
	assert.Equal(t, "Jira", current.Name)

	_, cmd = model.Update(runes("r"))
	assert.Equal(t, session.BeginRequest{AppID: "2"}, intentOf(t, cmd))

	for range 10 {
		model.Update(runes("j"))
	}

	current, ok = model.Current()
	require.True(t, ok)
	assert.Equal(t, "Adobe Creative Suite", current.Name)
}

func TestDashboardEmptyStates(t *testing.T) {
	t.Parallel()

	state := session.New(emptySeed())
	model := NewDashboard(testStyles(), state)
	tallWindow(model)

	_, ok := model.Current()
	assert.False(t, ok)

	view := plain(model.View())
	assert.Contains(t, view, "You don't have access to any apps yet.")
	assert.Contains(t, view, "No pending requests.")
}
