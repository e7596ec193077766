// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/appcatalog/internal/domain"
	"github.com/janderssonse/appcatalog/internal/session"
	"github.com/janderssonse/appcatalog/internal/tui/styles"
)

// RenderNavbar draws the brand, the navigation tabs and the active role.
// The detail view highlights the Catalog tab.
func RenderNavbar(styleConfig *styles.Styles, width int, active session.View, role domain.Role) string {
	highlighted := active.Tab()

	tabs := make([]string, 0, len(session.Tabs()))
	for _, tab := range session.Tabs() {
		style := styleConfig.Unselected
		if tab == highlighted {
			style = styleConfig.Selected
		}

		tabs = append(tabs, style.Render(tab.Label()))
	}

	left := lipgloss.JoinHorizontal(lipgloss.Center, styleConfig.Brand(), "   ", lipgloss.JoinHorizontal(lipgloss.Center, tabs...))
	right := styleConfig.MutedText.Render("Role: ") + styleConfig.PrimaryText.Render(string(role))

	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(right)-4)
	bar := left + lipgloss.NewStyle().Width(gap).Render("") + right

	header := styleConfig.Header
	if width > 0 {
		header = header.Width(width)
	}

	return header.Render(bar)
}
