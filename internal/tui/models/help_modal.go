// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/appcatalog/internal/session"
	"github.com/janderssonse/appcatalog/internal/tui/styles"
)

// HelpModal is an overlay listing the keys of the active view.
type HelpModal struct {
	styles   *styles.Styles
	visible  bool
	view     session.View
	sections []HelpModalSection
	width    int
	height   int
	close    key.Binding
}

// HelpModalSection groups related commands.
type HelpModalSection struct {
	Title    string
	Commands []HelpModalCommand
}

// HelpModalCommand represents a single keyboard command.
type HelpModalCommand struct {
	Keys        string
	Description string
}

// NewHelpModal creates a hidden key reference.
func NewHelpModal(styleConfig *styles.Styles) *HelpModal {
	return &HelpModal{
		styles: styleConfig,
		close: key.NewBinding(
			key.WithKeys("?", KeyEsc),
			key.WithHelp("?/esc", "close"),
		),
	}
}

// SetView updates the listed commands for a view.
func (h *HelpModal) SetView(view session.View) {
	h.view = view
	h.sections = commandsForView(view)
}

// Sections returns the commands currently listed.
func (h *HelpModal) Sections() []HelpModalSection {
	return h.sections
}

// Toggle shows or hides the modal.
func (h *HelpModal) Toggle() {
	h.visible = !h.visible
}

// Hide closes the modal.
func (h *HelpModal) Hide() {
	h.visible = false
}

// IsVisible returns whether the modal is shown.
func (h *HelpModal) IsVisible() bool {
	return h.visible
}

// SetSize updates the overlay dimensions.
func (h *HelpModal) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// Update closes the modal on ? or esc.
func (h *HelpModal) Update(msg tea.Msg) tea.Cmd {
	if !h.visible {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, h.close) {
		h.Hide()
	}

	return nil
}

// View renders the modal box, or "" when hidden.
func (h *HelpModal) View() string {
	if !h.visible {
		return ""
	}

	keyStyle := lipgloss.NewStyle().Foreground(h.styles.Warning).Width(15)

	var content strings.Builder

	content.WriteString(h.styles.Title.Render(h.view.Label() + " Keys"))
	content.WriteString("\n")

	for i, section := range h.sections {
		if i > 0 {
			content.WriteString("\n")
		}

		content.WriteString(h.styles.Section.Render(section.Title))
		content.WriteString("\n")

		for _, cmd := range section.Commands {
			content.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render(cmd.Keys), cmd.Description))
		}
	}

	content.WriteString("\n")
	content.WriteString(h.styles.MutedText.Render("Press ? or Esc to close"))

	return h.styles.Modal.Render(content.String())
}

func commandsForView(view session.View) []HelpModalSection {
	general := HelpModalSection{
		Title: "General",
		Commands: []HelpModalCommand{
			{"tab/shift+tab", "Switch tabs"},
			{"?", "Toggle this reference"},
			{"q", "Quit"},
		},
	}

	switch view {
	case session.ViewCatalog:
		return []HelpModalSection{
			{
				Title: "Browse",
				Commands: []HelpModalCommand{
					{"j/k or ↑↓", "Move through apps"},
					{"/", "Search by name, function or department"},
					{"1-7", "Toggle a category"},
					{"p", "Popular apps only"},
					{"s", "Cycle sort order"},
					{"x", "Clear filters"},
				},
			},
			{
				Title: "Actions",
				Commands: []HelpModalCommand{
					{"Enter", "View details"},
					{"r", "Request access"},
				},
			},
			general,
		}

	case session.ViewAppDetail:
		return []HelpModalSection{
			{
				Title: "Actions",
				Commands: []HelpModalCommand{
					{"r/Enter", "Request access"},
					{"j/k", "Scroll"},
					{"Esc/b", "Back to catalog"},
				},
			},
			general,
		}

	case session.ViewMyApps, session.ViewRequests:
		return []HelpModalSection{
			{
				Title: "Dashboard",
				Commands: []HelpModalCommand{
					{"j/k or ↑↓", "Move through apps"},
					{"Enter", "View details"},
					{"r", "Request access"},
					{"s", "Switch role"},
				},
			},
			general,
		}

	default:
		return []HelpModalSection{
			{
				Title: "Help",
				Commands: []HelpModalCommand{
					{"h/l or ←→", "Switch sections"},
					{"j/k", "Scroll"},
					{"g/G", "Go to top/bottom"},
				},
			},
			general,
		}
	}
}
