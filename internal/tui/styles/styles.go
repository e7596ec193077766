// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package styles defines consistent visual styling for TUI components.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/appcatalog/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Glyphs used across screens.
const (
	StarFilled = "★"
	StarEmpty  = "☆"
)

// Styles contains all the styles used in the TUI.
type Styles struct {
	// Color palette
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color
	Muted     lipgloss.Color

	// Component styles
	Header     lipgloss.Style
	Footer     lipgloss.Style
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Section    lipgloss.Style
	Card       lipgloss.Style
	Modal      lipgloss.Style
	Toast      lipgloss.Style
	Chip       lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style

	// Text styles (cached for performance)
	MutedText   lipgloss.Style
	PrimaryText lipgloss.Style
	SuccessText lipgloss.Style
	ErrorText   lipgloss.Style
	WarningText lipgloss.Style
	StarText    lipgloss.Style

	// Layout styles
	Container lipgloss.Style
	Content   lipgloss.Style

	titleCase cases.Caser
}

// New creates a new Styles instance with the default Tokyo Night palette.
func New() *Styles {
	primary := lipgloss.Color("#7aa2f7")    // Blue
	secondary := lipgloss.Color("#bb9af7")  // Purple
	success := lipgloss.Color("#9ece6a")    // Green
	warning := lipgloss.Color("#e0af68")    // Yellow
	errorColor := lipgloss.Color("#f7768e") // Red
	info := lipgloss.Color("#7dcfff")       // Cyan
	muted := lipgloss.Color("#565f89")      // Gray

	background := lipgloss.Color("#1a1b26")
	foreground := lipgloss.Color("#c0caf5")

	return &Styles{
		Primary:   primary,
		Secondary: secondary,
		Success:   success,
		Warning:   warning,
		Error:     errorColor,
		Info:      info,
		Muted:     muted,

		Header: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder(), false, false, true, false).
			BorderForeground(primary),

		Footer: lipgloss.NewStyle().
			Background(muted).
			Foreground(foreground).
			Padding(0, 1).
			MarginTop(1),

		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(secondary).
			Italic(true),

		Section: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true).
			MarginTop(1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(60),

		Toast: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(success).
			Padding(0, 1),

		Chip: lipgloss.NewStyle().
			Foreground(background).
			Background(secondary).
			Padding(0, 1).
			MarginRight(1),

		Selected: lipgloss.NewStyle().
			Background(primary).
			Foreground(background).
			Padding(0, 1),

		Unselected: lipgloss.NewStyle().
			Foreground(foreground).
			Padding(0, 1),

		MutedText:   lipgloss.NewStyle().Foreground(muted),
		PrimaryText: lipgloss.NewStyle().Foreground(primary),
		SuccessText: lipgloss.NewStyle().Foreground(success),
		ErrorText:   lipgloss.NewStyle().Foreground(errorColor),
		WarningText: lipgloss.NewStyle().Foreground(warning),
		StarText:    lipgloss.NewStyle().Foreground(warning),

		Container: lipgloss.NewStyle().Padding(1, 2),
		Content:   lipgloss.NewStyle().Padding(0, 1),

		titleCase: cases.Title(language.English),
	}
}

// Brand returns the styled product name for the navigation bar.
func (s *Styles) Brand() string {
	return s.Title.Render("🏢 Employee App Catalog")
}

// Stars renders a rating as five filled or empty stars.
func (s *Styles) Stars(rating int) string {
	rating = max(domain.MinRating, min(rating, domain.MaxRating))

	return s.StarText.Render(strings.Repeat(StarFilled, rating)) +
		s.MutedText.Render(strings.Repeat(StarEmpty, domain.MaxRating-rating))
}

// AccessBadge renders whether the session can use an app.
func (s *Styles) AccessBadge(hasAccess bool) string {
	if hasAccess {
		return s.SuccessText.Render("✅ Have Access")
	}

	return s.PrimaryText.Render("🔒 Request Access")
}

// StatusIcon returns the styled icon for a request status.
func (s *Styles) StatusIcon(status domain.RequestStatus) string {
	switch status {
	case domain.StatusApproved:
		return s.SuccessText.Render("✓")
	case domain.StatusRejected:
		return s.ErrorText.Render("✗")
	case domain.StatusPending:
		return s.WarningText.Render("◷")
	default:
		return s.MutedText.Render("•")
	}
}

// StatusBadge returns the styled label for a request status.
func (s *Styles) StatusBadge(status domain.RequestStatus) string {
	label := s.titleCase.String(string(status))

	switch status {
	case domain.StatusApproved:
		return s.SuccessText.Render(label)
	case domain.StatusRejected:
		return s.ErrorText.Render(label)
	default:
		return s.WarningText.Render("⏳ " + label)
	}
}

// Keybinding returns styled keybinding text.
func (s *Styles) Keybinding(key, desc string) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(s.Primary).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(s.Muted)

	return keyStyle.Render("["+key+"]") + " " + descStyle.Render(desc)
}
