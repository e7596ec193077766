// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package session

import (
	"fmt"
	"strings"

	"github.com/janderssonse/appcatalog/internal/domain"
)

// View identifies a top-level screen.
type View string

// Views. MyApps and Requests both render the dashboard.
const (
	ViewCatalog   View = "catalog"
	ViewMyApps    View = "my-apps"
	ViewRequests  View = "requests"
	ViewHelp      View = "help"
	ViewAppDetail View = "app-detail"
)

// Views returns every view identifier.
func Views() []View {
	return []View{ViewCatalog, ViewMyApps, ViewRequests, ViewHelp, ViewAppDetail}
}

// Tabs returns the views reachable from the navigation bar, in order.
func Tabs() []View {
	return []View{ViewCatalog, ViewMyApps, ViewRequests, ViewHelp}
}

// IsDashboard reports whether v renders the dashboard.
func (v View) IsDashboard() bool {
	return v == ViewMyApps || v == ViewRequests
}

// Tab returns the navigation tab highlighted while v is active.
func (v View) Tab() View {
	if v == ViewAppDetail {
		return ViewCatalog
	}

	return v
}

// Label returns the navigation label for v.
func (v View) Label() string {
	switch v {
	case ViewCatalog:
		return "Catalog"
	case ViewMyApps:
		return "My Apps"
	case ViewRequests:
		return "Requests"
	case ViewHelp:
		return "Help"
	case ViewAppDetail:
		return "App Details"
	default:
		return string(v)
	}
}

// ParseView resolves a view identifier.
func ParseView(name string) (View, error) {
	view := View(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Views() {
		if view == known {
			return view, nil
		}
	}

	return "", fmt.Errorf("%w: %q", domain.ErrUnknownView, name)
}
