// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/janderssonse/appcatalog/internal/catalog"
	"github.com/janderssonse/appcatalog/internal/domain"
	"github.com/janderssonse/appcatalog/internal/session"
)

// ErrRequestDeclined is returned by a ConfirmFunc when the user says no.
var ErrRequestDeclined = errors.New("request declined")

// ConfirmFunc asks the user to confirm an access request for app.
type ConfirmFunc func(app domain.App) (bool, error)

// CatalogHandler runs the catalog commands against one session.
type CatalogHandler struct {
	*BaseHandler

	Session *session.Session
}

// NewCatalogHandler creates a handler over state.
func NewCatalogHandler(base *BaseHandler, state *session.Session) *CatalogHandler {
	return &CatalogHandler{BaseHandler: base, Session: state}
}

// List prints the apps matching query.
func (h *CatalogHandler) List(query catalog.Query) (domain.ListResult, error) {
	apps := catalog.Apply(h.Session.Apps(), query)

	result := domain.ListResult{
		Apps:     apps,
		Shown:    len(apps),
		Total:    len(h.Session.Apps()),
		Query:    query.Text,
		SortedBy: string(query.Sort),
	}

	output := h.GetOutput()

	if h.JSON {
		return result, output.Success("", result)
	}

	if len(apps) == 0 {
		return result, output.Info(catalog.NoMatchesMessage)
	}

	rows := make([][]string, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, []string{app.ID, app.Name, string(app.Category), h.rating(app.Rating), accessLabel(app.HasAccess)})
	}

	if err := output.Table([]string{"ID", "NAME", "CATEGORY", "RATING", "ACCESS"}, rows); err != nil {
		return result, fmt.Errorf("failed to write app table: %w", err)
	}

	if h.decorated() {
		return result, output.Info(fmt.Sprintf("\nShowing %d of %d apps", result.Shown, result.Total))
	}

	return result, nil
}

// Show prints one app, looked up by ID or name.
func (h *CatalogHandler) Show(ref string) (domain.App, error) {
	app, ok := h.Session.FindApp(ref)
	if !ok {
		return domain.App{}, fmt.Errorf("%w: %q", domain.ErrUnknownApp, ref)
	}

	output := h.GetOutput()

	switch {
	case h.JSON:
		return app, output.Success("", app)
	case h.Plain:
		return app, output.Table(nil, [][]string{{
			app.ID, app.Name, string(app.Category), strconv.Itoa(app.Rating), accessLabel(app.HasAccess), app.Description,
		}})
	}

	access := "🔒 Request Access"
	if app.HasAccess {
		access = "✅ Have Access"
	}

	lines := []string{
		app.Icon + " " + app.Name,
		"Category: " + string(app.Category),
		fmt.Sprintf("Rating:   %s (%d/%d)", stars(app.Rating), app.Rating, domain.MaxRating),
		"Access:   " + access,
		"",
		app.Description,
	}

	if app.Features != nil {
		lines = append(lines, "", "Key Features:")
		for _, feature := range app.Features {
			lines = append(lines, "  ✓ "+feature)
		}
	}

	if app.AccessRequirements != nil {
		lines = append(lines, "", "Access Requirements:")
		for _, requirement := range app.AccessRequirements {
			lines = append(lines, "  • "+requirement)
		}
	}

	for _, line := range lines {
		if err := output.Info(line); err != nil {
			return app, err
		}
	}

	return app, nil
}

// Request submits an access request for the app named by ref. A nil
// confirm submits without asking. Apps already granted are reported and
// left alone. The bool result reports whether a request was submitted.
func (h *CatalogHandler) Request(ref string, confirm ConfirmFunc) (domain.RequestResult, bool, error) {
	app, ok := h.Session.FindApp(ref)
	if !ok {
		return domain.RequestResult{}, false, fmt.Errorf("%w: %q", domain.ErrUnknownApp, ref)
	}

	output := h.GetOutput()

	if app.HasAccess {
		return domain.RequestResult{}, false, output.Info("You already have access to " + app.Name)
	}

	if confirm != nil {
		confirmed, err := confirm(app)
		if err != nil && !errors.Is(err, ErrRequestDeclined) {
			return domain.RequestResult{}, false, err
		}

		if !confirmed {
			return domain.RequestResult{}, false, output.Info("Request cancelled")
		}
	}

	if err := h.Session.RequestAccess(app.ID); err != nil {
		return domain.RequestResult{}, false, err
	}

	request, _ := h.Session.ConfirmRequest()
	result := domain.RequestResult{Request: request, Requests: h.Session.Requests()}

	if h.JSON {
		return result, true, output.Success("", result)
	}

	if h.Plain {
		return result, true, output.Table(nil, [][]string{requestRow(request)})
	}

	return result, true, output.Success(fmt.Sprintf("Request %s for %s is %s (requested %s)",
		request.ID, request.AppName, request.Status, request.RequestDate), nil)
}

// Dashboard prints the session overview for role.
func (h *CatalogHandler) Dashboard(role domain.Role) (domain.DashboardResult, error) {
	if h.Session.Role() != role {
		h.Session.SwitchRole()
	}

	dashboard := h.Session.Dashboard()
	output := h.GetOutput()

	if h.JSON {
		return dashboard, output.Success("", dashboard)
	}

	appRows := func(apps []domain.App) [][]string {
		rows := make([][]string, 0, len(apps))
		for _, app := range apps {
			rows = append(rows, []string{app.ID, app.Name, string(app.Category), h.rating(app.Rating)})
		}

		return rows
	}

	requestRows := make([][]string, 0, len(dashboard.Requests))
	for _, request := range dashboard.Requests {
		requestRows = append(requestRows, requestRow(request))
	}

	sections := []struct {
		title   string
		headers []string
		rows    [][]string
		empty   string
	}{
		{
			title:   fmt.Sprintf("My Apps (%d)", len(dashboard.MyApps)),
			headers: []string{"ID", "NAME", "CATEGORY", "RATING"},
			rows:    appRows(dashboard.MyApps),
			empty:   "You don't have access to any apps yet.",
		},
		{
			title:   fmt.Sprintf("Pending Requests (%d)", len(dashboard.Requests)),
			headers: []string{"ID", "APP", "REQUESTED", "STATUS"},
			rows:    requestRows,
			empty:   "No pending requests.",
		},
		{
			title:   fmt.Sprintf("Recommended for You - %s Role", dashboard.Role),
			headers: []string{"ID", "NAME", "CATEGORY", "RATING"},
			rows:    appRows(dashboard.Recommended),
			empty:   "Nothing to recommend right now.",
		},
	}

	if err := output.Info("Current Role: " + string(dashboard.Role)); err != nil {
		return dashboard, err
	}

	for _, section := range sections {
		if err := output.Info("\n" + section.title); err != nil {
			return dashboard, err
		}

		if len(section.rows) == 0 {
			if err := output.Info(section.empty); err != nil {
				return dashboard, err
			}

			continue
		}

		if err := output.Table(section.headers, section.rows); err != nil {
			return dashboard, fmt.Errorf("failed to write dashboard table: %w", err)
		}
	}

	return dashboard, nil
}

func (h *CatalogHandler) rating(rating int) string {
	if h.decorated() {
		return stars(rating)
	}

	return strconv.Itoa(rating)
}

func requestRow(request domain.PendingRequest) []string {
	return []string{request.ID, request.AppName, request.RequestDate, string(request.Status)}
}
