// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"errors"
	"fmt"

	"github.com/janderssonse/appcatalog/internal/domain"
)

// Validate checks the seed invariants: unique app and request IDs, ratings
// within bounds, known categories and statuses. All violations are joined.
func Validate(seed Seed) error {
	var errs []error

	appIDs := make(map[string]struct{}, len(seed.Apps))

	for i, app := range seed.Apps {
		if app.ID == "" {
			errs = append(errs, fmt.Errorf("app #%d (%s): empty id", i, app.Name))
		} else if _, dup := appIDs[app.ID]; dup {
			errs = append(errs, fmt.Errorf("app %q: duplicate id", app.ID))
		}

		appIDs[app.ID] = struct{}{}

		if app.Name == "" {
			errs = append(errs, fmt.Errorf("app %q: empty name", app.ID))
		}

		if app.Rating < domain.MinRating || app.Rating > domain.MaxRating {
			errs = append(errs, fmt.Errorf("app %q: rating %d outside [%d,%d]", app.ID, app.Rating, domain.MinRating, domain.MaxRating))
		}

		if !app.Category.Valid() {
			errs = append(errs, fmt.Errorf("app %q: %w: %q", app.ID, domain.ErrUnknownCategory, app.Category))
		}
	}

	requestIDs := make(map[string]struct{}, len(seed.Requests))

	for _, request := range seed.Requests {
		if _, dup := requestIDs[request.ID]; dup {
			errs = append(errs, fmt.Errorf("request %q: duplicate id", request.ID))
		}

		requestIDs[request.ID] = struct{}{}

		if !request.Status.Valid() {
			errs = append(errs, fmt.Errorf("request %q: %w: %q", request.ID, domain.ErrUnknownStatus, request.Status))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, errors.Join(errs...))
	}

	return nil
}
