// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"github.com/janderssonse/appcatalog/internal/domain"
)

// MaxRecommended caps the dashboard recommendation list.
const MaxRecommended = 6

// DefaultTechnicalApps are the apps whose access follows the role switch.
func DefaultTechnicalApps() []string {
	return []string{"Jira", "GitHub"}
}

// Recommended lists the apps the session can't use yet, in catalog order
// and capped at MaxRecommended.
func Recommended(apps []domain.App) []domain.App {
	result := make([]domain.App, 0, MaxRecommended)

	for _, app := range apps {
		if app.HasAccess {
			continue
		}

		result = append(result, app.Clone())
		if len(result) == MaxRecommended {
			break
		}
	}

	return result
}

// WithAccess lists the apps the session is entitled to, in catalog order.
func WithAccess(apps []domain.App) []domain.App {
	result := make([]domain.App, 0, len(apps))

	for _, app := range apps {
		if app.HasAccess {
			result = append(result, app.Clone())
		}
	}

	return result
}
