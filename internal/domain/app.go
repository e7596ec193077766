// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package domain contains the core types of the app catalog.
package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Rating bounds for catalog applications.
const (
	MinRating = 0
	MaxRating = 5
)

// Category is the department tag an application belongs to.
type Category string

// Department categories. The set is closed.
const (
	CategoryHR          Category = "HR"
	CategoryEngineering Category = "Engineering"
	CategorySales       Category = "Sales"
	CategoryIT          Category = "IT"
	CategoryFinance     Category = "Finance"
	CategoryMarketing   Category = "Marketing"
	CategoryDesign      Category = "Design"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryHR,
		CategoryEngineering,
		CategorySales,
		CategoryIT,
		CategoryFinance,
		CategoryMarketing,
		CategoryDesign,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return slices.Contains(Categories(), c)
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(name string) (Category, error) {
	for _, category := range Categories() {
		if strings.EqualFold(string(category), strings.TrimSpace(name)) {
			return category, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// App is a catalog application record.
//
// The optional lists are nil when the data was never provided and
// non-nil (possibly empty) when it was.
type App struct {
	ID                 string   `json:"id"                           toml:"id"`
	Name               string   `json:"name"                         toml:"name"`
	Description        string   `json:"description"                  toml:"description"`
	Rating             int      `json:"rating"                       toml:"rating"`
	Category           Category `json:"category"                     toml:"category"`
	HasAccess          bool     `json:"hasAccess"                    toml:"has_access"`
	Icon               string   `json:"icon"                         toml:"icon"`
	Screenshots        []string `json:"screenshots"                  toml:"screenshots,omitempty"`
	Features           []string `json:"features"                     toml:"features,omitempty"`
	AccessRequirements []string `json:"accessRequirements"           toml:"access_requirements,omitempty"`
}

// Clone returns a deep copy so callers can't alias the optional lists.
func (a App) Clone() App {
	clone := a
	clone.Screenshots = cloneOptional(a.Screenshots)
	clone.Features = cloneOptional(a.Features)
	clone.AccessRequirements = cloneOptional(a.AccessRequirements)

	return clone
}

// IsPopular reports whether the app meets the popularity threshold.
func (a App) IsPopular() bool {
	return a.Rating >= PopularRating
}

// PopularRating is the minimum rating for the "popular only" filter.
const PopularRating = 4

// CloneApps deep-copies a list of apps.
func CloneApps(apps []App) []App {
	if apps == nil {
		return nil
	}

	out := make([]App, len(apps))
	for i, app := range apps {
		out[i] = app.Clone()
	}

	return out
}

func cloneOptional(values []string) []string {
	if values == nil {
		return nil
	}

	return append(make([]string, 0, len(values)), values...)
}
