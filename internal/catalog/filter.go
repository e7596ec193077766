// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/janderssonse/appcatalog/internal/domain"
	"github.com/janderssonse/appcatalog/internal/stringutil"
)

// NoMatchesMessage is shown when a query leaves nothing to list.
const NoMatchesMessage = "No apps found matching your criteria."

// SortKey selects the ordering of the derived catalog view.
type SortKey string

// Sort keys.
const (
	SortPopularity  SortKey = "popularity"
	SortNewest      SortKey = "newest"
	SortRecommended SortKey = "recommended"
)

// SortKeys returns the sort keys in display order.
func SortKeys() []SortKey {
	return []SortKey{SortPopularity, SortNewest, SortRecommended}
}

// Label returns the human readable sort label.
func (k SortKey) Label() string {
	switch k {
	case SortNewest:
		return "Newest"
	case SortRecommended:
		return "Recommended"
	default:
		return "Popularity"
	}
}

// Next cycles to the following sort key.
func (k SortKey) Next() SortKey {
	keys := SortKeys()
	idx := slices.Index(keys, k)

	return keys[(idx+1)%len(keys)]
}

// ParseSortKey resolves a sort key case-insensitively. Empty means popularity.
func ParseSortKey(name string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(name)))
	if key == "" {
		return SortPopularity, nil
	}

	if !slices.Contains(SortKeys(), key) {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownSort, name)
	}

	return key, nil
}

// Query holds the catalog filter state.
type Query struct {
	Text        string
	Categories  []domain.Category
	PopularOnly bool
	Sort        SortKey
}

// IsFiltered reports whether any category or popularity filter is active.
func (q Query) IsFiltered() bool {
	return len(q.Categories) > 0 || q.PopularOnly
}

// HasCategory reports whether c is in the selected set.
func (q Query) HasCategory(c domain.Category) bool {
	return slices.Contains(q.Categories, c)
}

// ToggleCategory returns a copy of q with c added to or removed from the set.
func (q Query) ToggleCategory(c domain.Category) Query {
	if q.HasCategory(c) {
		q.Categories = slices.DeleteFunc(slices.Clone(q.Categories), func(selected domain.Category) bool {
			return selected == c
		})

		return q
	}

	q.Categories = append(slices.Clone(q.Categories), c)

	return q
}

// Cleared drops the text, category and popularity filters. Sort is kept.
func (q Query) Cleared() Query {
	return Query{Sort: q.Sort}
}

// Apply filters and sorts apps into a new slice. The input is not modified.
func Apply(apps []domain.App, query Query) []domain.App {
	result := make([]domain.App, 0, len(apps))

	for _, app := range apps {
		if matchesText(app, query.Text) && matchesCategory(app, query.Categories) && matchesPopularity(app, query.PopularOnly) {
			result = append(result, app.Clone())
		}
	}

	sortApps(result, query.Sort)

	return result
}

func matchesText(app domain.App, text string) bool {
	if text == "" {
		return true
	}

	return stringutil.ContainsIgnoreCase(app.Name, text) ||
		stringutil.ContainsIgnoreCase(app.Description, text) ||
		stringutil.ContainsIgnoreCase(string(app.Category), text)
}

func matchesCategory(app domain.App, categories []domain.Category) bool {
	return len(categories) == 0 || slices.Contains(categories, app.Category)
}

func matchesPopularity(app domain.App, popularOnly bool) bool {
	return !popularOnly || app.IsPopular()
}

// sortApps orders apps in place with a stable sort.
//
// Newest compares IDs as plain strings, so "9" sorts ahead of "10".
func sortApps(apps []domain.App, key SortKey) {
	switch key {
	case SortNewest:
		slices.SortStableFunc(apps, func(a, b domain.App) int {
			return cmp.Compare(b.ID, a.ID)
		})
	case SortPopularity, SortRecommended:
		slices.SortStableFunc(apps, byRatingDesc)
	default:
		slices.SortStableFunc(apps, byRatingDesc)
	}
}

func byRatingDesc(a, b domain.App) int {
	return cmp.Compare(b.Rating, a.Rating)
}
