// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"testing"

	"github.com/janderssonse/appcatalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(apps []domain.App) []string {
	out := make([]string, 0, len(apps))
	for _, app := range apps {
		out = append(out, app.Name)
	}

	return out
}

func indexOf(apps []domain.App, name string) int {
	for i, app := range apps {
		if app.Name == name {
			return i
		}
	}

	return -1
}

// filterOnly applies the predicates without sorting.
func filterOnly(apps []domain.App, query Query) []domain.App {
	result := make([]domain.App, 0, len(apps))
	for _, app := range apps {
		if matchesText(app, query.Text) && matchesCategory(app, query.Categories) && matchesPopularity(app, query.PopularOnly) {
			result = append(result, app)
		}
	}

	return result
}

func TestEmptyQueryKeepsEveryAppInOrder(t *testing.T) {
	t.Parallel()

	apps := SeedApps()
	filtered := filterOnly(apps, Query{})

	assert.Equal(t, names(apps), names(filtered))
}

func TestApplyEmptyQueryReturnsAllApps(t *testing.T) {
	t.Parallel()

	apps := SeedApps()

	result := Apply(apps, Query{})

	assert.Len(t, result, len(apps))
	assert.ElementsMatch(t, names(apps), names(result))
}

func TestTextQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "name match is case-insensitive", query: "SLACK", want: []string{"Slack"}},
		{name: "description match", query: "payroll", want: []string{"Workday"}},
		{name: "category match", query: "design", want: []string{"Figma", "Adobe Creative Suite"}},
		{name: "no match", query: "kubernetes", want: []string{}},
		{name: "substring across words is not tokenized", query: "video conf", want: []string{"Zoom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := filterOnly(SeedApps(), Query{Text: tt.query})
			assert.Equal(t, tt.want, names(result))
		})
	}
}

func TestCategoryFilterOnlyReturnsSelectedCategories(t *testing.T) {
	t.Parallel()

	sets := [][]domain.Category{
		{domain.CategoryEngineering},
		{domain.CategoryHR, domain.CategoryFinance},
		{domain.CategoryDesign, domain.CategoryIT, domain.CategorySales},
	}

	for _, set := range sets {
		result := Apply(SeedApps(), Query{Categories: set})

		require.NotEmpty(t, result)

		for _, app := range result {
			assert.Contains(t, set, app.Category, "app %s leaked through category filter", app.Name)
		}
	}
}

func TestPopularOnly(t *testing.T) {
	t.Parallel()

	result := Apply(SeedApps(), Query{PopularOnly: true})

	assert.Len(t, result, 11)
	assert.NotContains(t, names(result), "Workday")

	for _, app := range result {
		assert.GreaterOrEqual(t, app.Rating, domain.PopularRating)
	}
}

func TestSortByPopularityIsStableAndDescending(t *testing.T) {
	t.Parallel()

	result := Apply(SeedApps(), Query{Sort: SortPopularity})

	assert.Equal(t, []string{
		"Salesforce", "Figma", "GitHub", "Notion", "Adobe Creative Suite",
		"Slack", "Jira", "HubSpot", "QuickBooks", "Zoom", "Tableau",
		"Workday",
	}, names(result))

	assert.Less(t, indexOf(result, "Figma"), indexOf(result, "Slack"))
	assert.Less(t, indexOf(result, "GitHub"), indexOf(result, "Slack"))
	assert.Less(t, indexOf(result, "Figma"), indexOf(result, "GitHub"))
}

func TestRecommendedSortsLikePopularity(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		names(Apply(SeedApps(), Query{Sort: SortPopularity})),
		names(Apply(SeedApps(), Query{Sort: SortRecommended})),
	)
}

func TestSortByNewestUsesStringOrder(t *testing.T) {
	t.Parallel()

	result := Apply(SeedApps(), Query{Sort: SortNewest})

	// IDs compare as strings: "9" > "8" > ... > "2" > "12" > "11" > "10" > "1".
	assert.Equal(t, []string{
		"Zoom", "QuickBooks", "Workday", "HubSpot", "GitHub", "Figma",
		"Salesforce", "Jira", "Tableau", "Adobe Creative Suite", "Notion",
		"Slack",
	}, names(result))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	apps := SeedApps()
	before := names(apps)

	result := Apply(apps, Query{Sort: SortNewest, PopularOnly: true})
	result[0].Name = "mutated"
	result[0].Features[0] = "mutated"

	assert.Equal(t, before, names(apps))
	assert.NotEqual(t, "mutated", apps[8].Features[0])
}

func TestCombinedFiltersCanBeEmpty(t *testing.T) {
	t.Parallel()

	result := Apply(SeedApps(), Query{
		Text:        "payroll",
		PopularOnly: true,
	})

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestQueryToggleCategory(t *testing.T) {
	t.Parallel()

	query := Query{Sort: SortNewest}

	query = query.ToggleCategory(domain.CategoryHR)
	query = query.ToggleCategory(domain.CategoryIT)
	assert.Equal(t, []domain.Category{domain.CategoryHR, domain.CategoryIT}, query.Categories)
	assert.True(t, query.IsFiltered())

	query = query.ToggleCategory(domain.CategoryHR)
	assert.Equal(t, []domain.Category{domain.CategoryIT}, query.Categories)

	cleared := query.Cleared()
	assert.False(t, cleared.IsFiltered())
	assert.Equal(t, SortNewest, cleared.Sort)
}

func TestParseSortKey(t *testing.T) {
	t.Parallel()

	key, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortPopularity, key)

	key, err = ParseSortKey(" Newest ")
	require.NoError(t, err)
	assert.Equal(t, SortNewest, key)

	_, err = ParseSortKey("alphabetical")
	require.ErrorIs(t, err, domain.ErrUnknownSort)
}

func TestSortKeyNextCycles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SortNewest, SortPopularity.Next())
	assert.Equal(t, SortRecommended, SortNewest.Next())
	assert.Equal(t, SortPopularity, SortRecommended.Next())
}
