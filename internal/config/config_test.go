// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/janderssonse/appcatalog/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, []string{"Jira", "GitHub"}, cfg.Catalog.TechnicalApps)
	assert.Equal(t, catalog.SortPopularity, cfg.SortKey())
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[catalog]
file = "/srv/catalog.toml"
technical_apps = ["Tableau"]
default_sort = "newest"

[log]
level = "debug"
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/catalog.toml", cfg.Catalog.File)
	assert.Equal(t, []string{"Tableau"}, cfg.Catalog.TechnicalApps)
	assert.Equal(t, catalog.SortNewest, cfg.SortKey())
	assert.Equal(t, "debug", cfg.Logging().Level)
	assert.Equal(t, Default().Log.File, cfg.Log.File, "unset keys keep defaults")
}

func TestParseRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"unknown sort", "[catalog]\ndefault_sort = \"alphabetical\"\n"},
		{"unknown level", "[log]\nlevel = \"chatty\"\n"},
		{"empty technical app", "[catalog]\ntechnical_apps = [\"Jira\", \" \"]\n"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(testCase.data))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseRejectsMalformedTOML(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("[catalog\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestParseExpandsPaths(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg, err := Parse([]byte("[catalog]\nfile = \"~/apps.toml\"\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "apps.toml"), cfg.Catalog.File)
}
