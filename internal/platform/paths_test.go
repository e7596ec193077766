// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathUtils_XDGDirectories(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		got  func(string) string
		env  string
		want string
	}{
		{"config home from env", GetXDGConfigHomeWithEnv, "/custom/config", "/custom/config"},
		{"config home default", GetXDGConfigHomeWithEnv, "", filepath.Join(home, ".config")},
		{"state home from env", GetXDGStateHomeWithEnv, "/custom/state", "/custom/state"},
		{"state home default", GetXDGStateHomeWithEnv, "", filepath.Join(home, ".local", "state")},
		{"config file", ConfigFileWithEnv, "/cfg", "/cfg/appcatalog/config.toml"},
		{"log file", LogFileWithEnv, "/state", "/state/appcatalog/appcatalog.log"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, testCase.got(testCase.env))
		})
	}
}

func TestPathUtils_ExpandPath(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"home prefix", "~/catalog.toml", filepath.Join(home, "catalog.toml")},
		{"config variable", "$XDG_CONFIG_HOME/appcatalog/catalog.toml", "/cfg/appcatalog/catalog.toml"},
		{"state variable", "$XDG_STATE_HOME/appcatalog.log", "/state/appcatalog.log"},
		{"absolute path untouched", "/etc/catalog.toml", "/etc/catalog.toml"},
		{"relative path untouched", "catalog.toml", "catalog.toml"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, ExpandPathWithEnv(testCase.path, "/cfg", "/state"))
		})
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "present")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "absent")))
}
