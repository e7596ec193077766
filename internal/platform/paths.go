// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// GetXDGConfigHome returns XDG config directory.
func GetXDGConfigHome() string {
	return GetXDGConfigHomeWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// GetXDGConfigHomeWithEnv returns XDG config directory with custom environment override for testing.
func GetXDGConfigHomeWithEnv(xdgConfigHome string) string {
	return xdgDir(xdgConfigHome, ".config")
}

// GetXDGStateHome returns XDG state directory.
func GetXDGStateHome() string {
	return GetXDGStateHomeWithEnv(os.Getenv("XDG_STATE_HOME"))
}

// GetXDGStateHomeWithEnv returns XDG state directory with custom environment override for testing.
func GetXDGStateHomeWithEnv(xdgStateHome string) string {
	return xdgDir(xdgStateHome, ".local", "state")
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return ConfigFileWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// ConfigFileWithEnv returns the config file path below xdgConfigHome.
func ConfigFileWithEnv(xdgConfigHome string) string {
	return filepath.Join(GetXDGConfigHomeWithEnv(xdgConfigHome), AppName, "config.toml")
}

// LogFile returns the default log file path.
func LogFile() string {
	return LogFileWithEnv(os.Getenv("XDG_STATE_HOME"))
}

// LogFileWithEnv returns the log file path below xdgStateHome.
func LogFileWithEnv(xdgStateHome string) string {
	return filepath.Join(GetXDGStateHomeWithEnv(xdgStateHome), AppName, AppName+".log")
}

// LockFile returns the single-instance lock path.
func LockFile() string {
	return filepath.Join(os.TempDir(), AppName+".lock")
}

// ExpandPath expands ~ and the XDG variables.
func ExpandPath(path string) string {
	return ExpandPathWithEnv(path, "", "")
}

// ExpandPathWithEnv expands paths with custom XDG environment variables for testing.
func ExpandPathWithEnv(path, xdgConfigHome, xdgStateHome string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}

	if after, found := strings.CutPrefix(path, "$XDG_CONFIG_HOME"); found {
		configHome := xdgConfigHome
		if configHome == "" {
			configHome = GetXDGConfigHome()
		}

		return configHome + after
	}

	if after, found := strings.CutPrefix(path, "$XDG_STATE_HOME"); found {
		stateHome := xdgStateHome
		if stateHome == "" {
			stateHome = GetXDGStateHome()
		}

		return stateHome + after
	}

	return path
}

// FileExists checks if file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

func xdgDir(override string, fallback ...string) string {
	if override != "" {
		return override
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(append([]string{home}, fallback...)...)
	}

	return ""
}
