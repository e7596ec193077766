// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadFile reads a TOML catalog with [[apps]] and [[requests]] tables.
// The result is validated before it is returned.
func LoadFile(path string) (Seed, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user's own config
	if err != nil {
		return Seed{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a TOML catalog.
func Parse(data []byte) (Seed, error) {
	var seed Seed
	if err := toml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if err := Validate(seed); err != nil {
		return Seed{}, err
	}

	return seed, nil
}

// Resolve returns the catalog file's seed when path is set, otherwise the
// built-in seed.
func Resolve(path string) (Seed, error) {
	if path == "" {
		return DefaultSeed(), nil
	}

	return LoadFile(path)
}
