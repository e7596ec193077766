// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package platform resolves the per-user directories the catalog reads its
// configuration from and writes its log and lock files to.
package platform

// AppName is the directory name used under every XDG base directory.
const AppName = "appcatalog"
