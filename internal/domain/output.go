// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

// OutputPort defines the interface for presenting command results.
// This is a domain port that adapters implement for different output formats.
type OutputPort interface {
	// Success outputs a success message with optional structured data
	Success(message string, data any) error

	// Error outputs an error message
	Error(message string) error

	// Info outputs an informational message
	Info(message string) error

	// Table outputs tabular data
	Table(headers []string, rows [][]string) error

	// IsQuiet returns true if output should be suppressed
	IsQuiet() bool
}

// ListResult is the outcome of a catalog query.
type ListResult struct {
	Apps     []App  `json:"apps"`
	Shown    int    `json:"shown"`
	Total    int    `json:"total"`
	Query    string `json:"query,omitempty"`
	SortedBy string `json:"sortedBy"`
}

// DashboardResult summarises a session's apps and requests.
type DashboardResult struct {
	Role        Role             `json:"role"`
	MyApps      []App            `json:"myApps"`
	Requests    []PendingRequest `json:"requests"`
	Recommended []App            `json:"recommended"`
}

// RequestResult is the outcome of an access request submission.
type RequestResult struct {
	Request  PendingRequest   `json:"request"`
	Requests []PendingRequest `json:"requests"`
}
