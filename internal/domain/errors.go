// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors.
var (
	ErrUnknownApp      = errors.New("unknown app")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownRole     = errors.New("unknown role")
	ErrUnknownStatus   = errors.New("unknown request status")
	ErrUnknownSort     = errors.New("unknown sort key")
	ErrUnknownView     = errors.New("unknown view")
	ErrInvalidCatalog  = errors.New("invalid catalog")
)

// ExitError carries a process exit code alongside a user-facing message.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

// Report is the text shown to the user: the message, followed by the cause
// unless the message already spells it out.
func (e *ExitError) Report() string {
	if e.Err == nil || strings.Contains(e.Message, e.Err.Error()) {
		return e.Message
	}

	return e.Message + ": " + e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ErrorInfo provides user-friendly error information.
type ErrorInfo struct {
	Message     string   // User-friendly message
	Suggestions []string // Actionable suggestions
	ShowDetails bool     // Whether to show technical details
}

// GetErrorInfo maps an error to user-friendly information.
func GetErrorInfo(err error, verbose bool) ErrorInfo {
	switch {
	case err == nil:
		return ErrorInfo{}
	case errors.Is(err, ErrUnknownApp):
		return ErrorInfo{
			Message:     "App not found in the catalog",
			Suggestions: []string{"Use 'appcatalog list' to see app IDs and names"},
			ShowDetails: verbose,
		}
	case errors.Is(err, ErrUnknownCategory):
		return ErrorInfo{
			Message:     "Unknown category",
			Suggestions: []string{"Valid categories: " + joinCategories()},
			ShowDetails: verbose,
		}
	case errors.Is(err, ErrUnknownSort):
		return ErrorInfo{
			Message:     "Unknown sort key",
			Suggestions: []string{"Use popularity, newest or recommended"},
			ShowDetails: verbose,
		}
	case errors.Is(err, ErrUnknownRole):
		return ErrorInfo{
			Message:     "Unknown role",
			Suggestions: []string{"Use general or engineering"},
			ShowDetails: verbose,
		}
	case errors.Is(err, ErrInvalidCatalog):
		return ErrorInfo{
			Message:     "Catalog data is invalid",
			Suggestions: []string{"Check the catalog file for duplicate IDs and out-of-range ratings"},
			ShowDetails: true,
		}
	}

	return ErrorInfo{
		Message:     "Operation failed",
		Suggestions: []string{"Run with --verbose for more details"},
		ShowDetails: verbose,
	}
}

// FormatErrorMessage formats an error for display.
func FormatErrorMessage(err error, verbose bool) string {
	info := GetErrorInfo(err, verbose)

	var result strings.Builder

	result.WriteString("✗ ")
	result.WriteString(info.Message)

	if info.ShowDetails && err != nil {
		result.WriteString("\n  Technical details: ")
		result.WriteString(err.Error())
	}

	if len(info.Suggestions) > 0 && !verbose {
		result.WriteString(" (")
		result.WriteString(info.Suggestions[0])
		result.WriteString(")")
	} else if len(info.Suggestions) > 0 {
		result.WriteString("\n  Suggestions:")

		for _, suggestion := range info.Suggestions {
			result.WriteString("\n    • ")
			result.WriteString(suggestion)
		}
	}

	return result.String()
}

func joinCategories() string {
	names := make([]string, 0, len(Categories()))
	for _, category := range Categories() {
		names = append(names, string(category))
	}

	return strings.Join(names, ", ")
}
