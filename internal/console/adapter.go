// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package console

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/janderssonse/appcatalog/internal/domain"
)

var _ domain.OutputPort = (*OutputAdapter)(nil)

// ErrUnsupportedFormat is returned when an unsupported output format is requested.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// OutputFormat represents the output format type.
type OutputFormat int

const (
	// TextFormat outputs aligned human-readable text.
	TextFormat OutputFormat = iota
	// JSONFormat outputs machine-readable JSON.
	JSONFormat
	// PlainFormat outputs tab-separated rows without decoration.
	PlainFormat
)

// OutputAdapter implements domain.OutputPort.
type OutputAdapter struct {
	writer io.Writer
	format OutputFormat
	quiet  bool
}

// NewOutputAdapter creates an adapter writing to stdout.
func NewOutputAdapter(format OutputFormat, quiet bool) *OutputAdapter {
	return NewOutputAdapterWithWriter(os.Stdout, format, quiet)
}

// NewOutputAdapterWithWriter creates an adapter with a custom writer for testing.
func NewOutputAdapterWithWriter(writer io.Writer, format OutputFormat, quiet bool) *OutputAdapter {
	return &OutputAdapter{
		writer: writer,
		format: format,
		quiet:  quiet,
	}
}

// Success outputs a success message with optional structured data.
func (o *OutputAdapter) Success(message string, data any) error {
	if o.quiet && data == nil {
		return nil
	}

	if o.format == JSONFormat && data != nil {
		return o.outputJSON(data)
	}

	if message != "" && !o.quiet {
		_, _ = fmt.Fprintln(o.writer, message)
	}

	return nil
}

// Error outputs an error message.
func (o *OutputAdapter) Error(message string) error {
	if o.quiet {
		return nil
	}

	switch o.format {
	case JSONFormat:
		return o.outputJSON(map[string]string{"error": message})
	case PlainFormat:
		_, _ = fmt.Fprintf(o.writer, "error: %s\n", message)
	default:
		_, _ = fmt.Fprintf(o.writer, "Error: %s\n", message)
	}

	return nil
}

// Info outputs an informational message.
func (o *OutputAdapter) Info(message string) error {
	if o.quiet {
		return nil
	}

	if o.format == JSONFormat {
		return o.outputJSON(map[string]string{"info": message})
	}

	_, _ = fmt.Fprintln(o.writer, message)

	return nil
}

// Table outputs tabular data.
func (o *OutputAdapter) Table(headers []string, rows [][]string) error {
	if o.quiet {
		return nil
	}

	switch o.format {
	case JSONFormat:
		return o.outputJSON(map[string]any{
			"headers": headers,
			"rows":    rows,
		})
	case PlainFormat:
		for _, row := range rows {
			_, _ = fmt.Fprintln(o.writer, strings.Join(row, "\t"))
		}

		return nil
	case TextFormat:
	}

	w := tabwriter.NewWriter(o.writer, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, strings.Join(headers, "\t"))

	separators := make([]string, len(headers))
	for i := range headers {
		separators[i] = strings.Repeat("-", len(headers[i]))
	}

	_, _ = fmt.Fprintln(w, strings.Join(separators, "\t"))

	for _, row := range rows {
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	return w.Flush()
}

// IsQuiet returns true if output should be suppressed.
func (o *OutputAdapter) IsQuiet() bool {
	return o.quiet
}

// IsJSON reports whether structured output is selected.
func (o *OutputAdapter) IsJSON() bool {
	return o.format == JSONFormat
}

func (o *OutputAdapter) outputJSON(data any) error {
	encoder := json.NewEncoder(o.writer)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data)
}

// ParseOutputFormat parses a string into an OutputFormat.
func ParseOutputFormat(format string) (OutputFormat, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	case "plain":
		return PlainFormat, nil
	default:
		return TextFormat, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
