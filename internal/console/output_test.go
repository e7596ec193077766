// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package console

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/janderssonse/appcatalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedState(state OutputState) (*OutputState, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer

	state.Out = &stdout
	state.Err = &stderr

	return &state, &stdout, &stderr
}

func TestOutputStateBold(t *testing.T) {
	tests := []struct {
		name     string
		state    OutputState
		envVars  map[string]string
		expected string
	}{
		{name: "plain mode returns unformatted", state: OutputState{Plain: true}, expected: "test"},
		{name: "json mode returns unformatted", state: OutputState{JSON: true}, expected: "test"},
		{name: "NO_COLOR env disables formatting", envVars: map[string]string{"NO_COLOR": "1"}, expected: "test"},
		{name: "dumb terminal disables formatting", envVars: map[string]string{"TERM": "dumb"}, expected: "test"},
		{name: "non-TTY returns uppercase", envVars: map[string]string{"NO_COLOR": "", "TERM": "xterm"}, expected: "TEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			state, _, _ := newBufferedState(tt.state)
			assert.Equal(t, tt.expected, state.Bold("test"))
		})
	}
}

func TestOutputStateMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		state  OutputState
		emit   func(*OutputState)
		expect string
	}{
		{"progress when verbose", OutputState{Verbose: true}, func(o *OutputState) { o.Progressf("loading %s", "catalog") }, "loading catalog\n"},
		{"progress silent by default", OutputState{}, func(o *OutputState) { o.Progressf("loading") }, ""},
		{"progress silent in json", OutputState{Verbose: true, JSON: true}, func(o *OutputState) { o.Progressf("loading") }, ""},
		{"success with checkmark", OutputState{}, func(o *OutputState) { o.Successf("done") }, "✓ done\n"},
		{"success silent in plain", OutputState{Plain: true}, func(o *OutputState) { o.Successf("done") }, ""},
		{"warning symbol", OutputState{}, func(o *OutputState) { o.Warningf("careful") }, "⚠ careful\n"},
		{"warning plain prefix", OutputState{Plain: true}, func(o *OutputState) { o.Warningf("careful") }, "warning: careful\n"},
		{"error symbol", OutputState{}, func(o *OutputState) { o.Errorf("failed") }, "✗ failed\n"},
		{"error plain prefix", OutputState{Plain: true}, func(o *OutputState) { o.Errorf("failed") }, "error: failed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			state, stdout, stderr := newBufferedState(tt.state)
			tt.emit(state)

			assert.Equal(t, tt.expect, stderr.String())
			assert.Empty(t, stdout.String())
		})
	}
}

func TestOutputStateAdapterFollowsMode(t *testing.T) {
	t.Parallel()

	state, stdout, _ := newBufferedState(OutputState{JSON: true})
	adapter := state.Adapter()

	require.True(t, adapter.IsJSON())
	require.NoError(t, adapter.Success("ignored", domain.ListResult{Shown: 1, Total: 12, SortedBy: "popularity"}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
	assert.InDelta(t, 12, decoded["total"], 0)

	plain, _, _ := newBufferedState(OutputState{Plain: true})
	assert.False(t, plain.Adapter().IsJSON())
}

func TestOutputStateNotify(t *testing.T) {
	t.Parallel()

	state, stdout, stderr := newBufferedState(OutputState{Verbose: true})
	state.Notify("Access request submitted for Figma", "Your request will be reviewed within 2-3 business days.")

	assert.Empty(t, stdout.String())
	assert.Equal(t,
		"✓ Access request submitted for Figma\n  Your request will be reviewed within 2-3 business days.\n",
		stderr.String())

	quiet, _, quietErr := newBufferedState(OutputState{JSON: true})
	quiet.Notify("Switched to Engineering role", "")
	assert.Empty(t, quietErr.String())
}
