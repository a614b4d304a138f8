// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/aibor/mountfs"
	"github.com/stretchr/testify/assert"
)

func TestHandleRunError(t *testing.T) {
	tests := []struct {
		name             string
		err              error
		expectedExitCode int
		expectedOutput   string
	}{
		{
			name:             "missing names",
			err:              missingError([]string{"a", "b"}),
			expectedExitCode: 1,
			expectedOutput:   `msg="names missing: a, b"`,
		},
		{
			name: "mount error",
			err: &mountfs.PathError{
				Op:   "mount",
				Path: "/x",
				Err:  mountfs.ErrAlreadyMounted,
			},
			expectedExitCode: -1,
			expectedOutput:   `msg="mount /x: already mounted"`,
		},
		{
			name:             "any error",
			err:              fmt.Errorf("wrapped: %w", assert.AnError),
			expectedExitCode: -1,
			expectedOutput:   "assert.AnError general error for testing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdErr bytes.Buffer

			setupLogging(&stdErr, false)

			actualExitCode := handleRunError(tt.err)

			assert.Equal(t, tt.expectedExitCode, actualExitCode,
				"exit code should be as expected")
			assert.Contains(t, stdErr.String(), tt.expectedOutput,
				"stderr output should be as expected")
		})
	}
}

func TestHandleParseArgsError(t *testing.T) {
	tests := []struct {
		name             string
		err              error
		expectedExitCode int
		expectedOutput   string
	}{
		{
			name: "help",
			err:  &ParseArgsError{msg: "flag parse", err: ErrHelp},
		},
		{
			name:             "parse args error",
			err:              &ParseArgsError{msg: "no command given"},
			expectedExitCode: -1,
		},
		{
			name:             "other error",
			err:              assert.AnError,
			expectedExitCode: -1,
			expectedOutput:   "level=ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdErr bytes.Buffer

			setupLogging(&stdErr, false)

			actualExitCode := handleParseArgsError(tt.err)

			assert.Equal(t, tt.expectedExitCode, actualExitCode)

			if tt.expectedOutput == "" {
				assert.Empty(t, stdErr.String())
			} else {
				assert.Contains(t, stdErr.String(), tt.expectedOutput)
			}
		})
	}
}

func TestMissingError(t *testing.T) {
	assert.NoError(t, missingError(nil))
	assert.ErrorIs(t, missingError([]string{"x"}), ErrMissingNames)
}

func TestOutputInDir(t *testing.T) {
	tests := []struct {
		name     string
		dir      string
		output   string
		expected string
		inside   bool
	}{
		{
			name:     "inside",
			dir:      "/srv/assets",
			output:   "/srv/assets/sub/out.tar",
			expected: "sub/out.tar",
			inside:   true,
		},
		{
			name:   "sibling",
			dir:    "/srv/assets",
			output: "/srv/assets.tar",
		},
		{
			name:   "dir itself",
			dir:    "/srv/assets",
			output: "/srv/assets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel, inside := outputInDir(tt.dir, tt.output)
			assert.Equal(t, tt.inside, inside)
			assert.Equal(t, tt.expected, rel)
		})
	}
}
