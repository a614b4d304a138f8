// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitedUintValue_Set(t *testing.T) {
	ptr := func(n uint64) *uint64 {
		return &n
	}

	tests := []struct {
		name        string
		value       limitedUintValue
		input       string
		expected    *uint64
		expectedErr error
	}{
		{
			name:        "empty",
			value:       limitedUintValue{Value: ptr(0)},
			expected:    ptr(0),
			expectedErr: strconv.ErrSyntax,
		},
		{
			name:        "not a number",
			input:       "dwdfwef",
			value:       limitedUintValue{Value: ptr(0)},
			expected:    ptr(0),
			expectedErr: strconv.ErrSyntax,
		},
		{
			name:        "signed int",
			input:       "-1",
			value:       limitedUintValue{Value: ptr(0)},
			expected:    ptr(0),
			expectedErr: strconv.ErrSyntax,
		},
		{
			name:        "longer than 64bit",
			input:       "184467440737095516151111111111111111111",
			value:       limitedUintValue{Value: ptr(0)},
			expected:    ptr(0),
			expectedErr: strconv.ErrRange,
		},
		{
			name:     "zero without limits",
			input:    "0",
			value:    limitedUintValue{Value: ptr(42)},
			expected: ptr(0),
		},
		{
			name:     "is min",
			input:    "42",
			value:    limitedUintValue{Value: ptr(0), min: 42, max: 43},
			expected: ptr(42),
		},
		{
			name:     "is max",
			input:    "42",
			value:    limitedUintValue{Value: ptr(0), min: 41, max: 42},
			expected: ptr(42),
		},
		{
			name:        "below min",
			input:       "42",
			value:       limitedUintValue{Value: ptr(1), min: 43, max: 44},
			expected:    ptr(1),
			expectedErr: ErrValueOutOfRange,
		},
		{
			name:        "above max",
			input:       "45",
			value:       limitedUintValue{Value: ptr(1), min: 43, max: 44},
			expected:    ptr(1),
			expectedErr: ErrValueOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.value.Set(tt.input)
			require.ErrorIs(t, err, tt.expectedErr)

			assert.Equal(t, tt.expected, tt.value.Value)
		})
	}
}

func TestLimitedUintValue_String(t *testing.T) {
	value := uint64(8)

	assert.Equal(t, "0", (&limitedUintValue{}).String())
	assert.Equal(t, "8", (&limitedUintValue{Value: &value}).String())
}
