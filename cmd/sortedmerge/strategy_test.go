package main

import (
	"math"
	"slices"
	"testing"

	sortederrors "github.com/amp-labs/amp-sorted/errors"
	"github.com/amp-labs/amp-sorted/ordering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStrategy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      Config
		input    []string
		expected []string
	}{
		{
			name:     "lexical",
			cfg:      Config{Strategy: "lexical"},
			input:    []string{"b", "a", "B", "A"},
			expected: []string{"A", "B", "a", "b"},
		},
		{
			name:     "lexical ignoring case keeps input order among equals",
			cfg:      Config{Strategy: "lexical", IgnoreCase: true},
			input:    []string{"b", "a", "B", "A"},
			expected: []string{"a", "A", "b", "B"},
		},
		{
			name:     "natural",
			cfg:      Config{Strategy: "natural"},
			input:    []string{"file10", "file2", "file1"},
			expected: []string{"file1", "file2", "file10"},
		},
		{
			name:     "natural ignoring case",
			cfg:      Config{Strategy: "Natural", IgnoreCase: true},
			input:    []string{"File10", "file2", "FILE1"},
			expected: []string{"FILE1", "file2", "File10"},
		},
		{
			name:     "numeric",
			cfg:      Config{Strategy: "numeric"},
			input:    []string{"10 ten", "9.5", "-1", "n/a", "1e2"},
			expected: []string{"n/a", "-1", "9.5", "10 ten", "1e2"},
		},
		{
			name:     "numeric reversed",
			cfg:      Config{Strategy: "numeric", Reverse: true},
			input:    []string{"1", "3", "2"},
			expected: []string{"3", "2", "1"},
		},
		{
			name:     "collate swedish",
			cfg:      Config{Strategy: "collate", Locale: "sv"},
			input:    []string{"ö", "z", "a"},
			expected: []string{"a", "z", "ö"},
		},
		{
			name:     "collate german",
			cfg:      Config{Strategy: "collate", Locale: "de"},
			input:    []string{"z", "ö", "a"},
			expected: []string{"a", "ö", "z"},
		},
		{
			name:     "default is lexical",
			cfg:      Config{},
			input:    []string{"b", "a"},
			expected: []string{"a", "b"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			strategy, err := resolveStrategy(testCase.cfg)
			require.NoError(t, err)

			values := slices.Clone(testCase.input)
			slices.SortStableFunc(values, ordering.Func(strategy))

			assert.Equal(t, testCase.expected, values)
		})
	}
}

func TestResolveStrategy_Errors(t *testing.T) {
	t.Parallel()

	_, err := resolveStrategy(Config{Strategy: "random"})
	require.ErrorIs(t, err, sortederrors.ErrUnknownStrategy)

	_, err = resolveStrategy(Config{Strategy: "collate", Locale: "not a locale!"})
	require.ErrorIs(t, err, sortederrors.ErrUnknownStrategy)
}

func TestNumericKey(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 42.0, numericKey("42"), 0)
	assert.InDelta(t, 3.5, numericKey("  3.5\tlabel"), 0)
	assert.InDelta(t, -7.0, numericKey("-7 below zero"), 0)
	assert.True(t, math.IsNaN(numericKey("")))
	assert.True(t, math.IsNaN(numericKey("seven")))
}
