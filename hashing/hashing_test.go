package hashing

import (
	"io"
	"testing"

	sortederrors "github.com/amp-labs/amp-sorted/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		alg      Algorithm
		input    Hashable
		expected string
	}{
		{
			name:     "xxh3 of empty input",
			alg:      XXH3,
			input:    HashableString(""),
			expected: "2d06800538d394c2",
		},
		{
			name:     "xxh64 of empty input",
			alg:      XXH64,
			input:    HashableString(""),
			expected: "ef46db3751d8e999",
		},
		{
			name:     "sha256 of empty input",
			alg:      SHA256,
			input:    HashableLines(nil),
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "sha256 of a string",
			alg:      SHA256,
			input:    HashableString("hello"),
			expected: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			result, err := Sum(testCase.alg, testCase.input)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, result)
		})
	}
}

func TestHashableLines_MatchesStreamedBytes(t *testing.T) {
	t.Parallel()

	for _, alg := range []Algorithm{XXH3, XXH64, SHA256} {
		t.Run(string(alg), func(t *testing.T) {
			t.Parallel()

			fromLines, err := Sum(alg, HashableLines{"apple", "fig", "pear"})
			require.NoError(t, err)

			h, err := New(alg)
			require.NoError(t, err)

			_, err = io.WriteString(h, "apple\nfig\npear\n")
			require.NoError(t, err)

			assert.Equal(t, Digest(h), fromLines)
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	alg, err := ParseAlgorithm(" XXH64 ")
	require.NoError(t, err)
	assert.Equal(t, XXH64, alg)

	_, err = ParseAlgorithm("crc32")
	require.ErrorIs(t, err, sortederrors.ErrUnknownChecksum)

	_, err = New(Algorithm("md4"))
	require.ErrorIs(t, err, sortederrors.ErrUnknownChecksum)
}
