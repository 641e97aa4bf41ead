// Package hashing computes checksums of merged output.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"github.com/OneOfOne/xxhash"
	sortederrors "github.com/amp-labs/amp-sorted/errors"
	"github.com/zeebo/xxh3"
)

// Algorithm names a checksum function.
type Algorithm string

const (
	XXH3   Algorithm = "xxh3"
	XXH64  Algorithm = "xxh64"
	SHA256 Algorithm = "sha256"
)

// Hashable is an interface that allows an object to update a hash.Hash with
// its contents.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// ParseAlgorithm resolves a user-supplied algorithm name, case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch alg := Algorithm(strings.ToLower(strings.TrimSpace(name))); alg {
	case XXH3, XXH64, SHA256:
		return alg, nil
	default:
		return "", fmt.Errorf("%w: %q", sortederrors.ErrUnknownChecksum, name)
	}
}

// New returns a fresh hash for alg.
func New(alg Algorithm) (hash.Hash, error) { //nolint:ireturn
	switch alg {
	case XXH3:
		return xxh3.New(), nil
	case XXH64:
		return xxhash.New64(), nil
	case SHA256:
		return sha256.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", sortederrors.ErrUnknownChecksum, alg)
	}
}

// Digest renders the current state of h as lowercase hex. 64-bit hashes are
// rendered from Sum64, so they read the same as the reference tools print.
func Digest(h hash.Hash) string {
	if h64, ok := h.(hash.Hash64); ok {
		return fmt.Sprintf("%016x", h64.Sum64())
	}

	return hex.EncodeToString(h.Sum(nil))
}

// Sum hashes hashable with alg and returns the hex digest.
func Sum(alg Algorithm, hashable Hashable) (string, error) {
	h, err := New(alg)
	if err != nil {
		return "", err
	}

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return Digest(h), nil
}

// HashableString hashes its bytes.
type HashableString string

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

// HashableLines hashes each line followed by a newline, which matches
// hashing the file the lines were written to.
type HashableLines []string

func (l HashableLines) UpdateHash(h hash.Hash) error {
	for _, line := range l {
		if _, err := h.Write([]byte(line)); err != nil {
			return err
		}

		if _, err := h.Write([]byte{'\n'}); err != nil {
			return err
		}
	}

	return nil
}
