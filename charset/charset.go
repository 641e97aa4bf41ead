// Package charset converts text input in legacy character sets to UTF-8.
package charset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	sortederrors "github.com/amp-labs/amp-sorted/errors"
	"github.com/saintfish/chardet"
	htmlcharset "golang.org/x/net/html/charset"
)

const (
	// Auto asks NewReader to detect the character set from the input.
	Auto = "auto"
	// UTF8 is the canonical name of the pass-through character set.
	UTF8 = "utf-8"

	// sniffLen is how much of the input detection looks at.
	sniffLen = 4096
)

// NewReader returns a reader yielding r decoded from the character set
// named by label, together with the canonical name of that set. An empty
// label or UTF8 passes r through. Auto sniffs the start of r: input that
// is already valid UTF-8 passes through, anything else is decoded as the
// character set chardet ranks best, or passed through if detection fails.
func NewReader(r io.Reader, label string) (io.Reader, string, error) {
	label = strings.ToLower(strings.TrimSpace(label))

	switch label {
	case "", UTF8, "utf8":
		return r, UTF8, nil
	case Auto:
		return detect(r)
	default:
		return decode(r, label)
	}
}

func decode(r io.Reader, label string) (io.Reader, string, error) {
	enc, name := htmlcharset.Lookup(label)
	if enc == nil {
		return nil, "", fmt.Errorf("%w: %q", sortederrors.ErrUnknownCharset, label)
	}

	if name == UTF8 {
		return r, UTF8, nil
	}

	return enc.NewDecoder().Reader(r), name, nil
}

func detect(r io.Reader) (io.Reader, string, error) {
	buffered := bufio.NewReaderSize(r, sniffLen)

	sample, err := buffered.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, "", err
	}

	if validUTF8Prefix(sample) {
		return buffered, UTF8, nil
	}

	best, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil {
		return buffered, UTF8, nil //nolint:nilerr
	}

	decoded, name, err := decode(buffered, best.Charset)
	if err != nil {
		return buffered, UTF8, nil //nolint:nilerr
	}

	return decoded, name, nil
}

// validUTF8Prefix reports whether sample is valid UTF-8, allowing for a rune
// cut off at the end of the sample.
func validUTF8Prefix(sample []byte) bool {
	for cut := 0; cut < utf8.UTFMax && cut <= len(sample); cut++ {
		if utf8.Valid(sample[:len(sample)-cut]) {
			return cut == 0 || !utf8.FullRune(sample[len(sample)-cut:])
		}
	}

	return false
}
