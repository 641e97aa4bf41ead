// Package compression opens and creates line files that may be compressed
// with gzip, zstd, brotli, lz4 or snappy, choosing the codec from the file
// extension unless told otherwise.
package compression

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/amp-labs/amp-sorted/closer"
	sortederrors "github.com/amp-labs/amp-sorted/errors"
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Encoding names a compression format.
type Encoding string

const (
	None   Encoding = "none"
	Gzip   Encoding = "gzip"
	Zstd   Encoding = "zstd"
	Brotli Encoding = "br"
	LZ4    Encoding = "lz4"
	Snappy Encoding = "snappy"
)

// Stdio is the path that stands for stdin when opening and stdout when creating.
const Stdio = "-"

var extensions = map[string]Encoding{ //nolint:gochecknoglobals
	".gz":   Gzip,
	".gzip": Gzip,
	".zst":  Zstd,
	".zstd": Zstd,
	".br":   Brotli,
	".lz4":  LZ4,
	".sz":   Snappy,
}

// Detect returns the encoding implied by path's extension, or None.
func Detect(path string) Encoding {
	if enc, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return enc
	}

	return None
}

// ParseEncoding resolves a user-supplied encoding name. The empty string and
// "auto" yield "", meaning the extension decides.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return "", nil
	case "none", "plain":
		return None, nil
	case "gzip", "gz":
		return Gzip, nil
	case "zstd", "zst":
		return Zstd, nil
	case "br", "brotli":
		return Brotli, nil
	case "lz4":
		return LZ4, nil
	case "snappy", "sz":
		return Snappy, nil
	default:
		return "", fmt.Errorf("%w: %q", sortederrors.ErrUnsupportedEncoding, name)
	}
}

// NewReader wraps r with a decoder for enc. Closing the result releases the
// decoder but not r.
func NewReader(r io.Reader, enc Encoding) (io.ReadCloser, error) {
	switch enc {
	case None, "":
		return io.NopCloser(r), nil
	case Gzip:
		dec, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}

		return dec, nil
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}

		return dec.IOReadCloser(), nil
	case Brotli:
		return io.NopCloser(brotli.NewReader(r)), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case Snappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%w: %q", sortederrors.ErrUnsupportedEncoding, enc)
	}
}

// NewWriter wraps w with an encoder for enc. Closing the result flushes the
// encoder but does not close w.
func NewWriter(w io.Writer, enc Encoding) (io.WriteCloser, error) {
	switch enc {
	case None, "":
		return closer.WriteCloser(w, closer.NewCloser()), nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		encoder, err := zstd.NewWriter(w)
		if err != nil {
			return nil, err
		}

		return encoder, nil
	case Brotli:
		return brotli.NewWriter(w), nil
	case LZ4:
		return lz4.NewWriter(w), nil
	case Snappy:
		return snappy.NewBufferedWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", sortederrors.ErrUnsupportedEncoding, enc)
	}
}

// Open opens path for reading through a decoder for enc, or for the
// encoding Detect finds when enc is "". Stdio reads stdin, which Close
// leaves open.
func Open(path string, enc Encoding) (io.ReadCloser, error) {
	if enc == "" {
		enc = Detect(path)
	}

	var (
		src       io.Reader
		srcCloser io.Closer
	)

	if path == Stdio {
		src = os.Stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}

		src, srcCloser = file, file
	}

	dec, err := NewReader(src, enc)
	if err != nil {
		if srcCloser != nil {
			_ = srcCloser.Close()
		}

		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return closer.ReadCloser(dec, closer.NewCloser(dec, srcCloser)), nil
}

// Create creates path for writing through an encoder for enc, or for the
// encoding Detect finds when enc is "". Stdio writes to stdout, which Close
// leaves open. Close flushes the encoder before closing the file.
func Create(path string, enc Encoding) (io.WriteCloser, error) {
	if enc == "" {
		enc = Detect(path)
	}

	var (
		dst       io.Writer
		dstCloser io.Closer
	)

	if path == Stdio {
		dst = os.Stdout
	} else {
		file, err := os.Create(path)
		if err != nil {
			return nil, err
		}

		dst, dstCloser = file, file
	}

	encoder, err := NewWriter(dst, enc)
	if err != nil {
		if dstCloser != nil {
			_ = dstCloser.Close()
		}

		return nil, fmt.Errorf("creating %s: %w", path, err)
	}

	return closer.WriteCloser(encoder, closer.NewCloser(encoder, dstCloser)), nil
}
