package transport

import (
	"net/http"

	"github.com/amp-labs/amp-sorted/closer"
	"github.com/fereidani/httpdecompressor"
)

// NewDecompressor wraps roundTripper so that response bodies are decoded
// according to their Content-Encoding header. Closing a decoded body closes
// the decoder and then the original body. It panics if roundTripper is nil.
func NewDecompressor(roundTripper http.RoundTripper) http.RoundTripper {
	if roundTripper == nil {
		panic("transport: NewDecompressor: roundTripper is nil")
	}

	return &decompressor{roundTripper: roundTripper}
}

type decompressor struct {
	roundTripper http.RoundTripper
}

func (d *decompressor) RoundTrip(request *http.Request) (*http.Response, error) {
	rsp, err := d.roundTripper.RoundTrip(request)
	if err != nil {
		return rsp, err
	}

	origBody := rsp.Body

	bodyReader, err := httpdecompressor.Reader(rsp)
	if err != nil {
		_ = origBody.Close()

		return nil, err
	}

	if bodyReader == origBody {
		return rsp, nil
	}

	// Decoder first, then the connection.
	multiCloser := closer.NewCloser()
	multiCloser.Add(bodyReader)
	multiCloser.Add(origBody)

	rsp.Body = closer.ReadCloser(bodyReader, multiCloser)
	rsp.Header.Del("Content-Encoding")
	rsp.Header.Del("Content-Length")
	rsp.ContentLength = -1

	return rsp, nil
}

var _ http.RoundTripper = (*decompressor)(nil)
