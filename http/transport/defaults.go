package transport

import "time"

const (
	defaultForceAttemptHTTP2    = false
	defaultTransportDialTimeout = 30 * time.Second //nolint:gomnd,mnd
)
