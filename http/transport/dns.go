package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/dnscache"
)

// dnsResolver is shared by every transport built with the DNS cache.
var dnsResolver = &dnscache.Resolver{} //nolint:gochecknoglobals

// useDNSCacheDialer makes trans resolve hosts through dnsResolver.
func useDNSCacheDialer(trans *http.Transport, timeout, keepAlive time.Duration) {
	trans.DialContext = cachedDialContext(dnsResolver, &net.Dialer{
		Timeout:   timeout,
		KeepAlive: keepAlive,
	})
}

// cachedDialContext returns a dial function that looks addr's host up in
// resolver and tries each address in turn until one connects. If none does,
// the error joins every attempt's failure.
func cachedDialContext(
	resolver *dnscache.Resolver,
	dialer *net.Dialer,
) func(ctx context.Context, network, addr string) (net.Conn, error) {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, err
		}

		ips, err := resolver.LookupHost(ctx, host)
		if err != nil {
			return nil, err
		}

		if len(ips) == 0 {
			return nil, fmt.Errorf("dial %s: no addresses for %s", addr, host)
		}

		attempts := make([]error, 0, len(ips))

		for _, ip := range ips {
			conn, err := dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
			if err == nil {
				return conn, nil
			}

			attempts = append(attempts, err)
		}

		return nil, errors.Join(attempts...)
	}
}
