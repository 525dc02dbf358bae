// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/taibuivan/ecclesia/internal/platform/constants"
)

// # Trusted Proxies

// TrustedProxies lists the networks allowed to report the client address
// through X-Real-IP or X-Forwarded-For.
type TrustedProxies []netip.Prefix

// ParseTrustedProxies accepts CIDR ranges and bare addresses.
func ParseTrustedProxies(values []string) (TrustedProxies, error) {
	proxies := make(TrustedProxies, 0, len(values))
	for _, raw := range values {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		if strings.Contains(raw, "/") {
			prefix, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("middleware: invalid trusted proxy %q: %w", raw, err)
			}
			proxies = append(proxies, prefix.Masked())
			continue
		}

		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("middleware: invalid trusted proxy %q: %w", raw, err)
		}
		addr = addr.Unmap()
		proxies = append(proxies, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return proxies, nil
}

// Contains reports whether ip belongs to a trusted network.
func (proxies TrustedProxies) Contains(ip string) bool {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return false
	}
	addr = addr.Unmap()

	for _, prefix := range proxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// ClientIP resolves the client address of request. Headers are read only when
// the direct peer is trusted; X-Forwarded-For is walked right to left and the
// first untrusted hop wins.
func (proxies TrustedProxies) ClientIP(request *http.Request) string {
	peer := RealIP(request)
	if !proxies.Contains(peer) {
		return peer
	}

	if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		hops := strings.Split(forwarded, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if _, err := netip.ParseAddr(hop); err != nil {
				break
			}
			if !proxies.Contains(hop) || i == 0 {
				return hop
			}
		}
	}

	if ip := strings.TrimSpace(request.Header.Get(constants.HeaderXRealIP)); ip != "" {
		if _, err := netip.ParseAddr(ip); err == nil {
			return ip
		}
	}
	return peer
}

// TrustProxies rewrites RemoteAddr to [TrustedProxies.ClientIP] so logging and
// rate limiting see the real client. With no proxies configured the peer
// address is kept and forwarding headers are ignored.
func TrustProxies(proxies TrustedProxies) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if len(proxies) > 0 {
				if ip := proxies.ClientIP(request); ip != RealIP(request) {
					request.RemoteAddr = net.JoinHostPort(ip, "0")
				}
			}
			next.ServeHTTP(writer, request)
		})
	}
}
