// Package clientip extracts and normalizes the requesting client's IP.
package clientip

import (
	"net"
	"strings"
)

// Loopback and empty addresses are rewritten to this public IP so geo
// classification stays exercisable in local development. Deliberate
// exception path, not derived from request data.
const localFallbackIP = "203.112.218.1"

// FromRequest resolves the client IP from the X-Forwarded-For header
// (first entry wins) falling back to the connection's remote address.
// IPv4-mapped IPv6 notation is normalized and loopback addresses are
// replaced by the local-testing fallback.
func FromRequest(forwardedFor, remoteAddr string) string {
	ip := remoteAddr
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		ip = host
	}

	if forwardedFor != "" {
		ip = strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
	}

	ip = strings.TrimPrefix(ip, "::ffff:")

	if ip == "" || ip == "127.0.0.1" || ip == "::1" || ip == "localhost" {
		return localFallbackIP
	}

	return ip
}
