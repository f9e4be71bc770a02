package clientip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name         string
		forwardedFor string
		remoteAddr   string
		want         string
	}{
		{
			name:       "remote addr with port",
			remoteAddr: "198.51.100.7:51234",
			want:       "198.51.100.7",
		},
		{
			name:         "forwarded-for wins over remote addr",
			forwardedFor: "198.51.100.7",
			remoteAddr:   "10.0.0.1:80",
			want:         "198.51.100.7",
		},
		{
			name:         "first forwarded-for entry wins",
			forwardedFor: "198.51.100.7, 10.0.0.1, 172.16.0.1",
			remoteAddr:   "10.0.0.1:80",
			want:         "198.51.100.7",
		},
		{
			name:         "forwarded-for entries are trimmed",
			forwardedFor: "  198.51.100.7 , 10.0.0.1",
			remoteAddr:   "10.0.0.1:80",
			want:         "198.51.100.7",
		},
		{
			name:       "ipv4-mapped ipv6 is normalized",
			remoteAddr: "[::ffff:198.51.100.7]:443",
			want:       "198.51.100.7",
		},
		{
			name:         "mapped notation in forwarded-for",
			forwardedFor: "::ffff:198.51.100.7",
			remoteAddr:   "10.0.0.1:80",
			want:         "198.51.100.7",
		},
		{
			name:       "loopback rewritten to public test IP",
			remoteAddr: "127.0.0.1:51234",
			want:       "203.112.218.1",
		},
		{
			name:       "ipv6 loopback rewritten",
			remoteAddr: "[::1]:51234",
			want:       "203.112.218.1",
		},
		{
			name:       "empty remote addr rewritten",
			remoteAddr: "",
			want:       "203.112.218.1",
		},
		{
			name:         "loopback in forwarded-for rewritten",
			forwardedFor: "127.0.0.1",
			remoteAddr:   "198.51.100.7:80",
			want:         "203.112.218.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromRequest(tt.forwardedFor, tt.remoteAddr))
		})
	}
}
