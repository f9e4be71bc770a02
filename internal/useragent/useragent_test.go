package useragent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      Classification
	}{
		{
			name:      "empty input",
			userAgent: "",
			want:      Classification{Device: "Unknown", Browser: "Unknown", OS: "Unknown"},
		},
		{
			name:      "chrome on windows 10",
			userAgent: "Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 Chrome/90.0 Safari/537.36",
			want:      Classification{Device: "Desktop", Browser: "Chrome", OS: "Windows 10/11"},
		},
		{
			name:      "edge wins over chrome token",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/91.0 Safari/537.36 Edg/91.0",
			want:      Classification{Device: "Desktop", Browser: "Edge", OS: "Windows 10/11"},
		},
		{
			name:      "safari on mac without chrome token",
			userAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 Version/16.1 Safari/605.1.15",
			want:      Classification{Device: "Desktop", Browser: "Safari", OS: "macOS"},
		},
		{
			name:      "firefox on linux",
			userAgent: "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0",
			want:      Classification{Device: "Desktop", Browser: "Firefox", OS: "Linux"},
		},
		{
			name:      "chrome on android phone",
			userAgent: "Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 Chrome/114.0 Mobile Safari/537.36",
			want:      Classification{Device: "Mobile", Browser: "Chrome", OS: "Android"},
		},
		{
			name:      "safari on ipad",
			userAgent: "Mozilla/5.0 (iPad; CPU OS 16_5 like Mac OS X) AppleWebKit/605.1.15 Version/16.5 Safari/604.1",
			want:      Classification{Device: "Tablet", Browser: "Safari", OS: "iOS"},
		},
		{
			name:      "iphone is mobile not tablet",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 16_5 like Mac OS X) AppleWebKit/605.1.15 Version/16.5 Mobile/15E148 Safari/604.1",
			want:      Classification{Device: "Mobile", Browser: "Safari", OS: "iOS"},
		},
		{
			name:      "opera",
			userAgent: "Mozilla/5.0 (Windows NT 6.1) Presto/2.12.388 Opera/12.16",
			want:      Classification{Device: "Desktop", Browser: "Opera", OS: "Windows 7"},
		},
		{
			name:      "internet explorer 11",
			userAgent: "Mozilla/5.0 (Windows NT 6.3; Trident/7.0; rv:11.0) like Gecko",
			want:      Classification{Device: "Desktop", Browser: "Internet Explorer", OS: "Windows 8.1"},
		},
		{
			name:      "windows 8",
			userAgent: "Mozilla/5.0 (Windows NT 6.2; WOW64) AppleWebKit/537.36 Chrome/49.0 Safari/537.36",
			want:      Classification{Device: "Desktop", Browser: "Chrome", OS: "Windows 8"},
		},
		{
			name:      "unrecognized bot",
			userAgent: "curl/8.0.1",
			want:      Classification{Device: "Desktop", Browser: "Unknown", OS: "Unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.userAgent))
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	ua := "Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 Chrome/90.0 Safari/537.36"
	first := Parse(ua)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Parse(ua))
	}
}

func TestParseNeverReturnsEmptyFields(t *testing.T) {
	inputs := []string{"", "gibberish", "Mozilla/5.0", "ipad", "android"}
	for _, in := range inputs {
		c := Parse(in)
		assert.NotEmpty(t, c.Device, "device for %q", in)
		assert.NotEmpty(t, c.Browser, "browser for %q", in)
		assert.NotEmpty(t, c.OS, "os for %q", in)
	}
}
