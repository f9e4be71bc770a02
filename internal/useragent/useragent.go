// Package useragent classifies user-agent strings into device, browser
// and OS labels. Pure string matching: no state, no I/O, identical input
// always yields identical output.
package useragent

import "strings"

// Classification of one user-agent string. Fields are never empty;
// anything unclassifiable becomes "Unknown".
type Classification struct {
	Device  string // Desktop, Mobile or Tablet
	Browser string
	OS      string
}

// Parse classifies a raw User-Agent header value. Matching is
// case-insensitive and order-sensitive: the first matching rule wins,
// so Edge is checked before Chrome (Edge's UA also carries the Chrome
// token) and Safari only matches without the Chrome token.
func Parse(userAgent string) Classification {
	if userAgent == "" {
		return Classification{Device: "Unknown", Browser: "Unknown", OS: "Unknown"}
	}

	ua := strings.ToLower(userAgent)

	device := "Desktop"
	switch {
	case containsAny(ua, "mobile", "android", "iphone", "ipod", "blackberry", "windows phone"):
		device = "Mobile"
	case containsAny(ua, "tablet", "ipad"):
		device = "Tablet"
	}

	browser := "Unknown"
	switch {
	case strings.Contains(ua, "edg/"):
		browser = "Edge"
	case strings.Contains(ua, "chrome/"):
		browser = "Chrome"
	case strings.Contains(ua, "firefox/"):
		browser = "Firefox"
	case strings.Contains(ua, "safari/"):
		browser = "Safari"
	case containsAny(ua, "opera/", "opr/"):
		browser = "Opera"
	case containsAny(ua, "trident/", "msie"):
		browser = "Internet Explorer"
	}

	os := "Unknown"
	switch {
	case strings.Contains(ua, "windows nt 10"):
		os = "Windows 10/11"
	case strings.Contains(ua, "windows nt 6.3"):
		os = "Windows 8.1"
	case strings.Contains(ua, "windows nt 6.2"):
		os = "Windows 8"
	case strings.Contains(ua, "windows nt 6.1"):
		os = "Windows 7"
	case strings.Contains(ua, "windows"):
		os = "Windows"
	// Mobile systems before mac os x: iOS user agents carry a
	// "like Mac OS X" token and Android ones carry "linux".
	case strings.Contains(ua, "android"):
		os = "Android"
	case containsAny(ua, "iphone os", "ipad", "ios"):
		os = "iOS"
	case strings.Contains(ua, "mac os x"):
		os = "macOS"
	case strings.Contains(ua, "ubuntu"):
		os = "Ubuntu"
	case strings.Contains(ua, "linux"):
		os = "Linux"
	}

	return Classification{Device: device, Browser: browser, OS: os}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
