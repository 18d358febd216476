package utils

import (
	"strings"

	ua "github.com/mileusna/useragent"
)

// DescribeUserAgent condenses a User-Agent header into "Browser on OS (Device)".
func DescribeUserAgent(userAgent string) string {
	if userAgent == "" {
		return "Unknown"
	}

	parsed := ua.Parse(userAgent)

	browser := parsed.Name
	if browser == "" {
		browser = "Unknown Browser"
	}
	os := parsed.OS
	if os == "" {
		os = "Unknown OS"
	}

	device := "Desktop"
	switch {
	case parsed.Bot:
		device = "Bot"
	case parsed.Tablet:
		device = "Tablet"
	case parsed.Mobile:
		device = "Mobile"
	}

	return strings.TrimSpace(browser) + " on " + strings.TrimSpace(os) + " (" + device + ")"
}
