package client

import (
	"regexp"
	"strings"
)

var (
	httpURLPattern     = regexp.MustCompile(`(?i)^http://`)
	absoluteURLPattern = regexp.MustCompile(`(?i)^https?://`)
	loopbackPattern    = regexp.MustCompile(`(?i)^https?://(localhost|127\.0\.0\.1|\[::1\])(:\d+)?([/?#]|$)`)
)

// ImageURL turns a possibly relative resource path into an absolute URL on the asset host.
//
// When the client was built with UpgradeInsecureAssets, plain http URLs are rewritten to https unless they point at a
// loopback address (localhost, 127.0.0.1, [::1], with optional port). The empty string is returned unchanged.
func (c *Client) ImageURL(raw string) string {
	if raw == "" {
		return ""
	}

	full := raw
	if !absoluteURLPattern.MatchString(raw) {
		if !strings.HasPrefix(raw, "/") {
			raw = "/" + raw
		}
		full = c.assetURL + raw
	}

	if c.upgradeAssets && httpURLPattern.MatchString(full) && !IsLoopbackURL(full) {
		return httpURLPattern.ReplaceAllString(full, "https://")
	}
	return full
}

// IsLoopbackURL reports whether the host of the absolute URL rawURL is the local machine
func IsLoopbackURL(rawURL string) bool {
	return loopbackPattern.MatchString(rawURL)
}
