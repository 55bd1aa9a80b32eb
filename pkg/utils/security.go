package utils

import (
	"net/url"
	"strings"
)

// IsAllowedOrigin reports whether origin (an Origin or Referer header value)
// matches one of the allowed patterns. See MatchOrigin for the syntax.
func IsAllowedOrigin(origin string, allowed []string) bool {
	if origin == "" {
		return false
	}

	clean := getCleanOrigin(origin)
	for _, pattern := range allowed {
		if MatchOrigin(clean, pattern) {
			return true
		}
	}
	return false
}

// getCleanOrigin reduces a full URL (e.g. a Referer) to scheme://host.
func getCleanOrigin(originURL string) string {
	u, err := url.Parse(originURL)
	if err != nil {
		return originURL
	}
	if u.Scheme != "" && u.Host != "" {
		return u.Scheme + "://" + u.Host
	}
	return originURL
}

// MatchOrigin matches origin against a single pattern:
//
//	"*"                      anything
//	"https://example.com"    exact
//	"https://**.example.com" the domain and all its subdomains
//	"https://*.example.com"  subdomains only
func MatchOrigin(origin, pattern string) bool {
	if pattern == "*" || origin == pattern {
		return true
	}

	if strings.Contains(pattern, "**.") {
		base := strings.Replace(pattern, "**.", "", 1)
		if origin == base {
			return true
		}
		return strings.HasSuffix(origin, "."+removeProtocol(base))
	}

	if strings.Contains(pattern, "*.") {
		parts := strings.Split(pattern, "*")
		if len(parts) != 2 {
			return false
		}
		prefix, suffix := parts[0], parts[1]
		if len(origin) <= len(prefix)+len(suffix) {
			return false
		}
		if strings.HasPrefix(origin, prefix) && strings.HasSuffix(origin, suffix) {
			middle := origin[len(prefix) : len(origin)-len(suffix)]
			return !strings.Contains(middle, "/")
		}
	}

	return false
}

func removeProtocol(urlStr string) string {
	urlStr = strings.TrimPrefix(urlStr, "https://")
	return strings.TrimPrefix(urlStr, "http://")
}
