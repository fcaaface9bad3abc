// Package platform derives marketplace platform slugs from seller profile
// URLs. Used as the last fallback when a backend payload carries no
// platform field.
package platform

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// known maps registrable domains to canonical platform slugs. Hosts outside
// this map fall back to the leftmost label of the registrable domain.
var known = map[string]string{
	"jiji.ng":      "jiji",
	"jiji.co.ke":   "jiji",
	"jumia.com.ng": "jumia",
	"jumia.co.ke":  "jumia",
	"konga.com":    "konga",
	"olx.com":      "olx",
	"facebook.com": "facebook",
	"instagram.com": "instagram",
}

// FromURL extracts a platform slug from a marketplace profile URL.
// Returns "" when the URL is unparseable or has no usable host.
func FromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return ""
	}
	host = strings.TrimPrefix(host, "www.")

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// Bare hosts (localhost, IPs) have no registrable domain
		return host
	}

	if slug, ok := known[domain]; ok {
		return slug
	}

	// "jiji.ng" -> "jiji"
	if idx := strings.Index(domain, "."); idx > 0 {
		return domain[:idx]
	}
	return domain
}
