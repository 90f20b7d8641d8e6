package scraper

import (
	"net/url"
	"strings"
)

// domainLanguages maps site domains to language codes. Ordered longest
// domain first so "transfermarkt.com.br" is matched before
// "transfermarkt.com".
var domainLanguages = []struct {
	domain string
	lang   string
}{
	{"transfermarkt.com.br", "pt"},
	{"transfermarkt.co.uk", "en"},
	{"transfermarkt.com", "en"},
	{"transfermarkt.it", "it"},
	{"transfermarkt.es", "es"},
	{"transfermarkt.de", "de"},
	{"transfermarkt.fr", "fr"},
	{"transfermarkt.pt", "pt"},
}

// DetectLanguage maps a profile URL to its source language code. Unknown
// domains and unparseable URLs default to "en"; this is a total function.
func DetectLanguage(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "en"
	}
	host := parsed.Host
	if host == "" {
		host = rawURL
	}
	for _, entry := range domainLanguages {
		if strings.Contains(host, entry.domain) {
			return entry.lang
		}
	}
	return "en"
}
