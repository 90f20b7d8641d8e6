package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.transfermarkt.it/james-penrice/profil/spieler/300716", "it"},
		{"https://www.transfermarkt.es/spieler/1", "es"},
		{"https://www.transfermarkt.de/spieler/1", "de"},
		{"https://www.transfermarkt.fr/spieler/1", "fr"},
		{"https://www.transfermarkt.pt/spieler/1", "pt"},
		{"https://www.transfermarkt.com.br/spieler/1", "pt"},
		{"https://www.transfermarkt.co.uk/spieler/1", "en"},
		{"https://www.transfermarkt.com/spieler/1", "en"},
		{"https://example.com/spieler/1", "en"},
		{"not a url at all", "en"},
		{"", "en"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, DetectLanguage(tc.url), "url %q", tc.url)
	}
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t,
		"https://www.transfermarkt.it/x/profil/spieler/1",
		NormalizeURL(" https://www.transfermarkt.it/x/profil/spieler/1/fromCaptcha "))
	assert.Equal(t,
		"https://www.transfermarkt.it/x/profil/spieler/1",
		NormalizeURL("https://www.transfermarkt.it/x/profil/spieler/1/fromCatpcha"))
	assert.Equal(t,
		"https://www.transfermarkt.it/x/profil/spieler/1",
		NormalizeURL("https://www.transfermarkt.it/x/profil/spieler/1"))
}
