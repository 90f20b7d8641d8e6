package scraper

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// italianProfile mirrors the structure of a real profile page on the
// Italian site, trimmed to the nodes the extractor reads.
const italianProfile = `<!DOCTYPE html>
<html><body>
<header>
  <h1 class="data-header__headline-wrapper"><span class="data-header__shirt-number">#3</span> James Penrice</h1>
  <span class="data-header__club"><a href="/livingston-fc/startseite/verein/1304">Livingston FC</a></span>
  <a class="data-header__market-value-wrapper">1,20 mln € Aggiornato il: 14/12/2025</a>
  <img class="data-header__profile-image" src="//img.site.example/portrait/header/300716.jpg">
</header>
<div class="info-table">
  <span class="info-table__content info-table__content--regular">Nato il:</span>
  <span class="info-table__content info-table__content--bold">5 feb 1999 (26)</span>
  <span class="info-table__content info-table__content--regular">Luogo di nascita:</span>
  <span class="info-table__content info-table__content--bold">Glasgow</span>
  <span class="info-table__content info-table__content--regular">Altezza:</span>
  <span class="info-table__content info-table__content--bold">1,77 m</span>
  <span class="info-table__content info-table__content--regular">Nazionalit&agrave;:</span>
  <span class="info-table__content info-table__content--bold"><img class="flaggenrahmen" title="Scozia" alt="Scozia"></span>
  <span class="info-table__content info-table__content--regular">Ruolo:</span>
  <span class="info-table__content info-table__content--bold">Difesa - Terzino sinistro</span>
  <span class="info-table__content info-table__content--regular">Piede:</span>
  <span class="info-table__content info-table__content--bold">sinistro</span>
  <span class="info-table__content info-table__content--regular">Scadenza:</span>
  <span class="info-table__content info-table__content--bold">30/06/2027</span>
  <span class="info-table__content info-table__content--regular">Agente:</span>
  <span class="info-table__content info-table__content--bold">Caledonia Sports</span>
</div>
<div class="detail-position">
  <div class="detail-position__position">
    <dl>
      <dt>Ruolo naturale:</dt>
      <dd>Terzino sinistro</dd>
      <dt>Altri ruoli:</dt>
      <dd>Esterno sinistro</dd>
    </dl>
  </div>
  <svg><circle class="detail-position__position-dot" cx="20" cy="90" r="5"></circle></svg>
</div>
</body></html>`

func parseFixture(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractItalianProfile(t *testing.T) {
	doc := parseFixture(t, italianProfile)
	pageURL, _ := url.Parse("https://www.transfermarkt.it/james-penrice/profil/spieler/300716")

	raw := Extract(doc, pageURL)

	assert.Equal(t, "James Penrice", raw.Name)
	assert.Equal(t, "#3", raw.ShirtNumberText)
	assert.Equal(t, "Livingston FC", raw.ClubText)
	assert.Equal(t, "5 feb 1999 (26)", raw.BirthText)
	assert.Equal(t, "Glasgow", raw.BirthPlace)
	assert.Equal(t, "1,77 m", raw.HeightText)
	assert.Equal(t, "Scozia", raw.NationalityText, "flag title wins over empty cell text")
	assert.Equal(t, "Difesa - Terzino sinistro", raw.PositionText)
	assert.Equal(t, "sinistro", raw.FootText)
	assert.Contains(t, raw.MarketValueText, "1,20 mln")
	assert.Equal(t, "30/06/2027", raw.ContractText)
	assert.Equal(t, "Caledonia Sports", raw.AgentText)
	assert.Equal(t, "https://img.site.example/portrait/header/300716.jpg", raw.ImageURL)

	assert.Equal(t, "Terzino sinistro", raw.NaturalPositionText)
	assert.Equal(t, []string{"Esterno sinistro"}, raw.OtherPositionTexts)
	require.NotNil(t, raw.FieldX)
	require.NotNil(t, raw.FieldY)
	assert.Equal(t, 20.0, *raw.FieldX)
	assert.Equal(t, 90.0, *raw.FieldY)
}

func TestNormalizeItalianProfile(t *testing.T) {
	doc := parseFixture(t, italianProfile)
	pageURL, _ := url.Parse("https://www.transfermarkt.it/james-penrice/profil/spieler/300716")
	s := New(Options{})

	raw := Extract(doc, pageURL)
	rec := s.normalize(context.Background(), raw, "300716", pageURL.String(), "it")

	assert.Equal(t, "300716", rec.ID)
	assert.Equal(t, "it", rec.SourceLanguage)
	assert.Equal(t, "James Penrice", rec.Name)
	require.NotNil(t, rec.BirthYear)
	assert.Equal(t, 1999, *rec.BirthYear)
	require.NotNil(t, rec.HeightCM)
	assert.Equal(t, 177, *rec.HeightCM)
	require.NotNil(t, rec.ShirtNumber)
	assert.Equal(t, 3, *rec.ShirtNumber)

	// The manual phrase tables run without any external client.
	assert.Equal(t, "Left-Back", rec.Position)
	assert.Equal(t, "Left-Back", rec.NaturalPosition)
	assert.Equal(t, []string{"Left Wing-Back"}, rec.OtherPositions)
	assert.Equal(t, "left", rec.PreferredFoot)

	require.NotNil(t, rec.MarketValue)
	assert.InDelta(t, 1.2, *rec.MarketValue, 0.0001)
	assert.Equal(t, "14/12/2025", rec.MarketValueUpdated)
	assert.Equal(t, "2027", rec.ContractExpiry)
}

func TestExtractMissingNodes(t *testing.T) {
	doc := parseFixture(t, `<html><body><h1 class="data-header__headline-wrapper">Nobody Special</h1></body></html>`)

	raw := Extract(doc, nil)

	assert.Equal(t, "Nobody Special", raw.Name)
	assert.Empty(t, raw.BirthText)
	assert.Empty(t, raw.PositionText)
	assert.Empty(t, raw.OtherPositionTexts)
	assert.Nil(t, raw.FieldX)
	assert.Nil(t, raw.FieldY)
}

func TestNormalizeFallsBackToInfoTablePosition(t *testing.T) {
	s := New(Options{})
	raw := RawFields{Name: "Someone", PositionText: "Centre-Back"}

	rec := s.normalize(context.Background(), raw, "1", "https://www.transfermarkt.com/x/profil/spieler/1", "en")

	assert.Equal(t, "Centre-Back", rec.Position)
	assert.Equal(t, "Centre-Back", rec.NaturalPosition, "natural position falls back to the main one")
	assert.NotNil(t, rec.OtherPositions)
	assert.Empty(t, rec.OtherPositions)
}

func TestAbsolutizeURL(t *testing.T) {
	pageURL, _ := url.Parse("https://www.transfermarkt.it/x/profil/spieler/1")

	assert.Equal(t, "https://img.example/p.jpg", absolutizeURL("//img.example/p.jpg", pageURL))
	assert.Equal(t, "https://www.transfermarkt.it/p.jpg", absolutizeURL("/p.jpg", pageURL))
	assert.Equal(t, "https://cdn.example/p.jpg", absolutizeURL("https://cdn.example/p.jpg", pageURL))
	assert.Equal(t, "", absolutizeURL("  ", pageURL))
}
