package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoutdesk/scoutdesk-data/internal/cache"
	"github.com/scoutdesk/scoutdesk-data/internal/config"
	"github.com/scoutdesk/scoutdesk-data/internal/scraper"
)

const profilePage = `<!DOCTYPE html>
<html><body>
<h1 class="data-header__headline-wrapper">#3 James Penrice</h1>
<span class="data-header__club"><a href="#">Livingston FC</a></span>
<a class="data-header__market-value-wrapper">1,20 mln € 14/12/2025</a>
<div class="info-table">
  <span class="info-table__content info-table__content--regular">Date of birth/Age:</span>
  <span class="info-table__content info-table__content--bold">5 Feb 1999 (26)</span>
  <span class="info-table__content info-table__content--regular">Height:</span>
  <span class="info-table__content info-table__content--bold">1,77 m</span>
  <span class="info-table__content info-table__content--regular">Position:</span>
  <span class="info-table__content info-table__content--bold">Left-Back</span>
  <span class="info-table__content info-table__content--regular">Foot:</span>
  <span class="info-table__content info-table__content--bold">left</span>
</div>
</body></html>`

func newTestHandler(t *testing.T) (*Handler, *httptest.Server) {
	t.Helper()
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "spieler/300716") {
			w.Write([]byte(profilePage))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(upstream.Close)

	cfg, err := config.Load()
	require.NoError(t, err)

	s := scraper.New(scraper.Options{})
	h := New(s, cache.New(true), nil, cfg)
	return h, upstream
}

func postScrape(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scrape", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Scrape(w, req)
	return w
}

func TestScrapeExtractsProfile(t *testing.T) {
	h, upstream := newTestHandler(t)
	profileURL := upstream.URL + "/james-penrice/profil/spieler/300716"

	w := postScrape(t, h, `{"url":"`+profileURL+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))

	var resp ScrapeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Player)
	assert.Equal(t, "300716", resp.Player.ID)
	assert.Equal(t, "James Penrice", resp.Player.Name)
	assert.Equal(t, "Left-Back", resp.Player.Position)
	assert.False(t, resp.Saved)

	assert.Equal(t, "Full-Back", string(resp.Database.GeneralRole))
	assert.Equal(t, "LB", resp.Database.SpecificPosition)
	assert.Equal(t, "Left", resp.Database.PreferredFoot)
	assert.Equal(t, 1, resp.Database.CurrentValue)
	assert.Nil(t, resp.Database.Priority)
	assert.Nil(t, resp.Database.Notes)
}

func TestScrapeServesFromCache(t *testing.T) {
	h, upstream := newTestHandler(t)
	profileURL := upstream.URL + "/james-penrice/profil/spieler/300716"
	body := `{"url":"` + profileURL + `"}`

	first := postScrape(t, h, body)
	require.Equal(t, http.StatusOK, first.Code)

	second := postScrape(t, h, body)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestScrapeStripsCaptchaSuffix(t *testing.T) {
	h, upstream := newTestHandler(t)
	profileURL := upstream.URL + "/james-penrice/profil/spieler/300716/fromCaptcha"

	w := postScrape(t, h, `{"url":"`+profileURL+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestScrapeRejectsBadRequests(t *testing.T) {
	h, _ := newTestHandler(t)

	w := postScrape(t, h, `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postScrape(t, h, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postScrape(t, h, `{"url":"https://www.transfermarkt.it/no-player-here"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScrapeUpstreamFailure(t *testing.T) {
	h, upstream := newTestHandler(t)
	missing := upstream.URL + "/ghost/profil/spieler/999999"

	w := postScrape(t, h, `{"url":"`+missing+`"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UPSTREAM_ERROR", resp.Error.Code)
}

func TestScrapeSaveWithoutDatabase(t *testing.T) {
	h, upstream := newTestHandler(t)
	profileURL := upstream.URL + "/james-penrice/profil/spieler/300716"

	w := postScrape(t, h, `{"url":"`+profileURL+`","save":true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSupportedLanguages(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/supported-languages", nil)
	w := httptest.NewRecorder()
	h.SupportedLanguages(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	var resp map[string][]LanguageInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["languages"], 6)

	// The language table is static, so the second read comes from the cache
	// and a matching If-None-Match collapses to a 304.
	second := httptest.NewRecorder()
	h.SupportedLanguages(second, httptest.NewRequest(http.MethodGet, "/api/v1/supported-languages", nil))
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.JSONEq(t, w.Body.String(), second.Body.String())

	conditional := httptest.NewRequest(http.MethodGet, "/api/v1/supported-languages", nil)
	conditional.Header.Set("If-None-Match", second.Header().Get("ETag"))
	third := httptest.NewRecorder()
	h.SupportedLanguages(third, conditional)
	assert.Equal(t, http.StatusNotModified, third.Code)
}

func TestPlayersCountWithoutDatabase(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/players/count", nil)
	w := httptest.NewRecorder()
	h.PlayersCount(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "DB_NOT_CONFIGURED")
}

func TestHealthCheck(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.HealthCheck(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/health/db", nil)
	w = httptest.NewRecorder()
	h.HealthCheckDB(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "not_configured")
}
