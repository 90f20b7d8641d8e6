package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/scoutdesk/scoutdesk-data/internal/api/respond"
	"github.com/scoutdesk/scoutdesk-data/internal/cache"
	"github.com/scoutdesk/scoutdesk-data/internal/player"
	"github.com/scoutdesk/scoutdesk-data/internal/scraper"
	"github.com/scoutdesk/scoutdesk-data/internal/seed"
)

// ScrapeRequest is the body of POST /api/v1/scrape.
type ScrapeRequest struct {
	URL  string `json:"url"`
	Save bool   `json:"save,omitempty"`
}

// ScrapeResponse carries both the canonical record and its database shape.
type ScrapeResponse struct {
	Player   *player.Record        `json:"player"`
	Database player.DatabaseRecord `json:"database_format"`
	Saved    bool                  `json:"saved"`
}

// Scrape extracts a player profile from a submitted URL.
// @Summary Extract a player profile
// @Description Fetches the profile page, normalizes all fields to English, and returns both the canonical record and the database shape. With save=true the record is also upserted into the players table.
// @Tags scrape
// @Accept json
// @Produce json
// @Param request body ScrapeRequest true "Profile URL and options"
// @Success 200 {object} ScrapeResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/scrape [post]
func (h *Handler) Scrape(w http.ResponseWriter, r *http.Request) {
	var req ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be JSON with a url field")
		return
	}
	if req.URL == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_URL", "url is required")
		return
	}

	profileURL := scraper.NormalizeURL(req.URL)
	playerID, ok := scraper.ExtractPlayerID(profileURL)
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_URL", "No player id found in URL")
		return
	}
	lang := scraper.DetectLanguage(profileURL)

	// Cached extractions are only reused for plain reads; a save always
	// re-fetches so the database gets current data.
	key := cache.PlayerKey(playerID, lang)
	if !req.Save {
		if data, etag, hit := h.cache.Get(key); hit {
			if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
				respond.WriteNotModified(w, etag)
				return
			}
			respond.WriteJSON(w, data, etag, cache.TTLPlayerProfile, true)
			return
		}
	}

	rec, err := h.scraper.ExtractPlayer(r.Context(), profileURL)
	if err != nil {
		var invalidURL *scraper.InvalidURLError
		var network *scraper.NetworkError
		switch {
		case errors.As(err, &invalidURL):
			respond.WriteError(w, http.StatusBadRequest, "INVALID_URL", "No player id found in URL")
		case errors.As(err, &network):
			respond.WriteErrorDetail(w, http.StatusBadGateway, "UPSTREAM_ERROR", "Profile page could not be fetched", network.Error())
		default:
			respond.WriteError(w, http.StatusInternalServerError, "EXTRACTION_FAILED", "Extraction failed")
		}
		return
	}

	resp := ScrapeResponse{
		Player:   rec,
		Database: player.MapToDatabase(rec),
	}

	if req.Save {
		if h.pool == nil {
			respond.WriteError(w, http.StatusBadRequest, "DB_NOT_CONFIGURED", "save requested but no database is configured")
			return
		}
		if err := seed.UpsertPlayer(r.Context(), h.pool.Pool, rec.ID, resp.Database); err != nil {
			respond.WriteErrorDetail(w, http.StatusInternalServerError, "SAVE_FAILED", "Player could not be saved", err.Error())
			return
		}
		resp.Saved = true
	}

	data, err := json.Marshal(resp)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODING_FAILED", "Response could not be encoded")
		return
	}
	etag := h.cache.Set(key, data, cache.TTLPlayerProfile)
	respond.WriteJSON(w, data, etag, cache.TTLPlayerProfile, false)
}
