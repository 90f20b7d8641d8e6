package handler

import (
	"encoding/json"
	"net/http"

	"github.com/scoutdesk/scoutdesk-data/internal/api/respond"
	"github.com/scoutdesk/scoutdesk-data/internal/cache"
	"github.com/scoutdesk/scoutdesk-data/internal/config"
)

// languagesCacheKey caches the supported-languages payload; the table is
// fixed at compile time, so the long static TTL applies.
const languagesCacheKey = "languages"

// LanguageInfo describes one supported source site.
type LanguageInfo struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

// SupportedLanguages lists the source languages the extractor understands.
// @Summary Supported source languages
// @Description Lists the site domains and language codes profile URLs may use. Unknown domains are treated as English.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string][]LanguageInfo
// @Router /api/v1/supported-languages [get]
func (h *Handler) SupportedLanguages(w http.ResponseWriter, r *http.Request) {
	if data, etag, hit := h.cache.Get(languagesCacheKey); hit {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLStatic, true)
		return
	}

	languages := make([]LanguageInfo, 0, len(config.SupportedLanguages))
	for _, l := range config.SupportedLanguages {
		languages = append(languages, LanguageInfo{Code: l.Code, Name: l.Name, Domain: l.Domain})
	}
	data, err := json.Marshal(map[string][]LanguageInfo{"languages": languages})
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODING_FAILED", "Response could not be encoded")
		return
	}
	etag := h.cache.Set(languagesCacheKey, data, cache.TTLStatic)
	respond.WriteJSON(w, data, etag, cache.TTLStatic, false)
}
