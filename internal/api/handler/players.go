package handler

import (
	"net/http"

	"github.com/scoutdesk/scoutdesk-data/internal/api/respond"
)

// PlayersCount reports how many players the scouting database holds.
// @Summary Stored player count
// @Description Returns the number of players imported into the scouting database.
// @Tags players
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /api/v1/players/count [get]
func (h *Handler) PlayersCount(w http.ResponseWriter, r *http.Request) {
	if h.pool == nil {
		respond.WriteError(w, http.StatusBadRequest, "DB_NOT_CONFIGURED", "no database is configured")
		return
	}
	count, err := h.pool.PlayerCount(r.Context())
	if err != nil {
		respond.WriteErrorDetail(w, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Player count query failed", err.Error())
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"players": count,
	})
}
