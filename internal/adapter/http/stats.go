package httpadapter

import (
	"net/http"
	"time"

	"vast-core/internal/core/port"
)

// handleStatsOverview returns ingestion statistics over a period. It accepts
// optional `from` and `to` (RFC3339 timestamps) query parameters. If no
// period is provided, it defaults to the last 24 hours. Invalid parameters
// result in HTTP 400.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.From = time.Now().Add(-24 * time.Hour)
	}

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.To = time.Now()
	}

	if req.To.Before(req.From) {
		http.Error(w, "'to' is before 'from'", http.StatusBadRequest)
		return
	}

	stats, err := h.svc.GetStats(r.Context(), req)
	if err != nil {
		h.writeError(w, "stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
