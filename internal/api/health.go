package api

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	Service      string    `json:"service"`
	Version      string    `json:"version"`
	ResponseTime int64     `json:"responseTime"`
	Error        string    `json:"error,omitempty"`
}

// Health reports service status, including database reachability when a
// database is configured.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := h.now()
	resp := healthResponse{
		Status:    "healthy",
		Timestamp: start.UTC(),
		Service:   ServiceName,
		Version:   Version,
	}
	status := http.StatusOK

	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			h.logger.ErrorContext(r.Context(), "health check failed", "error", err)
			resp.Status = "unhealthy"
			resp.Error = err.Error()
			status = http.StatusInternalServerError
		}
	}

	resp.ResponseTime = h.now().Sub(start).Milliseconds()
	JSON(w, status, resp)
}
