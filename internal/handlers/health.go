package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/map-engine/internal/storage"
)

// HealthResponse is the body of a health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

type HealthHandler struct {
	log     *slog.Logger
	storage storage.Storage
}

func NewHealthHandler(log *slog.Logger, s storage.Storage) *HealthHandler {
	return &HealthHandler{log: log, storage: s}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := HealthResponse{Status: "ok", Storage: "ok"}
	code := http.StatusOK
	if err := h.storage.Ping(r.Context()); err != nil {
		h.log.Error("Storage health check failed", "error", err)
		resp.Status = "degraded"
		resp.Storage = "unavailable"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
