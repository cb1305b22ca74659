package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/jwebster45206/map-engine/internal/storage"
	"github.com/jwebster45206/map-engine/pkg/travel"
)

// TravelRequest asks for a route between two nodes on a stored map.
type TravelRequest struct {
	MapID uuid.UUID `json:"map_id"`
	From  string    `json:"from"`
	To    string    `json:"to"`
}

// TravelResponse carries the route. Steps is null when no route
// exists; that is a normal outcome, not an error.
type TravelResponse struct {
	Steps []travel.Step `json:"steps"`
}

type TravelHandler struct {
	log     *slog.Logger
	storage storage.Storage
}

func NewTravelHandler(log *slog.Logger, s storage.Storage) *TravelHandler {
	return &TravelHandler{log: log, storage: s}
}

func (h *TravelHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req TravelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.MapID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "map_id is required")
		return
	}
	if req.From == "" || req.To == "" {
		writeError(w, http.StatusBadRequest, "from and to are required")
		return
	}

	data, err := h.storage.LoadMap(r.Context(), req.MapID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Map not found")
			return
		}
		h.log.Error("Failed to load map", "error", err, "id", req.MapID)
		writeError(w, http.StatusInternalServerError, "Failed to load map")
		return
	}

	steps := travel.FindPath(data, req.From, req.To)
	h.log.Debug("Travel path computed",
		"map_id", req.MapID,
		"from", req.From,
		"to", req.To,
		"steps", len(steps))
	writeJSON(w, http.StatusOK, TravelResponse{Steps: steps})
}
