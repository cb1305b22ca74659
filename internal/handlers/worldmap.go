package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jwebster45206/map-engine/internal/storage"
	"github.com/jwebster45206/map-engine/pkg/worldmap"
)

// ErrorResponse is the JSON error body for all v1 endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg})
}

// CreateMapRequest creates a session map snapshot, either from a seed
// map file or from an inline map definition.
type CreateMapRequest struct {
	SeedMap string            `json:"seed_map,omitempty"`
	Map     *worldmap.MapData `json:"map,omitempty"`
}

// WorldMapHandler serves /v1/worldmap and /v1/worldmap/{id}.
type WorldMapHandler struct {
	log     *slog.Logger
	storage storage.Storage
}

func NewWorldMapHandler(log *slog.Logger, s storage.Storage) *WorldMapHandler {
	return &WorldMapHandler{log: log, storage: s}
}

func (h *WorldMapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleCreate(w, r)
	case http.MethodGet:
		h.handleGet(w, r)
	case http.MethodDelete:
		h.handleDelete(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *WorldMapHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateMapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := r.Context()
	var data *worldmap.MapData
	switch {
	case req.SeedMap != "":
		seed, err := h.storage.GetSeedMap(ctx, req.SeedMap)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Seed map not found")
				return
			}
			h.log.Error("Failed to load seed map", "error", err, "seed_map", req.SeedMap)
			writeError(w, http.StatusInternalServerError, "Failed to load seed map")
			return
		}
		data = seed
	case req.Map != nil:
		data = req.Map
	default:
		writeError(w, http.StatusBadRequest, "Either seed_map or map is required")
		return
	}

	if errs := data.Validate(); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		writeError(w, http.StatusBadRequest, "Invalid map: "+strings.Join(msgs, "; "))
		return
	}

	data.ID = uuid.New()
	if err := h.storage.SaveMap(ctx, data.ID, data); err != nil {
		h.log.Error("Failed to save map", "error", err, "id", data.ID)
		writeError(w, http.StatusInternalServerError, "Failed to save map")
		return
	}

	h.log.Info("Map snapshot created", "id", data.ID, "nodes", len(data.Nodes), "edges", len(data.Edges))
	writeJSON(w, http.StatusCreated, data)
}

func (h *WorldMapHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	// GET /v1/worldmap lists seed maps; GET /v1/worldmap/{id} loads a
	// session snapshot.
	path := strings.TrimPrefix(r.URL.Path, "/v1/worldmap")
	path = strings.Trim(path, "/")
	if path == "" {
		names, err := h.storage.ListSeedMaps(r.Context())
		if err != nil {
			h.log.Error("Failed to list seed maps", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to list seed maps")
			return
		}
		writeJSON(w, http.StatusOK, map[string][]string{"seed_maps": names})
		return
	}

	id, err := uuid.Parse(path)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid map id")
		return
	}

	data, err := h.storage.LoadMap(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Map not found")
			return
		}
		h.log.Error("Failed to load map", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to load map")
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *WorldMapHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/v1/worldmap")
	id, err := uuid.Parse(strings.Trim(path, "/"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid map id")
		return
	}

	if err := h.storage.DeleteMap(r.Context(), id); err != nil {
		h.log.Error("Failed to delete map", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to delete map")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
