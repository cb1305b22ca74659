package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/jwebster45206/map-engine/internal/storage"
	"github.com/jwebster45206/map-engine/pkg/locate"
)

// ResolveRequest asks for a node resolution against a stored map.
// Exactly one of Description (free text) or Identifier (AI-supplied
// id/name) should be set; Description wins when both are present.
type ResolveRequest struct {
	MapID          uuid.UUID `json:"map_id"`
	Description    string    `json:"description,omitempty"`
	Identifier     string    `json:"identifier,omitempty"`
	PreviousNodeID string    `json:"previous_node_id,omitempty"`
}

// ResolveResponse reports the resolution outcome. A miss is a normal
// 200 response with matched=false; callers decide what to do next.
type ResolveResponse struct {
	Matched bool   `json:"matched"`
	NodeID  string `json:"node_id,omitempty"`
}

type ResolveHandler struct {
	log     *slog.Logger
	storage storage.Storage
}

func NewResolveHandler(log *slog.Logger, s storage.Storage) *ResolveHandler {
	return &ResolveHandler{log: log, storage: s}
}

func (h *ResolveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.MapID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "map_id is required")
		return
	}
	if req.Description == "" && req.Identifier == "" {
		writeError(w, http.StatusBadRequest, "Either description or identifier is required")
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

	var nodeID string
	var matched bool
	if req.Description != "" {
		nodeID, matched = locate.BestMatchingNode(req.Description, data.Nodes, data.Edges, req.PreviousNodeID)
	} else {
		nodeID, matched = locate.MatchIdentifier(req.Identifier, req.PreviousNodeID, data.Nodes)
	}

	h.log.Debug("Resolution attempted",
		"map_id", req.MapID,
		"matched", matched,
		"node_id", nodeID)
	writeJSON(w, http.StatusOK, ResolveResponse{Matched: matched, NodeID: nodeID})
}
