package worldmap

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MapData is the full location graph for a session. The travel and
// locate packages treat it as a read-only snapshot; all mutation
// happens in the game-state layer that owns it.
type MapData struct {
	ID    uuid.UUID `json:"id,omitempty"` // Unique per session
	Name  string    `json:"name,omitempty"`
	Nodes []MapNode `json:"nodes"`
	Edges []MapEdge `json:"edges,omitempty"`
}

// NewMapData creates an empty snapshot with a fresh session id.
func NewMapData() *MapData {
	return &MapData{
		ID:    uuid.New(),
		Nodes: make([]MapNode, 0),
		Edges: make([]MapEdge, 0),
	}
}

// NodeByID returns the node with the given id, or nil.
func (m *MapData) NodeByID(id string) *MapNode {
	for i := range m.Nodes {
		if m.Nodes[i].ID == id {
			return &m.Nodes[i]
		}
	}
	return nil
}

// EdgeByID returns the edge with the given id, or nil.
func (m *MapData) EdgeByID(id string) *MapEdge {
	for i := range m.Edges {
		if m.Edges[i].ID == id {
			return &m.Edges[i]
		}
	}
	return nil
}

// Validate checks the snapshot's structural invariants and returns one
// error per violation. An empty result means the map is well formed.
func (m *MapData) Validate() []error {
	var errs []error

	byID := make(map[string]*MapNode, len(m.Nodes))
	for i := range m.Nodes {
		n := &m.Nodes[i]
		if strings.TrimSpace(n.ID) == "" {
			errs = append(errs, fmt.Errorf("node %d: missing id", i))
			continue
		}
		if _, dup := byID[n.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate node id %q", n.ID))
			continue
		}
		byID[n.ID] = n
		if strings.TrimSpace(n.PlaceName) == "" {
			errs = append(errs, fmt.Errorf("node %q: missing place_name", n.ID))
		}
		if !n.NodeType.Valid() {
			errs = append(errs, fmt.Errorf("node %q: unknown node_type %q", n.ID, n.NodeType))
		}
		if !n.Status.Valid() {
			errs = append(errs, fmt.Errorf("node %q: unknown status %q", n.ID, n.Status))
		}
	}

	for i := range m.Nodes {
		n := &m.Nodes[i]
		if n.IsRoot() {
			continue
		}
		parent, ok := byID[n.ParentNodeID]
		if !ok {
			errs = append(errs, fmt.Errorf("node %q: parent %q does not exist", n.ID, n.ParentNodeID))
			continue
		}
		if parent.NodeType == NodeFeature {
			errs = append(errs, fmt.Errorf("node %q: parent %q is a feature; features cannot contain nodes", n.ID, parent.ID))
			continue
		}
		// Features attach anywhere; everything else must sit at or
		// below its parent's level.
		if n.NodeType == NodeFeature {
			continue
		}
		childLevel, cok := n.NodeType.Level()
		parentLevel, pok := parent.NodeType.Level()
		if cok && pok && childLevel < parentLevel {
			errs = append(errs, fmt.Errorf("node %q (%s) cannot be a child of %q (%s)", n.ID, n.NodeType, parent.ID, parent.NodeType))
		}
	}

	edgeIDs := make(map[string]bool, len(m.Edges))
	for i := range m.Edges {
		e := &m.Edges[i]
		if strings.TrimSpace(e.ID) == "" {
			errs = append(errs, fmt.Errorf("edge %d: missing id", i))
			continue
		}
		if edgeIDs[e.ID] {
			errs = append(errs, fmt.Errorf("duplicate edge id %q", e.ID))
			continue
		}
		edgeIDs[e.ID] = true
		if _, ok := byID[e.SourceNodeID]; !ok {
			errs = append(errs, fmt.Errorf("edge %q: source node %q does not exist", e.ID, e.SourceNodeID))
		}
		if _, ok := byID[e.TargetNodeID]; !ok {
			errs = append(errs, fmt.Errorf("edge %q: target node %q does not exist", e.ID, e.TargetNodeID))
		}
		if !e.Type.Valid() {
			errs = append(errs, fmt.Errorf("edge %q: unknown type %q", e.ID, e.Type))
		}
		if !e.Status.Valid() {
			errs = append(errs, fmt.Errorf("edge %q: unknown status %q", e.ID, e.Status))
		}
	}

	return errs
}
