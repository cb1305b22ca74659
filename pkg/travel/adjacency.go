// Package travel builds a weighted adjacency view of a worldmap
// snapshot and finds minimum-cost routes across it. Authored edges are
// joined by synthetic "hierarchy" edges so a route can climb up and
// down the containment tree when no authored connection exists.
package travel

import (
	"strings"

	"github.com/jwebster45206/map-engine/pkg/worldmap"
)

// HierarchyCost is the traversal cost of a synthetic hierarchy edge.
// It is deliberately expensive so authored connections win whenever
// one exists.
const HierarchyCost = 20

const hierarchyPrefix = "hierarchy:"

// HierarchyEdgeID names a synthetic edge so it is distinguishable from
// authored edges in a returned path.
func HierarchyEdgeID(from, to string) string {
	return hierarchyPrefix + from + "->" + to
}

// IsHierarchyEdge reports whether the edge id names a synthetic edge.
func IsHierarchyEdge(edgeID string) bool {
	return strings.HasPrefix(edgeID, hierarchyPrefix)
}

// Neighbor is one outgoing connection in the adjacency view.
type Neighbor struct {
	EdgeID string
	To     string
	Cost   float64
}

// Adjacency is the weighted graph derived from a snapshot, plus the
// lookup tables pathfinding needs. It is built fresh per call and
// never outlives it.
type Adjacency struct {
	Neighbors        map[string][]Neighbor
	NodeByID         map[string]*worldmap.MapNode
	ChildrenByParent map[string][]string
}

// BuildAdjacency converts a snapshot into a weighted adjacency view.
// Untraversable nodes and edges are excluded entirely; one_way edges
// get a forward entry only. Hierarchy edges connect a node to its
// parent in both directions, but only when at least one traversable
// sibling exists under that parent; a lone child gains nothing from
// climbing to its parent and back. Feature nodes are additionally
// linked to each traversable non-feature sibling.
func BuildAdjacency(data *worldmap.MapData) *Adjacency {
	adj := &Adjacency{
		Neighbors:        make(map[string][]Neighbor),
		NodeByID:         make(map[string]*worldmap.MapNode, len(data.Nodes)),
		ChildrenByParent: make(map[string][]string),
	}

	for i := range data.Nodes {
		n := &data.Nodes[i]
		if _, dup := adj.NodeByID[n.ID]; dup {
			continue
		}
		adj.NodeByID[n.ID] = n
	}
	// Child order follows node input order, which keeps everything
	// downstream deterministic.
	for i := range data.Nodes {
		n := &data.Nodes[i]
		if n.IsRoot() {
			continue
		}
		if _, ok := adj.NodeByID[n.ParentNodeID]; !ok {
			continue
		}
		adj.ChildrenByParent[n.ParentNodeID] = append(adj.ChildrenByParent[n.ParentNodeID], n.ID)
	}

	for i := range data.Edges {
		e := &data.Edges[i]
		cost, ok := e.Status.Cost()
		if !ok {
			continue
		}
		if !adj.traversable(e.SourceNodeID) || !adj.traversable(e.TargetNodeID) {
			continue
		}
		adj.add(e.SourceNodeID, Neighbor{EdgeID: e.ID, To: e.TargetNodeID, Cost: cost})
		if !e.OneWay() {
			adj.add(e.TargetNodeID, Neighbor{EdgeID: e.ID, To: e.SourceNodeID, Cost: cost})
		}
	}

	for i := range data.Nodes {
		n := &data.Nodes[i]
		if n.IsRoot() || !n.Traversable() {
			continue
		}
		if !adj.traversable(n.ParentNodeID) {
			continue
		}
		if !adj.HasUsableSibling(n.ParentNodeID, n.ID) {
			continue
		}
		adj.add(n.ID, Neighbor{EdgeID: HierarchyEdgeID(n.ID, n.ParentNodeID), To: n.ParentNodeID, Cost: HierarchyCost})
		adj.add(n.ParentNodeID, Neighbor{EdgeID: HierarchyEdgeID(n.ParentNodeID, n.ID), To: n.ID, Cost: HierarchyCost})
	}

	// A feature is reachable from its containing area: link features to
	// their non-feature siblings directly.
	for i := range data.Nodes {
		children := adj.ChildrenByParent[data.Nodes[i].ID]
		for _, featureID := range children {
			f := adj.NodeByID[featureID]
			if f.NodeType != worldmap.NodeFeature || !f.Traversable() {
				continue
			}
			for _, siblingID := range children {
				s := adj.NodeByID[siblingID]
				if siblingID == featureID || s.NodeType == worldmap.NodeFeature || !s.Traversable() {
					continue
				}
				adj.add(featureID, Neighbor{EdgeID: HierarchyEdgeID(featureID, siblingID), To: siblingID, Cost: HierarchyCost})
				adj.add(siblingID, Neighbor{EdgeID: HierarchyEdgeID(siblingID, featureID), To: featureID, Cost: HierarchyCost})
			}
		}
	}

	return adj
}

// HasUsableSibling reports whether the parent has at least one
// traversable child besides the excluded ids.
func (a *Adjacency) HasUsableSibling(parentID string, exclude ...string) bool {
	for _, childID := range a.ChildrenByParent[parentID] {
		excluded := false
		for _, ex := range exclude {
			if childID == ex {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		if a.traversable(childID) {
			return true
		}
	}
	return false
}

func (a *Adjacency) traversable(nodeID string) bool {
	n, ok := a.NodeByID[nodeID]
	return ok && n.Traversable()
}

func (a *Adjacency) add(from string, nb Neighbor) {
	a.Neighbors[from] = append(a.Neighbors[from], nb)
}
