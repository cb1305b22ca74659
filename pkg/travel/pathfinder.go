package travel

import (
	"math"

	"github.com/jwebster45206/map-engine/pkg/pqueue"
	"github.com/jwebster45206/map-engine/pkg/worldmap"
)

// StepKind distinguishes node and edge entries in a path.
type StepKind string

const (
	StepNode StepKind = "node"
	StepEdge StepKind = "edge"
)

// Step is one entry in a returned path. Paths alternate
// node, edge, node, ..., node.
type Step struct {
	Step StepKind `json:"step"`
	ID   string   `json:"id"`
}

type cameFrom struct {
	nodeID string
	edgeID string
}

// FindPath returns the minimum-cost route from startID to endID, or
// nil when no route exists (unknown endpoints, blocked endpoints, or a
// disconnected graph). Ties between equal-cost routes fall to heap
// insertion order, which is stable for a given snapshot.
func FindPath(data *worldmap.MapData, startID, endID string) []Step {
	if data == nil {
		return nil
	}
	adj := BuildAdjacency(data)
	if !adj.traversable(startID) || !adj.traversable(endID) {
		return nil
	}
	if startID == endID {
		return []Step{{Step: StepNode, ID: startID}}
	}

	dist := make(map[string]float64, len(adj.NodeByID))
	prev := make(map[string]cameFrom)
	dist[startID] = 0

	open := pqueue.New[string]()
	open.Push(startID, 0)

	for open.Len() > 0 {
		current, cost, _ := open.Pop()
		best, seen := dist[current]
		if !seen || cost > best {
			continue // stale entry, a cheaper push already won
		}
		if current == endID {
			break
		}
		for _, nb := range adj.Neighbors[current] {
			if !hierarchyUsable(adj, current, nb, startID, endID) {
				continue
			}
			next := cost + nb.Cost
			if old, ok := dist[nb.To]; ok && old <= next {
				continue
			}
			dist[nb.To] = next
			prev[nb.To] = cameFrom{nodeID: current, edgeID: nb.EdgeID}
			open.Push(nb.To, next)
		}
	}

	if end, ok := dist[endID]; !ok || math.IsInf(end, 1) {
		return nil
	}
	if _, ok := prev[endID]; !ok {
		return nil
	}

	// Walk predecessors back to the start, then reverse into
	// node/edge/node order.
	reversed := []Step{{Step: StepNode, ID: endID}}
	for at := endID; at != startID; {
		from := prev[at]
		reversed = append(reversed, Step{Step: StepEdge, ID: from.edgeID})
		reversed = append(reversed, Step{Step: StepNode, ID: from.nodeID})
		at = from.nodeID
	}
	path := make([]Step, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}

// hierarchyUsable applies the search-time hierarchy gate. Climbing from a
// node to its parent is only worthwhile if the parent still has a
// usable child other than the node we are leaving and other than the
// search origin; otherwise the climb can only lead back where we came
// from. The gate is waived when the parent is the goal itself. Authored
// edges and descending or feature links pass unconditionally.
func hierarchyUsable(adj *Adjacency, current string, nb Neighbor, startID, endID string) bool {
	if !IsHierarchyEdge(nb.EdgeID) {
		return true
	}
	cur, ok := adj.NodeByID[current]
	if !ok || cur.IsRoot() || cur.ParentNodeID != nb.To {
		return true
	}
	if nb.To == endID {
		return true
	}
	return adj.HasUsableSibling(nb.To, current, startID)
}
