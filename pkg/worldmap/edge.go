package worldmap

import "math"

// EdgeType describes the kind of connection an edge represents.
type EdgeType string

const (
	EdgePath            EdgeType = "path"
	EdgeRoad            EdgeType = "road"
	EdgeSeaRoute        EdgeType = "sea_route"
	EdgeDoor            EdgeType = "door"
	EdgeTeleporter      EdgeType = "teleporter"
	EdgeSecretPassage   EdgeType = "secret_passage"
	EdgeRiverCrossing   EdgeType = "river_crossing"
	EdgeTemporaryBridge EdgeType = "temporary_bridge"
	EdgeBoardingHook    EdgeType = "boarding_hook"
	EdgeShortcut        EdgeType = "shortcut"
)

var edgeTypes = map[EdgeType]bool{
	EdgePath:            true,
	EdgeRoad:            true,
	EdgeSeaRoute:        true,
	EdgeDoor:            true,
	EdgeTeleporter:      true,
	EdgeSecretPassage:   true,
	EdgeRiverCrossing:   true,
	EdgeTemporaryBridge: true,
	EdgeBoardingHook:    true,
	EdgeShortcut:        true,
}

// Valid reports whether t is a known edge type.
func (t EdgeType) Valid() bool {
	return edgeTypes[t]
}

// EdgeStatus is the travel state of an edge.
type EdgeStatus string

const (
	EdgeOpen       EdgeStatus = "open"
	EdgeAccessible EdgeStatus = "accessible"
	EdgeClosed     EdgeStatus = "closed"
	EdgeLocked     EdgeStatus = "locked"
	EdgeBlocked    EdgeStatus = "blocked"
	EdgeHidden     EdgeStatus = "hidden"
	EdgeRumored    EdgeStatus = "rumored"
	EdgeOneWay     EdgeStatus = "one_way"
	EdgeCollapsed  EdgeStatus = "collapsed"
	EdgeRemoved    EdgeStatus = "removed"
	EdgeActive     EdgeStatus = "active"
	EdgeInactive   EdgeStatus = "inactive"
)

// edgeStatusCosts maps traversable statuses to their travel cost.
// Statuses absent from the map are untraversable.
var edgeStatusCosts = map[EdgeStatus]float64{
	EdgeOpen:       1,
	EdgeAccessible: 1,
	EdgeActive:     1,
	EdgeOneWay:     1,
	EdgeRumored:    5,
}

var edgeStatuses = map[EdgeStatus]bool{
	EdgeOpen:       true,
	EdgeAccessible: true,
	EdgeClosed:     true,
	EdgeLocked:     true,
	EdgeBlocked:    true,
	EdgeHidden:     true,
	EdgeRumored:    true,
	EdgeOneWay:     true,
	EdgeCollapsed:  true,
	EdgeRemoved:    true,
	EdgeActive:     true,
	EdgeInactive:   true,
}

// Valid reports whether s is a known edge status.
func (s EdgeStatus) Valid() bool {
	return edgeStatuses[s]
}

// Cost returns the travel cost for the status. Untraversable statuses
// return +Inf and false.
func (s EdgeStatus) Cost() (float64, bool) {
	if c, ok := edgeStatusCosts[s]; ok {
		return c, true
	}
	return math.Inf(1), false
}

// MapEdge is an authored connection between two nodes.
type MapEdge struct {
	ID           string     `json:"id"`
	SourceNodeID string     `json:"source_node_id"`
	TargetNodeID string     `json:"target_node_id"`
	Type         EdgeType   `json:"type"`
	Status       EdgeStatus `json:"status"`
	TravelTime   string     `json:"travel_time,omitempty"` // Descriptive, e.g. "half a day on foot"
	Description  string     `json:"description,omitempty"`
}

// Traversable reports whether the edge can be traveled at all.
func (e *MapEdge) Traversable() bool {
	_, ok := e.Status.Cost()
	return ok
}

// OneWay reports whether the edge may only be traveled source to target.
func (e *MapEdge) OneWay() bool {
	return e.Status == EdgeOneWay
}

// Touches reports whether the edge has the node as either endpoint.
func (e *MapEdge) Touches(nodeID string) bool {
	return e.SourceNodeID == nodeID || e.TargetNodeID == nodeID
}

// Other returns the opposite endpoint from nodeID, or "" if the edge
// does not touch nodeID.
func (e *MapEdge) Other(nodeID string) string {
	switch nodeID {
	case e.SourceNodeID:
		return e.TargetNodeID
	case e.TargetNodeID:
		return e.SourceNodeID
	}
	return ""
}
