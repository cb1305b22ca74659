package worldmap

// RootParent is the sentinel parent id for nodes at the top of the
// hierarchy. An empty ParentNodeID means the same thing.
const RootParent = "Universe"

// NodeType classifies a map node within the containment hierarchy.
// Types are ordered from broadest to narrowest; a child's type is
// expected to sit at or below its parent's, except Feature, which may
// attach anywhere but is never itself a parent.
type NodeType string

const (
	NodeRegion     NodeType = "region"
	NodeLocation   NodeType = "location"
	NodeSettlement NodeType = "settlement"
	NodeDistrict   NodeType = "district"
	NodeExterior   NodeType = "exterior"
	NodeInterior   NodeType = "interior"
	NodeRoom       NodeType = "room"
	NodeFeature    NodeType = "feature"
)

// nodeTypeLevels orders the hierarchy. Feature is deliberately absent:
// it has no level and attaches anywhere.
var nodeTypeLevels = map[NodeType]int{
	NodeRegion:     0,
	NodeLocation:   1,
	NodeSettlement: 2,
	NodeDistrict:   3,
	NodeExterior:   4,
	NodeInterior:   5,
	NodeRoom:       6,
}

// Level returns the node type's position in the hierarchy ordering and
// whether the type participates in level checks at all.
func (t NodeType) Level() (int, bool) {
	l, ok := nodeTypeLevels[t]
	return l, ok
}

// Valid reports whether t is a known node type.
func (t NodeType) Valid() bool {
	_, ok := nodeTypeLevels[t]
	return ok || t == NodeFeature
}

// NodeStatus is the narrative state of a node.
type NodeStatus string

const (
	NodeUndiscovered NodeStatus = "undiscovered"
	NodeDiscovered   NodeStatus = "discovered"
	NodeRumored      NodeStatus = "rumored"
	NodeQuestTarget  NodeStatus = "quest_target"
	NodeBlocked      NodeStatus = "blocked"
)

var nodeStatuses = map[NodeStatus]bool{
	NodeUndiscovered: true,
	NodeDiscovered:   true,
	NodeRumored:      true,
	NodeQuestTarget:  true,
	NodeBlocked:      true,
}

// Valid reports whether s is a known node status.
func (s NodeStatus) Valid() bool {
	return nodeStatuses[s]
}

// MapNode is a place in the game world. Nodes form a containment
// hierarchy through ParentNodeID and a travel network through MapEdge.
type MapNode struct {
	ID           string     `json:"id"`                       // Unique, stable across the session
	PlaceName    string     `json:"place_name"`               // Display name
	Aliases      []string   `json:"aliases,omitempty"`        // Alternate names, in authoring order
	NodeType     NodeType   `json:"node_type"`                // Position in the hierarchy ordering
	Status       NodeStatus `json:"status"`                   // Narrative state
	ParentNodeID string     `json:"parent_node_id,omitempty"` // Empty or RootParent for top-level nodes
	Description  string     `json:"description,omitempty"`    // Free text for the narrator
}

// IsRoot reports whether the node has no parent.
func (n *MapNode) IsRoot() bool {
	return n.ParentNodeID == "" || n.ParentNodeID == RootParent
}

// Traversable reports whether travel may pass through the node.
func (n *MapNode) Traversable() bool {
	return n.Status != NodeBlocked
}

// Names returns the place name followed by all aliases.
func (n *MapNode) Names() []string {
	names := make([]string, 0, len(n.Aliases)+1)
	names = append(names, n.PlaceName)
	names = append(names, n.Aliases...)
	return names
}
