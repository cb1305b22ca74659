package locate

import (
	"testing"

	"github.com/jwebster45206/map-engine/pkg/worldmap"
)

func identifierNodes() []worldmap.MapNode {
	return []worldmap.MapNode{
		{ID: "old-well-ab12", PlaceName: "Old Well", NodeType: worldmap.NodeFeature, ParentNodeID: "greendale-x1y2"},
		{ID: "old-lantern-7fr4", PlaceName: "Old Lantern Inn", NodeType: worldmap.NodeInterior, ParentNodeID: "greendale-x1y2"},
		{ID: "ms-01", PlaceName: "Market Square", Aliases: []string{"the square"}, NodeType: worldmap.NodeExterior, ParentNodeID: "greendale-x1y2"},
		{ID: "greendale-x1y2", PlaceName: "Greendale", NodeType: worldmap.NodeSettlement},
	}
}

func TestMatchIdentifier(t *testing.T) {
	nodes := identifierNodes()

	tests := []struct {
		name      string
		suggested string
		previous  string
		want      string
		wantOK    bool
	}{
		{name: "exact id", suggested: "old-well-ab12", want: "old-well-ab12", wantOK: true},
		{name: "id containment", suggested: "old-well", want: "old-well-ab12", wantOK: true},
		{name: "id containment case insensitive", suggested: "OLD-WELL", want: "old-well-ab12", wantOK: true},
		{name: "corrupted suffix", suggested: "old-lantern-7fx9", want: "old-lantern-7fr4", wantOK: true},
		{name: "place name", suggested: "Market Square", want: "ms-01", wantOK: true},
		{name: "alias", suggested: "The Square", want: "ms-01", wantOK: true},
		{name: "base with underscores", suggested: "market_square-zz99", want: "ms-01", wantOK: true},
		{name: "unknown", suggested: "the-sunken-city", wantOK: false},
		{name: "empty", suggested: "   ", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchIdentifier(tt.suggested, tt.previous, nodes)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("MatchIdentifier(%q) = (%q, %v), want (%q, %v)", tt.suggested, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if id, ok := MatchIdentifier("old-well-ab12", "", nil); ok || id != "" {
		t.Errorf("expected no match against empty node list, got (%q, %v)", id, ok)
	}
}

func TestMatchIdentifier_NameTieBreaks(t *testing.T) {
	nodes := []worldmap.MapNode{
		{ID: "f1", PlaceName: "Old Well", NodeType: worldmap.NodeFeature, ParentNodeID: "s1"},
		{ID: "f2", PlaceName: "Old Well", NodeType: worldmap.NodeFeature, ParentNodeID: "s2"},
		{ID: "e1", PlaceName: "Old Well", NodeType: worldmap.NodeExterior, ParentNodeID: "s1"},
	}

	// The previous location wins over everything.
	if id, _ := MatchIdentifier("Old Well", "f2", nodes); id != "f2" {
		t.Errorf("previous location should win ambiguity, got %q", id)
	}

	// Without it, a non-feature node beats features.
	if id, _ := MatchIdentifier("Old Well", "", nodes); id != "e1" {
		t.Errorf("non-feature node should win ambiguity, got %q", id)
	}

	// All features: first in input order stands.
	features := nodes[:2]
	if id, _ := MatchIdentifier("Old Well", "", features); id != "f1" {
		t.Errorf("input order should break the remaining tie, got %q", id)
	}
}

func TestBestMatchingNode_ExactPass(t *testing.T) {
	nodes := []worldmap.MapNode{
		{ID: "g1", PlaceName: "Greendale", NodeType: worldmap.NodeSettlement},
		{ID: "w1", PlaceName: "Old Well", NodeType: worldmap.NodeFeature, ParentNodeID: "g1"},
		{ID: "m1", PlaceName: "Market Square", NodeType: worldmap.NodeExterior, ParentNodeID: "g1"},
	}

	tests := []struct {
		name  string
		place string
		want  string
	}{
		{name: "whole description", place: "Old Well", want: "w1"},
		{name: "description ends with name", place: "the Old Well", want: "w1"},
		{name: "description starts with name", place: "Market Square at dusk", want: "m1"},
		{name: "name buried in description", place: "the shadowed market square district", want: "m1"},
		{name: "punctuation and case ignored", place: "  OLD   WELL!  ", want: "w1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BestMatchingNode(tt.place, nodes, nil, "")
			if !ok || got != tt.want {
				t.Errorf("BestMatchingNode(%q) = (%q, %v), want (%q, true)", tt.place, got, ok, tt.want)
			}
		})
	}
}

func TestBestMatchingNode_ExactTieBreakPrefersFeature(t *testing.T) {
	nodes := []worldmap.MapNode{
		{ID: "e1", PlaceName: "Old Well", NodeType: worldmap.NodeExterior, ParentNodeID: "g1"},
		{ID: "f1", PlaceName: "Old Well", NodeType: worldmap.NodeFeature, ParentNodeID: "g1"},
		{ID: "g1", PlaceName: "Greendale", NodeType: worldmap.NodeSettlement},
	}
	got, ok := BestMatchingNode("the old well", nodes, nil, "")
	if !ok || got != "f1" {
		t.Errorf("expected feature f1 to win the exact tie, got (%q, %v)", got, ok)
	}
}

func TestBestMatchingNode_FuzzyWithNegation(t *testing.T) {
	nodes := []worldmap.MapNode{
		{ID: "m1", PlaceName: "Grand Market Square", NodeType: worldmap.NodeExterior, ParentNodeID: "g1"},
		{ID: "w1", PlaceName: "Old Stone Well", NodeType: worldmap.NodeFeature, ParentNodeID: "g1"},
		{ID: "g1", PlaceName: "Greendale", NodeType: worldmap.NodeSettlement},
	}
	got, ok := BestMatchingNode("near the market square, far from the stone well", nodes, nil, "")
	if !ok || got != "m1" {
		t.Errorf("expected the non-negated mention to win, got (%q, %v)", got, ok)
	}
}

func TestBestMatchingNode_ProximityBreaksFuzzyContest(t *testing.T) {
	// Two equally plausible markets; the one adjacent to the player's
	// previous location should win.
	nodes := []worldmap.MapNode{
		{ID: "m1", PlaceName: "North Market", NodeType: worldmap.NodeExterior, ParentNodeID: "g1"},
		{ID: "m2", PlaceName: "South Market", NodeType: worldmap.NodeExterior, ParentNodeID: "g1"},
		{ID: "h1", PlaceName: "Harborside", NodeType: worldmap.NodeExterior, ParentNodeID: "g1"},
		{ID: "g1", PlaceName: "Greendale", NodeType: worldmap.NodeSettlement},
	}
	edges := []worldmap.MapEdge{
		{ID: "e1", SourceNodeID: "h1", TargetNodeID: "m2", Type: worldmap.EdgePath, Status: worldmap.EdgeOpen},
	}
	got, ok := BestMatchingNode("busy market stalls and much shouting", nodes, edges, "h1")
	if !ok || got != "m2" {
		t.Errorf("expected proximity to favor m2, got (%q, %v)", got, ok)
	}
}

func TestBestMatchingNode_DrillDownToFeature(t *testing.T) {
	nodes := []worldmap.MapNode{
		{ID: "g1", PlaceName: "Greendale Valley", NodeType: worldmap.NodeLocation},
		{ID: "f1", PlaceName: "Ferry", NodeType: worldmap.NodeFeature, ParentNodeID: "g1"},
		{ID: "h1", PlaceName: "Harbor", NodeType: worldmap.NodeLocation},
	}
	edges := []worldmap.MapEdge{
		{ID: "e1", SourceNodeID: "h1", TargetNodeID: "g1", Type: worldmap.EdgeSeaRoute, Status: worldmap.EdgeOpen},
	}

	// The valley outscores the ferry, but the subject of the sentence
	// names the ferry: the feature is the better answer.
	got, ok := BestMatchingNode("the rickety old wooden ferries moored here, in greendale vale", nodes, edges, "h1")
	if !ok || got != "f1" {
		t.Errorf("expected drill-down to land on the ferry, got (%q, %v)", got, ok)
	}

	// Same winner without a subject mention of any child stays put.
	got, ok = BestMatchingNode("rolling hills, in greendale vale", nodes, edges, "h1")
	if !ok || got != "g1" {
		t.Errorf("expected the valley itself, got (%q, %v)", got, ok)
	}
}

func TestBestMatchingNode_NoMatch(t *testing.T) {
	nodes := []worldmap.MapNode{
		{ID: "g1", PlaceName: "Greendale", NodeType: worldmap.NodeSettlement},
	}

	if id, ok := BestMatchingNode("somewhere over the rainbow", nodes, nil, ""); ok {
		t.Errorf("expected no match, got %q", id)
	}
	if id, ok := BestMatchingNode("", nodes, nil, ""); ok {
		t.Errorf("expected no match for empty input, got %q", id)
	}
	if id, ok := BestMatchingNode("greendale", nil, nil, ""); ok {
		t.Errorf("expected no match against empty node list, got %q", id)
	}
}
