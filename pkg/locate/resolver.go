package locate

import (
	"regexp"
	"strings"

	"github.com/jwebster45206/map-engine/pkg/worldmap"
)

// suffixedIDPattern matches ids of the form <base>-<4 alphanumerics>.
// AI-generated ids frequently come back with the base intact and the
// short random suffix corrupted, so the base alone is worth searching.
var suffixedIDPattern = regexp.MustCompile(`^(.+)-([a-zA-Z0-9]{4})$`)

// MatchIdentifier resolves an AI-supplied identifier to a node id. The
// identifier may be an exact id, a corrupted id, a place name, or an
// alias. Returns ("", false) when nothing matches; that is an expected
// outcome, not an error.
func MatchIdentifier(suggested string, previousNodeID string, nodes []worldmap.MapNode) (string, bool) {
	suggested = strings.TrimSpace(suggested)
	if suggested == "" || len(nodes) == 0 {
		return "", false
	}

	// 1. Exact id.
	for i := range nodes {
		if nodes[i].ID == suggested {
			return nodes[i].ID, true
		}
	}

	// 2. Case-insensitive containment within a known id.
	lowered := strings.ToLower(suggested)
	for i := range nodes {
		if strings.Contains(strings.ToLower(nodes[i].ID), lowered) {
			return nodes[i].ID, true
		}
	}

	// 3. Suffix-corruption recovery: match on the base of a
	// <base>-<4 alnum> identifier.
	base := ""
	if m := suffixedIDPattern.FindStringSubmatch(suggested); m != nil {
		base = m[1]
		loweredBase := strings.ToLower(base)
		for i := range nodes {
			if strings.Contains(strings.ToLower(nodes[i].ID), loweredBase) {
				return nodes[i].ID, true
			}
		}
	}

	// 4. Name and alias equality, retried with the extracted base
	// (underscores as spaces) when the raw string finds nothing.
	matches := nodesByName(suggested, nodes)
	if len(matches) == 0 && base != "" {
		matches = nodesByName(strings.ReplaceAll(base, "_", " "), nodes)
	}

	switch len(matches) {
	case 0:
		return "", false
	case 1:
		return matches[0].ID, true
	}

	// Multiple name matches: prefer where the player already was, then
	// any non-feature node, then input order.
	for _, n := range matches {
		if n.ID == previousNodeID {
			return n.ID, true
		}
	}
	for _, n := range matches {
		if n.NodeType != worldmap.NodeFeature {
			return n.ID, true
		}
	}
	return matches[0].ID, true
}

// nodesByName returns nodes whose place name or alias equals the query
// case-insensitively, in input order.
func nodesByName(query string, nodes []worldmap.MapNode) []*worldmap.MapNode {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var matches []*worldmap.MapNode
	for i := range nodes {
		for _, name := range nodes[i].Names() {
			if strings.ToLower(strings.TrimSpace(name)) == q {
				matches = append(matches, &nodes[i])
				break
			}
		}
	}
	return matches
}

// exactCandidate tracks the best hit of the exact-match pass.
type exactCandidate struct {
	node     *worldmap.MapNode
	score    float64
	nameLen  int
	hasMatch bool
}

// BestMatchingNode resolves a free-text location description to a node
// id. An exact-match pass over names and aliases runs first; only when
// it finds nothing does the fuzzy chunk-and-score pipeline run.
// Returns ("", false) when no node matches at all.
func BestMatchingNode(localPlace string, nodes []worldmap.MapNode, edges []worldmap.MapEdge, previousNodeID string) (string, bool) {
	if strings.TrimSpace(localPlace) == "" || len(nodes) == 0 {
		return "", false
	}

	desc := normalize(trimPhrase(localPlace))
	descTokens := strings.Join(tokenize(desc), " ")

	if id, ok := exactPass(desc, descTokens, nodes); ok {
		return id, true
	}

	chunks := ParseChunks(localPlace)
	if len(chunks) == 0 {
		return "", false
	}
	neighbors := directNeighbors(previousNodeID, edges)

	var winner *worldmap.MapNode
	bestScore := 0.0
	for i := range nodes {
		s := scoreNode(&nodes[i], chunks, neighbors)
		if s <= 0 {
			continue
		}
		if winner == nil || s > bestScore || (s == bestScore && fuzzyPreferred(&nodes[i], winner)) {
			winner = &nodes[i]
			bestScore = s
		}
	}
	if winner == nil {
		return "", false
	}

	if id, ok := drillDown(winner, chunks, nodes); ok {
		return id, true
	}
	return winner.ID, true
}

// exactPass scores every name and alias for whole-string agreement
// with the description. Any positive score short-circuits the fuzzy
// pipeline.
func exactPass(desc, descTokens string, nodes []worldmap.MapNode) (string, bool) {
	best := exactCandidate{}
	for i := range nodes {
		n := &nodes[i]
		for _, name := range n.Names() {
			nameNorm := normalize(name)
			if nameNorm == "" {
				continue
			}
			score := 0.0
			switch {
			case desc == nameNorm:
				score = 1000
			case strings.HasSuffix(desc, nameNorm):
				score = 950
			case strings.HasPrefix(desc, nameNorm):
				score = 920
			case descTokens != "" && descTokens == strings.Join(tokenize(nameNorm), " "):
				score = 900
			case strings.Contains(desc, nameNorm):
				score = 800 + 0.5*float64(len(nameNorm))
			}
			if score == 0 {
				continue
			}
			if n.NodeType == worldmap.NodeFeature {
				score += 10
			}
			if better(score, len(nameNorm), n, best) {
				best = exactCandidate{node: n, score: score, nameLen: len(nameNorm), hasMatch: true}
			}
		}
	}
	if !best.hasMatch {
		return "", false
	}
	return best.node.ID, true
}

func better(score float64, nameLen int, n *worldmap.MapNode, cur exactCandidate) bool {
	if !cur.hasMatch || score > cur.score {
		return true
	}
	if score < cur.score {
		return false
	}
	// Equal scores: prefer feature, then the longer name.
	curFeature := cur.node.NodeType == worldmap.NodeFeature
	newFeature := n.NodeType == worldmap.NodeFeature
	if newFeature != curFeature {
		return newFeature
	}
	return nameLen > cur.nameLen
}

// fuzzyPreferred is the tie-break between equal fuzzy scores: prefer a
// feature node, then the longer normalized place name. Beyond that the
// earlier node in input order stands.
func fuzzyPreferred(candidate, current *worldmap.MapNode) bool {
	cf := candidate.NodeType == worldmap.NodeFeature
	wf := current.NodeType == worldmap.NodeFeature
	if cf != wf {
		return cf
	}
	return len(normalize(candidate.PlaceName)) > len(normalize(current.PlaceName))
}

// directNeighbors collects node ids sharing an edge with the previous
// location. Edge status is ignored here: a locked door still tells us
// the places are next to each other.
func directNeighbors(previousNodeID string, edges []worldmap.MapEdge) map[string]bool {
	neighbors := make(map[string]bool)
	if previousNodeID == "" {
		return neighbors
	}
	for i := range edges {
		if other := edges[i].Other(previousNodeID); other != "" {
			neighbors[other] = true
		}
	}
	return neighbors
}

// drillDown refines a root-level, non-feature winner: when the subject
// chunk explicitly names one of its feature children, the feature is
// the better answer. "The old well in Greendale" should land on the
// well, not on Greendale.
func drillDown(winner *worldmap.MapNode, chunks []Chunk, nodes []worldmap.MapNode) (string, bool) {
	if winner.NodeType == worldmap.NodeFeature || !winner.IsRoot() {
		return "", false
	}
	var subjectTokens []string
	for _, c := range chunks {
		if c.PrepositionType == PrepDirect && c.PrepositionKeyword == "" {
			subjectTokens = tokenize(normalize(c.Phrase))
			break
		}
	}
	if len(subjectTokens) == 0 {
		return "", false
	}
	for i := range nodes {
		n := &nodes[i]
		if n.NodeType != worldmap.NodeFeature || n.ParentNodeID != winner.ID {
			continue
		}
		// "Explicitly named" means every token of some name appears in
		// the subject phrase.
		for _, name := range n.Names() {
			nameTokens := tokenize(normalize(name))
			if len(nameTokens) == 0 {
				continue
			}
			if countCommon(nameTokens, subjectTokens) == len(nameTokens) {
				return n.ID, true
			}
		}
	}
	return "", false
}
