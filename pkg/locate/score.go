package locate

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/jwebster45206/map-engine/pkg/worldmap"
)

// ProximityBonus is added to a node's score when it is directly
// adjacent to the player's previous location.
const ProximityBonus = 30

var folder = cases.Fold()

// stopWords are dropped during tokenization; they carry no locating
// signal and inflate token counts.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "of": true, "and": true,
	"or": true, "to": true, "in": true, "at": true, "on": true,
	"is": true, "it": true, "its": true, "with": true, "for": true,
}

// normalize lowercases (full Unicode case folding), strips
// punctuation, and collapses whitespace.
func normalize(s string) string {
	folded := folder.String(s)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
		// Punctuation is dropped outright.
	}
	return strings.TrimSpace(strings.Join(strings.Fields(b.String()), " "))
}

// tokenize splits a normalized string into tokens with stop words
// removed.
func tokenize(normalized string) []string {
	fields := strings.Fields(normalized)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if stopWords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// singularForms returns the token together with its singular
// candidates: trailing "s" or "es" stripped, "ies" rewritten to "y".
func singularForms(tok string) []string {
	forms := []string{tok}
	if strings.HasSuffix(tok, "ies") && len(tok) > 3 {
		forms = append(forms, tok[:len(tok)-3]+"y")
	}
	if strings.HasSuffix(tok, "es") && len(tok) > 2 {
		forms = append(forms, tok[:len(tok)-2])
	}
	if strings.HasSuffix(tok, "s") && len(tok) > 1 {
		forms = append(forms, tok[:len(tok)-1])
	}
	return forms
}

// tokensMatch reports whether two tokens match exactly or through the
// singular/plural heuristic. The heuristic only applies when both
// tokens are at least three runes, which keeps short words like "as"
// and "is" from colliding.
func tokensMatch(a, b string) bool {
	if a == b {
		return true
	}
	if len(a) < 3 || len(b) < 3 {
		return false
	}
	for _, fa := range singularForms(a) {
		for _, fb := range singularForms(b) {
			if fa == fb {
				return true
			}
		}
	}
	return false
}

// countCommon counts tokens of a that match some token of b. Each
// token of b is consumed at most once.
func countCommon(a, b []string) int {
	used := make([]bool, len(b))
	common := 0
	for _, ta := range a {
		for i, tb := range b {
			if used[i] || !tokensMatch(ta, tb) {
				continue
			}
			used[i] = true
			common++
			break
		}
	}
	return common
}

// substringBonus rewards whole-string relationships between the
// normalized chunk phrase and node name, beyond token overlap.
func substringBonus(phrase, name string) float64 {
	if phrase == "" || name == "" {
		return 0
	}
	switch {
	case phrase == name:
		return 100
	case strings.HasSuffix(phrase, name):
		return 75
	case strings.HasPrefix(phrase, name):
		return 70
	case strings.Contains(phrase, name):
		return 50 + 0.2*float64(len(name))
	case strings.Contains(name, phrase):
		return 25 + 0.2*float64(len(phrase))
	}
	return 0
}

// scoreName sums the weighted contribution of every chunk against one
// name. A strongly matching phrase under a negating preposition is
// heavily discounted rather than discarded: the text mentions the
// place, but says the player is not there.
func scoreName(name string, chunks []Chunk) float64 {
	nameNorm := normalize(name)
	nameTokens := tokenize(nameNorm)
	if len(nameTokens) == 0 {
		return 0
	}

	total := 0.0
	for _, c := range chunks {
		phraseNorm := normalize(c.Phrase)
		chunkTokens := tokenize(phraseNorm)
		if len(chunkTokens) == 0 {
			continue
		}
		common := countCommon(nameTokens, chunkTokens)
		base := 0.0
		if common > 0 {
			coverage := float64(common) / float64(len(nameTokens))
			relevance := float64(common) / float64(len(chunkTokens))
			base = 60*coverage + 40*relevance
		}
		base += substringBonus(phraseNorm, nameNorm)
		if base == 0 {
			continue
		}
		weight := c.PrepositionWeight
		if c.PrepositionType == PrepNegating && base > 75 {
			weight /= 2
		}
		total += base * weight / 100
	}
	return total
}

// scoreNode scores a node against the chunk set: the best of its name
// and aliases, plus a proximity bonus when the node neighbors the
// player's previous location. Zero means no match.
func scoreNode(node *worldmap.MapNode, chunks []Chunk, directNeighborIDs map[string]bool) float64 {
	best := 0.0
	for _, name := range node.Names() {
		if s := scoreName(name, chunks); s > best {
			best = s
		}
	}
	if best > 0 && directNeighborIDs[node.ID] {
		best += ProximityBonus
	}
	return best
}
