// Package locate resolves free-text location descriptions and
// AI-supplied identifiers to nodes on a worldmap snapshot. Matching is
// heuristic by nature; every rule here is deterministic so a given
// description always resolves the same way.
package locate

import (
	"regexp"
	"sort"
	"strings"
)

// PrepositionType categorizes how directly a phrase locates the subject.
type PrepositionType string

const (
	PrepDirect     PrepositionType = "direct"
	PrepRelational PrepositionType = "relational"
	PrepNegating   PrepositionType = "negating"
	PrepContextual PrepositionType = "contextual_linking"
)

// Chunk is a phrase extracted from a location description, tagged with
// the preposition that introduced it. Chunks are derived per call and
// never persisted.
type Chunk struct {
	Phrase             string          `json:"phrase"`
	PrepositionKeyword string          `json:"preposition_keyword,omitempty"`
	PrepositionType    PrepositionType `json:"preposition_type"`
	PrepositionWeight  float64         `json:"preposition_weight"`
	OriginalText       string          `json:"original_text,omitempty"` // Keyword as it appeared in the input
}

// SubjectWeight is the weight of the implicit subject chunk, the text
// before any recognized preposition.
const SubjectWeight = 100

type prepositionEntry struct {
	Keywords []string
	Type     PrepositionType
	Weight   float64
}

// prepositionTable drives chunking. It is immutable; weights express
// how directly each preposition places the subject at the phrase that
// follows it. Contextual-linking keywords are recognized but never
// split the text.
var prepositionTable = []prepositionEntry{
	{Keywords: []string{"inside of", "in the middle of", "in the center of", "in the centre of", "deep within"}, Type: PrepDirect, Weight: 95},
	{Keywords: []string{"inside", "within", "into"}, Type: PrepDirect, Weight: 90},
	{Keywords: []string{"in", "at", "on"}, Type: PrepDirect, Weight: 85},
	{Keywords: []string{"on top of", "at the edge of", "at the foot of", "at the base of"}, Type: PrepRelational, Weight: 60},
	{Keywords: []string{"next to", "beside", "adjacent to"}, Type: PrepRelational, Weight: 55},
	{Keywords: []string{"near", "close to", "by", "around"}, Type: PrepRelational, Weight: 45},
	{Keywords: []string{"behind", "in front of", "above", "below", "beneath", "under", "underneath", "over"}, Type: PrepRelational, Weight: 40},
	{Keywords: []string{"between", "across from", "opposite"}, Type: PrepRelational, Weight: 35},
	{Keywords: []string{"toward", "towards", "along"}, Type: PrepRelational, Weight: 30},
	{Keywords: []string{"far from", "away from", "far away from"}, Type: PrepNegating, Weight: 25},
	{Keywords: []string{"outside of", "outside", "beyond", "past"}, Type: PrepNegating, Weight: 25},
	{Keywords: []string{"not in", "not at", "not near", "nowhere near"}, Type: PrepNegating, Weight: 20},
	{Keywords: []string{"of the", "from", "and then"}, Type: PrepContextual, Weight: 5},
}

type compiledKeyword struct {
	keyword string
	re      *regexp.Regexp
	typ     PrepositionType
	weight  float64
}

// compiledKeywords holds one word-boundary regex per keyword,
// precompiled once at package init.
var compiledKeywords []compiledKeyword

func init() {
	for _, entry := range prepositionTable {
		for _, kw := range entry.Keywords {
			re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
			compiledKeywords = append(compiledKeywords, compiledKeyword{
				keyword: kw,
				re:      re,
				typ:     entry.Type,
				weight:  entry.Weight,
			})
		}
	}
}

type keywordMatch struct {
	start, end int
	keyword    string
	typ        PrepositionType
	weight     float64
}

// ParseChunks splits a location description into ordered chunks. The
// text before the first recognized splitting keyword becomes the
// implicit subject chunk. Keywords are matched longest-first so
// "inside of" wins over "inside". Phrases stop at the first comma;
// empty chunks are dropped.
func ParseChunks(text string) []Chunk {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var matches []keywordMatch
	for _, ck := range compiledKeywords {
		for _, loc := range ck.re.FindAllStringIndex(text, -1) {
			matches = append(matches, keywordMatch{
				start:   loc[0],
				end:     loc[1],
				keyword: ck.keyword,
				typ:     ck.typ,
				weight:  ck.weight,
			})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].start != matches[j].start {
			return matches[i].start < matches[j].start
		}
		// Longest keyword first at the same position.
		return (matches[i].end - matches[i].start) > (matches[j].end - matches[j].start)
	})

	// Keep the leftmost non-overlapping matches, then drop the
	// contextual-linking ones: they are filler, not split points.
	var splitters []keywordMatch
	lastEnd := -1
	for _, m := range matches {
		if m.start < lastEnd {
			continue
		}
		lastEnd = m.end
		if m.typ == PrepContextual {
			continue
		}
		splitters = append(splitters, m)
	}

	var chunks []Chunk
	subjectEnd := len(text)
	if len(splitters) > 0 {
		subjectEnd = splitters[0].start
	}
	if phrase := trimPhrase(text[:subjectEnd]); phrase != "" {
		chunks = append(chunks, Chunk{
			Phrase:            phrase,
			PrepositionType:   PrepDirect,
			PrepositionWeight: SubjectWeight,
		})
	}
	for i, sp := range splitters {
		spanEnd := len(text)
		if i+1 < len(splitters) {
			spanEnd = splitters[i+1].start
		}
		phrase := trimPhrase(text[sp.end:spanEnd])
		if phrase == "" {
			continue
		}
		chunks = append(chunks, Chunk{
			Phrase:             phrase,
			PrepositionKeyword: sp.keyword,
			PrepositionType:    sp.typ,
			PrepositionWeight:  sp.weight,
			OriginalText:       text[sp.start:sp.end],
		})
	}
	return chunks
}

// trimPhrase truncates at the first comma and trims whitespace; commas
// end a location phrase.
func trimPhrase(s string) string {
	if i := strings.Index(s, ","); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
