package locate

import "testing"

func TestParseChunks_SubjectOnly(t *testing.T) {
	chunks := ParseChunks("the old well")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d: %+v", len(chunks), chunks)
	}
	c := chunks[0]
	if c.Phrase != "the old well" {
		t.Errorf("phrase = %q", c.Phrase)
	}
	if c.PrepositionType != PrepDirect || c.PrepositionWeight != SubjectWeight {
		t.Errorf("subject chunk should be direct/%v, got %s/%v", float64(SubjectWeight), c.PrepositionType, c.PrepositionWeight)
	}
	if c.PrepositionKeyword != "" {
		t.Errorf("subject chunk should have no keyword, got %q", c.PrepositionKeyword)
	}
}

func TestParseChunks_SplitsOnKeywords(t *testing.T) {
	chunks := ParseChunks("the old well behind the chapel")
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %+v", len(chunks), chunks)
	}
	if chunks[0].Phrase != "the old well" {
		t.Errorf("subject phrase = %q", chunks[0].Phrase)
	}
	if chunks[1].Phrase != "the chapel" || chunks[1].PrepositionKeyword != "behind" {
		t.Errorf("second chunk = %+v", chunks[1])
	}
	if chunks[1].PrepositionType != PrepRelational {
		t.Errorf("behind should be relational, got %s", chunks[1].PrepositionType)
	}
}

func TestParseChunks_LongestKeywordWins(t *testing.T) {
	chunks := ParseChunks("the crate inside of the warehouse")
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %+v", len(chunks), chunks)
	}
	if chunks[1].PrepositionKeyword != "inside of" {
		t.Errorf("expected keyword 'inside of' to beat 'inside', got %q", chunks[1].PrepositionKeyword)
	}
	if chunks[1].Phrase != "the warehouse" {
		t.Errorf("phrase = %q", chunks[1].Phrase)
	}
}

func TestParseChunks_CommaEndsPhrase(t *testing.T) {
	chunks := ParseChunks("the market square, a bustling place full of traders")
	if len(chunks) == 0 {
		t.Fatal("expected at least the subject chunk")
	}
	if chunks[0].Phrase != "the market square" {
		t.Errorf("subject should stop at the comma, got %q", chunks[0].Phrase)
	}
}

func TestParseChunks_NegatingKeyword(t *testing.T) {
	chunks := ParseChunks("a quiet camp far from the city gates")
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %+v", len(chunks), chunks)
	}
	if chunks[1].PrepositionType != PrepNegating {
		t.Errorf("'far from' should be negating, got %s", chunks[1].PrepositionType)
	}
	if chunks[1].Phrase != "the city gates" {
		t.Errorf("phrase = %q", chunks[1].Phrase)
	}
	if chunks[1].OriginalText != "far from" {
		t.Errorf("original text = %q", chunks[1].OriginalText)
	}
}

func TestParseChunks_ContextualLinkingDoesNotSplit(t *testing.T) {
	// "of the" is filler: the phrase stays whole.
	chunks := ParseChunks("the hall of the mountain king")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d: %+v", len(chunks), chunks)
	}
	if chunks[0].Phrase != "the hall of the mountain king" {
		t.Errorf("phrase = %q", chunks[0].Phrase)
	}
}

func TestParseChunks_KeywordFirst(t *testing.T) {
	// Text beginning with a keyword has no subject chunk.
	chunks := ParseChunks("inside the lighthouse")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d: %+v", len(chunks), chunks)
	}
	if chunks[0].PrepositionKeyword != "inside" || chunks[0].Phrase != "the lighthouse" {
		t.Errorf("chunk = %+v", chunks[0])
	}
}

func TestParseChunks_WordBoundary(t *testing.T) {
	// "in" must not match inside "inn" or "Innsbruck".
	chunks := ParseChunks("the old inn")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d: %+v", len(chunks), chunks)
	}
	if chunks[0].Phrase != "the old inn" {
		t.Errorf("phrase = %q", chunks[0].Phrase)
	}
}

func TestParseChunks_Empty(t *testing.T) {
	if chunks := ParseChunks(""); chunks != nil {
		t.Errorf("empty input should yield no chunks, got %+v", chunks)
	}
	if chunks := ParseChunks("   "); chunks != nil {
		t.Errorf("blank input should yield no chunks, got %+v", chunks)
	}
}

func TestParseChunks_MultipleKeywords(t *testing.T) {
	chunks := ParseChunks("the fountain in the plaza near the cathedral")
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d: %+v", len(chunks), chunks)
	}
	if chunks[0].Phrase != "the fountain" {
		t.Errorf("subject = %q", chunks[0].Phrase)
	}
	if chunks[1].PrepositionKeyword != "in" || chunks[1].Phrase != "the plaza" {
		t.Errorf("chunk 1 = %+v", chunks[1])
	}
	if chunks[2].PrepositionKeyword != "near" || chunks[2].Phrase != "the cathedral" {
		t.Errorf("chunk 2 = %+v", chunks[2])
	}
}
