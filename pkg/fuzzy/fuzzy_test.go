package fuzzy

import (
	"math"
	"testing"
)

var catalog = []Candidate{
	{ID: "s1", Name: "Formal White Shirt"},
	{ID: "s2", Name: "Formal Blue Shirt"},
	{ID: "p1", Name: "Formal Black Pants"},
}

func TestExactMatchScoresOne(t *testing.T) {
	m := MatchItem("  formal BLUE shirt ", catalog)
	if m == nil {
		t.Fatal("expected a match")
	}
	if m.ID != "s2" || m.Score != 1 {
		t.Fatalf("expected s2 with score 1, got %s score %v", m.ID, m.Score)
	}
}

func TestSubstringMatchScoresLengthRatio(t *testing.T) {
	m := MatchItem("blue shirt", []Candidate{{ID: "s2", Name: "Formal Blue Shirt"}})
	if m == nil {
		t.Fatal("expected a match")
	}
	// "blue shirt" (10) inside "formal blue shirt" (17)
	want := 10.0 / 17.0
	if math.Abs(m.Score-want) > 1e-9 {
		t.Fatalf("expected score %v, got %v", want, m.Score)
	}
}

func TestSubstringBelowThresholdRejected(t *testing.T) {
	// "blue" is contained but only 4/17 similar
	if m := MatchItem("blue", []Candidate{{ID: "s2", Name: "Formal Blue Shirt"}}); m != nil {
		t.Fatalf("expected no match, got %s score %v", m.ID, m.Score)
	}
}

func TestWordOverlapMatch(t *testing.T) {
	// "blue" and "shirt" both overlap, 2 of max(2,3) words
	m := MatchItem("Blue Shirt XL", nil)
	if m != nil {
		t.Fatal("no candidates should yield no match")
	}

	m = MatchItem("Blue Shirtt", catalog)
	if m == nil {
		t.Fatal("expected a word-overlap match")
	}
	if m.ID != "s2" {
		t.Fatalf("expected s2, got %s", m.ID)
	}
	want := 2.0 / 3.0
	if math.Abs(m.Score-want) > 1e-9 {
		t.Fatalf("expected score %v, got %v", want, m.Score)
	}
}

func TestAbbreviatedTokensBelowThreshold(t *testing.T) {
	// "blu" overlaps "blue" but "shrt" is not a contiguous substring of
	// "shirt", so only 1 of 3 words matches: 1/3 < 0.5 and the lookup is
	// rejected rather than guessed.
	if m := MatchItem("Blu Shrt", catalog); m != nil {
		t.Fatalf("expected no match, got %s score %v", m.ID, m.Score)
	}
}

func TestBestOfMultipleCandidates(t *testing.T) {
	m := MatchItem("white shirt", catalog)
	if m == nil {
		t.Fatal("expected a match")
	}
	if m.ID != "s1" {
		t.Fatalf("expected s1, got %s", m.ID)
	}
}

func TestBlankSearchRejected(t *testing.T) {
	if m := MatchItem("   ", catalog); m != nil {
		t.Fatal("expected no match for blank input")
	}
}
