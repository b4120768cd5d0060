// Package fuzzy maps free-text item names, typically extracted from scanned
// purchase bills, onto existing catalog entries.
package fuzzy

import "strings"

// Threshold is the minimum score a non-exact match needs to be accepted.
const Threshold = 0.5

// Candidate is a catalog entry offered to the matcher.
type Candidate struct {
	ID   string
	Name string
}

// Match is an accepted candidate with its similarity score in (0, 1].
type Match struct {
	ID    string
	Name  string
	Score float64
}

// MatchItem scores candidates against the search name and returns the best
// one, or nil when nothing reaches the threshold.
//
// Scoring, first qualifying rule wins per candidate:
//  1. exact match on the normalized name scores 1 and returns immediately
//  2. substring containment either direction scores min(len)/max(len)
//  3. word overlap scores matchingWords/max(searchWords, itemWords), where
//     two words match when either contains the other
func MatchItem(searchName string, candidates []Candidate) *Match {
	normalizedSearch := normalize(searchName)
	if normalizedSearch == "" {
		return nil
	}

	var best *Match
	bestScore := 0.0

	for _, c := range candidates {
		normalizedItem := normalize(c.Name)

		if normalizedItem == normalizedSearch {
			return &Match{ID: c.ID, Name: c.Name, Score: 1}
		}

		if strings.Contains(normalizedItem, normalizedSearch) || strings.Contains(normalizedSearch, normalizedItem) {
			score := ratio(len(normalizedSearch), len(normalizedItem))
			if score > bestScore {
				bestScore = score
				best = &Match{ID: c.ID, Name: c.Name, Score: score}
			}
			continue
		}

		searchWords := strings.Fields(normalizedSearch)
		itemWords := strings.Fields(normalizedItem)
		matching := 0
		for _, w := range searchWords {
			if overlapsAny(w, itemWords) {
				matching++
			}
		}
		if matching > 0 {
			score := float64(matching) / float64(max(len(searchWords), len(itemWords)))
			if score > bestScore {
				bestScore = score
				best = &Match{ID: c.ID, Name: c.Name, Score: score}
			}
		}
	}

	if bestScore < Threshold {
		return nil
	}
	return best
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func ratio(a, b int) float64 {
	if a > b {
		a, b = b, a
	}
	return float64(a) / float64(b)
}

func overlapsAny(word string, words []string) bool {
	for _, w := range words {
		if strings.Contains(w, word) || strings.Contains(word, w) {
			return true
		}
	}
	return false
}
