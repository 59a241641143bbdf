package domain

import "strings"

const (
	// Per-character scores
	ScoreConsecutive = 2.0
	ScoreScattered   = 1.0

	// Proximity bonus for non-first matches: max(0, ProximityBase - ProximityDecay*gap)
	ProximityBase  = 2.0
	ProximityDecay = 0.1

	// Tie-breaking penalty per unmatched haystack character
	LengthPenalty = 0.01
)

// FuzzyScore scores needle against haystack with a greedy left-to-right
// subsequence match. Every needle character (case-insensitive) must appear in
// haystack in order; the second return value is false when any character is
// unmatched.
//
// The matcher is deliberately greedy: it takes the first occurrence of each
// character after the previous match and never backtracks to find a
// higher-scoring alignment.
func FuzzyScore(haystack, needle string) (float64, bool) {
	hay := []rune(strings.ToLower(haystack))
	want := []rune(strings.ToLower(needle))
	if len(want) == 0 || len(hay) == 0 {
		return 0, false
	}

	var score float64
	cursor := 0

	for i, c := range want {
		idx := indexRuneFrom(hay, c, cursor)
		if idx < 0 {
			return 0, false
		}

		if idx == cursor {
			score += ScoreConsecutive
		} else {
			score += ScoreScattered
		}

		if i > 0 {
			gap := float64(idx - cursor)
			if bonus := ProximityBase - ProximityDecay*gap; bonus > 0 {
				score += bonus
			}
		}

		cursor = idx + 1
	}

	// Tighter haystacks win ties
	score -= LengthPenalty * float64(len(hay)-len(want))

	return score, true
}

// indexRuneFrom returns the first index of c in runes at or after start, or -1.
func indexRuneFrom(runes []rune, c rune, start int) int {
	for i := start; i < len(runes); i++ {
		if runes[i] == c {
			return i
		}
	}
	return -1
}
