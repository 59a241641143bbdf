package domain

import (
	"math"
	"testing"
)

func TestFuzzyScoreKnownValue(t *testing.T) {
	// "h" matches at the cursor (+2), "w" is five positions away
	// (+1 plus a 1.5 proximity bonus), minus 0.09 for nine unmatched runes.
	score, ok := FuzzyScore("hello world", "hw")
	if !ok {
		t.Fatal("FuzzyScore() ok = false, want match")
	}
	if math.Abs(score-4.41) > 1e-9 {
		t.Errorf("FuzzyScore() = %f, want 4.41", score)
	}
}

func TestFuzzyScoreNoMatch(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
	}{
		{name: "missing character", haystack: "hello", needle: "hz"},
		{name: "out of order", haystack: "ab", needle: "ba"},
		{name: "empty needle", haystack: "hello", needle: ""},
		{name: "empty haystack", haystack: "", needle: "h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if score, ok := FuzzyScore(tt.haystack, tt.needle); ok || score != 0 {
				t.Errorf("FuzzyScore(%q, %q) = %f, %v, want 0, false", tt.haystack, tt.needle, score, ok)
			}
		})
	}
}

func TestFuzzyScoreCaseInsensitive(t *testing.T) {
	lower, ok1 := FuzzyScore("github", "git")
	upper, ok2 := FuzzyScore("GitHub", "GIT")
	if !ok1 || !ok2 {
		t.Fatal("FuzzyScore() should match regardless of case")
	}
	if lower != upper {
		t.Errorf("case should not affect the score: %f != %f", lower, upper)
	}
}

func TestFuzzyScorePrefersContiguousMatches(t *testing.T) {
	contiguous, ok1 := FuzzyScore("abcdef", "abc")
	scattered, ok2 := FuzzyScore("axbxcx", "abc")
	if !ok1 || !ok2 {
		t.Fatal("both haystacks should match")
	}
	if contiguous <= scattered {
		t.Errorf("contiguous match should outscore scattered: %f <= %f", contiguous, scattered)
	}
}

func TestFuzzyScoreShorterHaystackWinsTies(t *testing.T) {
	short, _ := FuzzyScore("note", "note")
	long, _ := FuzzyScore("notebook", "note")
	if short <= long {
		t.Errorf("tighter haystack should win: %f <= %f", short, long)
	}
}

func TestFuzzyScoreMultibyteRunes(t *testing.T) {
	score, ok := FuzzyScore("看过的电影", "看过")
	if !ok {
		t.Fatal("FuzzyScore() should match CJK text")
	}
	if score <= 0 {
		t.Errorf("FuzzyScore() = %f, want positive", score)
	}
}
