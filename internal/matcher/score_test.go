package matcher

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestScoreDeterminism(t *testing.T) {
	a := []float32{0.3, -0.2, 0.9}
	b := []float32{0.1, 0.4, -0.5}
	ta := "experience with Go and Postgres"
	tb := "skills include Python and Postgres"

	first := Score(a, b, ta, tb)

	for i := 0; i < 10; i++ {
		if got := Score(a, b, ta, tb); got != first {
			t.Fatalf("Score not deterministic: %v != %v", got, first)
		}
	}
}

func TestScoreSymmetry(t *testing.T) {
	a := []float32{0.3, -0.2, 0.9}
	b := []float32{0.1, 0.4, -0.5}
	ta := "experience with Go and distributed systems"
	tb := "education in computer science, skills in Go"

	if got, want := Score(a, b, ta, tb), Score(b, a, tb, ta); !almostEqual(got, want) {
		t.Errorf("Score not symmetric: %v != %v", got, want)
	}
}

func TestScoreBounded(t *testing.T) {
	cases := []struct {
		a, b   []float32
		ta, tb string
	}{
		{[]float32{1, 0}, []float32{1, 0}, "education skills experience", "education skills experience"},
		{[]float32{1, 0}, []float32{-1, 0}, "aaaa bbbb", "cccc dddd"},
		{[]float32{0.5, 0.5}, []float32{-0.5, 0.5}, "", ""},
		{[]float32{1, 2, 3}, []float32{3, 2, 1}, "work work work", "employment"},
	}

	for i, tc := range cases {
		got := Score(tc.a, tc.b, tc.ta, tc.tb)

		if got < 0 || got > 1 {
			t.Errorf("case %d: Score = %v, want within [0,1]", i, got)
		}
	}
}

func TestScoreDegenerateInputs(t *testing.T) {
	cases := []struct {
		name   string
		a, b   []float32
		ta, tb string
	}{
		{"empty first embedding", []float32{}, []float32{1, 2, 3}, "x", "y"},
		{"nil first embedding", nil, []float32{1, 2, 3}, "x", "y"},
		{"empty second embedding", []float32{1, 2}, nil, "x", "y"},
		{"length mismatch", []float32{1, 2}, []float32{1, 2, 3}, "x", "y"},
		{"zero magnitude", []float32{0, 0}, []float32{0, 0}, "x", "y"},
		{"one zero vector", []float32{0, 0}, []float32{1, 1}, "x", "y"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.a, tc.b, tc.ta, tc.tb); got != 0 {
				t.Errorf("Score = %v, want 0", got)
			}
		})
	}
}

func TestScoreIdenticalDocuments(t *testing.T) {
	vec := []float32{0.2, 0.8, -0.1}
	text := "education skills experience with databases"

	// cosine' = 1, keyword overlap = 1, section ratio = 1
	got := Score(vec, vec, text, text)

	if !almostEqual(got, 1.0) {
		t.Errorf("Score = %v, want 1.0 for identical documents", got)
	}
}

func TestScoreIdenticalVectorsNoSectionTerms(t *testing.T) {
	vec := []float32{1, 0}
	text := "golang kubernetes terraform"

	// cosine and keyword components saturate; section counts are both
	// zero so that component contributes nothing
	got := Score(vec, vec, text, text)

	if !almostEqual(got, 0.9) {
		t.Errorf("Score = %v, want 0.9", got)
	}
}

func TestScoreOrthogonalVectors(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}

	// cosine = 0 maps to 0.5; no shared tokens, no section terms
	got := Score(a, b, "aaaa", "bbbb")

	if !almostEqual(got, 0.7*0.5) {
		t.Errorf("Score = %v, want %v", got, 0.7*0.5)
	}
}

func TestScoreOppositeVectorsClampedAtZero(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{-1, 0}

	// cosine = -1 maps to 0, never below
	got := Score(a, b, "aaaa", "bbbb")

	if got != 0 {
		t.Errorf("Score = %v, want 0", got)
	}
}

func TestKeywordOverlapIgnoresShortTokens(t *testing.T) {
	// tokens of length <= 3 are dropped entirely
	got := keywordOverlap("go sql api", "go sql api")

	if got != 0 {
		t.Errorf("keywordOverlap = %v, want 0 for short tokens only", got)
	}

	shared := keywordOverlap("golang postgres", "golang redis")

	if !almostEqual(shared, 0.5) {
		t.Errorf("keywordOverlap = %v, want 0.5", shared)
	}
}

func TestSectionMatchRatio(t *testing.T) {
	// two terms in one text, one in the other
	got := sectionMatch("education and experience", "education only")

	if !almostEqual(got, 0.5) {
		t.Errorf("sectionMatch = %v, want 0.5", got)
	}

	// both zero counts
	if got := sectionMatch("nothing here", "nope"); got != 0 {
		t.Errorf("sectionMatch = %v, want 0", got)
	}
}
