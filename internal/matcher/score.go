package matcher

import (
	"math"
	"strings"
)

// weights of the hybrid score; fixed design constants, not configurable
// per call
const (
	cosineWeight  = 0.7
	keywordWeight = 0.2
	sectionWeight = 0.1
)

// tokens this short are dropped from keyword overlap
const minTokenLen = 3

// fixed vocabulary for the section-structure subscore
var sectionTerms = []string{
	"education", "experience", "skills", "projects",
	"achievements", "work", "employment",
}

// Score computes the hybrid similarity between a query document and a
// candidate given their embeddings and raw text. Pure function of its
// four inputs; result is always in [0,1]. Missing, mismatched, or
// zero-magnitude embeddings score 0 - dimension mismatch is a hard
// disqualifier here, unlike the soft-accept at generation time.
func Score(a, b []float32, textA, textB string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	if len(a) != len(b) {
		return 0
	}

	cos, ok := cosine(a, b)
	if !ok {
		return 0
	}

	// map [-1,1] to [0,1]; the max guards against floating-point drift
	// pushing cos slightly below -1
	normalized := math.Max(0, (cos+1)/2)

	return cosineWeight*normalized +
		keywordWeight*keywordOverlap(textA, textB) +
		sectionWeight*sectionMatch(textA, textB)
}

// returns the cosine of the angle between a and b, or ok=false when
// either vector has zero magnitude (undefined direction)
func cosine(a, b []float32) (float64, bool) {
	var dot, magA, magB float64

	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}

	if magA == 0 || magB == 0 {
		return 0, false
	}

	return dot / (math.Sqrt(magA) * math.Sqrt(magB)), true
}

// ratio of shared qualifying tokens to the larger token set
func keywordOverlap(textA, textB string) float64 {
	tokensA := tokenize(textA)
	tokensB := tokenize(textB)

	shared := 0

	for tok := range tokensA {
		if tokensB[tok] {
			shared++
		}
	}

	denom := max(len(tokensA), len(tokensB), 1)

	return float64(shared) / float64(denom)
}

func tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)

	for _, tok := range strings.Fields(strings.ToLower(text)) {
		if len(tok) > minTokenLen {
			tokens[tok] = true
		}
	}

	return tokens
}

// ratio of section-term occurrence counts between the two texts
func sectionMatch(textA, textB string) float64 {
	countA := countSectionTerms(textA)
	countB := countSectionTerms(textB)

	return float64(min(countA, countB)) / float64(max(countA, countB, 1))
}

func countSectionTerms(text string) int {
	lower := strings.ToLower(text)
	count := 0

	for _, term := range sectionTerms {
		count += strings.Count(lower, term)
	}

	return count
}
