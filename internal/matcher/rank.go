package matcher

import (
	"sort"
	"strings"
)

// Rank scores every corpus document against the query, sorts descending
// and truncates to topK. The query is excluded from its own corpus by
// ID; candidates with neither embedding nor text are skipped. The sort
// is stable so ties preserve corpus-relative order, keeping result
// order deterministic. An empty corpus or a query with no usable
// embedding yields an empty result list, never an error.
func Rank(query Document, corpus []Document, topK int) []MatchResult {
	if topK <= 0 {
		topK = DefaultPeerTopK
	}

	// a query that could not be embedded has nothing to rank against
	if len(query.Embedding) == 0 {
		return []MatchResult{}
	}

	results := make([]MatchResult, 0, len(corpus))

	for _, candidate := range corpus {
		if candidate.ID == query.ID {
			continue
		}

		// nothing to score
		if len(candidate.Embedding) == 0 && strings.TrimSpace(candidate.Text) == "" {
			continue
		}

		score := Score(query.Embedding, candidate.Embedding, query.Text, candidate.Text)

		results = append(results, MatchResult{
			DocumentID: candidate.ID,
			Filename:   candidate.Filename,
			Score:      score,
			Text:       candidate.Text,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}

	return results
}
