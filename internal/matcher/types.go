package matcher

// default result counts for the two ranking call sites
const (
	// peer-resume similarity queries
	DefaultPeerTopK = 5

	// job-description matching
	DefaultJobTopK = 10
)

// Document is the unit of ranking: extracted text plus an optional
// embedding. A nil or empty embedding means generation failed or has
// not run yet; such documents still appear in rankings, scored zero.
type Document struct {
	ID        string
	Filename  string
	Text      string
	Embedding []float32
}

// MatchResult is produced per ranking query and not persisted beyond
// the caller's immediate use. The (id, filename, score, text) tuple is
// consumed downstream as chat context and must stay stable.
type MatchResult struct {
	DocumentID string
	Filename   string
	Score      float64
	Text       string
}
