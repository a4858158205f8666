package match

// JobMatchRequest ranks an owner's resumes against a job description
type JobMatchRequest struct {
	OwnerID string `json:"owner_id" binding:"required"`
	Text    string `json:"text" binding:"required"`
	TopK    int    `json:"top_k"`
}

// Result is one scored candidate. Scores are rounded here, at the
// presentation boundary only; the core keeps full precision.
type Result struct {
	DocumentID string  `json:"document_id"`
	Filename   string  `json:"filename"`
	Score      float64 `json:"score"`
}

type Response struct {
	Results []Result `json:"results"`
}
