package match

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"codeberg.org/resumatch/server/internal/errors"
	"codeberg.org/resumatch/server/internal/logger"
	"codeberg.org/resumatch/server/internal/matcher"
	"codeberg.org/resumatch/server/internal/store"
	"github.com/gin-gonic/gin"
)

type CorpusFetcher interface {
	FetchDocuments(ctx context.Context, ownerID string) ([]store.Document, error)
	GetDocument(ctx context.Context, id, ownerID string) (*store.Document, error)
}

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// creates a handler ranking an owner's other resumes against one of
// their documents
func SimilarHandler(corpus CorpusFetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		ownerID := c.Query("owner_id")

		if ownerID == "" {
			errors.BadRequest(c, "owner_id query parameter is required", nil)
			return
		}

		topK := parseTopK(c.Query("top_k"), matcher.DefaultPeerTopK)

		query, err := corpus.GetDocument(c.Request.Context(), id, ownerID)
		if err != nil {
			errors.NotFound(c, "document")
			return
		}

		docs, err := corpus.FetchDocuments(c.Request.Context(), ownerID)
		if err != nil {
			errors.InternalError(c, "failed to fetch documents", err)
			return
		}

		results := matcher.Rank(query.AsMatcherDocument(), store.AsCorpus(docs), topK)

		c.JSON(http.StatusOK, toResponse(results))
	}
}

// creates a handler ranking an owner's resumes against a job
// description. When the job text cannot be embedded the response is an
// empty result list, never an error.
func JobMatchHandler(corpus CorpusFetcher, embed Embedder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JobMatchRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		topK := req.TopK
		if topK <= 0 {
			topK = matcher.DefaultJobTopK
		}

		vec, err := embed.Embed(c.Request.Context(), req.Text)
		if err != nil {
			logger.Warn("job description embedding failed, returning no matches",
				"owner_id", req.OwnerID,
				"error", err,
			)
		}

		docs, err := corpus.FetchDocuments(c.Request.Context(), req.OwnerID)
		if err != nil {
			errors.InternalError(c, "failed to fetch documents", err)
			return
		}

		query := matcher.Document{
			Text:      req.Text,
			Embedding: vec,
		}

		results := matcher.Rank(query, store.AsCorpus(docs), topK)

		c.JSON(http.StatusOK, toResponse(results))
	}
}

func parseTopK(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return fallback
	}

	return val
}

func toResponse(results []matcher.MatchResult) Response {
	out := make([]Result, len(results))

	for i, r := range results {
		out[i] = Result{
			DocumentID: r.DocumentID,
			Filename:   r.Filename,
			Score:      roundScore(r.Score),
		}
	}

	return Response{Results: out}
}

// display rounding to 4 decimal places
func roundScore(s float64) float64 {
	return math.Round(s*10000) / 10000
}
