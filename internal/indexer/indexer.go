package indexer

import (
	"context"
	"errors"
	"time"

	"codeberg.org/resumatch/server/internal/embedder"
	"codeberg.org/resumatch/server/internal/logger"
	"codeberg.org/resumatch/server/internal/store"
)

// inter-item throttle, scaled by batch size to respect the remote
// embedding endpoint's rate limit
const (
	smallBatchDelay     = 1 * time.Second
	largeBatchDelay     = 2 * time.Second
	largeBatchThreshold = 20
)

// provides the documents to reindex and receives the resulting vectors
type DocumentSource interface {
	FetchDocuments(ctx context.Context, ownerID string) ([]store.Document, error)
	FetchAllDocuments(ctx context.Context) ([]store.Document, error)
	UpdateEmbedding(ctx context.Context, id string, vec []float32) error
}

// generates embeddings for document text
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Summary is the tri-count a batch reports so a human can decide
// whether to retry failed items individually. Skipped counts documents
// with no content - those are neither successes nor failures.
type Summary struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped,omitempty"`
	Total     int `json:"total"`
}

// Indexer regenerates embeddings for a corpus one document at a time.
// A failed item is recorded and the batch continues; nothing here
// aborts the batch.
type Indexer struct {
	source DocumentSource
	embed  Embedder
	sleep  func(time.Duration)
}

func New(source DocumentSource, embed Embedder) *Indexer {
	return &Indexer{
		source: source,
		embed:  embed,
		sleep:  time.Sleep,
	}
}

// regenerates embeddings for one owner, or for every document when
// ownerID is empty. Only fetching the corpus can fail the call; from
// there the batch always runs to completion.
func (ix *Indexer) Reindex(ctx context.Context, ownerID string) (Summary, error) {
	var docs []store.Document
	var err error

	if ownerID == "" {
		docs, err = ix.source.FetchAllDocuments(ctx)
	} else {
		docs, err = ix.source.FetchDocuments(ctx, ownerID)
	}

	if err != nil {
		return Summary{}, err
	}

	return ix.reindexDocuments(ctx, docs), nil
}

func (ix *Indexer) reindexDocuments(ctx context.Context, docs []store.Document) Summary {
	summary := Summary{Total: len(docs)}

	delay := smallBatchDelay
	if len(docs) > largeBatchThreshold {
		delay = largeBatchDelay
	}

	for i, doc := range docs {
		// throttle between items, not before the first
		if i > 0 {
			ix.sleep(delay)
		}

		vec, err := ix.embed.Embed(ctx, doc.Content)

		switch {
		case errors.Is(err, embedder.ErrEmptyInput):
			// no content to embed; leave the document unscored
			summary.Skipped++
			continue

		case err != nil:
			// degrade and continue: the document stays in the
			// "no embedding" state until the next run
			logger.ErrorErr(err, "embedding generation failed",
				"document_id", doc.ID,
				"filename", doc.Filename,
			)
			summary.Failed++

			continue
		}

		if err := ix.source.UpdateEmbedding(ctx, doc.ID, vec); err != nil {
			logger.ErrorErr(err, "failed to persist embedding",
				"document_id", doc.ID,
			)
			summary.Failed++

			continue
		}

		summary.Succeeded++
	}

	logger.Info("reindex batch complete",
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"skipped", summary.Skipped,
		"total", summary.Total,
	)

	return summary
}
