package documents

import (
	"context"
	"net/http"

	"codeberg.org/resumatch/server/internal/errors"
	"codeberg.org/resumatch/server/internal/indexer"
	"codeberg.org/resumatch/server/internal/logger"
	"codeberg.org/resumatch/server/internal/store"
	"github.com/gin-gonic/gin"
)

type DocumentStore interface {
	InsertDocument(ctx context.Context, doc store.Document) (string, error)
	DeleteDocument(ctx context.Context, id, ownerID string) error
}

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// creates a handler for document upload. Embedding generation is best
// effort: a failure leaves the document unscored for semantic matching
// but never fails the upload itself.
func UploadHandler(docStore DocumentStore, embed Embedder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UploadRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		vec, err := embed.Embed(c.Request.Context(), req.Text)
		if err != nil {
			logger.Warn("embedding failed on upload, storing document unscored",
				"owner_id", req.OwnerID,
				"filename", req.Filename,
				"error", err,
			)

			vec = nil
		}

		id, err := docStore.InsertDocument(c.Request.Context(), store.Document{
			OwnerID:  req.OwnerID,
			Filename: req.Filename,
			Kind:     req.Kind,
			Content:  req.Text,
			Vector:   vec,
		})

		if err != nil {
			errors.InternalError(c, "failed to store document", err)
			return
		}

		c.JSON(http.StatusCreated, UploadResponse{
			ID:       id,
			Embedded: vec != nil,
		})
	}
}

// creates a handler that regenerates embeddings for an owner's corpus
// (or everything when owner_id is omitted) and reports the tri-count
// summary
func ReindexHandler(ix *indexer.Indexer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReindexRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		summary, err := ix.Reindex(c.Request.Context(), req.OwnerID)
		if err != nil {
			errors.InternalError(c, "failed to reindex documents", err)
			return
		}

		c.JSON(http.StatusOK, summary)
	}
}

// creates a handler for document deletion
func DeleteHandler(docStore DocumentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		ownerID := c.Query("owner_id")

		if ownerID == "" {
			errors.BadRequest(c, "owner_id query parameter is required", nil)
			return
		}

		if err := docStore.DeleteDocument(c.Request.Context(), id, ownerID); err != nil {
			errors.InternalError(c, "failed to delete document", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
