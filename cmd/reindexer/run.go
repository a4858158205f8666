package main

import (
	"context"
	"fmt"

	"codeberg.org/resumatch/server/internal/config"
	"codeberg.org/resumatch/server/internal/embedder"
	"codeberg.org/resumatch/server/internal/indexer"
	"codeberg.org/resumatch/server/internal/logger"
	"codeberg.org/resumatch/server/internal/normalizer"
	"codeberg.org/resumatch/server/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
)

// regenerates embeddings for the selected corpus, one document at a
// time, and logs the tri-count summary
func RunReindex(ctx context.Context, cfg *config.Config, db *pgxpool.Pool, flags config.Flags) error {
	if flags.OwnerID == "" && !flags.All {
		return fmt.Errorf("either --owner or --all is required")
	}

	docStore := store.NewStoreFromPool(db)

	norm := normalizer.New(normalizer.DefaultVocabulary())
	cache := embedder.NewCache(embedder.DefaultCacheCapacity)

	embedClient := embedder.NewClient(embedder.Config{
		APIKey:    cfg.OpenAIKey,
		Model:     cfg.EmbeddingModel,
		Dimension: cfg.EmbeddingDimension,
	}, cache, norm)

	// a model or dimension change invalidates every cached vector
	if flags.ClearCache {
		embedClient.Cache().Clear()
		logger.Info("embedding cache cleared", "model_tag", embedClient.ModelTag())
	}

	logger.Info("starting reindex",
		"owner", flags.OwnerID,
		"all", flags.All,
		"model", cfg.EmbeddingModel,
		"dimension", cfg.EmbeddingDimension,
	)

	summary, err := indexer.New(docStore, embedClient).Reindex(ctx, flags.OwnerID)
	if err != nil {
		return fmt.Errorf("reindex failed: %w", err)
	}

	logger.Info("reindex finished",
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"skipped", summary.Skipped,
		"total", summary.Total,
	)

	return nil
}

// prints document and embedding counts
func ShowStats(ctx context.Context, db *pgxpool.Pool, flags config.Flags) error {
	docStore := store.NewStoreFromPool(db)

	total, embedded, err := docStore.CountDocuments(ctx, flags.OwnerID)
	if err != nil {
		return err
	}

	logger.Info("document stats",
		"owner", flags.OwnerID,
		"documents", total,
		"embedded", embedded,
		"unscored", total-embedded,
	)

	return nil
}
