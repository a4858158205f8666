package main

import (
	"codeberg.org/resumatch/server/internal/config"
	"codeberg.org/resumatch/server/internal/embedder"
	"codeberg.org/resumatch/server/internal/indexer"
	"codeberg.org/resumatch/server/internal/normalizer"
	"codeberg.org/resumatch/server/internal/store"
)

// creates and wires the embedding and reindexing services
func InitializeServices(cfg *config.Config, docStore *store.Store) *Services {
	norm := normalizer.New(normalizer.DefaultVocabulary())
	cache := embedder.NewCache(embedder.DefaultCacheCapacity)

	embedClient := embedder.NewClient(embedder.Config{
		APIKey:    cfg.OpenAIKey,
		Model:     cfg.EmbeddingModel,
		Dimension: cfg.EmbeddingDimension,
	}, cache, norm)

	return &Services{
		Embedder: embedClient,
		Indexer:  indexer.New(docStore, embedClient),
	}
}
