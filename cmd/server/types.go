package main

import (
	"codeberg.org/resumatch/server/internal/config"
	"codeberg.org/resumatch/server/internal/embedder"
	"codeberg.org/resumatch/server/internal/indexer"
	"codeberg.org/resumatch/server/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db       *pgxpool.Pool
	config   *config.Config
	docStore *store.Store
	services *Services
	router   *gin.Engine
}

// holds the matching-engine service clients
type Services struct {
	Embedder *embedder.Client
	Indexer  *indexer.Indexer
}
