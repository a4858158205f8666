package main

import (
	"codeberg.org/resumatch/server/api/rest/documents"
	"codeberg.org/resumatch/server/api/rest/health"
	"codeberg.org/resumatch/server/api/rest/match"
	"github.com/gin-gonic/gin"
)

// requests per client across the API group
const apiRateLimit = "60-M"

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(apiRateLimit))

	{
		v1.GET("/ping", health.PingHandler)

		documents.RegisterRoutes(v1, server.docStore, server.services.Embedder, server.services.Indexer)
		match.RegisterRoutes(v1, server.docStore, server.services.Embedder)
	}
}
