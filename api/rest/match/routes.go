package match

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, corpus CorpusFetcher, embed Embedder) {
	router.GET("/documents/:id/similar", SimilarHandler(corpus))
	router.POST("/match/jobs", JobMatchHandler(corpus, embed))
}
