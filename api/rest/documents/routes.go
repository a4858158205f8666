package documents

import (
	"codeberg.org/resumatch/server/internal/indexer"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, docStore DocumentStore, embed Embedder, ix *indexer.Indexer) {
	docs := router.Group("/documents")
	{
		docs.POST("", UploadHandler(docStore, embed))
		docs.POST("/reindex", ReindexHandler(ix))
		docs.DELETE("/:id", DeleteHandler(docStore))
	}
}
