package embeddings

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/videomind-api/api/types"
)

// RegisterRoutes registers embedding routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/generate_embeddings", Post(deps))
}
