package chat

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/videomind-api/api/types"
)

// RegisterRoutes registers chat routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/chat", Post(deps))
}
