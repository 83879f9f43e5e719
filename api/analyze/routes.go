package analyze

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/videomind-api/api/types"
)

// RegisterRoutes registers video analysis routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/analyze_video", Post(deps))
}
