package questions

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/videomind-api/api/types"
)

// RegisterRoutes registers question answering routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/ask_question", Post(deps))
}
