package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/videomind-api/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Report service health and whether a model API key is configured
// @Tags         system
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.HealthResponse{
			Status:           "healthy",
			APIKeyConfigured: deps != nil && deps.APIKeyConfigured,
		})
	}
}
