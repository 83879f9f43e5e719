package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/videomind-api/api/types"
)

// Banner is returned by the root endpoint
const Banner = "VIDEOMIND-AI backend is running!"

// Name is the service name reported by the version endpoint
const Name = "VideoMind API"

// Root handles requests to the service root
// @Summary      Service banner
// @Tags         system
// @Produce      json
// @Success      200 {object} types.BannerResponse
// @Router       / [get]
func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.BannerResponse{Message: Banner})
	}
}

// Get handles version requests
// @Summary      Build version
// @Tags         system
// @Produce      json
// @Success      200 {object} types.VersionResponse
// @Router       /version [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := types.VersionResponse{Name: Name, Version: "dev"}
		if deps != nil {
			if deps.Build.Version != "" {
				resp.Version = deps.Build.Version
			}
			resp.GitCommit = deps.Build.GitCommit
			resp.BuildTime = deps.Build.BuildTime
		}
		c.JSON(http.StatusOK, resp)
	}
}
