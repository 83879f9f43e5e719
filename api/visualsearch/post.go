package visualsearch

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/videomind-api/api/types"
	"github.com/killallgit/videomind-api/internal/models"
)

// Post handles visual search requests
// @Summary      Search video scenes
// @Description  Rank the indexed scenes of a video by cosine similarity to a text query
// @Tags         visual-search
// @Accept       json
// @Produce      json
// @Param        request body types.VisualSearchRequest true "Video and search query"
// @Success      200 {object} types.VisualSearchResponse "Best matching scenes"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid body or URL"
// @Failure      404 {object} types.ErrorResponse "Video has not been indexed"
// @Failure      500 {object} types.ErrorResponse "Upstream embedding failure"
// @Router       /perform_visual_search [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.VisualSearchRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		ctx, cancel := deps.RequestContext(c.Request.Context())
		defer cancel()

		result, err := deps.VideoService.VisualSearch(ctx, req.YoutubeURL, req.SearchQuery, req.TopK)
		if err != nil {
			types.SendServiceError(c, "Visual search", err)
			return
		}

		results := result.Results
		if results == nil {
			results = []models.VisualSearchResult{}
		}

		c.JSON(http.StatusOK, types.VisualSearchResponse{
			Success:     true,
			VideoID:     result.VideoID,
			SearchQuery: result.Query,
			Results:     results,
		})
	}
}
