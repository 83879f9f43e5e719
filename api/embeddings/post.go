package embeddings

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/videomind-api/api/types"
	"github.com/killallgit/videomind-api/pkg/timecode"
)

// Post handles scene indexing requests
// @Summary      Index video scenes
// @Description  Describe the scenes of a video, embed each description and replace the video's entry in the visual search index
// @Tags         visual-search
// @Accept       json
// @Produce      json
// @Param        request body types.GenerateEmbeddingsRequest true "Video to index"
// @Success      200 {object} types.VideoEmbeddingResponse "Indexed scene descriptions"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid body or URL"
// @Failure      500 {object} types.ErrorResponse "Upstream model or embedding failure"
// @Router       /generate_embeddings [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.GenerateEmbeddingsRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		ctx, cancel := deps.RequestContext(c.Request.Context())
		defer cancel()

		result, err := deps.VideoService.GenerateEmbeddings(ctx, req.YoutubeURL)
		if err != nil {
			types.SendServiceError(c, "Embedding generation", err)
			return
		}

		descriptions := make([]types.SceneDescription, len(result.Descriptions))
		for i, d := range result.Descriptions {
			descriptions[i] = types.SceneDescription{
				Timestamp:   d.Timestamp,
				Time:        timecode.Clock(d.Timestamp),
				Description: d.Description,
			}
		}

		c.JSON(http.StatusOK, types.VideoEmbeddingResponse{
			Success:      true,
			VideoID:      result.VideoID,
			Descriptions: descriptions,
		})
	}
}
