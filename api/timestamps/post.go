package timestamps

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/videomind-api/api/types"
	"github.com/killallgit/videomind-api/internal/models"
	"github.com/killallgit/videomind-api/internal/services/videos"
)

const (
	videoSourceMessage = "No transcript is available for this video. Timestamps were extracted from the video itself."
	emptyMessage       = "No timestamps could be extracted from the model response."
)

// Post handles timestamp extraction requests
// @Summary      Extract timestamps
// @Description  Extract validated, chronologically ordered navigation timestamps for a video
// @Tags         timestamps
// @Accept       json
// @Produce      json
// @Param        request body types.TimestampsRequest true "Video to process"
// @Success      200 {object} types.TimestampsResponse "Timestamps ordered by seconds"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid body or URL"
// @Failure      500 {object} types.ErrorResponse "Upstream model failure"
// @Router       /timestamps [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TimestampsRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		ctx, cancel := deps.RequestContext(c.Request.Context())
		defer cancel()

		list, err := deps.VideoService.Timestamps(ctx, req.VideoURL)
		if err != nil {
			types.SendServiceError(c, "Timestamp extraction", err)
			return
		}

		resp := types.TimestampsResponse{
			Success:    true,
			Timestamps: list.Timestamps,
			Source:     list.Source,
			Strategy:   string(list.Strategy),
		}
		if resp.Timestamps == nil {
			resp.Timestamps = []models.Timestamp{}
		}
		switch {
		case len(resp.Timestamps) == 0:
			resp.Message = emptyMessage
		case list.Source == videos.SourceVideo:
			resp.Message = videoSourceMessage
		}

		c.JSON(http.StatusOK, resp)
	}
}
