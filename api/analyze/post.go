package analyze

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/videomind-api/api/types"
	"github.com/killallgit/videomind-api/internal/models"
)

const noTranscriptMessage = "No transcript is available for this video. The summary was generated from the video itself."

// Post handles video analysis requests
// @Summary      Summarize a video
// @Description  Summarize a YouTube video and extract the timestamps tagged in the summary. The summary is grounded in the transcript when one exists.
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request body types.AnalyzeVideoRequest true "Video to analyze"
// @Success      200 {object} types.VideoAnalysisResponse "Video summary"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid body or URL"
// @Failure      500 {object} types.ErrorResponse "Upstream model failure"
// @Router       /analyze_video [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.AnalyzeVideoRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		ctx, cancel := deps.RequestContext(c.Request.Context())
		defer cancel()

		analysis, err := deps.VideoService.Analyze(ctx, req.YoutubeURL)
		if err != nil {
			types.SendServiceError(c, "Video analysis", err)
			return
		}

		resp := types.VideoAnalysisResponse{
			Success:           true,
			VideoURL:          analysis.VideoURL,
			VideoID:           analysis.VideoID,
			VideoSummary:      analysis.Summary,
			SummaryTimestamps: analysis.SummaryTimestamps,
			HasTranscripts:    analysis.HasTranscript,
		}
		if resp.SummaryTimestamps == nil {
			resp.SummaryTimestamps = []models.SummaryTimestamp{}
		}
		if !analysis.HasTranscript {
			resp.Message = noTranscriptMessage
		}

		c.JSON(http.StatusOK, resp)
	}
}
