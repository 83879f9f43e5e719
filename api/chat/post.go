package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/videomind-api/api/types"
)

// Post handles chat requests about a video
// @Summary      Chat about a video
// @Description  Answer a free-form query by letting the model watch the video
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request body types.ChatRequest true "Video and query"
// @Success      200 {object} types.ChatResponse "Model answer"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid body or URL"
// @Failure      500 {object} types.ErrorResponse "Upstream model failure"
// @Router       /chat [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ChatRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		ctx, cancel := deps.RequestContext(c.Request.Context())
		defer cancel()

		answer, err := deps.VideoService.Chat(ctx, req.VideoURL, req.Query)
		if err != nil {
			types.SendServiceError(c, "Chat", err)
			return
		}

		c.JSON(http.StatusOK, types.ChatResponse{Success: true, Response: answer})
	}
}
