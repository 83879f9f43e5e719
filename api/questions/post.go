package questions

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/videomind-api/api/types"
)

const noTranscriptMessage = "No transcript is available for this video, so the question could not be answered from it."

// Post handles transcript question requests
// @Summary      Ask a question
// @Description  Answer a question from the video transcript. Long transcripts are split into chunks and the answer citing the most moments wins; time mentions become links into the video.
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request body types.AskQuestionRequest true "Video and question"
// @Success      200 {object} types.QuestionResponse "Answer with timestamp links"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid body or URL"
// @Failure      500 {object} types.ErrorResponse "Upstream failure"
// @Router       /ask_question [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.AskQuestionRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		ctx, cancel := deps.RequestContext(c.Request.Context())
		defer cancel()

		result, err := deps.VideoService.AskQuestion(ctx, req.VideoURL, req.Question)
		if err != nil {
			types.SendServiceError(c, "Question answering", err)
			return
		}

		resp := types.QuestionResponse{
			Success:        true,
			Answer:         result.Answer.Text,
			HasTranscripts: result.HasTranscript,
		}
		if !result.HasTranscript {
			resp.Message = noTranscriptMessage
		}

		c.JSON(http.StatusOK, resp)
	}
}
