package types

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/videomind-api/internal/services/llm"
	"github.com/killallgit/videomind-api/internal/services/visualsearch"
	"github.com/killallgit/videomind-api/pkg/youtube"
	"github.com/phuslu/log"
)

// Handler utility functions to reduce duplication across handlers

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid request body",
			Error:   "invalid_request",
			Details: err.Error(),
		})
		return false
	}
	return true
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Status: StatusError, Message: message, Error: "bad_request"})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Status: StatusError, Message: message, Error: "not_found"})
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Status: StatusError, Message: message, Error: "internal_error"})
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendServiceError maps a video service error onto a status code. op names
// the failed operation in the message, e.g. "Video analysis".
func SendServiceError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, youtube.ErrInvalidURL):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid YouTube URL",
			Error:   "invalid_url",
			Detail:  err.Error(),
		})
	case errors.Is(err, visualsearch.ErrNotIndexed):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Status:  StatusError,
			Message: "Video has not been indexed. Call /generate_embeddings first.",
			Error:   "not_indexed",
			Detail:  err.Error(),
		})
	case errors.Is(err, context.Canceled) && c.Request.Context().Err() != nil:
		// client went away, nobody reads the body
		log.Debug().Str("path", c.Request.URL.Path).Msg("Request cancelled by client")
		c.AbortWithStatus(499)
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Str("op", op).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Status:    StatusError,
			Message:   op + " failed",
			Error:     "upstream_error",
			Detail:    UpstreamDetail(op, err),
			Retryable: llm.IsRetryable(err) || errors.Is(err, context.DeadlineExceeded),
		})
	}
}

// UpstreamDetail is the diagnostic string returned with a 500
func UpstreamDetail(op string, err error) string {
	return fmt.Sprintf("%s failed: %v. Please ensure your API key is correct, "+
		"the video URL is valid and publicly accessible, and the configured model is available for your project.", op, err)
}
