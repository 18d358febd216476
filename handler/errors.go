package handler

import (
	"errors"
	"strings"

	"taskpulse/logger"
	"taskpulse/usecase"
	"taskpulse/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the response envelope.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		utils.BadRequest(c, clientMessage(err, usecase.ErrInvalidInput))
	case errors.Is(err, usecase.ErrUnauthorized):
		utils.Unauthorized(c, "Invalid username or password")
	case errors.Is(err, usecase.ErrNotFound):
		utils.NotFound(c, "Resource not found")
	case errors.Is(err, usecase.ErrConflict):
		utils.Conflict(c, clientMessage(err, usecase.ErrConflict))
	case errors.Is(err, usecase.ErrStoreUnavailable):
		logger.Error("store unavailable", "path", c.FullPath(), "request_id", c.GetString("request_id"), "error", err)
		utils.TrackError("store", "unavailable")
		utils.ServiceUnavailable(c, "Service temporarily unavailable")
	default:
		logger.Error("request failed", "path", c.FullPath(), "request_id", c.GetString("request_id"), "error", err)
		utils.TrackError("http", "internal")
		utils.InternalError(c, "Internal server error")
	}
}

// clientMessage keeps the text after the sentinel ("invalid input: days
// must be ...") and drops any operation prefix.
func clientMessage(err, sentinel error) string {
	msg := err.Error()
	if i := strings.Index(msg, sentinel.Error()+": "); i >= 0 {
		return msg[i+len(sentinel.Error())+2:]
	}
	return sentinel.Error()
}

func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "Missing user ID")
		return "", false
	}
	return userID, true
}
