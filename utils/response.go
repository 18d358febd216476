package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  int         `json:"-"`                 // HTTP status code
	Message string      `json:"message,omitempty"` // Optional message
	Error   string      `json:"error,omitempty"`   // Error message
	Data    interface{} `json:"data,omitempty"`    // Response data
}

func respond(c *gin.Context, status int, r *Response) {
	r.Status = status
	c.JSON(status, r)
}

func fail(c *gin.Context, status int, message string) {
	respond(c, status, &Response{Error: message})
}

// Success responses
func Success(c *gin.Context, data interface{}) {
	respond(c, http.StatusOK, &Response{Data: data})
}

func SuccessMessage(c *gin.Context, message string, data interface{}) {
	respond(c, http.StatusOK, &Response{Message: message, Data: data})
}

func Created(c *gin.Context, data interface{}) {
	respond(c, http.StatusCreated, &Response{
		Message: "Resource created successfully",
		Data:    data,
	})
}

// Error responses
func BadRequest(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	fail(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	fail(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	fail(c, http.StatusConflict, message)
}

func TooManyRequests(c *gin.Context, message string) {
	fail(c, http.StatusTooManyRequests, message)
}

func InternalError(c *gin.Context, message string) {
	fail(c, http.StatusInternalServerError, message)
}

// ServiceUnavailable is used when a backing store cannot be reached.
func ServiceUnavailable(c *gin.Context, message string) {
	fail(c, http.StatusServiceUnavailable, message)
}
