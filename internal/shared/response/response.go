package response

import (
	"github.com/gin-gonic/gin"
)

// The public wire format is fixed by the widget contract: payloads are
// returned as-is, failures are {"error": "<message>"}.

type ErrorBody struct {
	Error string `json:"error"`
}

func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, 409, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, 500, message)
}
