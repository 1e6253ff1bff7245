package render

import (
	"github.com/gin-gonic/gin"
)

// Error writes the JSON error payload the presentation layer renders.
func Error(c *gin.Context, status int, msg string, requestID string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":      msg,
		"request_id": requestID,
	})
}
