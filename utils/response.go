package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, errorBody(status, err, message))
}

// AbortJSONError sends a structured error response and stops the handler chain
func AbortJSONError(c *gin.Context, status int, err error, message string) {
	c.AbortWithStatusJSON(status, errorBody(status, err, message))
}

func errorBody(status int, err error, message string) gin.H {
	return gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	}
}
