package server

import (
	"net/http"
	"time"

	"catalogue-service/internal/catalogueerrors"
	"catalogue-service/services/catalogue/helpers"
	"catalogue-service/utils"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the per-request correlation id
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestIDMiddleware reuses a valid incoming X-Request-ID or generates one, and echoes it back
func RequestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if !utils.ValidID(id) {
		id = utils.GenerateID()
	}
	c.Set(requestIDKey, id)
	c.Header(RequestIDHeader, id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString(requestIDKey),
	}
	if user := c.GetString(helpers.UserKey); user != "" {
		fields["user"] = user
	}
	utils.Info("HTTP Request", fields)
}

// RequireUser rejects requests that do not carry a non-empty identity header
func RequireUser(header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.GetHeader(header)
		if user == "" {
			utils.AbortJSONError(c, http.StatusUnauthorized, catalogueerrors.ErrUnauthenticated, "user not logged in")
			utils.Warn("RequireUser: missing identity header", map[string]any{
				"path":   c.Request.URL.Path,
				"header": header,
			})
			return
		}
		c.Set(helpers.UserKey, user)
		c.Next()
	}
}
