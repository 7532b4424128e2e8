package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"daily-planner/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags the request context with an id, reusing the caller's when sent.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.SetRequestID(c.Request.Context(), id))
		c.Next()
	}
}
