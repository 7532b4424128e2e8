package http

import (
	"time"

	"github.com/gin-gonic/gin"
)

const sseEvent = "message"

// Stream godoc
// @Summary     Stream progress
// @Description Server-Sent Events mirror of the progress endpoint, pushed on connect and then at a fixed interval until the client disconnects.
// @Tags        Schedule
// @Produce     text/event-stream
// @Param       userId path string true "User ID"
// @Success     200 {object} progressResp
// @Router      /api/stream/{userId} [GET]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("userId")

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	h.l.Debugf(ctx, "http.Stream: opened for user=%s", userID)
	h.push(c, userID)

	ticker := time.NewTicker(h.streamInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.l.Debugf(ctx, "http.Stream: closed for user=%s", userID)
			return
		case <-ticker.C:
			h.push(c, userID)
		}
	}
}

// push writes one progress event. Failures are sent as a message so the
// client keeps its connection.
func (h *handler) push(c *gin.Context, userID string) {
	data, err := h.progress(c, userID)
	if err != nil {
		data = messageResp{Message: h.mapError(err).Error()}
	}
	c.SSEvent(sseEvent, data)
	c.Writer.Flush()
}
