package http

import (
	"github.com/gin-gonic/gin"

	"daily-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Routes that call the language model are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/initialize", mw.RateLimit(), h.Initialize)
	rg.GET("/state/:userId", h.State)
	rg.GET("/progress/:userId", h.Progress)
	rg.POST("/task/update", h.UpdateTask)
	rg.POST("/chat", mw.RateLimit(), h.Chat)
	rg.GET("/stream/:userId", h.Stream)
}
