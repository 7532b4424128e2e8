package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"daily-planner/internal/schedule"
	"daily-planner/pkg/log"
)

const DefaultStreamInterval = 30 * time.Second

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	Initialize(c *gin.Context)
	State(c *gin.Context)
	Progress(c *gin.Context)
	UpdateTask(c *gin.Context)
	Chat(c *gin.Context)
	Stream(c *gin.Context)
}

type handler struct {
	l              log.Logger
	uc             schedule.UseCase
	streamInterval time.Duration
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase, streamInterval time.Duration) Handler {
	if streamInterval <= 0 {
		streamInterval = DefaultStreamInterval
	}
	return &handler{
		l:              l,
		uc:             uc,
		streamInterval: streamInterval,
	}
}
