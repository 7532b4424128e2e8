package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"daily-planner/internal/middleware"
	scheduleHTTP "daily-planner/internal/schedule/delivery/http"
	scheduleRepo "daily-planner/internal/schedule/repository/sqlite"
	scheduleUC "daily-planner/internal/schedule/usecase"
)

// setupScheduleDomain initializes the schedule domain and registers its routes.
func (srv HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := scheduleRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := scheduleUC.New(srv.l, repo, srv.assistant, srv.policy)

	// 3. HTTP Handler
	h := scheduleHTTP.New(srv.l, uc, srv.streamInterval)

	// 4. Routes: registers /api/initialize, /api/progress/:userId, ...
	scheduleHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Schedule domain registered")
	return nil
}
