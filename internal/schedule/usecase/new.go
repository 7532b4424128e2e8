package usecase

import (
	"time"

	"daily-planner/internal/assistant"
	"daily-planner/internal/planner"
	"daily-planner/internal/schedule"
	"daily-planner/internal/schedule/repository"
	pkgLog "daily-planner/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	assistant assistant.Assistant
	policy    planner.Policy
	locks     *userLocks
	now       func() time.Time
}

var _ schedule.UseCase = (*implUseCase)(nil)

// New creates a new schedule UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	asst assistant.Assistant,
	policy planner.Policy,
) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		assistant: asst,
		policy:    policy,
		locks:     newUserLocks(),
		now:       time.Now,
	}
}
