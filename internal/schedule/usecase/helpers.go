package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"daily-planner/internal/assistant"
	"daily-planner/internal/model"
	"daily-planner/internal/planner"
)

// taskNamespace scopes task ids so the same user, start and position always
// yield the same id.
var taskNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("daily-planner/task"))

// cleanNames trims names and drops the blank ones.
func cleanNames(raw []string) []string {
	names := make([]string, 0, len(raw))
	for _, n := range raw {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

func taskID(userID string, start time.Time, index int) string {
	return uuid.NewSHA1(taskNamespace, fmt.Appendf(nil, "%s/%d/%d", userID, start.UnixMilli(), index)).String()
}

// draftTasks turns a draft into unplaced tasks with stable ids.
func draftTasks(userID string, start time.Time, draft assistant.Draft) []model.Task {
	tasks := make([]model.Task, len(draft.Tasks))
	for i, d := range draft.Tasks {
		tasks[i] = model.Task{
			ID:          taskID(userID, start, i),
			Name:        d.Name,
			Duration:    d.Duration,
			Priority:    d.Priority,
			Description: d.Description,
		}
	}
	return tasks
}

// commentaryInput describes task index i of s at now.
func commentaryInput(s model.Schedule, i int, now time.Time) assistant.CommentaryInput {
	task := s.Tasks[planner.ClampIndex(i, len(s.Tasks))]
	return assistant.CommentaryInput{
		Task:             task,
		MinutesRemaining: planner.MinutesRemaining(task, now),
		BreakRemaining:   planner.NextBreakIn(s.Breaks, now),
		Completed:        s.CompletedCount(),
		Total:            len(s.Tasks),
	}
}

func historyOf(state model.UserState) []model.ConversationTurn {
	if state.ConversationHistory == nil {
		return []model.ConversationTurn{}
	}
	return state.ConversationHistory
}
