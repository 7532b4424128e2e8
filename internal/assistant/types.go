package assistant

import "daily-planner/internal/model"

// DraftSource tells where a draft came from.
type DraftSource string

const (
	DraftSourceModel    DraftSource = "model"
	DraftSourceFallback DraftSource = "fallback"
)

// DraftTask is a planned task before it is placed on the timeline.
type DraftTask struct {
	Name        string
	Duration    int // Minutes, already normalized
	Priority    string
	Description string
}

// Draft is the proposed plan for a batch of task names.
type Draft struct {
	Tasks      []DraftTask
	Commentary string
	Source     DraftSource
}

// CommentaryInput describes the moment the commentary is about.
type CommentaryInput struct {
	Task             model.Task
	MinutesRemaining int
	BreakRemaining   *int
	Completed        int
	Total            int
}

// modelDraft is the JSON shape requested from the model.
type modelDraft struct {
	Tasks      []modelDraftTask `json:"tasks"`
	Commentary string           `json:"commentary"`
}

type modelDraftTask struct {
	Name              string `json:"name"`
	Duration          any    `json:"duration"`
	EstimatedDuration any    `json:"estimated_duration"`
	Priority          string `json:"priority"`
	Description       string `json:"description"`
}

// rawDuration prefers "duration" and falls back to "estimated_duration".
func (t modelDraftTask) rawDuration() any {
	if t.Duration != nil {
		return t.Duration
	}
	return t.EstimatedDuration
}
