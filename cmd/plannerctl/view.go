package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"daily-planner/internal/model"
	"daily-planner/internal/planner"
)

const (
	outputYAML = "yaml"
	outputJSON = "json"
)

// Views carry RFC3339 strings so both encoders print readable instants.

type taskView struct {
	ID          string `json:"id"                    yaml:"id"`
	Name        string `json:"name"                  yaml:"name"`
	Duration    int    `json:"duration"              yaml:"duration"`
	Completed   bool   `json:"completed"             yaml:"completed"`
	Priority    string `json:"priority,omitempty"    yaml:"priority,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Start       string `json:"start,omitempty"       yaml:"start,omitempty"`
	End         string `json:"end,omitempty"         yaml:"end,omitempty"`
}

type breakView struct {
	Start    string `json:"start"    yaml:"start"`
	Duration int    `json:"duration" yaml:"duration"`
}

type scheduleView struct {
	Status           string      `json:"status"           yaml:"status"`
	Start            string      `json:"start"            yaml:"start"`
	CurrentTaskIndex int         `json:"currentTaskIndex" yaml:"currentTaskIndex"`
	Tasks            []taskView  `json:"tasks"            yaml:"tasks"`
	Breaks           []breakView `json:"breaks"           yaml:"breaks"`
}

type progressView struct {
	At             string `json:"at"                       yaml:"at"`
	ActiveIndex    int    `json:"activeIndex"              yaml:"activeIndex"`
	ActiveTask     string `json:"activeTask"               yaml:"activeTask"`
	TimeRemaining  int    `json:"timeRemaining"            yaml:"timeRemaining"`
	BreakRemaining *int   `json:"breakRemaining,omitempty" yaml:"breakRemaining,omitempty"`
}

type previewView struct {
	Schedule scheduleView `json:"schedule" yaml:"schedule"`
	Progress progressView `json:"progress" yaml:"progress"`
}

type turnView struct {
	Role    string `json:"role"    yaml:"role"`
	Content string `json:"content" yaml:"content"`
	At      string `json:"at"      yaml:"at"`
}

type stateView struct {
	UserID       string        `json:"userId"       yaml:"userId"`
	Schedule     *scheduleView `json:"schedule"     yaml:"schedule"`
	Conversation []turnView    `json:"conversation" yaml:"conversation"`
}

func formatInstant(ts model.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format(time.RFC3339)
}

func newScheduleView(s model.Schedule) scheduleView {
	v := scheduleView{
		Status:           string(s.Status),
		Start:            formatInstant(s.StartTime),
		CurrentTaskIndex: s.CurrentTaskIndex,
		Tasks:            make([]taskView, len(s.Tasks)),
		Breaks:           make([]breakView, len(s.Breaks)),
	}
	for i, t := range s.Tasks {
		v.Tasks[i] = taskView{
			ID:          t.ID,
			Name:        t.Name,
			Duration:    t.Duration,
			Completed:   t.Completed,
			Priority:    t.Priority,
			Description: t.Description,
			Start:       formatInstant(t.StartTime),
			End:         formatInstant(t.EndTime),
		}
	}
	for i, b := range s.Breaks {
		v.Breaks[i] = breakView{Start: formatInstant(b.Time), Duration: b.Duration}
	}
	return v
}

func newPreviewView(s model.Schedule, p planner.Progress, at time.Time) previewView {
	v := previewView{
		Schedule: newScheduleView(s),
		Progress: progressView{
			At:             at.Format(time.RFC3339),
			ActiveIndex:    p.ActiveIndex,
			TimeRemaining:  p.TimeRemaining,
			BreakRemaining: p.BreakRemaining,
		},
	}
	if len(s.Tasks) > 0 {
		v.Progress.ActiveTask = s.Tasks[p.ActiveIndex].Name
	}
	return v
}

func newStateView(state model.UserState) stateView {
	v := stateView{
		UserID:       state.UserID,
		Conversation: make([]turnView, len(state.ConversationHistory)),
	}
	if state.Schedule != nil {
		sv := newScheduleView(*state.Schedule)
		v.Schedule = &sv
	}
	for i, t := range state.ConversationHistory {
		v.Conversation[i] = turnView{Role: string(t.Role), Content: t.Content, At: formatInstant(t.Timestamp)}
	}
	return v
}

func render(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
