package model

import "time"

// ScheduleStatus is the lifecycle state of a schedule.
type ScheduleStatus string

const (
	StatusIdle      ScheduleStatus = "idle"
	StatusPlanning  ScheduleStatus = "planning"
	StatusActive    ScheduleStatus = "active"
	StatusCompleted ScheduleStatus = "completed"
)

// Task is a unit of work on a user's schedule.
type Task struct {
	ID          string    `json:"id"`                    // Stable within the schedule
	Name        string    `json:"name"`                  // User-supplied name
	Duration    int       `json:"duration"`              // Minutes, bounded
	Completed   bool      `json:"completed"`             // Set by the user
	Priority    string    `json:"priority,omitempty"`    // high | medium | low
	Description string    `json:"description,omitempty"` // Short note from the draft
	StartTime   Timestamp `json:"startTime,omitzero"`    // Assigned by the timeline builder
	EndTime     Timestamp `json:"endTime,omitzero"`      // StartTime + Duration
}

// HasWindow reports whether the task has been placed on the timeline.
func (t Task) HasWindow() bool {
	return !t.StartTime.IsZero()
}

// Break is a rest window between tasks.
type Break struct {
	Time     Timestamp `json:"time"`     // Start of the break
	Duration int       `json:"duration"` // Minutes
}

// End returns the instant the break finishes.
func (b Break) End() time.Time {
	return b.Time.Add(time.Duration(b.Duration) * time.Minute)
}

// Schedule is one user's plan for the day.
type Schedule struct {
	Tasks            []Task         `json:"tasks"`
	Breaks           []Break        `json:"breaks"`
	StartTime        Timestamp      `json:"startTime"`
	CurrentTaskIndex int            `json:"currentTaskIndex"`
	Status           ScheduleStatus `json:"status"`
}

// CompletedCount returns how many tasks are marked completed.
func (s Schedule) CompletedCount() int {
	n := 0
	for _, t := range s.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of s.
func (s Schedule) Clone() Schedule {
	out := s
	out.Tasks = append([]Task(nil), s.Tasks...)
	out.Breaks = append([]Break(nil), s.Breaks...)
	if out.Tasks == nil {
		out.Tasks = []Task{}
	}
	if out.Breaks == nil {
		out.Breaks = []Break{}
	}
	return out
}
