package planner

import (
	"time"

	"daily-planner/internal/model"
)

// Progress is the live view of a schedule at a given instant.
type Progress struct {
	ActiveIndex    int  // Task the user should be working on
	TimeRemaining  int  // Whole minutes left in the active task
	BreakRemaining *int // Whole minutes until the next break, nil if none
	Changed        bool // ActiveIndex differs from the persisted pointer
}

// ResolveProgress derives the active task from wall-clock time. The active
// task is the first one that has started and is either still running or not
// yet completed, so unfinished overdue work holds the pointer. When nothing
// matches, the persisted pointer is kept.
func ResolveProgress(s model.Schedule, now time.Time) Progress {
	p := Progress{ActiveIndex: ClampIndex(s.CurrentTaskIndex, len(s.Tasks))}
	if len(s.Tasks) == 0 {
		p.BreakRemaining = NextBreakIn(s.Breaks, now)
		return p
	}

	for i, t := range s.Tasks {
		if !t.HasWindow() || now.Before(t.StartTime.Time) {
			continue
		}
		if t.EndTime.IsZero() || now.Before(t.EndTime.Time) || !t.Completed {
			p.ActiveIndex = i
			break
		}
	}

	p.Changed = p.ActiveIndex != s.CurrentTaskIndex
	p.TimeRemaining = MinutesRemaining(s.Tasks[p.ActiveIndex], now)
	p.BreakRemaining = NextBreakIn(s.Breaks, now)
	return p
}

// MinutesRemaining returns the whole minutes until t ends, never negative.
func MinutesRemaining(t model.Task, now time.Time) int {
	if t.EndTime.IsZero() {
		return 0
	}
	return max(0, int(t.EndTime.Sub(now)/time.Minute))
}

// NextBreakIn returns the whole minutes until the first break that starts
// strictly after now.
func NextBreakIn(breaks []model.Break, now time.Time) *int {
	for _, b := range breaks {
		if b.Time.After(now) {
			m := int(b.Time.Sub(now) / time.Minute)
			return &m
		}
	}
	return nil
}

// ClampIndex bounds i to [0, n-1], or 0 when n is zero.
func ClampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// CompleteTask sets the completion flag of taskID. Completing a task moves
// the pointer forward by one unless it is already on the last task.
func CompleteTask(s *model.Schedule, taskID string, completed bool) error {
	idx := -1
	for i := range s.Tasks {
		if s.Tasks[i].ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrTaskNotFound
	}

	s.Tasks[idx].Completed = completed
	s.CurrentTaskIndex = ClampIndex(s.CurrentTaskIndex, len(s.Tasks))
	if completed && s.CurrentTaskIndex < len(s.Tasks)-1 {
		s.CurrentTaskIndex++
	}
	s.Status = statusOf(*s)
	return nil
}

// statusOf returns completed once every task is done and falls back to
// active when a completed schedule has work again.
func statusOf(s model.Schedule) model.ScheduleStatus {
	if len(s.Tasks) > 0 && s.CompletedCount() == len(s.Tasks) {
		return model.StatusCompleted
	}
	if s.Status == model.StatusCompleted {
		return model.StatusActive
	}
	return s.Status
}
