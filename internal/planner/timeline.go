package planner

import (
	"time"

	"daily-planner/internal/model"
)

// BuildTimeline places tasks back to back from start and inserts a break
// whenever the next task would push continuous work past policy.BreakInterval.
// The break starts at the interval mark measured from the last break (or
// start), or at the end of the previous task if that is later. Breaks are
// never placed inside a task.
func BuildTimeline(tasks []model.Task, start time.Time, policy Policy) model.Schedule {
	policy = policy.withDefaults()
	breakMinutes := int(policy.BreakDuration / time.Minute)

	s := model.Schedule{
		Tasks:     make([]model.Task, 0, len(tasks)),
		Breaks:    []model.Break{},
		StartTime: model.At(start),
	}

	clock := start
	anchor := start // end of the last break
	for _, t := range tasks {
		d := time.Duration(t.Duration) * time.Minute
		end := clock.Add(d)

		if clock.After(anchor) && end.Sub(anchor) > policy.BreakInterval {
			breakStart := anchor.Add(policy.BreakInterval)
			if breakStart.Before(clock) {
				breakStart = clock
			}
			s.Breaks = append(s.Breaks, model.Break{Time: model.At(breakStart), Duration: breakMinutes})
			clock = breakStart.Add(policy.BreakDuration)
			anchor = clock
			end = clock.Add(d)
		}

		t.StartTime = model.At(clock)
		t.EndTime = model.At(end)
		s.Tasks = append(s.Tasks, t)
		clock = end
	}

	s.CurrentTaskIndex = 0
	s.Status = model.StatusActive
	return s
}

// StartOfNextMinute rounds now up to the next whole minute.
func StartOfNextMinute(now time.Time) time.Time {
	const minuteMs = int64(time.Minute / time.Millisecond)
	ms := now.UnixMilli()
	next := ((ms + minuteMs - 1) / minuteMs) * minuteMs
	return time.UnixMilli(next).In(now.Location())
}
