package planner

import "time"

const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 480

	// EdgeTaskBonus is added to the first and last task of a batch when estimating.
	EdgeTaskBonus = 15

	DefaultBreakInterval = 90 * time.Minute
	DefaultBreakDuration = 15 * time.Minute
)
