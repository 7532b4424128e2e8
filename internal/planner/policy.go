package planner

import "time"

// Policy controls break insertion.
type Policy struct {
	BreakInterval time.Duration // Max continuous work before a break
	BreakDuration time.Duration // Length of each break
}

func DefaultPolicy() Policy {
	return Policy{
		BreakInterval: DefaultBreakInterval,
		BreakDuration: DefaultBreakDuration,
	}
}

// withDefaults fills non-positive fields from DefaultPolicy.
func (p Policy) withDefaults() Policy {
	d := DefaultPolicy()
	if p.BreakInterval <= 0 {
		p.BreakInterval = d.BreakInterval
	}
	if p.BreakDuration <= 0 {
		p.BreakDuration = d.BreakDuration
	}
	return p
}
