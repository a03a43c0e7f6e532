package models

import "fmt"

// Milestone names one of the reminder checkpoints of a meeting.
type Milestone string

const (
	MilestoneT24     Milestone = "t24"
	MilestoneMorning Milestone = "morning"
	MilestoneT30     Milestone = "t30"
)

// Milestones lists every milestone in evaluation order.
var Milestones = []Milestone{MilestoneT24, MilestoneMorning, MilestoneT30}

// ParseMilestone validates a stored milestone key.
func ParseMilestone(s string) (Milestone, error) {
	for _, m := range Milestones {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown milestone %q", s)
}

func (m Milestone) String() string {
	return string(m)
}
