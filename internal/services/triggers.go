package services

import (
	"time"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
)

// MorningHour is the local hour of the same-day reminder.
const MorningHour = 8

// Triggers holds the instant at which each milestone fires.
type Triggers map[models.Milestone]time.Time

// ComputeTriggers derives the reminder instants of a meeting starting at start.
// The morning trigger is 08:00 on the meeting's calendar day in loc, even
// when the meeting itself starts earlier than that.
func ComputeTriggers(start time.Time, loc *time.Location) Triggers {
	local := start.In(loc)
	return Triggers{
		models.MilestoneT24:     start.Add(-24 * time.Hour),
		models.MilestoneMorning: time.Date(local.Year(), local.Month(), local.Day(), MorningHour, 0, 0, 0, loc),
		models.MilestoneT30:     start.Add(-30 * time.Minute),
	}
}

// InWindow reports whether trigger lies within [now-tolerance, now+tolerance].
func InWindow(trigger, now time.Time, tolerance time.Duration) bool {
	from := now.Add(-tolerance)
	to := now.Add(tolerance)
	return !trigger.Before(from) && !trigger.After(to)
}
