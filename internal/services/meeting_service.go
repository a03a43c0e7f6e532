package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/contract"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
)

// MeetingService answers read-only questions about scheduled meetings.
type MeetingService struct {
	meetings contract.MeetingRepo
	now      func() time.Time
}

func NewMeetingService(meetings contract.MeetingRepo) *MeetingService {
	return &MeetingService{meetings: meetings, now: time.Now}
}

// Upcoming returns up to limit meetings that have not started yet, soonest first.
func (s *MeetingService) Upcoming(ctx context.Context, limit int) ([]*models.Meeting, error) {
	all, err := s.meetings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}

	now := s.now()
	var upcoming []*models.Meeting
	for _, m := range all {
		if m.HasStart() && !m.Start.Before(now) {
			upcoming = append(upcoming, m)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Start.Before(upcoming[j].Start)
	})

	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming, nil
}
