package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/contract"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/log"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
)

// TickReport summarizes one pass over the meetings.
type TickReport struct {
	RunID    string
	Meetings int
	// Skipped counts meetings without a usable future start.
	Skipped int
	// Due counts in-window milestones without a sent-marker.
	Due      int
	Messages int
	Marked   int
	// Pending counts due milestones where nothing was delivered; they are
	// retried on the next tick while still in the window.
	Pending int
	Failed  int
}

// ReminderService runs the reminder pass: for every upcoming meeting and
// every milestone in the current window, broadcast once and record it.
type ReminderService struct {
	dm       contract.DataManager
	notifier *Notifier
	loc      *time.Location
	window   time.Duration
	now      func() time.Time
}

func NewReminderService(dm contract.DataManager, notifier *Notifier, loc *time.Location, window time.Duration) *ReminderService {
	return &ReminderService{
		dm:       dm,
		notifier: notifier,
		loc:      loc,
		window:   window,
		now:      time.Now,
	}
}

// Tick processes all meetings once. Meetings are isolated from each other:
// only a failure to list meetings is returned.
func (s *ReminderService) Tick(ctx context.Context) (TickReport, error) {
	report := TickReport{RunID: uuid.NewString()}
	now := s.now()

	log.Info("tick started", "run_id", report.RunID, "now", now.In(s.loc).Format(time.RFC3339), "window", s.window)

	meetings, err := s.dm.Meeting().List(ctx)
	if err != nil {
		return report, fmt.Errorf("list meetings: %w", err)
	}

	for _, m := range meetings {
		report.Meetings++
		if err := s.safeProcessMeeting(ctx, m, now, &report); err != nil {
			var dataErr *models.DataError
			if errors.As(err, &dataErr) {
				report.Skipped++
				log.Debug("meeting skipped", "run_id", report.RunID, "meeting_id", m.ID, "reason", dataErr.Reason)
				continue
			}
			report.Failed++
			log.Error("meeting failed", err, "run_id", report.RunID, "meeting_id", m.ID)
		}
	}

	log.Info("tick finished",
		"run_id", report.RunID,
		"meetings", report.Meetings,
		"skipped", report.Skipped,
		"due", report.Due,
		"messages", report.Messages,
		"marked", report.Marked,
		"pending", report.Pending,
		"failed", report.Failed,
	)
	return report, nil
}

func (s *ReminderService) safeProcessMeeting(ctx context.Context, m *models.Meeting, now time.Time, report *TickReport) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic processing meeting %s: %v", m.ID, r)
		}
	}()
	return s.processMeeting(ctx, m, now, report)
}

func (s *ReminderService) processMeeting(ctx context.Context, m *models.Meeting, now time.Time, report *TickReport) error {
	if !m.HasStart() {
		return &models.DataError{MeetingID: m.ID, Reason: "missing or malformed datetime"}
	}
	if m.Start.Before(now) {
		return &models.DataError{MeetingID: m.ID, Reason: "already started"}
	}

	triggers := ComputeTriggers(m.Start, s.loc)
	for _, milestone := range models.Milestones {
		if err := s.processMilestone(ctx, m, milestone, triggers[milestone], now, report); err != nil {
			report.Failed++
			log.Error("milestone failed", err, "run_id", report.RunID, "meeting_id", m.ID, "milestone", milestone)
		}
	}
	return nil
}

func (s *ReminderService) processMilestone(ctx context.Context, m *models.Meeting, milestone models.Milestone, trigger, now time.Time, report *TickReport) error {
	if !InWindow(trigger, now, s.window) {
		return nil
	}

	sent, err := s.dm.Sent().WasSent(ctx, m.ID, milestone)
	if err != nil {
		return fmt.Errorf("check sent marker: %w", err)
	}
	if sent {
		log.Debug("already sent", "run_id", report.RunID, "meeting_id", m.ID, "milestone", milestone)
		return nil
	}
	report.Due++

	res, err := s.notifier.Broadcast(ctx, m, BaseMessage(m, milestone, s.loc))
	report.Messages += res.Sent()
	if err != nil {
		return err
	}
	if res.Sent() == 0 {
		report.Pending++
		log.Warn("nothing delivered, milestone left unmarked", "run_id", report.RunID, "meeting_id", m.ID, "milestone", milestone, "attempts", len(res.Deliveries))
		return nil
	}

	if err := s.dm.Sent().MarkSent(ctx, m.ID, milestone); err != nil {
		return fmt.Errorf("mark sent after %d deliveries: %w", res.Sent(), err)
	}
	report.Marked++
	log.Info("milestone sent", "run_id", report.RunID, "meeting_id", m.ID, "milestone", milestone, "messages", res.Sent())
	return nil
}
