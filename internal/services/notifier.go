package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/contract"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/log"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
)

var errNoChatID = errors.New("recipient has no chat id")

// Delivery is the outcome of sending one message to one chat.
type Delivery struct {
	UserID string
	ChatID string
	Err    error
}

func (d Delivery) OK() bool {
	return d.Err == nil
}

// Count is 1 for an accepted message and 0 otherwise.
func (d Delivery) Count() int {
	if d.OK() {
		return 1
	}
	return 0
}

// BroadcastResult aggregates the deliveries of one broadcast.
type BroadcastResult struct {
	Deliveries []Delivery
}

// Sent returns the number of accepted messages.
func (r BroadcastResult) Sent() int {
	n := 0
	for _, d := range r.Deliveries {
		n += d.Count()
	}
	return n
}

// Notifier formats and delivers reminders one recipient at a time, pausing
// between messages to stay under the transport's rate limits.
type Notifier struct {
	resolver  RecipientResolver
	transport contract.Transport
	pause     time.Duration
	sleep     func(time.Duration)
}

func NewNotifier(resolver RecipientResolver, transport contract.Transport, pause time.Duration) *Notifier {
	return &Notifier{
		resolver:  resolver,
		transport: transport,
		pause:     pause,
		sleep:     time.Sleep,
	}
}

// Deliver sends text to chatID. Failures are reported in the result, never
// returned or panicked.
func (n *Notifier) Deliver(ctx context.Context, chatID, text string) Delivery {
	d := Delivery{ChatID: chatID}
	if chatID == "" {
		d.Err = errNoChatID
		return d
	}
	if err := n.transport.Send(ctx, chatID, text); err != nil {
		var transportErr *models.TransportError
		if !errors.As(err, &transportErr) {
			err = &models.TransportError{ChatID: chatID, Err: err}
		}
		d.Err = err
		log.Error("message not delivered", err, "chat_id", chatID)
		return d
	}
	log.Info("message delivered", "chat_id", chatID)
	return d
}

// Broadcast resolves the meeting's recipients and delivers base to each of
// them. The error is non-nil only when recipients could not be resolved.
func (n *Notifier) Broadcast(ctx context.Context, m *models.Meeting, base string) (BroadcastResult, error) {
	var res BroadcastResult

	recipients, err := n.resolver.Resolve(ctx, m.Roles)
	if err != nil {
		return res, fmt.Errorf("resolve recipients for meeting %s: %w", m.ID, err)
	}
	if len(recipients) == 0 {
		log.Debug("no recipients", "meeting_id", m.ID, "roles", m.Roles.String())
		return res, nil
	}

	for i, r := range recipients {
		if i > 0 && n.pause > 0 {
			n.sleep(n.pause)
		}
		d := n.Deliver(ctx, r.ChatID, FormatPersonal(base, r))
		d.UserID = r.UserID
		res.Deliveries = append(res.Deliveries, d)
	}
	return res, nil
}
