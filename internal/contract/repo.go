package contract

import (
	"context"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
)

//go:generate mockgen -source=repo.go -destination=../../mocks/repo_mock.go -package=mocks

// DataManager aggregates all repository interfaces
type DataManager interface {
	Meeting() MeetingRepo
	User() UserRepo
	Sent() SentRepo
}

// MeetingRepo defines the contract for meeting storage
type MeetingRepo interface {
	// List returns every meeting in the store's natural order.
	List(ctx context.Context) ([]*models.Meeting, error)
	Save(ctx context.Context, meeting *models.Meeting) error
}

// UserRepo defines the contract for the recipient roster
type UserRepo interface {
	// List returns every user in the store's natural order.
	List(ctx context.Context) ([]*models.User, error)
	Save(ctx context.Context, user *models.User) error
}

// SentRepo records which (meeting, milestone) pairs were already notified
type SentRepo interface {
	WasSent(ctx context.Context, meetingID string, milestone models.Milestone) (bool, error)
	// MarkSent is an idempotent upsert; calling it twice is not an error.
	MarkSent(ctx context.Context, meetingID string, milestone models.Milestone) error
}

// Transactor is implemented by backends that can group writes atomically
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
}
