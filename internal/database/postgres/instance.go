package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/contract"
)

type instance struct {
	db          *DB
	meetingRepo contract.MeetingRepo
	userRepo    contract.UserRepo
	sentRepo    contract.SentRepo
}

// NewInstance creates a DataManager backed by the pool
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:          db,
		meetingRepo: newMeetingRepo(db.pool),
		userRepo:    newUserRepo(db.pool),
		sentRepo:    newSentRepo(db.pool),
	}
}

func (i *instance) Meeting() contract.MeetingRepo {
	return i.meetingRepo
}

func (i *instance) User() contract.UserRepo {
	return i.userRepo
}

func (i *instance) Sent() contract.SentRepo {
	return i.sentRepo
}

func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	return pgx.BeginFunc(ctx, i.db.pool, func(tx pgx.Tx) error {
		err := fn(&instance{
			meetingRepo: newMeetingRepo(tx),
			userRepo:    newUserRepo(tx),
			sentRepo:    newSentRepo(tx),
		})
		if err != nil {
			return fmt.Errorf("transaction: %w", err)
		}
		return nil
	})
}
