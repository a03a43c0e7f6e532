package sqlite

import (
	"context"
	"fmt"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/contract"
)

// instance implements DataManager interface
type instance struct {
	db          *DB
	meetingRepo contract.MeetingRepo
	userRepo    contract.UserRepo
	sentRepo    contract.SentRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

func (i *instance) repoInstances() {
	i.meetingRepo = newMeetingRepo(i.db.conn)
	i.userRepo = newUserRepo(i.db.conn)
	i.sentRepo = newSentRepo(i.db.conn)
}

func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		meetingRepo: newMeetingRepo(db),
		userRepo:    newUserRepo(db),
		sentRepo:    newSentRepo(db),
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

// WithTransaction executes fn within a database transaction. The seed import
// uses it so a bad file leaves the store untouched.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	err = fn(repoInstancesWithConn(tx))
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
