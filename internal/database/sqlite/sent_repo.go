package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
)

type sentRepo struct {
	db dbConn
}

func newSentRepo(db dbConn) *sentRepo {
	return &sentRepo{db: db}
}

func (r *sentRepo) WasSent(ctx context.Context, meetingID string, milestone models.Milestone) (bool, error) {
	query := `SELECT 1 FROM meeting_sent WHERE meeting_id = ? AND kind = ?`

	var one int
	err := r.db.QueryRowContext(ctx, query, meetingID, milestone.String()).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, models.NewStoreError("get sent marker", err)
	}
	return true, nil
}

func (r *sentRepo) MarkSent(ctx context.Context, meetingID string, milestone models.Milestone) error {
	query := `
		INSERT INTO meeting_sent (meeting_id, kind)
		VALUES (?, ?)
		ON CONFLICT(meeting_id, kind) DO UPDATE SET sent_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.ExecContext(ctx, query, meetingID, milestone.String())
	return models.NewStoreError("set sent marker", err)
}
