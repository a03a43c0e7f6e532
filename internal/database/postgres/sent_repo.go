package postgres

import (
	"context"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
)

type sentRepo struct {
	db dbConn
}

func newSentRepo(db dbConn) *sentRepo {
	return &sentRepo{db: db}
}

func (r *sentRepo) WasSent(ctx context.Context, meetingID string, milestone models.Milestone) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM meeting_sent WHERE meeting_id = $1 AND kind = $2)`,
		meetingID, milestone.String(),
	).Scan(&exists)
	if err != nil {
		return false, models.NewStoreError("get sent marker", err)
	}
	return exists, nil
}

func (r *sentRepo) MarkSent(ctx context.Context, meetingID string, milestone models.Milestone) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO meeting_sent (meeting_id, kind)
		VALUES ($1, $2)
		ON CONFLICT (meeting_id, kind) DO UPDATE SET sent_at = now()
	`, meetingID, milestone.String())
	return models.NewStoreError("set sent marker", err)
}
