package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
)

type meetingRepo struct {
	db dbConn
}

func newMeetingRepo(db dbConn) *meetingRepo {
	return &meetingRepo{db: db}
}

func (r *meetingRepo) List(ctx context.Context) ([]*models.Meeting, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, coalesce(title, ''), coalesce(place, ''), datetime, roles::text
		FROM meetings
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, models.NewStoreError("list meetings", err)
	}

	meetings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Meeting, error) {
		var (
			m     models.Meeting
			start *time.Time
			roles *string
		)
		if err := row.Scan(&m.ID, &m.Title, &m.Place, &start, &roles); err != nil {
			return nil, err
		}
		if start != nil {
			m.Start = *start
		}
		m.Roles = models.RoleFromColumn(roles)
		return &m, nil
	})
	if err != nil {
		return nil, models.NewStoreError("scan meetings", err)
	}
	return meetings, nil
}

func (r *meetingRepo) Save(ctx context.Context, m *models.Meeting) error {
	roles, err := models.RoleJSON(m.Roles)
	if err != nil {
		return models.NewStoreError("encode meeting roles", err)
	}

	var start *time.Time
	if m.HasStart() {
		start = &m.Start
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO meetings (id, title, place, datetime, roles)
		VALUES ($1, $2, $3, $4, $5::jsonb)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			place = EXCLUDED.place,
			datetime = EXCLUDED.datetime,
			roles = EXCLUDED.roles
	`, m.ID, m.Title, m.Place, start, roles)
	return models.NewStoreError("save meeting", err)
}
