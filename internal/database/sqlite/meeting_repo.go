package sqlite

import (
	"context"
	"database/sql"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
)

type meetingRepo struct {
	db dbConn
}

func newMeetingRepo(db dbConn) *meetingRepo {
	return &meetingRepo{db: db}
}

func (r *meetingRepo) List(ctx context.Context) ([]*models.Meeting, error) {
	query := `
		SELECT id, title, place, datetime, roles
		FROM meetings
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, models.NewStoreError("list meetings", err)
	}
	defer rows.Close()

	var meetings []*models.Meeting
	for rows.Next() {
		var (
			title, place sql.NullString
			start        any
			roles        *string
		)
		m := &models.Meeting{}
		if err := rows.Scan(&m.ID, &title, &place, &start, &roles); err != nil {
			return nil, models.NewStoreError("scan meeting", err)
		}
		m.Title = title.String
		m.Place = place.String
		m.Start = scanTime(start)
		m.Roles = models.RoleFromColumn(roles)
		meetings = append(meetings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, models.NewStoreError("list meetings", err)
	}

	return meetings, nil
}

func (r *meetingRepo) Save(ctx context.Context, m *models.Meeting) error {
	roles, err := models.RoleJSON(m.Roles)
	if err != nil {
		return models.NewStoreError("encode meeting roles", err)
	}

	query := `
		INSERT INTO meetings (id, title, place, datetime, roles)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			place = excluded.place,
			datetime = excluded.datetime,
			roles = excluded.roles
	`

	_, err = r.db.ExecContext(ctx, query, m.ID, m.Title, m.Place, nullTime(m.Start), roles)
	return models.NewStoreError("save meeting", err)
}
