package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
)

type userRepo struct {
	db dbConn
}

func newUserRepo(db dbConn) *userRepo {
	return &userRepo{db: db}
}

func (r *userRepo) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, coalesce(display_name, ''), coalesce(telegram_chat_id, ''), role::text, roles::text
		FROM users
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, models.NewStoreError("list users", err)
	}

	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.User, error) {
		var (
			u           models.User
			role, roles *string
		)
		if err := row.Scan(&u.ID, &u.DisplayName, &u.ChatID, &role, &roles); err != nil {
			return nil, err
		}
		u.Role = models.RoleFromColumn(role)
		u.Roles = models.RoleFromColumn(roles)
		return &u, nil
	})
	if err != nil {
		return nil, models.NewStoreError("scan users", err)
	}
	return users, nil
}

func (r *userRepo) Save(ctx context.Context, u *models.User) error {
	role, err := models.RoleJSON(u.Role)
	if err != nil {
		return models.NewStoreError("encode user role", err)
	}
	roles, err := models.RoleJSON(u.Roles)
	if err != nil {
		return models.NewStoreError("encode user roles", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO users (id, display_name, telegram_chat_id, role, roles)
		VALUES ($1, $2, $3, $4::jsonb, $5::jsonb)
		ON CONFLICT (id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			telegram_chat_id = EXCLUDED.telegram_chat_id,
			role = EXCLUDED.role,
			roles = EXCLUDED.roles
	`, u.ID, u.DisplayName, u.ChatID, role, roles)
	return models.NewStoreError("save user", err)
}
