package sqlite

import (
	"context"
	"database/sql"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
)

type userRepo struct {
	db dbConn
}

func newUserRepo(db dbConn) *userRepo {
	return &userRepo{db: db}
}

func (r *userRepo) List(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, display_name, telegram_chat_id, role, roles
		FROM users
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, models.NewStoreError("list users", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var (
			name, chatID sql.NullString
			role, roles  *string
		)
		u := &models.User{}
		if err := rows.Scan(&u.ID, &name, &chatID, &role, &roles); err != nil {
			return nil, models.NewStoreError("scan user", err)
		}
		u.DisplayName = name.String
		u.ChatID = chatID.String
		u.Role = models.RoleFromColumn(role)
		u.Roles = models.RoleFromColumn(roles)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, models.NewStoreError("list users", err)
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

	query := `
		INSERT INTO users (id, display_name, telegram_chat_id, role, roles)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			display_name = excluded.display_name,
			telegram_chat_id = excluded.telegram_chat_id,
			role = excluded.role,
			roles = excluded.roles
	`

	_, err = r.db.ExecContext(ctx, query, u.ID, u.DisplayName, u.ChatID, role, roles)
	return models.NewStoreError("save user", err)
}
