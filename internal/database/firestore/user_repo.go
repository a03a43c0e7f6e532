package firestore

import (
	"context"
	"errors"
	"strconv"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
)

type userRepo struct {
	client *firestore.Client
}

func newUserRepo(client *firestore.Client) *userRepo {
	return &userRepo{client: client}
}

func (r *userRepo) List(ctx context.Context) ([]*models.User, error) {
	iter := r.client.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	var users []*models.User
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, models.NewStoreError("list users", err)
		}
		users = append(users, userFromData(doc.Ref.ID, doc.Data()))
	}
	return users, nil
}

func (r *userRepo) Save(ctx context.Context, u *models.User) error {
	data := map[string]any{
		"display_name":     u.DisplayName,
		"telegram_chat_id": u.ChatID,
	}
	if raw := u.Role.Raw(); raw != nil {
		data["role"] = raw
	}
	if raw := u.Roles.Raw(); raw != nil {
		data["roles"] = raw
	}

	_, err := r.client.Collection(usersCollection).Doc(u.ID).Set(ctx, data)
	return models.NewStoreError("save user", err)
}

func userFromData(id string, data map[string]any) *models.User {
	return &models.User{
		ID:          id,
		DisplayName: stringField(data, "display_name"),
		ChatID:      chatIDField(data["telegram_chat_id"]),
		Role:        models.RoleValueOf(data["role"]),
		Roles:       models.RoleValueOf(data["roles"]),
	}
}

// chatIDField accepts chat ids typed into the console as numbers.
func chatIDField(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	}
	return ""
}

func stringField(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}
