package services

import (
	"context"
	"fmt"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/contract"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/roles"
)

// RecipientResolver decides who receives a meeting's reminders.
type RecipientResolver interface {
	Resolve(ctx context.Context, meetingRoles models.RoleValue) ([]models.Recipient, error)
}

// RoleResolver matches the roster against the meeting's target roles using
// exact canonical equality.
type RoleResolver struct {
	users contract.UserRepo
}

func NewRoleResolver(users contract.UserRepo) *RoleResolver {
	return &RoleResolver{users: users}
}

func (r *RoleResolver) Resolve(ctx context.Context, meetingRoles models.RoleValue) ([]models.Recipient, error) {
	wanted := meetingRoles.Canonical()
	if len(wanted) == 0 {
		return nil, nil
	}
	wantedSet := roles.NewSet(wanted)

	users, err := r.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var recipients []models.Recipient
	for _, u := range users {
		chatID := u.TelegramChatID()
		if chatID == "" {
			continue
		}
		raw := u.RawRoles()
		userRoles := raw.Canonical()
		if len(userRoles) == 0 {
			continue
		}

		for _, role := range userRoles {
			if !wantedSet.Has(role) {
				continue
			}
			recipients = append(recipients, models.Recipient{
				UserID:      u.ID,
				DisplayName: u.Name(),
				ChatID:      chatID,
				MatchedRole: role,
				RawRole:     raw,
			})
			break
		}
	}
	return recipients, nil
}

// ChatResolver sends every reminder to one fixed chat, ignoring roles.
type ChatResolver struct {
	chatID string
}

func NewChatResolver(chatID string) *ChatResolver {
	return &ChatResolver{chatID: chatID}
}

func (r *ChatResolver) Resolve(context.Context, models.RoleValue) ([]models.Recipient, error) {
	return []models.Recipient{{ChatID: r.chatID}}, nil
}
