package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/contract"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/log"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
)

// Local datetime layouts accepted besides RFC 3339; they are read in the
// configured time zone.
var localLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// File is the YAML document accepted by Import.
type File struct {
	Meetings []Meeting `yaml:"meetings"`
	Users    []User    `yaml:"users"`
}

type Meeting struct {
	ID       string           `yaml:"id"`
	Title    string           `yaml:"title"`
	Place    string           `yaml:"place"`
	Datetime string           `yaml:"datetime"`
	Roles    models.RoleValue `yaml:"roles"`
}

type User struct {
	ID             string           `yaml:"id"`
	DisplayName    string           `yaml:"display_name"`
	TelegramChatID string           `yaml:"telegram_chat_id"`
	Role           models.RoleValue `yaml:"role"`
	Roles          models.RoleValue `yaml:"roles"`
}

// Result counts the imported documents.
type Result struct {
	Meetings int
	Users    int
}

// Parse decodes and validates a seed file. Datetimes without an offset are
// interpreted in loc.
func Parse(r io.Reader, loc *time.Location) ([]*models.Meeting, []*models.User, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("decode seed: %w", err)
	}

	meetings := make([]*models.Meeting, 0, len(f.Meetings))
	for i, m := range f.Meetings {
		if strings.TrimSpace(m.ID) == "" {
			return nil, nil, fmt.Errorf("meetings[%d]: id is required", i)
		}
		start, err := parseDatetime(m.Datetime, loc)
		if err != nil {
			return nil, nil, fmt.Errorf("meetings[%d] %s: %w", i, m.ID, err)
		}
		meetings = append(meetings, &models.Meeting{
			ID:    m.ID,
			Title: m.Title,
			Place: m.Place,
			Start: start,
			Roles: m.Roles,
		})
	}

	users := make([]*models.User, 0, len(f.Users))
	for i, u := range f.Users {
		if strings.TrimSpace(u.ID) == "" {
			return nil, nil, fmt.Errorf("users[%d]: id is required", i)
		}
		users = append(users, &models.User{
			ID:          u.ID,
			DisplayName: u.DisplayName,
			ChatID:      u.TelegramChatID,
			Role:        u.Role,
			Roles:       u.Roles,
		})
	}
	return meetings, users, nil
}

func parseDatetime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("datetime is required")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", s)
}

// Import parses r and saves every meeting and user into dm. Backends that
// support transactions import all or nothing.
func Import(ctx context.Context, dm contract.DataManager, r io.Reader, loc *time.Location) (Result, error) {
	meetings, users, err := Parse(r, loc)
	if err != nil {
		return Result{}, err
	}

	save := func(dm contract.DataManager) error {
		for _, m := range meetings {
			if err := dm.Meeting().Save(ctx, m); err != nil {
				return fmt.Errorf("meeting %s: %w", m.ID, err)
			}
		}
		for _, u := range users {
			if err := dm.User().Save(ctx, u); err != nil {
				return fmt.Errorf("user %s: %w", u.ID, err)
			}
		}
		return nil
	}

	if tx, ok := dm.(contract.Transactor); ok {
		err = tx.WithTransaction(ctx, save)
	} else {
		err = save(dm)
	}
	if err != nil {
		return Result{}, err
	}

	res := Result{Meetings: len(meetings), Users: len(users)}
	log.Info("seed imported", "meetings", res.Meetings, "users", res.Users)
	return res, nil
}
