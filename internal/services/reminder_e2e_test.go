package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/database/sqlite"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
)

type sentMessage struct {
	chatID string
	text   string
}

// recordingTransport accepts every message except those to chats in reject.
type recordingTransport struct {
	mu     sync.Mutex
	sent   []sentMessage
	reject map[string]bool
}

func (r *recordingTransport) Send(_ context.Context, chatID, text string) error {
	if r.reject[chatID] {
		return errors.New("Forbidden: bot was blocked by the user")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

func TestReminderService_EndToEnd(t *testing.T) {
	loc := guayaquil(t)
	ctx := context.Background()

	db := sqlite.SetupTestDB(t)
	dm := sqlite.NewInstance(db)

	require.NoError(t, dm.Meeting().Save(ctx, &models.Meeting{
		ID:    "M1",
		Title: "Planificación",
		Place: "Templo",
		Start: time.Date(2025, 6, 10, 14, 0, 0, 0, loc),
		Roles: models.ListRole("Cultivador"),
	}))
	require.NoError(t, dm.User().Save(ctx, &models.User{ID: "u1", DisplayName: "Ana", ChatID: "123", Role: models.TextRole("cultivador")}))
	require.NoError(t, dm.User().Save(ctx, &models.User{ID: "u2", DisplayName: "Beto", ChatID: "456", Role: models.TextRole("músico")}))

	transport := &recordingTransport{}
	s := NewReminderService(dm, NewNotifier(NewRoleResolver(dm.User()), transport, 0), loc, 10*time.Minute)

	s.now = func() time.Time { return time.Date(2025, 6, 9, 14, 3, 0, 0, loc) }
	report, err := s.Tick(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Messages)
	assert.Equal(t, 1, report.Marked)
	require.Len(t, transport.sent, 1)
	assert.Equal(t, "123", transport.sent[0].chatID)
	assert.Contains(t, transport.sent[0].text, "24h antes")
	assert.Contains(t, transport.sent[0].text, "cultivador")
	assert.Contains(t, transport.sent[0].text, "10/06/2025 14:00")

	sent, err := dm.Sent().WasSent(ctx, "M1", models.MilestoneT24)
	require.NoError(t, err)
	assert.True(t, sent)

	s.now = func() time.Time { return time.Date(2025, 6, 9, 14, 6, 0, 0, loc) }
	report, err = s.Tick(ctx)
	require.NoError(t, err)

	assert.Zero(t, report.Messages, "overlapping window must not resend")
	assert.Len(t, transport.sent, 1)
}

func TestReminderService_EndToEnd_RetriesUntilDelivered(t *testing.T) {
	loc := guayaquil(t)
	ctx := context.Background()

	db := sqlite.SetupTestDB(t)
	dm := sqlite.NewInstance(db)

	require.NoError(t, dm.Meeting().Save(ctx, &models.Meeting{
		ID:    "M1",
		Start: time.Date(2025, 6, 10, 14, 0, 0, 0, loc),
		Roles: models.TextRole("Pastor"),
	}))
	require.NoError(t, dm.User().Save(ctx, &models.User{ID: "u1", ChatID: "123", Role: models.TextRole("pastor")}))

	transport := &recordingTransport{reject: map[string]bool{"123": true}}
	s := NewReminderService(dm, NewNotifier(NewRoleResolver(dm.User()), transport, 0), loc, 10*time.Minute)

	s.now = func() time.Time { return time.Date(2025, 6, 10, 13, 25, 0, 0, loc) }
	report, err := s.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Pending)

	sent, err := dm.Sent().WasSent(ctx, "M1", models.MilestoneT30)
	require.NoError(t, err)
	assert.False(t, sent, "nothing delivered, nothing marked")

	transport.reject = nil
	s.now = func() time.Time { return time.Date(2025, 6, 10, 13, 30, 0, 0, loc) }
	report, err = s.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Marked)
	require.Len(t, transport.sent, 1)
	assert.Contains(t, transport.sent[0].text, "30 minutos antes")
	assert.Contains(t, transport.sent[0].text, "Hola <b>u1</b> (pastor)", "display name falls back to the user id")
}
