package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
)

// setupTestDB connects to TEST_DATABASE_URL and truncates the tables.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.pool.Exec(ctx, `TRUNCATE meeting_sent, meetings, users`)
	require.NoError(t, err)
	return db
}

func TestPostgres_Repos(t *testing.T) {
	db := setupTestDB(t)
	dm := NewInstance(db)
	ctx := context.Background()

	start := time.Date(2025, 6, 10, 19, 0, 0, 0, time.UTC)
	id := uuid.NewString()

	require.NoError(t, dm.Meeting().Save(ctx, &models.Meeting{ID: id, Title: "Planificación", Start: start, Roles: models.ListRole("Cultivador")}))
	require.NoError(t, dm.User().Save(ctx, &models.User{ID: "u1", DisplayName: "Ana", ChatID: "123", Role: models.TextRole("cultivador")}))

	meetings, err := dm.Meeting().List(ctx)
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.True(t, start.Equal(meetings[0].Start))
	assert.Equal(t, []string{"Cultivador"}, meetings[0].Roles.Values())

	users, err := dm.User().List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.TextRole("cultivador"), users[0].Role)
	assert.False(t, users[0].Roles.Present())

	sent, err := dm.Sent().WasSent(ctx, id, models.MilestoneT24)
	require.NoError(t, err)
	assert.False(t, sent)

	require.NoError(t, dm.Sent().MarkSent(ctx, id, models.MilestoneT24))
	require.NoError(t, dm.Sent().MarkSent(ctx, id, models.MilestoneT24))

	sent, err = dm.Sent().WasSent(ctx, id, models.MilestoneT24)
	require.NoError(t, err)
	assert.True(t, sent)
}
