package firestore

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
)

type meetingRepo struct {
	client *firestore.Client
}

func newMeetingRepo(client *firestore.Client) *meetingRepo {
	return &meetingRepo{client: client}
}

// List returns meetings in document id order.
func (r *meetingRepo) List(ctx context.Context) ([]*models.Meeting, error) {
	iter := r.client.Collection(meetingsCollection).Documents(ctx)
	defer iter.Stop()

	var meetings []*models.Meeting
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, models.NewStoreError("list meetings", err)
		}
		meetings = append(meetings, meetingFromData(doc.Ref.ID, doc.Data()))
	}
	return meetings, nil
}

func (r *meetingRepo) Save(ctx context.Context, m *models.Meeting) error {
	_, err := r.client.Collection(meetingsCollection).Doc(m.ID).Set(ctx, meetingData(m))
	return models.NewStoreError("save meeting", err)
}

// meetingFromData decodes a meeting document. A datetime that is not a
// timestamp leaves Start zero.
func meetingFromData(id string, data map[string]any) *models.Meeting {
	m := &models.Meeting{
		ID:    id,
		Title: stringField(data, "title"),
		Place: stringField(data, "place"),
		Roles: models.RoleValueOf(data["roles"]),
	}
	if t, ok := data["datetime"].(time.Time); ok {
		m.Start = t
	}
	return m
}

func meetingData(m *models.Meeting) map[string]any {
	data := map[string]any{
		"title": m.Title,
		"place": m.Place,
	}
	if m.HasStart() {
		data["datetime"] = m.Start
	}
	if raw := m.Roles.Raw(); raw != nil {
		data["roles"] = raw
	}
	return data
}
