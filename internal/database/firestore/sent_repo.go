package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
)

type sentRepo struct {
	client *firestore.Client
}

func newSentRepo(client *firestore.Client) *sentRepo {
	return &sentRepo{client: client}
}

func (r *sentRepo) ref(meetingID string, milestone models.Milestone) *firestore.DocumentRef {
	return r.client.Collection(meetingsCollection).Doc(meetingID).Collection(sentCollection).Doc(milestone.String())
}

func (r *sentRepo) WasSent(ctx context.Context, meetingID string, milestone models.Milestone) (bool, error) {
	doc, err := r.ref(meetingID, milestone).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, models.NewStoreError("get sent marker", err)
	}
	return doc.Exists(), nil
}

func (r *sentRepo) MarkSent(ctx context.Context, meetingID string, milestone models.Milestone) error {
	_, err := r.ref(meetingID, milestone).Set(ctx, map[string]any{"at": firestore.ServerTimestamp}, firestore.MergeAll)
	return models.NewStoreError("set sent marker", err)
}
