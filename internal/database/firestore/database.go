package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

const (
	meetingsCollection = "meetings"
	usersCollection    = "users"
	sentCollection     = "sent"
)

// Options selects the project and credentials. With neither CredentialsJSON
// nor CredentialsFile set, Application Default Credentials are used.
type Options struct {
	ProjectID       string
	CredentialsJSON string
	CredentialsFile string
}

type DB struct {
	client *firestore.Client
}

// Connect opens a Firestore client. When FIRESTORE_EMULATOR_HOST is set the
// client library talks to the emulator without credentials.
func Connect(ctx context.Context, opts Options) (*DB, error) {
	projectID := opts.ProjectID
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}

	var clientOpts []option.ClientOption
	switch {
	case opts.CredentialsJSON != "":
		clientOpts = append(clientOpts, option.WithCredentialsJSON([]byte(opts.CredentialsJSON)))
	case opts.CredentialsFile != "":
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, projectID, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("firestore client error: %w", err)
	}
	return &DB{client: client}, nil
}

func (db *DB) Client() *firestore.Client {
	return db.client
}

func (db *DB) Close() error {
	return db.client.Close()
}
