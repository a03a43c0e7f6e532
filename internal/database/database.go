package database

import (
	"context"
	"fmt"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/config"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/contract"
	fsdb "github.com/sachaflorestadistica-commits/sachaflor-bot/internal/database/firestore"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/database/postgres"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/database/sqlite"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/log"
)

// Open connects the backend named by cfg.Store. The returned close function
// must be called once the DataManager is no longer used.
func Open(ctx context.Context, cfg *config.Config) (contract.DataManager, func() error, error) {
	switch cfg.Store {
	case config.StoreFirestore:
		db, err := fsdb.Connect(ctx, fsdb.Options{
			ProjectID:       cfg.FirebaseProjectID,
			CredentialsJSON: cfg.FirebaseServiceAccount,
			CredentialsFile: cfg.FirebaseCredentialFile,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info("store connected", "backend", cfg.Store, "project_id", cfg.FirebaseProjectID)
		return fsdb.NewInstance(db), db.Close, nil

	case config.StorePostgres:
		db, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("store connected", "backend", cfg.Store)
		return postgres.NewInstance(db), db.Close, nil

	case config.StoreSQLite:
		db, err := sqlite.New(cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("store connected", "backend", cfg.Store, "path", cfg.DatabasePath)
		return sqlite.NewInstance(db), db.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store)
}
