package postgres

import (
	"database/sql"
	"embed"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate applies the schema through database/sql using the pgx driver.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.PostgresDialect{})

	return migrator.Migrate(SqlFiles, "sql")
}

// MigrateURL opens a short-lived database/sql handle for connStr and migrates it.
func MigrateURL(connStr string) error {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return err
	}
	defer db.Close()

	return Migrate(db)
}
