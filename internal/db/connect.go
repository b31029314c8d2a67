package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens the question-bank DB and ensures the schema exists.
// SQLite is the default so a bank file can travel with the binary, the
// way the original standalone tool shipped its questions.db.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:questions.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/exams?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

// One table: the bank. Options are JSON so 2..6 options fit without
// schema churn; three media slots mirror the original import format.
// Media bytes live in the blob store, the table keeps name and MIME.
const schema = `
CREATE TABLE IF NOT EXISTS questions (
  id INTEGER PRIMARY KEY,
  prompt TEXT NOT NULL,
  options_json TEXT NOT NULL,
  correct_letter TEXT NOT NULL DEFAULT '',
  media1_name TEXT, media1_mime TEXT,
  media2_name TEXT, media2_mime TEXT,
  media3_name TEXT, media3_mime TEXT
);
`
