package db

import (
	"database/sql"

	// Blank import to register the postgres driver with database/sql
	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"

	"github.com/openhaul/loadboard/config"
	"github.com/openhaul/loadboard/db/migrations"
)

// OpenSQL returns a plain database/sql pool. The migration runner and
// the migrate CLI work on this; the gorm session wraps the same pool.
func OpenSQL() (*sql.DB, error) {
	sqlDB, err := sql.Open("postgres", config.DSN())
	if err != nil {
		return nil, err
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return sqlDB, nil
}

func migrationSource() (*migrate.MemoryMigrationSource, error) {
	all, err := migrations.All()
	if err != nil {
		return nil, err
	}
	return &migrate.MemoryMigrationSource{Migrations: all}, nil
}

// MigrateUp applies all pending migrations and reports how many ran.
// Each migration runs in its own transaction; a failure aborts the run
// and surfaces the driver error untouched.
func MigrateUp(sqlDB *sql.DB) (int, error) {
	src, err := migrationSource()
	if err != nil {
		return 0, err
	}
	return migrate.Exec(sqlDB, "postgres", src, migrate.Up)
}

// MigrateDown rolls back at most max applied migrations, newest first.
// max = 0 rolls back everything.
func MigrateDown(sqlDB *sql.DB, max int) (int, error) {
	src, err := migrationSource()
	if err != nil {
		return 0, err
	}
	return migrate.ExecMax(sqlDB, "postgres", src, migrate.Down, max)
}

// MigrationRecords returns the applied migrations from the tracking
// table, oldest first.
func MigrationRecords(sqlDB *sql.DB) ([]*migrate.MigrationRecord, error) {
	return migrate.GetMigrationRecords(sqlDB, "postgres")
}
