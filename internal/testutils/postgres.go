package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/openhaul/loadboard/db"
)

// SetupPostgresForIntegration returns a connected database with all
// migrations applied. When TEST_DB_DSN is set it is used directly;
// otherwise a throwaway postgres container is started.
func SetupPostgresForIntegration() (*sql.DB, func()) {
	// Check if an external DB DSN is provided
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		sqlDB, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatal(err)
		}
		if err := sqlDB.Ping(); err != nil {
			log.Fatal(err)
		}

		if _, err := db.MigrateUp(sqlDB); err != nil {
			log.Fatal(err)
		}

		return sqlDB, func() {
			_ = sqlDB.Close()
		}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "loadboard",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/loadboard?sslmode=disable", host, port.Port())
	os.Setenv("DATABASE_URL", dsn)

	// retry db connect
	var sqlDB *sql.DB
	for i := 0; i < 10; i++ {
		sqlDB, err = sql.Open("postgres", dsn)
		if err == nil {
			err = sqlDB.Ping()
			if err == nil {
				break
			}
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		log.Fatal(err)
	}

	if _, err := db.MigrateUp(sqlDB); err != nil {
		log.Fatal(err)
	}

	cleanup := func() {
		_ = sqlDB.Close()
		_ = pg.Terminate(ctx)
	}

	return sqlDB, cleanup
}
