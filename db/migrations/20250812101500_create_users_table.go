package migrations

func init() {
	register(migration{
		revision:     "20250812101500_create_users_table",
		downRevision: "",
		up: []string{`CREATE TABLE users (
			u_id BIGSERIAL PRIMARY KEY,
			username VARCHAR(50) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			email VARCHAR(100),
			company VARCHAR(100),
			role VARCHAR(20) NOT NULL DEFAULT 'carrier',
			create_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			update_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},
		down: []string{"DROP TABLE users"},
	})
}
