package migrations

func init() {
	register(migration{
		revision:     "20250812103000_create_loads_table",
		downRevision: "20250812101500_create_users_table",
		up: []string{
			`CREATE TABLE loads (
				l_id BIGSERIAL PRIMARY KEY,
				reference VARCHAR(36) NOT NULL UNIQUE,
				shipper_id BIGINT NOT NULL REFERENCES users (u_id),
				carrier_id BIGINT REFERENCES users (u_id),
				origin VARCHAR(100) NOT NULL,
				destination VARCHAR(100) NOT NULL,
				equipment VARCHAR(30) NOT NULL,
				weight_lbs INTEGER NOT NULL DEFAULT 0,
				rate_cents BIGINT NOT NULL,
				pickup_date TIMESTAMPTZ,
				status VARCHAR(30) NOT NULL DEFAULT 'AVAILABLE',
				create_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				update_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
			"CREATE INDEX ix_loads_status ON loads (status)",
		},
		down: []string{"DROP TABLE loads"},
	})
}
