package migrations

// The status string became redundant once booked superseded it. The
// rollback re-adds the column before recreating the index on it.
func init() {
	m := migration{
		revision:     "20260607153000_drop_loads_status_column",
		downRevision: "20260415120000_add_booked_to_loads",
		up: []string{
			"ALTER TABLE loads DROP COLUMN status",
		},
		down: []string{
			"ALTER TABLE loads ADD COLUMN status VARCHAR(30) NOT NULL DEFAULT 'AVAILABLE'",
			"CREATE INDEX ix_loads_status ON loads (status)",
		},
	}

	register(m)
}
