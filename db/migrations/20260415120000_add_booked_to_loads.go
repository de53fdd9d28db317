package migrations

func init() {
	m := migration{
		revision:     "20260415120000_add_booked_to_loads",
		downRevision: "20251002091800_create_audit_logs_table",
		up: []string{
			"ALTER TABLE loads ADD COLUMN booked BOOLEAN NOT NULL DEFAULT FALSE",
			// any legacy state other than AVAILABLE means a carrier has the load
			"UPDATE loads SET booked = TRUE WHERE status <> 'AVAILABLE'",
		},
		down: []string{"ALTER TABLE loads DROP COLUMN booked"},
	}

	register(m)
}
