package migrations

func init() {
	register(migration{
		revision:     "20251002091800_create_audit_logs_table",
		downRevision: "20250903142100_create_load_documents_table",
		up: []string{
			`CREATE TABLE audit_logs (
				a_id BIGSERIAL PRIMARY KEY,
				user_id BIGINT,
				action VARCHAR(30) NOT NULL,
				resource_type VARCHAR(30) NOT NULL,
				resource_id VARCHAR(100),
				old_data JSONB,
				new_data JSONB,
				ip_address VARCHAR(45),
				user_agent VARCHAR(255),
				description VARCHAR(255),
				create_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
			"CREATE INDEX ix_audit_logs_user_id ON audit_logs (user_id)",
		},
		down: []string{"DROP TABLE audit_logs"},
	})
}
