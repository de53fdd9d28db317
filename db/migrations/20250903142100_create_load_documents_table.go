package migrations

func init() {
	register(migration{
		revision:     "20250903142100_create_load_documents_table",
		downRevision: "20250812103000_create_loads_table",
		up: []string{
			`CREATE TABLE load_documents (
				d_id BIGSERIAL PRIMARY KEY,
				load_id BIGINT NOT NULL REFERENCES loads (l_id) ON DELETE CASCADE,
				file_name VARCHAR(255) NOT NULL,
				object_key VARCHAR(512) NOT NULL UNIQUE,
				content_type VARCHAR(100),
				size_bytes BIGINT NOT NULL DEFAULT 0,
				uploaded_by BIGINT NOT NULL REFERENCES users (u_id),
				create_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
			"CREATE INDEX ix_load_documents_load_id ON load_documents (load_id)",
		},
		down: []string{"DROP TABLE load_documents"},
	})
}
