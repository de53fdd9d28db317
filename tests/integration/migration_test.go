package integration

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhaul/loadboard/db"
	"github.com/openhaul/loadboard/db/migrations"
)

type columnInfo struct {
	DataType  string
	MaxLength sql.NullInt64
	Nullable  string
	Default   sql.NullString
}

func loadsColumn(t *testing.T, name string) (columnInfo, bool) {
	t.Helper()

	var info columnInfo
	err := sqlDB.QueryRow(`
		SELECT data_type, character_maximum_length, is_nullable, column_default
		FROM information_schema.columns
		WHERE table_name = 'loads' AND column_name = $1`, name).
		Scan(&info.DataType, &info.MaxLength, &info.Nullable, &info.Default)
	if err == sql.ErrNoRows {
		return columnInfo{}, false
	}
	require.NoError(t, err)
	return info, true
}

func loadsIndexExists(t *testing.T, name string) bool {
	t.Helper()

	var n int
	err := sqlDB.QueryRow(`
		SELECT COUNT(*) FROM pg_indexes
		WHERE tablename = 'loads' AND indexname = $1`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

// TestStatusColumnMigration walks the head migration down and back up,
// checking the schema at every step. The subtests are order-dependent.
func TestStatusColumnMigration(t *testing.T) {
	t.Run("upgraded schema has no status column", func(t *testing.T) {
		_, exists := loadsColumn(t, "status")
		require.False(t, exists)
		require.False(t, loadsIndexExists(t, "ix_loads_status"))

		_, exists = loadsColumn(t, "booked")
		require.True(t, exists)
	})

	t.Run("downgrade restores column and index", func(t *testing.T) {
		n, err := db.MigrateDown(sqlDB, 1)
		require.NoError(t, err)
		require.Equal(t, 1, n)

		info, exists := loadsColumn(t, "status")
		require.True(t, exists)
		require.Equal(t, "character varying", info.DataType)
		require.EqualValues(t, 30, info.MaxLength.Int64)
		require.Equal(t, "NO", info.Nullable)
		require.Contains(t, info.Default.String, "AVAILABLE")

		require.True(t, loadsIndexExists(t, "ix_loads_status"))
	})

	t.Run("restored column defaults to AVAILABLE", func(t *testing.T) {
		var shipperID uint
		err := sqlDB.QueryRow(`SELECT u_id FROM users WHERE role = 'shipper' LIMIT 1`).Scan(&shipperID)
		require.NoError(t, err)

		var status string
		err = sqlDB.QueryRow(`
			INSERT INTO loads (reference, shipper_id, origin, destination, equipment, rate_cents)
			VALUES ('schema-check', $1, 'Fargo, ND', 'Duluth, MN', 'flatbed', 50000)
			RETURNING status`, shipperID).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "AVAILABLE", status)

		_, err = sqlDB.Exec(`DELETE FROM loads WHERE reference = 'schema-check'`)
		require.NoError(t, err)
	})

	t.Run("downgrade fails while status exists", func(t *testing.T) {
		head, err := migrations.Head()
		require.NoError(t, err)

		stmts, err := migrations.DownStatements(head)
		require.NoError(t, err)
		require.NotEmpty(t, stmts)

		_, err = sqlDB.Exec(stmts[0])
		require.Error(t, err)
	})

	t.Run("upgrade drops the column again", func(t *testing.T) {
		n, err := db.MigrateUp(sqlDB)
		require.NoError(t, err)
		require.Equal(t, 1, n)

		_, exists := loadsColumn(t, "status")
		require.False(t, exists)
		require.False(t, loadsIndexExists(t, "ix_loads_status"))

		_, exists = loadsColumn(t, "booked")
		require.True(t, exists)
	})
}
