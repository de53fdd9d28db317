package migrations

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	all, err := All()
	require.NoError(t, err)
	require.NotEmpty(t, all)

	require.Equal(t, "20250812101500_create_users_table", all[0].Id)
	require.Equal(t, "20260607153000_drop_loads_status_column", all[len(all)-1].Id)

	for i := 1; i < len(all); i++ {
		require.Less(t, all[i-1].Id, all[i].Id, "chain order must match timestamp order")
	}
}

func TestHead(t *testing.T) {
	head, err := Head()
	require.NoError(t, err)
	require.Equal(t, "20260607153000_drop_loads_status_column", head)
}

func TestDropStatusMigration(t *testing.T) {
	all, err := All()
	require.NoError(t, err)

	head := all[len(all)-1]
	require.Equal(t, []string{"ALTER TABLE loads DROP COLUMN status"}, head.Up)

	require.Len(t, head.Down, 2)
	require.Contains(t, head.Down[0], "ADD COLUMN status VARCHAR(30) NOT NULL DEFAULT 'AVAILABLE'")
	require.Contains(t, head.Down[1], "CREATE INDEX ix_loads_status")
}

func TestDownStatements(t *testing.T) {
	down, err := DownStatements("20260607153000_drop_loads_status_column")
	require.NoError(t, err)
	require.Len(t, down, 2)

	_, err = DownStatements("19990101000000_nope")
	require.Error(t, err)
}

func TestChainRejectsDuplicateRevision(t *testing.T) {
	saved := allMigrations
	defer func() { allMigrations = saved }()

	allMigrations = append(allMigrations[:len(allMigrations):len(allMigrations)], migration{
		revision:     "20250812101500_create_users_table",
		downRevision: "20260607153000_drop_loads_status_column",
	})

	_, err := All()
	require.ErrorContains(t, err, "duplicate revision")
}

func TestChainRejectsBranch(t *testing.T) {
	saved := allMigrations
	defer func() { allMigrations = saved }()

	allMigrations = append(allMigrations[:len(allMigrations):len(allMigrations)], migration{
		revision:     "20260701000000_branch",
		downRevision: "20260415120000_add_booked_to_loads",
	})

	_, err := All()
	require.ErrorContains(t, err, "both follow")
}

func TestChainRejectsSecondBase(t *testing.T) {
	saved := allMigrations
	defer func() { allMigrations = saved }()

	allMigrations = append(allMigrations[:len(allMigrations):len(allMigrations)], migration{
		revision: "20260701000000_second_base",
	})

	_, err := All()
	require.ErrorContains(t, err, "multiple base revisions")
}

func TestChainRejectsUnknownDownRevision(t *testing.T) {
	saved := allMigrations
	defer func() { allMigrations = saved }()

	allMigrations = append(allMigrations[:len(allMigrations):len(allMigrations)], migration{
		revision:     "20260701000000_orphan",
		downRevision: "20200101000000_missing",
	})

	_, err := All()
	require.ErrorContains(t, err, "chain is broken")
}
