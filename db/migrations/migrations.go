// Package migrations holds the schema history of the load board
// database. Each migration lives in its own file, named after its
// revision, and declares the revision it follows; the package refuses
// to produce a plan unless the revisions form a single unbroken chain.
package migrations

import (
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
)

const migrationTableName = "schema_migrations"

// migration is one reversible schema change. downRevision names the
// revision this one applies on top of; it is empty only for the base
// revision.
type migration struct {
	revision     string
	downRevision string
	up           []string
	down         []string
}

var allMigrations []migration

func init() {
	migrate.SetTable(migrationTableName)
}

// register is called by init() in the individual migration files.
func register(m migration) {
	allMigrations = append(allMigrations, m)
}

// chain orders the registered migrations oldest first by walking the
// down-revision links from the base revision.
func chain() ([]migration, error) {
	byRevision := make(map[string]migration, len(allMigrations))
	successor := make(map[string]string, len(allMigrations))
	base := ""

	for _, m := range allMigrations {
		if _, ok := byRevision[m.revision]; ok {
			return nil, fmt.Errorf("duplicate revision %q", m.revision)
		}
		byRevision[m.revision] = m

		if m.downRevision == "" {
			if base != "" {
				return nil, fmt.Errorf("multiple base revisions: %q and %q", base, m.revision)
			}
			base = m.revision
			continue
		}

		if prev, ok := successor[m.downRevision]; ok {
			return nil, fmt.Errorf("revisions %q and %q both follow %q", prev, m.revision, m.downRevision)
		}
		successor[m.downRevision] = m.revision
	}

	if base == "" {
		if len(allMigrations) == 0 {
			return nil, nil
		}
		return nil, fmt.Errorf("no base revision registered")
	}

	ordered := make([]migration, 0, len(allMigrations))
	for rev := base; rev != ""; rev = successor[rev] {
		m, ok := byRevision[rev]
		if !ok {
			return nil, fmt.Errorf("revision %q follows unknown revision", rev)
		}
		ordered = append(ordered, m)
	}

	if len(ordered) != len(allMigrations) {
		return nil, fmt.Errorf("revision chain is broken: reached %d of %d migrations from base %q",
			len(ordered), len(allMigrations), base)
	}

	return ordered, nil
}

// All returns the full migration chain, oldest first, in the form the
// sql-migrate runner consumes. The revision doubles as the migration Id.
func All() ([]*migrate.Migration, error) {
	ordered, err := chain()
	if err != nil {
		return nil, err
	}

	out := make([]*migrate.Migration, 0, len(ordered))
	for _, m := range ordered {
		out = append(out, &migrate.Migration{
			Id:   m.revision,
			Up:   m.up,
			Down: m.down,
		})
	}
	return out, nil
}

// Head returns the newest revision in the chain, or "" when no
// migrations are registered.
func Head() (string, error) {
	ordered, err := chain()
	if err != nil {
		return "", err
	}
	if len(ordered) == 0 {
		return "", nil
	}
	return ordered[len(ordered)-1].revision, nil
}

// DownStatements exposes the rollback statements of a single revision.
// The migration tests replay these directly to check failure modes.
func DownStatements(revision string) ([]string, error) {
	for _, m := range allMigrations {
		if m.revision == revision {
			return m.down, nil
		}
	}
	return nil, fmt.Errorf("unknown revision %q", revision)
}
