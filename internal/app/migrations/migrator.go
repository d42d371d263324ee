package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/db"
)

//go:embed sql/*.sql
var embedded embed.FS

const (
	createMigrationTableSQL = `CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`
	isAppliedSQL     = `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`
	recordSQL        = `INSERT INTO schema_migrations (version) VALUES ($1)`
	clearRecordsSQL  = `DELETE FROM schema_migrations`
	dropAllTablesSQL = `DROP TABLE IF EXISTS enrollments, courses, users CASCADE`
)

// Migration is one versioned SQL file
type Migration struct {
	Version string
	Name    string
	SQL     string
}

// Migrator manages database migrations
type Migrator struct {
	db     db.TxBeginner
	fsys   fs.FS
	logger zerolog.Logger
}

// NewMigrator creates a migrator over the embedded schema files
func NewMigrator(conn db.TxBeginner, lgr zerolog.Logger) *Migrator {
	sub, _ := fs.Sub(embedded, "sql")
	return NewMigratorWithFS(conn, sub, lgr)
}

// NewMigratorWithFS creates a migrator reading *.sql files from the root of fsys
func NewMigratorWithFS(conn db.TxBeginner, fsys fs.FS, lgr zerolog.Logger) *Migrator {
	return &Migrator{db: conn, fsys: fsys, logger: lgr}
}

// Load returns the migrations sorted by file name
func (m *Migrator) Load() ([]Migration, error) {
	entries, err := fs.ReadDir(m.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(m.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", name, err)
		}
		migrations = append(migrations, Migration{
			// "001_init.sql" => "001"
			Version: strings.Split(path.Base(name), "_")[0],
			Name:    name,
			SQL:     string(content),
		})
	}

	return migrations, nil
}

// Migrate applies every migration that has not been recorded yet.
// Each file runs in its own transaction together with its bookkeeping row.
func (m *Migrator) Migrate(ctx context.Context) error {
	migrations, err := m.Load()
	if err != nil {
		return err
	}

	if _, err := m.db.Exec(ctx, createMigrationTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}

	for _, mig := range migrations {
		var applied bool
		if err := m.db.QueryRow(ctx, isAppliedSQL, mig.Version).Scan(&applied); err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if applied {
			m.logger.Debug().Str("migration", mig.Name).Msg("Migration already applied, skipping")
			continue
		}

		err := db.WithTransaction(ctx, m.db, func(ctx context.Context, tx pgx.Tx) error {
			return apply(ctx, tx, mig)
		})
		if err != nil {
			return err
		}
		m.logger.Info().Str("migration", mig.Name).Msg("Migration applied")
	}

	return nil
}

// Reset drops the application tables and rebuilds them from scratch in a single
// transaction. Running it repeatedly always ends in the same empty schema.
func (m *Migrator) Reset(ctx context.Context) error {
	migrations, err := m.Load()
	if err != nil {
		return err
	}

	err = db.WithTransaction(ctx, m.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, createMigrationTableSQL); err != nil {
			return fmt.Errorf("failed to create migration tracking table: %w", err)
		}
		if _, err := tx.Exec(ctx, dropAllTablesSQL); err != nil {
			return fmt.Errorf("failed to drop tables: %w", err)
		}
		if _, err := tx.Exec(ctx, clearRecordsSQL); err != nil {
			return fmt.Errorf("failed to clear migration records: %w", err)
		}
		for _, mig := range migrations {
			if err := apply(ctx, tx, mig); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	m.logger.Warn().Int("migrations", len(migrations)).Msg("Database schema reset")
	return nil
}

func apply(ctx context.Context, tx pgx.Tx, mig Migration) error {
	if _, err := tx.Exec(ctx, mig.SQL); err != nil {
		return fmt.Errorf("migration %s failed: %w", mig.Name, err)
	}
	if _, err := tx.Exec(ctx, recordSQL, mig.Version); err != nil {
		return fmt.Errorf("failed to record migration %s: %w", mig.Name, err)
	}
	return nil
}
