package migrations

import (
	"context"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	eaccounting "github.com/goliatone/go-eaccounting"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// sourceLabel identifies this module's migrations to the host migrator.
const sourceLabel = "go-eaccounting"

// FilesystemSpec pairs a SQL dialect with the filesystem holding its
// migration files.
type FilesystemSpec struct {
	Dialect string
	Path    string
	FS      fs.FS
}

// RegisterFunc receives one dialect filesystem at a time; hosts hook it
// into their own migrator (go-persistence-bun's RegisterSQLMigrations).
type RegisterFunc func(ctx context.Context, dialect string, sourceLabel string, fsys fs.FS) error

// Filesystems resolves the per-dialect migration filesystems from the
// embedded tree. Postgres files live at the root, sqlite variants in the
// sqlite/ subdirectory.
func Filesystems() ([]FilesystemSpec, error) {
	base, err := fs.Sub(eaccounting.GetMigrationsFS(), "data/sql/migrations")
	if err != nil {
		return nil, fmt.Errorf("migrations: resolve embedded tree: %w", err)
	}
	sqliteFS, err := fs.Sub(base, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("migrations: resolve sqlite filesystem: %w", err)
	}

	filesystems := []FilesystemSpec{
		{Dialect: DialectPostgres, Path: "data/sql/migrations", FS: base},
		{Dialect: DialectSQLite, Path: "data/sql/migrations/sqlite", FS: sqliteFS},
	}
	for _, fsys := range filesystems {
		matches, globErr := fs.Glob(fsys.FS, "*.up.sql")
		if globErr != nil {
			return nil, fmt.Errorf("migrations: glob %s %s: %w", fsys.Dialect, fsys.Path, globErr)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("migrations: %s filesystem %q has no *.up.sql files", fsys.Dialect, fsys.Path)
		}
	}
	return filesystems, nil
}

// Register hands each dialect filesystem to registerFn. Passing dialect
// names restricts registration to those dialects; passing none registers
// every dialect.
func Register(ctx context.Context, registerFn RegisterFunc, dialects ...string) error {
	if registerFn == nil {
		return fmt.Errorf("migrations: register function is required")
	}
	filesystems, err := Filesystems()
	if err != nil {
		return err
	}

	wanted := make([]string, 0, len(dialects))
	for _, dialect := range dialects {
		trimmed := strings.TrimSpace(strings.ToLower(dialect))
		if trimmed != "" && !slices.Contains(wanted, trimmed) {
			wanted = append(wanted, trimmed)
		}
	}

	for _, fsys := range filesystems {
		if len(wanted) > 0 && !slices.Contains(wanted, fsys.Dialect) {
			continue
		}
		if err := registerFn(ctx, fsys.Dialect, sourceLabel, fsys.FS); err != nil {
			return fmt.Errorf("migrations: register %s (%s): %w", fsys.Dialect, fsys.Path, err)
		}
	}
	return nil
}
