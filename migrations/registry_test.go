package migrations

import (
	"context"
	"io/fs"
	"testing"
)

func TestFilesystemsResolveBothDialects(t *testing.T) {
	filesystems, err := Filesystems()
	if err != nil {
		t.Fatalf("resolve filesystems: %v", err)
	}
	if len(filesystems) != 2 {
		t.Fatalf("expected postgres and sqlite filesystems, got %d", len(filesystems))
	}
	for _, fsys := range filesystems {
		matches, globErr := fs.Glob(fsys.FS, "*.up.sql")
		if globErr != nil {
			t.Fatalf("glob %s: %v", fsys.Dialect, globErr)
		}
		if len(matches) == 0 {
			t.Fatalf("expected %s migrations, found none", fsys.Dialect)
		}
	}
	if filesystems[0].Dialect != DialectPostgres || filesystems[1].Dialect != DialectSQLite {
		t.Fatalf("unexpected dialect order: %s, %s", filesystems[0].Dialect, filesystems[1].Dialect)
	}
}

func TestRegisterFiltersDialects(t *testing.T) {
	var seen []string
	err := Register(context.Background(), func(_ context.Context, dialect string, label string, fsys fs.FS) error {
		if label != sourceLabel {
			t.Fatalf("expected source label %q, got %q", sourceLabel, label)
		}
		if fsys == nil {
			t.Fatalf("expected filesystem for %s", dialect)
		}
		seen = append(seen, dialect)
		return nil
	}, " SQLite ")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(seen) != 1 || seen[0] != DialectSQLite {
		t.Fatalf("expected only sqlite registration, got %v", seen)
	}
}

func TestRegisterAllDialectsByDefault(t *testing.T) {
	var seen []string
	err := Register(context.Background(), func(_ context.Context, dialect string, _ string, _ fs.FS) error {
		seen = append(seen, dialect)
		return nil
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(seen) != 2 {
		t.Fatalf("expected both dialects registered, got %v", seen)
	}
}

func TestRegisterRequiresFunc(t *testing.T) {
	if err := Register(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil register function")
	}
}
