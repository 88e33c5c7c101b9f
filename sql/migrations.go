package sql

import (
	"cmp"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"
)

//go:embed migrations/*.sql
var embedded embed.FS

// migration is a numbered schema step. Files are named <version>_<description>.sql
// and hold statements separated by semicolons.
type migration struct {
	version    int
	name       string
	statements []string
}

func loadMigrations(fsys fs.FS, dir string) ([]migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}
	var rst []migration
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".sql" {
			continue
		}
		prefix, _, _ := strings.Cut(entry.Name(), "_")
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("invalid migration %s: %w", entry.Name(), err)
		}
		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		m := migration{version: version, name: entry.Name()}
		for _, stmt := range strings.Split(string(content), ";") {
			if stmt = strings.TrimSpace(stmt); stmt != "" {
				m.statements = append(m.statements, stmt+";")
			}
		}
		rst = append(rst, m)
	}
	slices.SortFunc(rst, func(a, b migration) int {
		return cmp.Compare(a.version, b.version)
	})
	return rst, nil
}

func userVersion(db Executor) (int, error) {
	var version int
	if _, err := db.Exec("PRAGMA user_version;", nil, func(stmt *Statement) bool {
		version = stmt.ColumnInt(0)
		return true
	}); err != nil {
		return 0, fmt.Errorf("read user_version: %w", err)
	}
	return version, nil
}

// embeddedMigrations applies the migrations newer than the user_version of db.
func embeddedMigrations(db Executor) error {
	migrations, err := loadMigrations(embedded, "migrations")
	if err != nil {
		return err
	}
	current, err := userVersion(db)
	if err != nil {
		return err
	}
	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		for _, stmt := range m.statements {
			if _, err := db.Exec(stmt, nil, nil); err != nil {
				return fmt.Errorf("%s: %w", m.name, err)
			}
		}
		// pragmas take no bound parameters
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d;", m.version), nil, nil); err != nil {
			return fmt.Errorf("update user_version to %d: %w", m.version, err)
		}
	}
	return nil
}
