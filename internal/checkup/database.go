package checkup

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/SureshAIOrigin/automatic-eureka/internal/cmdutil"
)

// configNames are the database config files probed, in order of preference.
var configNames = []string{"database.conf", "db.config", ".env"}

// DatabaseChecks probes installed database clients, the presence of a config
// file under dir, and, when sqlitePath is non-empty, the SQLite database at
// that path.
func DatabaseChecks(dir, sqlitePath string) []Check {
	checks := []Check{
		clientInstalledCheck("mysql"),
		clientInstalledCheck("psql"),
		{Name: "database config", Run: func(ctx context.Context) Result {
			for _, name := range configNames {
				p := filepath.Join(dir, name)
				if _, err := os.Stat(p); err == nil {
					return pass("database config", "found %s", name)
				}
			}
			return fail("database config", "no config file found (tried %v)", configNames)
		}},
	}
	if sqlitePath != "" {
		checks = append(checks, Check{Name: "sqlite database", Run: func(ctx context.Context) Result {
			return sqliteCheck(ctx, sqlitePath)
		}})
	}
	return checks
}

func clientInstalledCheck(tool string) Check {
	name := tool + " installed"
	return Check{Name: name, Run: func(ctx context.Context) Result {
		version, ok := cmdutil.Installed(ctx, tool)
		if !ok {
			return fail(name, "%s not found on PATH", tool)
		}
		return pass(name, "%s", version)
	}}
}

// sqliteCheck opens the database read-only, verifies connectivity and
// integrity, and reports table and row counts.
func sqliteCheck(ctx context.Context, path string) Result {
	const name = "sqlite database"
	if _, err := os.Stat(path); err != nil {
		return fail(name, "cannot stat %s: %v", path, err)
	}
	db, err := sql.Open("sqlite3", path+"?mode=ro")
	if err != nil {
		return fail(name, "open: %v", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return fail(name, "ping: %v", err)
	}

	var integrity string
	if err := db.QueryRowContext(ctx, "PRAGMA integrity_check").Scan(&integrity); err != nil {
		return fail(name, "integrity check: %v", err)
	}
	if integrity != "ok" {
		return fail(name, "integrity check reported %q", integrity)
	}

	rows, err := db.QueryContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'")
	if err != nil {
		return fail(name, "listing tables: %v", err)
	}
	defer rows.Close()
	var tables []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return fail(name, "scanning table name: %v", err)
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return fail(name, "listing tables: %v", err)
	}

	totalRows := 0
	for _, t := range tables {
		var n int
		// Table names come from sqlite_master, not user input.
		if err := db.QueryRowContext(ctx, `SELECT count(*) FROM "`+t+`"`).Scan(&n); err != nil {
			return fail(name, "counting rows in %s: %v", t, err)
		}
		totalRows += n
	}
	return pass(name, "integrity ok, %d table(s), %d row(s)", len(tables), totalRows)
}
