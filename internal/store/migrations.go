package store

import "fmt"

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations returns the ordered list of schema migrations for the
// given driver. Each migration's version must be sequential starting
// from 1. Only the generated-id column syntax differs between drivers.
func migrations(driver string) []migration {
	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if driver == DriverPostgres {
		idColumn = "BIGSERIAL PRIMARY KEY"
	}

	return []migration{
		{
			version: 1,
			sql: fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id            %s,
	title         TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	due_date      DATE,
	assigned_date DATE,
	priority      TEXT NOT NULL DEFAULT 'medium',
	status        TEXT NOT NULL DEFAULT 'todo',
	notes         TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMP NOT NULL,
	updated_at    TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);
CREATE INDEX IF NOT EXISTS idx_tasks_assigned_date ON tasks(assigned_date);

INSERT INTO schema_version (version) VALUES (1);
`, idColumn),
		},
	}
}
