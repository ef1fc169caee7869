package sqlite

import "database/sql"

// schema sets up the results table. Timestamps are Unix nanoseconds.
const schema = `
CREATE TABLE IF NOT EXISTS results (
    match_id TEXT PRIMARY KEY,
    home TEXT NOT NULL,
    away TEXT NOT NULL,
    home_score INTEGER NOT NULL CHECK (home_score >= 0),
    away_score INTEGER NOT NULL CHECK (away_score >= 0),
    started_at INTEGER NOT NULL,
    finished_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_results_finished_at ON results(finished_at);
CREATE INDEX IF NOT EXISTS idx_results_home ON results(home);
CREATE INDEX IF NOT EXISTS idx_results_away ON results(away);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
