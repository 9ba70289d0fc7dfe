package report

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/funvibe/typetrial/internal/trial"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS trials (
	id        TEXT PRIMARY KEY,
	kind      TEXT NOT NULL,
	name      TEXT NOT NULL,
	successes INTEGER NOT NULL,
	passed    INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS failures (
	trial_id TEXT NOT NULL REFERENCES trials(id),
	kind     TEXT NOT NULL,
	message  TEXT NOT NULL,
	input    TEXT,
	outputs  TEXT,
	expected TEXT
);
`

// SQLiteSink persists trial outcomes: one row per trial, one row per
// failure record.
type SQLiteSink struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open result store: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create result schema: %w", err)
	}
	return &SQLiteSink{db: db}, nil
}

func (s *SQLiteSink) Close() error { return s.db.Close() }

// Trial stores one result.
func (s *SQLiteSink) Trial(res trial.Result) error {
	_, err := s.db.Exec(
		`INSERT INTO trials (id, kind, name, successes, passed) VALUES (?, ?, ?, ?, ?)`,
		res.ID.String(), string(res.Kind), res.Name, res.Successes, boolInt(res.Passed()),
	)
	if err != nil {
		return fmt.Errorf("store trial: %w", err)
	}
	if res.Failure == nil {
		return nil
	}

	f := res.Failure
	var input, outputs, expected sql.NullString
	if f.Input != nil {
		input = sql.NullString{String: f.Input.Inspect(), Valid: true}
	}
	if len(f.Outputs) > 0 {
		joined := ""
		for i, out := range f.Outputs {
			if out == nil {
				continue
			}
			if i > 0 {
				joined += "\n"
			}
			joined += out.Inspect()
		}
		outputs = sql.NullString{String: joined, Valid: true}
	}
	if f.Expected != nil {
		expected = sql.NullString{String: f.Expected.String(), Valid: true}
	}

	_, err = s.db.Exec(
		`INSERT INTO failures (trial_id, kind, message, input, outputs, expected) VALUES (?, ?, ?, ?, ?, ?)`,
		res.ID.String(), string(f.Kind), f.Message, input, outputs, expected,
	)
	if err != nil {
		return fmt.Errorf("store failure: %w", err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
