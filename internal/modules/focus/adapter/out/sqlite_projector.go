package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"eduvibe/internal/modules/focus/domain"
	focusout "eduvibe/internal/modules/focus/port/out"
	recorddomain "eduvibe/internal/modules/record/domain"

	_ "modernc.org/sqlite"
)

type SQLiteFocusProjector struct {
	db *sql.DB
}

func NewSQLiteFocusProjector(dbPath string) (focusout.FocusIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteFocusProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteFocusProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS focus_sessions (
  id TEXT PRIMARY KEY,
  task TEXT NOT NULL,
  day TEXT NOT NULL,
  started_at TEXT NOT NULL,
  ended_at TEXT NOT NULL,
  duration_hours REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS focus_sessions_day ON focus_sessions(day);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create focus_sessions table: %w", err)
	}
	return nil
}

func (s *SQLiteFocusProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM focus_sessions`); err != nil {
		return fmt.Errorf("reset focus sessions: %w", err)
	}
	return nil
}

func (s *SQLiteFocusProjector) UpsertSession(ctx context.Context, session recorddomain.FocusSession) error {
	const stmt = `
INSERT INTO focus_sessions (id, task, day, started_at, ended_at, duration_hours)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  task=excluded.task,
  day=excluded.day,
  started_at=excluded.started_at,
  ended_at=excluded.ended_at,
  duration_hours=excluded.duration_hours;
`
	_, err := s.db.ExecContext(ctx, stmt,
		string(session.ID),
		session.Task,
		session.Date,
		session.StartTime.Format(time.RFC3339),
		session.EndTime.Format(time.RFC3339),
		session.Duration,
	)
	if err != nil {
		return fmt.Errorf("upsert focus session: %w", err)
	}
	return nil
}

// DailyTotals sums sessions per day for days in [from, to]. Days without
// sessions are absent.
func (s *SQLiteFocusProjector) DailyTotals(ctx context.Context, from, to string) ([]domain.DailyTotal, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT day, SUM(duration_hours), COUNT(*) FROM focus_sessions
WHERE day >= ? AND day <= ?
GROUP BY day
ORDER BY day ASC;
`, from, to)
	if err != nil {
		return nil, fmt.Errorf("query daily totals: %w", err)
	}
	defer rows.Close()
	var out []domain.DailyTotal
	for rows.Next() {
		var t domain.DailyTotal
		if err := rows.Scan(&t.Day, &t.Hours, &t.Sessions); err != nil {
			return nil, fmt.Errorf("scan daily total: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily totals: %w", err)
	}
	return out, nil
}
