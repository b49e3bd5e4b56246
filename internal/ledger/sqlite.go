package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const defaultLedgerDBName = "pokertab_ledger.db"

// SQLiteSink appends chip deltas to a local SQLite database.
type SQLiteSink struct {
	db *sql.DB
}

func NewSQLiteSink(dbPath string) (*SQLiteSink, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if dbPath != ":memory:" {
		parent := filepath.Dir(dbPath)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS chip_ledger (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    player_id      TEXT NOT NULL,
    delta          INTEGER NOT NULL,
    recorded_at_ms INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chip_ledger_player ON chip_ledger(player_id);
`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteSink{db: db}, nil
}

func (s *SQLiteSink) RecordDelta(ctx context.Context, playerID string, delta int) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO chip_ledger (player_id, delta, recorded_at_ms) VALUES (?, ?, ?)
`, playerID, delta, time.Now().UnixMilli())
	return err
}

// Balance returns the accumulated delta for a player across all recorded
// table sessions.
func (s *SQLiteSink) Balance(ctx context.Context, playerID string) (int, error) {
	var total sql.NullInt64
	err := s.db.QueryRowContext(ctx, `
SELECT SUM(delta) FROM chip_ledger WHERE player_id = ?
`, playerID).Scan(&total)
	if err != nil {
		return 0, err
	}
	return int(total.Int64), nil
}

func (s *SQLiteSink) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
