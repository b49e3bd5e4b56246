package ledger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sink durably records chip deltas reported by the game engine when a player
// leaves a table. Writes are best-effort: callers log failures and move on,
// the in-memory table state is never rolled back.
type Sink interface {
	RecordDelta(ctx context.Context, playerID string, delta int) error
	Balance(ctx context.Context, playerID string) (int, error)
	Close() error
}

type noopSink struct{}

func (noopSink) RecordDelta(context.Context, string, int) error { return nil }

func (noopSink) Balance(context.Context, string) (int, error) { return 0, nil }

func (noopSink) Close() error { return nil }

// NewNoopSink returns a sink that drops everything. Used when no durable
// backend is configured.
func NewNoopSink() Sink { return noopSink{} }

// NewSinkFromEnv selects the ledger backend from LEDGER_MODE:
// "noop" (default), "sqlite" (LEDGER_SQLITE_PATH), or
// "postgres" (LEDGER_POSTGRES_DSN).
func NewSinkFromEnv() (Sink, string, error) {
	mode := strings.ToLower(strings.TrimSpace(os.Getenv("LEDGER_MODE")))
	switch mode {
	case "", "noop", "memory":
		return NewNoopSink(), "noop", nil
	case "sqlite", "local":
		dbPath := strings.TrimSpace(os.Getenv("LEDGER_SQLITE_PATH"))
		if dbPath == "" {
			dbPath = filepath.Join("data", defaultLedgerDBName)
		}
		sink, err := NewSQLiteSink(dbPath)
		if err != nil {
			return nil, "", err
		}
		return sink, "sqlite", nil
	case "postgres", "pg":
		dsn := strings.TrimSpace(os.Getenv("LEDGER_POSTGRES_DSN"))
		if dsn == "" {
			dsn = defaultPostgresDSN
		}
		sink, err := NewPostgresSink(dsn)
		if err != nil {
			return nil, "", err
		}
		return sink, "postgres", nil
	default:
		return nil, "", fmt.Errorf("unknown LEDGER_MODE %q", mode)
	}
}
