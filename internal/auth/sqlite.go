package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

const defaultAuthDBName = "pokertab_auth.db"

// SQLiteService persists accounts and sessions in a local SQLite database.
type SQLiteService struct {
	db *sql.DB
}

func NewSQLiteService(dbPath string) (*SQLiteService, error) {
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
	if err := ensureAuthSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteService{db: db}, nil
}

func ensureAuthSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS accounts (
    player_id     TEXT PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    password_hash BLOB NOT NULL,
    created_at_ms INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS sessions (
    token         TEXT PRIMARY KEY,
    player_id     TEXT NOT NULL REFERENCES accounts(player_id),
    created_at_ms INTEGER NOT NULL
);
`)
	return err
}

func (s *SQLiteService) Register(username, password string) (Identity, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Identity{}, "", ErrInvalidCredential
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Identity{}, "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	playerID := uuid.NewString()
	nowMs := time.Now().UnixMilli()
	_, err = s.db.ExecContext(ctx, `
INSERT INTO accounts (player_id, username, password_hash, created_at_ms)
VALUES (?, ?, ?, ?)
`, playerID, username, hash, nowMs)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return Identity{}, "", ErrUsernameTaken
		}
		return Identity{}, "", err
	}

	token, err := s.createSession(ctx, playerID)
	if err != nil {
		return Identity{}, "", err
	}
	return Identity{PlayerID: playerID, DisplayName: username}, token, nil
}

func (s *SQLiteService) Login(username, password string) (Identity, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var playerID string
	var hash []byte
	err := s.db.QueryRowContext(ctx, `
SELECT player_id, password_hash FROM accounts WHERE username = ?
`, strings.TrimSpace(username)).Scan(&playerID, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return Identity{}, "", ErrInvalidCredential
	}
	if err != nil {
		return Identity{}, "", err
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return Identity{}, "", ErrInvalidCredential
	}

	token, err := s.createSession(ctx, playerID)
	if err != nil {
		return Identity{}, "", err
	}
	return Identity{PlayerID: playerID, DisplayName: strings.TrimSpace(username)}, token, nil
}

func (s *SQLiteService) createSession(ctx context.Context, playerID string) (string, error) {
	token := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
INSERT INTO sessions (token, player_id, created_at_ms) VALUES (?, ?, ?)
`, token, playerID, time.Now().UnixMilli())
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *SQLiteService) Resolve(token string) (Identity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var id Identity
	err := s.db.QueryRowContext(ctx, `
SELECT a.player_id, a.username
FROM sessions s JOIN accounts a ON a.player_id = s.player_id
WHERE s.token = ?
`, token).Scan(&id.PlayerID, &id.DisplayName)
	if errors.Is(err, sql.ErrNoRows) {
		return Identity{}, ErrInvalidCredential
	}
	if err != nil {
		return Identity{}, err
	}
	return id, nil
}

func (s *SQLiteService) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
