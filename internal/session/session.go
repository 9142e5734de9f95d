// Package session holds the auth token shared by every outgoing request.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/ecopay/ecopay/internal/sqlite"
	"go.uber.org/zap"
)

// TokenKey is the well-known key the token is stored under.
const TokenKey = "authToken"

//go:generate mockgen -source=session.go -destination=mock_session.go -package=session

// Store reads and writes the auth token. Writes come only from login,
// registration, logout and unauthorized responses.
type Store interface {
	Token() string
	SetToken(token string) error
	Clear() error
}

type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	return s.SetToken("")
}

// SQLiteStore keeps the token in a local database file so it survives
// restarts and is shared by every process using the same file.
type SQLiteStore struct {
	mu sync.Mutex
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open session store: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Token() string {
	var token string
	err := s.db.QueryRowContext(context.Background(), "SELECT value FROM kv WHERE key = ?", TokenKey).Scan(&token)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			zap.L().Error("can't read auth token", zap.Error(err))
		}
		return ""
	}
	return token
}

func (s *SQLiteStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(context.Background(), query, TokenKey, token); err != nil {
		zap.L().Error("can't save auth token", zap.Error(err))
		return err
	}
	return nil
}

func (s *SQLiteStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(context.Background(), "DELETE FROM kv WHERE key = ?", TokenKey); err != nil {
		zap.L().Error("can't clear auth token", zap.Error(err))
		return err
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Open returns a durable store for a non-empty path and a memory store otherwise.
func Open(path string) (Store, func() error, error) {
	if path == "" {
		return NewMemoryStore(), func() error { return nil }, nil
	}
	store, err := NewSQLiteStore(path)
	if err != nil {
		return nil, nil, err
	}
	return store, store.Close, nil
}
