package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists the token in a single-row table.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Init creates the backing table if it does not exist yet.
func (s *PostgresStore) Init(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `CREATE TABLE IF NOT EXISTS session_tokens (id INT PRIMARY KEY, token TEXT NOT NULL)`)
	if err != nil {
		return fmt.Errorf("failed to create session_tokens table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRow(ctx, "SELECT token FROM session_tokens WHERE id = 1").Scan(&token)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load session token: %w", err)
	}
	return token, nil
}

func (s *PostgresStore) Save(ctx context.Context, token string) error {
	_, err := s.db.Exec(ctx, `INSERT INTO session_tokens (id, token) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET token = EXCLUDED.token`, token)
	if err != nil {
		return fmt.Errorf("failed to save session token: %w", err)
	}
	return nil
}

func (s *PostgresStore) Clear(ctx context.Context) error {
	_, err := s.db.Exec(ctx, "DELETE FROM session_tokens WHERE id = 1")
	if err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}
