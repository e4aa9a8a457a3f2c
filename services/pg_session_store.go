package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgSessionStore struct {
	db *pgxpool.Pool
}

func NewPgSessionStore(db *pgxpool.Pool) *PgSessionStore {
	return &PgSessionStore{db: db}
}

const sessionSchema = `
CREATE TABLE IF NOT EXISTS web_sessions (
	id            UUID PRIMARY KEY,
	token         TEXT NOT NULL,
	user_id       TEXT NOT NULL,
	email         TEXT NOT NULL,
	name          TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT '',
	provider      TEXT NOT NULL DEFAULT '',
	profile_image TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	expires_at    TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS web_sessions_expires_at_idx ON web_sessions (expires_at);
`

// EnsureSchema creates the sessions table if it does not exist.
func (s *PgSessionStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, sessionSchema); err != nil {
		return fmt.Errorf("failed to create session schema: %w", err)
	}
	return nil
}

func (s *PgSessionStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *PgSessionStore) Create(ctx context.Context, sess *Session) error {
	id, err := uuid.Parse(sess.ID)
	if err != nil {
		return fmt.Errorf("invalid session id: %w", err)
	}

	query := `
	INSERT INTO web_sessions (id, token, user_id, email, name, role, provider, profile_image, created_at, expires_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = s.db.Exec(ctx, query,
		id,
		sess.Token,
		sess.User.ID,
		sess.User.Email,
		sess.User.Name,
		sess.User.Role,
		sess.User.Provider,
		sess.User.ProfileImage,
		sess.CreatedAt,
		sess.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (s *PgSessionStore) Get(ctx context.Context, id string) (*Session, error) {
	sid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	query := `
	SELECT id, token, user_id, email, name, role, provider, profile_image, created_at, expires_at
	FROM web_sessions
	WHERE id = $1 AND expires_at > NOW()
	`

	sess := &Session{}
	var rowID uuid.UUID
	err = s.db.QueryRow(ctx, query, sid).Scan(
		&rowID,
		&sess.Token,
		&sess.User.ID,
		&sess.User.Email,
		&sess.User.Name,
		&sess.User.Role,
		&sess.User.Provider,
		&sess.User.ProfileImage,
		&sess.CreatedAt,
		&sess.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	sess.ID = rowID.String()
	return sess, nil
}

func (s *PgSessionStore) Delete(ctx context.Context, id string) error {
	sid, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	if _, err := s.db.Exec(ctx, `DELETE FROM web_sessions WHERE id = $1`, sid); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *PgSessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM web_sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
