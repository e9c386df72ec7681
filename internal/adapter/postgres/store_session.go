package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/HassanElshazlyEida/Stunning/internal/domain"
	"github.com/HassanElshazlyEida/Stunning/internal/domain/session"
)

// --- Sessions ---

func (s *Store) GetSession(ctx context.Context, id string) (*session.Session, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, COALESCE(current_prompt_id::text, ''), created_at, updated_at
		 FROM sessions WHERE id = $1`, id)

	var sess session.Session
	if err := row.Scan(&sess.ID, &sess.CurrentPromptID, &sess.CreatedAt, &sess.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get session %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	return &sess, nil
}

// SetCurrentPrompt records promptID as the session's displayed prompt,
// creating the session row on first use.
func (s *Store) SetCurrentPrompt(ctx context.Context, sessionID, promptID string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO sessions (id, current_prompt_id)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET current_prompt_id = $2, updated_at = now()`,
		sessionID, promptID)
	if err != nil {
		return fmt.Errorf("set current prompt for session %s: %w", sessionID, err)
	}
	return nil
}

// ClearCurrentPrompt drops the session's displayed-prompt pointer.
// A missing session row is not an error.
func (s *Store) ClearCurrentPrompt(ctx context.Context, sessionID string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE sessions SET current_prompt_id = NULL, updated_at = now() WHERE id = $1`,
		sessionID)
	if err != nil {
		return fmt.Errorf("clear current prompt for session %s: %w", sessionID, err)
	}
	return nil
}
