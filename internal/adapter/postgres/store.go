package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/HassanElshazlyEida/Stunning/internal/domain"
	"github.com/HassanElshazlyEida/Stunning/internal/domain/prompt"
)

const promptColumns = `id, text, sections, session_id, created_at, updated_at`

// Store implements database.Store using PostgreSQL with JSONB section documents.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new Store backed by the given connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// --- Prompts ---

func (s *Store) InsertPrompt(ctx context.Context, p *prompt.Prompt) (*prompt.Prompt, error) {
	sectionsJSON, err := json.Marshal(p.Sections)
	if err != nil {
		return nil, fmt.Errorf("marshal sections: %w", err)
	}

	row := s.pool.QueryRow(ctx,
		`INSERT INTO prompts (text, sections, session_id)
		 VALUES ($1, $2, $3)
		 RETURNING `+promptColumns,
		p.Text, sectionsJSON, p.SessionID)

	inserted, err := scanPrompt(row)
	if err != nil {
		return nil, fmt.Errorf("insert prompt: %w", err)
	}
	return &inserted, nil
}

func (s *Store) ListPrompts(ctx context.Context) ([]prompt.Prompt, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+promptColumns+` FROM prompts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	defer rows.Close()

	return collectPrompts(rows)
}

func (s *Store) ListPromptsBySession(ctx context.Context, sessionID string) ([]prompt.Prompt, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+promptColumns+` FROM prompts WHERE session_id = $1 ORDER BY created_at DESC`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("list prompts for session %s: %w", sessionID, err)
	}
	defer rows.Close()

	return collectPrompts(rows)
}

func (s *Store) GetPrompt(ctx context.Context, id string) (*prompt.Prompt, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("get prompt %s: %w", id, domain.ErrNotFound)
	}

	row := s.pool.QueryRow(ctx,
		`SELECT `+promptColumns+` FROM prompts WHERE id = $1`, id)

	p, err := scanPrompt(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get prompt %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get prompt %s: %w", id, err)
	}
	return &p, nil
}

func (s *Store) UpdatePrompt(ctx context.Context, id, text string, sections []prompt.Section) (*prompt.Prompt, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("update prompt %s: %w", id, domain.ErrNotFound)
	}

	sectionsJSON, err := json.Marshal(sections)
	if err != nil {
		return nil, fmt.Errorf("marshal sections: %w", err)
	}

	row := s.pool.QueryRow(ctx,
		`UPDATE prompts SET text = $2, sections = $3, updated_at = now()
		 WHERE id = $1
		 RETURNING `+promptColumns,
		id, text, sectionsJSON)

	p, err := scanPrompt(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("update prompt %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update prompt %s: %w", id, err)
	}
	return &p, nil
}

func (s *Store) DeletePrompt(ctx context.Context, id string) (*prompt.Prompt, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("delete prompt %s: %w", id, domain.ErrNotFound)
	}

	row := s.pool.QueryRow(ctx,
		`DELETE FROM prompts WHERE id = $1 RETURNING `+promptColumns, id)

	p, err := scanPrompt(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("delete prompt %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("delete prompt %s: %w", id, err)
	}
	return &p, nil
}

// --- Scan helpers ---

// rowScanner abstracts pgx.Row and pgx.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPrompt(row rowScanner) (prompt.Prompt, error) {
	var (
		p            prompt.Prompt
		sectionsJSON []byte
	)
	if err := row.Scan(&p.ID, &p.Text, &sectionsJSON, &p.SessionID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return prompt.Prompt{}, err
	}
	if err := json.Unmarshal(sectionsJSON, &p.Sections); err != nil {
		return prompt.Prompt{}, fmt.Errorf("unmarshal sections: %w", err)
	}
	return p, nil
}

func collectPrompts(rows pgx.Rows) ([]prompt.Prompt, error) {
	var prompts []prompt.Prompt
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, err
		}
		prompts = append(prompts, p)
	}
	return prompts, rows.Err()
}
