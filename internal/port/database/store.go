// Package database defines the database store port (interface).
package database

import (
	"context"

	"github.com/HassanElshazlyEida/Stunning/internal/domain/prompt"
	"github.com/HassanElshazlyEida/Stunning/internal/domain/session"
)

// Store is the port interface for database operations.
type Store interface {
	// Prompts
	InsertPrompt(ctx context.Context, p *prompt.Prompt) (*prompt.Prompt, error)
	ListPrompts(ctx context.Context) ([]prompt.Prompt, error)
	ListPromptsBySession(ctx context.Context, sessionID string) ([]prompt.Prompt, error)
	GetPrompt(ctx context.Context, id string) (*prompt.Prompt, error)
	UpdatePrompt(ctx context.Context, id, text string, sections []prompt.Section) (*prompt.Prompt, error)
	DeletePrompt(ctx context.Context, id string) (*prompt.Prompt, error)

	// Sessions
	GetSession(ctx context.Context, id string) (*session.Session, error)
	SetCurrentPrompt(ctx context.Context, sessionID, promptID string) error
	ClearCurrentPrompt(ctx context.Context, sessionID string) error
}
