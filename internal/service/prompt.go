// Package service implements business logic on top of ports.
package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/HassanElshazlyEida/Stunning/internal/domain/prompt"
	"github.com/HassanElshazlyEida/Stunning/internal/port/database"
	"github.com/HassanElshazlyEida/Stunning/internal/port/events"
	"github.com/HassanElshazlyEida/Stunning/internal/port/generator"
)

// PromptService handles prompt generation and history business logic.
type PromptService struct {
	store     database.Store
	generator generator.Provider
	events    events.Publisher
	log       *slog.Logger
}

// NewPromptService creates a new PromptService. events may be nil when no
// publisher is configured.
func NewPromptService(store database.Store, gen generator.Provider, ev events.Publisher, log *slog.Logger) *PromptService {
	return &PromptService{store: store, generator: gen, events: ev, log: log}
}

// Generate validates the request, synthesizes sections for the prompt text,
// and persists the result as a single document. Nothing is stored if
// generation fails. The new prompt becomes the session's current prompt.
func (s *PromptService) Generate(ctx context.Context, req *prompt.CreateRequest) (*prompt.Prompt, error) {
	if err := prompt.ValidateCreateRequest(*req); err != nil {
		return nil, err
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = NewSessionID()
	}

	sections, err := s.generator.Synthesize(ctx, req.Text)
	if err != nil {
		return nil, err
	}

	created, err := s.store.InsertPrompt(ctx, &prompt.Prompt{
		Text:      req.Text,
		Sections:  sections,
		SessionID: sessionID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.SetCurrentPrompt(ctx, sessionID, created.ID); err != nil {
		s.log.Warn("failed to set current prompt", "session_id", sessionID, "error", err)
	}

	s.publish(ctx, events.PromptCreated, created)
	s.log.Info("prompt generated",
		"prompt_id", created.ID,
		"session_id", sessionID,
		"text", truncate(created.Text, 30),
		"sections", len(created.Sections))

	return created, nil
}

// History returns all prompts across sessions, newest first.
func (s *PromptService) History(ctx context.Context) ([]prompt.Prompt, error) {
	return s.store.ListPrompts(ctx)
}

// SessionPrompts returns all prompts for one session, newest first. An
// unknown session yields an empty list, not an error.
func (s *PromptService) SessionPrompts(ctx context.Context, sessionID string) ([]prompt.Prompt, error) {
	return s.store.ListPromptsBySession(ctx, sessionID)
}

// Get returns a single prompt by ID.
func (s *PromptService) Get(ctx context.Context, id string) (*prompt.Prompt, error) {
	return s.store.GetPrompt(ctx, id)
}

// Update replaces a prompt's text and regenerates its sections from the new
// text. Identity and creation time are preserved.
func (s *PromptService) Update(ctx context.Context, id string, req *prompt.UpdateRequest) (*prompt.Prompt, error) {
	if err := prompt.ValidateUpdateRequest(*req); err != nil {
		return nil, err
	}

	sections, err := s.generator.Synthesize(ctx, req.Text)
	if err != nil {
		return nil, err
	}

	updated, err := s.store.UpdatePrompt(ctx, id, req.Text, sections)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.PromptUpdated, updated)
	s.log.Info("prompt updated", "prompt_id", updated.ID, "sections", len(updated.Sections))

	return updated, nil
}

// Delete removes a prompt and returns the deleted document. If it was the
// session's current prompt, the pointer is cleared. Stores with referential
// integrity may have cleared it already; the explicit clear covers the rest.
func (s *PromptService) Delete(ctx context.Context, id string) (*prompt.Prompt, error) {
	deleted, err := s.store.DeletePrompt(ctx, id)
	if err != nil {
		return nil, err
	}

	if deleted.SessionID != "" {
		sess, err := s.store.GetSession(ctx, deleted.SessionID)
		if err == nil && sess.CurrentPromptID == deleted.ID {
			if err := s.store.ClearCurrentPrompt(ctx, deleted.SessionID); err != nil {
				s.log.Warn("failed to clear current prompt", "session_id", deleted.SessionID, "error", err)
			}
		}
	}

	s.publish(ctx, events.PromptDeleted, deleted)
	s.log.Info("prompt deleted", "prompt_id", deleted.ID, "session_id", deleted.SessionID)

	return deleted, nil
}

// CurrentPrompt returns the prompt a session last generated or selected, or
// nil when the session has no current prompt.
func (s *PromptService) CurrentPrompt(ctx context.Context, sessionID string) (*prompt.Prompt, error) {
	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.CurrentPromptID == "" {
		return nil, nil
	}
	return s.store.GetPrompt(ctx, sess.CurrentPromptID)
}

// SelectPrompt marks an existing prompt as the session's current prompt.
func (s *PromptService) SelectPrompt(ctx context.Context, sessionID, promptID string) (*prompt.Prompt, error) {
	p, err := s.store.GetPrompt(ctx, promptID)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetCurrentPrompt(ctx, sessionID, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PromptService) publish(ctx context.Context, event string, p *prompt.Prompt) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, event, p)
}

// NewSessionID synthesizes a fresh collision-resistant session identifier.
func NewSessionID() string {
	return "session-" + uuid.NewString()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
