package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/HassanElshazlyEida/Stunning/internal/domain"
	"github.com/HassanElshazlyEida/Stunning/internal/domain/prompt"
	"github.com/HassanElshazlyEida/Stunning/internal/domain/session"
	"github.com/HassanElshazlyEida/Stunning/internal/service"
)

// fakeStore is an in-memory database.Store for handler tests.
type fakeStore struct {
	prompts  map[string]*prompt.Prompt
	sessions map[string]*session.Session
	nextID   int
	clock    time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		prompts:  make(map[string]*prompt.Prompt),
		sessions: make(map[string]*session.Session),
		clock:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeStore) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeStore) InsertPrompt(_ context.Context, p *prompt.Prompt) (*prompt.Prompt, error) {
	f.nextID++
	now := f.tick()
	stored := &prompt.Prompt{
		ID:        fmt.Sprintf("11111111-1111-1111-1111-%012d", f.nextID),
		Text:      p.Text,
		Sections:  p.Sections,
		SessionID: p.SessionID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.prompts[stored.ID] = stored
	return stored, nil
}

func (f *fakeStore) ListPrompts(_ context.Context) ([]prompt.Prompt, error) {
	return f.list(func(*prompt.Prompt) bool { return true }), nil
}

func (f *fakeStore) ListPromptsBySession(_ context.Context, sessionID string) ([]prompt.Prompt, error) {
	return f.list(func(p *prompt.Prompt) bool { return p.SessionID == sessionID }), nil
}

func (f *fakeStore) list(keep func(*prompt.Prompt) bool) []prompt.Prompt {
	var out []prompt.Prompt
	for _, p := range f.prompts {
		if keep(p) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeStore) GetPrompt(_ context.Context, id string) (*prompt.Prompt, error) {
	p, ok := f.prompts[id]
	if !ok {
		return nil, fmt.Errorf("get prompt %s: %w", id, domain.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) UpdatePrompt(_ context.Context, id, text string, sections []prompt.Section) (*prompt.Prompt, error) {
	p, ok := f.prompts[id]
	if !ok {
		return nil, fmt.Errorf("update prompt %s: %w", id, domain.ErrNotFound)
	}
	p.Text = text
	p.Sections = sections
	p.UpdatedAt = f.tick()
	cp := *p
	return &cp, nil
}

func (f *fakeStore) DeletePrompt(_ context.Context, id string) (*prompt.Prompt, error) {
	p, ok := f.prompts[id]
	if !ok {
		return nil, fmt.Errorf("delete prompt %s: %w", id, domain.ErrNotFound)
	}
	delete(f.prompts, id)
	return p, nil
}

func (f *fakeStore) GetSession(_ context.Context, id string) (*session.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, fmt.Errorf("get session %s: %w", id, domain.ErrNotFound)
	}
	return s, nil
}

func (f *fakeStore) SetCurrentPrompt(_ context.Context, sessionID, promptID string) error {
	s, ok := f.sessions[sessionID]
	if !ok {
		s = &session.Session{ID: sessionID}
		f.sessions[sessionID] = s
	}
	s.CurrentPromptID = promptID
	return nil
}

func (f *fakeStore) ClearCurrentPrompt(_ context.Context, sessionID string) error {
	if s, ok := f.sessions[sessionID]; ok {
		s.CurrentPromptID = ""
	}
	return nil
}

// echoGenerator produces three sections that mention the prompt text.
type echoGenerator struct{}

func (echoGenerator) Synthesize(_ context.Context, text string) ([]prompt.Section, error) {
	return []prompt.Section{
		{Title: "Hero Section", Content: "<div>" + text + "</div>"},
		{Title: "About Section", Content: "<section>about " + text + "</section>"},
		{Title: "Contact Section", Content: "<section>contact</section>"},
	}, nil
}

func newTestRouter() (chi.Router, *fakeStore) {
	store := newFakeStore()
	log := slog.New(slog.DiscardHandler)
	svc := service.NewPromptService(store, echoGenerator{}, nil, log)

	r := chi.NewRouter()
	MountRoutes(r, NewHandlers(svc))
	return r, store
}

func doRequest(t *testing.T, r chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodePrompt(t *testing.T, rec *httptest.ResponseRecorder) prompt.Prompt {
	t.Helper()
	var p prompt.Prompt
	if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
		t.Fatalf("decode prompt: %v", err)
	}
	return p
}

func TestGeneratePrompt(t *testing.T) {
	r, _ := newTestRouter()

	rec := doRequest(t, r, http.MethodPost, "/api/prompts/generate",
		prompt.CreateRequest{Text: "Create a bakery website", SessionID: "session-abc"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}

	p := decodePrompt(t, rec)
	if p.Text != "Create a bakery website" {
		t.Errorf("text not preserved: %q", p.Text)
	}
	if len(p.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(p.Sections))
	}
	found := false
	for _, sec := range p.Sections {
		if strings.Contains(sec.Content, "Create a bakery website") {
			found = true
		}
	}
	if !found {
		t.Error("expected section content to reference the prompt text")
	}
	if p.SessionID != "session-abc" {
		t.Errorf("session not preserved: %q", p.SessionID)
	}
}

func TestGeneratePromptEmptyText(t *testing.T) {
	r, _ := newTestRouter()

	for _, body := range []any{
		prompt.CreateRequest{Text: ""},
		prompt.CreateRequest{Text: "   "},
	} {
		rec := doRequest(t, r, http.MethodPost, "/api/prompts/generate", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for %+v, got %d", body, rec.Code)
		}
	}
}

func TestGeneratePromptMalformedBody(t *testing.T) {
	r, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/prompts/generate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed JSON, got %d", rec.Code)
	}
}

func TestSessionHistoryOrdering(t *testing.T) {
	r, _ := newTestRouter()

	first := decodePrompt(t, doRequest(t, r, http.MethodPost, "/api/prompts/generate",
		prompt.CreateRequest{Text: "bakery", SessionID: "session-x"}))
	second := decodePrompt(t, doRequest(t, r, http.MethodPost, "/api/prompts/generate",
		prompt.CreateRequest{Text: "florist", SessionID: "session-x"}))
	doRequest(t, r, http.MethodPost, "/api/prompts/generate",
		prompt.CreateRequest{Text: "other", SessionID: "session-y"})

	rec := doRequest(t, r, http.MethodGet, "/api/prompts/session/session-x", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var listed []prompt.Prompt
	if err := json.NewDecoder(rec.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 prompts in session, got %d", len(listed))
	}
	if listed[0].ID != second.ID || listed[1].ID != first.ID {
		t.Errorf("expected newest-first ordering, got %s then %s", listed[0].ID, listed[1].ID)
	}
}

func TestSessionUnknownReturnsEmptyList(t *testing.T) {
	r, _ := newTestRouter()

	rec := doRequest(t, r, http.MethodGet, "/api/prompts/session/session-nope", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for unknown session, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %s", body)
	}
}

func TestHistoryEmpty(t *testing.T) {
	r, _ := newTestRouter()

	rec := doRequest(t, r, http.MethodGet, "/api/prompts/history", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %s", body)
	}
}

func TestGetUpdateDeletePrompt(t *testing.T) {
	r, _ := newTestRouter()

	created := decodePrompt(t, doRequest(t, r, http.MethodPost, "/api/prompts/generate",
		prompt.CreateRequest{Text: "bakery", SessionID: "session-x"}))

	rec := doRequest(t, r, http.MethodGet, "/api/prompts/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}

	rec = doRequest(t, r, http.MethodPut, "/api/prompts/"+created.ID,
		prompt.UpdateRequest{Text: "flower shop"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body)
	}
	updated := decodePrompt(t, rec)
	if updated.ID != created.ID {
		t.Errorf("update changed id: %s -> %s", created.ID, updated.ID)
	}
	if updated.Text != "flower shop" {
		t.Errorf("update did not replace text: %q", updated.Text)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("update changed createdAt")
	}

	rec = doRequest(t, r, http.MethodDelete, "/api/prompts/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}
	deleted := decodePrompt(t, rec)
	if deleted.ID != created.ID {
		t.Errorf("expected deleted prompt in response, got %s", deleted.ID)
	}

	rec = doRequest(t, r, http.MethodGet, "/api/prompts/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestNotFoundResponses(t *testing.T) {
	r, _ := newTestRouter()
	missing := "22222222-2222-2222-2222-222222222222"

	tests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/api/prompts/" + missing, nil},
		{http.MethodPut, "/api/prompts/" + missing, prompt.UpdateRequest{Text: "x"}},
		{http.MethodDelete, "/api/prompts/" + missing, nil},
	}
	for _, tt := range tests {
		rec := doRequest(t, r, tt.method, tt.path, tt.body)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s %s: expected 404, got %d", tt.method, tt.path, rec.Code)
		}
		var resp map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode error body: %v", err)
		}
		if resp["error"] == "" {
			t.Errorf("%s %s: expected error message in body", tt.method, tt.path)
		}
	}
}

func TestCurrentAndSelect(t *testing.T) {
	r, store := newTestRouter()

	first := decodePrompt(t, doRequest(t, r, http.MethodPost, "/api/prompts/generate",
		prompt.CreateRequest{Text: "bakery", SessionID: "session-x"}))
	second := decodePrompt(t, doRequest(t, r, http.MethodPost, "/api/prompts/generate",
		prompt.CreateRequest{Text: "florist", SessionID: "session-x"}))

	rec := doRequest(t, r, http.MethodGet, "/api/prompts/session/session-x/current", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("current: expected 200, got %d", rec.Code)
	}
	if cur := decodePrompt(t, rec); cur.ID != second.ID {
		t.Errorf("expected latest prompt current, got %s", cur.ID)
	}

	rec = doRequest(t, r, http.MethodPost, "/api/prompts/session/session-x/select/"+first.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("select: expected 200, got %d", rec.Code)
	}
	if got := store.sessions["session-x"].CurrentPromptID; got != first.ID {
		t.Errorf("expected current prompt %s, got %s", first.ID, got)
	}

	rec = doRequest(t, r, http.MethodGet, "/api/prompts/session/session-nope/current", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("current for unknown session: expected 404, got %d", rec.Code)
	}
}
