package client

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/HassanElshazlyEida/Stunning/internal/domain/prompt"
	"github.com/HassanElshazlyEida/Stunning/internal/port/cache"
)

// Cache key suffixes for the last successfully rendered prompt. Keys are
// prefixed with the session ID so a shared cache never leaks results across
// sessions.
const (
	cacheKeyLastPrompt   = "lastPrompt"
	cacheKeyLastSections = "lastSections"

	cacheTTL = 24 * time.Hour
)

// ErrGenerationInFlight is returned by Submit while an earlier generation is
// still running. Only one generation may be in flight per session.
var ErrGenerationInFlight = errors.New("a generation is already in flight")

// Delete states tracked per history entry while a removal is in flight.
const (
	DeleteStateDeleting = "deleting"
	DeleteStateError    = "error"
)

// api is the subset of the API client the history manager depends on.
type api interface {
	Generate(ctx context.Context, text, sessionID string) (*prompt.Prompt, error)
	SessionPrompts(ctx context.Context, sessionID string) ([]prompt.Prompt, error)
	Get(ctx context.Context, id string) (*prompt.Prompt, error)
	Update(ctx context.Context, id, text string) (*prompt.Prompt, error)
	Delete(ctx context.Context, id string) (*prompt.Prompt, error)
}

// Entry is one row of the session's prompt history. Active marks the entry
// whose sections are currently displayed; at most one entry is active.
type Entry struct {
	ID        string
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Active    bool
}

// Snapshot is a consistent view of the history state for rendering.
type Snapshot struct {
	Entries  []Entry
	Text     string
	Sections []prompt.Section
	Loading  bool
	Stale    bool
	LastErr  error
}

// History manages a session's prompt history: optimistic submission with
// rollback, selection, deletion, and a cached fallback when the backend is
// unreachable.
type History struct {
	api   api
	cache cache.Cache
	sess  SessionContext

	ttl time.Duration

	mu           sync.Mutex
	entries      []Entry
	currentText  string
	currentSecs  []prompt.Section
	loading      bool
	stale        bool
	lastErr      error
	deleteStates map[string]string
}

// NewHistory creates a history manager for one session. cache may be nil,
// disabling the stale fallback.
func NewHistory(apiClient api, c cache.Cache, sess SessionContext) *History {
	return &History{
		api:          apiClient,
		cache:        c,
		sess:         sess,
		ttl:          cacheTTL,
		deleteStates: make(map[string]string),
	}
}

// Load fetches the session's prompts and selects the most recent one,
// regenerating its sections when the stored record has none.
func (h *History) Load(ctx context.Context) error {
	prompts, err := h.api.SessionPrompts(ctx, h.sess.SessionID)
	if err != nil {
		h.mu.Lock()
		h.lastErr = err
		h.fallbackToCacheLocked(ctx, "")
		h.mu.Unlock()
		return err
	}

	var current *prompt.Prompt
	var resolveErr error
	if len(prompts) > 0 {
		current, resolveErr = h.resolveSections(ctx, &prompts[0])
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = h.entries[:0]
	for _, p := range prompts {
		h.entries = append(h.entries, Entry{
			ID:        p.ID,
			Text:      p.Text,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}

	if current != nil {
		h.activateLocked(current.ID)
		h.setCurrentLocked(ctx, current)
	} else {
		h.currentText = ""
		h.currentSecs = nil
	}
	h.stale = false
	h.lastErr = resolveErr
	return resolveErr
}

// Submit sends text for generation. The entry appears in the history
// immediately with a temporary ID and is reconciled with the server response.
// On failure the optimistic entry is rolled back and, when a cached result
// exists, the view falls back to it marked stale.
func (h *History) Submit(ctx context.Context, text string) (*prompt.Prompt, error) {
	tempID := "temp-" + uuid.NewString()

	h.mu.Lock()
	if h.loading {
		h.mu.Unlock()
		return nil, ErrGenerationInFlight
	}
	prevActive := h.activeIDLocked()
	h.deactivateAllLocked()
	h.entries = append([]Entry{{
		ID:        tempID,
		Text:      text,
		CreatedAt: time.Now(),
		Active:    true,
	}}, h.entries...)
	h.loading = true
	h.mu.Unlock()

	created, err := h.api.Generate(ctx, text, h.sess.SessionID)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.loading = false

	if err != nil {
		h.removeEntryLocked(tempID)
		if prevActive != "" {
			h.activateLocked(prevActive)
		}
		h.lastErr = err
		h.fallbackToCacheLocked(ctx, text)
		return nil, err
	}

	// Reconcile the optimistic entry with the persisted prompt.
	for i := range h.entries {
		if h.entries[i].ID == tempID {
			h.entries[i] = Entry{
				ID:        created.ID,
				Text:      created.Text,
				CreatedAt: created.CreatedAt,
				UpdatedAt: created.UpdatedAt,
				Active:    true,
			}
			break
		}
	}
	h.setCurrentLocked(ctx, created)
	h.stale = false
	h.lastErr = nil
	return created, nil
}

// Select makes an existing history entry the displayed prompt. Persisted
// sections are reused; only a record without sections is regenerated.
func (h *History) Select(ctx context.Context, id string) error {
	p, err := h.api.Get(ctx, id)
	if err != nil {
		h.mu.Lock()
		h.lastErr = err
		h.mu.Unlock()
		return err
	}

	p, resolveErr := h.resolveSections(ctx, p)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.activateLocked(id)
	h.setCurrentLocked(ctx, p)
	h.stale = false
	h.lastErr = resolveErr
	return resolveErr
}

// resolveSections returns p as-is when it already carries sections, and asks
// the backend to regenerate them otherwise. On regeneration failure the
// original record is returned alongside the error.
func (h *History) resolveSections(ctx context.Context, p *prompt.Prompt) (*prompt.Prompt, error) {
	if len(p.Sections) > 0 {
		return p, nil
	}
	regenerated, err := h.api.Update(ctx, p.ID, p.Text)
	if err != nil {
		return p, err
	}
	return regenerated, nil
}

// Delete removes a history entry. While the request is in flight the entry
// is marked deleting and further deletes of it are ignored. When the active
// entry is removed, the most recent remaining entry is selected, or the view
// is cleared if none remain.
func (h *History) Delete(ctx context.Context, id string) error {
	h.mu.Lock()
	if h.deleteStates[id] == DeleteStateDeleting {
		h.mu.Unlock()
		return nil
	}
	h.deleteStates[id] = DeleteStateDeleting
	wasActive := h.activeIDLocked() == id
	h.mu.Unlock()

	if _, err := h.api.Delete(ctx, id); err != nil {
		h.mu.Lock()
		h.deleteStates[id] = DeleteStateError
		h.lastErr = err
		h.mu.Unlock()
		return err
	}

	h.mu.Lock()
	h.removeEntryLocked(id)
	delete(h.deleteStates, id)
	var next string
	if wasActive && len(h.entries) > 0 {
		next = h.entries[0].ID
	}
	if wasActive && next == "" {
		h.currentText = ""
		h.currentSecs = nil
	}
	h.mu.Unlock()

	if next != "" {
		return h.Select(ctx, next)
	}
	return nil
}

// DeleteState reports the in-flight delete state for an entry, if any.
func (h *History) DeleteState(id string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.deleteStates[id]
}

// Snapshot returns a copy of the current state.
func (h *History) Snapshot() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries := make([]Entry, len(h.entries))
	copy(entries, h.entries)
	sections := make([]prompt.Section, len(h.currentSecs))
	copy(sections, h.currentSecs)

	return Snapshot{
		Entries:  entries,
		Text:     h.currentText,
		Sections: sections,
		Loading:  h.loading,
		Stale:    h.stale,
		LastErr:  h.lastErr,
	}
}

// --- locked helpers ---

func (h *History) activeIDLocked() string {
	for _, e := range h.entries {
		if e.Active {
			return e.ID
		}
	}
	return ""
}

func (h *History) activateLocked(id string) {
	for i := range h.entries {
		h.entries[i].Active = h.entries[i].ID == id
	}
}

func (h *History) deactivateAllLocked() {
	for i := range h.entries {
		h.entries[i].Active = false
	}
}

func (h *History) removeEntryLocked(id string) {
	for i := range h.entries {
		if h.entries[i].ID == id {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return
		}
	}
}

// cacheKey scopes a cache key suffix to this session.
func (h *History) cacheKey(suffix string) string {
	return h.sess.SessionID + ":" + suffix
}

// setCurrentLocked updates the displayed prompt and refreshes the
// last-known-good cache.
func (h *History) setCurrentLocked(ctx context.Context, p *prompt.Prompt) {
	h.currentText = p.Text
	h.currentSecs = p.Sections

	if h.cache == nil {
		return
	}
	if err := h.cache.Set(ctx, h.cacheKey(cacheKeyLastPrompt), []byte(p.Text), h.ttl); err != nil {
		return
	}
	if data, err := json.Marshal(p.Sections); err == nil {
		_ = h.cache.Set(ctx, h.cacheKey(cacheKeyLastSections), data, h.ttl)
	}
}

// fallbackToCacheLocked restores the last successful result, marking the
// view stale. A non-empty want restricts the fallback to a cached result for
// exactly that text; a cached result for a different submission is never
// shown in its place. Without a matching cache hit the current view is left
// untouched.
func (h *History) fallbackToCacheLocked(ctx context.Context, want string) {
	if h.cache == nil {
		return
	}

	text, ok, err := h.cache.Get(ctx, h.cacheKey(cacheKeyLastPrompt))
	if err != nil || !ok {
		return
	}
	if want != "" && string(text) != want {
		return
	}
	data, ok, err := h.cache.Get(ctx, h.cacheKey(cacheKeyLastSections))
	if err != nil || !ok {
		return
	}

	var sections []prompt.Section
	if err := json.Unmarshal(data, &sections); err != nil {
		return
	}

	h.currentText = string(text)
	h.currentSecs = sections
	h.stale = true
}
