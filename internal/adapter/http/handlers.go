package http

import (
	"net/http"

	"github.com/HassanElshazlyEida/Stunning/internal/domain/prompt"
	"github.com/HassanElshazlyEida/Stunning/internal/service"
)

// Handlers bundles the HTTP handlers and their dependencies.
type Handlers struct {
	Prompts *service.PromptService
}

// NewHandlers creates the handler set.
func NewHandlers(prompts *service.PromptService) *Handlers {
	return &Handlers{Prompts: prompts}
}

// GeneratePrompt handles POST /api/prompts/generate.
func (h *Handlers) GeneratePrompt(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[prompt.CreateRequest](w, r)
	if !ok {
		return
	}

	created, err := h.Prompts.Generate(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, "prompt not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListHistory handles GET /api/prompts/history.
func (h *Handlers) ListHistory(w http.ResponseWriter, r *http.Request) {
	prompts, err := h.Prompts.History(r.Context())
	if err != nil {
		writeDomainError(w, err, "history not found")
		return
	}
	if prompts == nil {
		prompts = []prompt.Prompt{}
	}
	writeJSON(w, http.StatusOK, prompts)
}

// ListSessionPrompts handles GET /api/prompts/session/{sessionID}. An unknown
// session returns an empty list.
func (h *Handlers) ListSessionPrompts(w http.ResponseWriter, r *http.Request) {
	sessionID := urlParam(r, "sessionID")

	prompts, err := h.Prompts.SessionPrompts(r.Context(), sessionID)
	if err != nil {
		writeDomainError(w, err, "session not found")
		return
	}
	if prompts == nil {
		prompts = []prompt.Prompt{}
	}
	writeJSON(w, http.StatusOK, prompts)
}

// GetPrompt handles GET /api/prompts/{id}.
func (h *Handlers) GetPrompt(w http.ResponseWriter, r *http.Request) {
	p, err := h.Prompts.Get(r.Context(), urlParam(r, "id"))
	if err != nil {
		writeDomainError(w, err, "prompt not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// UpdatePrompt handles PUT /api/prompts/{id}.
func (h *Handlers) UpdatePrompt(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[prompt.UpdateRequest](w, r)
	if !ok {
		return
	}

	updated, err := h.Prompts.Update(r.Context(), urlParam(r, "id"), &req)
	if err != nil {
		writeDomainError(w, err, "prompt not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeletePrompt handles DELETE /api/prompts/{id} and returns the deleted prompt.
func (h *Handlers) DeletePrompt(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Prompts.Delete(r.Context(), urlParam(r, "id"))
	if err != nil {
		writeDomainError(w, err, "prompt not found")
		return
	}
	writeJSON(w, http.StatusOK, deleted)
}

// GetCurrentPrompt handles GET /api/prompts/session/{sessionID}/current.
func (h *Handlers) GetCurrentPrompt(w http.ResponseWriter, r *http.Request) {
	cur, err := h.Prompts.CurrentPrompt(r.Context(), urlParam(r, "sessionID"))
	if err != nil {
		writeDomainError(w, err, "session not found")
		return
	}
	if cur == nil {
		writeError(w, http.StatusNotFound, "session has no current prompt")
		return
	}
	writeJSON(w, http.StatusOK, cur)
}

// SelectPrompt handles POST /api/prompts/session/{sessionID}/select/{id}.
func (h *Handlers) SelectPrompt(w http.ResponseWriter, r *http.Request) {
	selected, err := h.Prompts.SelectPrompt(r.Context(), urlParam(r, "sessionID"), urlParam(r, "id"))
	if err != nil {
		writeDomainError(w, err, "prompt not found")
		return
	}
	writeJSON(w, http.StatusOK, selected)
}
