package ws

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/HassanElshazlyEida/Stunning/internal/domain/prompt"
)

// PromptEvent is broadcast whenever a prompt is created, updated, or deleted.
// Sections are included so clients can render without a follow-up fetch.
type PromptEvent struct {
	PromptID  string           `json:"promptId"`
	SessionID string           `json:"sessionId"`
	Text      string           `json:"text"`
	Sections  []prompt.Section `json:"sections,omitempty"`
}

// Publish implements the events.Publisher port by broadcasting the lifecycle
// event to every connected client. Delete events omit sections.
func (h *Hub) Publish(ctx context.Context, event string, p *prompt.Prompt) {
	ev := PromptEvent{
		PromptID:  p.ID,
		SessionID: p.SessionID,
		Text:      p.Text,
		Sections:  p.Sections,
	}

	data, err := json.Marshal(ev)
	if err != nil {
		slog.Error("marshal ws event payload", "type", event, "error", err)
		return
	}

	h.Broadcast(ctx, Message{
		Type:    event,
		Payload: json.RawMessage(data),
	})
}
