// Package events defines the prompt lifecycle event publishing port.
package events

import (
	"context"

	"github.com/HassanElshazlyEida/Stunning/internal/domain/prompt"
)

// Event names published on prompt lifecycle transitions.
const (
	PromptCreated = "prompt.created"
	PromptUpdated = "prompt.updated"
	PromptDeleted = "prompt.deleted"
)

// Publisher broadcasts prompt lifecycle events to interested consumers
// (websocket clients, message streams). Publishing is best-effort; failures
// must not abort the triggering operation.
type Publisher interface {
	Publish(ctx context.Context, event string, p *prompt.Prompt)
}

// Fanout returns a Publisher that forwards every event to all of pubs.
// Nil entries are skipped.
func Fanout(pubs ...Publisher) Publisher {
	var active []Publisher
	for _, p := range pubs {
		if p != nil {
			active = append(active, p)
		}
	}
	return fanout(active)
}

type fanout []Publisher

func (f fanout) Publish(ctx context.Context, event string, p *prompt.Prompt) {
	for _, pub := range f {
		pub.Publish(ctx, event, p)
	}
}
