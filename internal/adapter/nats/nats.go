// Package nats publishes prompt lifecycle events to NATS JetStream.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/HassanElshazlyEida/Stunning/internal/domain/prompt"
	"github.com/HassanElshazlyEida/Stunning/internal/port/events"
)

const streamName = "STUNNING"

// Events implements events.Publisher using NATS JetStream. Each lifecycle
// event becomes a message on a "prompts.<action>" subject.
type Events struct {
	nc  *nats.Conn
	js  jetstream.JetStream
	log *slog.Logger
}

// message is the wire payload for a prompt lifecycle event.
type message struct {
	Event     string `json:"event"`
	PromptID  string `json:"promptId"`
	SessionID string `json:"sessionId"`
	Text      string `json:"text"`
}

// Connect establishes a connection to NATS and ensures the JetStream stream exists.
func Connect(ctx context.Context, url string, log *slog.Logger) (*Events, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream init: %w", err)
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     streamName,
		Subjects: []string{"prompts.>"},
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream stream create: %w", err)
	}

	log.Info("nats connected", "url", url, "stream", streamName)
	return &Events{nc: nc, js: js, log: log}, nil
}

// Publish sends a lifecycle event. Failures are logged, never propagated;
// the triggering operation has already committed.
func (e *Events) Publish(ctx context.Context, event string, p *prompt.Prompt) {
	subject := subjectFor(event)

	data, err := json.Marshal(message{
		Event:     event,
		PromptID:  p.ID,
		SessionID: p.SessionID,
		Text:      p.Text,
	})
	if err != nil {
		e.log.Error("event marshal failed", "event", event, "error", err)
		return
	}

	if _, err := e.js.Publish(ctx, subject, data); err != nil {
		e.log.Error("nats publish failed", "subject", subject, "error", err)
	}
}

// subjectFor maps an event name like "prompt.created" onto the stream's
// "prompts.created" subject space.
func subjectFor(event string) string {
	switch event {
	case events.PromptCreated:
		return "prompts.created"
	case events.PromptUpdated:
		return "prompts.updated"
	case events.PromptDeleted:
		return "prompts.deleted"
	default:
		return "prompts.unknown"
	}
}

// Close shuts down the NATS connection.
func (e *Events) Close() error {
	e.nc.Close()
	return nil
}
