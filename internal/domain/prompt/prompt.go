// Package prompt defines the Prompt aggregate: a stored user idea and the
// website sections generated from it.
package prompt

import "time"

// Section is a single generated block of page markup.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Prompt is a persisted user idea together with its generated sections.
// Sections are always fully populated before a Prompt is stored; readers
// never observe a partially generated record.
type Prompt struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sections  []Section `json:"sections"`
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateRequest is the payload for creating a prompt. SessionID is optional;
// the service synthesizes one when it is empty.
type CreateRequest struct {
	Text      string `json:"text"`
	SessionID string `json:"sessionId,omitempty"`
}

// UpdateRequest is the payload for replacing a prompt's text. Sections are
// regenerated from the new text; they cannot be set directly.
type UpdateRequest struct {
	Text string `json:"text"`
}
