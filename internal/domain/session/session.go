// Package session defines the server-side session record. A session groups
// the prompts created from one browser and tracks which prompt it currently
// displays. Clients derive their own "active" flag; the server never serves
// one on Prompt documents.
package session

import "time"

// Session is the persisted grouping of prompts for one client.
// CurrentPromptID is empty when the session has no displayed prompt.
type Session struct {
	ID              string    `json:"id"`
	CurrentPromptID string    `json:"currentPromptId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
