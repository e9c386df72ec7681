package client

import "github.com/google/uuid"

// SessionContext carries the identifier a frontend uses to scope its prompt
// history. A context is created once per browsing session and reused for
// every request.
type SessionContext struct {
	SessionID string
}

// NewSessionContext synthesizes a fresh session identifier.
func NewSessionContext() SessionContext {
	return SessionContext{SessionID: "session-" + uuid.NewString()}
}
