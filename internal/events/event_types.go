package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/storefront-auth/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSessionEstablished EventType = "session_established"
	EventSessionRenewed     EventType = "session_renewed"
	EventSessionRevoked     EventType = "session_revoked"
)

// Event represents a session lifecycle event emitted by the auth core.
type Event struct {
	ID        string             `json:"id"`
	Type      EventType          `json:"type"`
	Subject   string             `json:"subject"`
	Kind      domain.SubjectKind `json:"kind"`
	Timestamp time.Time          `json:"timestamp"`
	Payload   interface{}        `json:"payload"`
}

// SessionEstablishedPayload payload.
type SessionEstablishedPayload struct {
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// SessionRenewedPayload payload.
type SessionRenewedPayload struct {
	ExpiredAt    time.Time `json:"expired_at"`
	NewExpiresAt time.Time `json:"new_expires_at"`
}

// SessionRevokedPayload payload.
type SessionRevokedPayload struct {
	TokenExpiresAt time.Time `json:"token_expires_at"`
}

func newEvent(eventType EventType, subject string, kind domain.SubjectKind, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Subject:   subject,
		Kind:      kind,
		Timestamp: time.Now(),
		Payload:   payload,
	}
}

// NewSessionEstablished builds a session_established event.
func NewSessionEstablished(subject string, kind domain.SubjectKind, payload SessionEstablishedPayload) Event {
	return newEvent(EventSessionEstablished, subject, kind, payload)
}

// NewSessionRenewed builds a session_renewed event.
func NewSessionRenewed(subject string, kind domain.SubjectKind, payload SessionRenewedPayload) Event {
	return newEvent(EventSessionRenewed, subject, kind, payload)
}

// NewSessionRevoked builds a session_revoked event.
func NewSessionRevoked(subject string, kind domain.SubjectKind, payload SessionRevokedPayload) Event {
	return newEvent(EventSessionRevoked, subject, kind, payload)
}
