package entities

import (
	"time"

	"beacon-backend/domain/core/valueobjects"
)

// Urgency indicates how prominently a message should be surfaced
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// Message is a notification pushed by an application and delivered to the
// inboxes of that application's followers
type Message struct {
	ID            valueobjects.MessageID
	ApplicationID valueobjects.ApplicationID
	Title         string
	Body          string
	Urgency       Urgency
	Hostname      string
	CreatedAt     time.Time
}

// NewMessage creates a message originating from the given application
func NewMessage(appID valueobjects.ApplicationID, title, body string, urgency Urgency) *Message {
	if urgency == "" {
		urgency = UrgencyLow
	}
	return &Message{
		ID:            valueobjects.NewMessageID(),
		ApplicationID: appID,
		Title:         title,
		Body:          body,
		Urgency:       urgency,
		CreatedAt:     time.Now(),
	}
}
