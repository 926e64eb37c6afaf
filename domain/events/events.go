package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"beacon-backend/domain/core/entities"
	"beacon-backend/domain/core/valueobjects"
)

// DomainEvent is the base interface for all domain events
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }

// ActivityEvent is the record appended to a user's activity feed. It is
// immutable once created; delivery to each recipient is fire-and-forget
// relative to the operation that raised it.
type ActivityEvent struct {
	EventID       string    `json:"event_id"`
	Type          string    `json:"type"`
	ActorUserID   string    `json:"actor_user_id"`
	ApplicationID string    `json:"application_id"`
	Message       string    `json:"message"`
	Timestamp     time.Time `json:"timestamp"`
}

// Activity event types
const (
	ActivityTypeApplicationDeleted  = "application.deleted"
	ActivityTypeApplicationFollowed = "application.followed"
	ActivityTypeTokenRegenerated    = "application.token_regenerated"
)

// NewApplicationDeletedActivity builds the activity record delivered to
// owners and followers when an application is deleted
func NewApplicationDeletedActivity(app *entities.Application, actor valueobjects.UserID) ActivityEvent {
	return ActivityEvent{
		EventID:       uuid.New().String(),
		Type:          ActivityTypeApplicationDeleted,
		ActorUserID:   actor.String(),
		ApplicationID: app.ID().String(),
		Message:       fmt.Sprintf("%s has been deleted", app.Name()),
		Timestamp:     time.Now(),
	}
}

// NewApplicationFollowedActivity builds the activity record delivered to an
// application's owners when a user starts following it
func NewApplicationFollowedActivity(app *entities.Application, follower valueobjects.UserID) ActivityEvent {
	return ActivityEvent{
		EventID:       uuid.New().String(),
		Type:          ActivityTypeApplicationFollowed,
		ActorUserID:   follower.String(),
		ApplicationID: app.ID().String(),
		Message:       fmt.Sprintf("%s has a new follower", app.Name()),
		Timestamp:     time.Now(),
	}
}

// ApplicationProvisioned is raised when a new application is created
type ApplicationProvisioned struct {
	BaseEvent
	ApplicationID string `json:"application_id"`
	Name          string `json:"name"`
	OwnerID       string `json:"owner_id"`
}

// NewApplicationProvisioned creates an ApplicationProvisioned event
func NewApplicationProvisioned(app *entities.Application, owner valueobjects.UserID) ApplicationProvisioned {
	return ApplicationProvisioned{
		BaseEvent: BaseEvent{
			AggregateID: app.ID().String(),
			EventType:   "application.provisioned",
			Timestamp:   time.Now(),
		},
		ApplicationID: app.ID().String(),
		Name:          app.Name(),
		OwnerID:       owner.String(),
	}
}

// ApplicationDeleted is raised after the primary delete of an application
// commits
type ApplicationDeleted struct {
	BaseEvent
	ApplicationID string `json:"application_id"`
	Name          string `json:"name"`
	DeletedBy     string `json:"deleted_by"`
}

// NewApplicationDeleted creates an ApplicationDeleted event
func NewApplicationDeleted(app *entities.Application, actor valueobjects.UserID) ApplicationDeleted {
	return ApplicationDeleted{
		BaseEvent: BaseEvent{
			AggregateID: app.ID().String(),
			EventType:   "application.deleted",
			Timestamp:   time.Now(),
		},
		ApplicationID: app.ID().String(),
		Name:          app.Name(),
		DeletedBy:     actor.String(),
	}
}

// MessageSent is raised after a message has been stored and fan-out to
// follower inboxes was attempted
type MessageSent struct {
	BaseEvent
	ApplicationID string `json:"application_id"`
	MessageID     string `json:"message_id"`
	Urgency       string `json:"urgency"`
}

// NewMessageSent creates a MessageSent event
func NewMessageSent(msg *entities.Message) MessageSent {
	return MessageSent{
		BaseEvent: BaseEvent{
			AggregateID: msg.ApplicationID.String(),
			EventType:   "message.sent",
			Timestamp:   time.Now(),
		},
		ApplicationID: msg.ApplicationID.String(),
		MessageID:     msg.ID.String(),
		Urgency:       string(msg.Urgency),
	}
}

// InboxCleared is raised when a user dismisses their entire inbox
type InboxCleared struct {
	BaseEvent
	UserID string `json:"user_id"`
}

// NewInboxCleared creates an InboxCleared event
func NewInboxCleared(userID valueobjects.UserID) InboxCleared {
	return InboxCleared{
		BaseEvent: BaseEvent{
			AggregateID: userID.String(),
			EventType:   "inbox.cleared",
			Timestamp:   time.Now(),
		},
		UserID: userID.String(),
	}
}
