package ports

import (
	"context"

	"beacon-backend/domain/core/entities"
	"beacon-backend/domain/core/valueobjects"
	"beacon-backend/domain/events"
)

// ApplicationRepository defines the interface for application persistence
// This is a port in hexagonal architecture - the domain doesn't know about the implementation
type ApplicationRepository interface {
	// Save persists an application (create or update)
	Save(ctx context.Context, app *entities.Application) error

	// GetByID retrieves an application by its ID
	GetByID(ctx context.Context, id valueobjects.ApplicationID) (*entities.Application, error)

	// GetByOwner retrieves all applications owned by a user
	GetByOwner(ctx context.Context, userID string) ([]*entities.Application, error)

	// Search finds applications whose name matches the query
	Search(ctx context.Context, query string, limit int) ([]*entities.Application, error)

	// Delete removes the application record. This is the authoritative
	// commit of an application deletion.
	Delete(ctx context.Context, id valueobjects.ApplicationID) error
}

// FollowerRepository defines the interface for the many-to-many
// (user, application) following relation
type FollowerRepository interface {
	// SaveFollowing records that a user follows an application
	SaveFollowing(ctx context.Context, userID string, appID string) error

	// GetApplicationFollowers retrieves every user following an application
	GetApplicationFollowers(ctx context.Context, appID string) ([]*entities.User, error)

	// GetFollowedApplications retrieves the IDs of applications a user follows
	GetFollowedApplications(ctx context.Context, userID string) ([]string, error)

	// DeleteFollowing removes one following relation
	DeleteFollowing(ctx context.Context, userID string, appID string) error
}

// MediaRepository defines the interface for stored binary content and its
// derived thumbnails
type MediaRepository interface {
	// SaveMedia stores binary content under the given key
	SaveMedia(ctx context.Context, id valueobjects.MediaID, data []byte, mimeType string) error

	// GetMedia retrieves the content stored under the given key
	GetMedia(ctx context.Context, id valueobjects.MediaID) ([]byte, string, error)

	// DeleteMedia removes the content stored under the given key
	DeleteMedia(ctx context.Context, id valueobjects.MediaID) error

	// DeleteAllThumbnails removes every thumbnail derived from the given key
	DeleteAllThumbnails(ctx context.Context, id valueobjects.MediaID) error
}

// MessageRepository defines the interface for messages pushed by applications
type MessageRepository interface {
	// Save persists a message
	Save(ctx context.Context, msg *entities.Message) error

	// GetByID retrieves one message of an application
	GetByID(ctx context.Context, appID string, msgID valueobjects.MessageID) (*entities.Message, error)

	// GetByApplication retrieves the messages of an application, newest first
	GetByApplication(ctx context.Context, appID string, limit int) ([]*entities.Message, error)

	// DeleteAllMessages removes every message belonging to an application
	DeleteAllMessages(ctx context.Context, appID string) error
}

// InboxRepository defines the interface for per-user inbox entries
type InboxRepository interface {
	// SaveMessageForUser delivers a message into a user's inbox
	SaveMessageForUser(ctx context.Context, userID string, msg *entities.Message) error

	// GetMessagesForUser retrieves a user's inbox entries, newest first
	GetMessagesForUser(ctx context.Context, userID string) ([]*entities.Message, error)

	// DeleteMessageForUser removes one entry from a user's inbox
	DeleteMessageForUser(ctx context.Context, userID string, msgID string) error

	// DeleteAllMessagesForUser clears a user's entire inbox
	DeleteAllMessagesForUser(ctx context.Context, userID string) error
}

// ActivityRepository defines the interface for per-user activity feeds
type ActivityRepository interface {
	// SaveEvent appends an activity event to one user's feed
	SaveEvent(ctx context.Context, event events.ActivityEvent, forUser string) error

	// GetAllEventsFor retrieves a user's activity feed, newest first
	GetAllEventsFor(ctx context.Context, userID string) ([]events.ActivityEvent, error)
}

// UserRepository defines the interface for user accounts
type UserRepository interface {
	// Save persists a user (create or update)
	Save(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id valueobjects.UserID) (*entities.User, error)

	// GetByEmail retrieves a user by email address
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	// Publish sends a single event
	Publish(ctx context.Context, event events.DomainEvent) error

	// PublishBatch sends multiple events
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}
