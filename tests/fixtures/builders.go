// Package fixtures provides builders for test entities with sane defaults.
package fixtures

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"beacon-backend/domain/core/entities"
	"beacon-backend/domain/core/valueobjects"
)

// ApplicationBuilder helps create test applications with default values
type ApplicationBuilder struct {
	id          valueobjects.ApplicationID
	name        string
	description string
	owners      []valueobjects.UserID
	iconMediaID valueobjects.MediaID
	createdAt   time.Time
}

func NewApplicationBuilder() *ApplicationBuilder {
	return &ApplicationBuilder{
		id:          valueobjects.NewApplicationID(),
		name:        "Test Application",
		description: "Test description",
		owners:      []valueobjects.UserID{valueobjects.NewUserID()},
		createdAt:   time.Now().Add(-time.Hour),
	}
}

func (b *ApplicationBuilder) WithID(id string) *ApplicationBuilder {
	b.id, _ = valueobjects.NewApplicationIDFromString(id)
	return b
}

func (b *ApplicationBuilder) WithName(name string) *ApplicationBuilder {
	b.name = name
	return b
}

func (b *ApplicationBuilder) WithDescription(description string) *ApplicationBuilder {
	b.description = description
	return b
}

// WithOwners replaces the owner set
func (b *ApplicationBuilder) WithOwners(owners ...valueobjects.UserID) *ApplicationBuilder {
	b.owners = owners
	return b
}

func (b *ApplicationBuilder) WithIcon(mediaID string) *ApplicationBuilder {
	b.iconMediaID, _ = valueobjects.NewMediaIDFromString(mediaID)
	return b
}

func (b *ApplicationBuilder) Build() *entities.Application {
	return entities.ReconstructApplication(
		b.id,
		b.name,
		b.description,
		b.owners,
		b.iconMediaID,
		b.createdAt,
		b.createdAt,
	)
}

// MessageBuilder helps create test messages with default values
type MessageBuilder struct {
	id            valueobjects.MessageID
	applicationID valueobjects.ApplicationID
	title         string
	body          string
	urgency       entities.Urgency
	hostname      string
	createdAt     time.Time
}

func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{
		id:            valueobjects.NewMessageID(),
		applicationID: valueobjects.NewApplicationID(),
		title:         "Test Message",
		body:          "Test body",
		urgency:       entities.UrgencyLow,
		hostname:      "test-host",
		createdAt:     time.Now().Add(-time.Minute),
	}
}

func (b *MessageBuilder) WithID(id string) *MessageBuilder {
	b.id, _ = valueobjects.NewMessageIDFromString(id)
	return b
}

func (b *MessageBuilder) WithApplicationID(id string) *MessageBuilder {
	b.applicationID, _ = valueobjects.NewApplicationIDFromString(id)
	return b
}

func (b *MessageBuilder) WithTitle(title string) *MessageBuilder {
	b.title = title
	return b
}

func (b *MessageBuilder) WithUrgency(urgency entities.Urgency) *MessageBuilder {
	b.urgency = urgency
	return b
}

func (b *MessageBuilder) WithCreatedAt(t time.Time) *MessageBuilder {
	b.createdAt = t
	return b
}

func (b *MessageBuilder) Build() *entities.Message {
	return &entities.Message{
		ID:            b.id,
		ApplicationID: b.applicationID,
		Title:         b.title,
		Body:          b.body,
		Urgency:       b.urgency,
		Hostname:      b.hostname,
		CreatedAt:     b.createdAt,
	}
}

// UserBuilder helps create test users with default values
type UserBuilder struct {
	id        valueobjects.UserID
	email     string
	name      string
	createdAt time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		id:        valueobjects.NewUserID(),
		email:     fmt.Sprintf("%s@example.com", uuid.New().String()[:8]),
		name:      "Test User",
		createdAt: time.Now().Add(-24 * time.Hour),
	}
}

func (b *UserBuilder) WithID(id string) *UserBuilder {
	b.id, _ = valueobjects.NewUserIDFromString(id)
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

func (b *UserBuilder) Build() *entities.User {
	return &entities.User{
		ID:        b.id,
		Email:     b.email,
		Name:      b.name,
		CreatedAt: b.createdAt,
	}
}
