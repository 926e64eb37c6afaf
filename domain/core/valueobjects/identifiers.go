package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// ApplicationID is a value object identifying a provisioned application
type ApplicationID struct {
	value string
}

// NewApplicationID creates a new random ApplicationID
func NewApplicationID() ApplicationID {
	return ApplicationID{value: uuid.New().String()}
}

// NewApplicationIDFromString creates an ApplicationID from an existing string
func NewApplicationIDFromString(id string) (ApplicationID, error) {
	if id == "" {
		return ApplicationID{}, errors.New("application ID cannot be empty")
	}
	if !isValidUUID(id) {
		return ApplicationID{}, errors.New("application ID must be a valid UUID")
	}
	return ApplicationID{value: id}, nil
}

// String returns the string representation of the ApplicationID
func (id ApplicationID) String() string {
	return id.value
}

// Equals checks if two ApplicationIDs are equal
func (id ApplicationID) Equals(other ApplicationID) bool {
	return id.value == other.value
}

// IsZero checks if the ApplicationID is the zero value
func (id ApplicationID) IsZero() bool {
	return id.value == ""
}

// UserID is a value object identifying a registered user
type UserID struct {
	value string
}

// NewUserID creates a new random UserID
func NewUserID() UserID {
	return UserID{value: uuid.New().String()}
}

// NewUserIDFromString creates a UserID from an existing string
func NewUserIDFromString(id string) (UserID, error) {
	if id == "" {
		return UserID{}, errors.New("user ID cannot be empty")
	}
	if !isValidUUID(id) {
		return UserID{}, errors.New("user ID must be a valid UUID")
	}
	return UserID{value: id}, nil
}

// String returns the string representation of the UserID
func (id UserID) String() string {
	return id.value
}

// Equals checks if two UserIDs are equal
func (id UserID) Equals(other UserID) bool {
	return id.value == other.value
}

// IsZero checks if the UserID is the zero value
func (id UserID) IsZero() bool {
	return id.value == ""
}

// MessageID is a value object identifying a delivered message
type MessageID struct {
	value string
}

// NewMessageID creates a new random MessageID
func NewMessageID() MessageID {
	return MessageID{value: uuid.New().String()}
}

// NewMessageIDFromString creates a MessageID from an existing string
func NewMessageIDFromString(id string) (MessageID, error) {
	if id == "" {
		return MessageID{}, errors.New("message ID cannot be empty")
	}
	if !isValidUUID(id) {
		return MessageID{}, errors.New("message ID must be a valid UUID")
	}
	return MessageID{value: id}, nil
}

// String returns the string representation of the MessageID
func (id MessageID) String() string {
	return id.value
}

// IsZero checks if the MessageID is the zero value
func (id MessageID) IsZero() bool {
	return id.value == ""
}

// MediaID is the key of a stored binary object. Media keys are opaque:
// icons are stored both under a dedicated media key and under the owning
// application's ID, so a MediaID is not required to be a UUID.
type MediaID struct {
	value string
}

// NewMediaID generates a fresh media key
func NewMediaID() MediaID {
	return MediaID{value: uuid.New().String()}
}

// NewMediaIDFromString creates a MediaID from an existing string
func NewMediaIDFromString(id string) (MediaID, error) {
	if id == "" {
		return MediaID{}, errors.New("media ID cannot be empty")
	}
	return MediaID{value: id}, nil
}

// String returns the string representation of the MediaID
func (id MediaID) String() string {
	return id.value
}

// IsZero checks if the MediaID is the zero value
func (id MediaID) IsZero() bool {
	return id.value == ""
}

// isValidUUID validates if a string is a valid UUID
func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
