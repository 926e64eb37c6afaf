package entities

import (
	"time"

	"beacon-backend/domain/core/valueobjects"
	pkgerrors "beacon-backend/pkg/errors"
)

// Application represents a client application that pushes events into the
// service. Owners may mutate or delete it; followers receive its messages.
type Application struct {
	id          valueobjects.ApplicationID
	name        string
	description string
	owners      []valueobjects.UserID
	iconMediaID valueobjects.MediaID
	createdAt   time.Time
	updatedAt   time.Time
}

// NewApplication creates an application with the provisioning user as its
// first owner
func NewApplication(name, description string, owner valueobjects.UserID) (*Application, error) {
	if name == "" {
		return nil, pkgerrors.NewInvalidArgument("application name cannot be empty")
	}
	if owner.IsZero() {
		return nil, pkgerrors.NewInvalidArgument("application owner cannot be empty")
	}

	now := time.Now()
	return &Application{
		id:          valueobjects.NewApplicationID(),
		name:        name,
		description: description,
		owners:      []valueobjects.UserID{owner},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructApplication rebuilds an application from repository data
func ReconstructApplication(
	id valueobjects.ApplicationID,
	name, description string,
	owners []valueobjects.UserID,
	iconMediaID valueobjects.MediaID,
	createdAt, updatedAt time.Time,
) *Application {
	return &Application{
		id:          id,
		name:        name,
		description: description,
		owners:      owners,
		iconMediaID: iconMediaID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the application's identifier
func (a *Application) ID() valueobjects.ApplicationID { return a.id }

// Name returns the application's display name
func (a *Application) Name() string { return a.name }

// Description returns the application's description
func (a *Application) Description() string { return a.description }

// Owners returns a copy of the owner set
func (a *Application) Owners() []valueobjects.UserID {
	owners := make([]valueobjects.UserID, len(a.owners))
	copy(owners, a.owners)
	return owners
}

// IconMediaID returns the media key of the application icon, if any
func (a *Application) IconMediaID() valueobjects.MediaID { return a.iconMediaID }

// CreatedAt returns the provisioning time
func (a *Application) CreatedAt() time.Time { return a.createdAt }

// UpdatedAt returns the last mutation time
func (a *Application) UpdatedAt() time.Time { return a.updatedAt }

// IsOwnedBy checks whether userID is in the owner set
func (a *Application) IsOwnedBy(userID valueobjects.UserID) bool {
	for _, owner := range a.owners {
		if owner.Equals(userID) {
			return true
		}
	}
	return false
}

// AddOwner adds a user to the owner set; adding an existing owner is a no-op
func (a *Application) AddOwner(userID valueobjects.UserID) error {
	if userID.IsZero() {
		return pkgerrors.NewInvalidArgument("owner user ID cannot be empty")
	}
	if a.IsOwnedBy(userID) {
		return nil
	}
	a.owners = append(a.owners, userID)
	a.updatedAt = time.Now()
	return nil
}

// SetIcon attaches an icon media key to the application
func (a *Application) SetIcon(mediaID valueobjects.MediaID) {
	a.iconMediaID = mediaID
	a.updatedAt = time.Now()
}
