package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beacon-backend/domain/core/valueobjects"
)

func TestNewApplication(t *testing.T) {
	owner := valueobjects.NewUserID()

	app, err := NewApplication("Billing Service", "Sends invoices", owner)

	require.NoError(t, err)
	assert.False(t, app.ID().IsZero())
	assert.Equal(t, "Billing Service", app.Name())
	assert.True(t, app.IsOwnedBy(owner))
}

func TestNewApplication_RequiresNameAndOwner(t *testing.T) {
	_, err := NewApplication("", "desc", valueobjects.NewUserID())
	assert.Error(t, err)

	_, err = NewApplication("Billing Service", "desc", valueobjects.UserID{})
	assert.Error(t, err)
}

func TestApplication_AddOwner(t *testing.T) {
	owner := valueobjects.NewUserID()
	app, err := NewApplication("Billing Service", "", owner)
	require.NoError(t, err)

	coOwner := valueobjects.NewUserID()
	require.NoError(t, app.AddOwner(coOwner))
	assert.True(t, app.IsOwnedBy(coOwner))
	assert.Len(t, app.Owners(), 2)

	// adding an existing owner is a no-op
	require.NoError(t, app.AddOwner(coOwner))
	assert.Len(t, app.Owners(), 2)

	assert.Error(t, app.AddOwner(valueobjects.UserID{}))
}

func TestApplication_OwnersReturnsCopy(t *testing.T) {
	owner := valueobjects.NewUserID()
	app, err := NewApplication("Billing Service", "", owner)
	require.NoError(t, err)

	owners := app.Owners()
	owners[0] = valueobjects.NewUserID()

	assert.True(t, app.IsOwnedBy(owner))
}
