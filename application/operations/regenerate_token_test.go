package operations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"beacon-backend/application/operations"
	"beacon-backend/application/service"
	"beacon-backend/domain/core/valueobjects"
	pkgerrors "beacon-backend/pkg/errors"
	"beacon-backend/tests/fixtures"
	"beacon-backend/tests/mocks"
)

func TestRegenerateApplicationToken_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	appRepo := new(mocks.MockApplicationRepository)
	activityRepo := new(mocks.MockActivityRepository)
	op := operations.NewRegenerateApplicationTokenOperation(appRepo, activityRepo, zap.NewNop())

	owner := valueobjects.NewUserID()
	coOwner := valueobjects.NewUserID()
	app := fixtures.NewApplicationBuilder().WithOwners(owner, coOwner).Build()

	appRepo.On("GetByID", ctx, app.ID()).Return(app, nil)
	activityRepo.On("SaveEvent", ctx, mock.AnythingOfType("events.ActivityEvent"), mock.AnythingOfType("string")).Return(nil)

	req := &service.RegenerateApplicationTokenRequest{
		Token:         valueobjects.AuthToken{TokenID: "tok", UserID: owner.String()},
		ApplicationID: app.ID().String(),
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ApplicationToken)
	// every owner is notified
	activityRepo.AssertNumberOfCalls(t, "SaveEvent", 2)
}

func TestRegenerateApplicationToken_NonOwnerIsRejected(t *testing.T) {
	// Arrange
	ctx := context.Background()
	appRepo := new(mocks.MockApplicationRepository)
	activityRepo := new(mocks.MockActivityRepository)
	op := operations.NewRegenerateApplicationTokenOperation(appRepo, activityRepo, zap.NewNop())

	app := fixtures.NewApplicationBuilder().Build()
	appRepo.On("GetByID", ctx, app.ID()).Return(app, nil)

	req := &service.RegenerateApplicationTokenRequest{
		Token:         valueobjects.AuthToken{TokenID: "tok", UserID: valueobjects.NewUserID().String()},
		ApplicationID: app.ID().String(),
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindUnauthorized))
	activityRepo.AssertNotCalled(t, "SaveEvent")
}

func TestRegenerateApplicationToken_TokensDiffer(t *testing.T) {
	// Arrange
	ctx := context.Background()
	appRepo := new(mocks.MockApplicationRepository)
	activityRepo := new(mocks.MockActivityRepository)
	op := operations.NewRegenerateApplicationTokenOperation(appRepo, activityRepo, zap.NewNop())

	owner := valueobjects.NewUserID()
	app := fixtures.NewApplicationBuilder().WithOwners(owner).Build()
	appRepo.On("GetByID", ctx, app.ID()).Return(app, nil)
	activityRepo.On("SaveEvent", ctx, mock.AnythingOfType("events.ActivityEvent"), owner.String()).Return(nil)

	req := &service.RegenerateApplicationTokenRequest{
		Token:         valueobjects.AuthToken{TokenID: "tok", UserID: owner.String()},
		ApplicationID: app.ID().String(),
	}

	// Act
	first, err1 := op.Process(ctx, req)
	second, err2 := op.Process(ctx, req)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotEqual(t, first.ApplicationToken, second.ApplicationToken)
}
