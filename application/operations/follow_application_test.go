package operations_test

import (
	"context"
	"errors"
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

func TestFollowApplication_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	appRepo := new(mocks.MockApplicationRepository)
	followerRepo := new(mocks.MockFollowerRepository)
	activityRepo := new(mocks.MockActivityRepository)
	op := operations.NewFollowApplicationOperation(appRepo, followerRepo, activityRepo, zap.NewNop())

	owner := valueobjects.NewUserID()
	app := fixtures.NewApplicationBuilder().WithOwners(owner).Build()
	caller := valueobjects.NewUserID()

	appRepo.On("GetByID", ctx, app.ID()).Return(app, nil)
	followerRepo.On("SaveFollowing", ctx, caller.String(), app.ID().String()).Return(nil)
	activityRepo.On("SaveEvent", ctx, mock.AnythingOfType("events.ActivityEvent"), owner.String()).Return(nil)

	req := &service.FollowApplicationRequest{
		Token:         valueobjects.AuthToken{TokenID: "tok", UserID: caller.String()},
		ApplicationID: app.ID().String(),
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, resp)
	followerRepo.AssertExpectations(t)
	activityRepo.AssertNumberOfCalls(t, "SaveEvent", 1)
}

func TestFollowApplication_OwnerNotificationFailureIsIsolated(t *testing.T) {
	// Arrange
	ctx := context.Background()
	appRepo := new(mocks.MockApplicationRepository)
	followerRepo := new(mocks.MockFollowerRepository)
	activityRepo := new(mocks.MockActivityRepository)
	op := operations.NewFollowApplicationOperation(appRepo, followerRepo, activityRepo, zap.NewNop())

	owner := valueobjects.NewUserID()
	app := fixtures.NewApplicationBuilder().WithOwners(owner).Build()
	caller := valueobjects.NewUserID()

	appRepo.On("GetByID", ctx, app.ID()).Return(app, nil)
	followerRepo.On("SaveFollowing", ctx, caller.String(), app.ID().String()).Return(nil)
	activityRepo.On("SaveEvent", ctx, mock.AnythingOfType("events.ActivityEvent"), owner.String()).
		Return(errors.New("feed write failed"))

	req := &service.FollowApplicationRequest{
		Token:         valueobjects.AuthToken{TokenID: "tok", UserID: caller.String()},
		ApplicationID: app.ID().String(),
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, resp)
}

func TestFollowApplication_UnknownApplication(t *testing.T) {
	// Arrange
	ctx := context.Background()
	appRepo := new(mocks.MockApplicationRepository)
	followerRepo := new(mocks.MockFollowerRepository)
	activityRepo := new(mocks.MockActivityRepository)
	op := operations.NewFollowApplicationOperation(appRepo, followerRepo, activityRepo, zap.NewNop())

	appID := valueobjects.NewApplicationID()
	appRepo.On("GetByID", ctx, appID).Return(nil, pkgerrors.NewNotFound("application"))

	req := &service.FollowApplicationRequest{
		Token:         valueobjects.AuthToken{TokenID: "tok", UserID: valueobjects.NewUserID().String()},
		ApplicationID: appID.String(),
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindNotFound))
	followerRepo.AssertNotCalled(t, "SaveFollowing")
}

func TestFollowApplication_SaveFollowingFailurePropagates(t *testing.T) {
	// Arrange
	ctx := context.Background()
	appRepo := new(mocks.MockApplicationRepository)
	followerRepo := new(mocks.MockFollowerRepository)
	activityRepo := new(mocks.MockActivityRepository)
	op := operations.NewFollowApplicationOperation(appRepo, followerRepo, activityRepo, zap.NewNop())

	app := fixtures.NewApplicationBuilder().Build()
	caller := valueobjects.NewUserID()
	appRepo.On("GetByID", ctx, app.ID()).Return(app, nil)
	followerRepo.On("SaveFollowing", ctx, caller.String(), app.ID().String()).
		Return(errors.New("write failed"))

	req := &service.FollowApplicationRequest{
		Token:         valueobjects.AuthToken{TokenID: "tok", UserID: caller.String()},
		ApplicationID: app.ID().String(),
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	activityRepo.AssertNotCalled(t, "SaveEvent")
}

func TestUnfollowApplication_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	followerRepo := new(mocks.MockFollowerRepository)
	op := operations.NewUnfollowApplicationOperation(followerRepo, zap.NewNop())

	appID := valueobjects.NewApplicationID()
	caller := valueobjects.NewUserID()
	followerRepo.On("DeleteFollowing", ctx, caller.String(), appID.String()).Return(nil)

	req := &service.UnfollowApplicationRequest{
		Token:         valueobjects.AuthToken{TokenID: "tok", UserID: caller.String()},
		ApplicationID: appID.String(),
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, resp)
	followerRepo.AssertExpectations(t)
}

func TestUnfollowApplication_MalformedApplicationID(t *testing.T) {
	// Arrange
	ctx := context.Background()
	followerRepo := new(mocks.MockFollowerRepository)
	op := operations.NewUnfollowApplicationOperation(followerRepo, zap.NewNop())

	req := &service.UnfollowApplicationRequest{
		Token:         valueobjects.AuthToken{TokenID: "tok", UserID: valueobjects.NewUserID().String()},
		ApplicationID: "bogus",
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindInvalidArgument))
	followerRepo.AssertNotCalled(t, "DeleteFollowing")
}
