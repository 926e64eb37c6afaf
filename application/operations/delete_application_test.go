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
	"beacon-backend/domain/core/entities"
	"beacon-backend/domain/core/valueobjects"
	pkgerrors "beacon-backend/pkg/errors"
	"beacon-backend/pkg/observability"
	"beacon-backend/tests/fixtures"
	"beacon-backend/tests/mocks"
)

type deleteApplicationMocks struct {
	activityRepo *mocks.MockActivityRepository
	appRepo      *mocks.MockApplicationRepository
	followerRepo *mocks.MockFollowerRepository
	mediaRepo    *mocks.MockMediaRepository
	messageRepo  *mocks.MockMessageRepository
	publisher    *mocks.MockEventPublisher
}

func newDeleteApplicationOperation() (*operations.DeleteApplicationOperation, *deleteApplicationMocks) {
	m := &deleteApplicationMocks{
		activityRepo: new(mocks.MockActivityRepository),
		appRepo:      new(mocks.MockApplicationRepository),
		followerRepo: new(mocks.MockFollowerRepository),
		mediaRepo:    new(mocks.MockMediaRepository),
		messageRepo:  new(mocks.MockMessageRepository),
		publisher:    new(mocks.MockEventPublisher),
	}
	op := operations.NewDeleteApplicationOperation(
		m.activityRepo,
		m.appRepo,
		m.followerRepo,
		m.mediaRepo,
		m.messageRepo,
		m.publisher,
		observability.NewMetrics("Test", nil, nil),
		zap.NewNop(),
	)
	return op, m
}

func TestDeleteApplication_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	op, m := newDeleteApplicationOperation()

	owner := valueobjects.NewUserID()
	app := fixtures.NewApplicationBuilder().
		WithOwners(owner).
		WithIcon("icon-media-1").
		Build()
	appKey, _ := valueobjects.NewMediaIDFromString(app.ID().String())
	icon := app.IconMediaID()

	follower1 := fixtures.NewUserBuilder().Build()
	follower2 := fixtures.NewUserBuilder().Build()

	m.appRepo.On("GetByID", ctx, app.ID()).Return(app, nil)
	m.mediaRepo.On("DeleteMedia", ctx, icon).Return(nil)
	m.mediaRepo.On("DeleteAllThumbnails", ctx, icon).Return(nil)
	m.mediaRepo.On("DeleteMedia", ctx, appKey).Return(nil)
	m.mediaRepo.On("DeleteAllThumbnails", ctx, appKey).Return(nil)
	m.followerRepo.On("GetApplicationFollowers", ctx, app.ID().String()).
		Return([]*entities.User{follower1, follower2}, nil)
	m.followerRepo.On("DeleteFollowing", ctx, follower1.ID.String(), app.ID().String()).Return(nil)
	m.followerRepo.On("DeleteFollowing", ctx, follower2.ID.String(), app.ID().String()).Return(nil)
	m.messageRepo.On("DeleteAllMessages", ctx, app.ID().String()).Return(nil)
	m.activityRepo.On("SaveEvent", ctx, mock.AnythingOfType("events.ActivityEvent"), mock.AnythingOfType("string")).Return(nil)
	m.appRepo.On("Delete", ctx, app.ID()).Return(nil)
	m.publisher.On("Publish", ctx, mock.AnythingOfType("events.ApplicationDeleted")).Return(nil)

	req := &service.DeleteApplicationRequest{
		Token:         valueobjects.AuthToken{TokenID: "tok", UserID: owner.String()},
		ApplicationID: app.ID().String(),
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, resp)
	// one event per owner plus one per follower
	m.activityRepo.AssertNumberOfCalls(t, "SaveEvent", 3)
	m.publisher.AssertExpectations(t)
	m.appRepo.AssertExpectations(t)
	m.followerRepo.AssertExpectations(t)
	m.messageRepo.AssertExpectations(t)
}

func TestDeleteApplication_NonOwnerIsRejected(t *testing.T) {
	// Arrange
	ctx := context.Background()
	op, m := newDeleteApplicationOperation()

	app := fixtures.NewApplicationBuilder().Build()
	stranger := valueobjects.NewUserID()
	m.appRepo.On("GetByID", ctx, app.ID()).Return(app, nil)

	req := &service.DeleteApplicationRequest{
		Token:         valueobjects.AuthToken{TokenID: "tok", UserID: stranger.String()},
		ApplicationID: app.ID().String(),
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindUnauthorized))
	m.appRepo.AssertNotCalled(t, "Delete")
	m.mediaRepo.AssertNotCalled(t, "DeleteMedia")
	m.followerRepo.AssertNotCalled(t, "GetApplicationFollowers")
	m.messageRepo.AssertNotCalled(t, "DeleteAllMessages")
}

func TestDeleteApplication_CascadeFailuresAreIsolated(t *testing.T) {
	// Arrange
	ctx := context.Background()
	op, m := newDeleteApplicationOperation()

	owner := valueobjects.NewUserID()
	app := fixtures.NewApplicationBuilder().WithOwners(owner).Build()
	appKey, _ := valueobjects.NewMediaIDFromString(app.ID().String())

	m.appRepo.On("GetByID", ctx, app.ID()).Return(app, nil)
	m.mediaRepo.On("DeleteMedia", ctx, appKey).Return(errors.New("media store unavailable"))
	m.followerRepo.On("GetApplicationFollowers", ctx, app.ID().String()).
		Return(nil, errors.New("follower query failed"))
	m.messageRepo.On("DeleteAllMessages", ctx, app.ID().String()).Return(errors.New("batch failed"))
	m.activityRepo.On("SaveEvent", ctx, mock.AnythingOfType("events.ActivityEvent"), owner.String()).
		Return(errors.New("feed write failed"))
	m.appRepo.On("Delete", ctx, app.ID()).Return(nil)
	m.publisher.On("Publish", ctx, mock.AnythingOfType("events.ApplicationDeleted")).
		Return(errors.New("event bus unavailable"))

	req := &service.DeleteApplicationRequest{
		Token:         valueobjects.AuthToken{TokenID: "tok", UserID: owner.String()},
		ApplicationID: app.ID().String(),
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, resp)
	m.appRepo.AssertExpectations(t)
}

func TestDeleteApplication_FollowerRemovalFailureSparesTheRest(t *testing.T) {
	// Arrange
	ctx := context.Background()
	op, m := newDeleteApplicationOperation()

	owner := valueobjects.NewUserID()
	app := fixtures.NewApplicationBuilder().WithOwners(owner).Build()
	appKey, _ := valueobjects.NewMediaIDFromString(app.ID().String())

	follower1 := fixtures.NewUserBuilder().Build()
	follower2 := fixtures.NewUserBuilder().Build()

	m.appRepo.On("GetByID", ctx, app.ID()).Return(app, nil)
	m.mediaRepo.On("DeleteMedia", ctx, appKey).Return(nil)
	m.mediaRepo.On("DeleteAllThumbnails", ctx, appKey).Return(nil)
	m.followerRepo.On("GetApplicationFollowers", ctx, app.ID().String()).
		Return([]*entities.User{follower1, follower2}, nil)
	m.followerRepo.On("DeleteFollowing", ctx, follower1.ID.String(), app.ID().String()).
		Return(errors.New("conditional check failed"))
	m.followerRepo.On("DeleteFollowing", ctx, follower2.ID.String(), app.ID().String()).Return(nil)
	m.messageRepo.On("DeleteAllMessages", ctx, app.ID().String()).Return(nil)
	m.activityRepo.On("SaveEvent", ctx, mock.AnythingOfType("events.ActivityEvent"), mock.AnythingOfType("string")).Return(nil)
	m.appRepo.On("Delete", ctx, app.ID()).Return(nil)
	m.publisher.On("Publish", ctx, mock.AnythingOfType("events.ApplicationDeleted")).Return(nil)

	req := &service.DeleteApplicationRequest{
		Token:         valueobjects.AuthToken{TokenID: "tok", UserID: owner.String()},
		ApplicationID: app.ID().String(),
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, resp)
	// both removals are attempted and the delete still commits
	m.followerRepo.AssertNumberOfCalls(t, "DeleteFollowing", 2)
	m.appRepo.AssertCalled(t, "Delete", ctx, app.ID())
	// the failed follower is still told about the deletion
	m.activityRepo.AssertCalled(t, "SaveEvent", ctx, mock.AnythingOfType("events.ActivityEvent"), follower1.ID.String())
	m.activityRepo.AssertNumberOfCalls(t, "SaveEvent", 3)
}

func TestDeleteApplication_PrimaryDeleteFailurePropagates(t *testing.T) {
	// Arrange
	ctx := context.Background()
	op, m := newDeleteApplicationOperation()

	owner := valueobjects.NewUserID()
	app := fixtures.NewApplicationBuilder().WithOwners(owner).Build()
	appKey, _ := valueobjects.NewMediaIDFromString(app.ID().String())

	deleteErr := pkgerrors.NewOperationFailed("could not delete application record")
	m.appRepo.On("GetByID", ctx, app.ID()).Return(app, nil)
	m.mediaRepo.On("DeleteMedia", ctx, appKey).Return(nil)
	m.mediaRepo.On("DeleteAllThumbnails", ctx, appKey).Return(nil)
	m.followerRepo.On("GetApplicationFollowers", ctx, app.ID().String()).Return(nil, nil)
	m.messageRepo.On("DeleteAllMessages", ctx, app.ID().String()).Return(nil)
	m.activityRepo.On("SaveEvent", ctx, mock.AnythingOfType("events.ActivityEvent"), owner.String()).Return(nil)
	m.appRepo.On("Delete", ctx, app.ID()).Return(deleteErr)

	req := &service.DeleteApplicationRequest{
		Token:         valueobjects.AuthToken{TokenID: "tok", UserID: owner.String()},
		ApplicationID: app.ID().String(),
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindOperationFailed))
	// the deleted event announces a committed delete only
	m.publisher.AssertNotCalled(t, "Publish")
}

func TestDeleteApplication_UnknownApplication(t *testing.T) {
	// Arrange
	ctx := context.Background()
	op, m := newDeleteApplicationOperation()

	appID := valueobjects.NewApplicationID()
	m.appRepo.On("GetByID", ctx, appID).Return(nil, pkgerrors.NewNotFound("application"))

	req := &service.DeleteApplicationRequest{
		Token:         valueobjects.AuthToken{TokenID: "tok", UserID: valueobjects.NewUserID().String()},
		ApplicationID: appID.String(),
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindNotFound))
	m.appRepo.AssertNotCalled(t, "Delete")
}

func TestDeleteApplication_MalformedApplicationID(t *testing.T) {
	// Arrange
	ctx := context.Background()
	op, m := newDeleteApplicationOperation()

	req := &service.DeleteApplicationRequest{
		Token:         valueobjects.AuthToken{TokenID: "tok", UserID: valueobjects.NewUserID().String()},
		ApplicationID: "not-a-uuid",
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindInvalidArgument))
	m.appRepo.AssertNotCalled(t, "GetByID")
}
