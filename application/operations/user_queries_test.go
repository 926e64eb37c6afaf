package operations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"beacon-backend/application/operations"
	"beacon-backend/application/service"
	"beacon-backend/domain/core/valueobjects"
	"beacon-backend/domain/events"
	pkgerrors "beacon-backend/pkg/errors"
	"beacon-backend/tests/fixtures"
	"beacon-backend/tests/mocks"
)

func TestGetActivity_ReturnsFeed(t *testing.T) {
	// Arrange
	ctx := context.Background()
	activityRepo := new(mocks.MockActivityRepository)
	op := operations.NewGetActivityOperation(activityRepo, zap.NewNop())

	caller := valueobjects.NewUserID()
	feed := []events.ActivityEvent{
		{EventID: "evt-1", Type: events.ActivityTypeApplicationDeleted},
		{EventID: "evt-2", Type: events.ActivityTypeApplicationFollowed},
	}
	activityRepo.On("GetAllEventsFor", ctx, caller.String()).Return(feed, nil)

	req := &service.GetActivityRequest{Token: valueobjects.AuthToken{TokenID: "tok", UserID: caller.String()}}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, feed, resp.Events)
}

func TestGetMedia_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mediaRepo := new(mocks.MockMediaRepository)
	op := operations.NewGetMediaOperation(mediaRepo, zap.NewNop())

	mediaID, _ := valueobjects.NewMediaIDFromString("icon-7")
	mediaRepo.On("GetMedia", ctx, mediaID).Return([]byte{0x89, 0x50}, "image/png", nil)

	req := &service.GetMediaRequest{
		Token:   valueobjects.AuthToken{TokenID: "tok", UserID: valueobjects.NewUserID().String()},
		MediaID: "icon-7",
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50}, resp.Data)
	assert.Equal(t, "image/png", resp.MimeType)
}

func TestGetMedia_UnknownKey(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mediaRepo := new(mocks.MockMediaRepository)
	op := operations.NewGetMediaOperation(mediaRepo, zap.NewNop())

	mediaID, _ := valueobjects.NewMediaIDFromString("missing")
	mediaRepo.On("GetMedia", ctx, mediaID).Return(nil, "", pkgerrors.NewNotFound("media"))

	req := &service.GetMediaRequest{
		Token:   valueobjects.AuthToken{TokenID: "tok", UserID: valueobjects.NewUserID().String()},
		MediaID: "missing",
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindNotFound))
}

func TestGetUserInfo_DefaultsToCaller(t *testing.T) {
	// Arrange
	ctx := context.Background()
	userRepo := new(mocks.MockUserRepository)
	op := operations.NewGetUserInfoOperation(userRepo, zap.NewNop())

	user := fixtures.NewUserBuilder().Build()
	userRepo.On("GetByID", ctx, user.ID).Return(user, nil)

	req := &service.GetUserInfoRequest{
		Token: valueobjects.AuthToken{TokenID: "tok", UserID: user.ID.String()},
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, user, resp.User)
}

func TestGetUserInfo_ExplicitTarget(t *testing.T) {
	// Arrange
	ctx := context.Background()
	userRepo := new(mocks.MockUserRepository)
	op := operations.NewGetUserInfoOperation(userRepo, zap.NewNop())

	caller := valueobjects.NewUserID()
	target := fixtures.NewUserBuilder().Build()
	userRepo.On("GetByID", ctx, target.ID).Return(target, nil)

	req := &service.GetUserInfoRequest{
		Token:  valueobjects.AuthToken{TokenID: "tok", UserID: caller.String()},
		UserID: target.ID.String(),
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, target, resp.User)
}

func TestGetUserInfo_MalformedTarget(t *testing.T) {
	// Arrange
	ctx := context.Background()
	userRepo := new(mocks.MockUserRepository)
	op := operations.NewGetUserInfoOperation(userRepo, zap.NewNop())

	req := &service.GetUserInfoRequest{
		Token:  valueobjects.AuthToken{TokenID: "tok", UserID: valueobjects.NewUserID().String()},
		UserID: "bogus",
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindInvalidArgument))
	userRepo.AssertNotCalled(t, "GetByID")
}
