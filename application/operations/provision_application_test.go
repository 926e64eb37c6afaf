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
	"beacon-backend/tests/mocks"
)

func TestProvisionApplication_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	appRepo := new(mocks.MockApplicationRepository)
	mediaRepo := new(mocks.MockMediaRepository)
	publisher := new(mocks.MockEventPublisher)
	op := operations.NewProvisionApplicationOperation(appRepo, mediaRepo, publisher, zap.NewNop())

	caller := valueobjects.NewUserID()
	appRepo.On("Save", ctx, mock.AnythingOfType("*entities.Application")).Return(nil)
	publisher.On("Publish", ctx, mock.AnythingOfType("events.ApplicationProvisioned")).Return(nil)

	req := &service.ProvisionApplicationRequest{
		Token:       valueobjects.AuthToken{TokenID: "tok", UserID: caller.String()},
		Name:        "Billing Service",
		Description: "Sends invoices",
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Billing Service", resp.Application.Name)
	assert.Equal(t, []string{caller.String()}, resp.Application.Owners)
	assert.NotEmpty(t, resp.Application.ID)
	appRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestProvisionApplication_PublishFailureIsIsolated(t *testing.T) {
	// Arrange
	ctx := context.Background()
	appRepo := new(mocks.MockApplicationRepository)
	mediaRepo := new(mocks.MockMediaRepository)
	publisher := new(mocks.MockEventPublisher)
	op := operations.NewProvisionApplicationOperation(appRepo, mediaRepo, publisher, zap.NewNop())

	caller := valueobjects.NewUserID()
	appRepo.On("Save", ctx, mock.AnythingOfType("*entities.Application")).Return(nil)
	publisher.On("Publish", ctx, mock.AnythingOfType("events.ApplicationProvisioned")).
		Return(errors.New("event bus unavailable"))

	req := &service.ProvisionApplicationRequest{
		Token: valueobjects.AuthToken{TokenID: "tok", UserID: caller.String()},
		Name:  "Billing Service",
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, resp)
}

func TestProvisionApplication_StoresIcon(t *testing.T) {
	// Arrange
	ctx := context.Background()
	appRepo := new(mocks.MockApplicationRepository)
	mediaRepo := new(mocks.MockMediaRepository)
	publisher := new(mocks.MockEventPublisher)
	op := operations.NewProvisionApplicationOperation(appRepo, mediaRepo, publisher, zap.NewNop())

	caller := valueobjects.NewUserID()
	icon := []byte{0x89, 0x50, 0x4e, 0x47}
	mediaRepo.On("SaveMedia", ctx, mock.AnythingOfType("valueobjects.MediaID"), icon, "image/png").Return(nil)
	appRepo.On("Save", ctx, mock.AnythingOfType("*entities.Application")).Return(nil)
	publisher.On("Publish", ctx, mock.AnythingOfType("events.ApplicationProvisioned")).Return(nil)

	req := &service.ProvisionApplicationRequest{
		Token:        valueobjects.AuthToken{TokenID: "tok", UserID: caller.String()},
		Name:         "Billing Service",
		Icon:         icon,
		IconMimeType: "image/png",
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Application.IconMediaID)
	mediaRepo.AssertExpectations(t)
}

func TestProvisionApplication_IconStoreFailureIsIsolated(t *testing.T) {
	// Arrange
	ctx := context.Background()
	appRepo := new(mocks.MockApplicationRepository)
	mediaRepo := new(mocks.MockMediaRepository)
	publisher := new(mocks.MockEventPublisher)
	op := operations.NewProvisionApplicationOperation(appRepo, mediaRepo, publisher, zap.NewNop())

	caller := valueobjects.NewUserID()
	mediaRepo.On("SaveMedia", ctx, mock.AnythingOfType("valueobjects.MediaID"), mock.Anything, "image/png").
		Return(errors.New("media store unavailable"))
	appRepo.On("Save", ctx, mock.AnythingOfType("*entities.Application")).Return(nil)
	publisher.On("Publish", ctx, mock.AnythingOfType("events.ApplicationProvisioned")).Return(nil)

	req := &service.ProvisionApplicationRequest{
		Token:        valueobjects.AuthToken{TokenID: "tok", UserID: caller.String()},
		Name:         "Billing Service",
		Icon:         []byte{0x01},
		IconMimeType: "image/png",
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, resp.Application.IconMediaID)
}

func TestProvisionApplication_RequiresName(t *testing.T) {
	// Arrange
	ctx := context.Background()
	appRepo := new(mocks.MockApplicationRepository)
	mediaRepo := new(mocks.MockMediaRepository)
	publisher := new(mocks.MockEventPublisher)
	op := operations.NewProvisionApplicationOperation(appRepo, mediaRepo, publisher, zap.NewNop())

	req := &service.ProvisionApplicationRequest{
		Token: valueobjects.AuthToken{TokenID: "tok", UserID: valueobjects.NewUserID().String()},
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindInvalidArgument))
	appRepo.AssertNotCalled(t, "Save")
}

func TestProvisionApplication_SaveFailurePropagates(t *testing.T) {
	// Arrange
	ctx := context.Background()
	appRepo := new(mocks.MockApplicationRepository)
	mediaRepo := new(mocks.MockMediaRepository)
	publisher := new(mocks.MockEventPublisher)
	op := operations.NewProvisionApplicationOperation(appRepo, mediaRepo, publisher, zap.NewNop())

	appRepo.On("Save", ctx, mock.AnythingOfType("*entities.Application")).
		Return(errors.New("write failed"))

	req := &service.ProvisionApplicationRequest{
		Token: valueobjects.AuthToken{TokenID: "tok", UserID: valueobjects.NewUserID().String()},
		Name:  "Billing Service",
	}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	publisher.AssertNotCalled(t, "Publish")
}
