package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beacon-backend/application/service"
	"beacon-backend/domain/core/valueobjects"
	pkgerrors "beacon-backend/pkg/errors"
	"beacon-backend/tests/mocks"
)

func validToken() valueobjects.AuthToken {
	return valueobjects.AuthToken{
		TokenID: "token-abc-123",
		UserID:  "b7a9c1d4-0000-4000-8000-000000000001",
	}
}

func TestNewAuthenticationLayer_RequiresDelegate(t *testing.T) {
	// Arrange
	mockVerifier := new(mocks.MockTokenVerifier)

	// Act
	layer, err := service.NewAuthenticationLayer(nil, mockVerifier)

	// Assert
	require.Error(t, err)
	assert.Nil(t, layer)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindInvalidArgument))
}

func TestNewAuthenticationLayer_RequiresVerifier(t *testing.T) {
	// Arrange
	mockDelegate := new(mocks.MockNotificationService)

	// Act
	layer, err := service.NewAuthenticationLayer(mockDelegate, nil)

	// Assert
	require.Error(t, err)
	assert.Nil(t, layer)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindInvalidArgument))
}

func TestGetAPIVersion_SkipsVerification(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockDelegate := new(mocks.MockNotificationService)
	mockVerifier := new(mocks.MockTokenVerifier)
	layer, err := service.NewAuthenticationLayer(mockDelegate, mockVerifier)
	require.NoError(t, err)

	req := &service.GetAPIVersionRequest{}
	expected := &service.GetAPIVersionResponse{Version: "2.1"}
	mockDelegate.On("GetAPIVersion", ctx, req).Return(expected, nil)

	// Act
	resp, err := layer.GetAPIVersion(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.Same(t, expected, resp)
	mockVerifier.AssertNotCalled(t, "VerifyToken")
	mockDelegate.AssertExpectations(t)
}

func TestSignIn_SkipsVerification(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockDelegate := new(mocks.MockNotificationService)
	mockVerifier := new(mocks.MockTokenVerifier)
	layer, err := service.NewAuthenticationLayer(mockDelegate, mockVerifier)
	require.NoError(t, err)

	req := &service.SignInRequest{Email: "user@example.com", Password: "hunter22"}
	expected := &service.SignInResponse{UserID: "user-1", Token: validToken()}
	mockDelegate.On("SignIn", ctx, req).Return(expected, nil)

	// Act
	resp, err := layer.SignIn(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.Same(t, expected, resp)
	mockVerifier.AssertNotCalled(t, "VerifyToken")
	mockDelegate.AssertExpectations(t)
}

func TestSignUp_SkipsVerification(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockDelegate := new(mocks.MockNotificationService)
	mockVerifier := new(mocks.MockTokenVerifier)
	layer, err := service.NewAuthenticationLayer(mockDelegate, mockVerifier)
	require.NoError(t, err)

	req := &service.SignUpRequest{Email: "new@example.com", Password: "longenough", Name: "New User"}
	expected := &service.SignUpResponse{UserID: "user-2", Token: validToken()}
	mockDelegate.On("SignUp", ctx, req).Return(expected, nil)

	// Act
	resp, err := layer.SignUp(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.Same(t, expected, resp)
	mockVerifier.AssertNotCalled(t, "VerifyToken")
	mockDelegate.AssertExpectations(t)
}

func TestGuardedMethod_NilRequest(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockDelegate := new(mocks.MockNotificationService)
	mockVerifier := new(mocks.MockTokenVerifier)
	layer, err := service.NewAuthenticationLayer(mockDelegate, mockVerifier)
	require.NoError(t, err)

	// Act
	resp, err := layer.GetInbox(ctx, nil)

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindInvalidArgument))
	mockVerifier.AssertNotCalled(t, "VerifyToken")
	mockDelegate.AssertNotCalled(t, "GetInbox")
}

func TestGuardedMethod_MissingTokenID(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockDelegate := new(mocks.MockNotificationService)
	mockVerifier := new(mocks.MockTokenVerifier)
	layer, err := service.NewAuthenticationLayer(mockDelegate, mockVerifier)
	require.NoError(t, err)

	req := &service.GetDashboardRequest{
		Token: valueobjects.AuthToken{UserID: "b7a9c1d4-0000-4000-8000-000000000001"},
	}

	// Act
	resp, err := layer.GetDashboard(ctx, req)

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindInvalidToken))
	mockVerifier.AssertNotCalled(t, "VerifyToken")
	mockDelegate.AssertNotCalled(t, "GetDashboard")
}

func TestGuardedMethod_VerifierRejectsToken(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockDelegate := new(mocks.MockNotificationService)
	mockVerifier := new(mocks.MockTokenVerifier)
	layer, err := service.NewAuthenticationLayer(mockDelegate, mockVerifier)
	require.NoError(t, err)

	token := validToken()
	req := &service.DeleteApplicationRequest{
		Token:         token,
		ApplicationID: "7c1e9a00-0000-4000-8000-000000000002",
	}
	mockVerifier.On("VerifyToken", ctx, token.TokenID).Return(errors.New("session revoked"))

	// Act
	resp, err := layer.DeleteApplication(ctx, req)

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindInvalidToken))
	mockVerifier.AssertExpectations(t)
	mockDelegate.AssertNotCalled(t, "DeleteApplication")
}

func TestGuardedMethod_VerifiesExactlyOnceAndDelegates(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockDelegate := new(mocks.MockNotificationService)
	mockVerifier := new(mocks.MockTokenVerifier)
	layer, err := service.NewAuthenticationLayer(mockDelegate, mockVerifier)
	require.NoError(t, err)

	token := validToken()
	req := &service.GetInboxRequest{Token: token}
	expected := &service.GetInboxResponse{}
	mockVerifier.On("VerifyToken", ctx, token.TokenID).Return(nil)
	mockDelegate.On("GetInbox", ctx, req).Return(expected, nil)

	// Act
	resp, err := layer.GetInbox(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.Same(t, expected, resp)
	mockVerifier.AssertNumberOfCalls(t, "VerifyToken", 1)
	mockVerifier.AssertExpectations(t)
	mockDelegate.AssertExpectations(t)
}

func TestGuardedMethod_DelegateErrorPassesThroughUnchanged(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockDelegate := new(mocks.MockNotificationService)
	mockVerifier := new(mocks.MockTokenVerifier)
	layer, err := service.NewAuthenticationLayer(mockDelegate, mockVerifier)
	require.NoError(t, err)

	token := validToken()
	req := &service.GetApplicationInfoRequest{
		Token:         token,
		ApplicationID: "7c1e9a00-0000-4000-8000-000000000002",
	}
	delegateErr := pkgerrors.NewNotFound("application")
	mockVerifier.On("VerifyToken", ctx, token.TokenID).Return(nil)
	mockDelegate.On("GetApplicationInfo", ctx, req).Return(nil, delegateErr)

	// Act
	resp, err := layer.GetApplicationInfo(ctx, req)

	// Assert
	assert.Nil(t, resp)
	assert.Equal(t, delegateErr, err)
	mockVerifier.AssertExpectations(t)
	mockDelegate.AssertExpectations(t)
}
