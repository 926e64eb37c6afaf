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

func TestGetAPIVersion(t *testing.T) {
	// Arrange
	op := &operations.GetAPIVersionOperation{}

	// Act
	resp, err := op.Process(context.Background(), &service.GetAPIVersionRequest{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, operations.APIVersion, resp.Version)
}

func TestSignIn_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	userRepo := new(mocks.MockUserRepository)
	issuer := new(mocks.MockTokenIssuer)
	op := operations.NewSignInOperation(userRepo, issuer, zap.NewNop())

	user := fixtures.NewUserBuilder().WithEmail("alice@example.com").Build()
	token := valueobjects.AuthToken{TokenID: "fresh-token", UserID: user.ID.String()}
	userRepo.On("GetByEmail", ctx, "alice@example.com").Return(user, nil)
	issuer.On("IssueToken", ctx, user.ID).Return(token, nil)

	req := &service.SignInRequest{Email: "alice@example.com", Password: "hunter22"}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), resp.UserID)
	assert.Equal(t, token, resp.Token)
	userRepo.AssertExpectations(t)
	issuer.AssertExpectations(t)
}

func TestSignIn_UnknownEmail(t *testing.T) {
	// Arrange
	ctx := context.Background()
	userRepo := new(mocks.MockUserRepository)
	issuer := new(mocks.MockTokenIssuer)
	op := operations.NewSignInOperation(userRepo, issuer, zap.NewNop())

	userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, pkgerrors.NewNotFound("user"))

	req := &service.SignInRequest{Email: "nobody@example.com", Password: "hunter22"}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	// an unknown account reads as bad credentials, not as a missing entity
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindUnauthorized))
	issuer.AssertNotCalled(t, "IssueToken")
}

func TestSignIn_RejectsMalformedEmail(t *testing.T) {
	// Arrange
	ctx := context.Background()
	userRepo := new(mocks.MockUserRepository)
	issuer := new(mocks.MockTokenIssuer)
	op := operations.NewSignInOperation(userRepo, issuer, zap.NewNop())

	req := &service.SignInRequest{Email: "not-an-email", Password: "hunter22"}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindInvalidArgument))
	userRepo.AssertNotCalled(t, "GetByEmail")
}

func TestSignUp_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	userRepo := new(mocks.MockUserRepository)
	issuer := new(mocks.MockTokenIssuer)
	op := operations.NewSignUpOperation(userRepo, issuer, zap.NewNop())

	userRepo.On("GetByEmail", ctx, "bob@example.com").Return(nil, pkgerrors.NewNotFound("user"))
	userRepo.On("Save", ctx, mock.AnythingOfType("*entities.User")).Return(nil)
	issuer.On("IssueToken", ctx, mock.AnythingOfType("valueobjects.UserID")).
		Return(valueobjects.AuthToken{TokenID: "fresh-token"}, nil)

	req := &service.SignUpRequest{Email: "bob@example.com", Password: "longenough", Name: "Bob"}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, resp.UserID)
	assert.Equal(t, "fresh-token", resp.Token.TokenID)
	userRepo.AssertExpectations(t)
	issuer.AssertExpectations(t)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	// Arrange
	ctx := context.Background()
	userRepo := new(mocks.MockUserRepository)
	issuer := new(mocks.MockTokenIssuer)
	op := operations.NewSignUpOperation(userRepo, issuer, zap.NewNop())

	existing := fixtures.NewUserBuilder().WithEmail("bob@example.com").Build()
	userRepo.On("GetByEmail", ctx, "bob@example.com").Return(existing, nil)

	req := &service.SignUpRequest{Email: "bob@example.com", Password: "longenough", Name: "Bob"}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindConflict))
	userRepo.AssertNotCalled(t, "Save")
}

func TestSignUp_RejectsShortPassword(t *testing.T) {
	// Arrange
	ctx := context.Background()
	userRepo := new(mocks.MockUserRepository)
	issuer := new(mocks.MockTokenIssuer)
	op := operations.NewSignUpOperation(userRepo, issuer, zap.NewNop())

	req := &service.SignUpRequest{Email: "bob@example.com", Password: "short", Name: "Bob"}

	// Act
	resp, err := op.Process(ctx, req)

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindInvalidArgument))
	userRepo.AssertNotCalled(t, "Save")
}
