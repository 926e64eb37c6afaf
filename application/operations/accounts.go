package operations

import (
	"context"

	"go.uber.org/zap"

	"beacon-backend/application/ports"
	"beacon-backend/application/service"
	"beacon-backend/domain/core/entities"
	pkgerrors "beacon-backend/pkg/errors"
)

// APIVersion is the version reported by GetAPIVersion
const APIVersion = "2.3.0"

// GetAPIVersionOperation reports the service API version. Exempt from
// authentication.
type GetAPIVersionOperation struct{}

// Process returns the API version
func (o *GetAPIVersionOperation) Process(ctx context.Context, req *service.GetAPIVersionRequest) (*service.GetAPIVersionResponse, error) {
	return &service.GetAPIVersionResponse{Version: APIVersion}, nil
}

// SignInOperation authenticates a user by credentials and issues a fresh
// token through the authority. Credential verification is the issuer's
// concern; this operation resolves the account and requests the token.
type SignInOperation struct {
	userRepo ports.UserRepository
	issuer   ports.TokenIssuer
	logger   *zap.Logger
}

// NewSignInOperation creates the sign-in operation
func NewSignInOperation(userRepo ports.UserRepository, issuer ports.TokenIssuer, logger *zap.Logger) *SignInOperation {
	return &SignInOperation{userRepo: userRepo, issuer: issuer, logger: logger}
}

// Process executes the sign-in
func (o *SignInOperation) Process(ctx context.Context, req *service.SignInRequest) (*service.SignInResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	user, err := o.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if pkgerrors.IsKind(err, pkgerrors.KindNotFound) {
			return nil, pkgerrors.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}

	token, err := o.issuer.IssueToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	o.logger.Info("User signed in", zap.String("userID", user.ID.String()))

	return &service.SignInResponse{
		UserID: user.ID.String(),
		Token:  token,
	}, nil
}

// SignUpOperation registers a new user account and signs it in
type SignUpOperation struct {
	userRepo ports.UserRepository
	issuer   ports.TokenIssuer
	logger   *zap.Logger
}

// NewSignUpOperation creates the sign-up operation
func NewSignUpOperation(userRepo ports.UserRepository, issuer ports.TokenIssuer, logger *zap.Logger) *SignUpOperation {
	return &SignUpOperation{userRepo: userRepo, issuer: issuer, logger: logger}
}

// Process executes the sign-up
func (o *SignUpOperation) Process(ctx context.Context, req *service.SignUpRequest) (*service.SignUpResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	if existing, err := o.userRepo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, pkgerrors.NewConflict("a user with this email already exists")
	} else if err != nil && !pkgerrors.IsKind(err, pkgerrors.KindNotFound) {
		return nil, err
	}

	user, err := entities.NewUser(req.Email, req.Name)
	if err != nil {
		return nil, err
	}

	if err := o.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	token, err := o.issuer.IssueToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	o.logger.Info("User signed up", zap.String("userID", user.ID.String()))

	return &service.SignUpResponse{
		UserID: user.ID.String(),
		Token:  token,
	}, nil
}
