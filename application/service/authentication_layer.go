package service

import (
	"context"

	"beacon-backend/application/ports"
	"beacon-backend/domain/core/valueobjects"
	pkgerrors "beacon-backend/pkg/errors"
)

// AuthenticationLayer decorates a NotificationService with token
// verification. Every call except GetAPIVersion, SignIn and SignUp is
// checked against the authentication authority before the delegate is
// invoked; the delegate's result or error is returned unchanged.
//
// The layer performs no business logic and no repository access. It makes
// exactly one VerifyToken call per guarded invocation.
type AuthenticationLayer struct {
	delegate NotificationService
	verifier ports.TokenVerifier
}

// interface guard
var _ NotificationService = (*AuthenticationLayer)(nil)

// NewAuthenticationLayer wraps delegate behind token verification
func NewAuthenticationLayer(delegate NotificationService, verifier ports.TokenVerifier) (*AuthenticationLayer, error) {
	if delegate == nil {
		return nil, pkgerrors.NewInvalidArgument("delegate cannot be nil")
	}
	if verifier == nil {
		return nil, pkgerrors.NewInvalidArgument("token verifier cannot be nil")
	}
	return &AuthenticationLayer{delegate: delegate, verifier: verifier}, nil
}

// checkToken verifies the request token against the authority. A missing
// token ID is an invalid-token failure without contacting the authority.
func (l *AuthenticationLayer) checkToken(ctx context.Context, token valueobjects.AuthToken) error {
	if token.TokenID == "" {
		return pkgerrors.NewInvalidToken("request token is missing")
	}
	if err := l.verifier.VerifyToken(ctx, token.TokenID); err != nil {
		return pkgerrors.NewInvalidToken("token rejected by authentication authority").WithCause(err)
	}
	return nil
}

// Exempt methods pass straight through with no token check.

// GetAPIVersion forwards to the delegate without authentication
func (l *AuthenticationLayer) GetAPIVersion(ctx context.Context, req *GetAPIVersionRequest) (*GetAPIVersionResponse, error) {
	return l.delegate.GetAPIVersion(ctx, req)
}

// SignIn forwards to the delegate without authentication
func (l *AuthenticationLayer) SignIn(ctx context.Context, req *SignInRequest) (*SignInResponse, error) {
	return l.delegate.SignIn(ctx, req)
}

// SignUp forwards to the delegate without authentication
func (l *AuthenticationLayer) SignUp(ctx context.Context, req *SignUpRequest) (*SignUpResponse, error) {
	return l.delegate.SignUp(ctx, req)
}

// Guarded methods.

func (l *AuthenticationLayer) ProvisionApplication(ctx context.Context, req *ProvisionApplicationRequest) (*ProvisionApplicationResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	if err := l.checkToken(ctx, req.Token); err != nil {
		return nil, err
	}
	return l.delegate.ProvisionApplication(ctx, req)
}

func (l *AuthenticationLayer) RegenerateApplicationToken(ctx context.Context, req *RegenerateApplicationTokenRequest) (*RegenerateApplicationTokenResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	if err := l.checkToken(ctx, req.Token); err != nil {
		return nil, err
	}
	return l.delegate.RegenerateApplicationToken(ctx, req)
}

func (l *AuthenticationLayer) DeleteApplication(ctx context.Context, req *DeleteApplicationRequest) (*DeleteApplicationResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	if err := l.checkToken(ctx, req.Token); err != nil {
		return nil, err
	}
	return l.delegate.DeleteApplication(ctx, req)
}

func (l *AuthenticationLayer) SendMessage(ctx context.Context, req *SendMessageRequest) (*SendMessageResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	if err := l.checkToken(ctx, req.Token); err != nil {
		return nil, err
	}
	return l.delegate.SendMessage(ctx, req)
}

func (l *AuthenticationLayer) DismissMessage(ctx context.Context, req *DismissMessageRequest) (*DismissMessageResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	if err := l.checkToken(ctx, req.Token); err != nil {
		return nil, err
	}
	return l.delegate.DismissMessage(ctx, req)
}

func (l *AuthenticationLayer) FollowApplication(ctx context.Context, req *FollowApplicationRequest) (*FollowApplicationResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	if err := l.checkToken(ctx, req.Token); err != nil {
		return nil, err
	}
	return l.delegate.FollowApplication(ctx, req)
}

func (l *AuthenticationLayer) UnfollowApplication(ctx context.Context, req *UnfollowApplicationRequest) (*UnfollowApplicationResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	if err := l.checkToken(ctx, req.Token); err != nil {
		return nil, err
	}
	return l.delegate.UnfollowApplication(ctx, req)
}

func (l *AuthenticationLayer) GetActivity(ctx context.Context, req *GetActivityRequest) (*GetActivityResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	if err := l.checkToken(ctx, req.Token); err != nil {
		return nil, err
	}
	return l.delegate.GetActivity(ctx, req)
}

func (l *AuthenticationLayer) GetApplicationInfo(ctx context.Context, req *GetApplicationInfoRequest) (*GetApplicationInfoResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	if err := l.checkToken(ctx, req.Token); err != nil {
		return nil, err
	}
	return l.delegate.GetApplicationInfo(ctx, req)
}

func (l *AuthenticationLayer) GetDashboard(ctx context.Context, req *GetDashboardRequest) (*GetDashboardResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	if err := l.checkToken(ctx, req.Token); err != nil {
		return nil, err
	}
	return l.delegate.GetDashboard(ctx, req)
}

func (l *AuthenticationLayer) GetInbox(ctx context.Context, req *GetInboxRequest) (*GetInboxResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	if err := l.checkToken(ctx, req.Token); err != nil {
		return nil, err
	}
	return l.delegate.GetInbox(ctx, req)
}

func (l *AuthenticationLayer) GetFullMessage(ctx context.Context, req *GetFullMessageRequest) (*GetFullMessageResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	if err := l.checkToken(ctx, req.Token); err != nil {
		return nil, err
	}
	return l.delegate.GetFullMessage(ctx, req)
}

func (l *AuthenticationLayer) GetMedia(ctx context.Context, req *GetMediaRequest) (*GetMediaResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	if err := l.checkToken(ctx, req.Token); err != nil {
		return nil, err
	}
	return l.delegate.GetMedia(ctx, req)
}

func (l *AuthenticationLayer) GetMyApplications(ctx context.Context, req *GetMyApplicationsRequest) (*GetMyApplicationsResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	if err := l.checkToken(ctx, req.Token); err != nil {
		return nil, err
	}
	return l.delegate.GetMyApplications(ctx, req)
}

func (l *AuthenticationLayer) GetUserInfo(ctx context.Context, req *GetUserInfoRequest) (*GetUserInfoResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	if err := l.checkToken(ctx, req.Token); err != nil {
		return nil, err
	}
	return l.delegate.GetUserInfo(ctx, req)
}

func (l *AuthenticationLayer) SearchForApplications(ctx context.Context, req *SearchForApplicationsRequest) (*SearchForApplicationsResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	if err := l.checkToken(ctx, req.Token); err != nil {
		return nil, err
	}
	return l.delegate.SearchForApplications(ctx, req)
}
