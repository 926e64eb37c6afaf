package operations

import (
	"context"

	"go.uber.org/zap"

	"beacon-backend/application/ports"
	"beacon-backend/application/service"
	"beacon-backend/domain/core/valueobjects"
	pkgerrors "beacon-backend/pkg/errors"
)

// GetActivityOperation fetches the caller's activity feed
type GetActivityOperation struct {
	activityRepo ports.ActivityRepository
	logger       *zap.Logger
}

// NewGetActivityOperation creates the get-activity operation
func NewGetActivityOperation(activityRepo ports.ActivityRepository, logger *zap.Logger) *GetActivityOperation {
	return &GetActivityOperation{activityRepo: activityRepo, logger: logger}
}

// Process executes the query
func (o *GetActivityOperation) Process(ctx context.Context, req *service.GetActivityRequest) (*service.GetActivityResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	caller, err := requireCaller(req.Token)
	if err != nil {
		return nil, err
	}

	feed, err := o.activityRepo.GetAllEventsFor(ctx, caller.String())
	if err != nil {
		return nil, err
	}
	return &service.GetActivityResponse{Events: feed}, nil
}

// GetMediaOperation fetches stored binary content by key
type GetMediaOperation struct {
	mediaRepo ports.MediaRepository
	logger    *zap.Logger
}

// NewGetMediaOperation creates the get-media operation
func NewGetMediaOperation(mediaRepo ports.MediaRepository, logger *zap.Logger) *GetMediaOperation {
	return &GetMediaOperation{mediaRepo: mediaRepo, logger: logger}
}

// Process executes the query
func (o *GetMediaOperation) Process(ctx context.Context, req *service.GetMediaRequest) (*service.GetMediaResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	if _, err := requireCaller(req.Token); err != nil {
		return nil, err
	}
	mediaID, err := valueobjects.NewMediaIDFromString(req.MediaID)
	if err != nil {
		return nil, pkgerrors.NewInvalidArgument(err.Error())
	}

	data, mimeType, err := o.mediaRepo.GetMedia(ctx, mediaID)
	if err != nil {
		return nil, err
	}
	return &service.GetMediaResponse{Data: data, MimeType: mimeType}, nil
}

// GetUserInfoOperation fetches a user's public profile
type GetUserInfoOperation struct {
	userRepo ports.UserRepository
	logger   *zap.Logger
}

// NewGetUserInfoOperation creates the get-user-info operation
func NewGetUserInfoOperation(userRepo ports.UserRepository, logger *zap.Logger) *GetUserInfoOperation {
	return &GetUserInfoOperation{userRepo: userRepo, logger: logger}
}

// Process executes the query. An empty UserID resolves to the caller.
func (o *GetUserInfoOperation) Process(ctx context.Context, req *service.GetUserInfoRequest) (*service.GetUserInfoResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	caller, err := requireCaller(req.Token)
	if err != nil {
		return nil, err
	}

	target := caller
	if req.UserID != "" {
		target, err = valueobjects.NewUserIDFromString(req.UserID)
		if err != nil {
			return nil, pkgerrors.NewInvalidArgument("user ID must be a valid UUID")
		}
	}

	user, err := o.userRepo.GetByID(ctx, target)
	if err != nil {
		return nil, err
	}
	return &service.GetUserInfoResponse{User: user}, nil
}
