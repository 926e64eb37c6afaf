package operations

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"beacon-backend/application/ports"
	"beacon-backend/application/service"
	"beacon-backend/domain/events"
	pkgerrors "beacon-backend/pkg/errors"
)

// FollowApplicationOperation subscribes the caller to an application's
// messages. The owner notification is best-effort.
type FollowApplicationOperation struct {
	appRepo      ports.ApplicationRepository
	followerRepo ports.FollowerRepository
	activityRepo ports.ActivityRepository
	logger       *zap.Logger
}

// NewFollowApplicationOperation creates the follow-application operation
func NewFollowApplicationOperation(
	appRepo ports.ApplicationRepository,
	followerRepo ports.FollowerRepository,
	activityRepo ports.ActivityRepository,
	logger *zap.Logger,
) *FollowApplicationOperation {
	return &FollowApplicationOperation{
		appRepo:      appRepo,
		followerRepo: followerRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// Process executes the follow
func (o *FollowApplicationOperation) Process(ctx context.Context, req *service.FollowApplicationRequest) (*service.FollowApplicationResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	appID, err := requireApplicationID(req.ApplicationID)
	if err != nil {
		return nil, err
	}
	caller, err := requireCaller(req.Token)
	if err != nil {
		return nil, err
	}

	app, err := o.appRepo.GetByID(ctx, appID)
	if err != nil {
		return nil, err
	}

	if err := o.followerRepo.SaveFollowing(ctx, caller.String(), appID.String()); err != nil {
		return nil, err
	}

	event := events.NewApplicationFollowedActivity(app, caller)

	var wg sync.WaitGroup
	for _, owner := range app.Owners() {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			if err := o.activityRepo.SaveEvent(ctx, event, userID); err != nil {
				o.logger.Warn("Failed to notify owner of new follower",
					zap.String("applicationID", appID.String()),
					zap.String("userID", userID),
					zap.Error(err),
				)
			}
		}(owner.String())
	}
	wg.Wait()

	return &service.FollowApplicationResponse{}, nil
}

// UnfollowApplicationOperation removes the caller's subscription to an
// application
type UnfollowApplicationOperation struct {
	followerRepo ports.FollowerRepository
	logger       *zap.Logger
}

// NewUnfollowApplicationOperation creates the unfollow-application operation
func NewUnfollowApplicationOperation(followerRepo ports.FollowerRepository, logger *zap.Logger) *UnfollowApplicationOperation {
	return &UnfollowApplicationOperation{
		followerRepo: followerRepo,
		logger:       logger,
	}
}

// Process executes the unfollow
func (o *UnfollowApplicationOperation) Process(ctx context.Context, req *service.UnfollowApplicationRequest) (*service.UnfollowApplicationResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	appID, err := requireApplicationID(req.ApplicationID)
	if err != nil {
		return nil, err
	}
	caller, err := requireCaller(req.Token)
	if err != nil {
		return nil, err
	}

	if err := o.followerRepo.DeleteFollowing(ctx, caller.String(), appID.String()); err != nil {
		return nil, err
	}

	o.logger.Debug("User unfollowed application",
		zap.String("userID", caller.String()),
		zap.String("applicationID", appID.String()),
	)

	return &service.UnfollowApplicationResponse{}, nil
}
