package operations

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"beacon-backend/application/ports"
	"beacon-backend/application/service"
	"beacon-backend/domain/core/entities"
	"beacon-backend/domain/core/valueobjects"
	"beacon-backend/domain/events"
	pkgerrors "beacon-backend/pkg/errors"
	"beacon-backend/pkg/observability"
)

// DeleteApplicationOperation destroys an application. The delete cascades
// over the application's media, followers, messages and notifications; every
// cascade step is best-effort and independently isolated, while the final
// delete of the application record is the authoritative commit.
//
// Step order: media -> followers -> messages -> notify -> primary delete.
// Cascade effects are not rolled back if the primary delete fails.
type DeleteApplicationOperation struct {
	activityRepo ports.ActivityRepository
	appRepo      ports.ApplicationRepository
	followerRepo ports.FollowerRepository
	mediaRepo    ports.MediaRepository
	messageRepo  ports.MessageRepository
	publisher    ports.EventPublisher
	metrics      *observability.Metrics
	logger       *zap.Logger
}

// NewDeleteApplicationOperation creates the delete-application operation
func NewDeleteApplicationOperation(
	activityRepo ports.ActivityRepository,
	appRepo ports.ApplicationRepository,
	followerRepo ports.FollowerRepository,
	mediaRepo ports.MediaRepository,
	messageRepo ports.MessageRepository,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *DeleteApplicationOperation {
	return &DeleteApplicationOperation{
		activityRepo: activityRepo,
		appRepo:      appRepo,
		followerRepo: followerRepo,
		mediaRepo:    mediaRepo,
		messageRepo:  messageRepo,
		publisher:    publisher,
		metrics:      metrics,
		logger:       logger,
	}
}

// Process executes the deletion
func (o *DeleteApplicationOperation) Process(ctx context.Context, req *service.DeleteApplicationRequest) (*service.DeleteApplicationResponse, error) {
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

	if !app.IsOwnedBy(caller) {
		return nil, pkgerrors.NewUnauthorized("user is not an owner and cannot delete this application")
	}

	o.tryToDeleteMedia(ctx, app)
	followers := o.tryToRemoveAllFollowers(ctx, app)
	o.tryToDeleteAllMessages(ctx, app)
	o.tryToSendDeletionNotification(ctx, caller, app, followers)

	// The authoritative commit. Unlike the cascade steps above, a failure
	// here aborts the operation and propagates to the caller.
	if err := o.appRepo.Delete(ctx, appID); err != nil {
		return nil, err
	}

	// Fire-and-forget relative to the committed delete.
	if err := o.publisher.Publish(ctx, events.NewApplicationDeleted(app, caller)); err != nil {
		o.logger.Warn("Failed to publish deleted event",
			zap.String("applicationID", appID.String()),
			zap.Error(err),
		)
	}

	o.logger.Debug("Deleted application",
		zap.String("applicationID", appID.String()),
		zap.String("deletedBy", caller.String()),
	)

	return &service.DeleteApplicationResponse{}, nil
}

// tryToDeleteMedia removes the application's icon and its thumbnails, both
// under the icon's own media key (if set) and under the application's ID,
// which covers the second storage convention for icons.
func (o *DeleteApplicationOperation) tryToDeleteMedia(ctx context.Context, app *entities.Application) {
	if icon := app.IconMediaID(); !icon.IsZero() {
		o.deleteIcon(ctx, app, icon)
	}

	appKey, err := valueobjects.NewMediaIDFromString(app.ID().String())
	if err == nil {
		o.deleteIcon(ctx, app, appKey)
	}
}

func (o *DeleteApplicationOperation) deleteIcon(ctx context.Context, app *entities.Application, icon valueobjects.MediaID) {
	if err := o.mediaRepo.DeleteMedia(ctx, icon); err != nil {
		o.metrics.CountCascadeFailure(ctx, "DeleteApplication", "media")
		o.logger.Info("Could not delete icon for application",
			zap.String("iconMediaID", icon.String()),
			zap.String("applicationID", app.ID().String()),
			zap.Error(err),
		)
		return
	}
	if err := o.mediaRepo.DeleteAllThumbnails(ctx, icon); err != nil {
		o.metrics.CountCascadeFailure(ctx, "DeleteApplication", "thumbnails")
		o.logger.Info("Could not delete thumbnails for application",
			zap.String("iconMediaID", icon.String()),
			zap.String("applicationID", app.ID().String()),
			zap.Error(err),
		)
	}
}

// tryToRemoveAllFollowers enumerates the application's followers and removes
// each following relation. Per-follower failures are isolated; the
// enumerated list is returned for the notification step even when some
// removals failed. An enumeration failure yields an empty list.
func (o *DeleteApplicationOperation) tryToRemoveAllFollowers(ctx context.Context, app *entities.Application) []*entities.User {
	appID := app.ID().String()

	followers, err := o.followerRepo.GetApplicationFollowers(ctx, appID)
	if err != nil {
		o.metrics.CountCascadeFailure(ctx, "DeleteApplication", "followers")
		o.logger.Error("Failed to enumerate followers for application",
			zap.String("applicationID", appID),
			zap.Error(err),
		)
		return nil
	}

	var wg sync.WaitGroup
	for _, follower := range followers {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			o.deleteFollowing(ctx, userID, appID)
		}(follower.ID.String())
	}
	wg.Wait()

	return followers
}

func (o *DeleteApplicationOperation) deleteFollowing(ctx context.Context, userID, appID string) {
	if err := o.followerRepo.DeleteFollowing(ctx, userID, appID); err != nil {
		o.metrics.CountCascadeFailure(ctx, "DeleteApplication", "followers")
		o.logger.Warn("Failed to remove following of application by user",
			zap.String("applicationID", appID),
			zap.String("userID", userID),
			zap.Error(err),
		)
	}
}

func (o *DeleteApplicationOperation) tryToDeleteAllMessages(ctx context.Context, app *entities.Application) {
	if err := o.messageRepo.DeleteAllMessages(ctx, app.ID().String()); err != nil {
		o.metrics.CountCascadeFailure(ctx, "DeleteApplication", "messages")
		o.logger.Warn("Failed to delete all messages for application",
			zap.String("applicationID", app.ID().String()),
			zap.Error(err),
		)
	}
}

// tryToSendDeletionNotification delivers a deletion event to every owner and
// every enumerated follower. Per-recipient failures are isolated.
func (o *DeleteApplicationOperation) tryToSendDeletionNotification(ctx context.Context, actor valueobjects.UserID, app *entities.Application, followers []*entities.User) {
	event := events.NewApplicationDeletedActivity(app, actor)

	recipients := make([]string, 0, len(app.Owners())+len(followers))
	for _, owner := range app.Owners() {
		recipients = append(recipients, owner.String())
	}
	for _, follower := range followers {
		recipients = append(recipients, follower.ID.String())
	}

	var wg sync.WaitGroup
	for _, recipient := range recipients {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			o.tryToSaveEvent(ctx, event, userID)
		}(recipient)
	}
	wg.Wait()
}

func (o *DeleteApplicationOperation) tryToSaveEvent(ctx context.Context, event events.ActivityEvent, userID string) {
	if err := o.activityRepo.SaveEvent(ctx, event, userID); err != nil {
		o.metrics.CountCascadeFailure(ctx, "DeleteApplication", "notify")
		o.logger.Error("Failed to save deletion event for user",
			zap.String("eventID", event.EventID),
			zap.String("userID", userID),
			zap.Error(err),
		)
	}
}
