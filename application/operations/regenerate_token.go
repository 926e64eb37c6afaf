package operations

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"beacon-backend/application/ports"
	"beacon-backend/application/service"
	"beacon-backend/domain/events"
	pkgerrors "beacon-backend/pkg/errors"
)

// RegenerateApplicationTokenOperation rotates the push token an application
// uses to deliver messages. Owners are notified best-effort.
type RegenerateApplicationTokenOperation struct {
	appRepo      ports.ApplicationRepository
	activityRepo ports.ActivityRepository
	logger       *zap.Logger
}

// NewRegenerateApplicationTokenOperation creates the regenerate-token operation
func NewRegenerateApplicationTokenOperation(appRepo ports.ApplicationRepository, activityRepo ports.ActivityRepository, logger *zap.Logger) *RegenerateApplicationTokenOperation {
	return &RegenerateApplicationTokenOperation{
		appRepo:      appRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// Process executes the rotation
func (o *RegenerateApplicationTokenOperation) Process(ctx context.Context, req *service.RegenerateApplicationTokenRequest) (*service.RegenerateApplicationTokenResponse, error) {
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
		return nil, pkgerrors.NewUnauthorized("only an owner can regenerate the application token")
	}

	newToken := uuid.New().String()

	event := events.ActivityEvent{
		EventID:       uuid.New().String(),
		Type:          events.ActivityTypeTokenRegenerated,
		ActorUserID:   caller.String(),
		ApplicationID: appID.String(),
		Message:       app.Name() + " had its token regenerated",
		Timestamp:     time.Now(),
	}

	var wg sync.WaitGroup
	for _, owner := range app.Owners() {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			if err := o.activityRepo.SaveEvent(ctx, event, userID); err != nil {
				o.logger.Warn("Failed to notify owner of token regeneration",
					zap.String("applicationID", appID.String()),
					zap.String("userID", userID),
					zap.Error(err),
				)
			}
		}(owner.String())
	}
	wg.Wait()

	return &service.RegenerateApplicationTokenResponse{ApplicationToken: newToken}, nil
}
