package operations

import (
	"context"

	"go.uber.org/zap"

	"beacon-backend/application/ports"
	"beacon-backend/application/service"
	"beacon-backend/domain/core/entities"
	"beacon-backend/domain/core/valueobjects"
	"beacon-backend/domain/events"
	pkgerrors "beacon-backend/pkg/errors"
)

// ProvisionApplicationOperation creates a new application with the caller as
// its first owner
type ProvisionApplicationOperation struct {
	appRepo   ports.ApplicationRepository
	mediaRepo ports.MediaRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewProvisionApplicationOperation creates the provision-application operation
func NewProvisionApplicationOperation(appRepo ports.ApplicationRepository, mediaRepo ports.MediaRepository, publisher ports.EventPublisher, logger *zap.Logger) *ProvisionApplicationOperation {
	return &ProvisionApplicationOperation{
		appRepo:   appRepo,
		mediaRepo: mediaRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// Process executes the provisioning
func (o *ProvisionApplicationOperation) Process(ctx context.Context, req *service.ProvisionApplicationRequest) (*service.ProvisionApplicationResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	caller, err := requireCaller(req.Token)
	if err != nil {
		return nil, err
	}
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	app, err := entities.NewApplication(req.Name, req.Description, caller)
	if err != nil {
		return nil, err
	}

	// An icon that cannot be stored does not block provisioning; the
	// application is simply created without one.
	if len(req.Icon) > 0 {
		iconID := valueobjects.NewMediaID()
		if err := o.mediaRepo.SaveMedia(ctx, iconID, req.Icon, req.IconMimeType); err != nil {
			o.logger.Warn("Failed to store application icon",
				zap.String("applicationID", app.ID().String()),
				zap.Error(err),
			)
		} else {
			app.SetIcon(iconID)
		}
	}

	if err := o.appRepo.Save(ctx, app); err != nil {
		return nil, err
	}

	// Fire-and-forget relative to the provisioning itself.
	if err := o.publisher.Publish(ctx, events.NewApplicationProvisioned(app, caller)); err != nil {
		o.logger.Warn("Failed to publish provisioned event",
			zap.String("applicationID", app.ID().String()),
			zap.Error(err),
		)
	}

	o.logger.Info("Provisioned application",
		zap.String("applicationID", app.ID().String()),
		zap.String("owner", caller.String()),
	)

	return &service.ProvisionApplicationResponse{
		Application: service.ApplicationInfoFrom(app),
	}, nil
}
