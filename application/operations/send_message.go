package operations

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"beacon-backend/application/ports"
	"beacon-backend/application/service"
	"beacon-backend/domain/core/entities"
	"beacon-backend/domain/events"
	pkgerrors "beacon-backend/pkg/errors"
	"beacon-backend/pkg/observability"
)

// SendMessageOperation stores a message for an application and fans it out
// into the inboxes of the application's followers. The message store is the
// primary state change; per-follower delivery failures are isolated and the
// message remains readable through the application's history.
type SendMessageOperation struct {
	appRepo      ports.ApplicationRepository
	messageRepo  ports.MessageRepository
	followerRepo ports.FollowerRepository
	inboxRepo    ports.InboxRepository
	publisher    ports.EventPublisher
	metrics      *observability.Metrics
	logger       *zap.Logger
}

// NewSendMessageOperation creates the send-message operation
func NewSendMessageOperation(
	appRepo ports.ApplicationRepository,
	messageRepo ports.MessageRepository,
	followerRepo ports.FollowerRepository,
	inboxRepo ports.InboxRepository,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *SendMessageOperation {
	return &SendMessageOperation{
		appRepo:      appRepo,
		messageRepo:  messageRepo,
		followerRepo: followerRepo,
		inboxRepo:    inboxRepo,
		publisher:    publisher,
		metrics:      metrics,
		logger:       logger,
	}
}

// Process executes the send
func (o *SendMessageOperation) Process(ctx context.Context, req *service.SendMessageRequest) (*service.SendMessageResponse, error) {
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
	if err := checkStruct(req); err != nil {
		return nil, err
	}
	urgency, err := parseUrgency(req.Urgency)
	if err != nil {
		return nil, err
	}

	app, err := o.appRepo.GetByID(ctx, appID)
	if err != nil {
		return nil, err
	}
	if !app.IsOwnedBy(caller) {
		return nil, pkgerrors.NewUnauthorized("only an owner may send messages for this application")
	}

	msg := entities.NewMessage(app.ID(), req.Title, req.Body, urgency)
	msg.Hostname = req.Hostname

	if err := o.messageRepo.Save(ctx, msg); err != nil {
		return nil, pkgerrors.NewOperationFailed("could not store message").WithCause(err)
	}

	notified := o.tryToDeliverToFollowers(ctx, msg)

	// Fire-and-forget relative to the stored message.
	if err := o.publisher.Publish(ctx, events.NewMessageSent(msg)); err != nil {
		o.logger.Warn("Failed to publish sent event",
			zap.String("messageID", msg.ID.String()),
			zap.Error(err),
		)
	}

	o.logger.Info("Sent message",
		zap.String("messageID", msg.ID.String()),
		zap.String("applicationID", app.ID().String()),
		zap.Int("followersNotified", notified),
	)

	return &service.SendMessageResponse{
		MessageID:         msg.ID.String(),
		FollowersNotified: notified,
	}, nil
}

// tryToDeliverToFollowers writes the message into each follower's inbox.
// Per-follower failures are isolated; an enumeration failure skips fan-out
// entirely. Returns the number of attempted deliveries.
func (o *SendMessageOperation) tryToDeliverToFollowers(ctx context.Context, msg *entities.Message) int {
	appID := msg.ApplicationID.String()

	followers, err := o.followerRepo.GetApplicationFollowers(ctx, appID)
	if err != nil {
		o.metrics.CountCascadeFailure(ctx, "SendMessage", "followers")
		o.logger.Error("Failed to enumerate followers for delivery",
			zap.String("applicationID", appID),
			zap.Error(err),
		)
		return 0
	}

	var wg sync.WaitGroup
	for _, follower := range followers {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			o.deliverToInbox(ctx, userID, msg)
		}(follower.ID.String())
	}
	wg.Wait()

	return len(followers)
}

func (o *SendMessageOperation) deliverToInbox(ctx context.Context, userID string, msg *entities.Message) {
	if err := o.inboxRepo.SaveMessageForUser(ctx, userID, msg); err != nil {
		o.metrics.CountCascadeFailure(ctx, "SendMessage", "inbox")
		o.logger.Warn("Failed to deliver message to inbox",
			zap.String("messageID", msg.ID.String()),
			zap.String("userID", userID),
			zap.Error(err),
		)
	}
}

// parseUrgency maps the wire urgency to its domain value. An empty string
// defers to the message default.
func parseUrgency(raw string) (entities.Urgency, error) {
	switch entities.Urgency(raw) {
	case "", entities.UrgencyLow, entities.UrgencyMedium, entities.UrgencyHigh, entities.UrgencyCritical:
		return entities.Urgency(raw), nil
	default:
		return "", pkgerrors.NewInvalidArgument("unknown urgency: " + raw)
	}
}
