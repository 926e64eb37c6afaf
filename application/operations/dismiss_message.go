package operations

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"beacon-backend/application/ports"
	"beacon-backend/application/service"
	"beacon-backend/domain/events"
	pkgerrors "beacon-backend/pkg/errors"
	"beacon-backend/pkg/observability"
)

// DismissMessageOperation removes one, many, or all inbox entries for the
// calling user. Per-message deletions are best-effort and isolated; the
// reported count is the size of the deduplicated attempt set, so callers
// cannot distinguish a failed deletion from a successful one.
type DismissMessageOperation struct {
	inboxRepo ports.InboxRepository
	publisher ports.EventPublisher
	metrics   *observability.Metrics
	logger    *zap.Logger
}

// NewDismissMessageOperation creates the dismiss-message operation
func NewDismissMessageOperation(inboxRepo ports.InboxRepository, publisher ports.EventPublisher, metrics *observability.Metrics, logger *zap.Logger) *DismissMessageOperation {
	return &DismissMessageOperation{
		inboxRepo: inboxRepo,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

// Process executes the dismissal
func (o *DismissMessageOperation) Process(ctx context.Context, req *service.DismissMessageRequest) (*service.DismissMessageResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	caller, err := requireCaller(req.Token)
	if err != nil {
		return nil, err
	}
	if req.MessageID != "" {
		if _, err := requireMessageID(req.MessageID); err != nil {
			return nil, err
		}
	}
	for _, id := range req.MessageIDs {
		if _, err := requireMessageID(id); err != nil {
			return nil, err
		}
	}

	userID := caller.String()

	if req.DismissAll {
		if err := o.inboxRepo.DeleteAllMessagesForUser(ctx, userID); err != nil {
			return nil, err
		}
		if err := o.publisher.Publish(ctx, events.NewInboxCleared(caller)); err != nil {
			o.logger.Warn("Failed to publish inbox cleared event",
				zap.String("userID", userID),
				zap.Error(err),
			)
		}
		o.logger.Debug("Cleared inbox", zap.String("userID", userID))
		return &service.DismissMessageResponse{}, nil
	}

	messageIDs := collectMessageIDs(req)
	o.deleteMessages(ctx, userID, messageIDs)

	return &service.DismissMessageResponse{MessagesDismissed: len(messageIDs)}, nil
}

// collectMessageIDs merges the single message ID and the bulk set into one
// deduplicated set of targets
func collectMessageIDs(req *service.DismissMessageRequest) map[string]struct{} {
	ids := make(map[string]struct{})
	if req.MessageID != "" {
		ids[req.MessageID] = struct{}{}
	}
	for _, id := range req.MessageIDs {
		ids[id] = struct{}{}
	}
	return ids
}

// deleteMessages attempts each deletion concurrently and independently;
// failures are logged and discarded
func (o *DismissMessageOperation) deleteMessages(ctx context.Context, userID string, messageIDs map[string]struct{}) {
	var wg sync.WaitGroup
	for msgID := range messageIDs {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			o.deleteMessage(ctx, userID, id)
		}(msgID)
	}
	wg.Wait()
}

func (o *DismissMessageOperation) deleteMessage(ctx context.Context, userID, msgID string) {
	if err := o.inboxRepo.DeleteMessageForUser(ctx, userID, msgID); err != nil {
		o.metrics.CountCascadeFailure(ctx, "DismissMessage", "delete")
		o.logger.Warn("Failed to delete message for user",
			zap.String("messageID", msgID),
			zap.String("userID", userID),
			zap.Error(err),
		)
	}
}
