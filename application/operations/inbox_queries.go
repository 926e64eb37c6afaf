package operations

import (
	"context"

	"go.uber.org/zap"

	"beacon-backend/application/ports"
	"beacon-backend/application/service"
	pkgerrors "beacon-backend/pkg/errors"
)

const dashboardRecentMessages = 10

// GetInboxOperation fetches the caller's inbox entries
type GetInboxOperation struct {
	inboxRepo ports.InboxRepository
	logger    *zap.Logger
}

// NewGetInboxOperation creates the get-inbox operation
func NewGetInboxOperation(inboxRepo ports.InboxRepository, logger *zap.Logger) *GetInboxOperation {
	return &GetInboxOperation{inboxRepo: inboxRepo, logger: logger}
}

// Process executes the query
func (o *GetInboxOperation) Process(ctx context.Context, req *service.GetInboxRequest) (*service.GetInboxResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	caller, err := requireCaller(req.Token)
	if err != nil {
		return nil, err
	}

	messages, err := o.inboxRepo.GetMessagesForUser(ctx, caller.String())
	if err != nil {
		return nil, err
	}

	if req.Limit > 0 && len(messages) > req.Limit {
		messages = messages[:req.Limit]
	}
	return &service.GetInboxResponse{Messages: messages}, nil
}

// GetFullMessageOperation fetches the full body of one message
type GetFullMessageOperation struct {
	messageRepo ports.MessageRepository
	logger      *zap.Logger
}

// NewGetFullMessageOperation creates the get-full-message operation
func NewGetFullMessageOperation(messageRepo ports.MessageRepository, logger *zap.Logger) *GetFullMessageOperation {
	return &GetFullMessageOperation{messageRepo: messageRepo, logger: logger}
}

// Process executes the query
func (o *GetFullMessageOperation) Process(ctx context.Context, req *service.GetFullMessageRequest) (*service.GetFullMessageResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	appID, err := requireApplicationID(req.ApplicationID)
	if err != nil {
		return nil, err
	}
	msgID, err := requireMessageID(req.MessageID)
	if err != nil {
		return nil, err
	}
	if _, err := requireCaller(req.Token); err != nil {
		return nil, err
	}

	msg, err := o.messageRepo.GetByID(ctx, appID.String(), msgID)
	if err != nil {
		return nil, err
	}
	return &service.GetFullMessageResponse{Message: msg}, nil
}

// GetDashboardOperation summarizes the caller's notification state
type GetDashboardOperation struct {
	inboxRepo    ports.InboxRepository
	appRepo      ports.ApplicationRepository
	followerRepo ports.FollowerRepository
	logger       *zap.Logger
}

// NewGetDashboardOperation creates the get-dashboard operation
func NewGetDashboardOperation(inboxRepo ports.InboxRepository, appRepo ports.ApplicationRepository, followerRepo ports.FollowerRepository, logger *zap.Logger) *GetDashboardOperation {
	return &GetDashboardOperation{inboxRepo: inboxRepo, appRepo: appRepo, followerRepo: followerRepo, logger: logger}
}

// Process executes the query
func (o *GetDashboardOperation) Process(ctx context.Context, req *service.GetDashboardRequest) (*service.GetDashboardResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	caller, err := requireCaller(req.Token)
	if err != nil {
		return nil, err
	}

	messages, err := o.inboxRepo.GetMessagesForUser(ctx, caller.String())
	if err != nil {
		return nil, err
	}

	apps, err := o.appRepo.GetByOwner(ctx, caller.String())
	if err != nil {
		return nil, err
	}

	followed, err := o.followerRepo.GetFollowedApplications(ctx, caller.String())
	if err != nil {
		return nil, err
	}

	recent := messages
	if len(recent) > dashboardRecentMessages {
		recent = recent[:dashboardRecentMessages]
	}

	return &service.GetDashboardResponse{
		TotalMessages:     len(messages),
		TotalApplications: len(apps),
		TotalFollowed:     len(followed),
		RecentMessages:    recent,
	}, nil
}
