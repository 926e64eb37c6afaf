package operations

import (
	"context"

	"go.uber.org/zap"

	"beacon-backend/application/ports"
	"beacon-backend/application/service"
	pkgerrors "beacon-backend/pkg/errors"
)

const defaultSearchLimit = 25

// GetMyApplicationsOperation lists the applications the caller owns
type GetMyApplicationsOperation struct {
	appRepo ports.ApplicationRepository
	logger  *zap.Logger
}

// NewGetMyApplicationsOperation creates the get-my-applications operation
func NewGetMyApplicationsOperation(appRepo ports.ApplicationRepository, logger *zap.Logger) *GetMyApplicationsOperation {
	return &GetMyApplicationsOperation{appRepo: appRepo, logger: logger}
}

// Process executes the query
func (o *GetMyApplicationsOperation) Process(ctx context.Context, req *service.GetMyApplicationsRequest) (*service.GetMyApplicationsResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	caller, err := requireCaller(req.Token)
	if err != nil {
		return nil, err
	}

	apps, err := o.appRepo.GetByOwner(ctx, caller.String())
	if err != nil {
		return nil, err
	}

	infos := make([]service.ApplicationInfo, 0, len(apps))
	for _, app := range apps {
		infos = append(infos, service.ApplicationInfoFrom(app))
	}
	return &service.GetMyApplicationsResponse{Applications: infos}, nil
}

// GetApplicationInfoOperation fetches one application's details
type GetApplicationInfoOperation struct {
	appRepo ports.ApplicationRepository
	logger  *zap.Logger
}

// NewGetApplicationInfoOperation creates the get-application-info operation
func NewGetApplicationInfoOperation(appRepo ports.ApplicationRepository, logger *zap.Logger) *GetApplicationInfoOperation {
	return &GetApplicationInfoOperation{appRepo: appRepo, logger: logger}
}

// Process executes the query
func (o *GetApplicationInfoOperation) Process(ctx context.Context, req *service.GetApplicationInfoRequest) (*service.GetApplicationInfoResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	appID, err := requireApplicationID(req.ApplicationID)
	if err != nil {
		return nil, err
	}
	if _, err := requireCaller(req.Token); err != nil {
		return nil, err
	}

	app, err := o.appRepo.GetByID(ctx, appID)
	if err != nil {
		return nil, err
	}
	return &service.GetApplicationInfoResponse{Application: service.ApplicationInfoFrom(app)}, nil
}

// SearchForApplicationsOperation searches applications by name
type SearchForApplicationsOperation struct {
	appRepo   ports.ApplicationRepository
	resultCap int
	logger    *zap.Logger
}

// NewSearchForApplicationsOperation creates the search operation. Requested
// limits are clamped to resultCap; a non-positive cap falls back to the
// default limit.
func NewSearchForApplicationsOperation(appRepo ports.ApplicationRepository, resultCap int, logger *zap.Logger) *SearchForApplicationsOperation {
	if resultCap <= 0 {
		resultCap = defaultSearchLimit
	}
	return &SearchForApplicationsOperation{appRepo: appRepo, resultCap: resultCap, logger: logger}
}

// Process executes the search
func (o *SearchForApplicationsOperation) Process(ctx context.Context, req *service.SearchForApplicationsRequest) (*service.SearchForApplicationsResponse, error) {
	if req == nil {
		return nil, pkgerrors.NewInvalidArgument("request is missing")
	}
	if _, err := requireCaller(req.Token); err != nil {
		return nil, err
	}
	if req.Query == "" {
		return nil, pkgerrors.NewInvalidArgument("search query cannot be empty")
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > o.resultCap {
		limit = o.resultCap
	}

	apps, err := o.appRepo.Search(ctx, req.Query, limit)
	if err != nil {
		return nil, err
	}

	infos := make([]service.ApplicationInfo, 0, len(apps))
	for _, app := range apps {
		infos = append(infos, service.ApplicationInfoFrom(app))
	}
	return &service.SearchForApplicationsResponse{Applications: infos}, nil
}
