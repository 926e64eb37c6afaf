package operations

import (
	"context"

	"beacon-backend/application/service"
)

// Service dispatches each contract method to its operation. It carries no
// logic of its own; the authentication layer sits in front of it and every
// operation validates its own input.
type Service struct {
	apiVersion      *GetAPIVersionOperation
	signIn          *SignInOperation
	signUp          *SignUpOperation
	provision       *ProvisionApplicationOperation
	regenerateToken *RegenerateApplicationTokenOperation
	deleteApp       *DeleteApplicationOperation
	sendMessage     *SendMessageOperation
	dismissMessage  *DismissMessageOperation
	follow          *FollowApplicationOperation
	unfollow        *UnfollowApplicationOperation
	activity        *GetActivityOperation
	appInfo         *GetApplicationInfoOperation
	dashboard       *GetDashboardOperation
	inbox           *GetInboxOperation
	fullMessage     *GetFullMessageOperation
	media           *GetMediaOperation
	myApps          *GetMyApplicationsOperation
	userInfo        *GetUserInfoOperation
	searchApps      *SearchForApplicationsOperation
}

var _ service.NotificationService = (*Service)(nil)

// NewService wires the operations into a single notification service
func NewService(
	apiVersion *GetAPIVersionOperation,
	signIn *SignInOperation,
	signUp *SignUpOperation,
	provision *ProvisionApplicationOperation,
	regenerateToken *RegenerateApplicationTokenOperation,
	deleteApp *DeleteApplicationOperation,
	sendMessage *SendMessageOperation,
	dismissMessage *DismissMessageOperation,
	follow *FollowApplicationOperation,
	unfollow *UnfollowApplicationOperation,
	activity *GetActivityOperation,
	appInfo *GetApplicationInfoOperation,
	dashboard *GetDashboardOperation,
	inbox *GetInboxOperation,
	fullMessage *GetFullMessageOperation,
	media *GetMediaOperation,
	myApps *GetMyApplicationsOperation,
	userInfo *GetUserInfoOperation,
	searchApps *SearchForApplicationsOperation,
) *Service {
	return &Service{
		apiVersion:      apiVersion,
		signIn:          signIn,
		signUp:          signUp,
		provision:       provision,
		regenerateToken: regenerateToken,
		deleteApp:       deleteApp,
		sendMessage:     sendMessage,
		dismissMessage:  dismissMessage,
		follow:          follow,
		unfollow:        unfollow,
		activity:        activity,
		appInfo:         appInfo,
		dashboard:       dashboard,
		inbox:           inbox,
		fullMessage:     fullMessage,
		media:           media,
		myApps:          myApps,
		userInfo:        userInfo,
		searchApps:      searchApps,
	}
}

func (s *Service) GetAPIVersion(ctx context.Context, req *service.GetAPIVersionRequest) (*service.GetAPIVersionResponse, error) {
	return s.apiVersion.Process(ctx, req)
}

func (s *Service) SignIn(ctx context.Context, req *service.SignInRequest) (*service.SignInResponse, error) {
	return s.signIn.Process(ctx, req)
}

func (s *Service) SignUp(ctx context.Context, req *service.SignUpRequest) (*service.SignUpResponse, error) {
	return s.signUp.Process(ctx, req)
}

func (s *Service) ProvisionApplication(ctx context.Context, req *service.ProvisionApplicationRequest) (*service.ProvisionApplicationResponse, error) {
	return s.provision.Process(ctx, req)
}

func (s *Service) RegenerateApplicationToken(ctx context.Context, req *service.RegenerateApplicationTokenRequest) (*service.RegenerateApplicationTokenResponse, error) {
	return s.regenerateToken.Process(ctx, req)
}

func (s *Service) DeleteApplication(ctx context.Context, req *service.DeleteApplicationRequest) (*service.DeleteApplicationResponse, error) {
	return s.deleteApp.Process(ctx, req)
}

func (s *Service) SendMessage(ctx context.Context, req *service.SendMessageRequest) (*service.SendMessageResponse, error) {
	return s.sendMessage.Process(ctx, req)
}

func (s *Service) DismissMessage(ctx context.Context, req *service.DismissMessageRequest) (*service.DismissMessageResponse, error) {
	return s.dismissMessage.Process(ctx, req)
}

func (s *Service) FollowApplication(ctx context.Context, req *service.FollowApplicationRequest) (*service.FollowApplicationResponse, error) {
	return s.follow.Process(ctx, req)
}

func (s *Service) UnfollowApplication(ctx context.Context, req *service.UnfollowApplicationRequest) (*service.UnfollowApplicationResponse, error) {
	return s.unfollow.Process(ctx, req)
}

func (s *Service) GetActivity(ctx context.Context, req *service.GetActivityRequest) (*service.GetActivityResponse, error) {
	return s.activity.Process(ctx, req)
}

func (s *Service) GetApplicationInfo(ctx context.Context, req *service.GetApplicationInfoRequest) (*service.GetApplicationInfoResponse, error) {
	return s.appInfo.Process(ctx, req)
}

func (s *Service) GetDashboard(ctx context.Context, req *service.GetDashboardRequest) (*service.GetDashboardResponse, error) {
	return s.dashboard.Process(ctx, req)
}

func (s *Service) GetInbox(ctx context.Context, req *service.GetInboxRequest) (*service.GetInboxResponse, error) {
	return s.inbox.Process(ctx, req)
}

func (s *Service) GetFullMessage(ctx context.Context, req *service.GetFullMessageRequest) (*service.GetFullMessageResponse, error) {
	return s.fullMessage.Process(ctx, req)
}

func (s *Service) GetMedia(ctx context.Context, req *service.GetMediaRequest) (*service.GetMediaResponse, error) {
	return s.media.Process(ctx, req)
}

func (s *Service) GetMyApplications(ctx context.Context, req *service.GetMyApplicationsRequest) (*service.GetMyApplicationsResponse, error) {
	return s.myApps.Process(ctx, req)
}

func (s *Service) GetUserInfo(ctx context.Context, req *service.GetUserInfoRequest) (*service.GetUserInfoResponse, error) {
	return s.userInfo.Process(ctx, req)
}

func (s *Service) SearchForApplications(ctx context.Context, req *service.SearchForApplicationsRequest) (*service.SearchForApplicationsResponse, error) {
	return s.searchApps.Process(ctx, req)
}
