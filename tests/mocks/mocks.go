// Package mocks provides testify mock implementations of the application's
// ports for unit testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"beacon-backend/application/service"
	"beacon-backend/domain/core/entities"
	"beacon-backend/domain/core/valueobjects"
	"beacon-backend/domain/events"
)

// MockApplicationRepository mocks ports.ApplicationRepository
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Save(ctx context.Context, app *entities.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id valueobjects.ApplicationID) (*entities.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Application), args.Error(1)
}

func (m *MockApplicationRepository) GetByOwner(ctx context.Context, userID string) ([]*entities.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Application), args.Error(1)
}

func (m *MockApplicationRepository) Search(ctx context.Context, query string, limit int) ([]*entities.Application, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Application), args.Error(1)
}

func (m *MockApplicationRepository) Delete(ctx context.Context, id valueobjects.ApplicationID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFollowerRepository mocks ports.FollowerRepository
type MockFollowerRepository struct {
	mock.Mock
}

func (m *MockFollowerRepository) SaveFollowing(ctx context.Context, userID string, appID string) error {
	args := m.Called(ctx, userID, appID)
	return args.Error(0)
}

func (m *MockFollowerRepository) GetApplicationFollowers(ctx context.Context, appID string) ([]*entities.User, error) {
	args := m.Called(ctx, appID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockFollowerRepository) GetFollowedApplications(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFollowerRepository) DeleteFollowing(ctx context.Context, userID string, appID string) error {
	args := m.Called(ctx, userID, appID)
	return args.Error(0)
}

// MockMediaRepository mocks ports.MediaRepository
type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) SaveMedia(ctx context.Context, id valueobjects.MediaID, data []byte, mimeType string) error {
	args := m.Called(ctx, id, data, mimeType)
	return args.Error(0)
}

func (m *MockMediaRepository) GetMedia(ctx context.Context, id valueobjects.MediaID) ([]byte, string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockMediaRepository) DeleteMedia(ctx context.Context, id valueobjects.MediaID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMediaRepository) DeleteAllThumbnails(ctx context.Context, id valueobjects.MediaID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMessageRepository mocks ports.MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Save(ctx context.Context, msg *entities.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) GetByID(ctx context.Context, appID string, msgID valueobjects.MessageID) (*entities.Message, error) {
	args := m.Called(ctx, appID, msgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Message), args.Error(1)
}

func (m *MockMessageRepository) GetByApplication(ctx context.Context, appID string, limit int) ([]*entities.Message, error) {
	args := m.Called(ctx, appID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Message), args.Error(1)
}

func (m *MockMessageRepository) DeleteAllMessages(ctx context.Context, appID string) error {
	args := m.Called(ctx, appID)
	return args.Error(0)
}

// MockInboxRepository mocks ports.InboxRepository
type MockInboxRepository struct {
	mock.Mock
}

func (m *MockInboxRepository) SaveMessageForUser(ctx context.Context, userID string, msg *entities.Message) error {
	args := m.Called(ctx, userID, msg)
	return args.Error(0)
}

func (m *MockInboxRepository) GetMessagesForUser(ctx context.Context, userID string) ([]*entities.Message, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Message), args.Error(1)
}

func (m *MockInboxRepository) DeleteMessageForUser(ctx context.Context, userID string, msgID string) error {
	args := m.Called(ctx, userID, msgID)
	return args.Error(0)
}

func (m *MockInboxRepository) DeleteAllMessagesForUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockActivityRepository mocks ports.ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) SaveEvent(ctx context.Context, event events.ActivityEvent, forUser string) error {
	args := m.Called(ctx, event, forUser)
	return args.Error(0)
}

func (m *MockActivityRepository) GetAllEventsFor(ctx context.Context, userID string) ([]events.ActivityEvent, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]events.ActivityEvent), args.Error(1)
}

// MockUserRepository mocks ports.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id valueobjects.UserID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

// MockEventPublisher mocks ports.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

// MockTokenVerifier mocks ports.TokenVerifier
type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) VerifyToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// MockTokenIssuer mocks ports.TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) IssueToken(ctx context.Context, userID valueobjects.UserID) (valueobjects.AuthToken, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(valueobjects.AuthToken), args.Error(1)
}

// MockNotificationService mocks the full service contract for testing the
// layers that wrap it
type MockNotificationService struct {
	mock.Mock
}

var _ service.NotificationService = (*MockNotificationService)(nil)

func (m *MockNotificationService) GetAPIVersion(ctx context.Context, req *service.GetAPIVersionRequest) (*service.GetAPIVersionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GetAPIVersionResponse), args.Error(1)
}

func (m *MockNotificationService) SignIn(ctx context.Context, req *service.SignInRequest) (*service.SignInResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SignInResponse), args.Error(1)
}

func (m *MockNotificationService) SignUp(ctx context.Context, req *service.SignUpRequest) (*service.SignUpResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SignUpResponse), args.Error(1)
}

func (m *MockNotificationService) ProvisionApplication(ctx context.Context, req *service.ProvisionApplicationRequest) (*service.ProvisionApplicationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProvisionApplicationResponse), args.Error(1)
}

func (m *MockNotificationService) RegenerateApplicationToken(ctx context.Context, req *service.RegenerateApplicationTokenRequest) (*service.RegenerateApplicationTokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RegenerateApplicationTokenResponse), args.Error(1)
}

func (m *MockNotificationService) DeleteApplication(ctx context.Context, req *service.DeleteApplicationRequest) (*service.DeleteApplicationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DeleteApplicationResponse), args.Error(1)
}

func (m *MockNotificationService) SendMessage(ctx context.Context, req *service.SendMessageRequest) (*service.SendMessageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SendMessageResponse), args.Error(1)
}

func (m *MockNotificationService) DismissMessage(ctx context.Context, req *service.DismissMessageRequest) (*service.DismissMessageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DismissMessageResponse), args.Error(1)
}

func (m *MockNotificationService) FollowApplication(ctx context.Context, req *service.FollowApplicationRequest) (*service.FollowApplicationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FollowApplicationResponse), args.Error(1)
}

func (m *MockNotificationService) UnfollowApplication(ctx context.Context, req *service.UnfollowApplicationRequest) (*service.UnfollowApplicationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UnfollowApplicationResponse), args.Error(1)
}

func (m *MockNotificationService) GetActivity(ctx context.Context, req *service.GetActivityRequest) (*service.GetActivityResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GetActivityResponse), args.Error(1)
}

func (m *MockNotificationService) GetApplicationInfo(ctx context.Context, req *service.GetApplicationInfoRequest) (*service.GetApplicationInfoResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GetApplicationInfoResponse), args.Error(1)
}

func (m *MockNotificationService) GetDashboard(ctx context.Context, req *service.GetDashboardRequest) (*service.GetDashboardResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GetDashboardResponse), args.Error(1)
}

func (m *MockNotificationService) GetInbox(ctx context.Context, req *service.GetInboxRequest) (*service.GetInboxResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GetInboxResponse), args.Error(1)
}

func (m *MockNotificationService) GetFullMessage(ctx context.Context, req *service.GetFullMessageRequest) (*service.GetFullMessageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GetFullMessageResponse), args.Error(1)
}

func (m *MockNotificationService) GetMedia(ctx context.Context, req *service.GetMediaRequest) (*service.GetMediaResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GetMediaResponse), args.Error(1)
}

func (m *MockNotificationService) GetMyApplications(ctx context.Context, req *service.GetMyApplicationsRequest) (*service.GetMyApplicationsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GetMyApplicationsResponse), args.Error(1)
}

func (m *MockNotificationService) GetUserInfo(ctx context.Context, req *service.GetUserInfoRequest) (*service.GetUserInfoResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GetUserInfoResponse), args.Error(1)
}

func (m *MockNotificationService) SearchForApplications(ctx context.Context, req *service.SearchForApplicationsRequest) (*service.SearchForApplicationsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SearchForApplicationsResponse), args.Error(1)
}
