// Package service defines the remote-call surface of the notification
// service: one method per operation, each taking one typed request and
// returning one typed response or a classified error from pkg/errors.
//
// The AuthenticationLayer decorator implements the same interface as the
// operation dispatcher so that the two are interchangeable to callers.
package service

import (
	"context"

	"beacon-backend/domain/core/entities"
	"beacon-backend/domain/core/valueobjects"
	"beacon-backend/domain/events"
)

// NotificationService is the full inbound call surface. GetAPIVersion,
// SignIn and SignUp are exempt from token verification; every other method
// requires a token the authentication authority considers valid.
type NotificationService interface {
	GetAPIVersion(ctx context.Context, req *GetAPIVersionRequest) (*GetAPIVersionResponse, error)
	SignIn(ctx context.Context, req *SignInRequest) (*SignInResponse, error)
	SignUp(ctx context.Context, req *SignUpRequest) (*SignUpResponse, error)

	ProvisionApplication(ctx context.Context, req *ProvisionApplicationRequest) (*ProvisionApplicationResponse, error)
	RegenerateApplicationToken(ctx context.Context, req *RegenerateApplicationTokenRequest) (*RegenerateApplicationTokenResponse, error)
	DeleteApplication(ctx context.Context, req *DeleteApplicationRequest) (*DeleteApplicationResponse, error)
	SendMessage(ctx context.Context, req *SendMessageRequest) (*SendMessageResponse, error)
	DismissMessage(ctx context.Context, req *DismissMessageRequest) (*DismissMessageResponse, error)
	FollowApplication(ctx context.Context, req *FollowApplicationRequest) (*FollowApplicationResponse, error)
	UnfollowApplication(ctx context.Context, req *UnfollowApplicationRequest) (*UnfollowApplicationResponse, error)
	GetActivity(ctx context.Context, req *GetActivityRequest) (*GetActivityResponse, error)
	GetApplicationInfo(ctx context.Context, req *GetApplicationInfoRequest) (*GetApplicationInfoResponse, error)
	GetDashboard(ctx context.Context, req *GetDashboardRequest) (*GetDashboardResponse, error)
	GetInbox(ctx context.Context, req *GetInboxRequest) (*GetInboxResponse, error)
	GetFullMessage(ctx context.Context, req *GetFullMessageRequest) (*GetFullMessageResponse, error)
	GetMedia(ctx context.Context, req *GetMediaRequest) (*GetMediaResponse, error)
	GetMyApplications(ctx context.Context, req *GetMyApplicationsRequest) (*GetMyApplicationsResponse, error)
	GetUserInfo(ctx context.Context, req *GetUserInfoRequest) (*GetUserInfoResponse, error)
	SearchForApplications(ctx context.Context, req *SearchForApplicationsRequest) (*SearchForApplicationsResponse, error)
}

// ApplicationInfo is the wire representation of an application
type ApplicationInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Owners      []string `json:"owners"`
	IconMediaID string   `json:"icon_media_id,omitempty"`
	CreatedAt   int64    `json:"created_at"`
}

// ApplicationInfoFrom maps an application entity to its wire representation
func ApplicationInfoFrom(app *entities.Application) ApplicationInfo {
	owners := make([]string, 0, len(app.Owners()))
	for _, o := range app.Owners() {
		owners = append(owners, o.String())
	}
	return ApplicationInfo{
		ID:          app.ID().String(),
		Name:        app.Name(),
		Description: app.Description(),
		Owners:      owners,
		IconMediaID: app.IconMediaID().String(),
		CreatedAt:   app.CreatedAt().UnixMilli(),
	}
}

// GetAPIVersionRequest carries no fields; the method is exempt from
// authentication
type GetAPIVersionRequest struct{}

// GetAPIVersionResponse reports the service API version
type GetAPIVersionResponse struct {
	Version string `json:"version"`
}

// SignInRequest authenticates a user by credentials. Exempt.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignInResponse returns the signed-in user and a fresh token
type SignInResponse struct {
	UserID string                 `json:"user_id"`
	Token  valueobjects.AuthToken `json:"token"`
}

// SignUpRequest registers a new user. Exempt.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

// SignUpResponse returns the new user and a fresh token
type SignUpResponse struct {
	UserID string                 `json:"user_id"`
	Token  valueobjects.AuthToken `json:"token"`
}

// ProvisionApplicationRequest creates a new application owned by the caller.
// An optional icon is stored alongside the application.
type ProvisionApplicationRequest struct {
	Token        valueobjects.AuthToken `json:"token"`
	Name         string                 `json:"name" validate:"required,max=100"`
	Description  string                 `json:"description" validate:"max=1000"`
	Icon         []byte                 `json:"icon,omitempty"`
	IconMimeType string                 `json:"icon_mime_type,omitempty"`
}

// ProvisionApplicationResponse returns the provisioned application
type ProvisionApplicationResponse struct {
	Application ApplicationInfo `json:"application"`
}

// RegenerateApplicationTokenRequest rotates an application's push token
type RegenerateApplicationTokenRequest struct {
	Token         valueobjects.AuthToken `json:"token"`
	ApplicationID string                 `json:"application_id"`
}

// RegenerateApplicationTokenResponse returns the new push token
type RegenerateApplicationTokenResponse struct {
	ApplicationToken string `json:"application_token"`
}

// DeleteApplicationRequest destroys an application and cascades cleanup of
// its media, followers, messages and notifications
type DeleteApplicationRequest struct {
	Token         valueobjects.AuthToken `json:"token"`
	ApplicationID string                 `json:"application_id"`
}

// DeleteApplicationResponse is an empty acknowledgement; it is returned once
// the primary delete commits, regardless of cascade sub-step outcomes
type DeleteApplicationResponse struct{}

// SendMessageRequest pushes a message from an application into the inboxes
// of its followers. Only an owner may send on the application's behalf.
type SendMessageRequest struct {
	Token         valueobjects.AuthToken `json:"token"`
	ApplicationID string                 `json:"application_id"`
	Title         string                 `json:"title" validate:"required,max=120"`
	Body          string                 `json:"body" validate:"max=10000"`
	Urgency       string                 `json:"urgency,omitempty"`
	Hostname      string                 `json:"hostname,omitempty"`
}

// SendMessageResponse returns the stored message's ID and the number of
// follower inboxes delivery was attempted for. Delivery is best effort; the
// count is attempts, not confirmed deliveries.
type SendMessageResponse struct {
	MessageID         string `json:"message_id"`
	FollowersNotified int    `json:"followers_notified"`
}

// DismissMessageRequest removes one, many, or all inbox entries for the
// calling user
type DismissMessageRequest struct {
	Token      valueobjects.AuthToken `json:"token"`
	MessageID  string                 `json:"message_id,omitempty"`
	MessageIDs []string               `json:"message_ids,omitempty"`
	DismissAll bool                   `json:"dismiss_all,omitempty"`
}

// DismissMessageResponse reports how many dismissals were attempted. The
// count is the size of the deduplicated input set, not a verified success
// count; it is zero for a dismiss-all clear.
type DismissMessageResponse struct {
	MessagesDismissed int `json:"messages_dismissed"`
}

// FollowApplicationRequest subscribes the caller to an application
type FollowApplicationRequest struct {
	Token         valueobjects.AuthToken `json:"token"`
	ApplicationID string                 `json:"application_id"`
}

// FollowApplicationResponse is an empty acknowledgement
type FollowApplicationResponse struct{}

// UnfollowApplicationRequest removes the caller's subscription
type UnfollowApplicationRequest struct {
	Token         valueobjects.AuthToken `json:"token"`
	ApplicationID string                 `json:"application_id"`
}

// UnfollowApplicationResponse is an empty acknowledgement
type UnfollowApplicationResponse struct{}

// GetActivityRequest fetches the caller's activity feed
type GetActivityRequest struct {
	Token valueobjects.AuthToken `json:"token"`
}

// GetActivityResponse returns the caller's activity feed, newest first
type GetActivityResponse struct {
	Events []events.ActivityEvent `json:"events"`
}

// GetApplicationInfoRequest fetches one application's details
type GetApplicationInfoRequest struct {
	Token         valueobjects.AuthToken `json:"token"`
	ApplicationID string                 `json:"application_id"`
}

// GetApplicationInfoResponse returns the application's details
type GetApplicationInfoResponse struct {
	Application ApplicationInfo `json:"application"`
}

// GetDashboardRequest fetches a summary of the caller's notification state
type GetDashboardRequest struct {
	Token valueobjects.AuthToken `json:"token"`
}

// GetDashboardResponse summarizes the caller's inbox, owned applications and
// followed applications
type GetDashboardResponse struct {
	TotalMessages     int                 `json:"total_messages"`
	TotalApplications int                 `json:"total_applications"`
	TotalFollowed     int                 `json:"total_followed"`
	RecentMessages    []*entities.Message `json:"recent_messages"`
}

// GetInboxRequest fetches the caller's inbox entries
type GetInboxRequest struct {
	Token valueobjects.AuthToken `json:"token"`
	Limit int                    `json:"limit,omitempty"`
}

// GetInboxResponse returns the caller's inbox entries, newest first
type GetInboxResponse struct {
	Messages []*entities.Message `json:"messages"`
}

// GetFullMessageRequest fetches the full body of one message
type GetFullMessageRequest struct {
	Token         valueobjects.AuthToken `json:"token"`
	ApplicationID string                 `json:"application_id"`
	MessageID     string                 `json:"message_id"`
}

// GetFullMessageResponse returns the full message
type GetFullMessageResponse struct {
	Message *entities.Message `json:"message"`
}

// GetMediaRequest fetches stored binary content by key
type GetMediaRequest struct {
	Token   valueobjects.AuthToken `json:"token"`
	MediaID string                 `json:"media_id"`
}

// GetMediaResponse returns the stored content and its MIME type
type GetMediaResponse struct {
	Data     []byte `json:"data"`
	MimeType string `json:"mime_type"`
}

// GetMyApplicationsRequest fetches the applications the caller owns
type GetMyApplicationsRequest struct {
	Token valueobjects.AuthToken `json:"token"`
}

// GetMyApplicationsResponse returns the caller's applications
type GetMyApplicationsResponse struct {
	Applications []ApplicationInfo `json:"applications"`
}

// GetUserInfoRequest fetches a user's public profile. An empty UserID means
// the caller's own profile.
type GetUserInfoRequest struct {
	Token  valueobjects.AuthToken `json:"token"`
	UserID string                 `json:"user_id,omitempty"`
}

// GetUserInfoResponse returns the user's profile
type GetUserInfoResponse struct {
	User *entities.User `json:"user"`
}

// SearchForApplicationsRequest searches applications by name
type SearchForApplicationsRequest struct {
	Token valueobjects.AuthToken `json:"token"`
	Query string                 `json:"query"`
	Limit int                    `json:"limit,omitempty"`
}

// SearchForApplicationsResponse returns matching applications
type SearchForApplicationsResponse struct {
	Applications []ApplicationInfo `json:"applications"`
}
