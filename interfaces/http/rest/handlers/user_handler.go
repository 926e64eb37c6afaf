package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"beacon-backend/application/service"
)

// UserHandler serves the user profile, activity and media endpoints
type UserHandler struct {
	svc    service.NotificationService
	logger *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(svc service.NotificationService, logger *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, logger: logger}
}

// GetActivity handles GET /activity
func (h *UserHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	req := service.GetActivityRequest{Token: bearerToken(r)}

	resp, err := h.svc.GetActivity(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respond(w, http.StatusOK, resp)
}

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	req := service.GetUserInfoRequest{Token: bearerToken(r)}

	resp, err := h.svc.GetUserInfo(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respond(w, http.StatusOK, resp)
}

// GetUser handles GET /users/{userID}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	req := service.GetUserInfoRequest{
		Token:  bearerToken(r),
		UserID: chi.URLParam(r, "userID"),
	}

	resp, err := h.svc.GetUserInfo(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respond(w, http.StatusOK, resp)
}

// GetMedia handles GET /media/{mediaID}. The raw content is served with its
// stored MIME type rather than the JSON envelope.
func (h *UserHandler) GetMedia(w http.ResponseWriter, r *http.Request) {
	req := service.GetMediaRequest{
		Token:   bearerToken(r),
		MediaID: chi.URLParam(r, "mediaID"),
	}

	resp, err := h.svc.GetMedia(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	mimeType := resp.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", mimeType)
	w.WriteHeader(http.StatusOK)
	w.Write(resp.Data)
}
